package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/manager"
)

func newFormatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the output formats export can write",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := a.loadManager(cmd)
			if err != nil {
				return err
			}
			defer mgr.Close()

			table := NewTable([]string{"FORMAT", "STATUS", "DESCRIPTION"})
			table.SetColumnMaxWidth(2, 60)
			for _, name := range mgr.Registry().List() {
				p, _ := mgr.Registry().Get(name)
				table.AddRow([]string{name, enabledLabel(mgr.IsEnabled(name)), p.Description()})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
	addPluginFlags(cmd)
	return cmd
}

func newPluginsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Inspect external exporter plugins",
		Long: `External exporters are executables in the plugins directory
($XDG_CONFIG_HOME/tonal/plugins by default) that answer --plugin-info.
They speak either go-plugin RPC or JSON over stdin and stdout.`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List discovered external exporters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := a.loadManager(cmd)
			if err != nil {
				return err
			}
			defer mgr.Close()

			out := cmd.OutOrStdout()
			external := mgr.External()
			if len(external) == 0 {
				_, err := fmt.Fprintf(out, "No external exporters found in %s\n", mgr.Config().Dir)
				return err
			}

			table := NewTable([]string{"NAME", "VERSION", "PROTOCOL", "STATUS", "PATH"})
			for _, ext := range external {
				table.AddRow([]string{
					ext.Name(),
					ext.Version(),
					string(ext.Protocol()),
					enabledLabel(mgr.IsEnabled(ext.Name())),
					ext.Path(),
				})
			}
			_, err = fmt.Fprint(out, table.Render())
			return err
		},
	}
	addPluginFlags(list)

	cmd.AddCommand(list)
	return cmd
}

func addPluginFlags(cmd *cobra.Command) {
	cmd.Flags().String("plugin-dir", "", "directory searched for external exporters")
	cmd.Flags().StringSlice("enable-plugins", nil, "only allow these exporters (all for every exporter)")
	cmd.Flags().StringSlice("disable-plugins", nil, "never run these exporters (all for every exporter)")
}

func (a *app) loadManager(cmd *cobra.Command) (*manager.Manager, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return a.newManager(cmd.Context(), cfg)
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
