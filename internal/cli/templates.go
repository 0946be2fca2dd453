package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	tmplloader "github.com/jmylchreest/tonal/internal/plugin/output/template"
)

// templateProvider is implemented by exporters that render embedded
// templates which users can override.
type templateProvider interface {
	Loader() *tmplloader.Loader
}

func newTemplatesCmd(a *app) *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List or dump exporter templates for customisation",
		Long: `Exporters that render templates look for overrides in
$XDG_CONFIG_HOME/tonal/templates/<format>/ before using their built-in copy.
Dump a template there, edit it, and export picks it up.`,
	}
	cmd.PersistentFlags().StringVarP(&location, "location", "l", "", "template override directory (default $XDG_CONFIG_HOME/tonal/templates)")

	loaders := func(only []string) (map[string]*tmplloader.Loader, []string, error) {
		out := make(map[string]*tmplloader.Loader)
		var names []string
		for _, p := range a.builtins {
			tp, ok := p.(templateProvider)
			if !ok {
				continue
			}
			l := tp.Loader()
			if location != "" {
				l.WithCustomBase(location)
			}
			out[p.Name()] = l
			names = append(names, p.Name())
		}
		if len(only) == 0 {
			return out, names, nil
		}
		for _, name := range only {
			if _, ok := out[name]; !ok {
				return nil, nil, fmt.Errorf("format %q has no templates (available: %v)", name, names)
			}
		}
		return out, only, nil
	}

	list := &cobra.Command{
		Use:   "list [format...]",
		Short: "List templates and where each would be loaded from",
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, names, err := loaders(args)
			if err != nil {
				return err
			}

			table := NewTable([]string{"FORMAT", "TEMPLATE", "SOURCE", "OVERRIDE PATH"})
			for _, name := range names {
				files, err := ls[name].ListEmbeddedTemplates()
				if err != nil {
					return err
				}
				for _, f := range files {
					info := ls[name].GetInfo(f)
					source := "embedded"
					if info.CustomExists {
						source = "custom"
					}
					table.AddRow([]string{name, info.Filename, source, info.CustomPath})
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}

	var force bool
	dump := &cobra.Command{
		Use:   "dump [format...]",
		Short: "Write built-in templates to the override directory",
		Example: `  tonal templates dump css
  tonal templates dump --location ./templates --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, names, err := loaders(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			status := a.statusWriter(cmd)
			var errs []error
			for _, name := range names {
				dumped, err := ls[name].DumpAllTemplates(force)
				for _, path := range dumped {
					fmt.Fprintln(out, path)
				}
				if errors.Is(err, tmplloader.ErrTemplateExists) {
					fmt.Fprintf(status, "⚠ %s: %v\n", name, err)
					continue
				}
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", name, err))
				}
			}
			return errors.Join(errs...)
		},
	}
	dump.Flags().BoolVar(&force, "force", false, "overwrite existing overrides")

	cmd.AddCommand(list, dump)
	return cmd
}
