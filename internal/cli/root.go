// Package cli provides the command-line interface for tonal.
package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/plugin/output/css"
	"github.com/jmylchreest/tonal/internal/plugin/output/document"
	"github.com/jmylchreest/tonal/internal/plugin/output/tailwind"
	"github.com/jmylchreest/tonal/internal/plugin/output/templater"
	"github.com/jmylchreest/tonal/internal/version"
)

// app is the state shared by every command of one invocation.
type app struct {
	configFile string
	verbose    bool
	quiet      bool
	logger     hclog.Logger
	builtins   []output.Plugin
}

// loggerAware is implemented by exporters that can report through the
// command's logger.
type loggerAware interface {
	SetLogger(hclog.Logger)
}

func newApp() *app {
	return &app{
		logger: hclog.NewNullLogger(),
		builtins: []output.Plugin{
			css.New(),
			tailwind.New(),
			document.NewJSON(),
			document.NewYAML(),
			document.NewTOML(),
			templater.New(),
		},
	}
}

// setupLogger builds the logger once flags are parsed. Diagnostics go to
// stderr; command results go to stdout.
func (a *app) setupLogger(cmd *cobra.Command) {
	level := hclog.Info
	switch {
	case a.quiet:
		level = hclog.Error
	case a.verbose:
		level = hclog.Debug
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Output: cmd.ErrOrStderr(),
		Level:  level,
		Color:  hclog.AutoColor,
	})

	for _, p := range a.builtins {
		if la, ok := p.(loggerAware); ok {
			la.SetLogger(a.logger.Named(p.Name()))
		}
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "Material colour schemes and design tokens from a seed colour",
		Long: `tonal derives Material 3 colour schemes from a seed colour and exports them
as design tokens: CSS custom properties, Tailwind themes, JSON, YAML, TOML,
your own templates, or external exporter plugins.

Configuration is read from tonal.yaml or tonal.toml in the working directory
or $XDG_CONFIG_HOME/tonal, then TONAL_* environment variables, then flags.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.setupLogger(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default: tonal.yaml in . or $XDG_CONFIG_HOME/tonal)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newSchemeCmd(a),
		newThemeCmd(a),
		newPaletteCmd(a),
		newScoreCmd(a),
		newQuantizeCmd(a),
		newContrastCmd(a),
		newExportCmd(a),
		newFormatsCmd(a),
		newTemplatesCmd(a),
		newPluginsCmd(a),
		newUnpackCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}
