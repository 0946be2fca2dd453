package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/bundle"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/plugin/manager"
	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/preview"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

type exportFlags struct {
	pluginArgs  map[string]string
	dryRun      bool
	showPreview bool
}

func newExportCmd(a *app) *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write design tokens in one or more formats",
		Long: `Build a theme, project it into design tokens and write them with each
requested exporter. Built-in formats are css, tailwind, json, yaml, toml and
template; executables in the plugins directory add more.`,
		Example: `  tonal export -s "#769cdf" --format css,json -o ./theme
  tonal export -c tonal.yaml --brightness-variants --css.dark-selector .dark
  tonal export -s "#ff5733" --format tailwind --tailwind.format shadcn
  tonal export -s "#3357ff" --format css,toml --bundle theme.tar.xz
  tonal export -s "#3357ff" --format mytheme --plugin-args mytheme='{"name":"ocean"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd, flags)
		},
	}

	fs := cmd.Flags()
	addSeedFlags(fs)
	addOutputFlags(fs)
	fs.StringSliceP("format", "f", nil, "exporters to run (default css)")
	fs.StringP("output-dir", "o", "", "directory generated files are written to (default .)")
	fs.String("selector", "", "CSS selector for the light tokens (default :root)")
	fs.String("bundle", "", "also pack the generated files into this .tar.gz or .tar.xz archive")
	fs.String("plugin-dir", "", "directory searched for external exporters")
	fs.StringSlice("enable-plugins", nil, "only allow these exporters (all for every exporter)")
	fs.StringSlice("disable-plugins", nil, "never run these exporters (all for every exporter)")
	fs.StringToStringVar(&flags.pluginArgs, "plugin-args", nil, "JSON arguments for an external exporter, as name='{...}'")
	fs.BoolVar(&flags.dryRun, "dry-run", false, "show what would be written without writing")
	fs.BoolVar(&flags.showPreview, "preview", false, "render the exported tokens as swatches")

	for _, p := range a.builtins {
		p.RegisterFlags(cmd)
	}
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, flags exportFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	status := a.statusWriter(cmd)

	cfg, th, err := a.loadTheme(cmd)
	if err != nil {
		return err
	}
	projectOpts := cfg.ProjectOptions()
	if err := tokens.CheckCustomColorNames(cfg.StaticColors, projectOpts); err != nil {
		return err
	}

	data, err := output.NewData(th, projectOpts, selectorOrDefault(cfg.Output.Selector))
	if err != nil {
		return fmt.Errorf("failed to project tokens: %w", err)
	}

	mgr, err := a.newManager(ctx, cfg)
	if err != nil {
		return err
	}
	defer mgr.Close()

	if err := applyPluginArgs(mgr, flags); err != nil {
		return err
	}

	formats := uniqueNames(cfg.Output.Formats)
	if len(formats) == 0 {
		return errors.New("no output formats requested")
	}

	type result struct {
		plugin output.Plugin
		files  map[string][]byte
	}
	var (
		results []result
		failed  []string
		owners  = make(map[string]string)
	)

	fmt.Fprintf(status, "→ Exporting %s theme from %s\n", th.Variant.Label(), colour.ToHex(th.Source))
	for _, name := range formats {
		p, err := mgr.Lookup(name)
		if errors.Is(err, manager.ErrDisabled) {
			fmt.Fprintf(status, "⊘ Skipping %s: exporter is disabled\n", name)
			continue
		}
		if err != nil {
			return err
		}

		if err := p.Validate(); err != nil {
			fmt.Fprintf(status, "✗ %s: %v\n", name, err)
			failed = append(failed, name)
			continue
		}

		if hook, ok := p.(output.PreExecuteHook); ok && !flags.dryRun {
			skip, reason, err := hook.PreExecute(ctx)
			if err != nil {
				fmt.Fprintf(status, "✗ %s pre-execution check failed: %v\n", name, err)
				failed = append(failed, name)
				continue
			}
			if skip {
				fmt.Fprintf(status, "⊘ Skipping %s: %s\n", name, reason)
				continue
			}
		}

		files, err := p.Generate(data)
		if err != nil {
			fmt.Fprintf(status, "✗ %s failed: %v\n", name, err)
			failed = append(failed, name)
			continue
		}

		for file := range files {
			if prev, ok := owners[file]; ok {
				return fmt.Errorf("exporters %s and %s both produce %s", prev, name, file)
			}
			owners[file] = name
		}

		fmt.Fprintf(status, "✓ %s\n", name)
		fmt.Fprintf(status, "  └─ %s\n", p.Description())
		a.logger.Debug("exporter finished", "name", name, "files", len(files))
		results = append(results, result{plugin: p, files: files})
	}

	dir := cfg.Output.Dir
	all := make(map[string][]byte)
	for _, r := range results {
		for name, content := range r.files {
			all[name] = content
		}

		if flags.dryRun {
			for _, name := range sortedNames(r.files) {
				fmt.Fprintf(stdout, "Would write: %s (%d bytes)\n", filepath.Join(dir, name), len(r.files[name]))
			}
			continue
		}

		written, err := output.WriteFiles(dir, r.files)
		for _, path := range written {
			fmt.Fprintln(stdout, path)
		}
		if err != nil {
			return err
		}

		if hook, ok := r.plugin.(output.PostExecuteHook); ok {
			if err := hook.PostExecute(ctx, written); err != nil {
				fmt.Fprintf(status, "⚠ %s post-execution hook failed: %v\n", r.plugin.Name(), err)
			}
		}
	}

	if cfg.Output.Bundle != "" && len(all) > 0 {
		if flags.dryRun {
			fmt.Fprintf(stdout, "Would bundle: %s (%d files)\n", cfg.Output.Bundle, len(all))
		} else {
			if err := bundle.Write(cfg.Output.Bundle, all); err != nil {
				return err
			}
			fmt.Fprintln(stdout, cfg.Output.Bundle)
		}
	}

	if flags.showPreview {
		fmt.Fprintln(status, preview.Tokens(data.Tokens, previewWidth(stdout)))
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d exporter(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	fmt.Fprintf(status, "✓ Done! Ran %d exporter(s)\n", len(results))
	return nil
}

// newManager builds the exporter manager and discovers external plugins.
func (a *app) newManager(ctx context.Context, cfg *config.Config) (*manager.Manager, error) {
	mgr := manager.New(manager.Config{
		Dir:             cfg.Plugins.Dir,
		EnabledPlugins:  cfg.Plugins.Enabled,
		DisabledPlugins: cfg.Plugins.Disabled,
	}, a.builtins, manager.WithLogger(a.logger.Named("plugins")))

	if err := mgr.Discover(ctx); err != nil {
		return nil, err
	}
	return mgr, nil
}

func applyPluginArgs(mgr *manager.Manager, flags exportFlags) error {
	byName := make(map[string]*manager.External)
	for _, ext := range mgr.External() {
		ext.SetDryRun(flags.dryRun)
		byName[ext.Name()] = ext
	}

	for name, raw := range flags.pluginArgs {
		ext, ok := byName[name]
		if !ok {
			return fmt.Errorf("--plugin-args given for %s, which is not an external exporter", name)
		}
		args, err := manager.ParseArgs(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		ext.SetArgs(args)
	}
	return nil
}

// statusWriter is where progress lines go: stderr, or nowhere with -q.
func (a *app) statusWriter(cmd *cobra.Command) io.Writer {
	if a.quiet {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

// uniqueNames drops empty and repeated names, keeping first occurrences.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newUnpackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <archive> [dir]",
		Short: "Extract a theme bundle",
		Long: `Extract the files of a .tar.gz or .tar.xz theme bundle written by export
--bundle into dir (default .).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 2 {
				dir = args[1]
			}

			files, err := bundle.Read(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("read bundle", "path", args[0], "files", len(files))

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			written, err := output.WriteFiles(dir, files)
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
}
