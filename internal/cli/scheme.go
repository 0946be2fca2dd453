package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/preview"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/theme"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

func newSchemeCmd(a *app) *cobra.Command {
	var (
		asJSON      bool
		showPreview bool
	)

	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Print every Material role of one scheme",
		Long: `Build a single light or dark scheme from a seed colour and print each role
with its colour and tone.`,
		Example: `  tonal scheme --source "#769cdf"
  tonal scheme -s "#ff5733" --variant vibrant --dark --preview
  tonal scheme -p 0xFF3357FF --contrast high --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			opts, err := cfg.ThemeOptions()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			s, err := theme.CreateScheme(opts)
			if err != nil {
				return fmt.Errorf("failed to create scheme: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				cs, err := tokens.FromScheme(s, tokens.ProjectOptions{ModifyColorScheme: cfg.ProjectOptions().ModifyColorScheme})
				if err != nil {
					return err
				}
				return writeJSON(out, cs.Hex())
			case showPreview:
				_, err := fmt.Fprintln(out, preview.Scheme(s, previewWidth(out)))
				return err
			}

			table := NewTable([]string{"ROLE", "HEX", "TONE"})
			for _, rv := range s.Roles() {
				tone, _ := s.RoleTone(rv.Key)
				table.AddRow([]string{string(rv.Key), colour.ToHex(rv.ARGB), strconv.FormatFloat(tone, 'f', 1, 64)})
			}
			fmt.Fprintf(out, "%s scheme, %s, source %s, contrast %g\n\n",
				s.Variant().Label(), mode(s.IsDark()), colour.ToHex(s.SourceColor()), s.ContrastLevel())
			_, err = fmt.Fprint(out, table.Render())
			return err
		},
	}

	addSeedFlags(cmd.Flags())
	cmd.Flags().Bool("dark", false, "build the dark scheme")
	cmd.Flags().Bool("amoled", false, "force background and surface to pure black (with --json)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print role tokens as JSON")
	cmd.Flags().BoolVar(&showPreview, "preview", false, "render colour swatches")
	cmd.MarkFlagsMutuallyExclusive("json", "preview")
	return cmd
}

func newThemeCmd(a *app) *cobra.Command {
	var (
		asJSON      bool
		showPreview bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the light and dark schemes, palettes and custom colours",
		Long: `Build a full theme: light and dark schemes that share their palettes, plus
any static colours from the config file.`,
		Example: `  tonal theme --source "#769cdf"
  tonal theme -c tonal.yaml --preview
  tonal theme -s "#3357ff" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, th, err := a.loadTheme(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := output.NewData(th, cfg.ProjectOptions(), selectorOrDefault(cfg.Output.Selector))
				if err != nil {
					return err
				}
				return writeJSON(out, data.Document())
			}
			if showPreview {
				w := previewWidth(out)
				fmt.Fprintln(out, preview.Scheme(th.Schemes.Light, w))
				fmt.Fprintln(out)
				fmt.Fprintln(out, preview.Scheme(th.Schemes.Dark, w))
				fmt.Fprintln(out)
				for _, np := range th.Palettes.Core() {
					fmt.Fprintln(out, preview.Palette(np.Name, np.Palette, theme.DefaultPaletteTones(), w))
				}
				return nil
			}

			fmt.Fprintf(out, "%s theme, source %s, contrast %g\n\n",
				th.Variant.Label(), colour.ToHex(th.Source), th.ContrastLevel)

			roles := NewTable([]string{"ROLE", "LIGHT", "DARK"})
			for _, k := range material.RoleKeys() {
				light, _ := th.Schemes.Light.Role(k)
				dark, _ := th.Schemes.Dark.Role(k)
				roles.AddRow([]string{string(k), colour.ToHex(light), colour.ToHex(dark)})
			}
			fmt.Fprint(out, roles.Render())

			if len(th.CustomColors) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			custom := NewTable([]string{"COLOUR", "VALUE", "ROLE", "LIGHT", "DARK"})
			for _, g := range th.CustomColors {
				for _, sub := range material.SubRoles() {
					custom.AddRow([]string{
						g.Spec.Name,
						colour.ToHex(g.Value),
						tokens.FormatTokenName(string(sub), g.Spec.Name, ""),
						colour.ToHex(g.Light.Get(sub)),
						colour.ToHex(g.Dark.Get(sub)),
					})
				}
			}
			_, err = fmt.Fprint(out, custom.Render())
			return err
		},
	}

	addSeedFlags(cmd.Flags())
	cmd.Flags().StringSlice("palette-tones", nil, "extra palette tones to include with --json")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the theme document as JSON")
	cmd.Flags().BoolVar(&showPreview, "preview", false, "render colour swatches")
	cmd.MarkFlagsMutuallyExclusive("json", "preview")
	return cmd
}

func mode(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func selectorOrDefault(s string) string {
	if s == "" {
		return config.DefaultSelector
	}
	return s
}

// previewWidth is the terminal width when w is one.
func previewWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return preview.TerminalWidth(f)
	}
	return preview.DefaultWidth
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
