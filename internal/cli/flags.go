package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/theme"
)

// seedFlags are the scheme inputs shared by scheme, theme and export. The
// values live here only so pflag has somewhere to parse into; config.Load
// reads them back through viper when they were set.
type seedFlags struct {
	source, primary, secondary, tertiary, neutral, neutralVariant colour.Color

	variant  material.Variant
	contrast config.Contrast
}

func addSeedFlags(fs *pflag.FlagSet) *seedFlags {
	f := &seedFlags{variant: material.TonalSpot}
	fs.VarP(&f.source, "source", "s", "seed colour (hex or 0xAARRGGBB)")
	fs.VarP(&f.primary, "primary", "p", "primary colour; also used as the seed")
	fs.Var(&f.secondary, "secondary", "secondary key colour override")
	fs.Var(&f.tertiary, "tertiary", "tertiary key colour override")
	fs.Var(&f.neutral, "neutral", "neutral key colour override")
	fs.Var(&f.neutralVariant, "neutral-variant", "neutral variant key colour override")
	fs.Var(&f.variant, "variant", "scheme variant ("+variantNames()+")")
	fs.Var(&f.contrast, "contrast", "contrast level in [-1, 1] or reduced, default, medium, high")
	return f
}

// addOutputFlags registers the projection flags. Only scheme-independent
// ones are shared; export adds the file and plugin flags itself.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.Bool("dark", false, "use the dark scheme for unsuffixed tokens")
	fs.Bool("brightness-variants", false, "add Light and Dark suffixed copies of every token")
	fs.StringSlice("palette-tones", nil, "add palette tone tokens (e.g. 0,50,95)")
	fs.Bool("amoled", false, "force background and surface to pure black")
}

func variantNames() string {
	vs := material.Variants()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}

// loadConfig merges the config file, environment and the command's flags.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := []config.Option{config.WithFlags(cmd.Flags())}
	if a.configFile != "" {
		opts = append(opts, config.WithFile(a.configFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		a.logger.Debug("loaded config", "file", cfg.File)
	}
	return cfg, nil
}

// loadTheme loads the configuration and builds the theme it describes.
func (a *app) loadTheme(cmd *cobra.Command) (*config.Config, *theme.Theme, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts, err := cfg.ThemeOptions()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	th, err := theme.CreateTheme(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create theme: %w", err)
	}

	a.logger.Debug("created theme",
		"source", colour.ToHex(th.Source),
		"variant", th.Variant.String(),
		"contrast", th.ContrastLevel,
		"custom_colors", len(th.CustomColors))
	return cfg, th, nil
}

// parseColours reads each argument as a colour.
func parseColours(args []string) ([]uint32, error) {
	out := make([]uint32, 0, len(args))
	for _, arg := range args {
		c, err := colour.Parse(arg)
		if err != nil {
			return nil, err
		}
		v, err := c.ARGB()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
