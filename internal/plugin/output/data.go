package output

import (
	"errors"
	"strconv"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/plugin"
	"github.com/jmylchreest/tonal/pkg/theme"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

// Data is what every exporter receives.
type Data struct {
	Theme *theme.Theme
	// Options are the projection options Tokens was built with.
	Options tokens.ProjectOptions
	// Tokens is the projection the user asked for.
	Tokens tokens.ColorScheme
	// Light and Dark are the plain role and custom colour projections of
	// each side, with the modify hook applied but without brightness
	// variants.
	Light tokens.ColorScheme
	Dark  tokens.ColorScheme
	// Selector is the CSS selector light tokens are emitted under.
	Selector string
}

// NewData projects th once per side and once with opts.
func NewData(th *theme.Theme, opts tokens.ProjectOptions, selector string) (*Data, error) {
	if th == nil {
		return nil, errors.New("theme cannot be nil")
	}

	all, err := tokens.FromTheme(th, opts)
	if err != nil {
		return nil, err
	}

	side := tokens.ProjectOptions{ModifyColorScheme: opts.ModifyColorScheme}
	light, err := tokens.FromTheme(th, side)
	if err != nil {
		return nil, err
	}
	side.Dark = true
	dark, err := tokens.FromTheme(th, side)
	if err != nil {
		return nil, err
	}

	return &Data{
		Theme:    th,
		Options:  opts,
		Tokens:   all,
		Light:    light,
		Dark:     dark,
		Selector: selector,
	}, nil
}

// Document is the structured form of a theme written by the json, yaml and
// toml exporters and sent to external plugins.
type Document = plugin.ThemeDocument

// Document returns the structured form of d. Palettes list the default
// tones plus any palette tones requested in the projection options.
func (d *Data) Document() Document {
	th := d.Theme
	doc := Document{
		Source:        colour.ToHex(th.Source),
		Variant:       th.Variant.String(),
		ContrastLevel: th.ContrastLevel,
		Schemes: plugin.Schemes{
			Light: roleHex(th.Schemes.Light),
			Dark:  roleHex(th.Schemes.Dark),
		},
		Palettes: make(map[string]map[string]string),
		Tokens:   d.Tokens.Hex(),
	}

	tones := theme.DefaultPaletteTones()
	tones = append(tones, d.Options.PaletteTones...)
	named := append(th.Palettes.Core(), theme.NamedPalette{Name: "error", Palette: th.Palettes.Error})
	for _, np := range named {
		m := make(map[string]string, len(tones))
		for _, tone := range tones {
			m[strconv.FormatFloat(tone, 'f', -1, 64)] = colour.ToHex(np.Palette.Tone(tone))
		}
		doc.Palettes[np.Name] = m
	}

	for _, g := range th.CustomColors {
		doc.CustomColors = append(doc.CustomColors, plugin.CustomColor{
			Name:  g.Spec.Name,
			Value: colour.ToHex(g.Value),
			Blend: g.Spec.Blend,
			Light: subRoleHex(g.Light),
			Dark:  subRoleHex(g.Dark),
		})
	}
	return doc
}

// ThemeData wraps the document for external exporters.
func (d *Data) ThemeData(args map[string]any, dryRun bool) plugin.ThemeData {
	return plugin.ThemeData{
		Theme:      d.Document(),
		Dark:       d.Options.Dark,
		Selector:   d.Selector,
		PluginArgs: args,
		DryRun:     dryRun,
	}
}

func roleHex(s *material.DynamicScheme) map[string]string {
	roles := s.Roles()
	out := make(map[string]string, len(roles))
	for _, rv := range roles {
		out[string(rv.Key)] = colour.ToHex(rv.ARGB)
	}
	return out
}

func subRoleHex(v material.CustomColorVariant) map[string]string {
	out := make(map[string]string, 4)
	for _, sub := range material.SubRoles() {
		out[string(sub)] = colour.ToHex(v.Get(sub))
	}
	return out
}
