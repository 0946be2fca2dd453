package theme

import (
	"fmt"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
)

// Schemes is the light and dark pair of a theme.
type Schemes struct {
	Light *material.DynamicScheme
	Dark  *material.DynamicScheme
}

// Palettes are the canonical palettes of a theme.
type Palettes struct {
	Primary        *material.TonalPalette
	Secondary      *material.TonalPalette
	Tertiary       *material.TonalPalette
	Neutral        *material.TonalPalette
	NeutralVariant *material.TonalPalette
	Error          *material.TonalPalette
}

// NamedPalette pairs a palette with its token name.
type NamedPalette struct {
	Name    string
	Palette *material.TonalPalette
}

// Core returns the five core palettes (everything but Error) in canonical
// order, named as they appear in tokens.
func (p Palettes) Core() []NamedPalette {
	return []NamedPalette{
		{Name: "primary", Palette: p.Primary},
		{Name: "secondary", Palette: p.Secondary},
		{Name: "tertiary", Palette: p.Tertiary},
		{Name: "neutral", Palette: p.Neutral},
		{Name: "neutralVariant", Palette: p.NeutralVariant},
	}
}

// Theme is a light and dark scheme built from one set of options, with the
// palettes and custom colours they share. A Theme is never modified after
// CreateTheme returns it.
type Theme struct {
	Source        uint32
	ContrastLevel float64
	Variant       material.Variant
	Schemes       Schemes
	Palettes      Palettes
	CustomColors  []material.CustomColorGroup
}

// ThemeFromSeed builds a Tonal Spot theme at default contrast.
func ThemeFromSeed(seed colour.Color) (*Theme, error) {
	opts := DefaultOptions()
	opts.SourceColor = seed
	return CreateTheme(opts)
}

// CreateTheme builds the light and dark schemes of opts. opts.IsDark is
// ignored.
//
// The theme's palettes are the light scheme's, except that the primary
// palette is always rebuilt from the seed, and any other palette pinned to a
// colour is rebuilt from that colour, so each carries the colour's own chroma.
func CreateTheme(opts Options) (*Theme, error) {
	seed, err := colour.ToArgb(opts.Seed())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seed colour: %w", err)
	}

	opts.IsDark = false
	light, err := CreateScheme(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build light scheme: %w", err)
	}
	opts.IsDark = true
	dark, err := CreateScheme(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build dark scheme: %w", err)
	}

	palettes, err := themePalettes(light, opts)
	if err != nil {
		return nil, err
	}

	groups := make([]material.CustomColorGroup, 0, len(opts.StaticColors))
	for _, sc := range opts.StaticColors {
		value, err := colour.ToArgb(sc.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve static colour %q: %w", sc.Name, err)
		}
		groups = append(groups, material.CustomColor(seed, material.CustomColorSpec{
			Name:  sc.Name,
			Value: value,
			Blend: sc.Blend,
		}))
	}

	return &Theme{
		Source:        seed,
		ContrastLevel: opts.ContrastLevel,
		Variant:       opts.Variant,
		Schemes:       Schemes{Light: light, Dark: dark},
		Palettes:      palettes,
		CustomColors:  groups,
	}, nil
}

func themePalettes(light *material.DynamicScheme, opts Options) (Palettes, error) {
	p := Palettes{
		Primary:        light.PrimaryPalette(),
		Secondary:      light.SecondaryPalette(),
		Tertiary:       light.TertiaryPalette(),
		Neutral:        light.NeutralPalette(),
		NeutralVariant: light.NeutralVariantPalette(),
		Error:          light.ErrorPalette(),
	}

	err := applyPins([]pin{
		{"primary", opts.Seed(), &p.Primary},
		{"secondary", opts.Secondary, &p.Secondary},
		{"tertiary", opts.Tertiary, &p.Tertiary},
		{"neutral", opts.Neutral, &p.Neutral},
		{"neutral variant", opts.NeutralVariant, &p.NeutralVariant},
	})
	return p, err
}
