// Package theme turns seed colours and options into Material 3 schemes and
// light/dark themes.
//
// A single seed drives every palette through the selected variant. Any of
// the secondary, tertiary, neutral and neutral variant palettes can instead
// be pinned to an explicit colour.
package theme

import (
	"errors"
	"fmt"
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
)

// ErrInvalidConfiguration is returned by Options.Validate.
var ErrInvalidConfiguration = errors.New("invalid theme configuration")

// CustomColor is a user-named colour expanded next to the Material roles.
type CustomColor struct {
	Name  string       `json:"name" yaml:"name" mapstructure:"name"`
	Value colour.Color `json:"value" yaml:"value" mapstructure:"value"`
	// Blend harmonizes the colour's hue with the theme seed.
	Blend bool `json:"blend,omitempty" yaml:"blend,omitempty" mapstructure:"blend"`
}

// Options configures CreateScheme and CreateTheme.
//
// The zero Variant is Monochrome; start from DefaultOptions to get the
// Tonal Spot default.
type Options struct {
	// SourceColor and Primary both name the seed. Primary wins when both are
	// set. With neither set the seed is black.
	SourceColor colour.Color
	Primary     colour.Color

	// Palette overrides. Setting any of them builds the scheme from explicit
	// palettes instead of the variant's derived ones.
	Secondary      colour.Color
	Tertiary       colour.Color
	Neutral        colour.Color
	NeutralVariant colour.Color

	// ContrastLevel is in [-1, 1]; see the material.Contrast* constants.
	ContrastLevel float64
	Variant       material.Variant
	IsDark        bool

	// StaticColors are expanded into custom colour groups by CreateTheme.
	StaticColors []CustomColor
}

// DefaultOptions returns Tonal Spot at default contrast with a black seed.
func DefaultOptions() Options {
	return Options{Variant: material.TonalSpot, ContrastLevel: material.ContrastDefault}
}

// Seed returns the colour that drives the scheme: Primary when set,
// SourceColor otherwise.
func (o Options) Seed() colour.Color {
	if !o.Primary.IsZero() {
		return o.Primary
	}
	return o.SourceColor
}

// HasOverrides reports whether any palette beyond the primary is pinned.
func (o Options) HasOverrides() bool {
	return !o.Secondary.IsZero() || !o.Tertiary.IsZero() || !o.Neutral.IsZero() || !o.NeutralVariant.IsZero()
}

// Validate checks options for use from configuration files and the command
// line, where a missing seed is a mistake rather than a request for black.
// CreateScheme and CreateTheme do not call it.
func (o Options) Validate() error {
	if o.Seed().IsZero() {
		return fmt.Errorf("%w: a source or primary colour is required", ErrInvalidConfiguration)
	}
	if !o.Variant.Valid() {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfiguration, int(o.Variant))
	}
	if math.IsNaN(o.ContrastLevel) || o.ContrastLevel < -1 || o.ContrastLevel > 1 {
		return fmt.Errorf("%w: contrast level %v is outside [-1, 1]", ErrInvalidConfiguration, o.ContrastLevel)
	}

	for _, c := range []struct {
		name  string
		value colour.Color
	}{
		{"source", o.SourceColor},
		{"primary", o.Primary},
		{"secondary", o.Secondary},
		{"tertiary", o.Tertiary},
		{"neutral", o.Neutral},
		{"neutral variant", o.NeutralVariant},
	} {
		if _, err := colour.ToArgb(c.value); err != nil {
			return fmt.Errorf("invalid %s colour: %w", c.name, err)
		}
	}

	seen := make(map[string]bool, len(o.StaticColors))
	for i, sc := range o.StaticColors {
		if sc.Name == "" {
			return fmt.Errorf("%w: static colour %d has no name", ErrInvalidConfiguration, i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("%w: static colour %q is defined twice", ErrInvalidConfiguration, sc.Name)
		}
		seen[sc.Name] = true
		if sc.Value.IsZero() {
			return fmt.Errorf("%w: static colour %q has no value", ErrInvalidConfiguration, sc.Name)
		}
		if _, err := colour.ToArgb(sc.Value); err != nil {
			return fmt.Errorf("invalid static colour %q: %w", sc.Name, err)
		}
	}
	return nil
}

// SchemeFromSeed builds a light Tonal Spot scheme at default contrast.
func SchemeFromSeed(seed colour.Color) (*material.DynamicScheme, error) {
	opts := DefaultOptions()
	opts.SourceColor = seed
	return CreateScheme(opts)
}

// CreateScheme builds one dynamic scheme.
//
// Without palette overrides the variant derives every palette from the
// seed. With overrides, the primary palette comes from the seed colour
// itself and each overridden palette from its colour; the remaining
// palettes keep the variant's derivation.
func CreateScheme(opts Options) (*material.DynamicScheme, error) {
	seed, err := colour.ToArgb(opts.Seed())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seed colour: %w", err)
	}

	base, err := material.NewScheme(opts.Variant, seed, opts.IsDark, opts.ContrastLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s scheme: %w", opts.Variant, err)
	}
	if !opts.HasOverrides() {
		return base, nil
	}

	palettes, err := overridePalettes(base.Palettes(), opts)
	if err != nil {
		return nil, err
	}

	scheme, err := material.NewSchemeWithPalettes(opts.Variant, seed, opts.IsDark, opts.ContrastLevel, palettes)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s scheme: %w", opts.Variant, err)
	}
	return scheme, nil
}

// overridePalettes replaces the palettes of p that opts pins to a colour.
func overridePalettes(p material.Palettes, opts Options) (material.Palettes, error) {
	err := applyPins([]pin{
		{"primary", opts.Seed(), &p.Primary},
		{"secondary", opts.Secondary, &p.Secondary},
		{"tertiary", opts.Tertiary, &p.Tertiary},
		{"neutral", opts.Neutral, &p.Neutral},
		{"neutral variant", opts.NeutralVariant, &p.NeutralVariant},
	})
	return p, err
}

// pin binds a palette slot to the colour that should replace it.
type pin struct {
	name   string
	colour colour.Color
	target **material.TonalPalette
}

// applyPins rebuilds every pinned slot whose colour is set.
func applyPins(pins []pin) error {
	for _, o := range pins {
		if o.colour.IsZero() {
			continue
		}
		palette, err := CreatePalette(o.colour)
		if err != nil {
			return fmt.Errorf("failed to create %s palette: %w", o.name, err)
		}
		*o.target = palette
	}
	return nil
}
