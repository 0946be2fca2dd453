package theme

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
)

func TestPaletteColorsKeepsOrder(t *testing.T) {
	p, err := CreatePalette(colour.Hex("#769cdf"))
	require.NoError(t, err)

	tones := []float64{100, 0, 50}
	got := PaletteColors(p, tones)

	assert.Equal(t, []float64{100, 0, 50}, got.Keys())
	assert.Equal(t, []float64{100, 0, 50}, tones, "input tones must not be reordered")
	assert.Equal(t, p.Tone(50), got.ValueByKey(50))
}

func TestMapPaletteTonesDefaults(t *testing.T) {
	got, err := MapPaletteTones(colour.ARGB(0xFF769CDF), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPaletteTones(), got.Keys())
	assert.Equal(t, uint32(0xFFFFFFFF), got.ValueByKey(100))

	_, err = MapPaletteTones(colour.Hex("nope"), nil)
	assert.ErrorIs(t, err, colour.ErrInvalidColorFormat)
}

func TestIsColorInPalette(t *testing.T) {
	c := colour.Hex("#ff5733")
	p, err := CreatePalette(c)
	require.NoError(t, err)

	in, err := IsColorInPalette(p, c)
	require.NoError(t, err)
	assert.True(t, in)

	in, err = IsColorInPalette(p, colour.Hex("#3357ff"))
	require.NoError(t, err)
	assert.False(t, in)
}

func TestDerivedPalettes(t *testing.T) {
	p := material.FromHueAndChroma(300, 40)

	comp := ComplementaryPalette(p)
	assert.InDelta(t, 120, comp.Hue(), 1e-9)
	assert.InDelta(t, 40, comp.Chroma(), 1e-9)

	analogous := AnalogousPalettes(p, DefaultAnalogousOffset)
	assert.InDelta(t, 330, analogous[0].Hue(), 1e-9)
	assert.InDelta(t, 270, analogous[1].Hue(), 1e-9)

	wrap := AnalogousPalettes(material.FromHueAndChroma(10, 40), 30)
	assert.InDelta(t, 40, wrap[0].Hue(), 1e-9)
	assert.InDelta(t, 340, wrap[1].Hue(), 1e-9)
}

func TestSchemeFromSeed(t *testing.T) {
	s, err := SchemeFromSeed(colour.ARGB(0xFF769CDF))
	require.NoError(t, err)

	assert.Equal(t, uint32(0xFF769CDF), s.SourceColor())
	assert.Equal(t, material.TonalSpot, s.Variant())
	assert.False(t, s.IsDark())

	primary, ok := s.Role(material.Primary)
	require.True(t, ok)
	assert.Equal(t, uint8(0xFF), colour.Alpha(primary))
}

func TestPrimaryWinsOverSource(t *testing.T) {
	opts := DefaultOptions()
	opts.SourceColor = colour.Hex("#ff0000")
	opts.Primary = colour.Hex("#0000ff")

	s, err := CreateScheme(opts)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF0000FF), s.SourceColor())

	th, err := CreateTheme(opts)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF0000FF), th.Source)
}

func TestMissingSeedIsBlack(t *testing.T) {
	s, err := CreateScheme(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint32(0), s.SourceColor())

	err = DefaultOptions().Validate()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCreateSchemeInvalidColour(t *testing.T) {
	opts := DefaultOptions()
	opts.SourceColor = colour.Hex("not-a-color")

	_, err := CreateScheme(opts)
	assert.ErrorIs(t, err, colour.ErrInvalidColorFormat)

	opts.SourceColor = colour.Hex("#ffffff")
	opts.Tertiary = colour.Hex("#12")
	_, err = CreateScheme(opts)
	assert.ErrorIs(t, err, colour.ErrInvalidColorFormat)
}

func TestCreateSchemeOverrides(t *testing.T) {
	opts := DefaultOptions()
	opts.SourceColor = colour.Hex("#769cdf")
	opts.Secondary = colour.Hex("#00ff00")

	base, err := SchemeFromSeed(opts.SourceColor)
	require.NoError(t, err)
	s, err := CreateScheme(opts)
	require.NoError(t, err)

	green := colour.ToHCT(0xFF00FF00)
	assert.InDelta(t, green.Hue, s.SecondaryPalette().Hue(), 1e-9)
	assert.InDelta(t, green.Chroma, s.SecondaryPalette().Chroma(), 1e-9)

	seed := colour.ToHCT(0xFF769CDF)
	assert.InDelta(t, seed.Chroma, s.PrimaryPalette().Chroma(), 1e-9)

	assert.InDelta(t, base.TertiaryPalette().Hue(), s.TertiaryPalette().Hue(), 1e-9)
	assert.InDelta(t, base.NeutralPalette().Chroma(), s.NeutralPalette().Chroma(), 1e-9)
	assert.Equal(t, opts.Variant, s.Variant())
	assert.Equal(t, base.SourceColor(), s.SourceColor())
}

func TestValidate(t *testing.T) {
	valid := DefaultOptions()
	valid.Primary = colour.Hex("#769cdf")
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"bad variant", func(o *Options) { o.Variant = material.Variant(99) }},
		{"contrast too high", func(o *Options) { o.ContrastLevel = 2 }},
		{"contrast nan", func(o *Options) { o.ContrastLevel = math.NaN() }},
		{"unnamed static colour", func(o *Options) {
			o.StaticColors = []CustomColor{{Value: colour.Hex("#fff")}}
		}},
		{"duplicate static colour", func(o *Options) {
			o.StaticColors = []CustomColor{
				{Name: "brand", Value: colour.Hex("#fff")},
				{Name: "brand", Value: colour.Hex("#000")},
			}
		}},
		{"static colour without value", func(o *Options) {
			o.StaticColors = []CustomColor{{Name: "brand"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrInvalidConfiguration)
		})
	}

	bad := valid
	bad.Neutral = colour.Hex("xyz")
	assert.ErrorIs(t, bad.Validate(), colour.ErrInvalidColorFormat)
}

func TestCreateTheme(t *testing.T) {
	th, err := ThemeFromSeed(colour.ARGB(0xFF769CDF))
	require.NoError(t, err)

	assert.Equal(t, uint32(0xFF769CDF), th.Source)
	assert.Equal(t, material.TonalSpot, th.Variant)
	assert.False(t, th.Schemes.Light.IsDark())
	assert.True(t, th.Schemes.Dark.IsDark())
	assert.Empty(t, th.CustomColors)

	seed := colour.ToHCT(0xFF769CDF)
	assert.InDelta(t, seed.Hue, th.Palettes.Primary.Hue(), 1e-9)
	assert.InDelta(t, seed.Chroma, th.Palettes.Primary.Chroma(), 1e-9)
	assert.Equal(t, material.FromArgb(0xFF769CDF).Tone(40), th.Palettes.Primary.Tone(40))
	assert.Same(t, th.Schemes.Light.SecondaryPalette(), th.Palettes.Secondary)
	assert.Same(t, th.Schemes.Light.ErrorPalette(), th.Palettes.Error)
	require.Len(t, th.Palettes.Core(), 5)
	assert.Equal(t, "neutralVariant", th.Palettes.Core()[4].Name)
}

func TestCreateThemePinnedPalettes(t *testing.T) {
	opts := DefaultOptions()
	opts.Primary = colour.Hex("#ff5733")
	opts.Neutral = colour.Hex("#808080")
	opts.ContrastLevel = material.ContrastMedium

	th, err := CreateTheme(opts)
	require.NoError(t, err)

	want := colour.ToHCT(0xFFFF5733)
	assert.InDelta(t, want.Chroma, th.Palettes.Primary.Chroma(), 1e-9)
	assert.InDelta(t, colour.ToHCT(0xFF808080).Chroma, th.Palettes.Neutral.Chroma(), 1e-9)
	assert.Same(t, th.Schemes.Light.TertiaryPalette(), th.Palettes.Tertiary)
	assert.InDelta(t, material.ContrastMedium, th.ContrastLevel, 1e-9)
	assert.InDelta(t, material.ContrastMedium, th.Schemes.Dark.ContrastLevel(), 1e-9)
}

func TestCreateThemeCustomColors(t *testing.T) {
	opts := DefaultOptions()
	opts.SourceColor = colour.Hex("#769cdf")
	opts.StaticColors = []CustomColor{
		{Name: "Electric Leaf", Value: colour.Hex("#3fd13f")},
		{Name: "warning", Value: colour.ARGB(0xFFFFA000), Blend: true},
	}

	th, err := CreateTheme(opts)
	require.NoError(t, err)
	require.Len(t, th.CustomColors, 2)

	assert.Equal(t, "Electric Leaf", th.CustomColors[0].Spec.Name)
	assert.Equal(t, uint32(0xFF3FD13F), th.CustomColors[0].Value)
	assert.Equal(t, material.Harmonize(0xFFFFA000, 0xFF769CDF), th.CustomColors[1].Value)

	opts.StaticColors = []CustomColor{{Name: "bad", Value: colour.Hex("#zz")}}
	_, err = CreateTheme(opts)
	assert.ErrorIs(t, err, colour.ErrInvalidColorFormat)
}
