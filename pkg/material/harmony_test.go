package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/pkg/colour"
)

func TestDislike(t *testing.T) {
	bile := colour.HCT{Hue: 100, Chroma: 50, Tone: 40}
	assert.True(t, IsDisliked(bile))

	fixed := FixIfDisliked(bile)
	assert.InDelta(t, 70, fixed.Tone, 1)
	assert.False(t, IsDisliked(fixed))

	sky := colour.HCT{Hue: 220, Chroma: 50, Tone: 40}
	assert.False(t, IsDisliked(sky))
	assert.Equal(t, sky, FixIfDisliked(sky))

	pale := colour.HCT{Hue: 100, Chroma: 10, Tone: 40}
	assert.False(t, IsDisliked(pale))
}

func TestTemperature(t *testing.T) {
	assert.True(t, IsWarm(0xFFFF0000))
	assert.False(t, IsCold(0xFFFF0000))
	assert.True(t, IsCold(0xFF0000FF))
	assert.Greater(t, RawTemperature(colour.ToHCT(0xFFFF0000)), RawTemperature(colour.ToHCT(0xFF0000FF)))
}

func TestComplement(t *testing.T) {
	blue := colour.ToHCT(0xFF0000FF)
	c := NewTemperatureCache(blue).Complement()

	assert.Greater(t, differenceDegrees(blue.Hue, c.Hue), 60.0)
	assert.True(t, IsWarm(colour.FromHCT(c.Hue, c.Chroma, c.Tone)))
}

func TestAnalogous(t *testing.T) {
	blue := colour.ToHCT(0xFF0000FF)
	got := NewTemperatureCache(blue).Analogous(5, 12)

	require.Len(t, got, 5)
	assert.Equal(t, blue, got[2])
}

func TestHarmonize(t *testing.T) {
	red := uint32(0xFFFF0000)
	blue := uint32(0xFF0000FF)

	got := colour.ToHCT(Harmonize(red, blue))
	redHCT := colour.ToHCT(red)
	blueHCT := colour.ToHCT(blue)

	assert.InDelta(t, 15, differenceDegrees(got.Hue, redHCT.Hue), 1.5)
	assert.Less(t, differenceDegrees(got.Hue, blueHCT.Hue), differenceDegrees(redHCT.Hue, blueHCT.Hue))
}

func TestHarmonizeSmallDistance(t *testing.T) {
	a := colour.FromHCT(100, 40, 50)
	b := colour.FromHCT(110, 40, 50)

	got := colour.ToHCT(Harmonize(a, b))
	assert.InDelta(t, 105, got.Hue, 1.5)
}

func TestBlendCam16UcsEndpoints(t *testing.T) {
	red := uint32(0xFFFF0000)
	blue := uint32(0xFF0000FF)

	start := colour.ToHCT(BlendCam16Ucs(red, blue, 0))
	end := colour.ToHCT(BlendCam16Ucs(red, blue, 1))

	assert.InDelta(t, colour.ToHCT(red).Hue, start.Hue, 2)
	assert.InDelta(t, colour.ToHCT(blue).Hue, end.Hue, 2)
}

func TestBlendHueKeepsTone(t *testing.T) {
	red := uint32(0xFFFF0000)
	got := BlendHue(red, 0xFF0000FF, 0.5)

	assert.InDelta(t, colour.ToLstar(red), colour.ToLstar(got), 1.5)
}

func TestCustomColor(t *testing.T) {
	spec := CustomColorSpec{Name: "brand", Value: 0xFF00AA55}
	g := CustomColor(0xFF6750A4, spec)

	assert.Equal(t, spec.Value, g.Value)
	assert.Equal(t, spec, g.Spec)

	tones := map[float64]uint32{
		40: g.Light.Color, 100: g.Light.OnColor, 90: g.Light.ColorContainer, 10: g.Light.OnColorContainer,
		80: g.Dark.Color, 20: g.Dark.OnColor, 30: g.Dark.ColorContainer,
	}
	for tone, argb := range tones {
		assert.InDelta(t, tone, colour.ToLstar(argb), 1, "tone %v", tone)
	}
	assert.Equal(t, g.Light.ColorContainer, g.Dark.OnColorContainer)
	assert.Equal(t, g.Dark.Color, g.Dark.Get(SubRoleColor))
	assert.Equal(t, g.Light.OnColorContainer, g.Light.Get(SubRoleOnColorContainer))
}

func TestCustomColorBlend(t *testing.T) {
	source := uint32(0xFF0000FF)
	spec := CustomColorSpec{Name: "alert", Value: 0xFFFF0000, Blend: true}

	g := CustomColor(source, spec)
	assert.Equal(t, Harmonize(spec.Value, source), g.Value)
	assert.NotEqual(t, spec.Value, g.Value)
}
