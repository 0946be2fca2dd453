package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/tonal/pkg/colour"
)

func TestTonalPaletteExtremes(t *testing.T) {
	p := FromArgb(0xFF0000FF)

	assert.Equal(t, uint32(0xFF000000), p.Tone(0))
	assert.Equal(t, uint32(0xFFFFFFFF), p.Tone(100))
}

func TestTonalPaletteToneMatchesLstar(t *testing.T) {
	p := FromHueAndChroma(270, 36)

	for _, tone := range []float64{10, 20, 30, 40, 50, 60, 70, 80, 90} {
		got := colour.ToLstar(p.Tone(tone))
		if math.Abs(got-tone) > 1 {
			t.Errorf("Tone(%v) has L* %v", tone, got)
		}
	}
}

func TestFromArgbKeepsHueAndChroma(t *testing.T) {
	src := uint32(0xFFFF5733)
	h := colour.ToHCT(src)
	p := FromArgb(src)

	assert.InDelta(t, h.Hue, p.Hue(), 1e-9)
	assert.InDelta(t, h.Chroma, p.Chroma(), 1e-9)
	assert.Equal(t, h, p.KeyColor())
}

func TestKeyColorReachesRequestedChroma(t *testing.T) {
	p := FromHueAndChroma(50, 60)
	key := p.KeyColor()

	assert.InDelta(t, 50, key.Hue, 10)
	assert.InDelta(t, 60, key.Chroma, 2)
	assert.Greater(t, key.Tone, 0.0)
	assert.Less(t, key.Tone, 100.0)
}

func TestKeyColorUnreachableChroma(t *testing.T) {
	// No colour carries chroma 200; the key colour settles on the most
	// chromatic tone available.
	key := FromHueAndChroma(149, 200).KeyColor()

	assert.Greater(t, key.Chroma, 50.0)
	assert.Greater(t, key.Tone, 0.0)
	assert.Less(t, key.Tone, 100.0)
}
