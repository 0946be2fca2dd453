package theme

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/ordmap"

	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
)

// DefaultAnalogousOffset is the hue offset, in degrees, of AnalogousPalettes
// when callers have no preference.
const DefaultAnalogousOffset = 30.0

// DefaultPaletteTones returns the tones exported for a palette when none
// are requested. Each call returns a fresh slice.
func DefaultPaletteTones() []float64 {
	return []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}
}

// CreatePalette returns the tonal palette of c's hue and chroma.
func CreatePalette(c colour.Color) (*material.TonalPalette, error) {
	argb, err := colour.ToArgb(c)
	if err != nil {
		return nil, err
	}
	return material.FromArgb(argb), nil
}

// PaletteColors maps each requested tone to its colour in p. Iteration order
// of the result follows tones exactly; tones itself is left untouched.
func PaletteColors(p *material.TonalPalette, tones []float64) *ordmap.Map[float64, uint32] {
	out := ordmap.New[float64, uint32]()
	for _, t := range tones {
		out.Add(t, p.Tone(t))
	}
	return out
}

// MapPaletteTones is PaletteColors for a colour. A nil tones slice selects
// DefaultPaletteTones.
func MapPaletteTones(c colour.Color, tones []float64) (*ordmap.Map[float64, uint32], error) {
	p, err := CreatePalette(c)
	if err != nil {
		return nil, err
	}
	if tones == nil {
		tones = DefaultPaletteTones()
	}
	return PaletteColors(p, tones), nil
}

// IsColorInPalette reports whether c has exactly the hue and chroma of p.
func IsColorInPalette(p *material.TonalPalette, c colour.Color) (bool, error) {
	argb, err := colour.ToArgb(c)
	if err != nil {
		return false, fmt.Errorf("failed to check palette membership: %w", err)
	}
	h := colour.ToHCT(argb)
	return h.Hue == p.Hue() && h.Chroma == p.Chroma(), nil
}

// ComplementaryPalette returns the palette opposite p on the hue wheel.
func ComplementaryPalette(p *material.TonalPalette) *material.TonalPalette {
	return material.FromHueAndChroma(normalizeHue(p.Hue()+180), p.Chroma())
}

// AnalogousPalettes returns the palettes offset degrees either side of p,
// clockwise first.
func AnalogousPalettes(p *material.TonalPalette, offset float64) [2]*material.TonalPalette {
	return [2]*material.TonalPalette{
		material.FromHueAndChroma(normalizeHue(p.Hue()+offset), p.Chroma()),
		material.FromHueAndChroma(normalizeHue(p.Hue()-offset), p.Chroma()),
	}
}

// normalizeHue maps any angle into [0, 360).
func normalizeHue(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
