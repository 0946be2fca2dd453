package material

import (
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// Hue breakpoints and rotations used by the vibrant and expressive variants
// to pick secondary and tertiary hues.
var (
	vibrantHues               = []float64{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRotations = []float64{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations  = []float64{35, 30, 20, 25, 30, 35, 30, 25, 25}

	expressiveHues               = []float64{0, 21, 51, 121, 151, 191, 271, 321, 360}
	expressiveSecondaryRotations = []float64{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float64{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

// variantPalettes derives the five core palettes of a variant from a seed.
func variantPalettes(v Variant, src colour.HCT) Palettes {
	hue := src.Hue
	hc := FromHueAndChroma

	switch v {
	case Monochrome:
		return Palettes{
			Primary:        hc(hue, 0),
			Secondary:      hc(hue, 0),
			Tertiary:       hc(hue, 0),
			Neutral:        hc(hue, 0),
			NeutralVariant: hc(hue, 0),
		}
	case Neutral:
		return Palettes{
			Primary:        hc(hue, 12),
			Secondary:      hc(hue, 8),
			Tertiary:       hc(hue, 16),
			Neutral:        hc(hue, 2),
			NeutralVariant: hc(hue, 2),
		}
	case Vibrant:
		return Palettes{
			Primary:        hc(hue, 200),
			Secondary:      hc(rotatedHue(hue, vibrantHues, vibrantSecondaryRotations), 24),
			Tertiary:       hc(rotatedHue(hue, vibrantHues, vibrantTertiaryRotations), 32),
			Neutral:        hc(hue, 10),
			NeutralVariant: hc(hue, 12),
		}
	case Expressive:
		return Palettes{
			Primary:        hc(sanitizeDegrees(hue+240), 40),
			Secondary:      hc(rotatedHue(hue, expressiveHues, expressiveSecondaryRotations), 24),
			Tertiary:       hc(rotatedHue(hue, expressiveHues, expressiveTertiaryRotations), 32),
			Neutral:        hc(sanitizeDegrees(hue+15), 8),
			NeutralVariant: hc(sanitizeDegrees(hue+15), 12),
		}
	case Fidelity, Content:
		var tertiary colour.HCT
		if v == Fidelity {
			tertiary = NewTemperatureCache(src).Complement()
		} else {
			tertiary = NewTemperatureCache(src).Analogous(3, 6)[2]
		}
		tertiary = FixIfDisliked(tertiary)
		return Palettes{
			Primary:        hc(hue, src.Chroma),
			Secondary:      hc(hue, math.Max(src.Chroma-32, src.Chroma*0.5)),
			Tertiary:       FromArgb(colour.FromHCT(tertiary.Hue, tertiary.Chroma, tertiary.Tone)),
			Neutral:        hc(hue, src.Chroma/8),
			NeutralVariant: hc(hue, src.Chroma/8+4),
		}
	case Rainbow:
		return Palettes{
			Primary:        hc(hue, 48),
			Secondary:      hc(hue, 16),
			Tertiary:       hc(sanitizeDegrees(hue+60), 24),
			Neutral:        hc(hue, 0),
			NeutralVariant: hc(hue, 0),
		}
	case FruitSalad:
		return Palettes{
			Primary:        hc(sanitizeDegrees(hue-50), 48),
			Secondary:      hc(sanitizeDegrees(hue-50), 36),
			Tertiary:       hc(hue, 36),
			Neutral:        hc(hue, 10),
			NeutralVariant: hc(hue, 16),
		}
	default: // TonalSpot
		return Palettes{
			Primary:        hc(hue, 36),
			Secondary:      hc(hue, 16),
			Tertiary:       hc(sanitizeDegrees(hue+60), 24),
			Neutral:        hc(hue, 6),
			NeutralVariant: hc(hue, 8),
		}
	}
}

// rotatedHue finds the band of hues the source hue falls in and rotates it
// by that band's amount.
func rotatedHue(sourceHue float64, hues, rotations []float64) float64 {
	if len(rotations) == 1 {
		return sanitizeDegrees(sourceHue + rotations[0])
	}
	for i := 0; i < len(hues)-1; i++ {
		if hues[i] < sourceHue && sourceHue < hues[i+1] {
			return sanitizeDegrees(sourceHue + rotations[i])
		}
	}
	return sourceHue
}
