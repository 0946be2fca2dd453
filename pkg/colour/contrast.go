package colour

import (
	"cogentcore.org/core/colors/cam/hct"
)

const (
	// DefaultMinContrast is the WCAG AA ratio for body text.
	DefaultMinContrast = 4.5

	// DefaultContrastColorRatio is the ratio ContrastColor aims for.
	DefaultContrastColorRatio = 7.0
)

// RatioOfTones returns the contrast ratio between two tones (L* values).
func RatioOfTones(a, b float64) float64 {
	return float64(hct.ToneContrastRatio(float32(clampTone(a)), float32(clampTone(b))))
}

// ContrastRatio returns the WCAG contrast ratio between two packed colours.
func ContrastRatio(a, b uint32) float64 {
	return RatioOfTones(ToLstar(a), ToLstar(b))
}

// IsContrasting reports whether a and b have at least minRatio contrast.
func IsContrasting(a, b uint32, minRatio float64) bool {
	return ContrastRatio(a, b) >= minRatio
}

// LighterTone returns a tone at least ratio lighter than tone. ok is false
// when no such tone exists.
func LighterTone(tone, ratio float64) (float64, bool) {
	t, ok := hct.ContrastToneLighterTry(float32(tone), float32(ratio))
	return float64(t), ok
}

// DarkerTone returns a tone at least ratio darker than tone. ok is false when
// no such tone exists.
func DarkerTone(tone, ratio float64) (float64, bool) {
	t, ok := hct.ContrastToneDarkerTry(float32(tone), float32(ratio))
	return float64(t), ok
}

// LighterToneUnsafe is LighterTone falling back to 100.
func LighterToneUnsafe(tone, ratio float64) float64 {
	if t, ok := LighterTone(tone, ratio); ok {
		return t
	}
	return 100
}

// DarkerToneUnsafe is DarkerTone falling back to 0.
func DarkerToneUnsafe(tone, ratio float64) float64 {
	if t, ok := DarkerTone(tone, ratio); ok {
		return t
	}
	return 0
}

// ContrastColor returns c with its tone moved to the side (lighter or darker)
// that offers the most contrast, aiming for DefaultContrastColorRatio. Hue and
// chroma are kept where the gamut allows.
func ContrastColor(c uint32) uint32 {
	h := ToHCT(c)
	withDark := RatioOfTones(h.Tone, 0)
	withLight := RatioOfTones(h.Tone, 100)

	var tone float64
	if withLight > withDark {
		tone = LighterToneUnsafe(h.Tone, DefaultContrastColorRatio)
	} else {
		tone = DarkerToneUnsafe(h.Tone, DefaultContrastColorRatio)
	}
	return FromHCT(h.Hue, h.Chroma, tone)
}

func clampTone(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 100:
		return 100
	default:
		return t
	}
}
