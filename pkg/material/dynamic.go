package material

import (
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// contrastCurve holds the contrast ratio a role needs at contrast levels
// -1, 0, 0.5 and 1. Values in between are linearly interpolated.
type contrastCurve struct {
	low, normal, medium, high float64
}

func (c contrastCurve) get(level float64) float64 {
	switch {
	case level <= -1:
		return c.low
	case level < 0:
		return lerp(c.low, c.normal, level+1)
	case level < 0.5:
		return lerp(c.normal, c.medium, level/0.5)
	case level < 1:
		return lerp(c.medium, c.high, (level-0.5)/0.5)
	default:
		return c.high
	}
}

// tonePolarity describes how the two roles of a toneDeltaPair are ordered.
type tonePolarity int

const (
	polarityDarker tonePolarity = iota
	polarityLighter
	polarityNearer
	polarityFarther
)

// toneDeltaPair keeps two roles at least delta tones apart, e.g. a
// container and the accent drawn on it.
type toneDeltaPair struct {
	roleA, roleB *dynamicColor
	delta        float64
	polarity     tonePolarity
	stayTogether bool
}

// dynamicColor is a role whose tone is resolved against a scheme: it
// starts from a preferred tone and is pushed away from its background until
// the contrast curve for the scheme's contrast level is met.
type dynamicColor struct {
	name             RoleKey
	palette          func(s *DynamicScheme) *TonalPalette
	tone             func(s *DynamicScheme) float64
	isBackground     bool
	background       func(s *DynamicScheme) *dynamicColor
	secondBackground func(s *DynamicScheme) *dynamicColor
	contrastCurve    *contrastCurve
	toneDeltaPair    func(s *DynamicScheme) toneDeltaPair
}

// argb resolves the role to a packed colour.
func (d *dynamicColor) argb(s *DynamicScheme) uint32 {
	return d.palette(s).Tone(d.getTone(s))
}

//nolint:gocyclo
func (d *dynamicColor) getTone(s *DynamicScheme) float64 {
	decreasingContrast := s.contrastLevel < 0

	if d.toneDeltaPair != nil {
		pair := d.toneDeltaPair(s)
		bgTone := d.background(s).getTone(s)

		aIsNearer := pair.polarity == polarityNearer ||
			(pair.polarity == polarityLighter && !s.isDark) ||
			(pair.polarity == polarityDarker && s.isDark)
		nearer, farther := pair.roleA, pair.roleB
		if !aIsNearer {
			nearer, farther = pair.roleB, pair.roleA
		}
		amNearer := d.name == nearer.name
		expansionDir := -1.0
		if s.isDark {
			expansionDir = 1
		}

		nContrast := nearer.contrastCurve.get(s.contrastLevel)
		fContrast := farther.contrastCurve.get(s.contrastLevel)

		nTone := nearer.tone(s)
		if colour.RatioOfTones(bgTone, nTone) < nContrast {
			nTone = foregroundTone(bgTone, nContrast)
		}
		fTone := farther.tone(s)
		if colour.RatioOfTones(bgTone, fTone) < fContrast {
			fTone = foregroundTone(bgTone, fContrast)
		}

		if decreasingContrast {
			nTone = foregroundTone(bgTone, nContrast)
			fTone = foregroundTone(bgTone, fContrast)
		}

		if (fTone-nTone)*expansionDir < pair.delta {
			fTone = clamp(0, 100, nTone+pair.delta*expansionDir)
			if (fTone-nTone)*expansionDir < pair.delta {
				nTone = clamp(0, 100, fTone-pair.delta*expansionDir)
			}
		}

		// Tones 50..59 are avoided for containers: they contrast poorly
		// with both black and white.
		switch {
		case 50 <= nTone && nTone < 60:
			if expansionDir > 0 {
				nTone = 60
				fTone = math.Max(fTone, nTone+pair.delta*expansionDir)
			} else {
				nTone = 49
				fTone = math.Min(fTone, nTone+pair.delta*expansionDir)
			}
		case 50 <= fTone && fTone < 60:
			if pair.stayTogether {
				if expansionDir > 0 {
					nTone = 60
					fTone = math.Max(fTone, nTone+pair.delta*expansionDir)
				} else {
					nTone = 49
					fTone = math.Min(fTone, nTone+pair.delta*expansionDir)
				}
			} else if expansionDir > 0 {
				fTone = 60
			} else {
				fTone = 49
			}
		}

		if amNearer {
			return nTone
		}
		return fTone
	}

	answer := d.tone(s)
	if d.background == nil {
		return answer
	}

	bgTone := d.background(s).getTone(s)
	desiredRatio := d.contrastCurve.get(s.contrastLevel)

	if colour.RatioOfTones(bgTone, answer) < desiredRatio {
		answer = foregroundTone(bgTone, desiredRatio)
	}
	if decreasingContrast {
		answer = foregroundTone(bgTone, desiredRatio)
	}

	if d.isBackground && 50 <= answer && answer < 60 {
		if colour.RatioOfTones(49, bgTone) >= desiredRatio {
			answer = 49
		} else {
			answer = 60
		}
	}

	if d.secondBackground == nil {
		return answer
	}

	bgTone1 := d.background(s).getTone(s)
	bgTone2 := d.secondBackground(s).getTone(s)
	upper := math.Max(bgTone1, bgTone2)
	lower := math.Min(bgTone1, bgTone2)

	if colour.RatioOfTones(upper, answer) >= desiredRatio && colour.RatioOfTones(lower, answer) >= desiredRatio {
		return answer
	}

	lightOption, lightOK := colour.LighterTone(upper, desiredRatio)
	darkOption, darkOK := colour.DarkerTone(lower, desiredRatio)

	if tonePrefersLightForeground(bgTone1) || tonePrefersLightForeground(bgTone2) {
		if !lightOK {
			return 100
		}
		return lightOption
	}
	if lightOK != darkOK {
		if lightOK {
			return lightOption
		}
		return darkOption
	}
	if !darkOK {
		return 0
	}
	return darkOption
}

// foregroundTone returns a tone with at least ratio contrast against bgTone,
// preferring the lighter side for dark backgrounds.
func foregroundTone(bgTone, ratio float64) float64 {
	lighterTone := colour.LighterToneUnsafe(bgTone, ratio)
	darkerTone := colour.DarkerToneUnsafe(bgTone, ratio)
	lighterRatio := colour.RatioOfTones(lighterTone, bgTone)
	darkerRatio := colour.RatioOfTones(darkerTone, bgTone)

	if tonePrefersLightForeground(bgTone) {
		negligible := math.Abs(lighterRatio-darkerRatio) < 0.1 && lighterRatio < ratio && darkerRatio < ratio
		if lighterRatio >= ratio || lighterRatio >= darkerRatio || negligible {
			return lighterTone
		}
		return darkerTone
	}
	if darkerRatio >= ratio || darkerRatio >= lighterRatio {
		return darkerTone
	}
	return lighterTone
}

// enableLightForeground nudges tones in 50..59 down to 49 so that white
// text can sit on them.
func enableLightForeground(tone float64) float64 {
	if tonePrefersLightForeground(tone) && !toneAllowsLightForeground(tone) {
		return 49
	}
	return tone
}

func tonePrefersLightForeground(tone float64) bool {
	return math.Round(tone) < 60
}

func toneAllowsLightForeground(tone float64) bool {
	return math.Round(tone) <= 49
}
