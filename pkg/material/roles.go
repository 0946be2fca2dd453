package material

import (
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// RoleKey names a Material 3 colour role, e.g. "primary" or "onSurface".
type RoleKey string

// The fixed Material 3 role keys.
const (
	PrimaryPaletteKeyColor        RoleKey = "primaryPaletteKeyColor"
	SecondaryPaletteKeyColor      RoleKey = "secondaryPaletteKeyColor"
	TertiaryPaletteKeyColor       RoleKey = "tertiaryPaletteKeyColor"
	NeutralPaletteKeyColor        RoleKey = "neutralPaletteKeyColor"
	NeutralVariantPaletteKeyColor RoleKey = "neutralVariantPaletteKeyColor"
	Background                    RoleKey = "background"
	OnBackground                  RoleKey = "onBackground"
	Surface                       RoleKey = "surface"
	SurfaceDim                    RoleKey = "surfaceDim"
	SurfaceBright                 RoleKey = "surfaceBright"
	SurfaceContainerLowest        RoleKey = "surfaceContainerLowest"
	SurfaceContainerLow           RoleKey = "surfaceContainerLow"
	SurfaceContainer              RoleKey = "surfaceContainer"
	SurfaceContainerHigh          RoleKey = "surfaceContainerHigh"
	SurfaceContainerHighest       RoleKey = "surfaceContainerHighest"
	OnSurface                     RoleKey = "onSurface"
	SurfaceVariant                RoleKey = "surfaceVariant"
	OnSurfaceVariant              RoleKey = "onSurfaceVariant"
	InverseSurface                RoleKey = "inverseSurface"
	InverseOnSurface              RoleKey = "inverseOnSurface"
	Outline                       RoleKey = "outline"
	OutlineVariant                RoleKey = "outlineVariant"
	Shadow                        RoleKey = "shadow"
	Scrim                         RoleKey = "scrim"
	SurfaceTint                   RoleKey = "surfaceTint"
	Primary                       RoleKey = "primary"
	OnPrimary                     RoleKey = "onPrimary"
	PrimaryContainer              RoleKey = "primaryContainer"
	OnPrimaryContainer            RoleKey = "onPrimaryContainer"
	InversePrimary                RoleKey = "inversePrimary"
	Secondary                     RoleKey = "secondary"
	OnSecondary                   RoleKey = "onSecondary"
	SecondaryContainer            RoleKey = "secondaryContainer"
	OnSecondaryContainer          RoleKey = "onSecondaryContainer"
	Tertiary                      RoleKey = "tertiary"
	OnTertiary                    RoleKey = "onTertiary"
	TertiaryContainer             RoleKey = "tertiaryContainer"
	OnTertiaryContainer           RoleKey = "onTertiaryContainer"
	Error                         RoleKey = "error"
	OnError                       RoleKey = "onError"
	ErrorContainer                RoleKey = "errorContainer"
	OnErrorContainer              RoleKey = "onErrorContainer"
	PrimaryFixed                  RoleKey = "primaryFixed"
	PrimaryFixedDim               RoleKey = "primaryFixedDim"
	OnPrimaryFixed                RoleKey = "onPrimaryFixed"
	OnPrimaryFixedVariant         RoleKey = "onPrimaryFixedVariant"
	SecondaryFixed                RoleKey = "secondaryFixed"
	SecondaryFixedDim             RoleKey = "secondaryFixedDim"
	OnSecondaryFixed              RoleKey = "onSecondaryFixed"
	OnSecondaryFixedVariant       RoleKey = "onSecondaryFixedVariant"
	TertiaryFixed                 RoleKey = "tertiaryFixed"
	TertiaryFixedDim              RoleKey = "tertiaryFixedDim"
	OnTertiaryFixed               RoleKey = "onTertiaryFixed"
	OnTertiaryFixedVariant        RoleKey = "onTertiaryFixedVariant"
)

var roleKeys = []RoleKey{
	PrimaryPaletteKeyColor, SecondaryPaletteKeyColor, TertiaryPaletteKeyColor,
	NeutralPaletteKeyColor, NeutralVariantPaletteKeyColor,
	Background, OnBackground,
	Surface, SurfaceDim, SurfaceBright,
	SurfaceContainerLowest, SurfaceContainerLow, SurfaceContainer, SurfaceContainerHigh, SurfaceContainerHighest,
	OnSurface, SurfaceVariant, OnSurfaceVariant, InverseSurface, InverseOnSurface,
	Outline, OutlineVariant, Shadow, Scrim, SurfaceTint,
	Primary, OnPrimary, PrimaryContainer, OnPrimaryContainer, InversePrimary,
	Secondary, OnSecondary, SecondaryContainer, OnSecondaryContainer,
	Tertiary, OnTertiary, TertiaryContainer, OnTertiaryContainer,
	Error, OnError, ErrorContainer, OnErrorContainer,
	PrimaryFixed, PrimaryFixedDim, OnPrimaryFixed, OnPrimaryFixedVariant,
	SecondaryFixed, SecondaryFixedDim, OnSecondaryFixed, OnSecondaryFixedVariant,
	TertiaryFixed, TertiaryFixedDim, OnTertiaryFixed, OnTertiaryFixedVariant,
}

// RoleKeys returns every role key in canonical order. The slice is a copy.
func RoleKeys() []RoleKey {
	out := make([]RoleKey, len(roleKeys))
	copy(out, roleKeys)
	return out
}

// roleSet wires every role to its palette, preferred tone and contrast
// constraints. Roles refer to each other (backgrounds, tone-delta pairs), so
// they are built inside a function rather than as package-level literals.
type roleSet struct {
	byKey map[RoleKey]*dynamicColor
}

var roles = buildRoles()

func (r *roleSet) get(k RoleKey) *dynamicColor {
	return r.byKey[k]
}

func isFidelity(s *DynamicScheme) bool {
	return s.variant == Fidelity || s.variant == Content
}

func isMonochrome(s *DynamicScheme) bool {
	return s.variant == Monochrome
}

// pick returns dark when the scheme is dark, light otherwise.
func pick(s *DynamicScheme, dark, light float64) float64 {
	if s.isDark {
		return dark
	}
	return light
}

func curve(low, normal, medium, high float64) *contrastCurve {
	return &contrastCurve{low: low, normal: normal, medium: medium, high: high}
}

func primaryPalette(s *DynamicScheme) *TonalPalette        { return s.primary }
func secondaryPalette(s *DynamicScheme) *TonalPalette      { return s.secondary }
func tertiaryPalette(s *DynamicScheme) *TonalPalette       { return s.tertiary }
func neutralPalette(s *DynamicScheme) *TonalPalette        { return s.neutral }
func neutralVariantPalette(s *DynamicScheme) *TonalPalette { return s.neutralVariant }
func errorPalette(s *DynamicScheme) *TonalPalette          { return s.error }

//nolint:funlen,gocyclo
func buildRoles() *roleSet {
	r := &roleSet{byKey: make(map[RoleKey]*dynamicColor, len(roleKeys))}
	add := func(d *dynamicColor) *dynamicColor {
		r.byKey[d.name] = d
		return d
	}
	ref := func(k RoleKey) func(*DynamicScheme) *dynamicColor {
		return func(*DynamicScheme) *dynamicColor { return r.byKey[k] }
	}
	highestSurface := func(s *DynamicScheme) *dynamicColor {
		if s.isDark {
			return r.byKey[SurfaceBright]
		}
		return r.byKey[SurfaceDim]
	}
	pair := func(a, b RoleKey, polarity tonePolarity, stayTogether bool) func(*DynamicScheme) toneDeltaPair {
		return func(*DynamicScheme) toneDeltaPair {
			return toneDeltaPair{roleA: r.byKey[a], roleB: r.byKey[b], delta: 10, polarity: polarity, stayTogether: stayTogether}
		}
	}
	keyColor := func(k RoleKey, palette func(*DynamicScheme) *TonalPalette) {
		add(&dynamicColor{
			name:    k,
			palette: palette,
			tone:    func(s *DynamicScheme) float64 { return palette(s).KeyColor().Tone },
		})
	}
	fixedTone := func(mono, normal float64) func(*DynamicScheme) float64 {
		return func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return mono
			}
			return normal
		}
	}

	keyColor(PrimaryPaletteKeyColor, primaryPalette)
	keyColor(SecondaryPaletteKeyColor, secondaryPalette)
	keyColor(TertiaryPaletteKeyColor, tertiaryPalette)
	keyColor(NeutralPaletteKeyColor, neutralPalette)
	keyColor(NeutralVariantPaletteKeyColor, neutralVariantPalette)

	// Surfaces.
	add(&dynamicColor{
		name: Background, palette: neutralPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 { return pick(s, 6, 98) },
	})
	add(&dynamicColor{
		name: OnBackground, palette: neutralPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 90, 10) },
		background:    ref(Background),
		contrastCurve: curve(3, 3, 4.5, 7),
	})
	add(&dynamicColor{
		name: Surface, palette: neutralPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 { return pick(s, 6, 98) },
	})
	add(&dynamicColor{
		name: SurfaceDim, palette: neutralPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 {
			return pick(s, 6, curve(87, 87, 80, 75).get(s.contrastLevel))
		},
	})
	add(&dynamicColor{
		name: SurfaceBright, palette: neutralPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 {
			return pick(s, curve(24, 24, 29, 34).get(s.contrastLevel), 98)
		},
	})
	surfaceContainer := func(k RoleKey, dark, light *contrastCurve) {
		add(&dynamicColor{
			name: k, palette: neutralPalette, isBackground: true,
			tone: func(s *DynamicScheme) float64 {
				return pick(s, dark.get(s.contrastLevel), light.get(s.contrastLevel))
			},
		})
	}
	surfaceContainer(SurfaceContainerLowest, curve(4, 4, 2, 0), curve(100, 100, 100, 100))
	surfaceContainer(SurfaceContainerLow, curve(10, 10, 11, 12), curve(96, 96, 96, 95))
	surfaceContainer(SurfaceContainer, curve(12, 12, 16, 20), curve(94, 94, 92, 90))
	surfaceContainer(SurfaceContainerHigh, curve(17, 17, 21, 25), curve(92, 92, 88, 85))
	surfaceContainer(SurfaceContainerHighest, curve(22, 22, 26, 30), curve(90, 90, 84, 80))

	add(&dynamicColor{
		name: OnSurface, palette: neutralPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 90, 10) },
		background:    highestSurface,
		contrastCurve: curve(4.5, 7, 11, 21),
	})
	add(&dynamicColor{
		name: SurfaceVariant, palette: neutralVariantPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 { return pick(s, 30, 90) },
	})
	add(&dynamicColor{
		name: OnSurfaceVariant, palette: neutralVariantPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 80, 30) },
		background:    highestSurface,
		contrastCurve: curve(3, 4.5, 7, 11),
	})
	add(&dynamicColor{
		name: InverseSurface, palette: neutralPalette,
		tone: func(s *DynamicScheme) float64 { return pick(s, 90, 20) },
	})
	add(&dynamicColor{
		name: InverseOnSurface, palette: neutralPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 20, 95) },
		background:    ref(InverseSurface),
		contrastCurve: curve(4.5, 7, 11, 21),
	})
	add(&dynamicColor{
		name: Outline, palette: neutralVariantPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 60, 50) },
		background:    highestSurface,
		contrastCurve: curve(1.5, 3, 4.5, 7),
	})
	add(&dynamicColor{
		name: OutlineVariant, palette: neutralVariantPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 30, 80) },
		background:    highestSurface,
		contrastCurve: curve(1, 1, 3, 4.5),
	})
	add(&dynamicColor{
		name: Shadow, palette: neutralPalette,
		tone: func(*DynamicScheme) float64 { return 0 },
	})
	add(&dynamicColor{
		name: Scrim, palette: neutralPalette,
		tone: func(*DynamicScheme) float64 { return 0 },
	})
	add(&dynamicColor{
		name: SurfaceTint, palette: primaryPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 { return pick(s, 80, 40) },
	})

	// Primary.
	add(&dynamicColor{
		name: Primary, palette: primaryPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 100, 0)
			}
			return pick(s, 80, 40)
		},
		background:    highestSurface,
		contrastCurve: curve(3, 4.5, 7, 7),
		toneDeltaPair: pair(PrimaryContainer, Primary, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnPrimary, palette: primaryPalette,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 10, 90)
			}
			return pick(s, 20, 100)
		},
		background:    ref(Primary),
		contrastCurve: curve(4.5, 7, 11, 21),
	})
	add(&dynamicColor{
		name: PrimaryContainer, palette: primaryPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 {
			if isFidelity(s) {
				return enableLightForeground(s.sourceHCT.Tone)
			}
			if isMonochrome(s) {
				return pick(s, 85, 25)
			}
			return pick(s, 30, 90)
		},
		background:    highestSurface,
		contrastCurve: curve(1, 1, 3, 4.5),
		toneDeltaPair: pair(PrimaryContainer, Primary, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnPrimaryContainer, palette: primaryPalette,
		tone: func(s *DynamicScheme) float64 {
			if isFidelity(s) {
				return foregroundTone(r.get(PrimaryContainer).tone(s), 4.5)
			}
			if isMonochrome(s) {
				return pick(s, 0, 100)
			}
			return pick(s, 90, 10)
		},
		background:    ref(PrimaryContainer),
		contrastCurve: curve(4.5, 7, 11, 21),
	})
	add(&dynamicColor{
		name: InversePrimary, palette: primaryPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 40, 80) },
		background:    ref(InverseSurface),
		contrastCurve: curve(3, 4.5, 7, 7),
	})

	// Secondary.
	add(&dynamicColor{
		name: Secondary, palette: secondaryPalette, isBackground: true,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 80, 40) },
		background:    highestSurface,
		contrastCurve: curve(3, 4.5, 7, 7),
		toneDeltaPair: pair(SecondaryContainer, Secondary, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnSecondary, palette: secondaryPalette,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 10, 100)
			}
			return pick(s, 20, 100)
		},
		background:    ref(Secondary),
		contrastCurve: curve(4.5, 7, 11, 21),
	})
	add(&dynamicColor{
		name: SecondaryContainer, palette: secondaryPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 {
			initial := pick(s, 30, 90)
			if isMonochrome(s) {
				return pick(s, 30, 85)
			}
			if !isFidelity(s) {
				return initial
			}
			return findDesiredChromaByTone(s.secondary.Hue(), s.secondary.Chroma(), initial, !s.isDark)
		},
		background:    highestSurface,
		contrastCurve: curve(1, 1, 3, 4.5),
		toneDeltaPair: pair(SecondaryContainer, Secondary, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnSecondaryContainer, palette: secondaryPalette,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 90, 10)
			}
			if !isFidelity(s) {
				return pick(s, 90, 10)
			}
			return foregroundTone(r.get(SecondaryContainer).tone(s), 4.5)
		},
		background:    ref(SecondaryContainer),
		contrastCurve: curve(4.5, 7, 11, 21),
	})

	// Tertiary.
	add(&dynamicColor{
		name: Tertiary, palette: tertiaryPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 90, 25)
			}
			return pick(s, 80, 40)
		},
		background:    highestSurface,
		contrastCurve: curve(3, 4.5, 7, 7),
		toneDeltaPair: pair(TertiaryContainer, Tertiary, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnTertiary, palette: tertiaryPalette,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 10, 90)
			}
			return pick(s, 20, 100)
		},
		background:    ref(Tertiary),
		contrastCurve: curve(4.5, 7, 11, 21),
	})
	add(&dynamicColor{
		name: TertiaryContainer, palette: tertiaryPalette, isBackground: true,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 60, 49)
			}
			if !isFidelity(s) {
				return pick(s, 30, 90)
			}
			proposed := s.tertiary.HCT(s.sourceHCT.Tone)
			return enableLightForeground(FixIfDisliked(proposed).Tone)
		},
		background:    highestSurface,
		contrastCurve: curve(1, 1, 3, 4.5),
		toneDeltaPair: pair(TertiaryContainer, Tertiary, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnTertiaryContainer, palette: tertiaryPalette,
		tone: func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return pick(s, 0, 100)
			}
			if !isFidelity(s) {
				return pick(s, 90, 10)
			}
			return foregroundTone(r.get(TertiaryContainer).tone(s), 4.5)
		},
		background:    ref(TertiaryContainer),
		contrastCurve: curve(4.5, 7, 11, 21),
	})

	// Error.
	add(&dynamicColor{
		name: Error, palette: errorPalette, isBackground: true,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 80, 40) },
		background:    highestSurface,
		contrastCurve: curve(3, 4.5, 7, 7),
		toneDeltaPair: pair(ErrorContainer, Error, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnError, palette: errorPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 20, 100) },
		background:    ref(Error),
		contrastCurve: curve(4.5, 7, 11, 21),
	})
	add(&dynamicColor{
		name: ErrorContainer, palette: errorPalette, isBackground: true,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 30, 90) },
		background:    highestSurface,
		contrastCurve: curve(1, 1, 3, 4.5),
		toneDeltaPair: pair(ErrorContainer, Error, polarityNearer, false),
	})
	add(&dynamicColor{
		name: OnErrorContainer, palette: errorPalette,
		tone:          func(s *DynamicScheme) float64 { return pick(s, 90, 10) },
		background:    ref(ErrorContainer),
		contrastCurve: curve(4.5, 7, 11, 21),
	})

	// Fixed accents keep the same tone in light and dark schemes.
	fixed := func(palette func(*DynamicScheme) *TonalPalette, fixedKey, dimKey, onKey, onVariantKey RoleKey,
		fixedT, dimT, onT, onVariantT func(*DynamicScheme) float64) {
		add(&dynamicColor{
			name: fixedKey, palette: palette, isBackground: true, tone: fixedT,
			background:    highestSurface,
			contrastCurve: curve(1, 1, 3, 4.5),
			toneDeltaPair: pair(fixedKey, dimKey, polarityLighter, true),
		})
		add(&dynamicColor{
			name: dimKey, palette: palette, isBackground: true, tone: dimT,
			background:    highestSurface,
			contrastCurve: curve(1, 1, 3, 4.5),
			toneDeltaPair: pair(fixedKey, dimKey, polarityLighter, true),
		})
		add(&dynamicColor{
			name: onKey, palette: palette, tone: onT,
			background:       ref(dimKey),
			secondBackground: ref(fixedKey),
			contrastCurve:    curve(4.5, 7, 11, 21),
		})
		add(&dynamicColor{
			name: onVariantKey, palette: palette, tone: onVariantT,
			background:       ref(dimKey),
			secondBackground: ref(fixedKey),
			contrastCurve:    curve(3, 4.5, 7, 11),
		})
	}
	fixed(primaryPalette, PrimaryFixed, PrimaryFixedDim, OnPrimaryFixed, OnPrimaryFixedVariant,
		fixedTone(40, 90), fixedTone(30, 80), fixedTone(100, 10), fixedTone(90, 30))
	fixed(secondaryPalette, SecondaryFixed, SecondaryFixedDim, OnSecondaryFixed, OnSecondaryFixedVariant,
		fixedTone(80, 90), fixedTone(70, 80), fixedTone(10, 10), fixedTone(25, 30))
	fixed(tertiaryPalette, TertiaryFixed, TertiaryFixedDim, OnTertiaryFixed, OnTertiaryFixedVariant,
		fixedTone(40, 90), fixedTone(30, 80), fixedTone(100, 10), fixedTone(90, 30))

	return r
}

// findDesiredChromaByTone walks tones from tone (down when byDecreasingTone)
// until the palette can carry chroma, stopping when chroma starts falling.
func findDesiredChromaByTone(hue, chroma, tone float64, byDecreasingTone bool) float64 {
	answer := tone
	closest := colour.ToHCT(colour.FromHCT(hue, chroma, tone))
	if closest.Chroma >= chroma {
		return answer
	}

	step := 1.0
	if byDecreasingTone {
		step = -1
	}
	peak := closest.Chroma
	for closest.Chroma < chroma {
		answer += step
		if answer < 0 || answer > 100 {
			return clamp(0, 100, answer-step)
		}
		candidate := colour.ToHCT(colour.FromHCT(hue, chroma, answer))
		if peak > candidate.Chroma {
			break
		}
		if math.Abs(candidate.Chroma-chroma) < 0.4 {
			break
		}
		if math.Abs(candidate.Chroma-chroma) < math.Abs(closest.Chroma-chroma) {
			closest = candidate
		}
		peak = math.Max(peak, candidate.Chroma)
	}
	return answer
}
