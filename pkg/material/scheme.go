package material

import (
	"fmt"
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// ErrorHue and ErrorChroma define the error palette shared by every scheme.
const (
	ErrorHue    = 25.0
	ErrorChroma = 84.0
)

// DynamicScheme is a resolved Material 3 scheme: five core palettes, an
// error palette and the settings every role is resolved against. It is
// immutable once built and safe for concurrent use.
type DynamicScheme struct {
	sourceArgb    uint32
	sourceHCT     colour.HCT
	variant       Variant
	isDark        bool
	contrastLevel float64

	primary        *TonalPalette
	secondary      *TonalPalette
	tertiary       *TonalPalette
	neutral        *TonalPalette
	neutralVariant *TonalPalette
	error          *TonalPalette
}

// Palettes groups the five core palettes of a scheme.
type Palettes struct {
	Primary        *TonalPalette
	Secondary      *TonalPalette
	Tertiary       *TonalPalette
	Neutral        *TonalPalette
	NeutralVariant *TonalPalette
}

// NewScheme builds the scheme of variant for a source colour.
func NewScheme(variant Variant, source uint32, isDark bool, contrastLevel float64) (*DynamicScheme, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("unknown variant %d", int(variant))
	}
	sourceHCT := colour.ToHCT(source)
	return NewSchemeWithPalettes(variant, source, isDark, contrastLevel, variantPalettes(variant, sourceHCT))
}

// NewSchemeWithPalettes builds a scheme from explicit core palettes. Every
// palette must be non-nil.
func NewSchemeWithPalettes(variant Variant, source uint32, isDark bool, contrastLevel float64, p Palettes) (*DynamicScheme, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("unknown variant %d", int(variant))
	}
	if p.Primary == nil || p.Secondary == nil || p.Tertiary == nil || p.Neutral == nil || p.NeutralVariant == nil {
		return nil, fmt.Errorf("scheme requires all five core palettes")
	}
	if math.IsNaN(contrastLevel) || contrastLevel < -1 || contrastLevel > 1 {
		return nil, fmt.Errorf("contrast level %v out of range [-1, 1]", contrastLevel)
	}
	return &DynamicScheme{
		sourceArgb:     source,
		sourceHCT:      colour.ToHCT(source),
		variant:        variant,
		isDark:         isDark,
		contrastLevel:  contrastLevel,
		primary:        p.Primary,
		secondary:      p.Secondary,
		tertiary:       p.Tertiary,
		neutral:        p.Neutral,
		neutralVariant: p.NeutralVariant,
		error:          FromHueAndChroma(ErrorHue, ErrorChroma),
	}, nil
}

// SourceColor is the packed seed colour.
func (s *DynamicScheme) SourceColor() uint32 { return s.sourceArgb }

// SourceHCT is the seed colour in HCT.
func (s *DynamicScheme) SourceHCT() colour.HCT { return s.sourceHCT }

// Variant is the algorithm the palettes were derived with.
func (s *DynamicScheme) Variant() Variant { return s.variant }

// IsDark reports whether this is a dark scheme.
func (s *DynamicScheme) IsDark() bool { return s.isDark }

// ContrastLevel is the contrast setting in [-1, 1].
func (s *DynamicScheme) ContrastLevel() float64 { return s.contrastLevel }

// PrimaryPalette returns the primary palette.
func (s *DynamicScheme) PrimaryPalette() *TonalPalette { return s.primary }

// SecondaryPalette returns the secondary palette.
func (s *DynamicScheme) SecondaryPalette() *TonalPalette { return s.secondary }

// TertiaryPalette returns the tertiary palette.
func (s *DynamicScheme) TertiaryPalette() *TonalPalette { return s.tertiary }

// NeutralPalette returns the neutral palette.
func (s *DynamicScheme) NeutralPalette() *TonalPalette { return s.neutral }

// NeutralVariantPalette returns the neutral variant palette.
func (s *DynamicScheme) NeutralVariantPalette() *TonalPalette { return s.neutralVariant }

// ErrorPalette returns the error palette.
func (s *DynamicScheme) ErrorPalette() *TonalPalette { return s.error }

// Palettes returns the five core palettes.
func (s *DynamicScheme) Palettes() Palettes {
	return Palettes{
		Primary:        s.primary,
		Secondary:      s.secondary,
		Tertiary:       s.tertiary,
		Neutral:        s.neutral,
		NeutralVariant: s.neutralVariant,
	}
}

// Role resolves a role key to a packed colour. Unknown keys return 0 and
// false.
func (s *DynamicScheme) Role(k RoleKey) (uint32, bool) {
	d := roles.get(k)
	if d == nil {
		return 0, false
	}
	return d.argb(s), true
}

// RoleTone resolves a role key to its tone.
func (s *DynamicScheme) RoleTone(k RoleKey) (float64, bool) {
	d := roles.get(k)
	if d == nil {
		return 0, false
	}
	return d.getTone(s), true
}

// Roles resolves every role key, in canonical order.
func (s *DynamicScheme) Roles() []RoleValue {
	out := make([]RoleValue, 0, len(roleKeys))
	for _, k := range roleKeys {
		out = append(out, RoleValue{Key: k, ARGB: roles.get(k).argb(s)})
	}
	return out
}

// RoleValue is a resolved role.
type RoleValue struct {
	Key  RoleKey
	ARGB uint32
}
