package material

import (
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// CustomColorSpec is a user-named colour to expand alongside a scheme.
type CustomColorSpec struct {
	Name  string
	Value uint32
	// Blend shifts the colour's hue towards the scheme source.
	Blend bool
}

// CustomColorVariant is one brightness side of a custom colour group.
type CustomColorVariant struct {
	Color            uint32 `json:"color"`
	OnColor          uint32 `json:"onColor"`
	ColorContainer   uint32 `json:"colorContainer"`
	OnColorContainer uint32 `json:"onColorContainer"`
}

// SubRole is a sub-role pattern of a custom colour group. The literal
// "Color" in a pattern is replaced by the custom colour's name when tokens
// are formatted.
type SubRole string

// The four custom colour sub-roles.
const (
	SubRoleColor            SubRole = "color"
	SubRoleOnColor          SubRole = "onColor"
	SubRoleColorContainer   SubRole = "colorContainer"
	SubRoleOnColorContainer SubRole = "onColorContainer"
)

// SubRoles lists the custom colour sub-roles in canonical order.
func SubRoles() []SubRole {
	return []SubRole{SubRoleColor, SubRoleOnColor, SubRoleColorContainer, SubRoleOnColorContainer}
}

// Get returns the value of a sub-role.
func (v CustomColorVariant) Get(r SubRole) uint32 {
	switch r {
	case SubRoleOnColor:
		return v.OnColor
	case SubRoleColorContainer:
		return v.ColorContainer
	case SubRoleOnColorContainer:
		return v.OnColorContainer
	default:
		return v.Color
	}
}

// CustomColorGroup is a custom colour expanded into light and dark roles.
type CustomColorGroup struct {
	Spec CustomColorSpec
	// Value is the colour the tones were taken from: Spec.Value, harmonized
	// with the source when Spec.Blend is set.
	Value uint32
	Light CustomColorVariant
	Dark  CustomColorVariant
}

// customChroma is the minimum chroma of a custom colour palette.
const customChroma = 48.0

// CustomColor expands spec against source into a CustomColorGroup.
func CustomColor(source uint32, spec CustomColorSpec) CustomColorGroup {
	value := spec.Value
	if spec.Blend {
		value = Harmonize(value, source)
	}

	h := colour.ToHCT(value)
	tones := FromHueAndChroma(h.Hue, math.Max(customChroma, h.Chroma))

	return CustomColorGroup{
		Spec:  spec,
		Value: value,
		Light: CustomColorVariant{
			Color:            tones.Tone(40),
			OnColor:          tones.Tone(100),
			ColorContainer:   tones.Tone(90),
			OnColorContainer: tones.Tone(10),
		},
		Dark: CustomColorVariant{
			Color:            tones.Tone(80),
			OnColor:          tones.Tone(20),
			ColorContainer:   tones.Tone(30),
			OnColorContainer: tones.Tone(90),
		},
	}
}
