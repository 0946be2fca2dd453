package colour

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors/cam/cie"
	"cogentcore.org/core/colors/cam/hct"
)

// HCT is a colour in the hue, chroma, tone model.
type HCT struct {
	Hue    float64 `json:"hue"`
	Chroma float64 `json:"chroma"`
	Tone   float64 `json:"tone"`
}

// Lab is a colour in CIE L*a*b*.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// XYZ is a colour in CIE XYZ on a 0..100 scale.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Alpha returns the alpha channel of a packed colour.
func Alpha(argb uint32) uint8 { return uint8(argb >> 24) }

// Red returns the red channel of a packed colour.
func Red(argb uint32) uint8 { return uint8(argb >> 16) }

// Green returns the green channel of a packed colour.
func Green(argb uint32) uint8 { return uint8(argb >> 8) }

// Blue returns the blue channel of a packed colour.
func Blue(argb uint32) uint8 { return uint8(argb) }

// ToHex returns the lowercase #rrggbb form of a packed colour. Alpha is
// dropped.
func ToHex(argb uint32) string {
	return fmt.Sprintf("#%02x%02x%02x", Red(argb), Green(argb), Blue(argb))
}

// ToHexAlpha returns the lowercase #rrggbbaa form of a packed colour.
func ToHexAlpha(argb uint32) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", Red(argb), Green(argb), Blue(argb), Alpha(argb))
}

// ToRGBA converts a packed colour to a non-premultiplied color.NRGBA.
func ToRGBA(argb uint32) color.NRGBA {
	return color.NRGBA{R: Red(argb), G: Green(argb), B: Blue(argb), A: Alpha(argb)}
}

// FromRGBA packs any color.Color into 0xAARRGGBB.
func FromRGBA(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// ToHCT converts a packed colour to HCT. Alpha is ignored.
func ToHCT(argb uint32) HCT {
	h := hct.FromColor(opaque(argb))
	return HCT{Hue: float64(h.Hue), Chroma: float64(h.Chroma), Tone: float64(h.Tone)}
}

// FromHCT returns the closest in-gamut opaque colour for the given hue,
// chroma and tone.
func FromHCT(hue, chroma, tone float64) uint32 {
	return FromRGBA(hct.New(float32(hue), float32(chroma), float32(tone)).AsRGBA())
}

// ToXYZ converts a packed colour to CIE XYZ (D65, 0..100).
func ToXYZ(argb uint32) XYZ {
	r, g, b := linear(argb)
	x, y, z := cie.SRGBLinToXYZ(r, g, b)
	return XYZ{X: float64(x) * 100, Y: float64(y) * 100, Z: float64(z) * 100}
}

// ToLab converts a packed colour to CIE L*a*b*.
func ToLab(argb uint32) Lab {
	r, g, b := linear(argb)
	x, y, z := cie.SRGBLinToXYZ(r, g, b)
	l, a, bb := cie.XYZToLAB(x, y, z)
	return Lab{L: float64(l), A: float64(a), B: float64(bb)}
}

// ToLstar returns the L* (perceptual lightness) of a packed colour.
func ToLstar(argb uint32) float64 {
	return float64(cie.YToL(float32(ToXYZ(argb).Y)))
}

// ColorToHCT canonicalises c and converts it to HCT in one step.
func ColorToHCT(c Color) (HCT, error) {
	argb, err := ToArgb(c)
	if err != nil {
		return HCT{}, err
	}
	return ToHCT(argb), nil
}

func linear(argb uint32) (float32, float32, float32) {
	return cie.SRGBToLinear(
		float32(Red(argb))/255,
		float32(Green(argb))/255,
		float32(Blue(argb))/255,
	)
}

func opaque(argb uint32) color.RGBA {
	return color.RGBA{R: Red(argb), G: Green(argb), B: Blue(argb), A: 0xFF}
}
