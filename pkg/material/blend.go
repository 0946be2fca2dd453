package material

import (
	"math"

	"cogentcore.org/core/colors/cam/cam16"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// maxHarmonizeRotation caps how far Harmonize moves a hue, in degrees.
const maxHarmonizeRotation = 15.0

// Harmonize shifts design's hue towards source by half their hue distance,
// at most 15 degrees. Chroma and tone of design are kept.
func Harmonize(design, source uint32) uint32 {
	from := colour.ToHCT(design)
	to := colour.ToHCT(source)
	rotation := math.Min(differenceDegrees(from.Hue, to.Hue)*0.5, maxHarmonizeRotation)
	hue := sanitizeDegrees(from.Hue + rotation*rotationDirection(from.Hue, to.Hue))
	return colour.FromHCT(hue, from.Chroma, from.Tone)
}

// BlendHue moves from's hue towards to by amount (0..1) through CAM16-UCS.
// Chroma and tone of from are kept.
func BlendHue(from, to uint32, amount float64) uint32 {
	ucs := BlendCam16Ucs(from, to, amount)
	ucsCAM := camOf(ucs)
	fromHCT := colour.ToHCT(from)
	return colour.FromHCT(float64(ucsCAM.Hue), fromHCT.Chroma, colour.ToLstar(from))
}

// BlendCam16Ucs interpolates from towards to by amount (0..1) in CAM16-UCS.
// Hue, chroma and tone all change.
func BlendCam16Ucs(from, to uint32, amount float64) uint32 {
	fromJ, _, fromA, fromB := camOf(from).UCS()
	toJ, _, toA, toB := camOf(to).UCS()

	t := float32(amount)
	j := fromJ + (toJ-fromJ)*t
	a := fromA + (toA-fromA)*t
	b := fromB + (toB-fromB)*t

	return colour.FromRGBA(cam16.FromUCS(j, a, b).AsRGBA())
}

func camOf(argb uint32) *cam16.CAM {
	return cam16.FromSRGB(
		float32(colour.Red(argb))/255,
		float32(colour.Green(argb))/255,
		float32(colour.Blue(argb))/255,
	)
}
