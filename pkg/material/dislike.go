package material

import (
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// IsDisliked reports whether h is a dark yellow-green, a colour consistently
// rated unpleasant in colour preference studies.
func IsDisliked(h colour.HCT) bool {
	hue := math.Round(h.Hue)
	huePasses := hue >= 90 && hue <= 111
	chromaPasses := math.Round(h.Chroma) > 16
	tonePasses := math.Round(h.Tone) < 65
	return huePasses && chromaPasses && tonePasses
}

// FixIfDisliked lightens a disliked colour to tone 70 and returns other
// colours unchanged.
func FixIfDisliked(h colour.HCT) colour.HCT {
	if !IsDisliked(h) {
		return h
	}
	return colour.ToHCT(colour.FromHCT(h.Hue, h.Chroma, 70))
}
