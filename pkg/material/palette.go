// Package material is the perceptual colour engine behind tonal.
//
// It derives tonal palettes, dynamic schemes and custom colour groups in HCT
// space following the Material 3 colour system. Colour science (HCT solving,
// CAM16, CIE conversions) is delegated to cogentcore's cam packages; this
// package holds the scheme-level rules.
package material

import (
	"math"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// TonalPalette is a hue and chroma pair. Tone(t) returns the colour at tone t
// with that hue and (as close as the gamut allows) that chroma.
//
// A TonalPalette is immutable and safe for concurrent use.
type TonalPalette struct {
	hue      float64
	chroma   float64
	keyColor colour.HCT
}

// FromArgb returns the palette of a colour's hue and chroma. The colour itself
// is the key colour.
func FromArgb(argb uint32) *TonalPalette {
	return FromHCT(colour.ToHCT(argb))
}

// FromHCT returns the palette of h's hue and chroma with h as key colour.
func FromHCT(h colour.HCT) *TonalPalette {
	return &TonalPalette{hue: h.Hue, chroma: h.Chroma, keyColor: h}
}

// FromHueAndChroma returns a palette for an explicit hue and chroma. The key
// colour is the tone closest to 50 that can carry the requested chroma.
func FromHueAndChroma(hue, chroma float64) *TonalPalette {
	return &TonalPalette{
		hue:      hue,
		chroma:   chroma,
		keyColor: newKeyColor(hue, chroma).create(),
	}
}

// Hue of the palette.
func (p *TonalPalette) Hue() float64 { return p.hue }

// Chroma of the palette.
func (p *TonalPalette) Chroma() float64 { return p.chroma }

// KeyColor is the colour that best represents the palette.
func (p *TonalPalette) KeyColor() colour.HCT { return p.keyColor }

// Tone returns the packed colour at tone t (0..100).
func (p *TonalPalette) Tone(t float64) uint32 {
	return colour.FromHCT(p.hue, p.chroma, t)
}

// HCT returns the colour at tone t in HCT form.
func (p *TonalPalette) HCT(t float64) colour.HCT {
	return colour.ToHCT(p.Tone(t))
}

// keyColor searches for the tone nearest 50 whose maximum attainable chroma
// meets the requested chroma.
type keyColor struct {
	hue             float64
	requestedChroma float64
	chromaCache     map[int]float64
}

const maxChromaValue = 200.0

func newKeyColor(hue, chroma float64) *keyColor {
	return &keyColor{hue: hue, requestedChroma: chroma, chromaCache: map[int]float64{}}
}

func (k *keyColor) create() colour.HCT {
	const (
		pivotTone = 50
		step      = 1
		epsilon   = 0.01
	)

	lower, upper := 0, 100
	for lower < upper {
		mid := (lower + upper) / 2
		ascending := k.maxChroma(mid) < k.maxChroma(mid+step)
		sufficient := k.maxChroma(mid) >= k.requestedChroma-epsilon

		if sufficient {
			if math.Abs(float64(lower-pivotTone)) < math.Abs(float64(upper-pivotTone)) {
				upper = mid
			} else {
				if lower == mid {
					return colour.ToHCT(colour.FromHCT(k.hue, k.requestedChroma, float64(lower)))
				}
				lower = mid
			}
		} else if ascending {
			lower = mid + step
		} else {
			upper = mid
		}
	}
	return colour.ToHCT(colour.FromHCT(k.hue, k.requestedChroma, float64(lower)))
}

func (k *keyColor) maxChroma(tone int) float64 {
	if c, ok := k.chromaCache[tone]; ok {
		return c
	}
	c := colour.ToHCT(colour.FromHCT(k.hue, maxChromaValue, float64(tone))).Chroma
	k.chromaCache[tone] = c
	return c
}
