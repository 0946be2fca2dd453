package material

import (
	"math"
	"sort"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// ScoreOptions controls Score.
type ScoreOptions struct {
	// Desired is the maximum number of colours returned.
	Desired int
	// Filter drops near-grey colours and hues that are barely used.
	Filter bool
	// FallbackColor is returned when no colour survives filtering.
	FallbackColor uint32
}

// DefaultScoreOptions returns desired 5, filtering on, black fallback.
func DefaultScoreOptions() ScoreOptions {
	return ScoreOptions{Desired: 5, Filter: true, FallbackColor: 0xFF000000}
}

const (
	scoreTargetChroma            = 48.0
	scoreWeightProportion        = 0.7
	scoreWeightChromaAbove       = 0.3
	scoreWeightChromaBelow       = 0.1
	scoreCutoffChroma            = 5.0
	scoreCutoffExcitedProportion = 0.01
)

// Score ranks colours by suitability as a theme source: how much of the
// image their hue neighbourhood covers and how chromatic they are. Chosen
// colours are kept apart in hue. The result is never empty.
func Score(colorsToPopulation map[uint32]int, opts ScoreOptions) []uint32 {
	if opts.Desired <= 0 {
		opts.Desired = DefaultScoreOptions().Desired
	}

	// Sorted input keeps ties deterministic.
	argbs := make([]uint32, 0, len(colorsToPopulation))
	for c := range colorsToPopulation {
		argbs = append(argbs, c)
	}
	sort.Slice(argbs, func(i, j int) bool { return argbs[i] < argbs[j] })

	var huePopulation [360]float64
	populationSum := 0.0
	hcts := make([]colour.HCT, len(argbs))
	for i, c := range argbs {
		h := colour.ToHCT(c)
		hcts[i] = h
		population := float64(colorsToPopulation[c])
		huePopulation[sanitizeDegreesInt(int(math.Floor(h.Hue)))] += population
		populationSum += population
	}

	var hueExcited [360]float64
	if populationSum > 0 {
		for hue := range 360 {
			proportion := huePopulation[hue] / populationSum
			for i := hue - 14; i < hue+16; i++ {
				hueExcited[sanitizeDegreesInt(i)] += proportion
			}
		}
	}

	type scored struct {
		hct   colour.HCT
		argb  uint32
		score float64
	}
	var candidates []scored
	for i, h := range hcts {
		proportion := hueExcited[sanitizeDegreesInt(int(math.Round(h.Hue)))]
		if opts.Filter && (h.Chroma < scoreCutoffChroma || proportion <= scoreCutoffExcitedProportion) {
			continue
		}
		chromaWeight := scoreWeightChromaAbove
		if h.Chroma < scoreTargetChroma {
			chromaWeight = scoreWeightChromaBelow
		}
		candidates = append(candidates, scored{
			hct:   h,
			argb:  argbs[i],
			score: proportion*100*scoreWeightProportion + (h.Chroma-scoreTargetChroma)*chromaWeight,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	var chosen []scored
	for minDiff := 90; minDiff >= 15; minDiff-- {
		chosen = chosen[:0]
		for _, c := range candidates {
			duplicate := false
			for _, o := range chosen {
				if differenceDegrees(c.hct.Hue, o.hct.Hue) < float64(minDiff) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				chosen = append(chosen, c)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []uint32{opts.FallbackColor}
	}
	out := make([]uint32, len(chosen))
	for i, c := range chosen {
		out[i] = c.argb
	}
	return out
}
