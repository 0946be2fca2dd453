package material

import (
	"math"
	"math/rand"
	"sort"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// DefaultQuantizeMaxColors is the cluster count used when none is given.
const DefaultQuantizeMaxColors = 128

const (
	quantizeMaxIterations = 20
	quantizeConvergence   = 1.0
	quantizeSeed          = 0x42688
)

// Quantize reduces pixels (packed ARGB) to at most maxColors colours and
// returns each colour with the number of pixels it represents. Pixels that
// are not fully opaque are ignored. When there are no more unique colours
// than maxColors, the exact counts are returned.
//
// Clustering is k-means++ in L*a*b* with a fixed seed, so the same input
// always yields the same output.
func Quantize(pixels []uint32, maxColors int) map[uint32]int {
	if maxColors <= 0 {
		maxColors = DefaultQuantizeMaxColors
	}

	counts := make(map[uint32]int)
	for _, p := range pixels {
		if colour.Alpha(p) < 0xFF {
			continue
		}
		counts[p]++
	}
	if len(counts) <= maxColors {
		return counts
	}

	unique := make([]uint32, 0, len(counts))
	for c := range counts {
		unique = append(unique, c)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	points := make([]labPoint, len(unique))
	weights := make([]float64, len(unique))
	for i, c := range unique {
		points[i] = toLabPoint(c)
		weights[i] = float64(counts[c])
	}

	centroids := initCentroids(points, weights, maxColors)
	assignments := make([]int, len(points))

	for iter := 0; iter < quantizeMaxIterations; iter++ {
		for i, p := range points {
			assignments[i] = nearest(p, centroids)
		}

		next := make([]labPoint, len(centroids))
		totals := make([]float64, len(centroids))
		for i, p := range points {
			k := assignments[i]
			w := weights[i]
			next[k].l += p.l * w
			next[k].a += p.a * w
			next[k].b += p.b * w
			totals[k] += w
		}

		moved := 0.0
		for k := range next {
			if totals[k] == 0 {
				next[k] = centroids[k]
				continue
			}
			next[k].l /= totals[k]
			next[k].a /= totals[k]
			next[k].b /= totals[k]
			moved = math.Max(moved, next[k].distance(centroids[k]))
		}
		centroids = next

		if moved < quantizeConvergence {
			break
		}
	}

	for i, p := range points {
		assignments[i] = nearest(p, centroids)
	}

	// Each cluster is represented by its most populous member so that the
	// result only contains colours that appeared in the input.
	best := make([]int, len(centroids))
	for k := range best {
		best[k] = -1
	}
	result := make(map[uint32]int, len(centroids))
	populations := make([]int, len(centroids))
	for i, c := range unique {
		k := assignments[i]
		populations[k] += counts[c]
		if best[k] < 0 || counts[c] > counts[unique[best[k]]] {
			best[k] = i
		}
	}
	for k, idx := range best {
		if idx < 0 {
			continue
		}
		result[unique[idx]] += populations[k]
	}
	return result
}

type labPoint struct {
	l, a, b float64
}

func toLabPoint(argb uint32) labPoint {
	lab := colour.ToLab(argb)
	return labPoint{l: lab.L, a: lab.A, b: lab.B}
}

func (p labPoint) distance(o labPoint) float64 {
	dl, da, db := p.l-o.l, p.a-o.a, p.b-o.b
	return math.Sqrt(dl*dl + da*da + db*db)
}

func nearest(p labPoint, centroids []labPoint) int {
	best := 0
	bestDist := math.MaxFloat64
	for k, c := range centroids {
		if d := p.distance(c); d < bestDist {
			bestDist = d
			best = k
		}
	}
	return best
}

// initCentroids picks k starting centroids with k-means++, weighting each
// point by its pixel count.
func initCentroids(points []labPoint, weights []float64, k int) []labPoint {
	rng := rand.New(rand.NewSource(quantizeSeed)) // #nosec G404 - clustering does not need a CSPRNG

	centroids := make([]labPoint, 0, k)
	heaviest := 0
	for i, w := range weights {
		if w > weights[heaviest] {
			heaviest = i
		}
	}
	centroids = append(centroids, points[heaviest])

	dists := make([]float64, len(points))
	for len(centroids) < k {
		sum := 0.0
		for i, p := range points {
			d := p.distance(centroids[nearest(p, centroids)])
			dists[i] = d * d * weights[i]
			sum += dists[i]
		}
		if sum == 0 {
			break
		}

		target := rng.Float64() * sum
		chosen := len(points) - 1
		for i, d := range dists {
			target -= d
			if target <= 0 {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}
