package material

import (
	"math"
	"sort"

	"github.com/jmylchreest/tonal/pkg/colour"
)

// TemperatureCache computes complements and analogous colours by colour
// temperature for a single input colour. Results are memoised, so a cache
// must not be shared between goroutines.
type TemperatureCache struct {
	input colour.HCT

	hctsByHue  []colour.HCT
	hctsByTemp []colour.HCT
	tempsByHCT map[colour.HCT]float64
	complement *colour.HCT
}

// NewTemperatureCache returns a cache for input.
func NewTemperatureCache(input colour.HCT) *TemperatureCache {
	return &TemperatureCache{input: input}
}

// RawTemperature is the warmth of a colour on an unbounded scale; roughly
// -0.5 (cold) to 1.5 (warm), derived from its L*a*b* hue angle and chroma.
func RawTemperature(h colour.HCT) float64 {
	lab := colour.ToLab(colour.FromHCT(h.Hue, h.Chroma, h.Tone))
	hue := sanitizeDegrees(math.Atan2(lab.B, lab.A) * 180 / math.Pi)
	chroma := math.Hypot(lab.A, lab.B)
	return -0.5 + 0.02*math.Pow(chroma, 1.07)*math.Cos(sanitizeDegrees(hue-50)*math.Pi/180)
}

// Complement returns the colour with the opposite relative temperature at
// the input's chroma and tone.
func (c *TemperatureCache) Complement() colour.HCT {
	if c.complement != nil {
		return *c.complement
	}

	coldestHue := c.coldest().Hue
	coldestTemp := c.temps()[c.coldest()]
	warmestHue := c.warmest().Hue
	warmestTemp := c.temps()[c.warmest()]
	tempRange := warmestTemp - coldestTemp

	startHueIsColdestToWarmest := isBetween(c.input.Hue, coldestHue, warmestHue)
	startHue, endHue := coldestHue, warmestHue
	if startHueIsColdestToWarmest {
		startHue, endHue = warmestHue, coldestHue
	}

	smallestError := 1000.0
	answer := c.byHue()[int(math.Round(c.input.Hue))]
	complementRelativeTemp := 1 - c.InputRelativeTemperature()

	for addend := 0.0; addend <= 360; addend++ {
		hue := sanitizeDegrees(startHue + addend)
		if !isBetween(hue, startHue, endHue) {
			continue
		}
		candidate := c.byHue()[int(math.Round(hue))]
		relativeTemp := (c.temps()[candidate] - coldestTemp) / tempRange
		errorAmount := math.Abs(complementRelativeTemp - relativeTemp)
		if errorAmount < smallestError {
			smallestError = errorAmount
			answer = candidate
		}
	}

	c.complement = &answer
	return answer
}

// Analogous returns count colours spread by temperature around the input,
// which sits in the middle of the result. The hue wheel is cut into
// divisions equal temperature steps.
func (c *TemperatureCache) Analogous(count, divisions int) []colour.HCT {
	if count <= 0 {
		count = 5
	}
	if divisions <= 0 {
		divisions = 12
	}

	startHue := int(math.Round(c.input.Hue))
	startHCT := c.byHue()[startHue]
	lastTemp := c.RelativeTemperature(startHCT)

	allColors := []colour.HCT{startHCT}

	absoluteTotalTempDelta := 0.0
	for i := range 360 {
		h := c.byHue()[sanitizeDegreesInt(startHue+i)]
		temp := c.RelativeTemperature(h)
		absoluteTotalTempDelta += math.Abs(temp - lastTemp)
		lastTemp = temp
	}

	hueAddend := 1
	tempStep := absoluteTotalTempDelta / float64(divisions)
	totalTempDelta := 0.0
	lastTemp = c.RelativeTemperature(startHCT)
	for len(allColors) < divisions {
		h := c.byHue()[sanitizeDegreesInt(startHue+hueAddend)]
		temp := c.RelativeTemperature(h)
		totalTempDelta += math.Abs(temp - lastTemp)

		desired := float64(len(allColors)) * tempStep
		satisfied := totalTempDelta >= desired
		indexAddend := 1
		for satisfied && len(allColors) < divisions {
			allColors = append(allColors, h)
			desired = float64(len(allColors)+indexAddend) * tempStep
			satisfied = totalTempDelta >= desired
			indexAddend++
		}

		lastTemp = temp
		hueAddend++
		if hueAddend > 360 {
			for len(allColors) < divisions {
				allColors = append(allColors, h)
			}
			break
		}
	}

	answers := []colour.HCT{c.input}

	ccwCount := (count - 1) / 2
	for i := 1; i <= ccwCount; i++ {
		index := -i
		for index < 0 {
			index += len(allColors)
		}
		index %= len(allColors)
		answers = append([]colour.HCT{allColors[index]}, answers...)
	}

	cwCount := count - ccwCount - 1
	for i := 1; i <= cwCount; i++ {
		answers = append(answers, allColors[i%len(allColors)])
	}

	return answers
}

// InputRelativeTemperature is the input's temperature relative to the
// coldest (0) and warmest (1) colours of its chroma and tone.
func (c *TemperatureCache) InputRelativeTemperature() float64 {
	return c.RelativeTemperature(c.input)
}

// RelativeTemperature places h between the coldest (0) and warmest (1)
// colours at the input's chroma and tone.
func (c *TemperatureCache) RelativeTemperature(h colour.HCT) float64 {
	coldestTemp := c.temps()[c.coldest()]
	tempRange := c.temps()[c.warmest()] - coldestTemp
	if tempRange == 0 {
		return 0.5
	}
	temp, ok := c.temps()[h]
	if !ok {
		temp = RawTemperature(h)
	}
	return (temp - coldestTemp) / tempRange
}

// IsWarm reports whether argb sits in the warm half of its temperature range.
func IsWarm(argb uint32) bool {
	return NewTemperatureCache(colour.ToHCT(argb)).InputRelativeTemperature() > 0.5
}

// IsCold is the complement of IsWarm.
func IsCold(argb uint32) bool {
	return !IsWarm(argb)
}

func (c *TemperatureCache) coldest() colour.HCT {
	return c.byTemp()[0]
}

func (c *TemperatureCache) warmest() colour.HCT {
	sorted := c.byTemp()
	return sorted[len(sorted)-1]
}

// byHue holds one colour per integer hue 0..360 at the input's chroma and
// tone.
func (c *TemperatureCache) byHue() []colour.HCT {
	if c.hctsByHue != nil {
		return c.hctsByHue
	}
	hcts := make([]colour.HCT, 0, 361)
	for hue := 0; hue <= 360; hue++ {
		hcts = append(hcts, colour.ToHCT(colour.FromHCT(float64(hue), c.input.Chroma, c.input.Tone)))
	}
	c.hctsByHue = hcts
	return hcts
}

func (c *TemperatureCache) byTemp() []colour.HCT {
	if c.hctsByTemp != nil {
		return c.hctsByTemp
	}
	hcts := append([]colour.HCT{}, c.byHue()...)
	hcts = append(hcts, c.input)
	temps := c.temps()
	sort.SliceStable(hcts, func(i, j int) bool {
		return temps[hcts[i]] < temps[hcts[j]]
	})
	c.hctsByTemp = hcts
	return hcts
}

func (c *TemperatureCache) temps() map[colour.HCT]float64 {
	if c.tempsByHCT != nil {
		return c.tempsByHCT
	}
	all := append([]colour.HCT{}, c.byHue()...)
	all = append(all, c.input)
	temps := make(map[colour.HCT]float64, len(all))
	for _, h := range all {
		temps[h] = RawTemperature(h)
	}
	c.tempsByHCT = temps
	return temps
}

// isBetween reports whether angle lies on the arc from a to b, going
// clockwise.
func isBetween(angle, a, b float64) bool {
	if a < b {
		return a <= angle && angle <= b
	}
	return a <= angle || angle <= b
}
