package material

// Named contrast levels. Any value in [-1, 1] is accepted by the scheme
// builders; these are the steps offered to users.
const (
	ContrastReduced = -1.0
	ContrastDefault = 0.0
	ContrastMedium  = 0.25
	ContrastHigh    = 0.5
)

// ContrastLevel is a named contrast step.
type ContrastLevel struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
	Name  string  `json:"name"`
}

var contrastLevels = []ContrastLevel{
	{ID: "REDUCED", Value: ContrastReduced, Name: "Reduced"},
	{ID: "DEFAULT", Value: ContrastDefault, Name: "Default"},
	{ID: "MEDIUM", Value: ContrastMedium, Name: "Medium"},
	{ID: "HIGH", Value: ContrastHigh, Name: "High"},
}

// ContrastLevels returns the named levels in ascending order.
func ContrastLevels() []ContrastLevel {
	out := make([]ContrastLevel, len(contrastLevels))
	copy(out, contrastLevels)
	return out
}

// ClosestContrastLevel returns the highest named level not above target.
// Negative targets map to Reduced.
func ClosestContrastLevel(target float64) ContrastLevel {
	if target < 0 {
		return contrastLevels[0]
	}
	for i := len(contrastLevels) - 1; i >= 1; i-- {
		if target >= contrastLevels[i].Value {
			return contrastLevels[i]
		}
	}
	return contrastLevels[1]
}
