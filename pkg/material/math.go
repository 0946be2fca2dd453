package material

import "math"

// sanitizeDegrees wraps an angle into [0, 360).
func sanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func sanitizeDegreesInt(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// differenceDegrees is the shortest angular distance between a and b.
func differenceDegrees(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}

// rotationDirection returns +1 or -1: the direction to rotate from to reach
// to along the shortest path.
func rotationDirection(from, to float64) float64 {
	if sanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}

func clamp(lo, hi, v float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}
