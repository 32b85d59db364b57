package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MoveToward steps current toward target by at most maxDelta and never
// overshoots.
func MoveToward(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
