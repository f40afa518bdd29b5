package asciiray

import "math"

// Real is the scalar type of the whole numeric pipeline.
type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// clamp saturates v into [lo, hi]. NaN passes through unchanged.
func clamp(v, lo, hi Real) Real {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
