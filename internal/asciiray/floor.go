package asciiray

import "math"

// checker is a sparse dot pattern: only the positive peaks of sin·cos survive the clamp.
func (s Scene) checker(x, z Real) Real {
	return clamp(s.CheckerGain*math.Sin((x*math.Pi)/s.CheckerFreq)*math.Cos((z*math.Pi)/s.CheckerFreq), 0, 1)
}

// FloorBrightness returns the brightness in [0,1] of the plane point at (x, z).
// Points further than FarZ in depth are black; closer ones fall off as 1/z².
func (s Scene) FloorBrightness(x, z Real) Real {
	if math.Abs(z) > s.FarZ {
		return 0
	}
	return clamp((s.FalloffGain*s.checker(x, z))/(z*z), 0, 1)
}
