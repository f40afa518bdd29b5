package asciiray

import "math"

// solveQuadratic returns both roots of a*t^2 + b*t + c = 0, (-b+√D)/2a first.
// A negative discriminant gives NaN for both; that is how a ray miss is signalled.
func solveQuadratic(a, b, c Real) (t0, t1 Real) {
	disc := b*b - 4*a*c
	sq := math.Sqrt(disc)
	t0 = (-b + sq) / (2 * a)
	t1 = (-b - sq) / (2 * a)
	return
}
