package asciiray

import "math"

// Shade returns the brightness in [0,1] seen through screen point (l, m).
// l and m are in about [-0.5, 0.5]; the screen sits at z=1.
// The result depends only on (l, m) and the scene.
func (s Scene) Shade(l, m Real) Real {
	bri, path := s.trace(l, m)
	if Debug {
		logPixel(path, l, m, bri)
	}
	return bri
}

func (s Scene) trace(l, m Real) (Real, Category) {
	w := Vector3{l, m, 1}.Norm()
	c := s.Center

	t0, t1 := solveQuadratic(w.Dot(w), 2*w.Dot(c.Mul(-1)), c.Dot(c)-s.Radius*s.Radius)
	t := t1
	if t0 < t1 {
		t = t0
	}

	if math.IsNaN(t) {
		// No sphere: extend the camera ray to whichever plane it is heading for.
		up, down := s.CeilingY/m, s.FloorY/m
		if up > down {
			return s.FloorBrightness((l*s.CeilingY)/m, up), Direct
		}
		return s.FloorBrightness((l*-s.FloorY)/m, down), Direct
	}

	// The hit point stands in for the incident direction when mirroring.
	sw := w.Mul(t)
	n := sw.Sub(c).Norm()
	b := sw.Add(n.Mul(sw.Mul(-2).Dot(n)))

	u0 := (s.CeilingY - sw.Y) / b.Y
	u1 := (s.FloorY - sw.Y) / b.Y
	k := u1
	if u0 > u1 {
		k = u0
	}

	v := sw.Add(b.Mul(k))
	return s.FloorBrightness(v.X, v.Z), Reflected
}
