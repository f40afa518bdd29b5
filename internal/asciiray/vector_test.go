package asciiray

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}
	s := Real(3)

	add := v.Add(w)
	if add != (Vector3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != (Vector3{2, 1.5, 1}) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	mul := v.Mul(s)
	if mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	dot := v.Dot(w)
	wantDot := Real(1*(-1) + 2*0.5 + 3*2)
	if dot != wantDot {
		t.Fatalf("Dot mismatch: got %.12g want %.12g", dot, wantDot)
	}
	l := v.Len()
	if math.Abs(l-math.Sqrt(14)) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", l)
	}
}

func TestNormIsUnit(t *testing.T) {
	for _, v := range []Vector3{
		{1, 2, 3},
		{-0.49, 0.49, 1},
		{0, 0, 1},
		{1e-8, -3e-9, 2e-8},
		{1e6, -2e6, 5e5},
	} {
		n := v.Norm()
		if math.Abs(n.Len()-1) > 1e-12 {
			t.Fatalf("Norm(%+v) not unit: %.12g", v, n.Len())
		}
	}
}

func TestNormZeroIsNaN(t *testing.T) {
	n := Vector3{}.Norm()
	if !math.IsNaN(n.X) || !math.IsNaN(n.Y) || !math.IsNaN(n.Z) {
		t.Fatalf("expected NaN components, got %+v", n)
	}
}
