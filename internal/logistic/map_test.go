package logistic

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		r, x, want float64
	}{
		{4.0, 0.5, 1.0},
		{4.0, 0.0, 0.0},
		{4.0, 1.0, 0.0},
		{3.54, 0.5, 0.885},
		{2.0, 0.25, 0.375},
	}

	for _, tt := range tests {
		m := New(tt.r)
		got := m.Eval(tt.x)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Eval(r=%g, x=%g) = %g, want %g", tt.r, tt.x, got, tt.want)
		}
	}
}

func TestDerivative(t *testing.T) {
	m := New(3.54)

	if got := m.Derivative(0.5); got != 0 {
		t.Errorf("derivative at critical point = %g, want 0", got)
	}
	if got := m.Derivative(0.0); math.Abs(got-3.54) > 1e-12 {
		t.Errorf("derivative at 0 = %g, want r", got)
	}
	if got := m.Derivative(1.0); math.Abs(got+3.54) > 1e-12 {
		t.Errorf("derivative at 1 = %g, want -r", got)
	}
}

func TestPreimagesRoundTrip(t *testing.T) {
	m := New(3.54)

	for _, y := range []float64{0.0, 0.1, 0.4, 0.7, 0.88} {
		x1, x2, ok := m.Preimages(y)
		if !ok {
			t.Fatalf("expected preimages for y=%g below max %g", y, m.Max())
		}
		if math.Abs(m.Eval(x1)-y) > 1e-10 {
			t.Errorf("f(x1)=%g, want %g", m.Eval(x1), y)
		}
		if math.Abs(m.Eval(x2)-y) > 1e-10 {
			t.Errorf("f(x2)=%g, want %g", m.Eval(x2), y)
		}
		if x2 > x1 {
			t.Errorf("expected x1 >= x2, got %g < %g", x1, x2)
		}
	}
}

func TestPreimagesMask(t *testing.T) {
	m := New(3.54)

	if _, _, ok := m.Preimages(m.Max()); ok {
		t.Error("expected no preimage at y = r/4")
	}
	if _, _, ok := m.Preimages(0.9); ok {
		t.Error("expected no preimage above the maximum")
	}

	degenerate := New(0)
	if _, _, ok := degenerate.Preimages(0.1); ok {
		t.Error("expected no preimage for r = 0")
	}
}

func TestPreimagesBoundary(t *testing.T) {
	m := New(3.54)

	// Just below the fold the roots collapse toward the critical point but
	// must stay real.
	y := math.Nextafter(m.Max(), 0)
	x1, x2, ok := m.Preimages(y)
	if !ok {
		t.Fatal("expected preimages just below r/4")
	}
	if math.IsNaN(x1) || math.IsNaN(x2) {
		t.Errorf("roots must not be NaN at the boundary: %g, %g", x1, x2)
	}
	if math.Abs(x1-0.5) > 1e-4 || math.Abs(x2-0.5) > 1e-4 {
		t.Errorf("roots should collapse to 0.5, got %g, %g", x1, x2)
	}
}

func TestOrbit(t *testing.T) {
	m := New(2.5)

	orbit := m.Orbit(0.3, 200, 100)
	if len(orbit) != 200 {
		t.Fatalf("expected 200 samples, got %d", len(orbit))
	}

	// r=2.5 has the stable fixed point 1 - 1/r = 0.6.
	last := orbit[len(orbit)-1]
	if math.Abs(last-0.6) > 1e-6 {
		t.Errorf("orbit should settle at 0.6, got %g", last)
	}
}

func TestEvalAll(t *testing.T) {
	m := New(4.0)
	xs := []float64{0, 0.25, 0.5, 0.75, 1}

	out := m.EvalAll(xs)
	if len(out) != len(xs) {
		t.Fatalf("expected %d values, got %d", len(xs), len(out))
	}
	for i, x := range xs {
		if out[i] != m.Eval(x) {
			t.Errorf("EvalAll[%d] = %g, want %g", i, out[i], m.Eval(x))
		}
	}
}

func TestSetParam(t *testing.T) {
	m := New(2.0)
	m.SetParam("r", 3.9)
	if m.R != 3.9 {
		t.Errorf("expected r=3.9, got %g", m.R)
	}
	if got := m.GetParams()["r"]; got != 3.9 {
		t.Errorf("GetParams r = %g, want 3.9", got)
	}
}
