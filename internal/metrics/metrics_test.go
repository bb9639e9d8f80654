package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/perron/internal/density"
)

func TestMassOfConstantCurve(t *testing.T) {
	m := NewMass()

	xs := density.Grid(101)
	for _, x := range xs {
		m.Observe(x, 1.0)
	}

	if math.Abs(m.Value()-1) > 1e-12 {
		t.Errorf("mass of constant 1 = %g, want 1", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero mass after reset")
	}
}

func TestMassOfHat(t *testing.T) {
	m := NewMass()
	var h density.Hat

	xs := density.Grid(1001)
	for _, x := range xs {
		m.Observe(x, h.Eval(x))
	}

	if math.Abs(m.Value()-1) > 1e-6 {
		t.Errorf("mass of hat = %g, want 1", m.Value())
	}
}

func TestPeak(t *testing.T) {
	p := NewPeak()
	p.Observe(0.0, 0.5)
	p.Observe(0.5, 2.0)
	p.Observe(1.0, 1.0)

	if p.Value() != 2.0 {
		t.Errorf("peak = %g, want 2", p.Value())
	}

	p.Reset()
	p.Observe(0, -3)
	if p.Value() != -3 {
		t.Errorf("peak of all-negative curve = %g, want -3", p.Value())
	}
}

func TestNegativity(t *testing.T) {
	n := NewNegativity()
	n.Observe(0.1, 1.0)
	n.Observe(0.2, 0.0)

	if n.Value() != 0 {
		t.Errorf("negativity of non-negative curve = %g, want 0", n.Value())
	}

	n.Observe(0.3, -0.25)
	if n.Value() != 0.25 {
		t.Errorf("negativity = %g, want 0.25", n.Value())
	}

	n.Reset()
	if n.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestObserveCurve(t *testing.T) {
	ms := []Metric{NewMass(), NewPeak(), NewNegativity()}

	xs := density.Grid(101)
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = 1
	}
	ObserveCurve(ms, xs, ys)

	if math.Abs(ms[0].Value()-1) > 1e-12 {
		t.Errorf("mass = %g, want 1", ms[0].Value())
	}
	if ms[1].Value() != 1 {
		t.Errorf("peak = %g, want 1", ms[1].Value())
	}
	if ms[2].Value() != 0 {
		t.Errorf("negativity = %g, want 0", ms[2].Value())
	}
}
