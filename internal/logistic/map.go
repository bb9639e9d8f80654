package logistic

import "math"

// Map is the logistic map with control parameter R.
type Map struct {
	R float64
}

func New(r float64) *Map {
	return &Map{R: r}
}

// Eval returns f(x) = r*x*(1-x).
func (m *Map) Eval(x float64) float64 {
	return m.R * x * (1 - x)
}

// Derivative returns f'(x) = r*(1-2x), the closed form for this family.
func (m *Map) Derivative(x float64) float64 {
	return m.R * (1 - 2*x)
}

// EvalAll applies the map element-wise.
func (m *Map) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Eval(x)
	}
	return out
}

// Max returns the attained maximum r/4, reached at the critical point x=0.5.
func (m *Map) Max() float64 {
	return m.R / 4
}

// Preimages solves f(x) = y via the quadratic formula
// x = 0.5 +- sqrt(0.25 - y/r). For y at or above the maximum r/4 (or for
// r <= 0) no real preimage exists and ok is false. The discriminant is
// clamped at zero so rounding at y -> r/4 never produces NaN.
func (m *Map) Preimages(y float64) (x1, x2 float64, ok bool) {
	if m.R <= 0 || y >= m.Max() {
		return 0, 0, false
	}
	disc := 0.25 - y/m.R
	if disc < 0 {
		disc = 0
	}
	s := math.Sqrt(disc)
	return 0.5 + s, 0.5 - s, true
}

// Orbit iterates the map n times from x0, discarding transient leading
// steps first. The returned slice has length n.
func (m *Map) Orbit(x0 float64, n, transient int) []float64 {
	x := x0
	for i := 0; i < transient; i++ {
		x = m.Eval(x)
	}
	orbit := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = m.Eval(x)
		orbit = append(orbit, x)
	}
	return orbit
}

func (m *Map) GetParams() map[string]float64 {
	return map[string]float64{"r": m.R}
}

func (m *Map) SetParam(name string, v float64) error {
	if name == "r" {
		m.R = v
	}
	return nil
}
