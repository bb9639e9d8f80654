package analysis

import (
	"math"

	"github.com/san-kum/perron/internal/logistic"
)

// LyapunovExponent estimates the Lyapunov exponent of the map along the
// orbit of x0:
//
//	lambda = (1/n) * sum ln|f'(x_k)|
//
// A positive value indicates chaos; at r=4 the exact value is ln 2. Steps
// landing on the critical point (zero slope) are skipped; they have
// measure zero along a generic orbit.
func LyapunovExponent(m *logistic.Map, x0 float64, n, transient int) float64 {
	x := x0
	for i := 0; i < transient; i++ {
		x = m.Eval(x)
	}

	sum := 0.0
	count := 0
	for i := 0; i < n; i++ {
		slope := math.Abs(m.Derivative(x))
		if slope > 0 {
			sum += math.Log(slope)
			count++
		}
		x = m.Eval(x)
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// LyapunovSweep evaluates the exponent over an evenly spaced range of
// parameter values, one entry per step.
func LyapunovSweep(rMin, rMax float64, steps int, x0 float64, n, transient int) []float64 {
	if steps <= 1 {
		steps = 2
	}
	rStep := (rMax - rMin) / float64(steps-1)

	out := make([]float64, steps)
	for i := 0; i < steps; i++ {
		out[i] = LyapunovExponent(logistic.New(rMin+float64(i)*rStep), x0, n, transient)
	}
	return out
}
