package transfer

import (
	"math"

	"github.com/san-kum/perron/internal/density"
)

// Mass integrates d over [0,1] with the composite trapezoid rule on n
// panels. The transfer operator preserves mass, so for a normalized input
// this stays near 1 up to quadrature error.
func Mass(d density.Density, n int) float64 {
	if n < 1 {
		n = 1
	}
	ys := density.EvalAll(d, density.Grid(n+1))
	h := 1.0 / float64(n)
	sum := 0.0
	for i := 1; i < len(ys); i++ {
		sum += 0.5 * (ys[i] + ys[i-1]) * h
	}
	return sum
}

// L1Distance is the trapezoid integral of |a-b| over [0,1] on n panels.
func L1Distance(a, b density.Density, n int) float64 {
	if n < 1 {
		n = 1
	}
	xs := density.Grid(n + 1)
	ya := density.EvalAll(a, xs)
	yb := density.EvalAll(b, xs)
	h := 1.0 / float64(n)
	sum := 0.0
	for i := 1; i < len(xs); i++ {
		sum += 0.5 * (math.Abs(ya[i]-yb[i]) + math.Abs(ya[i-1]-yb[i-1])) * h
	}
	return sum
}

// SupDistance is the largest pointwise gap between a and b on an n+1 point
// grid.
func SupDistance(a, b density.Density, n int) float64 {
	xs := density.Grid(n + 1)
	ya := density.EvalAll(a, xs)
	yb := density.EvalAll(b, xs)
	sup := 0.0
	for i := range xs {
		if diff := math.Abs(ya[i] - yb[i]); diff > sup {
			sup = diff
		}
	}
	return sup
}
