package transfer

import (
	"math"

	"github.com/san-kum/perron/internal/density"
	"github.com/san-kum/perron/internal/logistic"
)

// Operator applies the transfer operator of the logistic map with
// parameter r to an inner density. It implements density.Density, so the
// result of one application feeds the next.
type Operator struct {
	m     logistic.Map
	inner density.Density
}

// Apply wraps rho with one application of the operator for parameter r.
func Apply(r float64, rho density.Density) *Operator {
	return &Operator{m: logistic.Map{R: r}, inner: rho}
}

// Iterate returns T^n rho. Wrapping is iterative, so chain depth is bounded
// only by n; evaluation recurses through the n levels at query time.
func Iterate(r float64, rho density.Density, n int) density.Density {
	d := rho
	for i := 0; i < n; i++ {
		d = Apply(r, d)
	}
	return d
}

// Eval computes (T rho)(y). Both preimage branches contribute; the map is
// two-to-one everywhere below its maximum except at the measure-zero fold.
func (o *Operator) Eval(y float64) float64 {
	x1, x2, ok := o.m.Preimages(y)
	if !ok {
		// No real preimage at or above r/4.
		return 0
	}

	sum := 0.0
	for _, x := range [2]float64{x1, x2} {
		slope := math.Abs(o.m.Derivative(x))
		if slope == 0 {
			// Fold point x = 0.5, reached only when the clamped
			// discriminant is exactly zero.
			continue
		}
		sum += o.inner.Eval(x) / slope
	}
	return sum
}

// R returns the map parameter the operator was built with.
func (o *Operator) R() float64 { return o.m.R }

// Inner returns the wrapped density.
func (o *Operator) Inner() density.Density { return o.inner }
