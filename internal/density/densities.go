package density

import "math"

// bumpNorm is the integral of exp(-1/(1-u*u)) over u in (-1,1), halved for
// the change of variable u = 2x-1.
const bumpNorm = 0.44399381616807943 / 2

// Uniform is the constant density rho(x) = 1, the usual seed for operator
// chains. Like its source, it returns 1 everywhere without checking the
// domain.
type Uniform struct{}

func (Uniform) Eval(x float64) float64 { return 1 }

// Arcsine is 1/(pi*sqrt(x(1-x))), the invariant density of the logistic
// map at r = 4. It diverges at the endpoints; outside the open interval it
// evaluates to 0 so downstream arithmetic stays finite.
type Arcsine struct{}

func (Arcsine) Eval(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	return 1 / (math.Pi * math.Sqrt(x*(1-x)))
}

// Hat is the triangular density peaking at 0.5 with unit mass.
type Hat struct{}

func (Hat) Eval(x float64) float64 {
	switch {
	case x < 0 || x > 1:
		return 0
	case x <= 0.5:
		return 4 * x
	default:
		return 4 * (1 - x)
	}
}

// Bump is a smooth compactly supported density, normalized to unit mass.
type Bump struct{}

func (Bump) Eval(x float64) float64 {
	u := 2*x - 1
	if u <= -1 || u >= 1 {
		return 0
	}
	return math.Exp(-1/(1-u*u)) / bumpNorm
}
