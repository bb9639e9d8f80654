package density

// Sampled is a density tabulated on an evenly spaced grid over [0,1] and
// linearly interpolated between nodes. Resampling a deep operator chain
// into a Sampled keeps the cost of further applications constant instead of
// doubling per level.
type Sampled struct {
	ys   []float64
	step float64
}

// NewSampled wraps grid values. ys must hold at least two nodes covering
// [0,1] inclusive.
func NewSampled(ys []float64) *Sampled {
	return &Sampled{ys: ys, step: 1.0 / float64(len(ys)-1)}
}

// Tabulate evaluates d on an n-point grid and returns the interpolating
// density.
func Tabulate(d Density, n int) *Sampled {
	if n < 2 {
		n = 2
	}
	return NewSampled(EvalAll(d, Grid(n)))
}

// Eval interpolates linearly between the two surrounding nodes. Outside
// [0,1] the value is 0.
func (s *Sampled) Eval(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	i := int(x / s.step)
	if i >= len(s.ys)-1 {
		return s.ys[len(s.ys)-1]
	}
	frac := (x - float64(i)*s.step) / s.step
	return s.ys[i] + frac*(s.ys[i+1]-s.ys[i])
}

// Values returns the underlying grid values.
func (s *Sampled) Values() []float64 { return s.ys }
