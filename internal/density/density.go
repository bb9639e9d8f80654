package density

// Density is a distribution of states over [0,1]. Implementations are pure:
// Eval must not mutate state, so a Density may be evaluated from multiple
// goroutines at once.
type Density interface {
	Eval(x float64) float64
}

// Func adapts an ordinary function to the Density interface.
type Func func(x float64) float64

func (f Func) Eval(x float64) float64 { return f(x) }

// EvalAll evaluates d at every point of xs. Points are independent, so
// large inputs are split into chunks evaluated on separate goroutines.
// Output positions correspond to input positions.
func EvalAll(d Density, xs []float64) []float64 {
	out := make([]float64, len(xs))
	ParallelFor(len(xs), 64, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = d.Eval(xs[i])
		}
	})
	return out
}

// Grid returns n evenly spaced points spanning [0,1] inclusive.
func Grid(n int) []float64 {
	if n < 2 {
		return []float64{0}
	}
	xs := make([]float64, n)
	step := 1.0 / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	xs[n-1] = 1
	return xs
}
