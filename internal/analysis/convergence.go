package analysis

import (
	"github.com/san-kum/perron/internal/density"
	"github.com/san-kum/perron/internal/transfer"
)

// ConvergenceStep records how far one operator application moved the
// density.
type ConvergenceStep struct {
	Iteration int
	L1        float64
	Sup       float64
}

// Convergence applies the transfer operator repeatedly to rho and measures
// the distance between consecutive iterates on a shared grid. Vanishing
// residuals indicate a fixed point of the operator, i.e. an invariant
// density. Iterates are resampled onto the grid between applications so the
// cost per iteration stays flat.
func Convergence(r float64, rho density.Density, iterations, gridN int) []ConvergenceStep {
	if gridN < 2 {
		gridN = 2
	}

	steps := make([]ConvergenceStep, 0, iterations)
	prev := density.Tabulate(rho, gridN)
	for k := 1; k <= iterations; k++ {
		next := density.Tabulate(transfer.Apply(r, prev), gridN)
		steps = append(steps, ConvergenceStep{
			Iteration: k,
			L1:        transfer.L1Distance(prev, next, gridN-1),
			Sup:       transfer.SupDistance(prev, next, gridN-1),
		})
		prev = next
	}
	return steps
}
