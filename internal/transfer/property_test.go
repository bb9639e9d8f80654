package transfer

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/perron/internal/density"
)

// Property-style checks across parameter and density variants.

func TestPushforwardProperties(t *testing.T) {
	g := NewWithT(t)

	seeds := map[string]density.Density{
		"uniform": density.Uniform{},
		"hat":     density.Hat{},
		"bump":    density.Bump{},
	}

	for _, r := range []float64{0.5, 1.0, 2.5, 3.2, 3.54, 3.9, 4.0} {
		for name, rho := range seeds {
			op := Apply(r, rho)

			// Everything at or above the maximum is exactly zero.
			for _, y := range []float64{r / 4, r/4 + 0.05, 1.0} {
				g.Expect(op.Eval(y)).To(BeZero(),
					"r=%g rho=%s y=%g", r, name, y)
			}

			// Below the maximum the pushforward is finite and
			// non-negative everywhere on the grid.
			for _, y := range density.Grid(101) {
				v := op.Eval(y)
				g.Expect(math.IsNaN(v)).To(BeFalse(),
					"NaN at r=%g rho=%s y=%g", r, name, y)
				g.Expect(v).To(BeNumerically(">=", 0),
					"negative at r=%g rho=%s y=%g", r, name, y)
			}
		}
	}
}

func TestConcreteScenarioGomega(t *testing.T) {
	g := NewWithT(t)

	op := Apply(3.54, density.Uniform{})
	g.Expect(op.Eval(0.4)).To(BeNumerically("~", 0.7630, 1e-3))
}

func TestChainMassStaysNormalized(t *testing.T) {
	g := NewWithT(t)

	for _, r := range []float64{3.2, 3.54, 4.0} {
		d := density.Density(density.Uniform{})
		for k := 1; k <= 4; k++ {
			// Resample between applications so quadrature cost stays
			// flat while the chain deepens.
			d = density.Tabulate(Apply(r, d), 4001)
			g.Expect(Mass(d, 4000)).To(BeNumerically("~", 1.0, 0.1),
				"r=%g after %d applications", r, k)
		}
	}
}
