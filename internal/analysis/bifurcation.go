package analysis

import (
	"strings"

	"github.com/san-kum/perron/internal/logistic"
)

// BifurcationPoint holds the attractor values observed at one parameter
// value.
type BifurcationPoint struct {
	R      float64
	Values []float64
}

// BifurcationDiagram sweeps r over [rMin, rMax] and records the distinct
// values visited by the orbit after the transient has decayed. The sweep
// visualizes the period-doubling route to chaos.
func BifurcationDiagram(rMin, rMax float64, steps int, x0 float64, transient, record int) []BifurcationPoint {
	if steps <= 1 {
		steps = 2
	}
	rStep := (rMax - rMin) / float64(steps-1)

	results := make([]BifurcationPoint, 0, steps)
	for i := 0; i < steps; i++ {
		r := rMin + float64(i)*rStep
		m := logistic.New(r)

		x := x0
		for k := 0; k < transient; k++ {
			x = m.Eval(x)
		}

		values := make([]float64, 0, 64)
		seen := make(map[int]bool)
		for k := 0; k < record; k++ {
			x = m.Eval(x)
			// Quantize to find distinct attractor values.
			key := int(x * 1000)
			if !seen[key] {
				seen[key] = true
				values = append(values, x)
			}
		}

		results = append(results, BifurcationPoint{R: r, Values: values})
	}
	return results
}

// BifurcationToASCII renders the sweep as terminal art, r on the
// horizontal axis and x on the vertical.
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}
		for _, v := range p.Values {
			if v < 0 || v > 1 {
				continue
			}
			row := height - 1 - int(v*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
