// Package viz renders densities and diagnostics in the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// PlotCurve renders one sampled density curve.
func PlotCurve(ys []float64, caption string) string {
	if len(ys) < 2 {
		return ""
	}
	return asciigraph.Plot(ys,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotIterates renders the seed, an intermediate iterate and the final
// iterate of a run, stacked vertically.
func PlotIterates(curves [][]float64) string {
	if len(curves) == 0 {
		return ""
	}

	picks := []int{0}
	if n := len(curves); n > 2 {
		picks = append(picks, n/2)
	}
	if len(curves) > 1 {
		picks = append(picks, len(curves)-1)
	}

	var b strings.Builder
	for _, k := range picks {
		b.WriteString(PlotCurve(curves[k], fmt.Sprintf("T^%d rho", k)))
		b.WriteString("\n\n")
	}
	return b.String()
}
