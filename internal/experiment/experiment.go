package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/perron/internal/density"
	"github.com/san-kum/perron/internal/metrics"
	"github.com/san-kum/perron/internal/transfer"
)

var (
	ErrNotSetup       = errors.New("experiment not setup")
	ErrUnknownDensity = errors.New("unknown density")
)

type Config struct {
	R          float64
	Density    string
	Iterations int
	GridPoints int
	// Resample tabulates each iterate on the grid before the next
	// application, trading exact chain semantics for flat per-iteration
	// cost. Leave false for shallow chains.
	Resample bool
}

// Result holds every iterate of an operator chain evaluated on a shared
// grid. Curves[k] is T^k rho; Curves[0] is the seed itself.
type Result struct {
	Grid    []float64
	Curves  [][]float64
	Metrics map[string]float64
}

type Experiment struct {
	cfg     Config
	seed    density.Density
	metrics []metrics.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(seed density.Density, ms []metrics.Metric) error {
	if seed == nil {
		return fmt.Errorf("experiment needs a seed density")
	}
	e.seed = seed
	e.metrics = ms
	return nil
}

// Run builds the operator chain and evaluates every iterate on the grid,
// checking ctx between applications.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.seed == nil {
		return nil, ErrNotSetup
	}
	if e.cfg.GridPoints < 2 {
		return nil, fmt.Errorf("grid_points must exceed 1, got %d", e.cfg.GridPoints)
	}
	if e.cfg.Iterations < 0 {
		return nil, fmt.Errorf("iterations must be non-negative, got %d", e.cfg.Iterations)
	}

	grid := density.Grid(e.cfg.GridPoints)
	result := &Result{
		Grid:    grid,
		Curves:  make([][]float64, 0, e.cfg.Iterations+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	cur := e.seed
	result.Curves = append(result.Curves, density.EvalAll(cur, grid))

	for k := 0; k < e.cfg.Iterations; k++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		var next density.Density = transfer.Apply(e.cfg.R, cur)
		if e.cfg.Resample {
			next = density.Tabulate(next, e.cfg.GridPoints)
		}
		result.Curves = append(result.Curves, density.EvalAll(next, grid))
		cur = next
	}

	final := result.Curves[len(result.Curves)-1]
	metrics.ObserveCurve(e.metrics, grid, final)
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if n := len(result.Curves); n >= 2 {
		result.Metrics["residual_sup"] = supDiff(result.Curves[n-2], final)
	}

	return result, nil
}

func supDiff(a, b []float64) float64 {
	sup := 0.0
	for i := range a {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > sup {
			sup = diff
		}
	}
	return sup
}
