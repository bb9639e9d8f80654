package experiment

import (
	"fmt"

	"github.com/san-kum/perron/internal/density"
	"github.com/san-kum/perron/internal/metrics"
)

// Registry maps density names to constructors so the CLI and config layer
// can refer to seeds symbolically.
type Registry struct {
	densities map[string]func() density.Density
}

func NewRegistry() *Registry {
	r := &Registry{
		densities: make(map[string]func() density.Density),
	}

	r.densities["uniform"] = func() density.Density { return density.Uniform{} }
	r.densities["arcsine"] = func() density.Density { return density.Arcsine{} }
	r.densities["hat"] = func() density.Density { return density.Hat{} }
	r.densities["bump"] = func() density.Density { return density.Bump{} }

	return r
}

func (r *Registry) GetDensity(name string) (density.Density, error) {
	fn, ok := r.densities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDensity, name)
	}
	return fn(), nil
}

func (r *Registry) ListDensities() []string {
	names := make([]string, 0, len(r.densities))
	for name := range r.densities {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics are the statistics collected over the final iterate of
// every run.
func (r *Registry) DefaultMetrics() []metrics.Metric {
	return []metrics.Metric{
		metrics.NewMass(),
		metrics.NewPeak(),
		metrics.NewNegativity(),
	}
}
