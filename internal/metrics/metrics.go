// Package metrics provides summary statistics accumulated over a sampled
// density curve.
package metrics

// Metric accumulates a statistic from (x, value) samples of a curve fed in
// ascending x order.
type Metric interface {
	Name() string
	Observe(x, y float64)
	Value() float64
	Reset()
}

// ObserveCurve feeds one whole curve through every metric.
func ObserveCurve(ms []Metric, xs, ys []float64) {
	for i := range xs {
		for _, m := range ms {
			m.Observe(xs[i], ys[i])
		}
	}
}
