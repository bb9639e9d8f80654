package density

// Histogram is an empirical density estimated from samples in [0,1],
// useful for cross-checking operator iterates against forward-orbit
// statistics.
type Histogram struct {
	heights []float64
	width   float64
}

// FromSamples bins the samples into bins equal-width buckets over [0,1]
// and normalizes to unit mass. Samples outside [0,1] are dropped.
func FromSamples(samples []float64, bins int) *Histogram {
	if bins < 1 {
		bins = 1
	}
	counts := make([]float64, bins)
	total := 0
	for _, x := range samples {
		if x < 0 || x > 1 {
			continue
		}
		i := int(x * float64(bins))
		if i == bins {
			i = bins - 1
		}
		counts[i]++
		total++
	}

	width := 1.0 / float64(bins)
	if total > 0 {
		for i := range counts {
			counts[i] /= float64(total) * width
		}
	}
	return &Histogram{heights: counts, width: width}
}

func (h *Histogram) Eval(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	i := int(x / h.width)
	if i >= len(h.heights) {
		i = len(h.heights) - 1
	}
	return h.heights[i]
}

// Bins returns the number of buckets.
func (h *Histogram) Bins() int { return len(h.heights) }
