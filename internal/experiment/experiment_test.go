package experiment

import (
	"context"
	"math"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"uniform", "arcsine", "hat", "bump"} {
		d, err := r.GetDensity(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if d == nil {
			t.Errorf("%s: nil density", name)
		}
	}

	if _, err := r.GetDensity("cauchy"); err == nil {
		t.Error("expected error for unknown density")
	}

	if len(r.ListDensities()) != 4 {
		t.Errorf("expected 4 densities, got %d", len(r.ListDensities()))
	}
	if len(r.DefaultMetrics()) == 0 {
		t.Error("expected default metrics")
	}
}

func TestRunProducesAllIterates(t *testing.T) {
	reg := NewRegistry()
	seed, err := reg.GetDensity("uniform")
	if err != nil {
		t.Fatal(err)
	}

	cfg := Config{R: 3.54, Density: "uniform", Iterations: 4, GridPoints: 350}
	exp := New(cfg)
	if err := exp.Setup(seed, reg.DefaultMetrics()); err != nil {
		t.Fatal(err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Curves) != 5 {
		t.Fatalf("expected seed + 4 iterates, got %d curves", len(result.Curves))
	}
	for k, curve := range result.Curves {
		if len(curve) != 350 {
			t.Fatalf("iterate %d: expected 350 samples, got %d", k, len(curve))
		}
		for i, v := range curve {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				t.Fatalf("iterate %d: bad value %g at index %d", k, v, i)
			}
		}
	}

	if _, ok := result.Metrics["mass"]; !ok {
		t.Error("expected mass metric")
	}
	if neg := result.Metrics["negativity"]; neg != 0 {
		t.Errorf("negativity = %g, want 0", neg)
	}
	if _, ok := result.Metrics["residual_sup"]; !ok {
		t.Error("expected residual metric")
	}
}

func TestRunResampled(t *testing.T) {
	reg := NewRegistry()
	seed, _ := reg.GetDensity("uniform")

	cfg := Config{R: 3.9, Iterations: 12, GridPoints: 200, Resample: true}
	exp := New(cfg)
	if err := exp.Setup(seed, nil); err != nil {
		t.Fatal(err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Curves) != 13 {
		t.Fatalf("expected 13 curves, got %d", len(result.Curves))
	}
}

func TestRunValidation(t *testing.T) {
	exp := New(Config{R: 3.54, Iterations: 2, GridPoints: 100})
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error for missing setup")
	}

	reg := NewRegistry()
	seed, _ := reg.GetDensity("uniform")

	bad := New(Config{R: 3.54, Iterations: 2, GridPoints: 1})
	bad.Setup(seed, nil)
	if _, err := bad.Run(context.Background()); err == nil {
		t.Error("expected error for degenerate grid")
	}

	negative := New(Config{R: 3.54, Iterations: -1, GridPoints: 100})
	negative.Setup(seed, nil)
	if _, err := negative.Run(context.Background()); err == nil {
		t.Error("expected error for negative iterations")
	}
}

func TestRunCanceled(t *testing.T) {
	reg := NewRegistry()
	seed, _ := reg.GetDensity("uniform")

	exp := New(Config{R: 3.54, Iterations: 8, GridPoints: 100})
	exp.Setup(seed, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := exp.Run(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
	if result == nil || len(result.Curves) == 0 {
		t.Error("expected partial result with the seed curve")
	}
}
