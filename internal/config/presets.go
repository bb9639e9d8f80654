package config

// Presets are named parameter regimes of the logistic map, covering the
// route to chaos.
var Presets = map[string]*Config{
	"fixedpoint": {
		R: 2.5, Density: "uniform", Iterations: 12, GridPoints: 350,
		Orbit: Orbit{X0: 0.3, Transient: 500, Samples: 1000},
	},
	"period2": {
		R: 3.2, Density: "uniform", Iterations: 12, GridPoints: 350,
		Orbit: Orbit{X0: 0.3, Transient: 500, Samples: 1000},
	},
	"edge": {
		R: 3.57, Density: "uniform", Iterations: 16, GridPoints: 500, Resample: true,
		Orbit: Orbit{X0: 0.3, Transient: 2000, Samples: 4000},
	},
	"chaos": {
		R: 3.9, Density: "uniform", Iterations: 16, GridPoints: 500, Resample: true,
		Orbit: Orbit{X0: 0.3, Transient: 1000, Samples: 4000},
	},
	"full": {
		R: 4.0, Density: "arcsine", Iterations: 8, GridPoints: 350,
		Orbit: Orbit{X0: 0.3, Transient: 1000, Samples: 4000},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
