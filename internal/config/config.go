package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultR          = 3.54
	DefaultDensity    = "uniform"
	DefaultIterations = 8
	DefaultGridPoints = 350
	DefaultX0         = 0.3
	DefaultTransient  = 500
	DefaultSamples    = 1000
)

type Config struct {
	R          float64 `yaml:"r"`
	Density    string  `yaml:"density"`
	Iterations int     `yaml:"iterations"`
	GridPoints int     `yaml:"grid_points"`
	Resample   bool    `yaml:"resample"`
	Orbit      Orbit   `yaml:"orbit"`
}

// Orbit holds forward-iteration parameters shared by the orbit,
// bifurcation and Lyapunov drivers.
type Orbit struct {
	X0        float64 `yaml:"x0"`
	Transient int     `yaml:"transient"`
	Samples   int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		R:          DefaultR,
		Density:    DefaultDensity,
		Iterations: DefaultIterations,
		GridPoints: DefaultGridPoints,
		Orbit: Orbit{
			X0:        DefaultX0,
			Transient: DefaultTransient,
			Samples:   DefaultSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
