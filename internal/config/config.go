package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the interactive input panel.
const (
	DefaultEquation  = "dy/dt = -a*y + sin(b*t)"
	DefaultInitial   = "1.0"
	DefaultSpan      = "0, 10"
	DefaultSamples   = 1000
	DefaultTolerance = 1e-6
)

// Config describes one solve. Field text is kept as typed (span "0, 10",
// initial "1.0") so a config file round-trips exactly what the input panel
// shows.
type Config struct {
	Equation   string            `yaml:"equation"`
	Initial    string            `yaml:"initial"`
	Span       string            `yaml:"span"`
	Params     map[string]string `yaml:"params"`
	Samples    int               `yaml:"samples"`
	Tolerance  float64           `yaml:"tolerance"`
	Integrator string            `yaml:"integrator"`
}

func DefaultConfig() *Config {
	return &Config{
		Equation:   DefaultEquation,
		Initial:    DefaultInitial,
		Span:       DefaultSpan,
		Params:     DefaultParams(),
		Samples:    DefaultSamples,
		Tolerance:  DefaultTolerance,
		Integrator: "rk45",
	}
}

// DefaultParams returns the four parameter fields of the input panel with
// their default values, as text.
func DefaultParams() map[string]string {
	return map[string]string{"a": "0.5", "b": "1.0", "c": "0.8", "k": "1.0"}
}

// ParamNames is the fixed order of the parameter fields.
var ParamNames = []string{"a", "b", "c", "k"}

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
