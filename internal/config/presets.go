package config

// Preset is a ready-made equation the Examples dialog can load into the
// input panel. Params holds only the overrides; other parameter fields keep
// whatever the user typed.
type Preset struct {
	Name     string
	Equation string
	Params   map[string]string
	Initial  string
	Span     string
}

// Presets are the fixed example equations, in display order.
var Presets = []Preset{
	{
		Name:     "Exponential Decay",
		Equation: "dy/dt = -a*y",
		Params:   map[string]string{"a": "0.5"},
		Initial:  "1.0",
		Span:     "0, 5",
	},
	{
		Name:     "Harmonic Oscillator",
		Equation: "dy/dt = -k*y",
		Params:   map[string]string{"k": "1.0"},
		Initial:  "0.0",
		Span:     "0, 10",
	},
	{
		Name:     "Forced Oscillator",
		Equation: "dy/dt = -k*y + sin(b*t)",
		Params:   map[string]string{"k": "1.0", "b": "3.0"},
		Initial:  "0.0",
		Span:     "0, 20",
	},
	{
		Name:     "Logistic Growth",
		Equation: "dy/dt = c*y*(1 - y)",
		Params:   map[string]string{"c": "0.8"},
		Initial:  "0.1",
		Span:     "0, 10",
	},
}

// GetPreset looks a preset up by name; nil if unknown.
func GetPreset(name string) *Preset {
	for i := range Presets {
		if Presets[i].Name == name {
			return &Presets[i]
		}
	}
	return nil
}

// ListPresets returns the preset names in display order.
func ListPresets() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// Apply overwrites the config fields a preset specifies.
func (p *Preset) Apply(cfg *Config) {
	cfg.Equation = p.Equation
	cfg.Initial = p.Initial
	cfg.Span = p.Span
	for name, val := range p.Params {
		cfg.Params[name] = val
	}
}
