package config

import "math"

var Presets = map[string]map[string]*Config{
	"mobius": {
		"loops": {
			Manifold: "mobius", TMax: 8 * math.Pi, Samples: 1000, Tolerance: 1e-8,
			Drift:     DriftConfig{Mode: "sinusoidal", Amplitude: 0.1, Frequency: 1.0},
			InitState: InitStateConfig{U: 0.0, V: 0.2},
		},
		"steady": {
			Manifold: "mobius", TMax: 4 * math.Pi, Samples: 500, Tolerance: 1e-8,
			Drift:     DriftConfig{Mode: "constant"},
			InitState: InitStateConfig{U: 0.0, V: 0.2},
		},
	},
	"cylinder": {
		"control": {
			Manifold: "cylinder", TMax: 8 * math.Pi, Samples: 1000, Tolerance: 1e-8,
			Drift:     DriftConfig{Mode: "sinusoidal", Amplitude: 0.1, Frequency: 1.0},
			InitState: InitStateConfig{U: 0.0, V: 0.2},
		},
	},
	"klein": {
		"immersion": {
			Manifold: "klein", TMax: 8 * math.Pi, Samples: 1000, Tolerance: 1e-8,
			Drift:     DriftConfig{Mode: "sinusoidal", Amplitude: 0.1, Frequency: 1.0},
			InitState: InitStateConfig{U: 0.0, V: 1.0},
		},
	},
	"hopf": {
		"fibration": {
			Manifold: "hopf", TMax: 10.0, Samples: 1000, Tolerance: 1e-8,
			InitState: InitStateConfig{X: 1.0, Y: 0.0, Z: 0.0},
			Params:    ParamsConfig{Pitch: 1.0},
		},
	},
	"dna": {
		"helix": {
			Manifold: "dna", TMax: 20.0, Samples: 1000, Tolerance: 1e-8,
			InitState: InitStateConfig{X: 1.0, Y: 0.0, Z: 0.0},
			Params:    ParamsConfig{TurnRate: 1.0, ClimbRate: 1.0},
		},
	},
}

func GetPreset(manifold, preset string) *Config {
	group, ok := Presets[manifold]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(manifold string) []string {
	group, ok := Presets[manifold]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
