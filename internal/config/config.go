package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/macma/seamtrace/internal/topo"
)

const (
	DefaultSamples   = 1000
	DefaultTolerance = 1e-8
	DefaultTMax      = 8 * math.Pi
	DefaultAmplitude = 0.1
	DefaultFrequency = 1.0
	DefaultV0        = 0.2
	DefaultPitch     = 1.0
	DefaultTurnRate  = 1.0
	DefaultClimbRate = 1.0
)

type Config struct {
	Manifold    string          `yaml:"manifold"`
	Drift       DriftConfig     `yaml:"drift"`
	TMax        float64         `yaml:"t_max"`
	Samples     int             `yaml:"samples"`
	Tolerance   float64         `yaml:"tolerance"`
	MaxSteps    int             `yaml:"max_steps"`
	InitState   InitStateConfig `yaml:"init_state"`
	Params      ParamsConfig    `yaml:"params"`
	Interpolate bool            `yaml:"interpolate"`
}

type DriftConfig struct {
	Mode      string  `yaml:"mode"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

type InitStateConfig struct {
	U float64 `yaml:"u"`
	V float64 `yaml:"v"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ParamsConfig carries the manifold-specific extras.
type ParamsConfig struct {
	Pitch     float64 `yaml:"pitch"`
	TurnRate  float64 `yaml:"turn_rate"`
	ClimbRate float64 `yaml:"climb_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Manifold: "mobius",
		Drift: DriftConfig{
			Mode:      "sinusoidal",
			Amplitude: DefaultAmplitude,
			Frequency: DefaultFrequency,
		},
		TMax:      DefaultTMax,
		Samples:   DefaultSamples,
		Tolerance: DefaultTolerance,
		InitState: InitStateConfig{V: DefaultV0, X: 1.0},
		Params: ParamsConfig{
			Pitch:     DefaultPitch,
			TurnRate:  DefaultTurnRate,
			ClimbRate: DefaultClimbRate,
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

// Is3D reports whether the configured manifold is an ambient-native
// flow rather than a parametrized surface.
func (c *Config) Is3D() bool {
	switch c.Manifold {
	case "hopf", "dna":
		return true
	}
	return false
}

func (c *Config) GetInitState() []float64 {
	if c.Is3D() {
		return []float64{c.InitState.X, c.InitState.Y, c.InitState.Z}
	}
	return []float64{c.InitState.U, c.InitState.V}
}

// IntegratorConfig translates the run settings into solver bounds.
func (c *Config) IntegratorConfig() topo.Config {
	ic := topo.DefaultConfig()
	if c.Tolerance > 0 {
		ic.Tolerance = c.Tolerance
	}
	if c.MaxSteps > 0 {
		ic.MaxSteps = c.MaxSteps
	}
	return ic
}

func (c *Config) Validate() error {
	switch c.Manifold {
	case "mobius", "cylinder", "klein", "hopf", "dna":
	default:
		return fmt.Errorf("config: unknown manifold %q", c.Manifold)
	}
	if c.TMax <= 0 {
		return fmt.Errorf("config: t_max must be positive, got %g", c.TMax)
	}
	if c.Samples < 2 {
		return fmt.Errorf("config: samples must be at least 2, got %d", c.Samples)
	}
	return nil
}
