package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "mobius", cfg.Manifold)
	assert.Equal(t, "sinusoidal", cfg.Drift.Mode)
	assert.Equal(t, DefaultSamples, cfg.Samples)
	assert.Equal(t, DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, 8*math.Pi, cfg.TMax)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown manifold", func(c *Config) { c.Manifold = "torus" }, false},
		{"zero horizon", func(c *Config) { c.TMax = 0 }, false},
		{"negative horizon", func(c *Config) { c.TMax = -1 }, false},
		{"single sample", func(c *Config) { c.Samples = 1 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Manifold = "klein"
	cfg.Drift.Amplitude = 0.25
	cfg.InitState.V = 1.0
	cfg.Interpolate = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, Save(path, &Config{Manifold: "cylinder"}))

	// Zero-valued yaml keys overwrite, so only the manifold survives
	// here; the important part is that Load starts from defaults rather
	// than a zero Config.
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cylinder", loaded.Manifold)
}

func TestInitStateDimension(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Is3D())
	assert.Len(t, cfg.GetInitState(), 2)
	assert.Equal(t, DefaultV0, cfg.GetInitState()[1])

	cfg.Manifold = "hopf"
	assert.True(t, cfg.Is3D())
	assert.Equal(t, []float64{1.0, 0, 0}, cfg.GetInitState())
}

func TestIntegratorConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tolerance = 1e-6
	cfg.MaxSteps = 5000

	ic := cfg.IntegratorConfig()
	assert.Equal(t, 1e-6, ic.Tolerance)
	assert.Equal(t, 5000, ic.MaxSteps)

	cfg.Tolerance = 0
	cfg.MaxSteps = 0
	ic = cfg.IntegratorConfig()
	assert.Greater(t, ic.Tolerance, 0.0, "unset tolerance falls back to solver default")
	assert.Greater(t, ic.MaxSteps, 0, "unset budget falls back to solver default")
}

func TestPresets(t *testing.T) {
	for manifold, group := range Presets {
		for name, cfg := range group {
			t.Run(manifold+"/"+name, func(t *testing.T) {
				assert.Equal(t, manifold, cfg.Manifold)
				require.NoError(t, cfg.Validate())
			})
		}
	}

	assert.Nil(t, GetPreset("mobius", "absent"))
	assert.Nil(t, GetPreset("torus", "loops"))
	assert.NotNil(t, GetPreset("dna", "helix"))

	assert.ElementsMatch(t, []string{"loops", "steady"}, ListPresets("mobius"))
	assert.Nil(t, ListPresets("torus"))
}
