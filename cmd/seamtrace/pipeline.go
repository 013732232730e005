package main

import (
	"fmt"

	"github.com/macma/seamtrace/internal/config"
	"github.com/macma/seamtrace/internal/flow"
	"github.com/macma/seamtrace/internal/integrators"
	"github.com/macma/seamtrace/internal/manifold"
	"github.com/macma/seamtrace/internal/signature"
	"github.com/macma/seamtrace/internal/topo"
)

func buildFlow(cfg *config.Config) (topo.Flow, error) {
	switch cfg.Manifold {
	case "hopf":
		f := flow.NewHopf()
		f.Pitch = cfg.Params.Pitch
		return f, nil
	case "dna":
		return flow.NewDNAVortex(cfg.Params.TurnRate, cfg.Params.ClimbRate), nil
	default:
		mode := flow.DriftMode(cfg.Drift.Mode)
		switch mode {
		case flow.DriftConstant, flow.DriftSinusoidal:
		default:
			return nil, fmt.Errorf("unknown drift mode %q", cfg.Drift.Mode)
		}
		d := flow.NewDrift(mode)
		if cfg.Drift.Amplitude != 0 {
			d.Amplitude = cfg.Drift.Amplitude
		}
		if cfg.Drift.Frequency != 0 {
			d.Frequency = cfg.Drift.Frequency
		}
		return d, nil
	}
}

// runPipeline executes one full trajectory-and-signature run: integrate
// the flow onto the fixed sample grid, then extract the bundle variant
// matching the manifold family.
func runPipeline(cfg *config.Config) (*signature.Bundle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fl, err := buildFlow(cfg)
	if err != nil {
		return nil, err
	}

	x0 := topo.State(cfg.GetInitState())
	traj, err := integrators.Solve(fl, x0, 0, cfg.TMax, cfg.Samples, cfg.IntegratorConfig())
	if err != nil {
		return nil, fmt.Errorf("integrate %s: %w", cfg.Manifold, err)
	}

	opts := signature.Options{Interpolate: cfg.Interpolate}
	switch cfg.Manifold {
	case "mobius":
		return signature.Extract(traj, manifold.NewMobius(), opts)
	case "cylinder":
		return signature.Extract(traj, manifold.NewCylinder(), opts)
	case "klein":
		return signature.ExtractKlein(traj, manifold.NewKlein(), opts)
	case "hopf", "dna":
		return signature.Extract3D(traj, cfg.Manifold, opts)
	default:
		return nil, fmt.Errorf("unknown manifold %q", cfg.Manifold)
	}
}
