package topo

import (
	"fmt"
	"math"
)

// State is a point in intrinsic parameter space: (u, v) for surface
// manifolds, (x, y, z) for ambient-native flows.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Flow is a time-dependent vector field over intrinsic state.
// Derive must be pure and safe to evaluate at arbitrary (t, x), including
// points that were never produced by an integration run.
type Flow interface {
	Derive(t float64, x State) State
	Dim() int
}

// Integrator advances a state by one step of size dt.
type Integrator interface {
	Step(f Flow, x State, t, dt float64) State
}

// AdaptiveIntegrator additionally proposes the next step size from a
// local error estimate.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(f Flow, x State, t, dt, tol float64) (State, float64, error)
}

// Config bounds the adaptive integration of a single trajectory.
type Config struct {
	Tolerance float64
	InitialDt float64
	MinDt     float64
	MaxDt     float64
	MaxSteps  int
}

func DefaultConfig() Config {
	return Config{
		Tolerance: 1e-8,
		InitialDt: 0.01,
		MinDt:     1e-10,
		MaxDt:     0.5,
		MaxSteps:  1_000_000,
	}
}

func (c Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("topo: tolerance must be positive, got %g", c.Tolerance)
	}
	if c.InitialDt <= 0 {
		return fmt.Errorf("topo: initial dt must be positive, got %g", c.InitialDt)
	}
	if c.MinDt <= 0 || c.MinDt > c.MaxDt {
		return fmt.Errorf("topo: need 0 < min dt <= max dt, got [%g, %g]", c.MinDt, c.MaxDt)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("topo: step budget must be positive, got %d", c.MaxSteps)
	}
	return nil
}

// Trajectory is a time-sampled solution on a fixed, evenly spaced grid.
// Times is strictly increasing and all three slices have equal length.
// A Trajectory is never mutated after Solve returns it.
type Trajectory struct {
	Times  []float64
	States []State
	Derivs []State
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// At returns the sample at index i.
func (tr *Trajectory) At(i int) (t float64, x, dx State) {
	return tr.Times[i], tr.States[i], tr.Derivs[i]
}
