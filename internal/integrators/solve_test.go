package integrators

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/macma/seamtrace/internal/topo"
)

func TestSolveFixedGrid(t *testing.T) {
	n := 101
	tMax := 2 * math.Pi
	traj, err := Solve(harmonic{}, topo.State{1, 0}, 0, tMax, n, topo.DefaultConfig())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if traj.Len() != n {
		t.Fatalf("expected %d samples, got %d", n, traj.Len())
	}
	if len(traj.States) != n || len(traj.Derivs) != n {
		t.Fatal("sequence lengths misaligned")
	}

	h := tMax / float64(n-1)
	for i, tv := range traj.Times {
		if math.Abs(tv-float64(i)*h) > 1e-12 {
			t.Fatalf("grid not evenly spaced at %d: %g", i, tv)
		}
	}
	if traj.Times[n-1] != tMax {
		t.Errorf("final time %g, want %g exactly", traj.Times[n-1], tMax)
	}
}

func TestSolveAccuracy(t *testing.T) {
	n := 1001
	tMax := 2 * math.Pi
	traj, err := Solve(harmonic{}, topo.State{1, 0}, 0, tMax, n, topo.DefaultConfig())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	maxErr := 0.0
	for i := range traj.Times {
		exact := math.Cos(traj.Times[i])
		if e := math.Abs(traj.States[i][0] - exact); e > maxErr {
			maxErr = e
		}
	}
	if maxErr > 1e-6 {
		t.Errorf("max grid error %e exceeds 1e-6", maxErr)
	}
}

func TestSolveDerivsMatchFlow(t *testing.T) {
	traj, err := Solve(harmonic{}, topo.State{1, 0}, 0, 1, 11, topo.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := range traj.Times {
		want := harmonic{}.Derive(traj.Times[i], traj.States[i])
		if traj.Derivs[i][0] != want[0] || traj.Derivs[i][1] != want[1] {
			t.Fatalf("sample %d derivative not re-evaluated from the flow", i)
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	run := func() *topo.Trajectory {
		traj, err := Solve(harmonic{}, topo.State{1, 0}, 0, 10, 200, topo.DefaultConfig())
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		return traj
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must give bit-identical trajectories")
	}
}

func TestSolveStepBudget(t *testing.T) {
	cfg := topo.DefaultConfig()
	cfg.MaxSteps = 3
	cfg.InitialDt = 1e-6

	_, err := Solve(harmonic{}, topo.State{1, 0}, 0, 100, 10, cfg)
	if !errors.Is(err, topo.ErrIntegration) {
		t.Errorf("expected ErrIntegration on exhausted budget, got %v", err)
	}

	var ie *topo.IntegrationError
	if !errors.As(err, &ie) {
		t.Error("expected IntegrationError context")
	}
}

func TestSolveRejectsBadRequests(t *testing.T) {
	cfg := topo.DefaultConfig()

	if _, err := Solve(harmonic{}, topo.State{1, 0}, 0, 1, 1, cfg); err == nil {
		t.Error("expected error for sample count below 2")
	}
	if _, err := Solve(harmonic{}, topo.State{1, 0}, 1, 1, 10, cfg); err == nil {
		t.Error("expected error for empty time span")
	}
	if _, err := Solve(harmonic{}, topo.State{1, 0, 0}, 0, 1, 10, cfg); err == nil {
		t.Error("expected error for dimension mismatch")
	}
	if _, err := Solve(harmonic{}, topo.State{math.NaN(), 0}, 0, 1, 10, cfg); err == nil {
		t.Error("expected error for NaN initial state")
	}
}

// A drift-free transverse coordinate must come through the dense-output
// resampling exactly, not just approximately.
type frozen struct{}

func (frozen) Dim() int { return 2 }
func (frozen) Derive(_ float64, x topo.State) topo.State {
	return topo.State{1, 0}
}

func TestSolvePreservesConstantComponent(t *testing.T) {
	traj, err := Solve(frozen{}, topo.State{0, 0.2}, 0, 8*math.Pi, 1000, topo.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := range traj.States {
		if math.Abs(traj.States[i][1]-0.2) > 1e-10 {
			t.Fatalf("constant component drifted at %d: %g", i, traj.States[i][1])
		}
	}
}
