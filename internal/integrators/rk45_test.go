package integrators

import (
	"math"
	"testing"

	"github.com/macma/seamtrace/internal/topo"
)

// harmonic is the test oscillator: x'' = -x, energy (x² + v²)/2.
type harmonic struct{}

func (harmonic) Dim() int { return 2 }

func (harmonic) Derive(_ float64, x topo.State) topo.State {
	return topo.State{x[1], -x[0]}
}

func energy(x topo.State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestRK45_Step(t *testing.T) {
	integrator := NewRK45()
	x := topo.State{1.0, 0.0}
	dt := 0.01

	for i := 0; i < 1000; i++ {
		x = integrator.Step(harmonic{}, x, float64(i)*dt, dt)
	}

	if !x.IsValid() {
		t.Error("RK45 produced invalid state")
	}
}

func TestRK45_EnergyConservation(t *testing.T) {
	integrator := NewRK45()
	x := topo.State{1.0, 0.0}
	initial := energy(x)
	dt := 0.01

	for i := 0; i < 10000; i++ {
		x = integrator.Step(harmonic{}, x, float64(i)*dt, dt)
	}

	drift := math.Abs(energy(x)-initial) / initial
	if drift > 1e-6 {
		t.Errorf("RK45 energy drift too high: %e", drift)
	}
}

func TestRK45_AdaptiveStep(t *testing.T) {
	integrator := NewRK45()
	x0 := topo.State{1.0, 0.0}

	x, newDt, err := integrator.StepAdaptive(harmonic{}, x0, 0, 0.1, 1e-8)
	if err != nil {
		t.Errorf("StepAdaptive returned error: %v", err)
	}
	if !x.IsValid() {
		t.Error("StepAdaptive produced invalid state")
	}
	if newDt <= 0 {
		t.Errorf("StepAdaptive returned invalid dt: %f", newDt)
	}
}

func TestRK45_VsRK4_Agreement(t *testing.T) {
	rk4 := NewRK4()
	rk45 := NewRK45()

	x4 := topo.State{1.0, 0.0}
	x45 := topo.State{1.0, 0.0}
	dt := 0.01

	for i := 0; i < 1000; i++ {
		x4 = rk4.Step(harmonic{}, x4, float64(i)*dt, dt)
		x45 = rk45.Step(harmonic{}, x45, float64(i)*dt, dt)
	}

	if math.Abs(x4[0]-x45[0]) > 1e-6 {
		t.Errorf("RK4 and RK45 disagree: %.8f vs %.8f", x4[0], x45[0])
	}
}
