package integrators

import (
	"fmt"
	"math"

	"github.com/macma/seamtrace/internal/topo"
)

// Solve integrates f from x0 over [t0, t1] with adaptive RK45 steps and
// returns the solution resampled onto a fixed grid of n evenly spaced
// points. The internal step sequence depends on the error controller,
// but the returned grid does not, so identical inputs give identical
// output sequences.
//
// Grid values between accepted steps come from cubic Hermite dense
// output using the endpoint derivatives the FSAL pair already provides.
// Sample derivatives are re-evaluated from f directly at each grid
// point, independent of solver internals.
//
// No partial trajectory is returned: if the controller cannot hold the
// tolerance within cfg.MaxSteps attempts, or dt underflows cfg.MinDt,
// Solve fails with an error wrapping topo.ErrIntegration.
func Solve(f topo.Flow, x0 topo.State, t0, t1 float64, n int, cfg topo.Config) (*topo.Trajectory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("integrators: need at least 2 samples, got %d", n)
	}
	if t1 <= t0 {
		return nil, fmt.Errorf("integrators: need t1 > t0, got [%g, %g]", t0, t1)
	}
	if len(x0) != f.Dim() {
		return nil, fmt.Errorf("integrators: state dim %d does not match flow dim %d", len(x0), f.Dim())
	}
	if !x0.IsValid() {
		return nil, fmt.Errorf("integrators: initial state contains NaN/Inf")
	}

	h := (t1 - t0) / float64(n-1)
	eps := h * 1e-9

	times := make([]float64, n)
	states := make([]topo.State, n)
	for i := range times {
		times[i] = t0 + float64(i)*h
	}
	times[n-1] = t1
	states[0] = x0.Clone()

	// The cubic interpolant is only trustworthy over spans comparable to
	// the output grid, so the step ceiling is the grid interval even
	// when the error controller would allow more.
	maxDt := math.Min(cfg.MaxDt, h)

	r := NewRK45()
	t := t0
	x := x0.Clone()
	k1 := f.Derive(t, x)
	dt := math.Min(cfg.InitialDt, maxDt)

	gi := 1
	steps := 0

	for gi < n {
		if steps >= cfg.MaxSteps {
			return nil, &topo.IntegrationError{
				Step: steps, Time: t, Dt: dt,
				Wrapped: fmt.Errorf("step budget %d exhausted: %w", cfg.MaxSteps, topo.ErrIntegration),
			}
		}
		steps++

		if t+dt > t1 {
			dt = t1 - t
		}

		res := r.attempt(f, x, k1, t, dt, cfg.Tolerance)

		if res.errRatio > 1 {
			next := r.nextDt(dt, res.errRatio)
			if next < cfg.MinDt {
				return nil, &topo.IntegrationError{
					Step: steps, Time: t, Dt: next,
					Wrapped: fmt.Errorf("dt underflow below %g: %w", cfg.MinDt, topo.ErrIntegration),
				}
			}
			dt = next
			continue
		}

		if !res.x.IsValid() {
			return nil, &topo.IntegrationError{
				Step: steps, Time: t, Dt: dt,
				Wrapped: fmt.Errorf("state diverged (NaN/Inf): %w", topo.ErrIntegration),
			}
		}

		for gi < n && times[gi] <= t+dt+eps {
			states[gi] = hermite(x, k1, res.x, res.k7, dt, (times[gi]-t)/dt)
			gi++
		}

		t += dt
		x = res.x
		k1 = res.k7 // FSAL: derivative at the new endpoint
		dt = math.Max(cfg.MinDt, math.Min(r.nextDt(dt, res.errRatio), maxDt))
	}

	derivs := make([]topo.State, n)
	for i := range derivs {
		derivs[i] = f.Derive(times[i], states[i])
	}

	return &topo.Trajectory{Times: times, States: states, Derivs: derivs}, nil
}

// hermite evaluates the cubic Hermite interpolant at s in [0, 1] over a
// step of width dt with endpoint states x0, x1 and derivatives d0, d1.
func hermite(x0, d0, x1, d1 topo.State, dt, s float64) topo.State {
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	out := make(topo.State, len(x0))
	for i := range out {
		out[i] = h00*x0[i] + h01*x1[i] + dt*(h10*d0[i]+h11*d1[i])
	}
	return out
}
