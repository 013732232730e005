package integrators

import "github.com/macma/seamtrace/internal/topo"

// RK4 is the classic fixed-step fourth-order scheme. The adaptive RK45
// is the production path; RK4 is kept as an independent cross-check.
type RK4 struct {
	k1, k2, k3, k4 topo.State
	scratch        topo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(topo.State, n)
		r.k2 = make(topo.State, n)
		r.k3 = make(topo.State, n)
		r.k4 = make(topo.State, n)
		r.scratch = make(topo.State, n)
	}
}

func (r *RK4) Step(f topo.Flow, x topo.State, t, dt float64) topo.State {
	n := len(x)
	r.ensureScratch(n)

	copy(r.k1, f.Derive(t, x))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k1[i]
	}
	copy(r.k2, f.Derive(t+dt*0.5, r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*r.k2[i]
	}
	copy(r.k3, f.Derive(t+dt*0.5, r.scratch))

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*r.k3[i]
	}
	copy(r.k4, f.Derive(t+dt, r.scratch))

	result := make(topo.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
