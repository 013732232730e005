package flow

import (
	"math"

	"github.com/macma/seamtrace/internal/topo"
)

// Hopf is an ambient-native flow whose orbits wind around a torus of
// major radius R with toroidal rate 1 and poloidal rate Pitch. With
// Pitch = 1 the orbits are (1,1) torus knots: pairwise linked circles,
// the stereographic image of Hopf fibers.
//
// Writing the state in torus coordinates (φ toroidal, χ poloidal,
// r·sinχ = z, r·cosχ = ρ−R), the velocity is the pushforward of
// (dφ, dχ) = (1, Pitch), which reduces to a closed form without any
// division by the minor radius.
type Hopf struct {
	MajorRadius float64
	Pitch       float64
}

func NewHopf() *Hopf {
	return &Hopf{MajorRadius: 1.0, Pitch: 1.0}
}

func (h *Hopf) Dim() int { return 3 }

func (h *Hopf) Derive(_ float64, s topo.State) topo.State {
	x, y, z := s[0], s[1], s[2]
	rho := math.Hypot(x, y)
	phi := math.Atan2(y, x)
	sinP, cosP := math.Sin(phi), math.Cos(phi)

	dx := -rho*sinP - h.Pitch*z*cosP
	dy := rho*cosP - h.Pitch*z*sinP
	dz := h.Pitch * (rho - h.MajorRadius)

	return topo.State{dx, dy, dz}
}

func (h *Hopf) GetParams() map[string]float64 {
	return map[string]float64{"major_radius": h.MajorRadius, "pitch": h.Pitch}
}

func (h *Hopf) SetParam(name string, value float64) {
	switch name {
	case "major_radius":
		h.MajorRadius = value
	case "pitch":
		h.Pitch = value
	}
}
