package flow

import (
	"math"

	"github.com/macma/seamtrace/internal/topo"
)

// DNAVortex is a helical vortex flow around the z axis: rigid rotation
// at TurnRate, vertical climb at ClimbRate, and a mild radial relaxation
// toward the unit cylinder so perturbed orbits stay on the helix sheath
// instead of spiraling away.
type DNAVortex struct {
	TurnRate  float64 // angular velocity around the axis
	ClimbRate float64 // vertical drift
	Relax     float64 // radial pull toward radius 1
}

func NewDNAVortex(turnRate, climbRate float64) *DNAVortex {
	return &DNAVortex{TurnRate: turnRate, ClimbRate: climbRate, Relax: 0.5}
}

func (d *DNAVortex) Dim() int { return 3 }

func (d *DNAVortex) Derive(_ float64, s topo.State) topo.State {
	x, y := s[0], s[1]
	rho := math.Hypot(x, y)
	phi := math.Atan2(y, x)

	radial := d.Relax * (1 - rho)
	dx := -d.TurnRate*y + radial*math.Cos(phi)
	dy := d.TurnRate*x + radial*math.Sin(phi)
	dz := d.ClimbRate

	return topo.State{dx, dy, dz}
}

func (d *DNAVortex) GetParams() map[string]float64 {
	return map[string]float64{"turn_rate": d.TurnRate, "climb_rate": d.ClimbRate, "relax": d.Relax}
}

func (d *DNAVortex) SetParam(name string, value float64) {
	switch name {
	case "turn_rate":
		d.TurnRate = value
	case "climb_rate":
		d.ClimbRate = value
	case "relax":
		d.Relax = value
	}
}
