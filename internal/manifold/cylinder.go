package manifold

import (
	"math"

	"github.com/macma/seamtrace/internal/geom"
)

// Cylinder is the orientable control case: the unit cylinder
// (cos u, sin u, v) with constant vertical tangent rv = (0, 0, 1).
type Cylinder struct {
	Radius float64
}

func NewCylinder() *Cylinder {
	return &Cylinder{Radius: 1.0}
}

func (c *Cylinder) Name() string { return "cylinder" }

func (c *Cylinder) Map(u, v float64) (pos, ru, rv geom.Vec3, err error) {
	if err = checkInputs(c.Name(), u, v); err != nil {
		return
	}

	sinU, cosU := math.Sin(u), math.Cos(u)
	pos = geom.Vec3{X: c.Radius * cosU, Y: c.Radius * sinU, Z: v}
	ru = geom.Vec3{X: -c.Radius * sinU, Y: c.Radius * cosU}
	rv = geom.Vec3{Z: 1}

	err = checkTangents(c.Name(), u, v, ru, rv)
	return
}

// Parity is identically 0: the cylinder is orientable, so no traversal
// can flip the frame.
func (c *Cylinder) Parity(_, _ float64) int { return 0 }

func (c *Cylinder) GetParams() map[string]float64 {
	return map[string]float64{"radius": c.Radius}
}

func (c *Cylinder) SetParam(name string, value float64) {
	if name == "radius" {
		c.Radius = value
	}
}
