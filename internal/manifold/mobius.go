package manifold

import (
	"math"

	"github.com/macma/seamtrace/internal/geom"
)

// Mobius is the standard half-twist embedding of the Möbius strip:
//
//	x = (R + W·v·cos(u/2))·cos(u)
//	y = (R + W·v·cos(u/2))·sin(u)
//	z = W·v·sin(u/2)
//
// u runs around the strip (period 4π for the embedding, 2π per loop),
// v is the signed transverse offset from the center seam.
type Mobius struct {
	Radius float64 // R, distance from axis to the seam
	Width  float64 // W, transverse scale
}

func NewMobius() *Mobius {
	return &Mobius{Radius: 1.0, Width: 0.5}
}

func (m *Mobius) Name() string { return "mobius" }

func (m *Mobius) Map(u, v float64) (pos, ru, rv geom.Vec3, err error) {
	if err = checkInputs(m.Name(), u, v); err != nil {
		return
	}

	sinU, cosU := math.Sin(u), math.Cos(u)
	sinH, cosH := math.Sin(u/2), math.Cos(u/2)
	w := m.Radius + m.Width*v*cosH

	pos = geom.Vec3{X: w * cosU, Y: w * sinU, Z: m.Width * v * sinH}

	// dw/du = -W·v·sin(u/2)/2
	dw := -0.5 * m.Width * v * sinH
	ru = geom.Vec3{
		X: dw*cosU - w*sinU,
		Y: dw*sinU + w*cosU,
		Z: 0.5 * m.Width * v * cosH,
	}
	rv = geom.Vec3{
		X: m.Width * cosH * cosU,
		Y: m.Width * cosH * sinU,
		Z: m.Width * sinH,
	}

	err = checkTangents(m.Name(), u, v, ru, rv)
	return
}

// Parity is the half-angle twist indicator: cos(u/2) < 0 marks the
// flipped side of the strip. The seam itself (cos(u/2) exactly zero)
// resolves to the non-flipped side. This sign convention is a documented
// choice; alternatives are topologically equivalent but numerically
// distinct, so it must not be "re-derived" elsewhere.
func (m *Mobius) Parity(u, _ float64) int {
	if math.Cos(u/2) < 0 {
		return 1
	}
	return 0
}

func (m *Mobius) GetParams() map[string]float64 {
	return map[string]float64{"radius": m.Radius, "width": m.Width}
}

func (m *Mobius) SetParam(name string, value float64) {
	switch name {
	case "radius":
		m.Radius = value
	case "width":
		m.Width = value
	}
}
