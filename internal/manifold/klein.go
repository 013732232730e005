package manifold

import (
	"math"

	"github.com/macma/seamtrace/internal/geom"
)

// Klein is the figure-eight immersion of the Klein bottle:
//
//	a(u,v) = cos(u/2)·sin(v) − sin(u/2)·sin(2v)
//	x = (R + a)·cos(u)
//	y = (R + a)·sin(u)
//	z = sin(u/2)·sin(v) + cos(u/2)·sin(2v)
//
// The immersion has u-period 4π, covered by two charts of width 2π. The
// chart index doubles as the orientation parity: crossing a chart
// boundary is exactly the traversal that reverses the frame, so parity
// continuity across transitions falls out of the gluing convention.
type Klein struct {
	Radius float64
}

func NewKlein() *Klein {
	return &Klein{Radius: 2.0}
}

func (k *Klein) Name() string { return "klein" }

func (k *Klein) Map(u, v float64) (pos, ru, rv geom.Vec3, err error) {
	if err = checkInputs(k.Name(), u, v); err != nil {
		return
	}

	sinU, cosU := math.Sin(u), math.Cos(u)
	sinH, cosH := math.Sin(u/2), math.Cos(u/2)
	sinV, cosV := math.Sin(v), math.Cos(v)
	sin2V, cos2V := math.Sin(2*v), math.Cos(2*v)

	a := cosH*sinV - sinH*sin2V
	w := k.Radius + a

	pos = geom.Vec3{
		X: w * cosU,
		Y: w * sinU,
		Z: sinH*sinV + cosH*sin2V,
	}

	au := -0.5*sinH*sinV - 0.5*cosH*sin2V
	ru = geom.Vec3{
		X: au*cosU - w*sinU,
		Y: au*sinU + w*cosU,
		Z: 0.5*cosH*sinV - 0.5*sinH*sin2V,
	}

	av := cosH*cosV - 2*sinH*cos2V
	rv = geom.Vec3{
		X: av * cosU,
		Y: av * sinU,
		Z: sinH*cosV + 2*cosH*cos2V,
	}

	err = checkTangents(k.Name(), u, v, ru, rv)
	return
}

// Chart returns the active chart index (0 or 1) for a given u. Charts
// tile the 4π period in half-open 2π-wide bands, so u at a whole
// period wraps back to chart 0: a sweep closing exactly there re-enters
// the first chart rather than staying in the second.
func (k *Klein) Chart(u float64) int {
	p := math.Mod(u, 4*math.Pi)
	if p < 0 {
		p += 4 * math.Pi
	}
	if p >= 2*math.Pi {
		return 1
	}
	return 0
}

// Parity is the active-chart flag.
func (k *Klein) Parity(u, _ float64) int { return k.Chart(u) }

func (k *Klein) GetParams() map[string]float64 {
	return map[string]float64{"radius": k.Radius}
}

func (k *Klein) SetParam(name string, value float64) {
	if name == "radius" {
		k.Radius = value
	}
}
