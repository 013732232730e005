package geom

import "math"

// DegenerateNorm is the threshold below which a vector cannot be safely
// normalized. Matches the frame tracker's degeneracy convention.
const DegenerateNorm = 1e-8

// Vec3 is a point or direction in ambient 3-space.
type Vec3 struct {
	X, Y, Z float64
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

func (a Vec3) IsFinite() bool {
	for _, c := range [3]float64{a.X, a.Y, a.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Normalized returns a unit-length copy of a. ok is false when the norm
// is below DegenerateNorm, in which case the zero vector is returned.
func (a Vec3) Normalized() (Vec3, bool) {
	n := a.Norm()
	if n < DegenerateNorm {
		return Vec3{}, false
	}
	return a.Scale(1 / n), true
}

// OrthonormalAgainst projects ref off the unit tangent t and normalizes
// the remainder (one Gram-Schmidt step). ok is false when ref is nearly
// parallel to t.
func OrthonormalAgainst(ref, t Vec3) (Vec3, bool) {
	r := ref.Sub(t.Scale(ref.Dot(t)))
	return r.Normalized()
}
