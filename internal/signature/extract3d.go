package signature

import (
	"math"

	"github.com/macma/seamtrace/internal/frame"
	"github.com/macma/seamtrace/internal/geom"
	"github.com/macma/seamtrace/internal/topo"
)

// Extract3D assembles the bundle for an ambient-native flow trajectory.
// The manifold mapping degenerates to the identity: the trajectory
// already lives in ambient space, and the frame comes from the flow
// velocity at each sample. 3D flows are orientable, so parity is fixed
// at 0; the extra signature is the running helicity integral, which
// separates genuinely twisted orbits from flat closed loops.
func Extract3D(traj *topo.Trajectory, name string, opts Options) (*Bundle, error) {
	n := traj.Len()
	b := &Bundle{
		Manifold: name,
		T:        make([]float64, n),
		X:        make([]float64, n),
		Y:        make([]float64, n),
		Z:        make([]float64, n),
		Theta:    make([]float64, n),
		Delta:    make([]float64, n),
		W1:       make([]int, n),
		Coords:   make([]geom.Vec3, n),
		Frames:   make([]frame.Frame, n),
		Helicity: make([]float64, n),
	}

	var unwrap frame.Unwrapper
	var bad []int

	for i := 0; i < n; i++ {
		t, x, dx := traj.At(i)

		b.T[i] = t
		b.X[i], b.Y[i], b.Z[i] = x[0], x[1], x[2]
		b.Theta[i] = unwrap.Next(frame.Phase(dx))
		b.Delta[i] = frame.SeamDistance(x)
		b.Coords[i] = geom.Vec3{X: x[0], Y: x[1], Z: x[2]}

		fr, err := frame.Flow(dx)
		if err != nil {
			if opts.Interpolate {
				bad = append(bad, i)
				continue
			}
			return nil, extractionFailure(name, i, t, err)
		}
		b.Frames[i] = fr
	}

	if err := repairFrames(b, bad, name); err != nil {
		return nil, err
	}

	accumulateHelicity(b, traj)
	return b, nil
}

// accumulateHelicity integrates the discrete torsion of the velocity
// polyline: at each interior sample, the signed angle between the
// binormals of adjacent velocity pairs, measured around the current
// velocity. Planar orbits contribute nothing; helical and linked orbits
// accumulate monotonically.
func accumulateHelicity(b *Bundle, traj *topo.Trajectory) {
	n := traj.Len()
	vel := func(i int) geom.Vec3 {
		d := traj.Derivs[i]
		return geom.Vec3{X: d[0], Y: d[1], Z: d[2]}
	}

	for i := 1; i < n; i++ {
		inc := 0.0
		if i+1 < n {
			b1 := vel(i - 1).Cross(vel(i))
			b2 := vel(i).Cross(vel(i + 1))
			if b1.Norm() >= geom.DegenerateNorm && b2.Norm() >= geom.DegenerateNorm {
				axis, _ := vel(i).Normalized()
				inc = signedAngle(b1, b2, axis)
			}
		}
		b.Helicity[i] = b.Helicity[i-1] + inc
	}
}

// signedAngle returns the angle from a to c measured around axis.
func signedAngle(a, c, axis geom.Vec3) float64 {
	an, okA := a.Normalized()
	cn, okC := c.Normalized()
	if !okA || !okC {
		return 0
	}
	sin := an.Cross(cn).Dot(axis)
	cos := an.Dot(cn)
	return math.Atan2(sin, cos)
}
