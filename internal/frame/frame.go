package frame

import (
	"fmt"
	"math"

	"github.com/macma/seamtrace/internal/geom"
	"github.com/macma/seamtrace/internal/manifold"
	"github.com/macma/seamtrace/internal/topo"
)

// Frame is a local orthonormal triple at one trajectory sample. For
// surface manifolds Ru and Rv are the normalized tangent partials; for
// ambient-native flows Ru is the velocity direction and Rv the
// Gram-Schmidt transverse built against a fixed reference axis. In both
// cases Normal = Ru × Rv, and its sign depends on the tangent ordering,
// which is exactly why parity is tracked by closed-form indicator
// instead of by comparing consecutive normals.
type Frame struct {
	Ru, Rv, Normal geom.Vec3
}

// RefAxis is the fixed reference used to seed flow-native transverse
// directions. A fixed axis keeps the transverse pair consistent across
// samples; per-sample choices would inject spurious frame rotation into
// the helicity measure.
var RefAxis = geom.Vec3{Z: 1}

// Surface evaluates the mapping at (u, v) and builds the normalized
// frame. Mapping failures pass through; a tangent that survives the
// mapping but cannot be normalized fails with topo.ErrDegenerateFrame.
// Pure: the same (u, v) always yields the identical frame and position.
func Surface(m manifold.Mapping, u, v float64) (geom.Vec3, Frame, error) {
	pos, ru, rv, err := m.Map(u, v)
	if err != nil {
		return geom.Vec3{}, Frame{}, err
	}

	run, ok := ru.Normalized()
	if !ok {
		return geom.Vec3{}, Frame{}, degenerate(m.Name(), u, v, "ru")
	}
	rvn, ok := rv.Normalized()
	if !ok {
		return geom.Vec3{}, Frame{}, degenerate(m.Name(), u, v, "rv")
	}
	normal, ok := ru.Cross(rv).Normalized()
	if !ok {
		return geom.Vec3{}, Frame{}, degenerate(m.Name(), u, v, "ru×rv")
	}

	return pos, Frame{Ru: run, Rv: rvn, Normal: normal}, nil
}

// Flow builds the moving frame of an ambient-native trajectory sample
// from its instantaneous velocity: tangent along the velocity, first
// transverse from Gram-Schmidt of RefAxis against the tangent, second
// transverse closing the right-handed triple. When the velocity runs
// parallel to RefAxis the x axis seeds the transverse instead.
func Flow(vel topo.State) (Frame, error) {
	v := geom.Vec3{X: vel[0], Y: vel[1], Z: vel[2]}
	tangent, ok := v.Normalized()
	if !ok {
		return Frame{}, fmt.Errorf("flow frame: stagnant velocity: %w", topo.ErrDegenerateFrame)
	}

	e1, ok := geom.OrthonormalAgainst(RefAxis, tangent)
	if !ok {
		e1, ok = geom.OrthonormalAgainst(geom.Vec3{X: 1}, tangent)
		if !ok {
			return Frame{}, fmt.Errorf("flow frame: no transverse direction: %w", topo.ErrDegenerateFrame)
		}
	}

	return Frame{Ru: tangent, Rv: e1, Normal: tangent.Cross(e1)}, nil
}

// Phase is the instantaneous flow direction angle in the primary plane:
// atan2 of the first two derivative components. Wrapped to (-π, π];
// feed it through an Unwrapper for the continuous signature.
func Phase(deriv topo.State) float64 {
	return math.Atan2(deriv[1], deriv[0])
}

// SeamDistance is the distance to the v=0 (respectively z=0) locus: the
// absolute value of the transverse intrinsic coordinate. Non-negative
// by construction.
func SeamDistance(x topo.State) float64 {
	return math.Abs(x[len(x)-1])
}

func degenerate(name string, u, v float64, which string) error {
	return fmt.Errorf("%s: %s at (%g, %g): %w", name, which, u, v, topo.ErrDegenerateFrame)
}
