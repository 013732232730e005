package manifold

import (
	"fmt"
	"math"

	"github.com/macma/seamtrace/internal/geom"
	"github.com/macma/seamtrace/internal/topo"
)

// Mapping embeds intrinsic coordinates (u, v) into ambient 3-space and
// returns the analytic partial derivatives of the embedding. Derivatives
// are closed-form, never finite differences, so the frame built from
// them carries no differencing noise.
//
// Parity is the closed-form orientation indicator w1 for the point: a
// pure function of (u, v), independent of how a trajectory reached it.
type Mapping interface {
	Name() string
	Map(u, v float64) (pos, ru, rv geom.Vec3, err error)
	Parity(u, v float64) int
}

// checkInputs rejects non-finite coordinates before any trigonometry.
func checkInputs(name string, u, v float64) error {
	if math.IsNaN(u) || math.IsInf(u, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: map(%g, %g): %w", name, u, v, topo.ErrDomain)
	}
	return nil
}

// checkTangents rejects degenerate parametrization points where a
// tangent collapses and no frame can be built.
func checkTangents(name string, u, v float64, ru, rv geom.Vec3) error {
	if ru.Norm() < geom.DegenerateNorm || rv.Norm() < geom.DegenerateNorm {
		return fmt.Errorf("%s: degenerate tangent at (%g, %g): %w", name, u, v, topo.ErrDomain)
	}
	return nil
}
