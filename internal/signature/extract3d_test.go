package signature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macma/seamtrace/internal/flow"
	"github.com/macma/seamtrace/internal/integrators"
	"github.com/macma/seamtrace/internal/topo"
)

func solve3D(t *testing.T, f topo.Flow, x0 topo.State, tMax float64, n int) *topo.Trajectory {
	t.Helper()
	traj, err := integrators.Solve(f, x0, 0, tMax, n, topo.DefaultConfig())
	require.NoError(t, err)
	return traj
}

func TestExtract3DHelixHelicity(t *testing.T) {
	traj := solve3D(t, flow.NewDNAVortex(1, 1), topo.State{1, 0, 0}, 20, 500)
	b, err := Extract3D(traj, "dna", Options{})
	require.NoError(t, err)

	final := b.Helicity[b.Len()-1]
	assert.Greater(t, final, 5.0, "a helix must accumulate torsion")
	for i := 1; i < b.Len(); i++ {
		require.GreaterOrEqualf(t, b.Helicity[i], b.Helicity[i-1]-1e-9,
			"helicity decreased at sample %d", i)
	}
}

func TestExtract3DOrientable(t *testing.T) {
	traj := solve3D(t, flow.NewHopf(), topo.State{1.5, 0, 0}, 10, 400)
	b, err := Extract3D(traj, "hopf", Options{})
	require.NoError(t, err)

	for i, w := range b.W1 {
		require.Zerof(t, w, "ambient flows are orientable, parity flipped at %d", i)
	}
	for i := range b.Delta {
		require.InDeltaf(t, math.Abs(b.Z[i]), b.Delta[i], 1e-12,
			"seam distance must be |z| at sample %d", i)
	}
}

func TestExtract3DHopfTubeConserved(t *testing.T) {
	traj := solve3D(t, flow.NewHopf(), topo.State{1.5, 0, 0}, 10, 400)
	b, err := Extract3D(traj, "hopf", Options{})
	require.NoError(t, err)

	// Orbits stay on the tube around the core circle.
	for i := range b.X {
		rho := math.Hypot(b.X[i], b.Y[i])
		r := math.Hypot(rho-1, b.Z[i])
		require.InDeltaf(t, 0.5, r, 1e-5, "tube radius drifted at sample %d", i)
	}
}

func TestExtract3DStagnantVelocity(t *testing.T) {
	traj := &topo.Trajectory{
		Times:  []float64{0, 1},
		States: []topo.State{{1, 0, 0}, {1, 0, 0}},
		Derivs: []topo.State{{0, 0, 0}, {0, 0, 0}},
	}
	_, err := Extract3D(traj, "frozen", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, topo.ErrExtraction)
	assert.ErrorIs(t, err, topo.ErrDegenerateFrame)
}
