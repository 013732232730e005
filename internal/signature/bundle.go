package signature

import (
	"github.com/macma/seamtrace/internal/frame"
	"github.com/macma/seamtrace/internal/geom"
)

// Bundle is the assembled signature output of one trajectory run. Every
// slice has exactly the trajectory's sample count and sequences are
// positionally aligned: index i always refers to time T[i]. Consumers
// (plotting, export) treat a Bundle as read-only.
type Bundle struct {
	Manifold string

	T []float64

	// Intrinsic coordinates: U/V for surface manifolds, X/Y/Z for
	// ambient-native flows. The unused family stays nil.
	U, V    []float64
	X, Y, Z []float64

	Theta  []float64 // unwrapped phase
	Delta  []float64 // distance to seam, >= 0
	W1     []int     // orientation parity, 0 or 1
	Coords []geom.Vec3
	Frames []frame.Frame

	// Helicity is the running winding integral; 3D-flow bundles only.
	Helicity []float64

	// SeamCrossings counts sign changes of the transverse coordinate;
	// surface bundles only.
	SeamCrossings int

	// Transitions records chart boundary crossings; Klein bundles only.
	Transitions []ChartTransition
}

// ChartTransition marks a sample where the intrinsic trajectory moved
// onto the other chart of a two-chart immersion.
type ChartTransition struct {
	Index    int
	Time     float64
	From, To int
}

// Options adjusts extraction behavior.
type Options struct {
	// Interpolate fills a degenerate-frame sample from its nearest good
	// neighbors instead of failing the run. Off by default: silent
	// repair is opt-in, a dropped sample would corrupt alignment either
	// way, so length is preserved in both modes.
	Interpolate bool
}

// ParityTransitions counts the flips in the parity sequence.
func (b *Bundle) ParityTransitions() int {
	n := 0
	for i := 1; i < len(b.W1); i++ {
		if b.W1[i] != b.W1[i-1] {
			n++
		}
	}
	return n
}

func (b *Bundle) Len() int { return len(b.T) }
