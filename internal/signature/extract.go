package signature

import (
	"fmt"

	"github.com/macma/seamtrace/internal/frame"
	"github.com/macma/seamtrace/internal/geom"
	"github.com/macma/seamtrace/internal/manifold"
	"github.com/macma/seamtrace/internal/topo"
)

// Extract drives the frame tracker across a surface-manifold trajectory
// and assembles the 2D-intrinsic bundle. A degenerate sample aborts the
// whole run unless opts.Interpolate is set; extraction never returns a
// shortened bundle.
func Extract(traj *topo.Trajectory, m manifold.Mapping, opts Options) (*Bundle, error) {
	n := traj.Len()
	b := &Bundle{
		Manifold: m.Name(),
		T:        make([]float64, n),
		U:        make([]float64, n),
		V:        make([]float64, n),
		Theta:    make([]float64, n),
		Delta:    make([]float64, n),
		W1:       make([]int, n),
		Coords:   make([]geom.Vec3, n),
		Frames:   make([]frame.Frame, n),
	}

	var unwrap frame.Unwrapper
	var bad []int

	for i := 0; i < n; i++ {
		t, x, dx := traj.At(i)
		u, v := x[0], x[1]

		b.T[i] = t
		b.U[i] = u
		b.V[i] = v
		// Phase, seam distance and parity depend only on the intrinsic
		// sample, so they stay computable even when the embedding frame
		// degenerates.
		b.Theta[i] = unwrap.Next(frame.Phase(dx))
		b.Delta[i] = frame.SeamDistance(x)
		b.W1[i] = m.Parity(u, v)

		pos, fr, err := frame.Surface(m, u, v)
		if err != nil {
			if opts.Interpolate {
				bad = append(bad, i)
				continue
			}
			return nil, extractionFailure(m.Name(), i, t, err)
		}
		b.Coords[i] = pos
		b.Frames[i] = fr
	}

	if err := repairFrames(b, bad, m.Name()); err != nil {
		return nil, err
	}

	for i := 1; i < n; i++ {
		if b.V[i-1]*b.V[i] < 0 {
			b.SeamCrossings++
		}
	}

	return b, nil
}

func extractionFailure(name string, i int, t float64, err error) error {
	return fmt.Errorf("%w: %w", topo.ErrExtraction,
		&topo.SampleError{Manifold: name, Index: i, Time: t, Wrapped: err})
}

// repairFrames fills interpolated positions and frames for the listed
// samples from their nearest intact neighbors. Fails if a bad sample
// has no good neighbor on either side.
func repairFrames(b *Bundle, bad []int, name string) error {
	if len(bad) == 0 {
		return nil
	}
	isBad := make(map[int]bool, len(bad))
	for _, i := range bad {
		isBad[i] = true
	}

	n := b.Len()
	for _, i := range bad {
		lo := i - 1
		for lo >= 0 && isBad[lo] {
			lo--
		}
		hi := i + 1
		for hi < n && isBad[hi] {
			hi++
		}
		if lo < 0 && hi >= n {
			return extractionFailure(name, i, b.T[i],
				fmt.Errorf("no intact neighbor to interpolate from: %w", topo.ErrDegenerateFrame))
		}

		switch {
		case lo < 0:
			b.Coords[i] = b.Coords[hi]
			b.Frames[i] = b.Frames[hi]
		case hi >= n:
			b.Coords[i] = b.Coords[lo]
			b.Frames[i] = b.Frames[lo]
		default:
			s := float64(i-lo) / float64(hi-lo)
			b.Coords[i] = lerp(b.Coords[lo], b.Coords[hi], s)
			b.Frames[i] = frame.Frame{
				Ru:     slerpDir(b.Frames[lo].Ru, b.Frames[hi].Ru, s),
				Rv:     slerpDir(b.Frames[lo].Rv, b.Frames[hi].Rv, s),
				Normal: slerpDir(b.Frames[lo].Normal, b.Frames[hi].Normal, s),
			}
		}
	}
	return nil
}

func lerp(a, c geom.Vec3, s float64) geom.Vec3 {
	return a.Scale(1 - s).Add(c.Scale(s))
}

// slerpDir blends two unit directions and renormalizes, falling back to
// the nearer endpoint when they cancel.
func slerpDir(a, c geom.Vec3, s float64) geom.Vec3 {
	v, ok := lerp(a, c, s).Normalized()
	if !ok {
		if s < 0.5 {
			return a
		}
		return c
	}
	return v
}
