package signature

import (
	"github.com/macma/seamtrace/internal/manifold"
	"github.com/macma/seamtrace/internal/topo"
)

// ExtractKlein assembles the two-chart bundle: the surface extraction
// plus the chart-transition events where the trajectory crosses a chart
// boundary of the figure-eight immersion. Parity continuity across a
// transition is inherent: the parity bit is the active-chart flag, so
// each recorded transition coincides with exactly one parity flip.
func ExtractKlein(traj *topo.Trajectory, k *manifold.Klein, opts Options) (*Bundle, error) {
	b, err := Extract(traj, k, opts)
	if err != nil {
		return nil, err
	}

	prev := k.Chart(b.U[0])
	for i := 1; i < b.Len(); i++ {
		chart := k.Chart(b.U[i])
		if chart != prev {
			b.Transitions = append(b.Transitions, ChartTransition{
				Index: i,
				Time:  b.T[i],
				From:  prev,
				To:    chart,
			})
			prev = chart
		}
	}

	return b, nil
}
