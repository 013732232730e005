package frame

import "math"

// Unwrapper accumulates a branch-continuous angle from a stream of
// wrapped atan2 values. The first value seeds the accumulator raw; each
// later value contributes its delta shifted by whole turns into
// (-π, π]. This carry is the only state the tracker holds between
// samples.
type Unwrapper struct {
	prevRaw float64
	acc     float64
	seeded  bool
}

// Next folds one wrapped angle into the running unwrapped value.
func (w *Unwrapper) Next(raw float64) float64 {
	if !w.seeded {
		w.seeded = true
		w.prevRaw = raw
		w.acc = raw
		return raw
	}

	d := raw - w.prevRaw
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}

	w.acc += d
	w.prevRaw = raw
	return w.acc
}

// Reset clears the carry so the unwrapper can seed a new sequence.
func (w *Unwrapper) Reset() {
	*w = Unwrapper{}
}
