package flow

import (
	"math"

	"github.com/macma/seamtrace/internal/topo"
)

// DriftMode names the transverse drift applied while the primary
// coordinate advances at unit rate.
type DriftMode string

const (
	DriftConstant   DriftMode = "constant"   // zero transverse drift
	DriftSinusoidal DriftMode = "sinusoidal" // dv/dt = A·sin(f·u)
	DriftCustom     DriftMode = "custom"     // caller-supplied dv/dt
)

// Drift is the intrinsic flow over a 2D parameter space: du/dt = 1
// always, so one loop of the manifold corresponds to a fixed 2π time
// interval, and dv/dt follows the configured drift mode.
type Drift struct {
	Mode      DriftMode
	Amplitude float64
	Frequency float64
	// Custom supplies dv/dt when Mode is DriftCustom.
	Custom func(t float64, x topo.State) float64
}

func NewDrift(mode DriftMode) *Drift {
	return &Drift{Mode: mode, Amplitude: 0.1, Frequency: 1.0}
}

func (d *Drift) Dim() int { return 2 }

func (d *Drift) Derive(t float64, x topo.State) topo.State {
	dv := 0.0
	switch d.Mode {
	case DriftSinusoidal:
		dv = d.Amplitude * math.Sin(d.Frequency*x[0])
	case DriftCustom:
		if d.Custom != nil {
			dv = d.Custom(t, x)
		}
	}
	return topo.State{1.0, dv}
}

func (d *Drift) GetParams() map[string]float64 {
	return map[string]float64{"amplitude": d.Amplitude, "frequency": d.Frequency}
}

func (d *Drift) SetParam(name string, value float64) {
	switch name {
	case "amplitude":
		d.Amplitude = value
	case "frequency":
		d.Frequency = value
	}
}
