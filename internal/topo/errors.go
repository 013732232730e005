package topo

import (
	"errors"
	"fmt"
)

// Error taxonomy for the pipeline. Sample-level failures (ErrDomain,
// ErrDegenerateFrame) are not recovered locally; they propagate to an
// ErrExtraction that aborts the whole run, so a bundle is either complete
// or absent.
var (
	// ErrDomain indicates invalid or degenerate mapping input.
	ErrDomain = errors.New("topo: mapping input outside valid domain")

	// ErrDegenerateFrame indicates a tangent vector with near-zero norm.
	ErrDegenerateFrame = errors.New("topo: degenerate frame (tangent norm below threshold)")

	// ErrIntegration indicates the adaptive solver exhausted its budget.
	ErrIntegration = errors.New("topo: integration failed to converge within step budget")

	// ErrExtraction indicates signature extraction aborted.
	ErrExtraction = errors.New("topo: signature extraction failed")
)

// SampleError wraps a sample-level failure with its position in the run.
type SampleError struct {
	Manifold string
	Index    int
	Time     float64
	Wrapped  error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("%s sample %d (t=%.6f): %v", e.Manifold, e.Index, e.Time, e.Wrapped)
}

func (e *SampleError) Unwrap() error { return e.Wrapped }

// IntegrationError carries solver state at the point of failure.
type IntegrationError struct {
	Step    int
	Time    float64
	Dt      float64
	Wrapped error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("step %d (t=%.6f, dt=%.3g): %v", e.Step, e.Time, e.Dt, e.Wrapped)
}

func (e *IntegrationError) Unwrap() error { return e.Wrapped }
