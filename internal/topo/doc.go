// Package topo provides the core primitives for manifold trajectory
// exploration.
//
// The package defines the shared types and interfaces of the pipeline:
//
//   - [State]: vector in intrinsic parameter space
//   - [Flow]: vector field driving motion in parameter space
//   - [Integrator], [AdaptiveIntegrator]: stepping schemes
//   - [Trajectory]: fixed-grid sampled solution
//
// It also owns the error taxonomy. All pipeline failures wrap one of the
// package sentinels, so callers can classify with errors.Is:
//
//	if errors.Is(err, topo.ErrDegenerateFrame) { ... }
//
// # Thread Safety
//
// Every type in this package is an immutable value after construction.
// Independent trajectory computations share no state and can run
// concurrently without coordination.
package topo
