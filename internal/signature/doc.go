// Package signature orchestrates the frame tracker across whole
// trajectories and assembles manifold-specific signature bundles.
//
// Three bundle variants exist:
//
//   - [Extract]: 2D-intrinsic surfaces (Möbius, cylinder)
//   - [Extract3D]: ambient-native flows (Hopf, DNA vortex), adds the
//     running helicity integral
//   - [ExtractKlein]: two-chart immersion, adds chart-transition events
//
// All sequences in a bundle have the trajectory's sample count; a
// failing sample aborts the run rather than shortening the output.
// [Batch] fans independent extractions out across goroutines.
package signature
