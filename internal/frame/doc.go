// Package frame derives local orthonormal frames and orientation
// signatures from single trajectory samples.
//
// Parity is never tracked by comparing a frame against its predecessor.
// Consecutive-dot-product tracking is sensitive to sampling density near
// the twist locus: a coarse grid can miss or double-count flips. Each
// manifold instead supplies a closed-form indicator (manifold.Mapping's
// Parity method), a pure function of the intrinsic point, which makes
// the invariant sampling-rate-invariant and path-independent by
// construction.
//
// The one piece of carried state is the phase [Unwrapper], which turns
// wrapped atan2 samples into a branch-continuous angle.
package frame
