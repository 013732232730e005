// Package manifold provides the ambient embeddings explored by the
// pipeline.
//
// Each variant implements the [Mapping] contract, returning the ambient
// position together with the analytic partial derivatives ru = ∂r/∂u and
// rv = ∂r/∂v:
//
//   - [Mobius]: half-twist strip, the canonical non-orientable case
//   - [Cylinder]: orientable control case with constant rv
//   - [Klein]: figure-eight immersion of the Klein bottle, two charts
//
// Variants are selected by explicit tag (see the registry in the CLI),
// not by a type hierarchy. The 3D flows (Hopf, DNA vortex) need no
// mapping at all: they already live in ambient space, and their frames
// are built from the flow velocity (see the frame package).
package manifold
