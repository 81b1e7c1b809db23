// Package layout positions graph nodes with a force-directed simulation.
//
// # Model
//
// Every iteration runs three passes over the graph:
//
//  1. Repulsion: each unordered pair of nodes closer than RepulsionRadius
//     (and not coincident) is pushed apart with magnitude
//     RepulsionConstant / d². Pairs at d == 0 or d >= RepulsionRadius get
//     no force, which keeps the model short-range and free of the 1/d²
//     singularity.
//  2. Springs: each edge acts as a Hookean spring of natural length
//     RestLength and stiffness SpringConstant. Stretched springs pull the
//     endpoints together; compressed springs push them apart. The force is
//     not clamped.
//  3. Integration: each node moves by the net force accumulated this
//     iteration, is clamped back into the margin-inset canvas, and has its
//     accumulated force reset to zero.
//
// Velocity never carries over between iterations, so the integrator is
// overdamped: a node's "velocity" is just its displacement for the current
// step. There is no convergence test; [Run] always performs exactly
// Options.Iterations steps.
//
// # Determinism
//
// Run introduces no randomness. Given the same starting positions and the
// same edge list it produces the same final positions.
//
// # Usage
//
//	opts := layout.DefaultOptions()
//	opts.Iterations = 300
//	stats, err := layout.Run(ctx, g, opts)
//
// Vector arithmetic uses [gonum.org/v1/gonum/spatial/r2].
package layout
