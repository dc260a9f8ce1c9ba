// Package lago computes a globally consistent orientation initialization for
// planar pose graphs using LAGO (Linear Approximation for Graph
// Optimization), without any iterative nonlinear optimization.
//
// What & Why
//
//   - A planar pose graph links pose variables with noisy relative-rotation
//     measurements. Each measurement is only known modulo 2π, so naively
//     chaining measurements around loops leaves a whole-turn ambiguity that
//     traps nonlinear optimizers in poor local minima when started badly.
//
//   - LAGO resolves the ambiguity with linear algebra alone: propagate
//     unwrapped orientations along a spanning tree, use them to count the
//     whole turns implied by every off-tree measurement, then solve one
//     small weighted least-squares problem over all orientations. The result
//     is an initial guess good enough to make the subsequent nonlinear
//     refinement well behaved.
//
//     See: L. Carlone, R. Aragues, J.A. Castellanos, and B. Bona. A fast and
//     accurate approximation for planar pose graph optimization. IJRR, 2014.
//
// Pipeline
//
//  1. ExtractPoseGraph — keep relative pose/rotation factors, convert each
//     absolute prior into a relative factor from the synthetic anchor
//     variable, drop everything else.
//  2. spantree.Build — spanning tree rooted at the anchor (external
//     collaborator, consumed as a parent-pointer map).
//  3. Partition — split factors into tree edges and chords; record the
//     signed per-edge orientation delta, oriented parent→child.
//  4. OrientationsToRoot — accumulate unwrapped orientations up the tree
//     with memoization; the root is 0 and no value is range-reduced.
//  5. RegularizeChord — subtract the whole turns each chord's cycle implies,
//     expressing the chord in the same unwrapped frame as the tree.
//  6. BuildOrientationSystem — one scalar difference equation per tree edge
//     and per regularized chord, plus a near-exact prior pinning the root.
//  7. linsys.Solve — weighted least squares (external collaborator).
//  8. Merge — replace only the heading of the caller's pose estimates.
//
// Entry points: InitializeOrientations returns the raw per-variable
// orientation map; Initialize additionally merges into a caller-supplied
// initial guess, leaving translations untouched.
//
// Error Conditions
//
//	– ErrNilGraph              : nil input graph.
//	– ErrInvalidNoise          : a factor's uncertainty has no angular
//	                             component to reduce to a scalar sigma.
//	– ErrMissingGuess          : the initial guess lacks a pose for a solved
//	                             variable.
//	– ErrBadAnchorSigma        : a non-positive anchor sigma option.
//	– spantree.ErrDisconnected : the filtered graph is a forest; LAGO
//	                             requires a connected graph and does not
//	                             anchor per component.
//	– linsys.ErrSingular       : the assembled system is rank deficient.
//
// The pipeline is pure: it builds derived maps per call, mutates nothing,
// and independent calls may run concurrently.
package lago
