// Package linsys assembles and solves the sparse scalar weighted
// least-squares systems produced by the orientation initializer.
//
// What & Why
//
//   - Every measurement the initializer keeps reduces to one scalar
//     equation: a difference of two unknowns (coefficients −1 and +1) equal
//     to a measured angle, or a single anchored unknown pinned to a
//     constant. Each equation carries the standard deviation of its
//     measurement, and the solve minimizes the weighted sum of squared
//     residuals.
//
//   - Equations stay sparse and ordered in the System container; density is
//     introduced only inside Solve, where the normal equations GᵀWG x = GᵀWr
//     are formed and solved with gonum. For pose-graph-sized systems (two
//     non-zeros per row) this is the standard estimation-pipeline shape.
//
// Determinism: unknowns are indexed in ascending key order and equations are
// kept in append order, so a fixed System always produces the same solution
// vector.
//
// Error Conditions
//
//	– ErrBadEquation : an equation has no terms, more than two, a zero
//	                   coefficient, or a non-positive sigma.
//	– ErrEmptySystem : Solve was called with no equations.
//	– ErrSingular    : the normal equations are rank deficient (typically an
//	                   unanchored or internally disconnected system).
//
// Complexity: Solve is O(m·n²) to accumulate the normal equations densely
// plus O(n³) for the factorization, n = unknowns, m = equations.
package linsys
