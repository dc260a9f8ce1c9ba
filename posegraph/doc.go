// Package posegraph defines the factor-graph data model consumed by the
// orientation initializer: variable keys, planar poses, diagonal noise
// models, measurement factors, and the ordered factor container.
//
// What & Why
//
//   - A pose graph is a set of planar pose (or orientation-only) variables
//     linked by noisy measurements. Relative measurements ("between" factors)
//     constrain the motion from one variable's frame to another's; absolute
//     measurements ("prior" factors) pin a single variable in the world frame.
//
//   - The initializer in package lago consumes this model and produces a
//     globally consistent orientation estimate per variable. posegraph itself
//     performs no estimation: it is a deterministic, append-only container.
//
// Data model
//
//   - Key       — opaque uint64 variable identifier. The top bit is reserved:
//     AnchorKey marks the synthetic reference variable used internally to pin
//     the global rotation frame. Caller-supplied keys must not use the
//     reserved space (except AnchorKey itself, which the pipeline inserts).
//   - Pose2     — planar rigid pose (x, y, theta) with Compose / Inverse /
//     Between. Between normalizes the resulting angle to (-π, π], matching
//     what a sensor can actually observe.
//   - Diagonal  — per-component standard deviations. Non-diagonal uncertainty
//     is unrepresentable by construction; downstream stages that need a
//     scalar angular sigma read a single component.
//   - Factor    — a tagged variant over a closed set of kinds
//     (KindBetweenPose, KindBetweenRot, KindPriorPose, KindPriorRot,
//     KindUnsupported). Dispatch on Kind, never on dynamic types.
//   - Graph     — ordered factor list. Factor order is insertion order and is
//     load-bearing: downstream partitioning is stable with respect to it.
//   - Values    — initial-guess map from Key to Pose2.
//
// Errors (sentinel):
//
//	– ErrReservedKey — a caller factor references the reserved key space.
//	– ErrSelfEdge    — a between factor links a variable to itself.
//	– ErrNilNoise    — a factor was added without a noise model.
//	– ErrBadSigma    — a noise model was built with a non-positive sigma.
//	– ErrComponentRange — a sigma component index is out of range.
//
// Determinism: Keys() returns sorted keys, Factors() preserves insertion
// order, and Values.Keys() returns sorted keys, so every traversal over the
// model is repeatable.
//
// Concurrency: a Graph is safe for concurrent reads after construction;
// construction itself is single-goroutine (append-only builder, no locks).
package posegraph
