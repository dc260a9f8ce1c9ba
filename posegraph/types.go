// Package posegraph: central types and sentinel errors.
// This file declares Key, FactorKind, Factor, and the package error set.
package posegraph

import "errors"

// Sentinel errors for pose-graph construction.
var (
	// ErrReservedKey indicates a caller factor references the reserved
	// (anchor) key space. Caller keys must keep the top bit clear.
	ErrReservedKey = errors.New("posegraph: key lies in reserved anchor space")

	// ErrSelfEdge indicates a between factor was added with both endpoints
	// equal. A relative measurement needs two distinct variables.
	ErrSelfEdge = errors.New("posegraph: between factor endpoints are equal")

	// ErrNilNoise indicates a factor was added without a noise model.
	ErrNilNoise = errors.New("posegraph: nil noise model")

	// ErrBadSigma indicates a noise model was built with a sigma <= 0.
	ErrBadSigma = errors.New("posegraph: sigma must be positive")

	// ErrComponentRange indicates a sigma component index outside [0, Dim).
	ErrComponentRange = errors.New("posegraph: sigma component out of range")
)

// Key uniquely identifies a pose or orientation variable.
//
// The top bit of the key space is reserved for synthetic variables created by
// the pipeline itself; see AnchorKey.
type Key uint64

// anchorBit marks the reserved synthetic-key space.
const anchorBit Key = 1 << 63

// AnchorKey is the synthetic reference variable used to pin the global
// rotation frame to zero. It never appears in caller graphs: the constraint
// filter inserts it when converting priors, and the merge stage strips it
// from every result.
const AnchorKey Key = anchorBit

// Reserved reports whether k lies in the reserved synthetic-key space.
func (k Key) Reserved() bool { return k&anchorBit != 0 }

// FactorKind enumerates the closed set of measurement kinds the model
// represents. Unrecognized inputs map to KindUnsupported and are dropped by
// the constraint filter, never dispatched on.
type FactorKind uint8

const (
	// KindUnsupported tags a factor the initializer cannot interpret.
	KindUnsupported FactorKind = iota

	// KindBetweenPose is a relative full-pose measurement between two keys.
	KindBetweenPose

	// KindBetweenRot is a relative rotation-only measurement between two keys.
	KindBetweenRot

	// KindPriorPose is an absolute full-pose measurement on one key.
	KindPriorPose

	// KindPriorRot is an absolute rotation-only measurement on one key.
	KindPriorRot
)

// String returns a short human-readable kind name, for logs and test output.
func (k FactorKind) String() string {
	switch k {
	case KindBetweenPose:
		return "between-pose"
	case KindBetweenRot:
		return "between-rot"
	case KindPriorPose:
		return "prior-pose"
	case KindPriorRot:
		return "prior-rot"
	default:
		return "unsupported"
	}
}

// Factor is one measurement constraint in the graph.
//
// For between kinds Keys holds exactly two entries (measurement expressed in
// the first key's frame, pointing at the second). For prior kinds Keys holds
// one entry. For rotation-only kinds, only Meas.Theta is meaningful.
type Factor struct {
	// Kind selects the measurement interpretation.
	Kind FactorKind

	// Keys lists the variables this factor constrains, in measurement order.
	Keys []Key

	// Meas is the measured value. X/Y are ignored for rotation-only kinds.
	Meas Pose2

	// Noise is the diagonal uncertainty of the measurement.
	Noise *Diagonal
}

// Binary reports whether the factor constrains exactly two variables.
func (f Factor) Binary() bool { return len(f.Keys) == 2 }
