// Package lago: configuration options and sentinel errors for the
// orientation initializer.
package lago

import (
	"errors"
	"math"

	"github.com/slamtools/lago/posegraph"
)

// Sentinel errors raised by the initializer itself. Collaborator errors
// (spantree, linsys) propagate unwrapped.
var (
	// ErrNilGraph indicates a nil *posegraph.Graph input.
	ErrNilGraph = errors.New("lago: graph is nil")

	// ErrInvalidNoise indicates a factor whose uncertainty cannot be reduced
	// to a scalar angular standard deviation (no angular component).
	ErrInvalidNoise = errors.New("lago: noise model lacks angular component")

	// ErrMissingGuess indicates the supplied initial guess has no pose for a
	// variable the solve produced an orientation for.
	ErrMissingGuess = errors.New("lago: initial guess missing a solved variable")

	// ErrBadAnchorSigma indicates a non-positive anchor sigma option.
	ErrBadAnchorSigma = errors.New("lago: anchor sigma must be positive")
)

// twoPi is one full turn; chord regularization counts whole multiples of it.
const twoPi = 2 * math.Pi

// DefaultAnchorSigma is the standard deviation of the gauge-fixing prior on
// the root orientation: variance 1e-8, tight enough to pin the global frame
// without making the normal equations ill-conditioned.
const DefaultAnchorSigma = 1e-4

// Options configures the initializer. Use DefaultOptions and the With*
// functional options.
type Options struct {
	// AnchorSigma is the standard deviation of the root-pinning prior.
	AnchorSigma float64

	// Root overrides the spanning-tree root. Zero value means automatic:
	// the anchor variable when the graph carries a prior, otherwise the
	// first key of the first relative factor.
	Root posegraph.Key

	// hasRoot distinguishes an explicit root of 0 from "unset".
	hasRoot bool
}

// Option mutates Options.
type Option func(*Options)

// WithAnchorSigma sets the standard deviation of the gauge-fixing prior.
func WithAnchorSigma(sigma float64) Option {
	return func(o *Options) { o.AnchorSigma = sigma }
}

// WithRoot forces the spanning tree to be rooted at k instead of the
// automatically chosen anchor.
func WithRoot(k posegraph.Key) Option {
	return func(o *Options) {
		o.Root = k
		o.hasRoot = true
	}
}

// DefaultOptions returns the standard configuration: automatic root and
// DefaultAnchorSigma.
func DefaultOptions() Options {
	return Options{AnchorSigma: DefaultAnchorSigma}
}

// angularSigma extracts the scalar angular standard deviation of a factor:
// component 2 for full-pose measurements (x, y, theta), component 0 for
// rotation-only ones. Factors whose model lacks that component fail with
// ErrInvalidNoise.
func angularSigma(f posegraph.Factor) (float64, error) {
	if f.Noise == nil {
		return 0, ErrInvalidNoise
	}
	component := 0
	if f.Kind == posegraph.KindBetweenPose || f.Kind == posegraph.KindPriorPose {
		component = 2
	}
	sigma, err := f.Noise.Sigma(component)
	if err != nil {
		return 0, ErrInvalidNoise
	}

	return sigma, nil
}
