// Package lago: chord regularization and linear-system assembly, stages 5
// and 6 of the pipeline.
package lago

import (
	"math"

	"github.com/slamtools/lago/linsys"
	"github.com/slamtools/lago/posegraph"
	"github.com/slamtools/lago/spantree"
)

// RegularizeChord removes the whole-turn ambiguity from a chord measurement.
// theta is the measured rotation from a to b; orientA and orientB are the
// endpoints' unwrapped orientations to the root.
//
// raw = theta + orientA − orientB is the total rotation around the cycle the
// chord closes with its tree path; the number of whole turns in it is
// k = round(raw / 2π), ties rounding away from zero (math.Round, matching
// C round()). The regularized measurement theta − 2πk lives in the same
// unwrapped frame as the tree-propagated orientations.
func RegularizeChord(theta, orientA, orientB float64) float64 {
	raw := theta + orientA - orientB
	k := math.Round(raw / twoPi)

	return theta - twoPi*k
}

// BuildOrientationSystem assembles the scalar least-squares system over one
// orientation unknown per variable:
//
//   - one difference equation per tree-edge factor, right-hand side the raw
//     measured delta;
//   - one per chord factor, right-hand side the regularized delta;
//   - finally a single anchor equation pinning the tree root to 0 with
//     standard deviation anchorSigma, which removes the global-rotation null
//     space.
//
// Equation order is treeIDs then chordIDs (as produced by Partition), anchor
// last. Every equation is weighted by its factor's angular standard
// deviation; a factor whose noise model lacks the angular component fails
// with ErrInvalidNoise.
func BuildOrientationSystem(graph *posegraph.Graph, tree spantree.Tree,
	treeIDs, chordIDs []int, orientations map[posegraph.Key]float64,
	anchorSigma float64) (*linsys.System, error) {
	if anchorSigma <= 0 {
		return nil, ErrBadAnchorSigma
	}
	factors := graph.Factors()
	sys := &linsys.System{}

	// Tree edges keep their raw measurements: the propagated frame was built
	// from them, so they are self-consistent by construction.
	for _, id := range treeIDs {
		f := factors[id]
		sigma, err := angularSigma(f)
		if err != nil {
			return nil, err
		}
		if err = sys.Append(linsys.Between(f.Keys[0], f.Keys[1], f.Meas.Theta, sigma)); err != nil {
			return nil, err
		}
	}

	// Chords are re-expressed in the unwrapped frame before entering the
	// system.
	for _, id := range chordIDs {
		f := factors[id]
		sigma, err := angularSigma(f)
		if err != nil {
			return nil, err
		}
		a, b := f.Keys[0], f.Keys[1]
		regularized := RegularizeChord(f.Meas.Theta, orientations[a], orientations[b])
		if err = sys.Append(linsys.Between(a, b, regularized, sigma)); err != nil {
			return nil, err
		}
	}

	// Gauge fix: exactly one near-exact prior on the root orientation.
	root, ok := tree.Root()
	if !ok {
		return nil, spantree.ErrRootNotFound
	}
	if err := sys.Append(linsys.Anchor(root, 0, anchorSigma)); err != nil {
		return nil, err
	}

	return sys, nil
}
