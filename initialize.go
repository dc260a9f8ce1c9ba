// Package lago: pipeline entry points for orientation solve and merge.
package lago

import (
	"fmt"

	"github.com/slamtools/lago/linsys"
	"github.com/slamtools/lago/posegraph"
	"github.com/slamtools/lago/spantree"
)

// InitializeOrientations runs the full LAGO pipeline on graph and returns
// one scalar orientation per variable, including the synthetic anchor (whose
// value is pinned to 0). Collaborator failures (a disconnected graph from
// spantree, a singular system from linsys) propagate unwrapped.
func InitializeOrientations(graph *posegraph.Graph, opts ...Option) (map[posegraph.Key]float64, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.AnchorSigma <= 0 {
		return nil, ErrBadAnchorSigma
	}

	// 1. Keep only planar relative constraints; priors become anchored
	// between factors.
	poseGraph, err := ExtractPoseGraph(graph)
	if err != nil {
		return nil, err
	}

	// 2. Spanning tree rooted at the anchor when one exists.
	root, err := chooseRoot(poseGraph, options)
	if err != nil {
		return nil, err
	}
	tree, err := spantree.Build(poseGraph, root)
	if err != nil {
		return nil, err
	}

	// 3–4. Partition into tree edges and chords; propagate unwrapped
	// orientations up the tree.
	treeIDs, chordIDs, deltaTheta := Partition(poseGraph, tree)
	orientations := OrientationsToRoot(deltaTheta, tree)

	// 5–6. Regularize chords and assemble the scalar system.
	sys, err := BuildOrientationSystem(poseGraph, tree, treeIDs, chordIDs, orientations, options.AnchorSigma)
	if err != nil {
		return nil, err
	}

	// 7. Weighted least squares.
	return linsys.Solve(sys)
}

// Initialize runs InitializeOrientations and merges the solved orientations
// into guess: for every solved non-anchor variable the heading of the
// supplied pose is replaced, translations stay exactly as given. The anchor
// never appears in the result. A solved variable without a pose in guess is
// ErrMissingGuess.
func Initialize(graph *posegraph.Graph, guess posegraph.Values, opts ...Option) (posegraph.Values, error) {
	orientations, err := InitializeOrientations(graph, opts...)
	if err != nil {
		return nil, err
	}

	merged := make(posegraph.Values, len(orientations))
	for k, theta := range orientations {
		if k.Reserved() {
			continue // the anchor is internal to the pipeline
		}
		pose, ok := guess[k]
		if !ok {
			return nil, fmt.Errorf("no pose for variable %d: %w", uint64(k), ErrMissingGuess)
		}
		merged[k] = posegraph.NewPose2(pose.X, pose.Y, theta)
	}

	return merged, nil
}

// chooseRoot picks the spanning-tree root: an explicit option wins, then the
// anchor when the filtered graph carries one, then the first key of the
// first relative factor (deterministic fallback for priorless graphs).
func chooseRoot(poseGraph *posegraph.Graph, options Options) (posegraph.Key, error) {
	if options.hasRoot {
		return options.Root, nil
	}
	if hasAnchor(poseGraph) {
		return posegraph.AnchorKey, nil
	}
	for _, f := range poseGraph.Factors() {
		if f.Binary() {
			return f.Keys[0], nil
		}
	}

	return 0, spantree.ErrNoEdges
}
