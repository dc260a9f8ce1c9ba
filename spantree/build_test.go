package spantree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slamtools/lago/posegraph"
	"github.com/slamtools/lago/spantree"
)

// chain builds 0—1—2—3 with unit-sigma rotation factors.
func chain(t *testing.T) *posegraph.Graph {
	t.Helper()
	model, err := posegraph.Isotropic(1, 0.1)
	require.NoError(t, err)

	g := posegraph.NewGraph()
	require.NoError(t, g.AddBetweenRot(0, 1, 0.1, model))
	require.NoError(t, g.AddBetweenRot(1, 2, 0.1, model))
	require.NoError(t, g.AddBetweenRot(2, 3, 0.1, model))

	return g
}

// TestBuild_Validation covers the nil, empty, and missing-root error paths.
func TestBuild_Validation(t *testing.T) {
	_, err := spantree.Build(nil, 0)
	assert.ErrorIs(t, err, spantree.ErrNilGraph)

	// A graph of only unary factors has nothing to span.
	model, err := posegraph.Isotropic(1, 0.1)
	require.NoError(t, err)
	g := posegraph.NewGraph()
	require.NoError(t, g.AddPriorRot(0, 0, model))
	_, err = spantree.Build(g, 0)
	assert.ErrorIs(t, err, spantree.ErrNoEdges)

	// A root that no binary factor touches cannot seed the tree.
	_, err = spantree.Build(chain(t), 42)
	assert.ErrorIs(t, err, spantree.ErrRootNotFound)
}

// TestBuild_Chain verifies parent pointers along a simple path graph.
func TestBuild_Chain(t *testing.T) {
	tree, err := spantree.Build(chain(t), 0)
	require.NoError(t, err)

	assert.Equal(t, spantree.Tree{0: 0, 1: 0, 2: 1, 3: 2}, tree)

	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, posegraph.Key(0), root)

	p, ok := tree.Parent(3)
	require.True(t, ok)
	assert.Equal(t, posegraph.Key(2), p)
	_, ok = tree.Parent(42)
	assert.False(t, ok)
}

// TestBuild_CycleDropsOneEdge verifies that on a 4-cycle exactly one edge is
// left out of the tree and the rest form parent pointers toward the root.
func TestBuild_CycleDropsOneEdge(t *testing.T) {
	model, err := posegraph.Isotropic(1, 0.1)
	require.NoError(t, err)
	g := posegraph.NewGraph()
	require.NoError(t, g.AddBetweenRot(0, 1, 0.1, model))
	require.NoError(t, g.AddBetweenRot(1, 2, 0.1, model))
	require.NoError(t, g.AddBetweenRot(2, 3, 0.1, model))
	require.NoError(t, g.AddBetweenRot(3, 0, 0.1, model))

	tree, err := spantree.Build(g, 0)
	require.NoError(t, err)

	// Breadth-first from 0: both neighbors attach to 0, then 2 attaches to
	// the earlier-ingested neighbor 1. Edge 2—3 becomes the chord.
	assert.Equal(t, spantree.Tree{0: 0, 1: 0, 3: 0, 2: 1}, tree)
}

// TestBuild_Disconnected verifies the hard failure on a forest.
func TestBuild_Disconnected(t *testing.T) {
	model, err := posegraph.Isotropic(1, 0.1)
	require.NoError(t, err)
	g := posegraph.NewGraph()
	require.NoError(t, g.AddBetweenRot(0, 1, 0.1, model))
	require.NoError(t, g.AddBetweenRot(5, 6, 0.1, model)) // separate island

	_, err = spantree.Build(g, 0)
	assert.ErrorIs(t, err, spantree.ErrDisconnected)
}

// TestBuild_Deterministic verifies repeated builds agree exactly.
func TestBuild_Deterministic(t *testing.T) {
	g := chain(t)
	first, err := spantree.Build(g, 1)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := spantree.Build(g, 1)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
