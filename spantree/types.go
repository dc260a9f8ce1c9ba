// Package spantree: the parent-pointer tree type and sentinel errors.
package spantree

import (
	"errors"

	"github.com/slamtools/lago/posegraph"
)

// Sentinel errors returned by Build.
var (
	// ErrNilGraph indicates a nil *posegraph.Graph was passed to Build.
	ErrNilGraph = errors.New("spantree: graph is nil")

	// ErrNoEdges indicates the graph contains no two-variable factors, so
	// there is nothing to span.
	ErrNoEdges = errors.New("spantree: graph has no binary factors")

	// ErrRootNotFound indicates the requested root is not touched by any
	// two-variable factor in the graph.
	ErrRootNotFound = errors.New("spantree: root not present in graph")

	// ErrDisconnected indicates at least one variable with a binary factor
	// is unreachable from the root, so no single spanning tree covers the
	// graph.
	ErrDisconnected = errors.New("spantree: graph is disconnected")
)

// Tree maps every covered variable to its parent. The root maps to itself.
type Tree map[posegraph.Key]posegraph.Key

// Parent returns the parent of k and whether k is covered by the tree.
func (t Tree) Parent(k posegraph.Key) (posegraph.Key, bool) {
	p, ok := t[k]

	return p, ok
}

// Root returns the unique self-parented key. The bool is false for an empty
// or malformed tree.
func (t Tree) Root() (posegraph.Key, bool) {
	for k, p := range t {
		if k == p {
			return k, true
		}
	}

	return 0, false
}
