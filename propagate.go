// Package lago: orientation propagation over the spanning tree, stage 4.
package lago

import (
	"sort"

	"github.com/slamtools/lago/posegraph"
	"github.com/slamtools/lago/spantree"
)

// OrientationsToRoot accumulates, for every variable with a tree-edge delta,
// the cumulative rotation relative to the tree root. The root itself maps to
// 0. Values are unwrapped on purpose: no modulo reduction is applied, so the
// map preserves how many whole turns each tree path traverses, which is the
// reference frame chord regularization needs.
//
// The walk is an explicit loop with a memo map rather than recursion, so
// stack depth is independent of tree height. Each upward walk stops at the
// root or at the first variable already resolved, and every queried variable
// is memoized before the next one is processed; amortized the whole pass is
// O(V).
//
// Variables are processed in ascending key order, which makes the memo fill
// pattern (though not the resulting values) deterministic.
func OrientationsToRoot(deltaTheta map[posegraph.Key]float64, tree spantree.Tree) map[posegraph.Key]float64 {
	keys := make([]posegraph.Key, 0, len(deltaTheta))
	for k := range deltaTheta {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	orientations := make(map[posegraph.Key]float64, len(deltaTheta)+1)
	if root, ok := tree.Root(); ok {
		orientations[root] = 0
	}

	for _, k := range keys {
		if _, done := orientations[k]; done {
			continue
		}
		orientations[k] = orientationToRoot(k, tree, deltaTheta, orientations)
	}

	return orientations
}

// orientationToRoot walks parent pointers upward from node, summing signed
// tree-edge deltas until it reaches the root or a memoized ancestor.
func orientationToRoot(node posegraph.Key, tree spantree.Tree,
	deltaTheta map[posegraph.Key]float64, memo map[posegraph.Key]float64) float64 {
	total := 0.0
	child := node
	for {
		parent, ok := tree.Parent(child)
		if !ok || parent == child {
			// Reached the root (or the tree boundary): the sum is complete.
			break
		}
		total += deltaTheta[child]
		if cached, hit := memo[parent]; hit {
			// The rest of the path is already resolved.
			total += cached
			break
		}
		child = parent
	}

	return total
}
