// Package lago: tree-edge / chord partition, stage 3 of the pipeline.
package lago

import (
	"github.com/slamtools/lago/posegraph"
	"github.com/slamtools/lago/spantree"
)

// Partition classifies every two-variable factor of graph against tree:
// a factor whose endpoints are directly linked parent/child is a tree edge,
// everything else is a chord. It also records the signed relative
// orientation of each tree edge, oriented parent→child:
//
//   - factor (a, b) with tree[a] == b: deltaTheta[a] = −θ_ab (the edge is
//     traversed against the measurement direction);
//   - factor (a, b) with tree[b] == a: deltaTheta[b] = +θ_ab.
//
// When parallel factors link the same parent/child pair, all of them are
// classified as tree edges but only the first records the delta; the later
// equations still constrain the pair, the propagation just follows one
// measurement.
//
// Returned slices hold factor indices into graph.Factors(), in factor order
// (stable for determinism). Unary and unsupported factors are skipped.
func Partition(graph *posegraph.Graph, tree spantree.Tree) (treeIDs, chordIDs []int, deltaTheta map[posegraph.Key]float64) {
	deltaTheta = make(map[posegraph.Key]float64)
	for id, f := range graph.Factors() {
		if !f.Binary() {
			continue
		}
		a, b := f.Keys[0], f.Keys[1]
		theta := f.Meas.Theta

		inTree := false
		if p, ok := tree.Parent(a); ok && p == b {
			if _, dup := deltaTheta[a]; !dup {
				deltaTheta[a] = -theta
			}
			inTree = true
		} else if p, ok := tree.Parent(b); ok && p == a {
			if _, dup := deltaTheta[b]; !dup {
				deltaTheta[b] = theta
			}
			inTree = true
		}

		if inTree {
			treeIDs = append(treeIDs, id)
		} else {
			chordIDs = append(chordIDs, id)
		}
	}

	return treeIDs, chordIDs, deltaTheta
}
