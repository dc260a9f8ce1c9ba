// Package spantree: breadth-first spanning-tree construction.
package spantree

import "github.com/slamtools/lago/posegraph"

// Build grows a spanning tree rooted at root over the undirected adjacency
// induced by the two-variable factors of graph.
//
// Steps:
//  1. Validate: graph non-nil, at least one binary factor, root adjacent to
//     at least one binary factor.
//  2. Ingest adjacency in factor order (each binary factor contributes one
//     undirected edge; parallel factors contribute parallel entries, which
//     are harmless, the first visit wins).
//  3. Expand breadth-first from root, recording tree[child] = parent on the
//     first visit of each child. FIFO expansion plus factor-order adjacency
//     makes the result deterministic.
//  4. If any key with a binary factor was never reached, the graph is
//     disconnected: fail, no partial tree is returned.
//
// The returned Tree maps every covered key to its parent, root to itself.
//
// Complexity: O(V + E) time, O(V + E) memory.
func Build(graph *posegraph.Graph, root posegraph.Key) (Tree, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrNilGraph
	}

	// 2. Induced adjacency, in factor order.
	adjacency := make(map[posegraph.Key][]posegraph.Key)
	edges := 0
	for _, f := range graph.Factors() {
		if !f.Binary() {
			continue
		}
		a, b := f.Keys[0], f.Keys[1]
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
		edges++
	}
	if edges == 0 {
		return nil, ErrNoEdges
	}
	if _, ok := adjacency[root]; !ok {
		return nil, ErrRootNotFound
	}

	// 3. FIFO expansion from the root.
	tree := make(Tree, len(adjacency))
	tree[root] = root // self-loop marks the root
	queue := []posegraph.Key{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adjacency[v] {
			if _, visited := tree[w]; visited {
				continue // already attached; this edge is a chord
			}
			tree[w] = v
			queue = append(queue, w)
		}
	}

	// 4. Coverage check: the tree must span every key seen in step 2.
	if len(tree) != len(adjacency) {
		return nil, ErrDisconnected
	}

	return tree, nil
}
