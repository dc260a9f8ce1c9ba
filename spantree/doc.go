// Package spantree builds a rooted spanning tree over the variables of a
// pose graph, returning parent pointers: the tree shape the orientation
// initializer consumes.
//
// What & Why
//
//   - Each two-variable factor of a *posegraph.Graph induces one undirected
//     edge between its keys. Build grows a tree from a chosen root across
//     those edges until every key touched by a binary factor is covered.
//
//   - The initializer walks this tree child→parent to accumulate unwrapped
//     orientations, so the contract is a parent-pointer map: tree[v] is the
//     parent of v, and the root is its own parent (the self-loop marks
//     termination of every upward walk).
//
// Determinism
//
//   - Edges are ingested in factor order and the frontier is expanded
//     first-in-first-out, so the same graph and root always produce the same
//     parent map. Measurement weights are deliberately ignored: any spanning
//     tree is valid for orientation propagation, and an unweighted
//     breadth-first growth keeps tree paths short, which keeps accumulated
//     angular error along chord cycles small.
//
// Error Conditions
//
//	– ErrNilGraph     : graph is nil.
//	– ErrNoEdges      : the graph has no two-variable factors at all.
//	– ErrRootNotFound : the root key is not touched by any binary factor.
//	– ErrDisconnected : some key with a binary factor is unreachable from
//	                    the root. The initializer treats this as fatal; it
//	                    does not anchor per component.
//
// Complexity: O(V + E) time and memory over the induced adjacency.
package spantree
