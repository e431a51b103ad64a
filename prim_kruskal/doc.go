// Package prim_kruskal computes minimum spanning trees over a *core.Graph with
// Kruskal's algorithm, and offers Prim's algorithm as an independent second
// opinion.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects every vertex in V with no cycle and whose total weight is minimal.
//
//   - Every query recomputes. The graph is mutable (core.Graph.AddEdge/RemoveEdge) and
//     nothing is cached between calls: each Kruskal call snapshots the current edges,
//     builds a fresh dsu.Forest and discards it on return.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort the edges by weight, then accept each edge whose endpoints sit in
//     different sets of a disjoint-set forest, merging the sets. Stop at |V|−1 edges.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: the edge snapshot is in insertion order and the sort is stable, so among
//     equal weights the earlier-inserted edge wins. Repeated calls on an unchanged graph
//     return identical slices.
//
//   - Prim(g *core.Graph, root int) ([]core.Edge, int64, error)
//
//   - Strategy: grow a single tree from root with a min-heap of frontier edges.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Use-Case: cross-checking Kruskal's total weight; edge choice under ties may differ.
//
//   - Components(g *core.Graph) [][]int
//
//   - The connected components of the current graph, useful to explain ErrDisconnected.
//
// Vertex set
//
//	|V| is g.NodeCount(): every id in [0, NodeCount()) is a vertex, including ids whose
//	last edge was removed. Such a vertex is isolated and makes the graph disconnected.
//
// Error Conditions
//
//	- ErrInvalidGraph      – graph is nil.
//	- ErrDisconnected      – |V| == 0, or |V| > 1 and no spanning tree covers every vertex.
//	- ErrVertexOutOfRange  – Prim only: root outside [0, |V|).
//	- ErrUnknownMethod     – Compute only: unsupported MSTOptions.Method.
//
// ErrDisconnected is a normal outcome, never folded into a zero or negative weight:
// on error the returned edge slice is nil and the weight is 0.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
