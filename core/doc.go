// Package core provides a thread-safe, in-memory edge store for weighted,
// undirected graphs whose vertices are small non-negative integers.
//
// The Graph keeps two pieces of state:
//
//   - an ordered edge sequence: insertion order is preserved and is the
//     tie-breaker for every algorithm that sorts edges by weight;
//   - a node count: one plus the largest endpoint ever inserted.
//
// The node count only grows. Removing the last edge that touches the highest
// vertex leaves that vertex in place as an isolated node, so an MST query
// afterwards reports a disconnected graph.
//
// Configuration Options (GraphOption):
//
//	– WithMaxEdges(n)
//	    Upper bound on stored edges (default 1000).
//	    AddEdge beyond it → ErrCapacityExceeded.
//
//	– WithMaxNodes(n)
//	    Vertex ids must lie in [0, n) (default 100).
//	    AddEdge with a larger endpoint → ErrCapacityExceeded.
//
// Core Methods:
//
//	AddEdge(u, v int, weight int64) error  // O(1) amortized
//	RemoveEdge(u, v int) error             // O(E), first ordered (u,v) match
//	HasEdge(u, v int) bool                 // O(E), same matching rule
//	Edges() []Edge                         // O(E) copy, insertion order
//	EdgeCount() int                        // O(1)
//	NodeCount() int                        // O(1)
//	Snapshot() ([]Edge, int)               // edges + node count under one lock
//	Clone() *Graph                         // O(E)
//	Stats() *GraphStats                    // O(E)
//
// Matching on removal is ordered: an edge inserted as (v,u) is not found by
// RemoveEdge(u,v). Parallel edges and self-loops are accepted.
//
// Errors:
//
//	ErrCapacityExceeded - edge or vertex capacity would be exceeded.
//	ErrInvalidNode      - negative vertex id.
//	ErrEdgeNotFound     - no edge matches the ordered (u,v) pair.
//
// Concurrency: a single sync.RWMutex guards edges and node count. Mutations
// take the write lock; queries and snapshots take the read lock.
package core
