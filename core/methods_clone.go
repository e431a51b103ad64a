// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.
//   - Clear takes the write lock.

package core

// Clone returns a deep copy of the Graph: limits, edges in the same order,
// and the node count (including vertices no longer referenced by any edge).
//
// Complexity: O(E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithMaxEdges(g.maxEdges), WithMaxNodes(g.maxNodes))
	clone.edges = make([]Edge, len(g.edges), cap(g.edges))
	copy(clone.edges, g.edges)
	clone.nodeCount = g.nodeCount

	return clone
}

// Clear drops every edge and resets the node count to zero.
// Limits are preserved.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = nil
	g.nodeCount = 0
}
