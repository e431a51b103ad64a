// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount/NodeCount/Snapshot.
// Determinism:
//   - Edges() returns edges in insertion order; removal keeps the relative order of the rest.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge appends the edge (u, v, weight) to the ordered edge sequence and
// raises the node count to max(nodeCount, u+1, v+1).
//
// Steps:
//  1. Validate ids: negative ⇒ ErrInvalidNode; ≥ maxNodes ⇒ ErrCapacityExceeded.
//  2. Lock mu, check edge capacity ⇒ ErrCapacityExceeded.
//  3. Append and update nodeCount.
//
// Parallel edges and self-loops are stored like any other edge.
// A failed call leaves the graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	// 1) Input validation
	if u < 0 || v < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidNode)
	}
	if u >= g.maxNodes || v >= g.maxNodes {
		return fmt.Errorf("AddEdge(%d,%d): node id beyond limit %d: %w", u, v, g.maxNodes-1, ErrCapacityExceeded)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.edges) >= g.maxEdges {
		return fmt.Errorf("AddEdge(%d,%d): edge limit %d reached: %w", u, v, g.maxEdges, ErrCapacityExceeded)
	}
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	// 3) Node count only grows
	if u >= g.nodeCount {
		g.nodeCount = u + 1
	}
	if v >= g.nodeCount {
		g.nodeCount = v + 1
	}

	return nil
}

// RemoveEdge deletes the first edge whose endpoints equal (u, v) in that exact
// order. An edge inserted as (v, u) does not match.
//
// The relative order of the remaining edges is preserved and the node count
// is left untouched, even when the removed edge was the only one reaching the
// highest vertex.
//
// Returns ErrEdgeNotFound if no edge matches.
// Complexity: O(E).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexOf(u, v)
	if i < 0 {
		return ErrEdgeNotFound
	}
	// Shift the tail left by one; copy keeps order.
	copy(g.edges[i:], g.edges[i+1:])
	g.edges[len(g.edges)-1] = Edge{}
	g.edges = g.edges[:len(g.edges)-1]

	return nil
}

// HasEdge reports whether an edge with endpoints exactly (u, v) exists.
// It applies the same ordered matching as RemoveEdge.
// Complexity: O(E).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexOf(u, v) >= 0
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NodeCount returns one plus the largest endpoint ever inserted,
// or 0 for a graph that never held an edge.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Snapshot returns a copy of the edges together with the node count, both
// read under the same lock so they describe one consistent state.
// Complexity: O(E).
func (g *Graph) Snapshot() ([]Edge, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out, g.nodeCount
}

// indexOf returns the position of the first (u, v) edge, or -1.
// Caller must hold mu.
func (g *Graph) indexOf(u, v int) int {
	for i := range g.edges {
		if g.edges[i].From == u && g.edges[i].To == v {
			return i
		}
	}

	return -1
}
