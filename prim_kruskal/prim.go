// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dynmst/core"
)

// Prim computes the Minimum Spanning Tree (MST) of the graph's current edge set
// by growing outwards from root using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph     : graph is nil.
//   - ErrDisconnected     : NodeCount() == 0, or some vertex is unreachable from root.
//   - ErrVertexOutOfRange : root is outside [0, NodeCount()).
//
// Steps:
//  1. Snapshot edges and node count; build an adjacency list (self-loops skipped).
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest frontier edge; skip it if its far end is visited, else select it
//     and push the new vertex's edges. Repeat until |V|-1 edges are selected.
//  4. Fewer than |V|-1 edges → ErrDisconnected.
//
// Ties are broken by insertion order, so the result is deterministic, though the
// selected edges may differ from Kruskal's when weights tie. Total weight always agrees.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, int64, error) {
	// 1. Validate and snapshot.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	edges, n := graph.Snapshot()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("Prim(root=%d) with %d vertices: %w", root, n, ErrVertexOutOfRange)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// adjacency[v] lists indexes into edges incident to v.
	adjacency := make([][]int, n)
	for i, e := range edges {
		if e.From == e.To {
			continue
		}
		adjacency[e.From] = append(adjacency[e.From], i)
		adjacency[e.To] = append(adjacency[e.To], i)
	}

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight int64
	pq := &edgePQ{}

	// push enqueues every edge from v to an unvisited vertex.
	push := func(v int) {
		for _, idx := range adjacency[v] {
			e := edges[idx]
			far := e.To
			if far == v {
				far = e.From
			}
			if !visited[far] {
				heap.Push(pq, frontierEdge{edge: e, far: far, seq: idx})
			}
		}
	}

	// 2. Seed with root.
	visited[root] = true
	push(root)

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.far] {
			continue
		}
		visited[fe.far] = true
		mst = append(mst, fe.edge)
		totalWeight += fe.edge.Weight
		push(fe.far)
	}

	// 4. Unreached vertices remain.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// frontierEdge is a heap entry: the edge, the endpoint it would add, and its
// insertion index used as a tie-breaker.
type frontierEdge struct {
	edge core.Edge
	far  int
	seq  int
}

// edgePQ implements heap.Interface for a min‐heap of frontierEdge,
// ordered by Weight then insertion index.
type edgePQ []frontierEdge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by insertion index.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new frontierEdge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	fe := old[n-1]
	*pq = old[:n-1]

	return fe
}
