// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It reads a snapshot of a *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/dynmst/core"
	"github.com/katalvlaran/dynmst/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the graph's current edge set.
// It uses a dsu.Forest (path compression + union by rank) built fresh for this call.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : NodeCount() == 0, or fewer than NodeCount()-1 edges could be selected.
//
// Steps:
//  1. Snapshot edges (insertion order) and node count under one read lock.
//  2. Zero nodes → ErrDisconnected; one node → trivial MST (empty, weight 0).
//  3. Sort edges by ascending Weight with sort.SliceStable; ties keep insertion order.
//  4. dsu.New(nodeCount).
//  5. For each edge (u,v): if Find(u) != Find(v), select it, add its weight, Union(u,v).
//     Stop once nodeCount-1 edges are selected.
//  6. Fewer than nodeCount-1 selected edges → ErrDisconnected.
//
// Self-loops never qualify (both endpoints share a root).
// Returned edges keep their inserted orientation and appear in selection order.
//
// Limits:
//   - The total weight is a plain int64 sum and wraps on overflow; callers
//     storing weights near math.MaxInt64 or math.MinInt64 must bound them.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate and snapshot.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	edges, numVerts := graph.Snapshot()

	// 2. Degenerate vertex sets.
	if numVerts == 0 {
		// Nothing to span; treated as disconnected, never as an empty tree.
		return nil, 0, ErrDisconnected
	}
	if numVerts == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Stable sort by weight: equal weights keep their insertion order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Fresh disjoint-set forest over [0, numVerts).
	forest := dsu.New(numVerts)

	// 5. Build MST by iterating over sorted edges.
	var (
		target      = numVerts - 1
		mst         = make([]core.Edge, 0, target)
		totalWeight int64
	)
	for _, e := range edges {
		if forest.Find(e.From) == forest.Find(e.To) {
			continue // would close a cycle
		}
		forest.Union(e.From, e.To)
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == target {
			break
		}
	}

	// 6. Anything short of |V|-1 edges means at least two components.
	if len(mst) < target {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// Components returns the connected components of the graph's current edge
// set over vertices [0, NodeCount()). Each component is sorted ascending and
// components are ordered by their smallest vertex. A nil graph yields nil.
//
// Complexity: O(V + E·α(V)).
func Components(graph *core.Graph) [][]int {
	if graph == nil {
		return nil
	}
	edges, numVerts := graph.Snapshot()
	forest := dsu.New(numVerts)
	for _, e := range edges {
		forest.Union(e.From, e.To)
	}

	return forest.Sets()
}
