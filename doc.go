// Package dynmst maintains a mutable, bounded collection of weighted
// undirected edges and answers minimum spanning tree queries over whatever
// the collection holds at the moment of the query.
//
// The repository is organized as:
//
//	core/         — bounded edge store: AddEdge, RemoveEdge, Snapshot, Fingerprint
//	dsu/          — disjoint-set forest (union by rank, path compression)
//	prim_kruskal/ — Kruskal (default) and Prim over a core.Graph snapshot
//	builder/      — deterministic and seeded random graph constructors
//	config/       — TOML configuration for the command
//	logutil/      — zap logger construction
//	console/      — the interactive menu session
//	cmd/dynmst/   — the command-line entry point
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(0, 2, 3)
//	mst, total, err := prim_kruskal.Kruskal(g) // [1-2 (1), 0-2 (3)], 4, nil
//
// Every query recomputes from the current edge list; nothing is cached
// between mutations.
package dynmst
