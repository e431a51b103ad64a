// Package builder assembles deterministic *core.Graph fixtures: paths, cycles,
// stars, complete graphs and seeded random graphs over integer vertices
// 0..n-1.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates the graph,
// resolves the builder configuration and applies constructors in order.
// Equal inputs, options, seed and constructor order produce identical edge
// sequences, which matters because core.Graph's insertion order decides MST
// tie-breaks.
//
// Constructors never panic at runtime; they return the sentinels from
// errors.go wrapped with method context. Core errors (capacity limits) are
// passed through with %w.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithMaxNodes(500), core.WithMaxEdges(5000)},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
//		builder.RandomConnected(500, 1500),
//	)
package builder
