// SPDX-License-Identifier: MIT
// Package: dynmst/builder
//
// impl_basic.go - Path(n), Cycle(n), Star(n), Complete(n).
//
// Contract:
//   - Vertices are 0..n-1; every vertex is touched by at least one edge, so
//     the resulting NodeCount() is exactly n.
//   - Edges are emitted in a stable, documented order.
//   - Weights come from cfg.weightFn(cfg.rng) in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dynmst/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 2
)

// Path returns a Constructor that builds P_n: edges (i-1, i) for i=1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: the path 0..n-1 closed by (n-1, 0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}

// Star returns a Constructor that builds S_n: center 0 joined to 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n: every pair (i, j), i<j,
// emitted with i ascending then j ascending.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addEdge draws a weight and inserts (u, v), wrapping core errors with method context.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
