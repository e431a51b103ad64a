// SPDX-License-Identifier: MIT
// Package: dynmst/builder
//
// impl_random.go - RandomSparse(n, p) and RandomConnected(n, extra).
//
// Determinism:
//   - Fixed trial order; identical outcomes for a fixed seed and options.
//   - RNG draws for edge selection and for weights interleave in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dynmst/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"

	minRandomSparseVertices    = 1
	minRandomConnectedVertices = 2
	probMin                    = 0.0
	probMax                    = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph over
// vertices 0..n-1: each pair (i, j), i<j, is included with probability p,
// trials ordered by i then j.
//
// p ∈ {0, 1} needs no RNG; any other p requires WithSeed or WithRand.
// Vertices that end up with no edge do not count toward NodeCount() unless a
// higher id is used.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				switch {
				case p == probMax:
					take = true
				case p == probMin:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor that builds a connected graph over
// 0..n-1: first a random spanning tree (vertex i attaches to a uniformly
// chosen earlier vertex), then extra random non-loop edges. Parallel edges
// may appear among the extras.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}
		rng := cfg.rng

		// Spanning tree: i joins one of 0..i-1.
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodRandomConnected, rng.Intn(i), i); err != nil {
				return err
			}
		}
		// Extra edges, loops rejected by redraw.
		for added := 0; added < extra; {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			if err := addEdge(g, cfg, methodRandomConnected, u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
