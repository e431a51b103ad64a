// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and digests.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// MaxEdges reports the configured edge capacity.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Limits are immutable after construction, so no lock is taken.
func (g *Graph) MaxEdges() int {
	return g.maxEdges
}

// MaxNodes reports the configured vertex capacity; valid ids are [0, MaxNodes()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) MaxNodes() int {
	return g.maxNodes
}

// Stats produces a read-only snapshot of limits, sizes and weight totals.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock and copy limits and counts.
//   - Stage 2: Scan edges once to count self-loops and sum weights.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		MaxEdges:  g.maxEdges,
		MaxNodes:  g.maxNodes,
		EdgeCount: len(g.edges),
		NodeCount: g.nodeCount,
	}
	for i := range g.edges {
		if g.edges[i].From == g.edges[i].To {
			stats.SelfLoopCount++
		}
		stats.TotalWeight += g.edges[i].Weight
	}

	return &stats
}

// Fingerprint returns an order-sensitive 64-bit digest of an edge sequence.
//
// Two sequences share a fingerprint when they hold the same edges in the
// same order (up to hash collisions). It is used to compare MST results
// across repeated queries.
//
// Complexity:
//   - Time O(len(edges)), Space O(1).
func Fingerprint(edges []Edge) uint64 {
	d := xxhash.New()
	var buf [24]byte
	for i := range edges {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(edges[i].From))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(edges[i].To))
		binary.LittleEndian.PutUint64(buf[16:24], uint64(edges[i].Weight))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
