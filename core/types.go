// Package core defines the Edge and Graph types, functional options,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrCapacityExceeded - edge count or vertex id beyond configured limits.
//	ErrInvalidNode      - vertex id is negative.
//	ErrEdgeNotFound     - requested ordered (u,v) edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Default capacity limits.
const (
	// DefaultMaxEdges is the default upper bound on stored edges.
	DefaultMaxEdges = 1000

	// DefaultMaxNodes is the default number of addressable vertices (ids 0..99).
	DefaultMaxNodes = 100
)

// Sentinel errors for core graph operations.
var (
	// ErrCapacityExceeded indicates that an AddEdge would exceed the configured
	// maximum edge count or reference a vertex id at or above the vertex limit.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrInvalidNode indicates a negative vertex id.
	ErrInvalidNode = errors.New("core: invalid node id")

	// ErrEdgeNotFound indicates that no edge matches the requested ordered pair.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is an undirected weighted connection between two vertices.
//
// An Edge has no identity beyond its fields: two edges with equal From, To
// and Weight are indistinguishable. From/To keep the order given to AddEdge,
// which matters for RemoveEdge and HasEdge.
type Edge struct {
	// From is the first endpoint as inserted.
	From int

	// To is the second endpoint as inserted.
	To int

	// Weight is the edge cost. Any int64 is accepted, negatives included.
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxEdges sets the maximum number of stored edges.
// Non-positive values are ignored and the default is kept.
func WithMaxEdges(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxEdges = n
		}
	}
}

// WithMaxNodes sets the number of addressable vertices; valid ids are [0, n).
// Non-positive values are ignored and the default is kept.
func WithMaxNodes(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxNodes = n
		}
	}
}

// Graph is a mutable, ordered collection of weighted undirected edges.
//
// nodeCount is one plus the largest endpoint ever inserted and never
// decreases. mu guards edges and nodeCount; limits are immutable after
// construction.
type Graph struct {
	mu sync.RWMutex // guards edges and nodeCount

	// Limits
	maxEdges int // capacity of the edge sequence
	maxNodes int // vertex ids must be < maxNodes

	// Storage
	edges     []Edge // insertion order preserved
	nodeCount int    // 1 + max endpoint ever seen; 0 when empty
}

// GraphStats is a read-only snapshot of a Graph's limits and sizes.
type GraphStats struct {
	MaxEdges int // configured edge capacity
	MaxNodes int // configured vertex capacity

	EdgeCount     int // current number of stored edges
	NodeCount     int // 1 + max endpoint ever inserted
	SelfLoopCount int // edges with From == To
	TotalWeight   int64
}

// NewGraph creates an empty Graph with default limits overridden by opts.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		maxEdges: DefaultMaxEdges,
		maxNodes: DefaultMaxNodes,
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
