// Package core declares Graph, Edge, Arc, GraphOption and the sentinel errors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex absent from the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrNegativeWeight indicates an edge whose weight is negative or NaN.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is a directed, weighted connection to To. The origin is implied by the
// adjacency slot the edge is stored in.
type Edge[V comparable] struct {
	// To is the target vertex.
	To V

	// Weight is the traversal cost; the engine requires Weight >= 0.
	Weight float64
}

// Arc is an Edge together with its origin, used when edges are listed globally.
type Arc[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity int
}

// WithCapacity pre-sizes the vertex table for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is a directed weighted adjacency structure keyed by vertex.
//
// mu guards order, adj and edges. order records first-seen order of vertices so
// every listing is deterministic regardless of Go map iteration.
type Graph[V comparable] struct {
	mu sync.RWMutex

	order []V             // vertices in insertion order
	adj   map[V][]Edge[V] // vertex → outgoing edges, in insertion order
	edges int             // total number of edges
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		order: make([]V, 0, cfg.capacity),
		adj:   make(map[V][]Edge[V], cfg.capacity),
	}
}

// FromAdjacency builds a Graph from a vertex → edges mapping.
//
// Keys become vertices; edge targets missing from the key set are added as
// isolated vertices. Because Go map order is random, keys are registered in an
// unspecified order; edge order within each vertex is preserved exactly.
// Complexity: O(V+E).
func FromAdjacency[V comparable](adj map[V][]Edge[V]) *Graph[V] {
	g := NewGraph[V](WithCapacity(len(adj)))
	for v, edges := range adj {
		g.AddVertex(v)
		for _, e := range edges {
			g.AddEdge(v, e.To, e.Weight)
		}
	}

	return g
}
