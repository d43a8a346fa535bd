// File: methods.go
// Role: Vertex/edge lifecycle and read-only queries.
// Determinism:
//   - Vertices() and Edges() follow insertion order.
//   - Neighbors(v) preserves the order in which edges out of v were added.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddVertex registers v as a vertex with no outgoing edges.
// Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// AddEdge appends a directed edge from→to with the given weight, registering
// both endpoints if needed. Parallel edges and self-loops are kept as-is.
//
// The weight is stored unvalidated; see ValidateWeights.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, weight float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adj[from] = append(g.adj[from], Edge[V]{To: to, Weight: weight})
	g.edges++
}

// ensureVertex adds v to the catalog; caller must hold the write lock.
func (g *Graph[V]) ensureVertex(v V) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = nil
	g.order = append(g.order, v)
}

// HasVertex reports whether v is a key of the graph.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[v]

	return ok
}

// Neighbors returns a copy of the outgoing edges of v in insertion order.
// A vertex absent from the graph yields ErrUnknownVertex.
//
// The returned slice is owned by the caller; mutating it does not affect g.
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]Edge[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	out := make([]Edge[V], len(edges))
	copy(out, edges)

	return out, nil
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every edge with its origin, grouped by origin in vertex
// insertion order and, within a vertex, in edge insertion order.
// Complexity: O(V+E).
func (g *Graph[V]) Edges() []Arc[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc[V], 0, g.edges)
	for _, from := range g.order {
		for _, e := range g.adj[from] {
			out = append(out, Arc[V]{From: from, To: e.To, Weight: e.Weight})
		}
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|, counting parallel edges individually.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// ValidateWeights scans all edges and reports the first one whose weight is
// negative or NaN, wrapped in ErrNegativeWeight. Scan order is deterministic,
// so the same graph always reports the same edge.
// Complexity: O(V+E).
func (g *Graph[V]) ValidateWeights() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, from := range g.order {
		for _, e := range g.adj[from] {
			// !(w >= 0) also rejects NaN.
			if !(e.Weight >= 0) {
				return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, from, e.To, e.Weight)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of g. Later mutations of either graph are not
// visible in the other.
// Complexity: O(V+E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[V](WithCapacity(len(g.order)))
	clone.order = append(clone.order, g.order...)
	for v, edges := range g.adj {
		if edges == nil {
			clone.adj[v] = nil
			continue
		}
		cp := make([]Edge[V], len(edges))
		copy(cp, edges)
		clone.adj[v] = cp
	}
	clone.edges = g.edges

	return clone
}
