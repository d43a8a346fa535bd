// Package core provides the thread-safe, in-memory weighted directed graph that
// every algorithm in this module consumes.
//
// A Graph[V] maps each vertex to the ordered sequence of its outgoing edges:
//
//	A ──4──▶ B ──10──▶ D
//	│        │         ▲
//	2        5         4
//	▼        ▼         │
//	C ◀──────┘   E ────┘
//	└────3──────▶▲
//
// Vertices are any comparable Go value (labels, integer IDs, small structs).
// No structure is imposed on them and the graph never interprets them.
//
// Properties:
//
//   - Directed edges only; an undirected link is two AddEdge calls.
//   - Parallel edges between the same pair are kept as separate entries.
//   - Self-loops are permitted (they never improve a shortest path).
//   - The vertex set is exactly the set of keys; isolated vertices must be
//     added explicitly with AddVertex (or appear as an edge target).
//   - Deterministic iteration: Vertices() and Edges() follow insertion order.
//
// Weights are float64 and are stored as given. The non-negativity precondition
// belongs to the shortest-path engine, which calls ValidateWeights before any
// relaxation work. ValidateWeights is exported so callers can fail fast earlier.
//
// Core methods:
//
//	AddVertex(v V)                           // O(1), idempotent
//	AddEdge(from, to V, weight float64)      // O(1) amortized, adds endpoints
//	HasVertex(v V) bool                      // O(1)
//	Neighbors(v V) ([]Edge[V], error)        // O(deg(v)), ordered copy
//	Vertices() []V                           // O(V), insertion order
//	Edges() []Arc[V]                         // O(V+E)
//	VertexCount(), EdgeCount() int           // O(1)
//	ValidateWeights() error                  // O(V+E)
//	Clone() *Graph[V]                        // O(V+E), deep copy
//
// Concurrency:
//
//	All methods take a sync.RWMutex. Readers (Neighbors, Vertices, ...) share the
//	read lock, so one Graph can serve any number of concurrent shortest-path runs.
//
// Errors:
//
//	ErrUnknownVertex  – the vertex is not a key of the graph.
//	ErrNegativeWeight – an edge weight is < 0 or NaN (reported by ValidateWeights).
package core
