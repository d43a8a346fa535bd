// Package shortest computes single-source shortest paths on directed graphs
// with non-negative edge weights.
//
// Packages:
//
//	core/        generic directed weighted Graph[V] (adjacency lists, RWMutex)
//	frontier/    min-priority frontier with deterministic tie-breaking
//	dijkstra/    Compute, ComputeMany, ReconstructPath, PathWeight, trace events
//	bfs/         hop-count reachability with edge filters
//	builder/     deterministic graph generators for tests and benchmarks
//	metrics/     Prometheus recorder fed by run trace events
//	config/      koanf loader (defaults → YAML → SHORTEST_* env) producing options
//	examples/    runnable scenarios
//
// Quick start:
//
//	g := core.NewGraph[string]()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 2)
//	g.AddEdge("C", "B", 1)
//
//	dist, prev, err := dijkstra.Compute(g, "A")
//	// dist["B"] == 3
//	// dijkstra.ReconstructPath(prev, "A", "B") == [A C B]
//
// Unreachable vertices have distance +Inf and no predecessor; that is never
// an error. Negative or NaN weights, an unknown source and a nil graph are
// rejected before any work with sentinel errors checkable via errors.Is.
package shortest
