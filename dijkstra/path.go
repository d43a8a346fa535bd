package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// ReconstructPath returns the vertices of the shortest path source → … → target
// recorded in prev.
//
//   - source == target: [source], whatever prev holds.
//   - target has no predecessor: empty slice (target unreachable).
//   - the backward walk runs out of predecessors, or revisits vertices, without
//     meeting source: empty slice.
//
// The last case only happens when prev was not produced by Compute from this
// source (for example a source absent from the graph). It is indistinguishable
// from unreachability here; callers that need the difference should check the
// source against the graph the maps were computed on.
//
// Complexity: O(path length).
func ReconstructPath[V comparable](prev PredecessorMap[V], source, target V) []V {
	if source == target {
		return []V{source}
	}
	if _, ok := prev[target]; !ok {
		return []V{}
	}

	// A well-formed chain visits each key at most once, so len(prev) lookups
	// bound the walk and cut cycles in malformed maps.
	path := []V{target}
	cur := target
	for steps := 0; steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok {
			return []V{}
		}
		path = append(path, p)
		if p == source {
			reverse(path)
			return path
		}
		cur = p
	}

	return []V{}
}

// PathWeight sums the weights along path in g, taking the cheapest of any
// parallel edges between consecutive vertices. A single-vertex path weighs 0.
//
// Errors: ErrEmptyPath, ErrUnknownVertex, ErrNoEdge.
func PathWeight[V comparable](g *core.Graph[V], path []V) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	if !g.HasVertex(path[0]) {
		return 0, fmt.Errorf("dijkstra: path vertex %v: %w", path[0], ErrUnknownVertex)
	}

	var total float64
	for i := 1; i < len(path); i++ {
		edges, err := g.Neighbors(path[i-1])
		if err != nil {
			return 0, fmt.Errorf("dijkstra: path vertex %v: %w", path[i-1], err)
		}
		best, found := Infinity, false
		for _, e := range edges {
			if e.To == path[i] && (!found || e.Weight < best) {
				best, found = e.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %v→%v", ErrNoEdge, path[i-1], path[i])
		}
		total += best
	}

	return total, nil
}

func reverse[V any](s []V) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
