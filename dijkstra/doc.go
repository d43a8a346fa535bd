// Package dijkstra computes single-source shortest paths on a core.Graph with
// non-negative edge weights and reconstructs concrete paths from the result.
//
// Overview:
//
//   - Compute runs Dijkstra's greedy relaxation from one source and returns a
//     DistanceMap (best distance per vertex, +Inf when unreachable) and a
//     PredecessorMap (previous vertex on one shortest path).
//   - ReconstructPath walks a PredecessorMap back from a target to the source.
//   - ComputeMany runs independent searches for several sources over the same
//     read-only graph, bounded by a worker limit.
//
// Algorithm:
//
//  1. dist[v] = +Inf for every vertex, dist[source] = 0, no predecessors.
//  2. Push (0, source) onto the frontier.
//  3. Pop the minimum (d, v). If d != dist[v] the entry is stale: a shorter
//     distance was found after it was pushed. Discard it.
//  4. Otherwise v is finalized. For each edge v→to with weight w, if d+w is
//     strictly smaller than dist[to], set dist[to] = d+w, prev[to] = v and push
//     (d+w, to).
//  5. Repeat until the frontier is empty.
//
// The stale check in step 3 compares against the live distance table, so the
// frontier never needs decrease-key (see package frontier). Each vertex moves
// Unvisited → Discovered (first relaxation) → Finalized (popped with a matching
// distance) and never changes again once finalized; this holds only because
// weights are non-negative, which Compute verifies before relaxing anything.
//
// Complexity:
//
//   - Time:  O((V + E) log V); at most one frontier push per successful relaxation.
//   - Space: O(V + E) for the maps and the worst-case frontier.
//
// Options (all optional; defaults reproduce the plain algorithm):
//
//   - WithMaxDistance(x):      candidates farther than x are not relaxed.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithMaxPops(n):          stop after n frontier pops (partial result).
//   - WithContext(ctx):        stop when ctx is done (partial result).
//   - WithTrace(fn):           observe Start/Pop/Stale/Finalize/Relax/Done events.
//   - WithLogger(l):           debug-level run summary through log/slog.
//
// Errors (sentinel, use errors.Is):
//
//   - ErrNilGraph:        g is nil.
//   - ErrUnknownVertex:   the source is not a vertex of g (same value as core.ErrUnknownVertex).
//   - ErrNegativeWeight:  some edge weight is < 0 or NaN (same value as core.ErrNegativeWeight).
//   - ErrOptionViolation: an option received an invalid argument.
//   - ErrBudgetExhausted: WithMaxPops stopped the run early.
//
// Unreachable vertices are not an error: their distance is +Inf and
// ReconstructPath returns an empty slice for them. When a run stops early
// (budget or context), Compute returns the partial maps together with the
// error; vertices that were not finalized may still have been improvable, so a
// partial result must not be used for path reconstruction.
//
// Thread safety:
//
//   - Compute never mutates the graph and shares no state between calls, so one
//     graph can serve any number of concurrent Compute calls.
package dijkstra
