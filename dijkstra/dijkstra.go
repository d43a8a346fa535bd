// Notes on implementation choices:
//
//   - We scan all edges upfront (O(E)) to reject negative or NaN weights before
//     any relaxation; the greedy invariant does not hold without that.
//   - We use a lazy decrease-key strategy: improved distances are pushed as new
//     frontier entries and outdated ones are recognised on pop by comparing the
//     popped distance with the live distance table.
//   - Frontier ties are broken by vertex value for builtin ordered vertex types
//     and by insertion order otherwise, so runs are reproducible.

package dijkstra

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/frontier"
)

// Compute returns the shortest distances and predecessors from source to every
// vertex of g.
//
// Returns:
//
//   - dist: every vertex of g → minimum distance from source (Infinity if unreachable).
//   - prev: v → u means the shortest path found to v ends with the edge u→v.
//     The source and unreachable vertices have no entry.
//   - err:  validation failures return nil maps. Early stops (ErrBudgetExhausted,
//     context errors) return the partial maps alongside the error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrOptionViolation).
//  3. g must contain source (ErrUnknownVertex).
//  4. no edge of g may have a negative or NaN weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Compute[V comparable](g *core.Graph[V], source V, opts ...Option) (DistanceMap[V], PredecessorMap[V], error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// 2) Validate inputs before any work.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("dijkstra: source %v: %w", source, ErrUnknownVertex)
	}
	if err := g.ValidateWeights(); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 3) Run.
	r := newRunner(g, source, cfg)
	r.init()
	err := r.process()
	r.finish(err)

	return r.dist, r.prev, err
}

// runner holds the mutable state of one Compute call.
type runner[V comparable] struct {
	g       *core.Graph[V]        // read-only input
	source  V                     // search origin
	options Options               // resolved configuration
	dist    DistanceMap[V]        // vertex → best known distance
	prev    PredecessorMap[V]     // vertex → predecessor on that distance
	pq      *frontier.Frontier[V] // candidates, stale entries included
	stats   Stats                 // counters for Done/logging
	started time.Time             // for Stats.Elapsed
}

func newRunner[V comparable](g *core.Graph[V], source V, cfg Options) *runner[V] {
	n := g.VertexCount()

	return &runner[V]{
		g:       g,
		source:  source,
		options: cfg,
		dist:    make(DistanceMap[V], n),
		prev:    make(PredecessorMap[V], n),
		pq:      frontier.New(frontier.WithLess(frontier.NaturalLess[V]()), frontier.WithCapacity[V](n)),
	}
}

// init sets every distance to Infinity, the source to 0, and seeds the frontier.
func (r *runner[V]) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Infinity
	}
	r.dist[r.source] = 0
	r.pq.Push(0, r.source)

	r.started = time.Now()
	r.emit(Event{Kind: EventStart, Vertex: r.source})
}

// process is the main loop: pop, discard if stale, otherwise finalize and relax.
//
// Loop termination:
//
//   - the frontier is empty (normal end);
//   - the context is done or the pop budget is spent (partial result).
func (r *runner[V]) process() error {
	for !r.pq.IsEmpty() {
		if err := r.options.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: run interrupted after %d pops: %w", r.stats.Pops, err)
		}
		if r.options.MaxPops > 0 && r.stats.Pops >= r.options.MaxPops {
			return fmt.Errorf("%w: limit %d, %d entries left", ErrBudgetExhausted, r.options.MaxPops, r.pq.Len())
		}

		item, _ := r.pq.PopMin()
		r.stats.Pops++
		r.emit(Event{Kind: EventPop, Vertex: item.Vertex, Dist: item.Dist})

		// Stale entry: the vertex has been improved since this was pushed.
		if item.Dist != r.dist[item.Vertex] {
			r.stats.Stale++
			r.emit(Event{Kind: EventStale, Vertex: item.Vertex, Dist: item.Dist})
			continue
		}

		r.stats.Finalized++
		r.emit(Event{Kind: EventFinalize, Vertex: item.Vertex, Dist: item.Dist})

		if err := r.relax(item.Vertex, item.Dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every edge out of the finalized vertex u (at distance d).
func (r *runner[V]) relax(u V, d float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}

	for _, e := range edges {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// Pre-scanned already; repeated in case the graph changed mid-run.
		if !(e.Weight >= 0) {
			return fmt.Errorf("dijkstra: %w: edge %v→%v weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
		}

		cand := d + e.Weight
		if cand > r.options.MaxDistance {
			continue
		}
		cur, ok := r.dist[e.To]
		if !ok {
			cur = Infinity
		}
		// Strict: equal candidates never replace a predecessor or add an entry.
		if cand >= cur {
			continue
		}

		r.dist[e.To] = cand
		r.prev[e.To] = u
		r.pq.Push(cand, e.To)
		r.stats.Relaxations++
		r.emit(Event{Kind: EventRelax, Vertex: e.To, Pred: u, Dist: cand})
	}

	return nil
}

// finish records elapsed time, emits Done and logs the summary.
func (r *runner[V]) finish(err error) {
	r.stats.Elapsed = time.Since(r.started)
	r.emit(Event{Kind: EventDone, Vertex: r.source, Stats: r.stats, Err: err})

	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	r.options.Logger.Log(r.options.Ctx, level, "dijkstra: run finished",
		slog.Any("source", r.source),
		slog.Int("vertices", len(r.dist)),
		slog.Int("pops", r.stats.Pops),
		slog.Int("stale", r.stats.Stale),
		slog.Int("finalized", r.stats.Finalized),
		slog.Int("relaxations", r.stats.Relaxations),
		slog.Duration("elapsed", r.stats.Elapsed),
		slog.Any("error", err),
	)
}

func (r *runner[V]) emit(ev Event) {
	if r.options.Trace != nil {
		r.options.Trace(ev)
	}
}
