package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph *core.Graph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// Reach runs breadth-first search on g from start.
//
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, and the context error on cancellation together with the
// partial result.
//
// Complexity: O(V + E).
func Reach[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return fmt.Errorf("bfs: %w", err)
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies the filter and MaxDepth, and enqueues every unseen
// neighbor of item.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.v, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(item.v, e) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Depth[e.To] = next
		w.res.Parent[e.To] = item.v
		w.queue = append(w.queue, queueItem[V]{v: e.To, depth: next})
	}

	return nil
}
