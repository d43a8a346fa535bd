package dijkstra

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortest/core"
)

// ComputeMany runs Compute once per source over the same graph, at most
// workers runs at a time (workers ≤ 0 means GOMAXPROCS). Each run is an
// ordinary sequential Compute; only whole runs execute concurrently.
//
// The first failing run cancels the others through ctx and its error is
// returned, wrapped with the source. On success the map holds one Result per
// distinct source. Options apply to every run; a WithContext option is
// overridden by the group context derived from ctx.
func ComputeMany[V comparable](ctx context.Context, g *core.Graph[V], sources []V, workers int, opts ...Option) (map[V]Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var mu sync.Mutex
	out := make(map[V]Result[V], len(sources))

	// Full slice expression so appends never write into the caller's array.
	runOpts := append(opts[:len(opts):len(opts)], WithContext(gctx))
	for _, src := range sources {
		eg.Go(func() error {
			dist, prev, err := Compute(g, src, runOpts...)
			if err != nil {
				return fmt.Errorf("dijkstra: run from %v: %w", src, err)
			}
			mu.Lock()
			out[src] = Result[V]{Source: src, Dist: dist, Prev: prev}
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
