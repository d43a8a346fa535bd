// Package bfs provides breadth-first reachability over a core.Graph: which
// vertices a source can reach at all, in how many hops, and through which
// parent. Weights are ignored except through an edge filter.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	// It wraps core.ErrUnknownVertex.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex not found: %w", core.ErrUnknownVertex)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Reach.
type Option[V comparable] func(*Options[V])

// Options holds the parameters of one traversal.
type Options[V comparable] struct {
	// Ctx allows cancellation; checked once per dequeued vertex.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	// FilterEdge skips an edge from→e.To when it returns false.
	FilterEdge func(from V, e core.Edge[V]) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filter.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:        context.Background(),
		FilterEdge: func(V, core.Edge[V]) bool { return true },
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal to d hops; d == 0 disables the limit.
// Negative d is an option violation.
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			}
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges for which fn returns false. Nil is ignored.
func WithFilterEdge[V comparable](fn func(from V, e core.Edge[V]) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result[V comparable] struct {
	// Order lists vertices in the order they were dequeued.
	Order []V
	// Depth maps each reached vertex to its hop count from the start.
	Depth map[V]int
	// Parent maps each reached vertex except the start to its BFS parent.
	Parent map[V]V
}

// Reached reports whether v was reached.
func (r *Result[V]) Reached(v V) bool {
	_, ok := r.Depth[v]

	return ok
}
