package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/shortest/core"
)

// Infinity is the distance of a vertex that has no known path from the source.
var Infinity = math.Inf(1)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that the source is not a vertex of the graph.
	// It is the core sentinel, so errors.Is matches either name.
	ErrUnknownVertex = core.ErrUnknownVertex

	// ErrNegativeWeight indicates that an edge weight is negative or NaN.
	// It is the core sentinel, so errors.Is matches either name.
	ErrNegativeWeight = core.ErrNegativeWeight

	// ErrOptionViolation indicates an invalid argument to one of the With* options.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBudgetExhausted indicates that WithMaxPops stopped the run before the
	// frontier was empty. The returned maps are partial.
	ErrBudgetExhausted = errors.New("dijkstra: pop budget exhausted")

	// ErrEmptyPath indicates PathWeight was given an empty path.
	ErrEmptyPath = errors.New("dijkstra: path is empty")

	// ErrNoEdge indicates two consecutive path vertices are not joined by an edge.
	ErrNoEdge = errors.New("dijkstra: no edge between consecutive path vertices")
)

// DistanceMap maps every vertex of the graph to its best known distance from
// the source. Unreachable vertices map to Infinity.
type DistanceMap[V comparable] map[V]float64

// Reachable reports whether v has a finite distance.
func (m DistanceMap[V]) Reachable(v V) bool {
	d, ok := m[v]

	return ok && !math.IsInf(d, 1)
}

// PredecessorMap maps a vertex to the vertex preceding it on one shortest path.
// A vertex has an entry iff it was reached by at least one relaxation; the
// source and unreachable vertices have none.
type PredecessorMap[V comparable] map[V]V

// Get returns the predecessor of v and whether it has one.
func (m PredecessorMap[V]) Get(v V) (V, bool) {
	p, ok := m[v]

	return p, ok
}

// Options configures a single Compute run.
type Options struct {
	// Ctx is polled once per frontier pop.
	Ctx context.Context

	// MaxDistance caps relaxation: candidates with distance > MaxDistance are
	// dropped. Default +Inf.
	MaxDistance float64

	// InfEdgeThreshold marks edges with weight ≥ threshold as impassable.
	// Default +Inf.
	InfEdgeThreshold float64

	// MaxPops bounds the number of frontier pops; 0 means unlimited.
	MaxPops int

	// Trace receives run events; nil disables tracing.
	Trace func(Event)

	// Logger receives a debug-level summary per run.
	Logger *slog.Logger

	// err records the first invalid option; surfaced by Compute.
	err error
}

// Option represents a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns the options of a plain, unbounded run:
// background context, no distance cap, no impassable edges, no pop budget,
// no trace and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		MaxPops:          0,
		Trace:            nil,
		Logger:           slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a context checked once per frontier pop. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance stops relaxation beyond x. Vertices farther than x keep
// distance Infinity and no predecessor.
//
//	x ≥ 0:       cap at x
//	x < 0, NaN:  ErrOptionViolation
func WithMaxDistance(x float64) Option {
	return func(o *Options) {
		if !(x >= 0) {
			o.fail(fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, x))
			return
		}
		o.MaxDistance = x
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ t as impassable.
//
//	t > 0:       threshold
//	t ≤ 0, NaN:  ErrOptionViolation (it would wall off zero-weight edges too)
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive (%g)", ErrOptionViolation, t))
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithMaxPops bounds the run to n frontier pops (stale pops included).
//
//	n > 0:  budget
//	n == 0: explicit "no budget"
//	n < 0:  ErrOptionViolation
func WithMaxPops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxPops cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxPops = n
	}
}

// WithTrace registers fn to receive run events. Calling WithTrace more than
// once chains the hooks in registration order. With ComputeMany the hook is
// invoked from several goroutines and must be safe for concurrent use.
func WithTrace(fn func(Event)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		if prev := o.Trace; prev != nil {
			o.Trace = func(ev Event) {
				prev(ev)
				fn(ev)
			}
			return
		}
		o.Trace = fn
	}
}

// WithLogger sets the logger used for the run summary. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// EventKind enumerates the trace events of a run.
type EventKind uint8

const (
	// EventStart fires once, after validation, before the first pop.
	EventStart EventKind = iota
	// EventPop fires for every entry taken off the frontier.
	EventPop
	// EventStale fires when a popped entry no longer matches the vertex's distance.
	EventStale
	// EventFinalize fires when a vertex's distance becomes final.
	EventFinalize
	// EventRelax fires when an edge improves a distance (Unvisited/Discovered → Discovered).
	EventRelax
	// EventDone fires once when the run ends, successfully or not.
	EventDone
)

// String returns the lower-case event name.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventPop:
		return "pop"
	case EventStale:
		return "stale"
	case EventFinalize:
		return "finalize"
	case EventRelax:
		return "relax"
	case EventDone:
		return "done"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event describes one step of a run. Vertex and Pred hold the caller's vertex
// values boxed as any.
//
//	Start:    Vertex = source
//	Pop:      Vertex, Dist = popped entry
//	Stale:    Vertex, Dist = discarded entry
//	Finalize: Vertex, Dist = final distance
//	Relax:    Vertex = improved target, Pred = finalized vertex, Dist = new distance
//	Done:     Vertex = source, Stats, Err
type Event struct {
	Kind   EventKind
	Vertex any
	Pred   any
	Dist   float64
	Stats  Stats
	Err    error
}

// Stats summarises a run.
type Stats struct {
	Pops        int           // entries taken off the frontier
	Stale       int           // pops discarded as stale
	Finalized   int           // vertices whose distance became final
	Relaxations int           // successful relaxations (= frontier pushes after the first)
	Elapsed     time.Duration // wall time from Start to Done
}

// Result bundles the maps of one run, as returned by ComputeMany.
type Result[V comparable] struct {
	Source V
	Dist   DistanceMap[V]
	Prev   PredecessorMap[V]
}

// PathTo reconstructs the path from r.Source to target.
func (r Result[V]) PathTo(target V) []V {
	return ReconstructPath(r.Prev, r.Source, target)
}
