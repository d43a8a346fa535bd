package frontier

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Entry is a candidate (Dist, Vertex) pair. Seq records insertion order and is
// the final tie-breaker.
type Entry[V comparable] struct {
	Dist   float64
	Vertex V
	Seq    uint64
}

// Option configures a Frontier.
type Option[V comparable] func(*Frontier[V])

// WithLess sets the vertex ordering used to break distance ties.
// A nil less leaves insertion order as the only tie-breaker.
func WithLess[V comparable](less func(a, b V) bool) Option[V] {
	return func(f *Frontier[V]) {
		f.h.less = less
	}
}

// WithCapacity pre-allocates room for n entries.
func WithCapacity[V comparable](n int) Option[V] {
	return func(f *Frontier[V]) {
		if n > 0 {
			f.h.items = make([]Entry[V], 0, n)
		}
	}
}

// Frontier is a min-ordered queue of entries with lazy invalidation left to the caller.
type Frontier[V comparable] struct {
	h       entryHeap[V]
	nextSeq uint64
}

// New returns an empty Frontier.
func New[V comparable](opts ...Option[V]) *Frontier[V] {
	f := &Frontier[V]{}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// NewOrdered returns an empty Frontier whose distance ties are broken by the
// natural order of V.
func NewOrdered[V constraints.Ordered](opts ...Option[V]) *Frontier[V] {
	opts = append([]Option[V]{WithLess[V](func(a, b V) bool { return a < b })}, opts...)

	return New(opts...)
}

// Push inserts a candidate and returns the entry as stored.
func (f *Frontier[V]) Push(dist float64, v V) Entry[V] {
	e := Entry[V]{Dist: dist, Vertex: v, Seq: f.nextSeq}
	f.nextSeq++
	heap.Push(&f.h, e)

	return e
}

// PopMin removes and returns the minimum entry. The boolean is false when the
// frontier is empty.
func (f *Frontier[V]) PopMin() (Entry[V], bool) {
	if len(f.h.items) == 0 {
		var zero Entry[V]
		return zero, false
	}

	return heap.Pop(&f.h).(Entry[V]), true
}

// Peek returns the minimum entry without removing it.
func (f *Frontier[V]) Peek() (Entry[V], bool) {
	if len(f.h.items) == 0 {
		var zero Entry[V]
		return zero, false
	}

	return f.h.items[0], true
}

// IsEmpty reports whether no entries remain.
func (f *Frontier[V]) IsEmpty() bool { return len(f.h.items) == 0 }

// Len returns the number of entries, stale ones included.
func (f *Frontier[V]) Len() int { return len(f.h.items) }

// Reset drops all entries and restarts the sequence counter, keeping the
// allocated capacity and the vertex ordering.
func (f *Frontier[V]) Reset() {
	clear(f.h.items)
	f.h.items = f.h.items[:0]
	f.nextSeq = 0
}

// entryHeap implements heap.Interface over Entry values.
type entryHeap[V comparable] struct {
	items []Entry[V]
	less  func(a, b V) bool
}

var _ heap.Interface = (*entryHeap[int])(nil)

func (h entryHeap[V]) Len() int { return len(h.items) }

func (h entryHeap[V]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	if h.less != nil && a.Vertex != b.Vertex {
		if h.less(a.Vertex, b.Vertex) {
			return true
		}
		if h.less(b.Vertex, a.Vertex) {
			return false
		}
	}

	return a.Seq < b.Seq
}

func (h entryHeap[V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap[V]) Push(x any) { h.items = append(h.items, x.(Entry[V])) }

func (h *entryHeap[V]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero Entry[V]
	old[n-1] = zero // release the vertex for GC
	h.items = old[:n-1]

	return item
}
