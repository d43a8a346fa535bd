// Package frontier implements the priority frontier used by shortest-path
// search: a binary min-heap of (distance, vertex) candidates.
//
// There is deliberately no decrease-key and no removal. When a vertex's best
// distance improves, the search pushes a fresh entry; the older entries for that
// vertex stay in the heap and are recognised as stale by the caller when popped
// (their distance no longer equals the vertex's current best). This costs at
// most one extra entry per relaxation and keeps the heap a plain container/heap.
//
// Ordering:
//
//   - Dist ascending.
//   - Equal Dist: vertex order, when the frontier has one (NewOrdered, WithLess,
//     or NaturalLess for builtin ordered vertex types).
//   - Still equal: Seq ascending, a per-frontier monotonically increasing
//     insertion counter. Pop order is therefore total and reproducible.
//
// Complexity:
//
//	Push    O(log n)
//	PopMin  O(log n)
//	Peek    O(1)
//	Len     O(1)
//
// A Frontier is not safe for concurrent use; each search owns its own.
package frontier
