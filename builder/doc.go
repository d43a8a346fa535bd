// Package builder generates deterministic weighted directed graphs of string
// vertices for tests, examples and benchmarks of the shortest-path engine.
//
// A build is a list of Constructor values applied in order to one fresh
// *core.Graph[string]. Constructors share a resolved configuration:
//
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A"…"Z").
//     – ExcelColumnIDFn:  spreadsheet columns ("A","Z","AA",…).
//     – PrefixIDFn(p):    p followed by the decimal index ("v0","v1",…).
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn(w): fixed w ≥ 0.
//     – UniformWeightFn:     continuous U[min,max).
//     – IntWeightFn:         integer-valued U{min..max}; sums stay exact in float64.
//   - Topologies (Constructor):
//     – Path(n), Cycle(n), Star(n), Complete(n), Grid(rows, cols), RandomSparse(n, p).
//
// Every constructor adds arcs in one direction unless WithBidirectional is set,
// in which case each generated arc u→v is paired with v→u of the same weight.
//
// Determinism: with the same options (in particular the same seed) a build
// yields the same vertex insertion order, the same arcs and the same weights.
//
// Option constructors panic on programmer errors (nil functions, negative
// weights); constructors return sentinel errors wrapped with context.
package builder
