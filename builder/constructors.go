// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// Constructor adds one topology to g using the resolved configuration.
// It returns an error only for invalid parameters.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
	minSparseNodes   = 1

	gridIDFmt = "%d,%d" // "r,c"
)

// BuildGraph creates a graph and applies cons in order.
//
// Errors: ErrConstructFailed for a nil constructor; otherwise the first
// constructor error, wrapped.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addArc inserts u→v with the next weight, and v→u with the same weight when
// the build is bidirectional.
func (c builderConfig) addArc(g *core.Graph[string], u, v string) {
	w := c.weight()
	g.AddEdge(u, v, w)
	if c.bidirectional {
		g.AddEdge(v, u, w)
	}
}

// addVertices inserts n vertices named by the ID scheme and returns their IDs.
func (c builderConfig) addVertices(g *core.Graph[string], n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = c.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// Path builds v0→v1→…→v(n-1). Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := cfg.addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			cfg.addArc(g, ids[i], ids[i+1])
		}

		return nil
	}
}

// Cycle builds v0→v1→…→v(n-1)→v0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			cfg.addArc(g, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}

// Star builds a hub v0 with arcs v0→vi for i in 1..n-1. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := cfg.addVertices(g, n)
		for i := 1; i < n; i++ {
			cfg.addArc(g, ids[0], ids[i])
		}

		return nil
	}
}

// Complete builds arcs vi→vj for every i < j. With WithBidirectional this is
// the complete digraph on n vertices. Requires n ≥ 1.
//
// Complexity: O(n²) arcs.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.addArc(g, ids[i], ids[j])
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice with IDs "r,c" (the ID scheme is not used).
// Each cell has an arc to its right and bottom neighbours; WithBidirectional
// makes the lattice traversable in all four directions.
// Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(id(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					cfg.addArc(g, id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					cfg.addArc(g, id(r, c), id(r+1, c))
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi digraph: each ordered pair (i, j), i ≠ j,
// receives the arc vi→vj with probability p. Pairs are visited in row-major
// order, one draw per pair, so a seed fully determines the result.
//
// p == 0 and p == 1 need no random source; any other p requires WithSeed or
// WithRand (ErrNeedRandSource). With WithBidirectional the reverse arcs may
// duplicate drawn ones, producing parallel arcs.
//
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == 0:
					continue
				case p == 1:
				case cfg.rng.Float64() >= p:
					continue
				}
				cfg.addArc(g, ids[i], ids[j])
			}
		}

		return nil
	}
}
