package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortest/bfs"
	"github.com/katalvlaran/shortest/builder"
	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/dijkstra"
)

// exhaustiveDistances enumerates every simple path from source by depth-first
// search and keeps the cheapest total per endpoint. Exponential; small graphs only.
func exhaustiveDistances(g *core.Graph[string], source string) map[string]float64 {
	best := make(map[string]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		best[v] = math.Inf(1)
	}
	onPath := map[string]bool{}

	var walk func(u string, d float64)
	walk = func(u string, d float64) {
		if d < best[u] {
			best[u] = d
		}
		onPath[u] = true
		edges, _ := g.Neighbors(u)
		for _, e := range edges {
			if !onPath[e.To] {
				walk(e.To, d+e.Weight)
			}
		}
		onPath[u] = false
	}
	walk(source, 0)

	return best
}

func TestCompute_MatchesExhaustiveSearch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n int
		p float64
	}{
		{4, 0.5},
		{6, 0.3},
		{7, 0.45},
		{8, 0.25},
	}

	for _, tc := range cases {
		for seed := int64(1); seed <= 15; seed++ {
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(0, 12))},
				builder.RandomSparse(tc.n, tc.p),
			)
			require.NoError(t, err)

			for _, src := range g.Vertices() {
				want := exhaustiveDistances(g, src)
				got, prev, err := dijkstra.Compute(g, src)
				require.NoError(t, err)
				require.Equal(t, dijkstra.DistanceMap[string](want), got,
					"n=%d p=%g seed=%d source=%s", tc.n, tc.p, seed, src)

				// Every predecessor edge lies on a shortest path.
				for v, u := range prev {
					edges, err := g.Neighbors(u)
					require.NoError(t, err)
					ok := false
					for _, e := range edges {
						if e.To == v && got[u]+e.Weight == got[v] {
							ok = true
							break
						}
					}
					assert.True(t, ok, "seed=%d: %s→%s is not tight", seed, u, v)
				}
			}
		}
	}
}

// TestCompute_ReachabilityMatchesBFS: with impassable edges, a vertex has a
// finite distance iff breadth-first search over the passable edges reaches it.
func TestCompute_ReachabilityMatchesBFS(t *testing.T) {
	t.Parallel()

	const threshold = 15
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(0, 20))},
			builder.RandomSparse(30, 0.08),
		)
		require.NoError(t, err)

		passable := bfs.WithFilterEdge(func(_ string, e core.Edge[string]) bool { return e.Weight < threshold })
		for _, src := range []string{"0", "7", "19"} {
			reach, err := bfs.Reach(g, src, passable)
			require.NoError(t, err)
			dist, _, err := dijkstra.Compute(g, src, dijkstra.WithInfEdgeThreshold(threshold))
			require.NoError(t, err)

			for _, v := range g.Vertices() {
				assert.Equal(t, reach.Reached(v), dist.Reachable(v), "seed=%d %s→%s", seed, src, v)
			}
		}
	}
}

// TestCompute_BidirectionalGrid: on a unit-weight lattice the distance from a
// corner is the Manhattan distance.
func TestCompute_BidirectionalGrid(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(5, 6))
	require.NoError(t, err)

	dist, _, err := dijkstra.Compute(g, "0,0")
	require.NoError(t, err)
	assert.Equal(t, 9.0, dist["4,5"])
	assert.Equal(t, 3.0, dist["2,1"])

	dist, _, err = dijkstra.Compute(g, "4,5")
	require.NoError(t, err)
	assert.Equal(t, 9.0, dist["0,0"])
}

func TestCompute_CycleWrapsAround(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle(5))
	require.NoError(t, err)

	dist, prev, err := dijkstra.Compute(g, "3")
	require.NoError(t, err)
	assert.Equal(t, 8.0, dist["2"])
	assert.Equal(t, []string{"3", "4", "0", "1", "2"}, dijkstra.ReconstructPath(prev, "3", "2"))
}
