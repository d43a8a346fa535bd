package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/dijkstra"
)

func TestReconstructPath(t *testing.T) {
	t.Parallel()

	prev := dijkstra.PredecessorMap[string]{"B": "A", "C": "B", "D": "C"}

	tests := []struct {
		name           string
		prev           dijkstra.PredecessorMap[string]
		source, target string
		want           []string
	}{
		{"Chain", prev, "A", "D", []string{"A", "B", "C", "D"}},
		{"Reflexive", prev, "A", "A", []string{"A"}},
		{"ReflexiveIgnoresPrev", dijkstra.PredecessorMap[string]{"A": "B"}, "A", "A", []string{"A"}},
		{"ReflexiveNilMap", nil, "X", "X", []string{"X"}},
		{"NoPredecessor", prev, "A", "Z", []string{}},
		{"NilMap", nil, "A", "B", []string{}},
		{"WrongSource", prev, "Q", "D", []string{}},
		{"Cycle", dijkstra.PredecessorMap[string]{"B": "C", "C": "B"}, "A", "B", []string{}},
		{"SelfCycle", dijkstra.PredecessorMap[string]{"B": "B"}, "A", "B", []string{}},
		{"MidChainSource", prev, "B", "D", []string{"B", "C", "D"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := dijkstra.ReconstructPath(tc.prev, tc.source, tc.target)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResult_PathTo(t *testing.T) {
	t.Parallel()

	dist, prev, err := dijkstra.Compute(canonicalGraph(), "A")
	require.NoError(t, err)

	r := dijkstra.Result[string]{Source: "A", Dist: dist, Prev: prev}
	assert.Equal(t, []string{"A", "C", "E", "D", "F"}, r.PathTo("F"))
	assert.Equal(t, []string{"A"}, r.PathTo("A"))
}

func TestPathWeight(t *testing.T) {
	t.Parallel()

	g := canonicalGraph()

	w, err := dijkstra.PathWeight(g, []string{"A", "C", "E", "D"})
	require.NoError(t, err)
	assert.Equal(t, 9.0, w)

	w, err = dijkstra.PathWeight(g, []string{"B"})
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = dijkstra.PathWeight(g, nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptyPath)

	_, err = dijkstra.PathWeight(g, []string{"Z", "A"})
	assert.ErrorIs(t, err, dijkstra.ErrUnknownVertex)

	_, err = dijkstra.PathWeight(g, []string{"A", "D"})
	assert.ErrorIs(t, err, dijkstra.ErrNoEdge)

	var nilGraph *core.Graph[string]
	_, err = dijkstra.PathWeight(nilGraph, []string{"A"})
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// TestPathWeight_MatchesDistances: for every reachable target the
// reconstructed path starts at the source, ends at the target, and weighs
// exactly its distance.
func TestPathWeight_MatchesDistances(t *testing.T) {
	t.Parallel()

	g := canonicalGraph()
	for _, src := range g.Vertices() {
		dist, prev, err := dijkstra.Compute(g, src)
		require.NoError(t, err)

		for v, d := range dist {
			path := dijkstra.ReconstructPath(prev, src, v)
			if !dist.Reachable(v) {
				assert.Empty(t, path)
				continue
			}
			require.NotEmpty(t, path)
			assert.Equal(t, src, path[0])
			assert.Equal(t, v, path[len(path)-1])

			w, err := dijkstra.PathWeight(g, path)
			require.NoError(t, err)
			assert.Equal(t, d, w, "%s→%s", src, v)
		}
	}
}
