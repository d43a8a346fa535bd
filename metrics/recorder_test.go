package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/dijkstra"
)

func fixture() *core.Graph[string] {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "C", 5)
	g.AddEdge("B", "D", 10)
	g.AddEdge("C", "E", 3)
	g.AddEdge("D", "F", 11)
	g.AddEdge("E", "D", 4)

	return g
}

func TestRecorder_CountsRun(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg, "test", "engine")
	require.NoError(t, err)

	_, _, err = dijkstra.Compute(fixture(), "A", r.Option())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.pops))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.stale))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.finalized))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.relaxations))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))

	n, err := testutil.GatherAndCount(reg, "test_engine_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_Outcomes(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg, "test", "")
	require.NoError(t, err)
	g := fixture()

	_, _, err = dijkstra.Compute(g, "A", r.Option(), dijkstra.WithMaxPops(1))
	require.ErrorIs(t, err, dijkstra.ErrBudgetExhausted)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = dijkstra.Compute(g, "A", r.Option(), dijkstra.WithContext(ctx))
	require.Error(t, err)

	// Validation failures never start a run.
	_, _, err = dijkstra.Compute(g, "nope", r.Option())
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeBudget)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeCancelled)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeOK)))
}

func TestRecorder_ComputeMany(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg, "many", "")
	require.NoError(t, err)

	g := fixture()
	_, err = dijkstra.ComputeMany(context.Background(), g, g.Vertices(), 3, r.Option())
	require.NoError(t, err)
	assert.Equal(t, float64(g.VertexCount()), testutil.ToFloat64(r.runs.WithLabelValues(OutcomeOK)))
}

func TestRecorder_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg, "dup", "")
	require.NoError(t, err)
	_, err = NewRecorder(reg, "dup", "")
	require.Error(t, err)

	var already prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &already))
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeBudget, Outcome(fmt.Errorf("x: %w", dijkstra.ErrBudgetExhausted)))
	assert.Equal(t, OutcomeCancelled, Outcome(context.DeadlineExceeded))
	assert.Equal(t, OutcomeError, Outcome(dijkstra.ErrNegativeWeight))
}
