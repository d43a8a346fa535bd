// Package metrics exports shortest-path run statistics as Prometheus
// collectors. A Recorder consumes the Done event of each run; attach it with
// Recorder.Option.
package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/shortest/dijkstra"
)

// Run outcomes used as the "outcome" label of the runs counter.
const (
	OutcomeOK        = "ok"
	OutcomeBudget    = "budget_exhausted"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Recorder aggregates run statistics. All methods are safe for concurrent
// use, so one Recorder can serve every run of a ComputeMany batch.
type Recorder struct {
	runs        *prometheus.CounterVec
	pops        prometheus.Counter
	stale       prometheus.Counter
	finalized   prometheus.Counter
	relaxations prometheus.Counter
	duration    prometheus.Histogram
}

// NewRecorder creates the collectors under namespace/subsystem and registers
// them with reg (prometheus.DefaultRegisterer when nil).
func NewRecorder(reg prometheus.Registerer, namespace, subsystem string) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Shortest-path runs by outcome",
		}, []string{"outcome"}),
		pops:        counter("frontier_pops_total", "Entries taken off the frontier"),
		stale:       counter("frontier_stale_total", "Frontier pops discarded as stale"),
		finalized:   counter("vertices_finalized_total", "Vertices whose distance became final"),
		relaxations: counter("relaxations_total", "Edges that improved a distance"),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a run from start to done",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{r.runs, r.pops, r.stale, r.finalized, r.relaxations, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// Option returns a trace option feeding this recorder. It chains with any
// other WithTrace option.
func (r *Recorder) Option() dijkstra.Option {
	return dijkstra.WithTrace(r.Observe)
}

// Observe records the Done event of a run and ignores every other event.
// Runs rejected during validation emit no events and are not counted.
func (r *Recorder) Observe(ev dijkstra.Event) {
	if ev.Kind != dijkstra.EventDone {
		return
	}
	s := ev.Stats
	r.runs.WithLabelValues(Outcome(ev.Err)).Inc()
	r.pops.Add(float64(s.Pops))
	r.stale.Add(float64(s.Stale))
	r.finalized.Add(float64(s.Finalized))
	r.relaxations.Add(float64(s.Relaxations))
	r.duration.Observe(s.Elapsed.Seconds())
}

// Outcome classifies a run error into one of the Outcome* labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dijkstra.ErrBudgetExhausted):
		return OutcomeBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}
