package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/shortest/dijkstra"
	"github.com/katalvlaran/shortest/metrics"
)

// Runtime is a Config turned into live objects: engine options, logger and,
// when enabled, a metrics recorder already included in Options.
type Runtime struct {
	Options  []dijkstra.Option
	Logger   *slog.Logger
	Recorder *metrics.Recorder // nil unless metrics are enabled
	Workers  int

	closer io.Closer
}

// Build validates c and assembles a Runtime. Recorder collectors are
// registered with reg (prometheus.DefaultRegisterer when nil).
func (c *Config) Build(reg prometheus.Registerer) (*Runtime, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log, closer, err := c.Log.Logger()
	if err != nil {
		return nil, fmt.Errorf("config: logger: %w", err)
	}

	rt := &Runtime{
		Logger:  log,
		Workers: c.Engine.Workers,
		closer:  closer,
	}
	rt.Options = append(c.Engine.Options(), dijkstra.WithLogger(log))

	if c.Metrics.Enabled {
		rec, err := metrics.NewRecorder(reg, c.Metrics.Namespace, c.Metrics.Subsystem)
		if err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("config: metrics: %w", err)
		}
		rt.Recorder = rec
		rt.Options = append(rt.Options, rec.Option())
	}

	return rt, nil
}

// Close releases the log file, if any.
func (r *Runtime) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}
