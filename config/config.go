// Package config loads engine, logging and metrics settings from defaults,
// an optional YAML file and SHORTEST_* environment variables, and turns them
// into ready-to-use dijkstra options.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/shortest/dijkstra"
	"github.com/katalvlaran/shortest/internal/logger"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Engine  EngineConfig  `koanf:"engine"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// EngineConfig mirrors the dijkstra options. Nil pointers mean "unset".
type EngineConfig struct {
	MaxDistance      *float64 `koanf:"max_distance" validate:"omitempty,gte=0"`
	InfEdgeThreshold *float64 `koanf:"inf_edge_threshold" validate:"omitempty,gt=0"`
	MaxPops          int      `koanf:"max_pops" validate:"gte=0"`
	Workers          int      `koanf:"workers" validate:"gte=0"` // ComputeMany; 0 = GOMAXPROCS
}

// LogConfig selects the run-summary logger.
type LogConfig struct {
	Level      string `koanf:"level" validate:"oneof=debug info warn error"`
	Format     string `koanf:"format" validate:"oneof=json text"`
	Output     string `koanf:"output" validate:"oneof=stdout stderr file discard"`
	FilePath   string `koanf:"file_path" validate:"required_if=Output file"`
	MaxSize    int    `koanf:"max_size" validate:"gte=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAge     int    `koanf:"max_age" validate:"gte=0"`
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig enables the Prometheus recorder.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace" validate:"required_if=Enabled true"`
	Subsystem string `koanf:"subsystem"`
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the engine settings into dijkstra options. Unset values
// keep the engine defaults.
func (e EngineConfig) Options() []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithMaxPops(e.MaxPops)}
	if e.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*e.MaxDistance))
	}
	if e.InfEdgeThreshold != nil {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(*e.InfEdgeThreshold))
	}

	return opts
}

// Logger builds the configured logger. Close the returned Closer when done.
func (l LogConfig) Logger() (*slog.Logger, io.Closer, error) {
	return logger.New(logger.Config{
		Level:      l.Level,
		Format:     l.Format,
		Output:     l.Output,
		FilePath:   l.FilePath,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	})
}
