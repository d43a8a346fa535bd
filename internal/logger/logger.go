// Package logger builds the *slog.Logger values handed to the engine through
// dijkstra.WithLogger. File output is rotated by lumberjack.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrInvalidConfig indicates an unknown level, format or output.
var ErrInvalidConfig = errors.New("logger: invalid config")

// DefaultFilePath is used when Output is "file" and FilePath is empty.
const DefaultFilePath = "logs/shortest.log"

// Config selects level, encoding and destination.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, stderr, file, discard
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New builds a logger from cfg. The returned Closer releases the rotated file
// for Output "file" and is a no-op otherwise.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch strings.ToLower(cfg.Output) {
	case "", "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	case "discard":
		w = io.Discard
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = DefaultFilePath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	default:
		return nil, nil, fmt.Errorf("%w: output %q", ErrInvalidConfig, cfg.Output)
	}

	l, err := NewWithWriter(w, cfg)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	return l, closer, nil
}

// NewWithWriter builds a logger writing to w; cfg.Output and the file
// settings are ignored.
func NewWithWriter(w io.Writer, cfg Config) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		h = slog.NewJSONHandler(w, opts)
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: format %q", ErrInvalidConfig, cfg.Format)
	}

	return slog.New(h), nil
}

// ParseLevel maps a level name to slog.Level. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: level %q", ErrInvalidConfig, s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
