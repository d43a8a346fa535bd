package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortest/internal/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("loud")
	require.ErrorIs(t, err, logger.ErrInvalidConfig)
}

func TestNewWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := logger.NewWithWriter(&buf, logger.Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("visible", slog.Int("pops", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.EqualValues(t, 3, rec["pops"])
}

func TestNewWithWriter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := logger.NewWithWriter(&buf, logger.Config{Level: "debug", Format: "text"})
	require.NoError(t, err)

	l.Debug("step", slog.String("vertex", "A"))
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "vertex=A")
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, _, err := logger.New(logger.Config{Output: "syslog"})
	require.ErrorIs(t, err, logger.ErrInvalidConfig)

	_, _, err = logger.New(logger.Config{Output: "discard", Format: "xml"})
	require.ErrorIs(t, err, logger.ErrInvalidConfig)

	_, _, err = logger.New(logger.Config{Output: "discard", Level: "loud"})
	require.ErrorIs(t, err, logger.ErrInvalidConfig)
}

func TestNew_StdStreams(t *testing.T) {
	t.Parallel()

	for _, out := range []string{"", "stdout", "stderr", "discard"} {
		l, c, err := logger.New(logger.Config{Output: out})
		require.NoError(t, err, out)
		assert.NotNil(t, l)
		assert.NoError(t, c.Close())
	}
}

func TestNew_FileOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "run.log")
	l, c, err := logger.New(logger.Config{
		Level:      "info",
		Format:     "json",
		Output:     "file",
		FilePath:   path,
		MaxSize:    1,
		MaxBackups: 1,
	})
	require.NoError(t, err)

	l.Info("written to file")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
