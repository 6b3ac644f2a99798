package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"fleetdispatch/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(raw), raw)
	}
}

func TestSetupWriter(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("json by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.SetupWriter(&buf, "INFO", "")

		logger.Info("task created", "task_id", "T1")
		logger.Debug("dropped")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "task created", entry["msg"])
		assert.Equal(t, "T1", entry["task_id"])
		assert.NotContains(t, buf.String(), "dropped")
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.SetupWriter(&buf, "DEBUG", "text")

		logger.Debug("resolving", "kind", "Robot")
		assert.Contains(t, buf.String(), "kind=Robot")
	})
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
	assert.NotNil(t, logging.FromContext(context.Background()))
}
