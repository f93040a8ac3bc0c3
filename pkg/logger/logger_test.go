package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/pkg/logger"
)

func TestSetupProductionWritesJSON(t *testing.T) {
	t.Cleanup(func() { logger.Setup(os.Stderr, "local", "info") })

	var buf bytes.Buffer
	logger.Setup(&buf, "production", "info")
	logger.Debug("hidden")
	logger.With("registry", "orders").Info("saved", "count", 2)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "saved", line["msg"])
	assert.Equal(t, "orders", line["registry"])
	assert.EqualValues(t, 2, line["count"])
}

func TestSetupDevWritesText(t *testing.T) {
	t.Cleanup(func() { logger.Setup(os.Stderr, "local", "info") })

	var buf bytes.Buffer
	logger.Setup(&buf, "local", "debug")
	logger.Debug("catalog loaded", "entries", 3)
	assert.Contains(t, buf.String(), `msg="catalog loaded" entries=3`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("nonsense"))
}
