package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Info("snapshot loaded", "source", "builtin")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "snapshot loaded", rec["msg"])
	assert.Equal(t, "builtin", rec["source"])

	_, err := uuid.Parse(rec["run_id"].(string))
	assert.NoError(t, err)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Debug("state set")
	assert.Zero(t, buf.Len())
}

func TestSetupWritesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "snowin.log")
	logger, closer, err := Setup(path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger, closer, err := Setup("", slog.LevelDebug)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestSetupBadPath(t *testing.T) {
	_, _, err := Setup(filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo)
	assert.ErrorContains(t, err, "open log file")
}
