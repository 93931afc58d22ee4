package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	path, err := Init(Options{Enabled: false})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = Close() })

	path, err := Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	Debug("slot table grown", "new_cap", 5)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"slot table grown"`)
	assert.Contains(t, string(data), `"new_cap":5`)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	old := filepath.Join(dir, "listctl-2026-01-01.log")
	recent := filepath.Join(dir, "listctl-2026-03-19.log")
	other := filepath.Join(dir, "notes-2020-01-01.log")
	for _, p := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.FileExists(t, other)
}
