package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesLeveledEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("pipeline started")
	logger.Warning("bad date cell")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO: pipeline started")
	assert.Contains(t, string(data), "WARNING: bad date cell")
}

func TestLoggerSubscribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	ch := logger.Subscribe()
	logger.Error("boom")

	select {
	case entry := <-ch:
		assert.Contains(t, entry, "ERROR: boom")
	case <-time.After(time.Second):
		t.Fatal("no log entry received")
	}
}

func TestLoggerRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	logger, err := NewLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("fill the log a little")
	require.NoError(t, logger.CheckRotate("1")) // 1 byte, forces rotation

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 2) // fresh log plus rotated file
}

func TestEvalSize(t *testing.T) {
	assert.Equal(t, int64(10*1024*1024), evalSize("10 * 1024 * 1024"))
	assert.Equal(t, int64(512), evalSize("512"))
}
