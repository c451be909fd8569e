package storage

import (
	"CensusCleaning/src/config"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)
	logger.now = fixedClock

	logger.Info("loaded 3 files")
	logger.Log(WARNING, "2 duplicates")

	assert.Equal(t,
		"[2024-03-01 08:30:00] INFO: loaded 3 files\n"+
			"[2024-03-01 08:30:00] WARNING: 2 duplicates\n",
		buf.String())
}

func TestSubscribe(t *testing.T) {
	logger := NewWriterLogger(&bytes.Buffer{})
	logger.now = fixedClock
	ch := logger.Subscribe()

	logger.Error("boom")

	select {
	case msg := <-ch:
		assert.Equal(t, "[2024-03-01 08:30:00] ERROR: boom\n", msg)
	default:
		t.Fatal("subscriber received nothing")
	}

	require.NoError(t, logger.Close())
	_, ok := <-ch
	assert.False(t, ok)
}

func TestFileLoggerRotate(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "census_cleaning.log")

	logger, err := NewLogger(name)
	require.NoError(t, err)
	defer logger.Close()
	logger.now = fixedClock

	for i := 0; i < 10; i++ {
		logger.Debug("This is a log message")
	}

	cfg := config.Default()
	cfg.LogMaxSize = "1 * 64"
	require.NoError(t, logger.CheckRotate(cfg))

	_, err = os.Stat(filepath.Join(dir, "census_cleaning.20240301083000.log"))
	require.NoError(t, err)

	logger.Info("after rotation")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestEval(t *testing.T) {
	assert.Equal(t, int64(10*1024*1024), eval("10 * 1024 * 1024"))
	assert.Equal(t, int64(512), eval("512"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "FATAL", FATAL.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
