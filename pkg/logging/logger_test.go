package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateLoggerAsLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineup.log")
	logger, flush, err := CreateLoggerAsLocalFile(path, InfoLevel)
	require.NoError(t, err)

	logger.Debugf("hidden %d", 1)
	logger.Infof("visible %d", 2)
	require.NoError(t, flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible 2")
	require.NotContains(t, string(data), "hidden 1")
}

func TestCreateLoggerAsLocalFileEmptyPath(t *testing.T) {
	_, _, err := CreateLoggerAsLocalFile("", InfoLevel)
	require.Error(t, err)
}

func TestSetDefaultLoggerAndFlusher(t *testing.T) {
	origLogger, origFlusher := GetDefaultLogger(), GetDefaultFlusher()
	defer SetDefaultLoggerAndFlusher(origLogger, origFlusher)

	path := filepath.Join(t.TempDir(), "default.log")
	logger, flush, err := CreateLoggerAsLocalFile(path, DebugLevel)
	require.NoError(t, err)
	SetDefaultLoggerAndFlusher(logger, flush)

	Debugf("debug %s", "line")
	Error(nil)
	Cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "debug line")
	require.NotContains(t, string(data), "error occurs")
	require.Equal(t, "info", LogLevel())
}
