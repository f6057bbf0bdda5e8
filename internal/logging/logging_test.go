package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "promptsmith.log")

	logger, err := New(path, "info", false)
	require.NoError(t, err)

	logger.Info("prompt saved", zap.String("path", "/tmp/x.txt"))
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"prompt saved"`)
	assert.Contains(t, string(data), `"path":"/tmp/x.txt"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, err := New(path, "warn", true)
	require.NoError(t, err)

	logger.Debug("parse finished")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "parse finished")
}

func TestNewEmptyPathIsNop(t *testing.T) {
	logger, err := New("", "info", false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("discarded")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud", false)
	assert.ErrorContains(t, err, "invalid log level")
}
