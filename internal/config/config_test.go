package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	t.Setenv("PROMPTSMITH_CONFIG_DIR", t.TempDir())

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "generated_prompt.txt", cfg.DefaultFileName)
	assert.False(t, cfg.IncludeMarkers)
	assert.True(t, cfg.Library.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 80, cfg.Preview.WordWrap)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `output_dir: /tmp/prompts
include_markers: true
parse:
  strict_headings: true
library:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/prompts", cfg.OutputDir)
	assert.True(t, cfg.IncludeMarkers)
	assert.True(t, cfg.Parse.StrictHeadings)
	assert.False(t, cfg.Parse.DistributeParagraphs)
	assert.False(t, cfg.Library.Enabled)
	// untouched keys keep their defaults
	assert.Equal(t, "generated_prompt.txt", cfg.DefaultFileName)
}

func TestLoadFileEnvOverrides(t *testing.T) {
	t.Setenv("PROMPTSMITH_OUTPUT_DIR", "/srv/out")
	t.Setenv("PROMPTSMITH_INCLUDE_MARKERS", "true")
	t.Setenv("PROMPTSMITH_LOG_LEVEL", "debug")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/srv/out", cfg.OutputDir)
	assert.True(t, cfg.IncludeMarkers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileBadEnvBool(t *testing.T) {
	t.Setenv("PROMPTSMITH_LIBRARY_ENABLED", "maybe")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "PROMPTSMITH_LIBRARY_ENABLED")
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parse: [unclosed"), 0600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMPTSMITH_CONFIG_DIR", dir)

	cfg := DefaultConfig()
	cfg.TargetModel = "claude-3-5-sonnet"
	cfg.Parse.DistributeParagraphs = true
	require.NoError(t, cfg.Save())
	assert.True(t, Exists())

	info, err := os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
