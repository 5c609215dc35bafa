package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.Color)
	assert.Equal(t, 4096, cfg.ChunkSize)
	assert.Equal(t, "horspool", cfg.Algorithm)
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bmh.yaml")
	contents := "log_level: debug\nchunk_size: 8192\nalgorithm: turbo\ncolor: false\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8192, cfg.ChunkSize)
	assert.Equal(t, "turbo", cfg.Algorithm)
	assert.False(t, cfg.Color)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bmh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0600))

	t.Setenv("BMH_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bmh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsTinyChunkSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bmh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 1\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
