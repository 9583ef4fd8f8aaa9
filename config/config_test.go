package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dnswire.yaml")
	require.NoError(t, os.WriteFile(path, []byte("send_queries_per_second: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.SendQueriesPerSecond)
	assert.Equal(t, Default().MaxMessageSize, cfg.MaxMessageSize)
}

func TestLoadRejectsOversizedLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dnswire.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_message_size: 100000\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
