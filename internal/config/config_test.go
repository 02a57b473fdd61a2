package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1.5, cfg.BM25.K1)
	assert.Equal(t, 0.75, cfg.BM25.B)
	assert.Equal(t, 0.5, cfg.Fusion.Alpha)
	assert.Equal(t, 60, cfg.Fusion.RRFConstant)
	assert.Equal(t, 4, cfg.Chunk.MaxChunkSize)
	assert.Equal(t, 1, cfg.Chunk.Overlap)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().BM25, cfg.BM25)
}

func TestLoadOverlaysYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bm25:\n  k1: 2.0\n  b: 0.5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.BM25.K1)
	assert.Equal(t, 0.5, cfg.BM25.B)
	assert.Equal(t, 0.5, cfg.Fusion.Alpha, "unspecified sections keep their defaults")
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bm25:\n  k1: 2.0\n"), 0o644))

	t.Setenv("MOVIERETRIEVAL_BM25_K1", "9.0")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.BM25.K1)
}
