package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.log")

	logger, cleanup, err := Setup(Config{
		Level:         "info",
		FilePath:      path,
		MaxSizeMB:     10,
		MaxFiles:      5,
		WriteToStderr: false,
	})
	require.NoError(t, err)
	defer cleanup()

	logger.Info("build complete", slog.Int("documents", 10))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(data[:len(data)-1], &line))
	assert.Equal(t, "build complete", line["msg"])
	assert.Equal(t, float64(10), line["documents"])
}

func TestSetupRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.log")

	logger, cleanup, err := Setup(Config{
		Level:         "warn",
		FilePath:      path,
		MaxSizeMB:     10,
		MaxFiles:      5,
		WriteToStderr: false,
	})
	require.NoError(t, err)
	defer cleanup()

	logger.Info("should be dropped")
	logger.Warn("should be kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.NotContains(t, content, "should be dropped")
	assert.Contains(t, content, "should be kept")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for input, want := range cases {
		assert.Equal(t, want, LevelFromString(input), "level %q", input)
	}
}

func TestDefaultConfigAndDebugConfig(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, "info", def.Level)
	assert.True(t, def.WriteToStderr)
	assert.True(t, strings.HasSuffix(def.FilePath, "engine.log"))

	debug := DebugConfig()
	assert.Equal(t, "debug", debug.Level)
}

func TestRotatingWriterRotatesOnSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.log")

	w, err := NewRotatingWriter(path, 0, 2) // maxSize 0 forces rotation on next write
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte("first line\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second line\n"))
	require.NoError(t, err)

	rotated := path + ".1"
	_, statErr := os.Stat(rotated)
	assert.NoError(t, statErr, "expected a rotated file to exist")
}

func TestEnsureLogDirAndDefaultPaths(t *testing.T) {
	require.NoError(t, EnsureLogDir())
	assert.True(t, strings.HasSuffix(DefaultLogPath(), filepath.Join("logs", "engine.log")))
}
