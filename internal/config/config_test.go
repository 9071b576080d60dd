package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 18.0, cfg.RotationStep)
	assert.Equal(t, float32(500), cfg.Camera.ViewLength)
	assert.InDelta(t, 1.5, cfg.AspectRatio(), 1e-6)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	level, err := ParseLogLevel(cfg.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level: chatty\n"))
	assert.ErrorContains(t, err, "chatty")
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
  title: gate
rotation_step_degrees: 45
show_help: false
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "gate", cfg.Window.Title)
	assert.Equal(t, 45.0, cfg.RotationStep)
	assert.False(t, cfg.ShowHelp)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, float32(-1000), cfg.Camera.Near)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
camera:
  near: 10
  far: 5
rotation_step_degrees: 0
log_level: loud
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera.near")
	assert.Contains(t, err.Error(), "rotation_step_degrees")
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "window: [1, 2")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(EnvPath, "/tmp/x.yaml")
	assert.Equal(t, "/tmp/x.yaml", Path())
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "turnstile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
