package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolate points HOME at an empty directory so no real config is read.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"LIFEDASH_TIMEZONE", "LIFEDASH_SNAPSHOT", "LIFEDASH_LOG_USE_CASES", "LIFEDASH_COLOR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Empty(t, cfg.SnapshotPath)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad_ReadsFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
timezone: Europe/Berlin
snapshot: /tmp/life.yaml
log_use_cases: true
color: never
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())
	assert.Equal(t, "/tmp/life.yaml", cfg.SnapshotPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".lifedash.yaml"), []byte("color: always\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "timezone: Europe/Berlin\n")
	t.Setenv("LIFEDASH_TIMEZONE", "Asia/Tokyo")
	t.Setenv("LIFEDASH_LOG_USE_CASES", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config")
	})
	t.Run("bad timezone", func(t *testing.T) {
		_, err := Load(writeConfig(t, "timezone: Mars/Olympus\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timezone")
	})
	t.Run("bad color", func(t *testing.T) {
		_, err := Load(writeConfig(t, "color: sometimes\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid color mode")
	})
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "timezone: [\n"))
		require.Error(t, err)
	})
}
