package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Greater(t, cfg.MaxUploadBytes, int64(0))
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \":9000\"\ndashboard_user: analyst\n"), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", ":9100") // env wins over file

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Port)
	assert.Equal(t, "analyst", cfg.DashboardUser)
}

func TestLoadRateLimitEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("RATE_LIMIT", "30")
	t.Setenv("RATE_WINDOW_SECONDS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateWindowSeconds)
}

func TestLoadBadFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
