package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "./web", cfg.Site.Root)
	assert.Equal(t, "file", cfg.Site.DataMode)
	assert.Equal(t, "cookie", cfg.Store.Driver)
	assert.Equal(t, "chamber:visitor:", cfg.Redis.KeyPrefix)
	assert.InDelta(t, 9.0765, cfg.Weather.Lat, 1e-9)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "store:\n  driver: memory\n")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("WEATHER_API_KEY", "abcdef0123456789")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "abcdef0123456789", cfg.Weather.APIKey)
}

func TestLoad_InvalidDriver(t *testing.T) {
	path := writeConfig(t, "store:\n  driver: sqlite\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_HTTPModeNeedsBaseURL(t *testing.T) {
	path := writeConfig(t, "site:\n  data_mode: http\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site.base_url")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
