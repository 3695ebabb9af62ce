package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.API.Timeout)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "estate-admin-staged", cfg.Storage.BucketStaged)
	assert.Equal(t, 24*time.Hour, cfg.Uploads.StagingTTL)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
	assert.Empty(t, cfg.LogLevel)
}

func TestLoadEnvOverridesBaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ESTATE_ADMIN_API_BASEURL", "https://real-estate.example.com")
	t.Setenv("ESTATE_ADMIN_HTTP_PORT", "9090")
	t.Setenv("ESTATE_ADMIN_LOGLEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://real-estate.example.com", cfg.API.BaseURL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cfg := AppConfig{Environment: "production", API: APIConfig{BaseURL: "https://x"}}
	cfg.Session.Secret = "short"
	assert.Error(t, cfg.Validate())

	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())

	cfg.API.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
