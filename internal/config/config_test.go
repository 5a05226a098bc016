package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestMustLoadPathAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "env: dev\nauth:\n  jwt_secret: s3cret\n")

	cfg := MustLoadPath(path)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Media.TokenTTL)
	assert.NotEmpty(t, cfg.Media.STUNServers)
	assert.Equal(t, "/room/", cfg.Lobby.RoomURL)
}

func TestMustLoadPathEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: postgres\n  dsn: from-file\n")
	t.Setenv("DB_DSN", "from-env")
	t.Setenv("DB_DRIVER", "memory")

	cfg := MustLoadPath(path)

	assert.Equal(t, "from-env", cfg.Database.DSN)
	assert.Equal(t, "memory", cfg.Database.Driver)
}

func TestMustLoadPathPanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}

func TestMustLoadPathZeroRateLimitFallsBack(t *testing.T) {
	path := writeConfig(t, "rate_limit:\n  per_second: 0\n")

	cfg := MustLoadPath(path)

	assert.Equal(t, uint(20), cfg.RateLimit.PerSecond)
}
