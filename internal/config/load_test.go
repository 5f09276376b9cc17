package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Environment-driven tests cannot run in parallel.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SHELFMARK_DATABASE_URL", "postgres://localhost:5432/shelfmark?sslmode=disable")
	t.Setenv("SHELFMARK_AUTH_JWT_SECRET", "test-jwt-secret-that-is-32-chars-long")
}

func TestLoad(t *testing.T) {
	t.Run("loads from environment with defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
		assert.False(t, cfg.Auth.RequireToken)
		assert.Equal(t, "postgres://localhost:5432/shelfmark?sslmode=disable", cfg.Database.URL)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SHELFMARK_SERVER_PORT", "9090")
		t.Setenv("SHELFMARK_SERVER_LOG_LEVEL", "debug")
		t.Setenv("SHELFMARK_AUTH_REQUIRE_TOKEN", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.True(t, cfg.Auth.RequireToken)
	})

	t.Run("missing database URL fails validation", func(t *testing.T) {
		t.Setenv("SHELFMARK_AUTH_JWT_SECRET", "test-jwt-secret-that-is-32-chars-long")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short JWT secret fails validation", func(t *testing.T) {
		t.Setenv("SHELFMARK_DATABASE_URL", "postgres://localhost:5432/shelfmark")
		t.Setenv("SHELFMARK_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SHELFMARK_SERVER_LOG_LEVEL", "loud")

		_, err := Load()
		assert.Error(t, err)
	})
}
