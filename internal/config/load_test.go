package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so tests see a known
// baseline regardless of the host environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{envPort, envLogLevel, envDatabaseURL, envJWTSecret, envTokenLifetimeMinutes} {
		t.Setenv(env, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envDatabaseURL, "postgres://localhost:5432/cards")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/cards", cfg.Database.URL)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPort, "8080")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envDatabaseURL, "postgres://db:5432/cards")
	t.Setenv(envJWTSecret, "super-secret")
	t.Setenv(envTokenLifetimeMinutes, "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://db:5432/cards", cfg.Database.URL)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadMissingJWTSecretIsAccepted(t *testing.T) {
	clearEnv(t)
	t.Setenv(envDatabaseURL, "postgres://localhost:5432/cards")

	// The server must boot without a signing secret; login fails closed
	// at runtime instead.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.JWTSecret)
}
