package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "content-admin-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.False(t, cfg.App.IsProduction())

	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)

	assert.Equal(t, "sri_admin@domain.com", cfg.Superadmin.ProtectedEmail)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "2")
	t.Setenv("AUTH_COOKIE_NAME", "session")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "session", cfg.Auth.CookieName)
}

func TestTokenTTL_FallbackOnNonPositive(t *testing.T) {
	auth := AuthConfig{TokenTTLHours: 0}
	assert.Equal(t, 24*time.Hour, auth.TokenTTL())
}

func TestRequestTimeout(t *testing.T) {
	app := AppConfig{RequestTimeoutSeconds: 15}
	assert.Equal(t, 15*time.Second, app.RequestTimeout())

	app.RequestTimeoutSeconds = 0
	assert.Equal(t, time.Duration(0), app.RequestTimeout())
}
