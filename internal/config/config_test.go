package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("flags with defaults", func(t *testing.T) {
		conf, err := LoadConfig([]string{"-d", "postgres://localhost/bills", "-j", "secret"})
		require.NoError(t, err)

		assert.Equal(t, "localhost:8080", conf.RunAddress)
		assert.Equal(t, "postgres://localhost/bills", conf.DatabaseDSN)
		assert.Equal(t, "internal/db/migrations", conf.MigrationsDir)
		assert.Equal(t, DefaultConflictRetries, conf.ConflictRetries)
		assert.Equal(t, DefaultTokenTTL, conf.TokenTTL)
	})

	t.Run("env overrides flags", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://db/bills")
		t.Setenv("JWT_SECRET", "env-secret")
		t.Setenv("CONFLICT_RETRIES", "5")
		t.Setenv("TOKEN_TTL", "1h")

		conf, err := LoadConfig([]string{"-d", "postgres://localhost/bills", "-r", "2"})
		require.NoError(t, err)

		assert.Equal(t, "postgres://db/bills", conf.DatabaseDSN)
		assert.Equal(t, "env-secret", conf.JWTSecret)
		assert.Equal(t, 5, conf.ConflictRetries)
		assert.Equal(t, time.Hour, conf.TokenTTL)
	})

	t.Run("missing dsn", func(t *testing.T) {
		_, err := LoadConfig([]string{"-j", "secret"})
		require.Error(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := LoadConfig([]string{"-d", "postgres://localhost/bills"})
		require.Error(t, err)
	})

	t.Run("invalid retries", func(t *testing.T) {
		_, err := LoadConfig([]string{"-d", "postgres://localhost/bills", "-j", "secret", "-r", "0"})
		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := LoadConfig([]string{"-x"})
		require.Error(t, err)
	})
}
