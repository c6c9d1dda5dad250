// nolint: funlen
package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviedb/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		envVars := map[string]string{
			"APP_ENV":       "test",
			"PORT":          "8080",
			"SENTRY_DSN":    "https://test@sentry.io/123",
			"ALLOW_ORIGINS": "*",
			"RATE_LIMIT":    "50",
			"DB_NAME":       "movies",
			"DB_HOST":       "localhost",
			"DB_PORT":       "5432",
			"DB_USER":       "movies",
			"DB_PASS":       "secret",
			"ENABLE_SSL":    "true",
		}
		for key, value := range envVars {
			t.Setenv(key, value)
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "https://test@sentry.io/123", cfg.SentryDSN)
		assert.Equal(t, "*", cfg.AllowOrigins)
		assert.Equal(t, 50.0, cfg.RateLimit)
		assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
		assert.Equal(t, "movies", cfg.DB.Name)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, 5432, cfg.DB.Port)
		assert.Equal(t, "movies", cfg.DB.User)
		assert.Equal(t, "secret", cfg.DB.Pass)
		assert.True(t, cfg.DB.EnableSSL)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 20.0, cfg.RateLimit)
		assert.Equal(t, "movies", cfg.DynamoDB.MoviesTable)
		assert.Equal(t, "genres", cfg.DynamoDB.GenresTable)
		assert.Equal(t, "counters", cfg.DynamoDB.CountersTable)
	})

	t.Run("loads dynamodb settings", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "dynamodb")
		t.Setenv("DDB_REGION", "eu-west-1")
		t.Setenv("DDB_ENDPOINT", "http://localhost:8000")
		t.Setenv("DDB_MOVIES_TABLE", "movies-test")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, config.DriverDynamoDB, cfg.DB.Driver)
		assert.Equal(t, "eu-west-1", cfg.DynamoDB.Region)
		assert.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
		assert.Equal(t, "movies-test", cfg.DynamoDB.MoviesTable)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
	})

	t.Run("handles invalid port number", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles invalid boolean value", func(t *testing.T) {
		t.Setenv("ENABLE_SSL", "not-a-boolean")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})
}
