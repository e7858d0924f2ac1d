package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GYM_PRIMARY.ENV", "local")
	t.Setenv("GYM_DATABASE.HOST", "localhost")
	t.Setenv("GYM_DATABASE.USER", "gym")
	t.Setenv("GYM_DATABASE.PASSWORD", "secret")
	t.Setenv("GYM_DATABASE.NAME", "gym")
}

func TestLoadConfig(t *testing.T) {
	t.Run("LoadConfig_Defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Primary.Env)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "gym", cfg.Database.User)
		assert.Equal(t, "secret", cfg.Database.Password)
		assert.Equal(t, "gym", cfg.Database.Name)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.False(t, cfg.Redis.Enabled())

		require.NotNil(t, cfg.Observability)
		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "local", cfg.Observability.Environment)
		assert.Equal(t, "info", cfg.Observability.Logging.Level)
		assert.False(t, cfg.Observability.NewRelicEnabled())
	})

	t.Run("LoadConfig_Overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("GYM_SERVER.PORT", "9000")
		t.Setenv("GYM_SERVER.CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
		t.Setenv("GYM_DATABASE.PORT", "6543")
		t.Setenv("GYM_REDIS.ADDRESS", "localhost:6379")
		t.Setenv("GYM_OBSERVABILITY.LOGGING.LEVEL", "debug")
		t.Setenv("GYM_OBSERVABILITY.LOGGING.SLOW_QUERY_THRESHOLD", "250ms")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
		assert.Equal(t, 6543, cfg.Database.Port)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, "debug", cfg.Observability.Logging.Level)
		assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
		// untouched observability keys keep their defaults
		assert.Equal(t, "json", cfg.Observability.Logging.Format)
		assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
	})

	t.Run("LoadConfig_MissingDatabaseHost", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("GYM_DATABASE.HOST", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("LoadConfig_PoolSizeOutOfRange", func(t *testing.T) {
		for _, key := range []string{"GYM_DATABASE.MAX_CONNS", "GYM_DATABASE.MIN_CONNS"} {
			t.Run(key, func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv(key, "2147483648")

				_, err := LoadConfig()
				assert.Error(t, err)
			})
		}
	})

	t.Run("LoadConfig_PoolSizeAtLimit", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("GYM_DATABASE.MAX_CONNS", "2147483647")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 2147483647, cfg.Database.MaxConns)
	})

	t.Run("LoadConfig_InvalidLogLevel", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("GYM_OBSERVABILITY.LOGGING.LEVEL", "verbose")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestObservabilityConfig(t *testing.T) {
	t.Run("GetLogLevel_FallsBackByEnvironment", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.Level = ""

		cfg.Environment = "production"
		assert.Equal(t, "info", cfg.GetLogLevel())

		cfg.Environment = "development"
		assert.Equal(t, "debug", cfg.GetLogLevel())

		cfg.Logging.Level = "warn"
		assert.Equal(t, "warn", cfg.GetLogLevel())
	})

	t.Run("Validate_RejectsNegativeThreshold", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.SlowQueryThreshold = -time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("Validate_RejectsUnknownFormat", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.Format = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("HealthCheckEnabled", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		assert.True(t, cfg.HealthCheckEnabled("database"))
		assert.False(t, cfg.HealthCheckEnabled("kafka"))

		cfg.HealthChecks.Enabled = false
		assert.False(t, cfg.HealthCheckEnabled("database"))
	})
}
