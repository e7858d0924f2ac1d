package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/gym-membership/internal/config"
	"github.com/deppfellow/gym-membership/internal/server"
)

func newHealthHandler(checks map[string]dependencyCheck) *HealthHandler {
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
	}
	return &HealthHandler{Handler: NewHandler(s), checks: checks}
}

func checkHealth(t *testing.T, h *HealthHandler) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, h.CheckHealth(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func ok(context.Context) error { return nil }

func failing(context.Context) error { return errors.New("connection refused") }

func TestCheckHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		code, body := checkHealth(t, newHealthHandler(map[string]dependencyCheck{
			"database": {required: true, ping: ok},
			"redis":    {ping: ok},
		}))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "test", body["environment"])

		checks := body["checks"].(map[string]any)
		assert.Equal(t, "healthy", checks["database"].(map[string]any)["status"])
		assert.Equal(t, "healthy", checks["redis"].(map[string]any)["status"])
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		code, body := checkHealth(t, newHealthHandler(map[string]dependencyCheck{
			"database": {required: true, ping: failing},
		}))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", body["status"])

		database := body["checks"].(map[string]any)["database"].(map[string]any)
		assert.Equal(t, "connection refused", database["error"])
	})

	t.Run("RedisDownIsReportedOnly", func(t *testing.T) {
		code, body := checkHealth(t, newHealthHandler(map[string]dependencyCheck{
			"database": {required: true, ping: ok},
			"redis":    {ping: failing},
		}))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "unhealthy", body["checks"].(map[string]any)["redis"].(map[string]any)["status"])
	})

	t.Run("ChecksSeeTheTimeout", func(t *testing.T) {
		var deadlineSet bool
		_, _ = checkHealth(t, newHealthHandler(map[string]dependencyCheck{
			"database": {required: true, ping: func(ctx context.Context) error {
				_, deadlineSet = ctx.Deadline()
				return nil
			}},
		}))

		assert.True(t, deadlineSet)
	})
}
