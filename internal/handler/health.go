package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/gym-membership/internal/middleware"
	"github.com/deppfellow/gym-membership/internal/server"
)

// dependencyCheck pings one dependency.
type dependencyCheck struct {
	// required checks turn the endpoint unhealthy when they fail.
	required bool
	ping     func(ctx context.Context) error
}

// HealthHandler reports whether the service and its dependencies are
// reachable, for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks map[string]dependencyCheck
}

// NewHealthHandler registers the checks enabled in
// observability.health_checks. Redis is only checked when configured and
// never fails the endpoint, since the member API works without it.
func NewHealthHandler(s *server.Server) *HealthHandler {
	obs := s.Config.Observability
	checks := make(map[string]dependencyCheck)

	if obs.HealthCheckEnabled("database") && s.DB != nil {
		checks["database"] = dependencyCheck{required: true, ping: s.DB.Ping}
	}

	if obs.HealthCheckEnabled("redis") && s.Redis != nil {
		checks["redis"] = dependencyCheck{ping: func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}}
	}

	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
	}
}

// CheckHealth returns 200 when every required check passes and 503
// otherwise, with per-dependency status and response time.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{}, len(h.checks))
	isHealthy := true

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		check := h.checks[name]

		ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		responseTime := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": responseTime.String(),
				"error":         err.Error(),
			}
			if check.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", name).
				Dur("response_time", responseTime).
				Msg("health check failed")

			h.recordFailure(map[string]interface{}{
				"check_type":       name,
				"operation":        "health_check",
				"error_type":       name + "_unhealthy",
				"response_time_ms": responseTime.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": responseTime.String(),
		}

		logger.Debug().
			Str("check", name).
			Dur("response_time", responseTime).
			Msg("health check passed")
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordFailure(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(attrs map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
