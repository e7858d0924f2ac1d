package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/gym-membership/internal/handler"
	"github.com/deppfellow/gym-membership/static"
)

// registerSystemRoutes registers the endpoints that are not part of the
// member API: health, the docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
