// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/gym-membership/internal/handler"
	"github.com/deppfellow/gym-membership/internal/middleware"
	"github.com/deppfellow/gym-membership/internal/server"
)

// NewRouter builds the Echo instance with the global middleware chain,
// the system routes and the member API.
//
// Order matters: the request ID must exist before the context logger is
// built, and the New Relic transaction must exist before it is enhanced.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limiter())
	}

	registerSystemRoutes(router, h)

	router.GET("/", handler.Home)
	registerMemberRoutes(router, h.Member)

	return router
}

// registerMemberRoutes wires the member API. The id guard is attached per
// route rather than on a sub-group: group middleware would register a
// catch-all that turns 405 responses into 404.
func registerMemberRoutes(r *echo.Echo, h *handler.MemberHandler) {
	members := r.Group("/members")
	requireID := middleware.RequireIntParam("id")

	members.POST("", handler.Handle(h.Handler, h.CreateMember, http.StatusCreated))
	members.GET("", handler.Handle(h.Handler, h.ListMembers, http.StatusOK))
	members.GET("/:id", handler.Handle(h.Handler, h.GetMember, http.StatusOK), requireID)
	members.PUT("/:id", handler.Handle(h.Handler, h.UpdateMember, http.StatusOK), requireID)
	members.DELETE("/:id", handler.Handle(h.Handler, h.DeleteMember, http.StatusOK), requireID)
}
