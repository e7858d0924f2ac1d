package handler

import (
	"github.com/deppfellow/gym-membership/internal/server"
	"github.com/deppfellow/gym-membership/internal/service"
)

// Handlers groups all HTTP handlers so the router receives them as one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Member  *MemberHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Member:  NewMemberHandler(s, services.Member),
	}
}
