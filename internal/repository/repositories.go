package repository

import (
	"github.com/deppfellow/gym-membership/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Member *MemberRepository
}

// NewRepositories builds every repository on top of the shared pool in s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Member: NewMemberRepository(s.DB.Pool),
	}
}
