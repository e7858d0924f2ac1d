package service

import (
	"github.com/deppfellow/gym-membership/internal/lib/job"
	"github.com/deppfellow/gym-membership/internal/repository"
	"github.com/deppfellow/gym-membership/internal/server"
)

type Services struct {
	Member *MemberService
	Job    *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var jobs TaskEnqueuer
	if s.Job.EmailEnabled() {
		jobs = s.Job
	}

	return &Services{
		Member: NewMemberService(repos.Member, jobs),
		Job:    s.Job,
	}, nil
}
