package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/gym-membership/internal/lib/job"
	"github.com/deppfellow/gym-membership/internal/model/member"
)

// MemberStore persists members. *repository.MemberRepository implements it.
type MemberStore interface {
	Create(ctx context.Context, details member.Details) error
	FetchAll(ctx context.Context) ([]member.Member, error)
	FetchOne(ctx context.Context, id int64) (member.Member, error)
	Update(ctx context.Context, id int64, details member.Details) error
	Delete(ctx context.Context, id int64) error
}

// TaskEnqueuer pushes background tasks. *job.JobService implements it.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// MemberService holds the member operations. Store errors are returned
// unchanged so the error handler can map them.
type MemberService struct {
	store MemberStore
	jobs  TaskEnqueuer
}

// NewMemberService builds the service. jobs may be nil, in which case no
// welcome email is queued.
func NewMemberService(store MemberStore, jobs TaskEnqueuer) *MemberService {
	return &MemberService{
		store: store,
		jobs:  jobs,
	}
}

// CreateMember stores a new member and queues the welcome email. The
// member is created even if queueing fails.
func (s *MemberService) CreateMember(ctx context.Context, details member.Details) error {
	if err := s.store.Create(ctx, details); err != nil {
		return err
	}

	s.enqueueWelcome(ctx, details)
	return nil
}

func (s *MemberService) ListMembers(ctx context.Context) ([]member.Member, error) {
	return s.store.FetchAll(ctx)
}

func (s *MemberService) GetMember(ctx context.Context, id int64) (member.Member, error) {
	return s.store.FetchOne(ctx, id)
}

func (s *MemberService) UpdateMember(ctx context.Context, id int64, details member.Details) error {
	return s.store.Update(ctx, id, details)
}

func (s *MemberService) DeleteMember(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *MemberService) enqueueWelcome(ctx context.Context, details member.Details) {
	if s.jobs == nil {
		return
	}

	logger := zerolog.Ctx(ctx)

	task, err := job.NewWelcomeEmailTask(details.Email, details.Name, details.Discipline)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build welcome email task")
		return
	}

	info, err := s.jobs.Enqueue(ctx, task)
	if err != nil {
		logger.Error().Err(err).Str("task", job.TaskWelcome).Msg("failed to enqueue welcome email")
		return
	}

	logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("welcome email enqueued")
}
