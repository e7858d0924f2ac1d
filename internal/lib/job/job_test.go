package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls []WelcomeEmailPayload
	err   error
}

func (f *fakeSender) SendWelcomeEmail(_ context.Context, to, name, discipline string) error {
	f.calls = append(f.calls, WelcomeEmailPayload{To: to, Name: name, Discipline: discipline})
	return f.err
}

func newTestService(sender WelcomeSender) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, sender: sender}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("a@x.com", "Alice", "Judo")
	require.NoError(t, err)

	assert.Equal(t, TaskWelcome, task.Type())

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, WelcomeEmailPayload{To: "a@x.com", Name: "Alice", Discipline: "Judo"}, p)
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	t.Run("Sends", func(t *testing.T) {
		sender := &fakeSender{}
		j := newTestService(sender)

		task, err := NewWelcomeEmailTask("a@x.com", "Alice", "Judo")
		require.NoError(t, err)

		require.NoError(t, j.handleWelcomeEmailTask(context.Background(), task))
		assert.Equal(t, []WelcomeEmailPayload{{To: "a@x.com", Name: "Alice", Discipline: "Judo"}}, sender.calls)
	})

	t.Run("SendFailureIsRetried", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("provider unavailable")}
		j := newTestService(sender)

		task, err := NewWelcomeEmailTask("a@x.com", "Alice", "Judo")
		require.NoError(t, err)

		err = j.handleWelcomeEmailTask(context.Background(), task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("BadPayloadSkipsRetry", func(t *testing.T) {
		sender := &fakeSender{}
		j := newTestService(sender)

		err := j.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
		assert.Empty(t, sender.calls)
	})

	t.Run("NoSenderSkipsRetry", func(t *testing.T) {
		j := newTestService(nil)

		task, err := NewWelcomeEmailTask("a@x.com", "Alice", "Judo")
		require.NoError(t, err)

		assert.ErrorIs(t, j.handleWelcomeEmailTask(context.Background(), task), asynq.SkipRetry)
	})
}

func TestEmailEnabled(t *testing.T) {
	var nilService *JobService
	assert.False(t, nilService.EmailEnabled())
	assert.False(t, newTestService(nil).EmailEnabled())
	assert.True(t, newTestService(&fakeSender{}).EmailEnabled())
}
