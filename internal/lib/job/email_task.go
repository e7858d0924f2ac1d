package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the task type that routes to the welcome email handler.
	TaskWelcome = "email:welcome"
)

// WelcomeEmailPayload is serialized into the task stored in Redis.
type WelcomeEmailPayload struct {
	To         string `json:"to"`
	Name       string `json:"name"`
	Discipline string `json:"discipline"`
}

// NewWelcomeEmailTask builds the welcome email task: up to 3 retries on the
// default queue, 30 seconds per attempt.
func NewWelcomeEmailTask(to, name, discipline string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:         to,
		Name:       name,
		Discipline: discipline,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
