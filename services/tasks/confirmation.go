package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"chaletbook/models"

	"github.com/hibiken/asynq"
)

const TypeConfirmationSend = "confirmation:send"

// NewConfirmationTask builds the queued task for a booking confirmation.
func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConfirmationSend, b), nil
}

// Enqueuer submits confirmation tasks to the queue. It satisfies the booking
// flow's ConfirmationEnqueuer.
type Enqueuer struct {
	Client *asynq.Client
}

func (e *Enqueuer) EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	task, err := NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := e.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}
