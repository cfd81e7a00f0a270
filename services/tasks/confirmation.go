package tasks

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"slotwise/models"
)

const TypeBookingConfirmed = "booking:confirmed"

// NewBookingConfirmedTask builds the task enqueued after a reservation
// commits. The payload is the full booking so the worker needs no
// database round-trip.
func NewBookingConfirmedTask(booking models.Booking) (*asynq.Task, error) {
	b, err := json.Marshal(booking)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmed, b), nil
}

// Queue adapts an asynq client to the scheduler's ConfirmationQueue.
type Queue struct {
	Client *asynq.Client
}

func (q *Queue) EnqueueBookingConfirmed(ctx context.Context, booking models.Booking) error {
	task, err := NewBookingConfirmedTask(booking)
	if err != nil {
		return err
	}
	_, err = q.Client.EnqueueContext(ctx, task)
	return err
}
