package eventRepo

import (
	"context"

	"slotwise/models"
)

// EventRepository provides read access to bookable event configuration.
// Events are immutable during a single scheduling computation; the
// scheduler only ever reads them.
type EventRepository interface {
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	ListActiveByBusiness(ctx context.Context, businessID string) ([]models.Event, error)
}
