package bookingRepo

import (
	"context"

	"slotwise/models"
)

// BookingRepository is the ledger of reserved intervals. Reads feed the
// availability filter; Reserve is the single mutation point and must
// observe the overlap re-check and the insert atomically.
type BookingRepository interface {
	// ListActiveByEventDate returns all confirmed bookings for one event
	// on one calendar date, ordered by start time.
	ListActiveByEventDate(ctx context.Context, eventID, date string) ([]models.Booking, error)
	ListByBusinessDate(ctx context.Context, businessID, date string) ([]models.Booking, error)
	GetByID(ctx context.Context, businessID, bookingID string) (*models.Booking, error)
	// GetByIdempotencyKey returns the booking previously created with the
	// given key, or repository.ErrNotFound.
	GetByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error)
	// Reserve atomically re-checks that the booking's occupied interval
	// is free and inserts it. Returns repository.ErrConflict when another
	// booking already occupies an overlapping interval.
	Reserve(ctx context.Context, booking *models.Booking) error
	// Cancel transitions a confirmed booking to cancelled, freeing its
	// interval for subsequent queries immediately.
	Cancel(ctx context.Context, businessID, bookingID string) error
}
