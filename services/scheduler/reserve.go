package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotwise/database/repository"
	"slotwise/models"
	"slotwise/utils"
)

// Reserve commits a chosen free slot as a durable booking with
// at-most-one-winner semantics. Attempts for the same (event, date) are
// serialized through the lock table, and the repository re-checks
// freedom inside the same transaction that inserts the booking, so the
// unique index closes the race across processes too. A retried request
// carrying the same idempotency key gets its original booking back.
func (s *DefaultSchedulerService) Reserve(ctx context.Context, req ReserveRequest) (*models.Booking, error) {
	if _, err := weekdayOf(req.Date); err != nil {
		return nil, newValidationError("date", "must be YYYY-MM-DD")
	}
	if req.Start < 0 || req.Start >= 24*60 {
		return nil, newValidationError("start", "must be minutes within the day")
	}
	ev, err := s.resolveEvent(ctx, req.BusinessID, req.EventID)
	if err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" {
		existing, err := s.Bookings.GetByIdempotencyKey(ctx, req.IdempotencyKey)
		switch {
		case err == nil:
			return existing, nil
		case errors.Is(err, repository.ErrNotFound):
			// first attempt with this key
		default:
			return nil, &UnavailableError{Op: "idempotency lookup", Err: err}
		}
	}

	lockKey := ev.ID + "|" + req.Date
	if !s.Locks.Acquire(ctx, lockKey, s.LockTimeout) {
		return nil, &UnavailableError{Op: "acquire reservation lock", Err: context.DeadlineExceeded}
	}
	defer s.Locks.Release(lockKey)

	windows, err := s.Windows.ListByEvent(ctx, ev.ID)
	if err != nil {
		return nil, &UnavailableError{Op: "list windows", Err: err}
	}
	effective, err := EffectiveWindows(windows, req.Date)
	if err != nil {
		return nil, err
	}
	if !isCandidateStart(effective, ev, req.Start) {
		return nil, newValidationError("start", "is not a bookable slot start for this date")
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		BusinessID:     req.BusinessID,
		EventID:        ev.ID,
		Date:           req.Date,
		Start:          req.Start,
		End:            req.Start + ev.DurationMinutes,
		BufferMinutes:  ev.BufferMinutes,
		OccupiedUntil:  req.Start + ev.DurationMinutes + ev.BufferMinutes,
		Status:         models.BookingConfirmed,
		IdempotencyKey: req.IdempotencyKey,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		CreatedAt:      time.Now(),
	}

	if err := s.Bookings.Reserve(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, &ConflictError{EventID: ev.ID, Date: req.Date, Start: req.Start}
		}
		return nil, &UnavailableError{Op: "reserve booking", Err: err}
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, ev.ID)
	}
	if s.Confirmations != nil {
		if err := s.Confirmations.EnqueueBookingConfirmed(ctx, *booking); err != nil {
			utils.GetLogger().Warn("failed to enqueue booking confirmation",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	return booking, nil
}

// Cancel transitions a confirmed booking to cancelled. The freed
// interval becomes visible to queries immediately.
func (s *DefaultSchedulerService) Cancel(ctx context.Context, businessID, bookingID string) error {
	booking, err := s.Bookings.GetByID(ctx, businessID, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newValidationError("bookingId", "unknown booking")
		}
		return &UnavailableError{Op: "fetch booking", Err: err}
	}
	if err := s.Bookings.Cancel(ctx, businessID, bookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newValidationError("bookingId", "booking is not cancellable")
		}
		return &UnavailableError{Op: "cancel booking", Err: err}
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, booking.EventID)
	}
	return nil
}

// isCandidateStart checks that start is one of the generated candidate
// starts for the date, so a client cannot reserve an arbitrary minute
// that merely happens to be free.
func isCandidateStart(windows []models.AvailabilityWindow, ev *models.Event, start int) bool {
	for _, w := range windows {
		for c := w.Start; c+ev.DurationMinutes <= w.End; c += ev.StrideMinutes {
			if c == start {
				return true
			}
			if c > start {
				break
			}
		}
	}
	return false
}
