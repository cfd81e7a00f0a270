package scheduler

import (
	"context"

	"slotwise/models"
)

// Slots returns every free slot for one date, ascending, formatted with
// the business-local offset. durationOverride, when positive, replaces
// the event's configured duration for this computation (the caller asked
// for a longer or shorter variant of the same event); stride and buffer
// always come from the event.
func (s *DefaultSchedulerService) Slots(ctx context.Context, businessID, eventID, date string, durationOverride int) ([]models.AvailableSlot, error) {
	if durationOverride < 0 {
		return nil, newValidationError("duration", "must be positive")
	}
	ev, err := s.resolveEvent(ctx, businessID, eventID)
	if err != nil {
		return nil, err
	}
	loc, err := s.businessZone(ctx, businessID)
	if err != nil {
		return nil, err
	}

	duration := ev.DurationMinutes
	if durationOverride > 0 {
		duration = durationOverride
	}

	if s.Cache != nil && durationOverride == 0 {
		if slots, ok := s.Cache.GetSlots(ctx, ev.ID, date); ok {
			return slots, nil
		}
	}

	windows, err := s.Windows.ListByEvent(ctx, ev.ID)
	if err != nil {
		return nil, &UnavailableError{Op: "list windows", Err: err}
	}
	effective, err := EffectiveWindows(windows, date)
	if err != nil {
		return nil, err
	}

	free := make([]models.AvailableSlot, 0)
	if len(effective) == 0 {
		return free, nil
	}

	bookings, err := s.Bookings.ListActiveByEventDate(ctx, ev.ID, date)
	if err != nil {
		return nil, &UnavailableError{Op: "list bookings", Err: err}
	}
	ledger := NewLedger(bookings)

	for _, candidate := range CandidateSlots(effective, duration, ev.StrideMinutes) {
		if !ledger.IsFree(candidate) {
			continue
		}
		free = append(free, models.AvailableSlot{
			Start:    candidate.Start,
			End:      candidate.End,
			Datetime: localDatetime(date, candidate.Start, loc),
		})
	}

	if s.Cache != nil && durationOverride == 0 {
		s.Cache.SetSlots(ctx, ev.ID, date, free)
	}
	return free, nil
}

// ListBookings returns the confirmed bookings of a business for one
// date, the ledger view the dashboard renders.
func (s *DefaultSchedulerService) ListBookings(ctx context.Context, businessID, date string) ([]models.Booking, error) {
	if _, err := weekdayOf(date); err != nil {
		return nil, newValidationError("date", "must be YYYY-MM-DD")
	}
	bookings, err := s.Bookings.ListByBusinessDate(ctx, businessID, date)
	if err != nil {
		return nil, &UnavailableError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}
