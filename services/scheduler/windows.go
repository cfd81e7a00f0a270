package scheduler

import (
	"context"

	"slotwise/models"
)

// EventWindows returns the configured window set for an event.
func (s *DefaultSchedulerService) EventWindows(ctx context.Context, businessID, eventID string) ([]models.AvailabilityWindow, error) {
	ev, err := s.resolveEvent(ctx, businessID, eventID)
	if err != nil {
		return nil, err
	}
	windows, err := s.Windows.ListByEvent(ctx, ev.ID)
	if err != nil {
		return nil, &UnavailableError{Op: "list windows", Err: err}
	}
	return windows, nil
}

// SetEventWindows validates and replaces the window set for an event.
// Callers are not required to pre-merge overlapping windows; the read
// path tolerates overlap. Structural errors are rejected here so the
// resolver only ever has to drop, never repair.
func (s *DefaultSchedulerService) SetEventWindows(ctx context.Context, businessID, eventID string, windows []models.AvailabilityWindow) error {
	ev, err := s.resolveEvent(ctx, businessID, eventID)
	if err != nil {
		return err
	}
	for _, w := range windows {
		if w.Weekday < 1 || w.Weekday > 7 {
			return newValidationError("weekday", "must be 1-7")
		}
		switch w.Kind {
		case models.WindowRecurring, models.WindowOverride:
		default:
			return newValidationError("kind", "must be recurring or override")
		}
		if w.Kind == models.WindowRecurring && w.Closed {
			return newValidationError("closed", "only override windows may be closed")
		}
		if !w.Closed && (w.Start < 0 || w.End > 24*60 || w.Start >= w.End) {
			return newValidationError("window", "start must precede end within the day")
		}
		if w.EffectiveFrom != "" {
			if _, err := weekdayOf(w.EffectiveFrom); err != nil {
				return newValidationError("effectiveFrom", "must be YYYY-MM-DD")
			}
		}
		if w.EffectiveTo != "" {
			if _, err := weekdayOf(w.EffectiveTo); err != nil {
				return newValidationError("effectiveTo", "must be YYYY-MM-DD")
			}
		}
		if w.EffectiveFrom != "" && w.EffectiveTo != "" && w.EffectiveTo < w.EffectiveFrom {
			return newValidationError("effectiveTo", "must not precede effectiveFrom")
		}
	}
	for i := range windows {
		windows[i].BusinessID = businessID
	}
	if err := s.Windows.ReplaceForEvent(ctx, ev.ID, windows); err != nil {
		return &UnavailableError{Op: "replace windows", Err: err}
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, ev.ID)
	}
	return nil
}
