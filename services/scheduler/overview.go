package scheduler

import (
	"context"
)

// Overview returns the calendar dates in [startDate, endDate] with at
// least one free slot for the event, ascending. The scan short-circuits
// per date: the first free candidate settles the date, and a date with
// no effective windows is skipped without touching the ledger. limit <= 0
// means no cap.
//
// The result can go stale the moment a concurrent booking commits;
// callers re-validate through Slots before reserving.
func (s *DefaultSchedulerService) Overview(ctx context.Context, businessID, eventID, startDate, endDate string, limit int) ([]string, error) {
	start, end, err := validateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	ev, err := s.resolveEvent(ctx, businessID, eventID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if dates, ok := s.Cache.GetOverview(ctx, ev.ID, startDate, endDate, limit); ok {
			return dates, nil
		}
	}

	windows, err := s.Windows.ListByEvent(ctx, ev.ID)
	if err != nil {
		return nil, &UnavailableError{Op: "list windows", Err: err}
	}

	dates := make([]string, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		effective, err := EffectiveWindows(windows, date)
		if err != nil {
			return nil, err
		}
		if len(effective) == 0 {
			continue // closed that day
		}

		bookings, err := s.Bookings.ListActiveByEventDate(ctx, ev.ID, date)
		if err != nil {
			return nil, &UnavailableError{Op: "list bookings", Err: err}
		}
		ledger := NewLedger(bookings)
		if _, ok := firstFreeSlot(effective, ev.DurationMinutes, ev.StrideMinutes, ledger); ok {
			dates = append(dates, date)
			if limit > 0 && len(dates) >= limit {
				break
			}
		}
	}

	if s.Cache != nil {
		s.Cache.SetOverview(ctx, ev.ID, startDate, endDate, limit, dates)
	}
	return dates, nil
}

// NextAvailable composes Overview with cap 1 and Slots on the winning
// date, taking its first entry. Keeping it a composition rather than a
// separate scan keeps "find next slot" and "list all slots" from ever
// disagreeing.
func (s *DefaultSchedulerService) NextAvailable(ctx context.Context, businessID, eventID, startDate, endDate string) (*NextSlot, error) {
	dates, err := s.Overview(ctx, businessID, eventID, startDate, endDate, 1)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}
	slots, err := s.Slots(ctx, businessID, eventID, dates[0], 0)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		// A concurrent booking consumed the date between the two reads.
		return nil, nil
	}
	return &NextSlot{Date: dates[0], Slot: slots[0]}, nil
}
