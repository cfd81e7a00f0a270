package scheduler

import "slotwise/models"

// Ledger is a read snapshot of the occupied intervals for one event on
// one date. It answers whether a candidate slot is free; it never
// mutates anything.
type Ledger struct {
	bookings []models.Booking
}

// NewLedger builds a ledger from the active bookings of an event/date.
// Cancelled bookings must already be filtered out by the repository.
func NewLedger(bookings []models.Booking) Ledger {
	return Ledger{bookings: bookings}
}

// IsFree reports whether the candidate slot intersects no occupied
// interval. The occupied end of an existing booking already includes
// that booking's post-slot buffer, so a candidate starting inside the
// buffer is rejected. The buffer blocks time strictly after a booking;
// a candidate ending exactly at an existing start stays free:
//
//	candidate.start < existing.occupiedUntil  AND
//	existing.start  < candidate.end
func (l Ledger) IsFree(s models.Slot) bool {
	for _, b := range l.bookings {
		if s.Start < b.OccupiedUntil && b.Start < s.End {
			return false
		}
	}
	return true
}
