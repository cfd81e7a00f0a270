package scheduler

import (
	"sort"

	"slotwise/models"
)

// CandidateSlots expands the effective windows of a date into the
// ordered set of candidate slots for the given duration and stride.
// Each window is stepped independently from its opening time; a
// candidate is kept only while start + duration fits inside the window,
// so no partial slot is ever produced. Overlapping windows may step
// onto the same start time, so results are de-duplicated by start
// before being returned.
func CandidateSlots(windows []models.AvailabilityWindow, durationMinutes, strideMinutes int) []models.Slot {
	seen := make(map[int]struct{})
	var slots []models.Slot

	for _, w := range windows {
		for start := w.Start; start+durationMinutes <= w.End; start += strideMinutes {
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}
			slots = append(slots, models.Slot{Start: start, End: start + durationMinutes})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	return slots
}

// firstFreeSlot reports whether at least one candidate in any window is
// free against the ledger, stopping at the first hit. The overview scan
// uses this instead of CandidateSlots so a date with an early free slot
// costs a single ledger probe. De-duplication is irrelevant here since
// acceptance is existence-based.
func firstFreeSlot(windows []models.AvailabilityWindow, durationMinutes, strideMinutes int, ledger Ledger) (models.Slot, bool) {
	for _, w := range windows {
		for start := w.Start; start+durationMinutes <= w.End; start += strideMinutes {
			s := models.Slot{Start: start, End: start + durationMinutes}
			if ledger.IsFree(s) {
				return s, true
			}
		}
	}
	return models.Slot{}, false
}
