package scheduler

import (
	"time"

	"slotwise/models"
)

const dateLayout = "2006-01-02"

// isoWeekday maps time.Weekday onto ISO numbering: Monday = 1 ... Sunday = 7.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// weekdayOf returns the ISO weekday of a "YYYY-MM-DD" date string.
func weekdayOf(date string) (int, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, err
	}
	return isoWeekday(t.Weekday()), nil
}

// EffectiveWindows returns the windows in force for one event and date.
//
// Override windows whose date range covers the date fully supersede the
// recurring windows for that weekday: if any override is present, only
// the open override windows are returned, so an explicitly closed
// override yields an empty result instead of falling back to the weekly
// default. Windows with start >= end are malformed configuration and
// are dropped. An empty result means "closed that day", not an error.
func EffectiveWindows(windows []models.AvailabilityWindow, date string) ([]models.AvailabilityWindow, error) {
	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, newValidationError("date", "must be YYYY-MM-DD")
	}

	var recurring, overrides []models.AvailabilityWindow
	overridePresent := false
	for _, w := range windows {
		if w.Weekday != weekday {
			continue
		}
		switch w.Kind {
		case models.WindowOverride:
			if !w.Covers(date) {
				continue
			}
			overridePresent = true
			if !w.Closed && w.Start < w.End {
				overrides = append(overrides, w)
			}
		case models.WindowRecurring:
			if w.Start < w.End {
				recurring = append(recurring, w)
			}
		}
	}

	if overridePresent {
		return overrides, nil
	}
	return recurring, nil
}
