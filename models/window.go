package models

// WindowKind distinguishes weekly recurring windows from date-bounded overrides.
type WindowKind string

const (
	WindowRecurring WindowKind = "recurring"
	WindowOverride  WindowKind = "override"
)

// AvailabilityWindow is a half-open [Start, End) interval of wall-clock
// minutes on one weekday. Recurring windows apply every week; override
// windows apply only between EffectiveFrom and EffectiveTo (inclusive,
// empty bound = open-ended) and fully supersede recurring windows for
// the dates they cover.
//
// An override with Closed set contributes no bookable interval but still
// counts as an override being present, so it suppresses the recurring
// default for that weekday ("explicitly closed").
type AvailabilityWindow struct {
	ID            string     `bson:"id" json:"id"`
	BusinessID    string     `bson:"business_id" json:"businessId"`
	EventID       string     `bson:"event_id" json:"eventId"`
	Weekday       int        `bson:"weekday" json:"weekday"` // ISO: 1 = Monday ... 7 = Sunday
	Start         int        `bson:"start" json:"start"`     // minutes from midnight, inclusive
	End           int        `bson:"end" json:"end"`         // minutes from midnight, exclusive
	Kind          WindowKind `bson:"kind" json:"kind"`
	Closed        bool       `bson:"closed,omitempty" json:"closed,omitempty"`
	EffectiveFrom string     `bson:"effective_from,omitempty" json:"effectiveFrom,omitempty"` // "2006-01-02"
	EffectiveTo   string     `bson:"effective_to,omitempty" json:"effectiveTo,omitempty"`     // "2006-01-02"
}

// Covers reports whether an override window's date range contains the
// given date. Recurring windows cover every date on their weekday.
// ISO "YYYY-MM-DD" strings compare correctly lexicographically.
func (w AvailabilityWindow) Covers(date string) bool {
	if w.Kind != WindowOverride {
		return true
	}
	if w.EffectiveFrom != "" && date < w.EffectiveFrom {
		return false
	}
	if w.EffectiveTo != "" && date > w.EffectiveTo {
		return false
	}
	return true
}
