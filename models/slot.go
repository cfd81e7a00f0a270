package models

// Slot is a derived candidate bookable interval in minutes from
// midnight. Slots are computed on the fly and never persisted.
type Slot struct {
	Start int `json:"start"` // minutes from midnight
	End   int `json:"end"`   // Start + duration
}

// AvailableSlot is the boundary representation of a free slot: the raw
// minute interval plus the business-local timestamp with explicit UTC
// offset clients are expected to echo back when reserving.
type AvailableSlot struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Datetime string `json:"datetime"` // RFC3339 with the business zone offset
}
