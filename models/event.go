package models

// Event is a bookable sub-unit of a service: a fixed-duration offering
// with a post-slot buffer and the stride between candidate start times.
type Event struct {
	ID              string `bson:"id" json:"id"`
	BusinessID      string `bson:"business_id" json:"businessId"`
	ServiceID       string `bson:"service_id,omitempty" json:"serviceId,omitempty"`
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"duration_minutes" json:"durationMinutes"` // > 0
	BufferMinutes   int    `bson:"buffer_minutes" json:"bufferMinutes"`     // >= 0, blocked after the slot
	StrideMinutes   int    `bson:"stride_minutes" json:"strideMinutes"`     // > 0, step between candidate starts
	Active          bool   `bson:"active" json:"active"`
}
