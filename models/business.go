package models

// Business is the tenant that owns services, events and bookings.
// Timezone is an IANA zone name; all scheduling math runs in that
// zone's wall-clock minutes and only boundary timestamps carry an offset.
type Business struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Timezone string `bson:"timezone" json:"timezone"` // e.g. "Europe/Berlin"
	Currency string `bson:"currency,omitempty" json:"currency,omitempty"`
}
