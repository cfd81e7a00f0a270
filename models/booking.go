package models

import "time"

// BookingStatus is the persisted lifecycle state of a booking. Only
// confirmed and cancelled bookings ever reach storage; a reservation
// attempt that loses the race leaves no record behind.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a confirmed reservation occupying [Start, OccupiedUntil) on
// one calendar date. End is the slot end (Start + duration); the buffer
// extends the occupied interval past it. Bookings are never mutated once
// confirmed; a change is a cancellation plus a new booking.
type Booking struct {
	ID             string        `bson:"id" json:"id"`
	BusinessID     string        `bson:"business_id" json:"businessId"`
	EventID        string        `bson:"event_id" json:"eventId"`
	Date           string        `bson:"date" json:"date"`   // "2006-01-02", business-local
	Start          int           `bson:"start" json:"start"` // minutes from midnight
	End            int           `bson:"end" json:"end"`     // Start + duration
	BufferMinutes  int           `bson:"buffer_minutes" json:"bufferMinutes"`
	OccupiedUntil  int           `bson:"occupied_until" json:"-"` // End + BufferMinutes, denormalized for overlap queries
	Status         BookingStatus `bson:"status" json:"status"`
	IdempotencyKey string        `bson:"idempotency_key,omitempty" json:"-"`
	CustomerName   string        `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	CustomerEmail  string        `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	CustomerPhone  string        `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	CreatedAt      time.Time     `bson:"created_at" json:"createdAt"`
	CancelledAt    *time.Time    `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}
