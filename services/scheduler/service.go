package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotwise/database/repository"
	bookingRepo "slotwise/database/repository/booking"
	businessRepo "slotwise/database/repository/business"
	eventRepo "slotwise/database/repository/event"
	windowRepo "slotwise/database/repository/window"
	"slotwise/models"
)

// maxRangeDays caps the overview date range so a single request cannot
// fan out into an unbounded scan.
const maxRangeDays = 92

// NextSlot is the result of the first-available-slot composition: the
// winning date plus its earliest free slot.
type NextSlot struct {
	Date string               `json:"date"`
	Slot models.AvailableSlot `json:"slot"`
}

// ReserveRequest carries one reservation attempt.
type ReserveRequest struct {
	BusinessID     string
	EventID        string
	Date           string
	Start          int // minutes from midnight, must equal a candidate slot start
	IdempotencyKey string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
}

// ConfirmationQueue dispatches follow-up work for a confirmed booking
// (notifications, receipts). Enqueue failures must not fail the booking.
type ConfirmationQueue interface {
	EnqueueBookingConfirmed(ctx context.Context, booking models.Booking) error
}

// SchedulerService is the scheduling boundary consumed by the HTTP
// layer. Read methods are pure over a snapshot of configuration and
// bookings and are safe to call concurrently; Reserve is the single
// mutation point.
type SchedulerService interface {
	Overview(ctx context.Context, businessID, eventID, startDate, endDate string, limit int) ([]string, error)
	Slots(ctx context.Context, businessID, eventID, date string, durationOverride int) ([]models.AvailableSlot, error)
	NextAvailable(ctx context.Context, businessID, eventID, startDate, endDate string) (*NextSlot, error)
	Reserve(ctx context.Context, req ReserveRequest) (*models.Booking, error)
	Cancel(ctx context.Context, businessID, bookingID string) error
	ListBookings(ctx context.Context, businessID, date string) ([]models.Booking, error)
	EventWindows(ctx context.Context, businessID, eventID string) ([]models.AvailabilityWindow, error)
	SetEventWindows(ctx context.Context, businessID, eventID string, windows []models.AvailabilityWindow) error
}

// DefaultSchedulerService is the production implementation.
type DefaultSchedulerService struct {
	Events     eventRepo.EventRepository
	Windows    windowRepo.WindowRepository
	Bookings   bookingRepo.BookingRepository
	Businesses businessRepo.BusinessRepository

	Cache         *AvailabilityCache // nil disables caching
	Locks         *LockTable
	LockTimeout   time.Duration
	Confirmations ConfirmationQueue // nil disables dispatch
}

// resolveEvent loads and checks the event a query targets. When the
// caller omits eventId and the business has exactly one active event,
// that event is used.
func (s *DefaultSchedulerService) resolveEvent(ctx context.Context, businessID, eventID string) (*models.Event, error) {
	if eventID == "" {
		events, err := s.Events.ListActiveByBusiness(ctx, businessID)
		if err != nil {
			return nil, &UnavailableError{Op: "list events", Err: err}
		}
		if len(events) == 0 {
			return nil, newValidationError("eventId", "business has no active events")
		}
		if len(events) > 1 {
			return nil, newValidationError("eventId", "required when business has multiple events")
		}
		return &events[0], nil
	}

	ev, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newValidationError("eventId", "unknown event")
		}
		return nil, &UnavailableError{Op: "fetch event", Err: err}
	}
	if ev.BusinessID != businessID {
		return nil, newValidationError("eventId", "does not belong to business")
	}
	if !ev.Active {
		return nil, newValidationError("eventId", "event is inactive")
	}
	if ev.DurationMinutes <= 0 {
		return nil, newValidationError("event", "duration must be positive")
	}
	if ev.StrideMinutes <= 0 {
		return nil, newValidationError("event", "stride must be positive")
	}
	if ev.BufferMinutes < 0 {
		return nil, newValidationError("event", "buffer must not be negative")
	}
	return ev, nil
}

// businessZone loads the tenant's IANA zone for boundary formatting.
func (s *DefaultSchedulerService) businessZone(ctx context.Context, businessID string) (*time.Location, error) {
	biz, err := s.Businesses.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newValidationError("businessId", "unknown business")
		}
		return nil, &UnavailableError{Op: "fetch business", Err: err}
	}
	loc, err := time.LoadLocation(biz.Timezone)
	if err != nil {
		return nil, fmt.Errorf("business %s has invalid timezone %q: %w", businessID, biz.Timezone, err)
	}
	return loc, nil
}

// validateRange parses and bounds-checks an inclusive date range.
func validateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("startDate", "must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("endDate", "must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, newValidationError("endDate", "must not precede startDate")
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, newValidationError("endDate", fmt.Sprintf("range must not exceed %d days", maxRangeDays))
	}
	return start, end, nil
}

// localDatetime formats a minutes-of-day value on a date as RFC3339 with
// the business-local offset, the only timestamp shape that crosses the
// API boundary. The instant is built from wall-clock components rather
// than duration addition from midnight: on a DST transition day the two
// disagree by the shifted hour, and minutes-of-day values are wall-clock
// readings.
func localDatetime(date string, minutes int, loc *time.Location) string {
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return ""
	}
	t := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc)
	return t.Format(time.RFC3339)
}
