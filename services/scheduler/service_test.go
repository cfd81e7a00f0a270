package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"slotwise/database/repository"
	"slotwise/models"
)

// In-memory repository fakes. The booking fake mirrors the mongo
// implementation's overlap check so reservation races behave the same
// way they do against real storage.

type fakeEventRepo struct {
	events []models.Event
	err    error
}

func (f *fakeEventRepo) GetByID(_ context.Context, eventID string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.events {
		if f.events[i].ID == eventID {
			ev := f.events[i]
			return &ev, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEventRepo) ListActiveByBusiness(_ context.Context, businessID string) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, ev := range f.events {
		if ev.BusinessID == businessID && ev.Active {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeWindowRepo struct {
	mu      sync.Mutex
	byEvent map[string][]models.AvailabilityWindow
	err     error
}

func (f *fakeWindowRepo) ListByEvent(_ context.Context, eventID string) ([]models.AvailabilityWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AvailabilityWindow(nil), f.byEvent[eventID]...), nil
}

func (f *fakeWindowRepo) ReplaceForEvent(_ context.Context, eventID string, windows []models.AvailabilityWindow) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byEvent == nil {
		f.byEvent = make(map[string][]models.AvailabilityWindow)
	}
	f.byEvent[eventID] = append([]models.AvailabilityWindow(nil), windows...)
	return nil
}

type fakeBusinessRepo struct {
	businesses []models.Business
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, businessID string) (*models.Business, error) {
	for i := range f.businesses {
		if f.businesses[i].ID == businessID {
			b := f.businesses[i]
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) ListActiveByEventDate(_ context.Context, eventID, date string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.EventID == eventID && b.Date == date && b.Status == models.BookingConfirmed {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (f *fakeBookingRepo) ListByBusinessDate(_ context.Context, businessID, date string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BusinessID == businessID && b.Date == date && b.Status == models.BookingConfirmed {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, businessID, bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID && f.bookings[i].BusinessID == businessID {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookingRepo) GetByIdempotencyKey(_ context.Context, key string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].IdempotencyKey == key {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookingRepo) Reserve(_ context.Context, booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.EventID != booking.EventID || b.Date != booking.Date || b.Status != models.BookingConfirmed {
			continue
		}
		if booking.Start < b.OccupiedUntil && b.Start < booking.End {
			return repository.ErrConflict
		}
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, businessID, bookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.ID == bookingID && b.BusinessID == businessID && b.Status == models.BookingConfirmed {
			b.Status = models.BookingCancelled
			b.CancelledAt = &now
			return nil
		}
	}
	return repository.ErrNotFound
}

type capturedConfirmation struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
}

func (c *capturedConfirmation) EnqueueBookingConfirmed(_ context.Context, booking models.Booking) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.bookings = append(c.bookings, booking)
	return nil
}

type fixture struct {
	svc       *DefaultSchedulerService
	events    *fakeEventRepo
	windows   *fakeWindowRepo
	bookings  *fakeBookingRepo
	confirmed *capturedConfirmation
}

// newFixture builds a service around one business (Europe/Berlin) with
// one active event: 60 minute duration, 15 minute buffer, 60 minute
// stride, open Mondays 09:00-13:00.
func newFixture() *fixture {
	events := &fakeEventRepo{events: []models.Event{{
		ID:              "e1",
		BusinessID:      "b1",
		Name:            "Consultation",
		DurationMinutes: 60,
		BufferMinutes:   15,
		StrideMinutes:   60,
		Active:          true,
	}}}
	windows := &fakeWindowRepo{byEvent: map[string][]models.AvailabilityWindow{
		"e1": {recurring(1, 540, 780)},
	}}
	bookings := &fakeBookingRepo{}
	confirmed := &capturedConfirmation{}

	svc := &DefaultSchedulerService{
		Events:     events,
		Windows:    windows,
		Bookings:   bookings,
		Businesses: &fakeBusinessRepo{businesses: []models.Business{{
			ID:       "b1",
			Name:     "Test Clinic",
			Timezone: "Europe/Berlin",
		}}},
		Locks:         NewLockTable(),
		LockTimeout:   2 * time.Second,
		Confirmations: confirmed,
	}
	return &fixture{
		svc:       svc,
		events:    events,
		windows:   windows,
		bookings:  bookings,
		confirmed: confirmed,
	}
}
