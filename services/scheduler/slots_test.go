package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

func slotStarts(slots []models.AvailableSlot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func TestSlotsEmptyDay(t *testing.T) {
	f := newFixture()

	// A Tuesday; the event is only open Mondays.
	slots, err := f.svc.Slots(context.Background(), "b1", "e1", "2026-03-03", 0)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlotsAllFree(t *testing.T) {
	f := newFixture()

	slots, err := f.svc.Slots(context.Background(), "b1", "e1", monday, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{540, 600, 660, 720}, slotStarts(slots))
}

func TestSlotsFilteredByBookingAndBuffer(t *testing.T) {
	f := newFixture()
	// 10:00-11:00 booked, buffer blocks until 11:15.
	f.bookings.bookings = append(f.bookings.bookings, models.Booking{
		ID: "bk1", BusinessID: "b1", EventID: "e1", Date: monday,
		Start: 600, End: 660, BufferMinutes: 15, OccupiedUntil: 675,
		Status: models.BookingConfirmed,
	})

	slots, err := f.svc.Slots(context.Background(), "b1", "e1", monday, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{540, 720}, slotStarts(slots))
}

func TestSlotsBusinessLocalDatetime(t *testing.T) {
	f := newFixture()

	slots, err := f.svc.Slots(context.Background(), "b1", "e1", monday, 0)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	// Berlin is on CET (+01:00) in early March.
	assert.Equal(t, "2026-03-02T09:00:00+01:00", slots[0].Datetime)
}

func TestSlotsSummerTimeOffset(t *testing.T) {
	f := newFixture()

	// 2026-07-06 is a Monday, well inside CEST.
	slots, err := f.svc.Slots(context.Background(), "b1", "e1", "2026-07-06", 0)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "2026-07-06T09:00:00+02:00", slots[0].Datetime)
}

func TestSlotsSpringForwardDay(t *testing.T) {
	f := newFixture()
	// Berlin skips 02:00-03:00 on 2026-03-29, a Sunday. Minutes-of-day
	// are wall-clock readings; minute 600 must render as 10:00, not be
	// shifted an hour by the missing interval before it.
	f.windows.byEvent["e1"] = []models.AvailabilityWindow{recurring(7, 540, 780)}

	slots, err := f.svc.Slots(context.Background(), "b1", "e1", "2026-03-29", 0)
	require.NoError(t, err)
	require.Equal(t, []int{540, 600, 660, 720}, slotStarts(slots))
	assert.Equal(t, "2026-03-29T09:00:00+02:00", slots[0].Datetime)
	assert.Equal(t, "2026-03-29T10:00:00+02:00", slots[1].Datetime)
}

func TestSlotsFallBackDay(t *testing.T) {
	f := newFixture()
	// Berlin repeats 02:00-03:00 on 2026-10-25, a Sunday.
	f.windows.byEvent["e1"] = []models.AvailabilityWindow{recurring(7, 540, 780)}

	slots, err := f.svc.Slots(context.Background(), "b1", "e1", "2026-10-25", 0)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "2026-10-25T09:00:00+01:00", slots[0].Datetime)
}

func TestSlotsDurationOverride(t *testing.T) {
	f := newFixture()

	// 120 minute variant against the 09:00-13:00 window, stride 60.
	slots, err := f.svc.Slots(context.Background(), "b1", "e1", monday, 120)
	require.NoError(t, err)
	assert.Equal(t, []int{540, 600, 660}, slotStarts(slots))
	for _, s := range slots {
		assert.Equal(t, s.Start+120, s.End)
	}
}

func TestSlotsCancelledBookingExcludedFromLedger(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = append(f.bookings.bookings, models.Booking{
		ID: "bk1", BusinessID: "b1", EventID: "e1", Date: monday,
		Start: 600, End: 660, OccupiedUntil: 675,
		Status: models.BookingCancelled,
	})

	slots, err := f.svc.Slots(context.Background(), "b1", "e1", monday, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{540, 600, 660, 720}, slotStarts(slots))
}

func TestSlotsInvalidDate(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Slots(context.Background(), "b1", "e1", "not-a-date", 0)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestListBookings(t *testing.T) {
	f := newFixture()
	f.bookings.bookings = append(f.bookings.bookings,
		models.Booking{ID: "bk2", BusinessID: "b1", EventID: "e1", Date: monday,
			Start: 660, End: 720, OccupiedUntil: 735, Status: models.BookingConfirmed},
		models.Booking{ID: "bk1", BusinessID: "b1", EventID: "e1", Date: monday,
			Start: 540, End: 600, OccupiedUntil: 615, Status: models.BookingConfirmed},
	)

	got, err := f.svc.ListBookings(context.Background(), "b1", monday)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bk1", got[0].ID)
	assert.Equal(t, "bk2", got[1].ID)
}
