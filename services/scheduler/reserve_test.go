package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

func reserveReq(start int) ReserveRequest {
	return ReserveRequest{
		BusinessID:    "b1",
		EventID:       "e1",
		Date:          monday,
		Start:         start,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
	}
}

func TestReserveConfirmsAndDispatches(t *testing.T) {
	f := newFixture()

	booking, err := f.svc.Reserve(context.Background(), reserveReq(600))
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, 600, booking.Start)
	assert.Equal(t, 660, booking.End)
	assert.Equal(t, 675, booking.OccupiedUntil, "buffer extends the occupied interval")

	require.Len(t, f.confirmed.bookings, 1)
	assert.Equal(t, booking.ID, f.confirmed.bookings[0].ID)
}

func TestReserveRejectsNonCandidateStart(t *testing.T) {
	f := newFixture()

	// 09:30 is free time but not on the stride grid.
	_, err := f.svc.Reserve(context.Background(), reserveReq(570))
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// 12:30 would overrun the window.
	_, err = f.svc.Reserve(context.Background(), reserveReq(750))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestReserveClosedDay(t *testing.T) {
	f := newFixture()

	req := reserveReq(600)
	req.Date = "2026-03-03" // Tuesday, no windows
	_, err := f.svc.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestReserveConflictOnOccupiedSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Reserve(ctx, reserveReq(600))
	require.NoError(t, err)

	_, err = f.svc.Reserve(ctx, reserveReq(600))
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.False(t, IsValidation(err))
}

func TestReserveConflictInsideBuffer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Reserve(ctx, reserveReq(600))
	require.NoError(t, err)

	// 11:00 starts inside the 10:00 booking's buffer.
	_, err = f.svc.Reserve(ctx, reserveReq(660))
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// 09:00 ends exactly where the booking starts and stays bookable.
	_, err = f.svc.Reserve(ctx, reserveReq(540))
	require.NoError(t, err)
}

func TestReserveExclusivityUnderConcurrency(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Reserve(ctx, reserveReq(600))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var confirmed, conflicts int
	for err := range results {
		switch {
		case err == nil:
			confirmed++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, attempts-1, conflicts)

	// The winning slot is gone from the read path.
	slots, err := f.svc.Slots(ctx, "b1", "e1", monday, 0)
	require.NoError(t, err)
	assert.NotContains(t, slotStarts(slots), 600)
}

func TestReserveIdempotentRetry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := reserveReq(600)
	req.IdempotencyKey = "retry-1"

	first, err := f.svc.Reserve(ctx, req)
	require.NoError(t, err)
	second, err := f.svc.Reserve(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	active, err := f.bookings.ListActiveByEventDate(ctx, "e1", monday)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestReserveLockTimeoutIsRetryable(t *testing.T) {
	f := newFixture()
	f.svc.LockTimeout = 20 * time.Millisecond

	// Hold the per-event-date lock so the attempt cannot acquire it.
	require.True(t, f.svc.Locks.Acquire(context.Background(), "e1|"+monday, time.Second))
	defer f.svc.Locks.Release("e1|" + monday)

	_, err := f.svc.Reserve(context.Background(), reserveReq(600))
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsConflict(err))
}

func TestReserveValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := reserveReq(600)
	req.Date = "03/02/2026"
	_, err := f.svc.Reserve(ctx, req)
	assert.True(t, IsValidation(err))

	req = reserveReq(-30)
	_, err = f.svc.Reserve(ctx, req)
	assert.True(t, IsValidation(err))

	req = reserveReq(1500)
	_, err = f.svc.Reserve(ctx, req)
	assert.True(t, IsValidation(err))
}

func TestReserveInactiveEvent(t *testing.T) {
	f := newFixture()
	f.events.events[0].Active = false

	_, err := f.svc.Reserve(context.Background(), reserveReq(600))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestReserveEnqueueFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture()
	f.confirmed.err = assert.AnError

	booking, err := f.svc.Reserve(context.Background(), reserveReq(600))
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
}

func TestCancelFreesSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	booking, err := f.svc.Reserve(ctx, reserveReq(600))
	require.NoError(t, err)

	slots, err := f.svc.Slots(ctx, "b1", "e1", monday, 0)
	require.NoError(t, err)
	assert.NotContains(t, slotStarts(slots), 600)

	require.NoError(t, f.svc.Cancel(ctx, "b1", booking.ID))

	slots, err = f.svc.Slots(ctx, "b1", "e1", monday, 0)
	require.NoError(t, err)
	assert.Contains(t, slotStarts(slots), 600)
}

func TestCancelUnknownBooking(t *testing.T) {
	f := newFixture()

	err := f.svc.Cancel(context.Background(), "b1", "missing")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCancelTwice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	booking, err := f.svc.Reserve(ctx, reserveReq(600))
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(ctx, "b1", booking.ID))

	err = f.svc.Cancel(ctx, "b1", booking.ID)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCancelThenRebook(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	booking, err := f.svc.Reserve(ctx, reserveReq(600))
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(ctx, "b1", booking.ID))

	rebooked, err := f.svc.Reserve(ctx, reserveReq(600))
	require.NoError(t, err)
	assert.NotEqual(t, booking.ID, rebooked.ID)
}
