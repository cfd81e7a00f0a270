package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/database/repository"
	"slotwise/models"
)

// Reserve inserts the booking inside a session transaction that first
// re-checks the interval is free. The read and the insert commit as one
// unit, so a concurrent attempt for an overlapping interval either sees
// this booking or aborts on the unique (event_id, date, start) index.
// Checking freedom before inserting without the transaction would be the
// classic check-then-act race this method exists to close.
func (r *mongoBookingRepo) Reserve(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// A candidate slot collides with an existing occupied interval
		// when start < existing.occupied_until and existing.start <
		// candidate end. The buffer lives only in occupied_until.
		overlap := bson.M{
			"event_id":       booking.EventID,
			"date":           booking.Date,
			"status":         models.BookingConfirmed,
			"start":          bson.M{"$lt": booking.End},
			"occupied_until": bson.M{"$gt": booking.Start},
		}
		n, err := r.coll.CountDocuments(sc, overlap)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if n > 0 {
			return repository.ErrConflict
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return repository.ErrConflict
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
