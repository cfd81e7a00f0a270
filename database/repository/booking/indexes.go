package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the necessary indexes on the bookings collection.
// The partial unique index on (event_id, date, start) is the storage-side
// guarantee that two instances cannot both commit the same slot even if
// their in-process locks never meet.
func (r *mongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_event_date_start").
				SetPartialFilterExpression(bson.M{"status": "confirmed"}),
		},
		{
			Keys: bson.D{{Key: "idempotency_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_idempotency_key").
				SetPartialFilterExpression(bson.M{"idempotency_key": bson.M{"$exists": true, "$type": "string"}}),
		},
		// Ledger read pattern: confirmed bookings per event and date.
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("event_date_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "business_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("business_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
