package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/database"
	"slotwise/database/repository"
	"slotwise/models"
)

// mongoBookingRepo implements BookingRepository using MongoDB.
type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository bound to the bookings collection.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("slotwise")
	repo := &mongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *mongoBookingRepo) ListActiveByEventDate(ctx context.Context, eventID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"event_id": eventID,
		"date":     date,
		"status":   models.BookingConfirmed,
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings for event %s on %s: %w", eventID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings for event %s on %s: %w", eventID, date, err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ListByBusinessDate(ctx context.Context, businessID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"date":        date,
		"status":      models.BookingConfirmed,
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings for business %s on %s: %w", businessID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings for business %s on %s: %w", businessID, date, err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, businessID, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": bookingID, "business_id": businessID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("fetch booking %s: %w", bookingID, err)
	}
	return &b, nil
}

func (r *mongoBookingRepo) GetByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("fetch booking by idempotency key: %w", err)
	}
	return &b, nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, businessID, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"id":          bookingID,
		"business_id": businessID,
		"status":      models.BookingConfirmed,
	}
	update := bson.M{
		"$set": bson.M{
			"status":       models.BookingCancelled,
			"cancelled_at": now,
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
