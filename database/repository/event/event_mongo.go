package eventRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/database"
	"slotwise/database/repository"
	"slotwise/models"
)

// mongoEventRepo implements EventRepository using MongoDB.
type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs an EventRepository bound to the events collection.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("slotwise")
	repo := &mongoEventRepo{coll: db.Collection("events")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *mongoEventRepo) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ev models.Event
	err := r.coll.FindOne(ctx, bson.M{"id": eventID}).Decode(&ev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("fetch event %s: %w", eventID, err)
	}
	return &ev, nil
}

func (r *mongoEventRepo) ListActiveByBusiness(ctx context.Context, businessID string) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("list events for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events for business %s: %w", businessID, err)
	}
	return events, nil
}
