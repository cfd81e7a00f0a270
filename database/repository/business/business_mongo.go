package businessRepo

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

// mongoBusinessRepo implements BusinessRepository using MongoDB.
type mongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo constructs a BusinessRepository bound to the businesses collection.
func NewMongoBusinessRepo() BusinessRepository {
	db := database.MongoClient.Database("slotwise")
	return &mongoBusinessRepo{coll: db.Collection("businesses")}
}

func (r *mongoBusinessRepo) GetByID(ctx context.Context, businessID string) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var biz models.Business
	err := r.coll.FindOne(ctx, bson.M{"id": businessID}).Decode(&biz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("fetch business %s: %w", businessID, err)
	}
	return &biz, nil
}
