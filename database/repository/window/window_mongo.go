package windowRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/database"
	"slotwise/models"
)

// mongoWindowRepo implements WindowRepository using MongoDB.
type mongoWindowRepo struct {
	coll *mongo.Collection
}

// NewMongoWindowRepo constructs a WindowRepository bound to the windows collection.
func NewMongoWindowRepo() WindowRepository {
	db := database.MongoClient.Database("slotwise")
	repo := &mongoWindowRepo{coll: db.Collection("windows")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *mongoWindowRepo) ListByEvent(ctx context.Context, eventID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list windows for event %s: %w", eventID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("decode windows for event %s: %w", eventID, err)
	}
	return windows, nil
}

func (r *mongoWindowRepo) ReplaceForEvent(ctx context.Context, eventID string, windows []models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.DeleteMany(sc, bson.M{"event_id": eventID}); err != nil {
			return fmt.Errorf("clear windows failed: %w", err)
		}
		if len(windows) == 0 {
			return nil
		}
		docs := make([]interface{}, len(windows))
		for i, w := range windows {
			if w.ID == "" {
				w.ID = uuid.New().String()
			}
			w.EventID = eventID
			docs[i] = w
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert windows failed: %w", err)
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
		return fmt.Errorf("replace windows transaction failed: %w", err)
	}
	return nil
}
