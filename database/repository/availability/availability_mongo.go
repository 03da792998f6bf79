package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"wellnest/database"
	"wellnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.Collection("therapistavailabilities")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "therapistId", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindSlotCovering locates the first slot containing the booking time on the
// booking's day. The date is truncated to [startOfDay, endOfDay) and "HH:MM"
// strings compare lexicographically.
func (r *MongoAvailabilityRepo) FindSlotCovering(therapistID string, date time.Time, at string) (*models.TherapistAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	filter := bson.M{
		"therapistId": therapistID,
		"date":        bson.M{"$gte": startOfDay, "$lt": endOfDay},
		"startTime":   bson.M{"$lte": at},
		"endTime":     bson.M{"$gt": at},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "startTime", Value: 1}})

	var slot models.TherapistAvailability
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability slot: %w", err)
	}
	return &slot, nil
}

// SetStatus updates the status of a single slot.
func (r *MongoAvailabilityRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update slot %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("availability slot with id %s not found", id)
	}
	return nil
}
