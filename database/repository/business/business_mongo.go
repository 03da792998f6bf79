package businessRepo

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

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	coll := database.Collection("businesses")
	repo := &MongoBusinessRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "therapists.therapistId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBusinessRepo) findOne(filter bson.M) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	return &business, nil
}

// GetByID retrieves a business by its unique ID.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByOwner retrieves the business owned by the given account.
func (r *MongoBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) {
	return r.findOne(bson.M{"owner": ownerID})
}

// AppendTherapist pushes a new therapist entry onto the therapists array.
func (r *MongoBusinessRepo) AppendTherapist(businessID string, entry models.TherapistAssociation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"therapists": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": businessID}, update)
	if err != nil {
		return fmt.Errorf("failed to append therapist for business %s: %w", businessID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", businessID)
	}
	return nil
}

// PullTherapist removes every entry matching the therapist.
func (r *MongoBusinessRepo) PullTherapist(businessID, therapistID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"therapists": bson.M{"therapistId": therapistID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": businessID}, update); err != nil {
		return fmt.Errorf("failed to pull therapist for business %s: %w", businessID, err)
	}
	return nil
}

// SetTherapistStatus updates the entry matched by therapist id and current
// status. Entries are addressed by key, not by array position.
func (r *MongoBusinessRepo) SetTherapistStatus(businessID, therapistID, fromStatus, toStatus string, joinedAt *time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id": businessID,
		"therapists": bson.M{
			"$elemMatch": bson.M{"therapistId": therapistID, "status": fromStatus},
		},
	}

	set := bson.M{
		"therapists.$[entry].status": toStatus,
		"updatedAt":                  time.Now(),
	}
	update := bson.M{"$set": set}
	if joinedAt != nil {
		set["therapists.$[entry].joinedAt"] = *joinedAt
	} else {
		update["$unset"] = bson.M{"therapists.$[entry].joinedAt": ""}
	}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"entry.therapistId": therapistID, "entry.status": fromStatus},
		},
	})

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, fmt.Errorf("failed to update therapist status for business %s: %w", businessID, err)
	}
	return result.MatchedCount > 0, nil
}
