package therapistRepo

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

// MongoTherapistRepo implements TherapistRepository using MongoDB.
type MongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo creates a new instance of TherapistRepository using MongoDB.
func NewMongoTherapistRepo() TherapistRepository {
	coll := database.Collection("therapists")
	repo := &MongoTherapistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTherapistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "associatedBusinesses.businessId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a therapist by its unique ID.
func (r *MongoTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var therapist models.Therapist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&therapist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch therapist with id %s: %w", id, err)
	}
	return &therapist, nil
}

// AppendAssociation pushes a new business entry onto associatedBusinesses.
func (r *MongoTherapistRepo) AppendAssociation(therapistID string, assoc models.BusinessAssociation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"associatedBusinesses": assoc},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": therapistID}, update)
	if err != nil {
		return fmt.Errorf("failed to append association for therapist %s: %w", therapistID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapist with id %s not found", therapistID)
	}
	return nil
}

// PullAssociation removes every entry matching the business.
func (r *MongoTherapistRepo) PullAssociation(therapistID, businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"associatedBusinesses": bson.M{"businessId": businessID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": therapistID}, update); err != nil {
		return fmt.Errorf("failed to pull association for therapist %s: %w", therapistID, err)
	}
	return nil
}

// SetAssociationStatus updates the entry matched by business id and current
// status. Entries are addressed by key, not by array position, so concurrent
// pushes cannot shift the target.
func (r *MongoTherapistRepo) SetAssociationStatus(therapistID, businessID, fromStatus, toStatus string, approvedAt *time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id": therapistID,
		"associatedBusinesses": bson.M{
			"$elemMatch": bson.M{"businessId": businessID, "status": fromStatus},
		},
	}

	set := bson.M{
		"associatedBusinesses.$[entry].status": toStatus,
		"updatedAt":                            time.Now(),
	}
	update := bson.M{"$set": set}
	if approvedAt != nil {
		set["associatedBusinesses.$[entry].approvedAt"] = *approvedAt
	} else {
		update["$unset"] = bson.M{"associatedBusinesses.$[entry].approvedAt": ""}
	}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"entry.businessId": businessID, "entry.status": fromStatus},
		},
	})

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, fmt.Errorf("failed to update association status for therapist %s: %w", therapistID, err)
	}
	return result.MatchedCount > 0, nil
}
