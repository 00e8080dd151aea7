package repository

import (
	"context"
	"errors"
	"time"

	"airportops-service/internal/domain/entity"
	"airportops-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAircraftRepository implements AircraftRepository
type MongoAircraftRepository struct {
	collection *mongo.Collection
}

// NewMongoAircraftRepository creates a new aircraft repository
func NewMongoAircraftRepository(db *mongo.Database) repository.AircraftRepository {
	collection := db.Collection("aircraft")

	// Create unique index on aircraftId
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"aircraftId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoAircraftRepository{
		collection: collection,
	}
}

// GetByID finds an aircraft by its operational id
func (r *MongoAircraftRepository) GetByID(ctx context.Context, aircraftID string) (*entity.Aircraft, error) {
	var aircraft entity.Aircraft
	err := r.collection.FindOne(ctx, bson.M{"aircraftId": aircraftID}).Decode(&aircraft)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "aircraft %s not found", aircraftID)
		}
		return nil, err
	}
	return &aircraft, nil
}

// List returns the whole fleet
func (r *MongoAircraftRepository) List(ctx context.Context) ([]*entity.Aircraft, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fleet []*entity.Aircraft
	if err := cursor.All(ctx, &fleet); err != nil {
		return nil, err
	}
	return fleet, nil
}

// UpdateStatus sets the operational status and stamps updatedAt
func (r *MongoAircraftRepository) UpdateStatus(ctx context.Context, aircraftID, status string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"aircraftId": aircraftID},
		bson.M{"$set": bson.M{
			"operationalStatus": status,
			"updatedAt":         time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "aircraft %s not found", aircraftID)
	}
	return nil
}
