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

// MongoGateRepository implements GateRepository
type MongoGateRepository struct {
	collection *mongo.Collection
}

// NewMongoGateRepository creates a new gate repository
func NewMongoGateRepository(db *mongo.Database) repository.GateRepository {
	collection := db.Collection("gates")

	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"gateId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoGateRepository{
		collection: collection,
	}
}

// GetByID finds a gate by id
func (r *MongoGateRepository) GetByID(ctx context.Context, gateID string) (*entity.Gate, error) {
	var gate entity.Gate
	err := r.collection.FindOne(ctx, bson.M{"gateId": gateID}).Decode(&gate)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "gate %s not found", gateID)
		}
		return nil, err
	}
	return &gate, nil
}

// List returns all gates ordered by terminal and gate id
func (r *MongoGateRepository) List(ctx context.Context) ([]*entity.Gate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "terminal", Value: 1}, {Key: "gateId", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var gates []*entity.Gate
	if err := cursor.All(ctx, &gates); err != nil {
		return nil, err
	}
	return gates, nil
}

// UpdateStatus sets the gate status and stamps updatedAt
func (r *MongoGateRepository) UpdateStatus(ctx context.Context, gateID, status string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"gateId": gateID},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "gate %s not found", gateID)
	}
	return nil
}

// Assign marks the gate occupied by the given flight
func (r *MongoGateRepository) Assign(ctx context.Context, gateID, flightCode string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"gateId": gateID},
		bson.M{"$set": bson.M{
			"status":        entity.GateOccupied,
			"currentFlight": flightCode,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "gate %s not found", gateID)
	}
	return nil
}

// Release clears the current flight and returns the gate to available
func (r *MongoGateRepository) Release(ctx context.Context, gateID string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"gateId": gateID},
		bson.M{
			"$set":   bson.M{"status": entity.GateAvailable, "updatedAt": time.Now()},
			"$unset": bson.M{"currentFlight": ""},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "gate %s not found", gateID)
	}
	return nil
}

// AppendOverride records a conflict override in the gate's audit trail
func (r *MongoGateRepository) AppendOverride(ctx context.Context, gateID string, override entity.GateOverride) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"gateId": gateID},
		bson.M{
			"$push": bson.M{"overrides": override},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "gate %s not found", gateID)
	}
	return nil
}
