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

// MongoCrewRepository implements CrewRepository
type MongoCrewRepository struct {
	collection *mongo.Collection
}

// NewMongoCrewRepository creates a new crew repository
func NewMongoCrewRepository(db *mongo.Database) repository.CrewRepository {
	collection := db.Collection("crew_members")

	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"crewId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoCrewRepository{
		collection: collection,
	}
}

// GetByID finds a crew member by id
func (r *MongoCrewRepository) GetByID(ctx context.Context, crewID string) (*entity.CrewMember, error) {
	var crew entity.CrewMember
	err := r.collection.FindOne(ctx, bson.M{"crewId": crewID}).Decode(&crew)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "crew member %s not found", crewID)
		}
		return nil, err
	}
	return &crew, nil
}

// List returns all crew members
func (r *MongoCrewRepository) List(ctx context.Context) ([]*entity.CrewMember, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var crew []*entity.CrewMember
	if err := cursor.All(ctx, &crew); err != nil {
		return nil, err
	}
	return crew, nil
}

// Insert stores a new crew member
func (r *MongoCrewRepository) Insert(ctx context.Context, crew *entity.CrewMember) error {
	crew.CreatedAt = time.Now()
	crew.UpdatedAt = crew.CreatedAt
	_, err := r.collection.InsertOne(ctx, crew)
	return err
}

// UpdateStatus sets the crew status and stamps updatedAt
func (r *MongoCrewRepository) UpdateStatus(ctx context.Context, crewID, status string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"crewId": crewID},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "crew member %s not found", crewID)
	}
	return nil
}

// IncrementTaskCounts bumps both completion counters by one
func (r *MongoCrewRepository) IncrementTaskCounts(ctx context.Context, crewID string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"crewId": crewID},
		bson.M{
			"$inc": bson.M{"tasksCompletedToday": 1, "totalTasksCompleted": 1},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "crew member %s not found", crewID)
	}
	return nil
}

// Delete removes a crew member
func (r *MongoCrewRepository) Delete(ctx context.Context, crewID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"crewId": crewID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entity.NewError(entity.KindNotFound, "crew member %s not found", crewID)
	}
	return nil
}
