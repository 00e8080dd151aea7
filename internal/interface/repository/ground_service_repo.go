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

// MongoGroundServiceRepository implements GroundServiceRepository
type MongoGroundServiceRepository struct {
	collection *mongo.Collection
}

// NewMongoGroundServiceRepository creates a new ground-service repository
func NewMongoGroundServiceRepository(db *mongo.Database) repository.GroundServiceRepository {
	collection := db.Collection("ground_services")

	ctx := context.Background()
	idIndex := mongo.IndexModel{
		Keys:    bson.M{"serviceId": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, idIndex)

	// Index for the crew-has-open-tasks guard
	crewIndex := mongo.IndexModel{
		Keys: bson.M{"assignedCrew": 1, "status": 1},
	}
	collection.Indexes().CreateOne(ctx, crewIndex)

	return &MongoGroundServiceRepository{
		collection: collection,
	}
}

// GetByID finds a task by service id
func (r *MongoGroundServiceRepository) GetByID(ctx context.Context, serviceID string) (*entity.GroundServiceTask, error) {
	var task entity.GroundServiceTask
	err := r.collection.FindOne(ctx, bson.M{"serviceId": serviceID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "ground service %s not found", serviceID)
		}
		return nil, err
	}
	return &task, nil
}

// List returns all tasks, most recently scheduled first
func (r *MongoGroundServiceRepository) List(ctx context.Context) ([]*entity.GroundServiceTask, error) {
	opts := options.Find().SetSort(bson.M{"scheduledTime": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*entity.GroundServiceTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Insert stores a new ground-service task
func (r *MongoGroundServiceRepository) Insert(ctx context.Context, task *entity.GroundServiceTask) error {
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	_, err := r.collection.InsertOne(ctx, task)
	return err
}

// Assign puts the crew member on the task and moves it to in-progress. The
// update matches only a pending, unclaimed task, so racing claims cannot both
// succeed.
func (r *MongoGroundServiceRepository) Assign(ctx context.Context, serviceID, crewID string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"serviceId":    serviceID,
			"status":       entity.TaskPending,
			"assignedCrew": bson.M{"$in": bson.A{nil, ""}},
		},
		bson.M{"$set": bson.M{
			"assignedCrew": crewID,
			"status":       entity.TaskInProgress,
			"updatedAt":    time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindInvalidState,
			"ground service %s is not open for assignment", serviceID)
	}
	return nil
}

// Unassign reverts a claimed task back to pending with no crew
func (r *MongoGroundServiceRepository) Unassign(ctx context.Context, serviceID string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"serviceId": serviceID},
		bson.M{
			"$set":   bson.M{"status": entity.TaskPending, "updatedAt": time.Now()},
			"$unset": bson.M{"assignedCrew": ""},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "ground service %s not found", serviceID)
	}
	return nil
}

// Complete marks the task finished. Only an in-progress task matches, so a
// task cannot be completed twice.
func (r *MongoGroundServiceRepository) Complete(ctx context.Context, serviceID string, completedAt time.Time) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"serviceId": serviceID, "status": entity.TaskInProgress},
		bson.M{"$set": bson.M{
			"status":        entity.TaskCompleted,
			"completedTime": completedAt,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindInvalidState,
			"ground service %s is not in progress", serviceID)
	}
	return nil
}

// CountOpenByCrew counts pending or in-progress tasks held by a crew member
func (r *MongoGroundServiceRepository) CountOpenByCrew(ctx context.Context, crewID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"assignedCrew": crewID,
		"status":       bson.M{"$in": []string{entity.TaskPending, entity.TaskInProgress}},
	})
}

// ClearCrew removes the crew reference from all of a member's tasks
func (r *MongoGroundServiceRepository) ClearCrew(ctx context.Context, crewID string) error {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"assignedCrew": crewID},
		bson.M{
			"$unset": bson.M{"assignedCrew": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}
