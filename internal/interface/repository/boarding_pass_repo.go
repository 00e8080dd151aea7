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

// MongoBoardingPassRepository implements BoardingPassRepository
type MongoBoardingPassRepository struct {
	collection *mongo.Collection
}

// NewMongoBoardingPassRepository creates a new boarding pass repository
func NewMongoBoardingPassRepository(db *mongo.Database) repository.BoardingPassRepository {
	collection := db.Collection("boarding_passes")

	// One pass per booking reference until regenerated
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"bookingReference": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoBoardingPassRepository{
		collection: collection,
	}
}

// Insert stores a newly issued boarding pass
func (r *MongoBoardingPassRepository) Insert(ctx context.Context, pass *entity.BoardingPass) error {
	if pass.GeneratedAt.IsZero() {
		pass.GeneratedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, pass)
	return err
}

// GetByReference finds the boarding pass for a booking reference
func (r *MongoBoardingPassRepository) GetByReference(ctx context.Context, bookingReference string) (*entity.BoardingPass, error) {
	var pass entity.BoardingPass
	err := r.collection.FindOne(ctx, bson.M{"bookingReference": bookingReference}).Decode(&pass)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "no boarding pass for booking %s", bookingReference)
		}
		return nil, err
	}
	return &pass, nil
}

// DeleteByReference removes the boarding pass for a booking reference
func (r *MongoBoardingPassRepository) DeleteByReference(ctx context.Context, bookingReference string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"bookingReference": bookingReference})
	return err
}
