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

// MongoFlightRepository implements FlightRepository
type MongoFlightRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRepository creates a new flight repository
func NewMongoFlightRepository(db *mongo.Database) repository.FlightRepository {
	collection := db.Collection("flights")

	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"flightCode": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	// Index on gate for conflict lookups
	gateIndex := mongo.IndexModel{
		Keys: bson.M{"gate": 1},
	}
	collection.Indexes().CreateOne(ctx, gateIndex)

	return &MongoFlightRepository{
		collection: collection,
	}
}

// GetByCode finds a flight by its code
func (r *MongoFlightRepository) GetByCode(ctx context.Context, code string) (*entity.Flight, error) {
	var flight entity.Flight
	err := r.collection.FindOne(ctx, bson.M{"flightCode": code}).Decode(&flight)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "flight %s not found", code)
		}
		return nil, err
	}
	return &flight, nil
}

// GetByAircraft finds the flight currently linked to an aircraft
func (r *MongoFlightRepository) GetByAircraft(ctx context.Context, aircraftID string) (*entity.Flight, error) {
	var flight entity.Flight
	err := r.collection.FindOne(ctx, bson.M{"aircraftId": aircraftID}).Decode(&flight)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "no flight linked to aircraft %s", aircraftID)
		}
		return nil, err
	}
	return &flight, nil
}

// ListByGate returns flights scheduled through the given gate
func (r *MongoFlightRepository) ListByGate(ctx context.Context, gateID string) ([]*entity.Flight, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"gate": gateID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flights []*entity.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// List returns all flights sorted by scheduled departure
func (r *MongoFlightRepository) List(ctx context.Context) ([]*entity.Flight, error) {
	opts := options.Find().SetSort(bson.D{{Key: "flightDate", Value: 1}, {Key: "scheduledDeparture", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flights []*entity.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// SetAircraft links an aircraft to the flight; an empty id clears the link
func (r *MongoFlightRepository) SetAircraft(ctx context.Context, code, aircraftID string) error {
	update := bson.M{"$set": bson.M{"aircraftId": aircraftID, "updatedAt": time.Now()}}
	if aircraftID == "" {
		update = bson.M{
			"$unset": bson.M{"aircraftId": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"flightCode": code}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "flight %s not found", code)
	}
	return nil
}

// SetGate records the gate serving the flight; an empty id clears it
func (r *MongoFlightRepository) SetGate(ctx context.Context, code, gateID string) error {
	update := bson.M{"$set": bson.M{"gate": gateID, "updatedAt": time.Now()}}
	if gateID == "" {
		update = bson.M{
			"$unset": bson.M{"gate": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"flightCode": code}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "flight %s not found", code)
	}
	return nil
}

// IncrementCheckedIn adjusts the checked-in passenger counter
func (r *MongoFlightRepository) IncrementCheckedIn(ctx context.Context, code string, delta int) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"flightCode": code},
		bson.M{
			"$inc": bson.M{"totalCheckedIn": delta},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "flight %s not found", code)
	}
	return nil
}
