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

// MongoBookingRepository implements BookingRepository
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new booking repository
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	collection := db.Collection("bookings")

	ctx := context.Background()
	refIndex := mongo.IndexModel{
		Keys:    bson.M{"bookingReference": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, refIndex)

	idIndex := mongo.IndexModel{
		Keys: bson.M{"bookingId": 1},
	}
	collection.Indexes().CreateOne(ctx, idIndex)

	return &MongoBookingRepository{
		collection: collection,
	}
}

// GetByReference finds a booking by its normalized reference
func (r *MongoBookingRepository) GetByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.collection.FindOne(ctx, bson.M{"bookingReference": reference}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "booking %s not found", reference)
		}
		return nil, err
	}
	return &booking, nil
}

// GetByID finds a booking by its booking id
func (r *MongoBookingRepository) GetByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.collection.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.NewError(entity.KindNotFound, "booking %s not found", bookingID)
		}
		return nil, err
	}
	return &booking, nil
}

// ApplyCheckIn writes the seat, fee and status fields of a completed check-in
func (r *MongoBookingRepository) ApplyCheckIn(ctx context.Context, reference string, update entity.CheckInUpdate) error {
	set := bson.M{
		"seatNumber":    update.SeatNumber,
		"cabinClass":    update.CabinClass,
		"isPremiumSeat": update.IsPremiumSeat,
		"seatFee":       update.SeatFee,
		"baggageType":   update.BaggageType,
		"baggageWeight": update.BaggageWeight,
		"baggageFee":    update.BaggageFee,
		"totalAmount":   update.TotalAmount,
		"status":        update.Status,
		"checkInTime":   update.CheckInTime,
		"updatedAt":     time.Now(),
	}
	if update.BaggageTag != "" {
		set["baggageTag"] = update.BaggageTag
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"bookingReference": reference}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "booking %s not found", reference)
	}
	return nil
}

// UpdateStatus sets the booking status and stamps updatedAt
func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, bookingID, status string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"bookingId": bookingID},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.NewError(entity.KindNotFound, "booking %s not found", bookingID)
	}
	return nil
}
