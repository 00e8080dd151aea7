package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	// GetByReference expects a normalized (uppercased, trimmed) reference.
	GetByReference(ctx context.Context, reference string) (*entity.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*entity.Booking, error)
	ApplyCheckIn(ctx context.Context, reference string, update entity.CheckInUpdate) error
	UpdateStatus(ctx context.Context, bookingID, status string) error
}
