package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// AircraftRepository defines the interface for aircraft state operations
type AircraftRepository interface {
	GetByID(ctx context.Context, aircraftID string) (*entity.Aircraft, error)
	List(ctx context.Context) ([]*entity.Aircraft, error)
	UpdateStatus(ctx context.Context, aircraftID, status string) error
}
