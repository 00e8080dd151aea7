package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// FlightRepository defines the interface for the flight directory
type FlightRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Flight, error)
	GetByAircraft(ctx context.Context, aircraftID string) (*entity.Flight, error)
	ListByGate(ctx context.Context, gateID string) ([]*entity.Flight, error)
	List(ctx context.Context) ([]*entity.Flight, error)
	// SetAircraft links an aircraft to the flight; an empty id clears the link.
	SetAircraft(ctx context.Context, code, aircraftID string) error
	// SetGate records the gate serving the flight; an empty id clears it.
	SetGate(ctx context.Context, code, gateID string) error
	IncrementCheckedIn(ctx context.Context, code string, delta int) error
}
