package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// GateRepository defines the interface for gate state operations
type GateRepository interface {
	GetByID(ctx context.Context, gateID string) (*entity.Gate, error)
	List(ctx context.Context) ([]*entity.Gate, error)
	UpdateStatus(ctx context.Context, gateID, status string) error
	// Assign marks the gate occupied by the given flight.
	Assign(ctx context.Context, gateID, flightCode string) error
	// Release clears the current flight and returns the gate to available.
	Release(ctx context.Context, gateID string) error
	AppendOverride(ctx context.Context, gateID string, override entity.GateOverride) error
}
