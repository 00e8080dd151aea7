package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// CrewRepository defines the interface for crew member operations
type CrewRepository interface {
	GetByID(ctx context.Context, crewID string) (*entity.CrewMember, error)
	List(ctx context.Context) ([]*entity.CrewMember, error)
	Insert(ctx context.Context, crew *entity.CrewMember) error
	UpdateStatus(ctx context.Context, crewID, status string) error
	// IncrementTaskCounts bumps both the daily and lifetime completion counters.
	IncrementTaskCounts(ctx context.Context, crewID string) error
	Delete(ctx context.Context, crewID string) error
}
