package repository

import (
	"context"
	"time"

	"airportops-service/internal/domain/entity"
)

// GroundServiceRepository defines the interface for ground-service tasks
type GroundServiceRepository interface {
	GetByID(ctx context.Context, serviceID string) (*entity.GroundServiceTask, error)
	List(ctx context.Context) ([]*entity.GroundServiceTask, error)
	Insert(ctx context.Context, task *entity.GroundServiceTask) error
	// Assign puts the crew member on the task and moves it to in-progress.
	// Only a pending, unclaimed task can be assigned; anything else is an
	// invalid_state error.
	Assign(ctx context.Context, serviceID, crewID string) error
	// Unassign reverts a claimed task back to pending with no crew.
	Unassign(ctx context.Context, serviceID string) error
	// Complete marks the task finished. Only an in-progress task can be
	// completed; anything else is an invalid_state error.
	Complete(ctx context.Context, serviceID string, completedAt time.Time) error
	CountOpenByCrew(ctx context.Context, crewID string) (int64, error)
	// ClearCrew removes the crew reference from all of a member's tasks.
	ClearCrew(ctx context.Context, crewID string) error
}
