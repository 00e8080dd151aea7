package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// OpsEventRepository defines the interface for publishing operational events
// to the operations webhook. Publishing is best effort; callers log failures
// and never fail the triggering operation.
type OpsEventRepository interface {
	PublishEvent(ctx context.Context, event *entity.OpsEvent) error
}
