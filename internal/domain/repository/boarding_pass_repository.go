package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// BoardingPassRepository defines the interface for boarding pass storage
type BoardingPassRepository interface {
	Insert(ctx context.Context, pass *entity.BoardingPass) error
	GetByReference(ctx context.Context, bookingReference string) (*entity.BoardingPass, error)
	DeleteByReference(ctx context.Context, bookingReference string) error
}
