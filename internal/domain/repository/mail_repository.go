package repository

import (
	"context"

	"airportops-service/internal/domain/entity"
)

// MailRepository defines the interface for sending boarding-pass
// confirmation email after a successful check-in.
type MailRepository interface {
	SendBoardingPass(ctx context.Context, to string, pass *entity.BoardingPassView) error
}
