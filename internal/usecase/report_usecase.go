package usecase

import (
	"context"

	"biblio/internal/domain/entity"
)

// ReportUsecase defines the interface for administrative reporting use cases
type ReportUsecase interface {
	// TotalPendingFines sums the unpaid portion of every fine on record.
	TotalPendingFines(ctx context.Context) (float64, error)

	// UsersWithOverdueLoans retrieves the distinct users holding at least
	// one open loan past its due date.
	UsersWithOverdueLoans(ctx context.Context) ([]*entity.User, error)
}
