package impl

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"
	"biblio/internal/domain/service"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reportService struct {
	loanRepo repository.LoanRepository
	clock    service.Clock
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	LoanRepo repository.LoanRepository
	Clock    service.Clock
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		loanRepo: params.LoanRepo,
		clock:    params.Clock,
	}
}

// TotalPendingFines sums the unpaid portion of every fine on record.
func (s *reportService) TotalPendingFines(ctx context.Context) (float64, error) {
	loans, err := s.loanRepo.ListWithPendingFines(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list loans with pending fines")
	}

	var total float64
	for _, loan := range loans {
		total += loan.PendingFine()
	}

	return total, nil
}

// UsersWithOverdueLoans retrieves the distinct users holding at least one
// open loan past its due date.
func (s *reportService) UsersWithOverdueLoans(ctx context.Context) ([]*entity.User, error) {
	users, err := s.loanRepo.ListUsersWithOverdueLoans(ctx, s.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users with overdue loans")
	}

	return users, nil
}
