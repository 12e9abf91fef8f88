package impl

import (
	"context"
	"testing"

	"biblio/internal/domain/entity"
	"biblio/internal/mocks"
	"biblio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportServiceForTest(t *testing.T) (usecase.ReportUsecase, *mocks.MockLoanRepository) {
	loanRepo := mocks.NewMockLoanRepository(t)
	service := NewReportService(ReportServiceParams{
		LoanRepo: loanRepo,
		Clock:    &mocks.FixedClock{Time: testNow},
	})

	return service, loanRepo
}

func TestReportService_TotalPendingFines_SumsUnpaidPortion(t *testing.T) {
	service, loanRepo := newReportServiceForTest(t)
	ctx := context.Background()

	returned := testNow.AddDate(0, 0, -3)
	loans := []*entity.Loan{
		entity.RestoreLoan(1, 1, 2, testNow.AddDate(0, 0, -40), testNow.AddDate(0, 0, -26), &returned, 100, 20, false, false),
		entity.RestoreLoan(2, 3, 4, testNow.AddDate(0, 0, -30), testNow.AddDate(0, 0, -16), &returned, 50, 0, false, false),
	}
	loanRepo.On("ListWithPendingFines", ctx).Return(loans, nil)

	total, err := service.TotalPendingFines(ctx)
	require.NoError(t, err)
	assert.Equal(t, 130.0, total)
}

func TestReportService_TotalPendingFines_NoFines(t *testing.T) {
	service, loanRepo := newReportServiceForTest(t)
	ctx := context.Background()

	loanRepo.On("ListWithPendingFines", ctx).Return([]*entity.Loan{}, nil)

	total, err := service.TotalPendingFines(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestReportService_UsersWithOverdueLoans_UsesClock(t *testing.T) {
	service, loanRepo := newReportServiceForTest(t)
	ctx := context.Background()

	overdueUsers := []*entity.User{activeTestUser()}
	loanRepo.On("ListUsersWithOverdueLoans", ctx, testNow).Return(overdueUsers, nil)

	users, err := service.UsersWithOverdueLoans(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1), users[0].ID())
}
