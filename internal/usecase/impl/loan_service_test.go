package impl

import (
	"context"
	"testing"
	"time"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/mocks"
	"biblio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type loanServiceMocks struct {
	userRepo *mocks.MockUserRepository
	bookRepo *mocks.MockBookRepository
	loanRepo *mocks.MockLoanRepository
}

func newLoanServiceForTest(t *testing.T) (usecase.LoanUsecase, *loanServiceMocks) {
	m := &loanServiceMocks{
		userRepo: mocks.NewMockUserRepository(t),
		bookRepo: mocks.NewMockBookRepository(t),
		loanRepo: mocks.NewMockLoanRepository(t),
	}
	txManager := &mocks.TxManagerStub{Factory: &mocks.RepositoryFactoryStub{
		Users: m.userRepo,
		Books: m.bookRepo,
		Loans: m.loanRepo,
	}}
	service := NewLoanService(LoanServiceParams{
		TxManager: txManager,
		LoanRepo:  m.loanRepo,
		Clock:     &mocks.FixedClock{Time: testNow},
	})

	return service, m
}

func activeTestUser() *entity.User {
	return entity.RestoreUser(1, "Alice", "12345678901", "alice@example.com", "555-0100",
		time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC), "", testNow.AddDate(-1, 0, 0), true)
}

func TestLoanService_CreateLoan_Success(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	book := entity.RestoreBook(2, "Dune", "9780441172719", 1965, "scifi", 2, 5)

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("HasPendingFine", ctx, int64(1)).Return(false, nil)
	m.loanRepo.On("ListActiveByUser", ctx, int64(1)).Return([]*entity.Loan{}, nil)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(book, nil)
	m.bookRepo.On("Update", ctx, mock.MatchedBy(func(b *entity.Book) bool {
		return b.ID() == 2 && b.Stock() == 1
	})).Return(nil)
	m.loanRepo.On("Create", ctx, mock.AnythingOfType("*entity.Loan")).
		Return(entity.RestoreLoan(9, 1, 2, testNow, testNow.AddDate(0, 0, 14), nil, 0, 0, false, true), nil)

	loan, err := service.CreateLoan(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), loan.ID())
	assert.Equal(t, testNow.AddDate(0, 0, 14), loan.DueDate())
	assert.True(t, loan.Active())
}

func TestLoanService_CreateLoan_UserNotFound(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(nil, repository.ErrUserNotFound)

	_, err := service.CreateLoan(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestLoanService_CreateLoan_InactiveUser(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	inactive := entity.RestoreUser(1, "Alice", "12345678901", "alice@example.com", "",
		time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC), "", testNow.AddDate(-1, 0, 0), false)
	m.userRepo.On("FindByID", ctx, int64(1)).Return(inactive, nil)

	_, err := service.CreateLoan(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestLoanService_CreateLoan_PendingFine(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("HasPendingFine", ctx, int64(1)).Return(true, nil)

	_, err := service.CreateLoan(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestLoanService_CreateLoan_LoanLimitReached(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	open := []*entity.Loan{
		entity.NewLoan(1, 3, testNow),
		entity.NewLoan(1, 4, testNow),
		entity.NewLoan(1, 5, testNow),
	}
	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("HasPendingFine", ctx, int64(1)).Return(false, nil)
	m.loanRepo.On("ListActiveByUser", ctx, int64(1)).Return(open, nil)

	_, err := service.CreateLoan(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestLoanService_CreateLoan_BookNotFound(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("HasPendingFine", ctx, int64(1)).Return(false, nil)
	m.loanRepo.On("ListActiveByUser", ctx, int64(1)).Return([]*entity.Loan{}, nil)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(nil, repository.ErrBookNotFound)

	_, err := service.CreateLoan(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestLoanService_CreateLoan_OutOfStock(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	exhausted := entity.RestoreBook(2, "Dune", "9780441172719", 1965, "scifi", 0, 5)
	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("HasPendingFine", ctx, int64(1)).Return(false, nil)
	m.loanRepo.On("ListActiveByUser", ctx, int64(1)).Return([]*entity.Loan{}, nil)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(exhausted, nil)

	_, err := service.CreateLoan(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestLoanService_ReturnLoan_LateComputesFine(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	// Due 2023-12-27, returned 2024-01-01: five days late.
	loan := entity.RestoreLoan(9, 1, 2,
		testNow.AddDate(0, 0, -19), time.Date(2023, 12, 27, 0, 0, 0, 0, time.UTC),
		nil, 0, 0, false, true)
	book := entity.RestoreBook(2, "Dune", "9780441172719", 1965, "scifi", 0, 5)

	m.loanRepo.On("FindByID", ctx, int64(9)).Return(loan, nil)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(book, nil)
	m.bookRepo.On("Update", ctx, mock.MatchedBy(func(b *entity.Book) bool {
		return b.Stock() == 1
	})).Return(nil)
	m.loanRepo.On("Update", ctx, mock.MatchedBy(func(l *entity.Loan) bool {
		return !l.Active() && l.ReturnDate() != nil
	})).Return(nil)

	returned, err := service.ReturnLoan(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 10.0, returned.FineAmount())
	assert.False(t, returned.Active())
}

func TestLoanService_ReturnLoan_BookRemovedFromCatalog(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	loan := entity.RestoreLoan(9, 1, 2, testNow.AddDate(0, 0, -7),
		testNow.AddDate(0, 0, 7), nil, 0, 0, false, true)

	m.loanRepo.On("FindByID", ctx, int64(9)).Return(loan, nil)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(nil, repository.ErrBookNotFound)
	m.loanRepo.On("Update", ctx, mock.AnythingOfType("*entity.Loan")).Return(nil)

	returned, err := service.ReturnLoan(ctx, 9)
	require.NoError(t, err)
	assert.False(t, returned.Active())
	assert.Equal(t, 0.0, returned.FineAmount())
}

func TestLoanService_ReturnLoan_NotFound(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	m.loanRepo.On("FindByID", ctx, int64(9)).Return(nil, repository.ErrLoanNotFound)

	_, err := service.ReturnLoan(ctx, 9)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestLoanService_ReturnLoan_AlreadyReturned(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	returnedAt := testNow.AddDate(0, 0, -1)
	closed := entity.RestoreLoan(9, 1, 2, testNow.AddDate(0, 0, -10),
		testNow.AddDate(0, 0, 4), &returnedAt, 0, 0, false, false)
	m.loanRepo.On("FindByID", ctx, int64(9)).Return(closed, nil)

	_, err := service.ReturnLoan(ctx, 9)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestLoanService_RenewLoan_Success(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	due := testNow.AddDate(0, 0, 3)
	loan := entity.RestoreLoan(9, 1, 2, testNow.AddDate(0, 0, -11), due, nil, 0, 0, false, true)

	m.loanRepo.On("FindByID", ctx, int64(9)).Return(loan, nil)
	m.loanRepo.On("Update", ctx, mock.MatchedBy(func(l *entity.Loan) bool {
		return l.Renewed() && l.DueDate().Equal(due.AddDate(0, 0, 14))
	})).Return(nil)

	renewed, err := service.RenewLoan(ctx, 9)
	require.NoError(t, err)
	assert.True(t, renewed.Renewed())
	assert.Equal(t, due.AddDate(0, 0, 14), renewed.DueDate())
}

func TestLoanService_RenewLoan_Overdue(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	loan := entity.RestoreLoan(9, 1, 2, testNow.AddDate(0, 0, -20),
		testNow.AddDate(0, 0, -6), nil, 0, 0, false, true)
	m.loanRepo.On("FindByID", ctx, int64(9)).Return(loan, nil)

	_, err := service.RenewLoan(ctx, 9)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestLoanService_GetLoan_NotFound(t *testing.T) {
	service, m := newLoanServiceForTest(t)
	ctx := context.Background()

	m.loanRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrLoanNotFound)

	_, err := service.GetLoan(ctx, 404)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}
