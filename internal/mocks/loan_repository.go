package mocks

import (
	"context"
	"testing"
	"time"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockLoanRepository is a mock implementation of repository.LoanRepository.
type MockLoanRepository struct {
	mock.Mock
}

// NewMockLoanRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockLoanRepository(t *testing.T) *MockLoanRepository {
	m := &MockLoanRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLoanRepository) FindByID(ctx context.Context, id int64) (*entity.Loan, error) {
	args := m.Called(ctx, id)
	if loan, ok := args.Get(0).(*entity.Loan); ok {
		return loan, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoanRepository) ListActiveByUser(ctx context.Context, userID int64) ([]*entity.Loan, error) {
	args := m.Called(ctx, userID)
	if loans, ok := args.Get(0).([]*entity.Loan); ok {
		return loans, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoanRepository) ListHistoryByUser(ctx context.Context, userID int64) ([]*entity.Loan, error) {
	args := m.Called(ctx, userID)
	if loans, ok := args.Get(0).([]*entity.Loan); ok {
		return loans, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoanRepository) HasPendingFine(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)

	return args.Bool(0), args.Error(1)
}

func (m *MockLoanRepository) ExistsActiveLoanForBook(ctx context.Context, bookID int64) (bool, error) {
	args := m.Called(ctx, bookID)

	return args.Bool(0), args.Error(1)
}

func (m *MockLoanRepository) ListAllActiveDetailed(ctx context.Context) ([]*entity.LoanDetail, error) {
	args := m.Called(ctx)
	if details, ok := args.Get(0).([]*entity.LoanDetail); ok {
		return details, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoanRepository) ListWithPendingFines(ctx context.Context) ([]*entity.Loan, error) {
	args := m.Called(ctx)
	if loans, ok := args.Get(0).([]*entity.Loan); ok {
		return loans, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoanRepository) ListUsersWithOverdueLoans(ctx context.Context, now time.Time) ([]*entity.User, error) {
	args := m.Called(ctx, now)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *entity.Loan) (*entity.Loan, error) {
	args := m.Called(ctx, loan)
	if created, ok := args.Get(0).(*entity.Loan); ok {
		return created, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLoanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	args := m.Called(ctx, loan)

	return args.Error(0)
}

var _ repository.LoanRepository = (*MockLoanRepository)(nil)
