package mocks

import (
	"context"
	"testing"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	args := m.Called(ctx, cpf)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) ListActive(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsCPFForOtherUser(ctx context.Context, userID int64, cpf string) (bool, error) {
	args := m.Called(ctx, userID, cpf)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsEmailForOtherUser(ctx context.Context, userID int64, email string) (bool, error) {
	args := m.Called(ctx, userID, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	if created, ok := args.Get(0).(*entity.User); ok {
		return created, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

var _ repository.UserRepository = (*MockUserRepository)(nil)
