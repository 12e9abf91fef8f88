// Package mocks provides hand-written test doubles for the repository and
// service interfaces.
package mocks

import (
	"context"
	"testing"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockAuthorRepository is a mock implementation of repository.AuthorRepository.
type MockAuthorRepository struct {
	mock.Mock
}

// NewMockAuthorRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockAuthorRepository(t *testing.T) *MockAuthorRepository {
	m := &MockAuthorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthorRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Author, error) {
	args := m.Called(ctx, id)
	if author, ok := args.Get(0).(*entity.Author); ok {
		return author, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthorRepository) List(ctx context.Context, page, size int) ([]*entity.Author, error) {
	args := m.Called(ctx, page, size)
	if authors, ok := args.Get(0).([]*entity.Author); ok {
		return authors, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)

	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *entity.Author) (*entity.Author, error) {
	args := m.Called(ctx, author)
	if created, ok := args.Get(0).(*entity.Author); ok {
		return created, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthorRepository) Update(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)

	return args.Error(0)
}

var _ repository.AuthorRepository = (*MockAuthorRepository)(nil)
