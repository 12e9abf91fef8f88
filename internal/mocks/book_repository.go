package mocks

import (
	"context"
	"testing"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockBookRepository is a mock implementation of repository.BookRepository.
type MockBookRepository struct {
	mock.Mock
}

// NewMockBookRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockBookRepository(t *testing.T) *MockBookRepository {
	m := &MockBookRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	args := m.Called(ctx, id)
	if book, ok := args.Get(0).(*entity.Book); ok {
		return book, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context, title, isbn string) ([]*entity.Book, error) {
	args := m.Called(ctx, title, isbn)
	if books, ok := args.Get(0).([]*entity.Book); ok {
		return books, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookRepository) ListInStock(ctx context.Context) ([]*entity.Book, error) {
	args := m.Called(ctx)
	if books, ok := args.Get(0).([]*entity.Book); ok {
		return books, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Book, error) {
	args := m.Called(ctx, authorID)
	if books, ok := args.Get(0).([]*entity.Book); ok {
		return books, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookRepository) ExistsISBN(ctx context.Context, isbn string) (bool, error) {
	args := m.Called(ctx, isbn)

	return args.Bool(0), args.Error(1)
}

func (m *MockBookRepository) ExistsISBNForOtherBook(ctx context.Context, bookID int64, isbn string) (bool, error) {
	args := m.Called(ctx, bookID, isbn)

	return args.Bool(0), args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, book *entity.Book) (*entity.Book, error) {
	args := m.Called(ctx, book)
	if created, ok := args.Get(0).(*entity.Book); ok {
		return created, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, book *entity.Book) error {
	args := m.Called(ctx, book)

	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

var _ repository.BookRepository = (*MockBookRepository)(nil)
