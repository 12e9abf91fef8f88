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

type bookServiceMocks struct {
	bookRepo   *mocks.MockBookRepository
	authorRepo *mocks.MockAuthorRepository
	loanRepo   *mocks.MockLoanRepository
}

func newBookServiceForTest(t *testing.T) (usecase.BookUsecase, *bookServiceMocks) {
	m := &bookServiceMocks{
		bookRepo:   mocks.NewMockBookRepository(t),
		authorRepo: mocks.NewMockAuthorRepository(t),
		loanRepo:   mocks.NewMockLoanRepository(t),
	}
	service := NewBookService(BookServiceParams{
		BookRepo:   m.bookRepo,
		AuthorRepo: m.authorRepo,
		LoanRepo:   m.loanRepo,
	})

	return service, m
}

func testAuthor() *entity.Author {
	return entity.RestoreAuthor(5, "Frank Herbert",
		time.Date(1920, 10, 8, 0, 0, 0, 0, time.UTC), "USA", "", true)
}

func validBookInput() *usecase.BookInput {
	return &usecase.BookInput{
		Title:           "Dune",
		ISBN:            "9780441172719",
		PublicationYear: 1965,
		Category:        "scifi",
		Stock:           3,
		AuthorID:        5,
	}
}

func TestBookService_CreateBook_Success(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()
	input := validBookInput()

	m.authorRepo.On("FindActiveByID", ctx, int64(5)).Return(testAuthor(), nil)
	m.bookRepo.On("ExistsISBN", ctx, input.ISBN).Return(false, nil)
	m.bookRepo.On("Create", ctx, mock.AnythingOfType("*entity.Book")).
		Return(entity.RestoreBook(2, input.Title, input.ISBN, input.PublicationYear, input.Category, input.Stock, input.AuthorID), nil)

	book, err := service.CreateBook(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(2), book.ID())
	assert.Equal(t, 3, book.Stock())
}

func TestBookService_CreateBook_AuthorNotFound(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()

	m.authorRepo.On("FindActiveByID", ctx, int64(5)).Return(nil, repository.ErrAuthorNotFound)

	_, err := service.CreateBook(ctx, validBookInput())
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestBookService_CreateBook_DuplicateISBN(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()
	input := validBookInput()

	m.authorRepo.On("FindActiveByID", ctx, int64(5)).Return(testAuthor(), nil)
	m.bookRepo.On("ExistsISBN", ctx, input.ISBN).Return(true, nil)

	_, err := service.CreateBook(ctx, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestBookService_ListBooksByAuthor_MissingAuthorYieldsEmpty(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()

	m.authorRepo.On("FindActiveByID", ctx, int64(5)).Return(nil, repository.ErrAuthorNotFound)

	books, err := service.ListBooksByAuthor(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookService_ListBooksByAuthor_Success(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Book{entity.RestoreBook(2, "Dune", "9780441172719", 1965, "scifi", 3, 5)}
	m.authorRepo.On("FindActiveByID", ctx, int64(5)).Return(testAuthor(), nil)
	m.bookRepo.On("ListByAuthor", ctx, int64(5)).Return(expected, nil)

	books, err := service.ListBooksByAuthor(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestBookService_UpdateBook_ISBNTakenByOtherBook(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()
	input := validBookInput()

	existing := entity.RestoreBook(2, "Dune", "9780441172720", 1965, "scifi", 3, 5)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(existing, nil)
	m.bookRepo.On("ExistsISBNForOtherBook", ctx, int64(2), input.ISBN).Return(true, nil)

	_, err := service.UpdateBook(ctx, 2, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestBookService_UpdateBook_NewAuthorMustBeActive(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()
	input := validBookInput()
	input.AuthorID = 7

	existing := entity.RestoreBook(2, "Dune", "9780441172719", 1965, "scifi", 3, 5)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(existing, nil)
	m.authorRepo.On("FindActiveByID", ctx, int64(7)).Return(nil, repository.ErrAuthorNotFound)

	_, err := service.UpdateBook(ctx, 2, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestBookService_DeleteBook_BlockedByOpenLoan(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()

	existing := entity.RestoreBook(2, "Dune", "9780441172719", 1965, "scifi", 3, 5)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(existing, nil)
	m.loanRepo.On("ExistsActiveLoanForBook", ctx, int64(2)).Return(true, nil)

	err := service.DeleteBook(ctx, 2)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestBookService_DeleteBook_Success(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()

	existing := entity.RestoreBook(2, "Dune", "9780441172719", 1965, "scifi", 3, 5)
	m.bookRepo.On("FindByID", ctx, int64(2)).Return(existing, nil)
	m.loanRepo.On("ExistsActiveLoanForBook", ctx, int64(2)).Return(false, nil)
	m.bookRepo.On("Delete", ctx, int64(2)).Return(nil)

	err := service.DeleteBook(ctx, 2)
	require.NoError(t, err)
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	service, m := newBookServiceForTest(t)
	ctx := context.Background()

	m.bookRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrBookNotFound)

	_, err := service.GetBook(ctx, 404)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}
