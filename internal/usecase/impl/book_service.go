package impl

import (
	"context"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bookService struct {
	bookRepo   repository.BookRepository
	authorRepo repository.AuthorRepository
	loanRepo   repository.LoanRepository
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo   repository.BookRepository
	AuthorRepo repository.AuthorRepository
	LoanRepo   repository.LoanRepository
}

// NewBookService creates a new book service instance
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo:   params.BookRepo,
		authorRepo: params.AuthorRepo,
		loanRepo:   params.LoanRepo,
	}
}

// CreateBook registers a new book. The author must be active and the ISBN
// must not be in use.
func (s *bookService) CreateBook(ctx context.Context, input *usecase.BookInput) (*entity.Book, error) {
	if _, err := s.findActiveAuthor(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	exists, err := s.bookRepo.ExistsISBN(ctx, input.ISBN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check isbn")
	}
	if exists {
		return nil, domainerrors.NewBusinessRuleError("isbn already registered")
	}

	book, err := entity.NewBook(input.Title, input.ISBN, input.PublicationYear, input.Category, input.Stock, input.AuthorID)
	if err != nil {
		return nil, err
	}

	created, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	return created, nil
}

// GetBook retrieves a book by id
func (s *bookService) GetBook(ctx context.Context, id int64) (*entity.Book, error) {
	return s.findBook(ctx, id)
}

// ListBooks retrieves books matching the optional filter
func (s *bookService) ListBooks(ctx context.Context, filter *usecase.BookFilter) ([]*entity.Book, error) {
	var title, isbn string
	if filter != nil {
		title = filter.Title
		isbn = filter.ISBN
	}

	books, err := s.bookRepo.List(ctx, title, isbn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// ListBooksInStock retrieves books with at least one copy available
func (s *bookService) ListBooksInStock(ctx context.Context) ([]*entity.Book, error) {
	books, err := s.bookRepo.ListInStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books in stock")
	}

	return books, nil
}

// ListBooksByAuthor retrieves the active author's books. A missing or
// inactive author yields an empty list.
func (s *bookService) ListBooksByAuthor(ctx context.Context, authorID int64) ([]*entity.Book, error) {
	_, err := s.authorRepo.FindActiveByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return []*entity.Book{}, nil
		}

		return nil, errors.Wrap(err, "failed to find author")
	}

	books, err := s.bookRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books by author")
	}

	return books, nil
}

// UpdateBook replaces the book's attributes. Moving the book to another
// author re-validates that author, and the ISBN must not belong to a
// different book.
func (s *bookService) UpdateBook(ctx context.Context, id int64, input *usecase.BookInput) (*entity.Book, error) {
	book, err := s.findBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AuthorID != book.AuthorID() {
		if _, err := s.findActiveAuthor(ctx, input.AuthorID); err != nil {
			return nil, err
		}
	}

	taken, err := s.bookRepo.ExistsISBNForOtherBook(ctx, id, input.ISBN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check isbn")
	}
	if taken {
		return nil, domainerrors.NewBusinessRuleError("isbn already registered to another book")
	}

	if err := book.Update(input.Title, input.ISBN, input.PublicationYear, input.Category, input.Stock, input.AuthorID); err != nil {
		return nil, err
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, errors.Wrap(err, "failed to update book")
	}

	return book, nil
}

// DeleteBook removes a book that has no open loans
func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.findBook(ctx, id); err != nil {
		return err
	}

	onLoan, err := s.loanRepo.ExistsActiveLoanForBook(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check active loans")
	}
	if onLoan {
		return domainerrors.NewBusinessRuleError("book has open loans")
	}

	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete book")
	}

	return nil
}

func (s *bookService) findBook(ctx context.Context, id int64) (*entity.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

func (s *bookService) findActiveAuthor(ctx context.Context, authorID int64) (*entity.Author, error) {
	author, err := s.authorRepo.FindActiveByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author")
	}

	return author, nil
}
