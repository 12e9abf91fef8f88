package repository

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/errors"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the interface for book-related database operations.
type BookRepository interface {
	// FindByID retrieves a book by its unique id.
	FindByID(ctx context.Context, id int64) (*entity.Book, error)

	// List retrieves books, optionally filtered by title substring and
	// exact ISBN. Empty filters match everything.
	List(ctx context.Context, title, isbn string) ([]*entity.Book, error)

	// ListInStock retrieves books with at least one copy available.
	ListInStock(ctx context.Context) ([]*entity.Book, error)

	// ListByAuthor retrieves all books owned by the given author.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Book, error)

	// ExistsISBN reports whether any book carries the given ISBN.
	ExistsISBN(ctx context.Context, isbn string) (bool, error)

	// ExistsISBNForOtherBook reports whether a book other than bookID
	// carries the given ISBN.
	ExistsISBNForOtherBook(ctx context.Context, bookID int64, isbn string) (bool, error)

	// Create persists a new book and returns it with its generated id.
	Create(ctx context.Context, book *entity.Book) (*entity.Book, error)

	// Update persists the book's current state, including stock.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes a book permanently.
	Delete(ctx context.Context, id int64) error
}
