package usecase

import (
	"context"

	"biblio/internal/domain/entity"
)

// BookInput carries the book attributes shared by create and update.
type BookInput struct {
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
	Category        string `json:"category"`
	Stock           int    `json:"stock"`
	AuthorID        int64  `json:"author_id"`
}

// BookFilter narrows ListBooks results. Empty fields match everything.
type BookFilter struct {
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}

// BookUsecase defines the interface for book catalog use cases
type BookUsecase interface {
	// CreateBook registers a new book after validating its author and ISBN
	CreateBook(ctx context.Context, input *BookInput) (*entity.Book, error)

	// GetBook retrieves a book by id
	GetBook(ctx context.Context, id int64) (*entity.Book, error)

	// ListBooks retrieves books matching the optional filter
	ListBooks(ctx context.Context, filter *BookFilter) ([]*entity.Book, error)

	// ListBooksInStock retrieves books with at least one copy available
	ListBooksInStock(ctx context.Context) ([]*entity.Book, error)

	// ListBooksByAuthor retrieves the active author's books. A missing or
	// inactive author yields an empty list rather than an error.
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]*entity.Book, error)

	// UpdateBook replaces the book's attributes
	UpdateBook(ctx context.Context, id int64, input *BookInput) (*entity.Book, error)

	// DeleteBook removes a book that has no open loans
	DeleteBook(ctx context.Context, id int64) error
}
