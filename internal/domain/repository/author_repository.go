// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/errors"
)

// ErrAuthorNotFound is returned when no active author matches the query.
var ErrAuthorNotFound = errors.New("author not found")

// AuthorRepository defines the interface for author-related database operations.
type AuthorRepository interface {
	// FindActiveByID retrieves an active author by id. Inactive authors
	// are treated as absent.
	FindActiveByID(ctx context.Context, id int64) (*entity.Author, error)

	// List retrieves a page of authors ordered by name.
	List(ctx context.Context, page, size int) ([]*entity.Author, error)

	// ExistsByName reports whether an author with the exact name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create persists a new author and returns it with its generated id.
	Create(ctx context.Context, author *entity.Author) (*entity.Author, error)

	// Update persists the author's current state.
	Update(ctx context.Context, author *entity.Author) error
}
