// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"
	"time"

	"biblio/internal/domain/entity"
)

// AuthorInput carries the author attributes shared by create and update.
type AuthorInput struct {
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	Country   string    `json:"country"`
	Biography string    `json:"biography"`
}

// AuthorUsecase defines the interface for author management use cases
type AuthorUsecase interface {
	// CreateAuthor registers a new author after checking name uniqueness
	CreateAuthor(ctx context.Context, input *AuthorInput) (*entity.Author, error)

	// GetAuthor retrieves an active author by id
	GetAuthor(ctx context.Context, id int64) (*entity.Author, error)

	// ListAuthors retrieves a page of authors ordered by name
	ListAuthors(ctx context.Context, page, size int) ([]*entity.Author, error)

	// UpdateAuthor replaces the author's attributes
	UpdateAuthor(ctx context.Context, id int64, input *AuthorInput) (*entity.Author, error)

	// DeactivateAuthor marks the author as inactive
	DeactivateAuthor(ctx context.Context, id int64) error
}
