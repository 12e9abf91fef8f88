package impl

import (
	"context"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/domain/service"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

type authorService struct {
	authorRepo repository.AuthorRepository
	clock      service.Clock
}

// AuthorServiceParams holds dependencies for AuthorService, injected by Fx.
type AuthorServiceParams struct {
	fx.In

	AuthorRepo repository.AuthorRepository
	Clock      service.Clock
}

// NewAuthorService creates a new author service instance
func NewAuthorService(params AuthorServiceParams) usecase.AuthorUsecase {
	return &authorService{
		authorRepo: params.AuthorRepo,
		clock:      params.Clock,
	}
}

// CreateAuthor registers a new author. Author names are unique.
func (s *authorService) CreateAuthor(ctx context.Context, input *usecase.AuthorInput) (*entity.Author, error) {
	exists, err := s.authorRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check author name")
	}
	if exists {
		return nil, domainerrors.NewBusinessRuleError("author name already registered")
	}

	author, err := entity.NewAuthor(input.Name, input.BirthDate, input.Country, input.Biography, s.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := s.authorRepo.Create(ctx, author)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	return created, nil
}

// GetAuthor retrieves an active author by id
func (s *authorService) GetAuthor(ctx context.Context, id int64) (*entity.Author, error) {
	return s.findActiveAuthor(ctx, id)
}

// ListAuthors retrieves a page of authors ordered by name
func (s *authorService) ListAuthors(ctx context.Context, page, size int) ([]*entity.Author, error) {
	if page < 1 {
		page = defaultPage
	}
	if size < 1 {
		size = defaultPageSize
	}

	authors, err := s.authorRepo.List(ctx, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	return authors, nil
}

// UpdateAuthor replaces the author's attributes
func (s *authorService) UpdateAuthor(ctx context.Context, id int64, input *usecase.AuthorInput) (*entity.Author, error) {
	author, err := s.findActiveAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := author.Update(input.Name, input.BirthDate, input.Country, input.Biography, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return nil, errors.Wrap(err, "failed to update author")
	}

	return author, nil
}

// DeactivateAuthor marks the author as inactive
func (s *authorService) DeactivateAuthor(ctx context.Context, id int64) error {
	author, err := s.findActiveAuthor(ctx, id)
	if err != nil {
		return err
	}

	if err := author.Deactivate(); err != nil {
		return err
	}

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return errors.Wrap(err, "failed to update author")
	}

	return nil
}

func (s *authorService) findActiveAuthor(ctx context.Context, id int64) (*entity.Author, error) {
	author, err := s.authorRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author")
	}

	return author, nil
}
