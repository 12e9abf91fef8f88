package postgres

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"
	"biblio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authorRepository implements the repository.AuthorRepository interface using GORM.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

// FindActiveByID retrieves an active author by id. Inactive authors behave
// as if they do not exist.
func (repo *authorRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Author, error) {
	var authorM model.AuthorModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&authorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by id")
	}

	return toAuthorDomain(&authorM), nil
}

// List retrieves a page of authors ordered by name.
func (repo *authorRepository) List(ctx context.Context, page, size int) ([]*entity.Author, error) {
	var authorsM []*model.AuthorModel
	err := repo.db.WithContext(ctx).
		Order("name").
		Offset((page - 1) * size).
		Limit(size).
		Find(&authorsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	authors := make([]*entity.Author, 0, len(authorsM))
	for _, authorM := range authorsM {
		authors = append(authors, toAuthorDomain(authorM))
	}

	return authors, nil
}

// ExistsByName reports whether an author with the exact name exists.
func (repo *authorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AuthorModel{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check author name")
	}

	return count > 0, nil
}

// Create persists a new author and returns it with its generated id.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) (*entity.Author, error) {
	authorM := fromAuthorDomain(author)
	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	return toAuthorDomain(authorM), nil
}

// Update persists the author's current state.
func (repo *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)
	result := repo.db.WithContext(ctx).
		Model(&model.AuthorModel{}).
		Where("id = ?", authorM.ID).
		Updates(map[string]any{
			"name":       authorM.Name,
			"birth_date": authorM.BirthDate,
			"country":    authorM.Country,
			"biography":  authorM.Biography,
			"active":     authorM.Active,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update author")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAuthorDomain converts a GORM AuthorModel to a domain Author entity.
func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return entity.RestoreAuthor(data.ID, data.Name, data.BirthDate, data.Country, data.Biography, data.Active)
}

// fromAuthorDomain converts a domain Author entity to a GORM AuthorModel for persistence.
func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:        data.ID(),
		Name:      data.Name(),
		BirthDate: data.BirthDate(),
		Country:   data.Country(),
		Biography: data.Biography(),
		Active:    data.Active(),
	}
}
