package postgres

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"
	"biblio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// FindByID retrieves a book by its unique id.
func (repo *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// List retrieves books filtered by title substring and exact ISBN.
// Empty filters match everything.
func (repo *bookRepository) List(ctx context.Context, title, isbn string) ([]*entity.Book, error) {
	query := repo.db.WithContext(ctx).Model(&model.BookModel{})
	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}
	if isbn != "" {
		query = query.Where("isbn = ?", isbn)
	}

	var booksM []*model.BookModel
	if err := query.Order("title").Find(&booksM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return toBookDomainList(booksM), nil
}

// ListInStock retrieves books with at least one copy available.
func (repo *bookRepository) ListInStock(ctx context.Context) ([]*entity.Book, error) {
	var booksM []*model.BookModel
	err := repo.db.WithContext(ctx).
		Where("stock > 0").
		Order("title").
		Find(&booksM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books in stock")
	}

	return toBookDomainList(booksM), nil
}

// ListByAuthor retrieves all books owned by the given author.
func (repo *bookRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Book, error) {
	var booksM []*model.BookModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("title").
		Find(&booksM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books by author")
	}

	return toBookDomainList(booksM), nil
}

// ExistsISBN reports whether any book carries the given ISBN.
func (repo *bookRepository) ExistsISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("isbn = ?", isbn).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check isbn")
	}

	return count > 0, nil
}

// ExistsISBNForOtherBook reports whether a book other than bookID carries the given ISBN.
func (repo *bookRepository) ExistsISBNForOtherBook(ctx context.Context, bookID int64, isbn string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("isbn = ? AND id <> ?", isbn, bookID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check isbn for other book")
	}

	return count > 0, nil
}

// Create persists a new book and returns it with its generated id.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) (*entity.Book, error) {
	bookM := fromBookDomain(book)
	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	return toBookDomain(bookM), nil
}

// Update persists the book's current state, including stock.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", bookM.ID).
		Updates(map[string]any{
			"title":            bookM.Title,
			"isbn":             bookM.ISBN,
			"publication_year": bookM.PublicationYear,
			"category":         bookM.Category,
			"stock":            bookM.Stock,
			"author_id":        bookM.AuthorID,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a book permanently.
func (repo *bookRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return entity.RestoreBook(data.ID, data.Title, data.ISBN, data.PublicationYear, data.Category, data.Stock, data.AuthorID)
}

func toBookDomainList(data []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for _, bookM := range data {
		books = append(books, toBookDomain(bookM))
	}

	return books
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:              data.ID(),
		Title:           data.Title(),
		ISBN:            data.ISBN(),
		PublicationYear: data.PublicationYear(),
		Category:        data.Category(),
		Stock:           data.Stock(),
		AuthorID:        data.AuthorID(),
	}
}
