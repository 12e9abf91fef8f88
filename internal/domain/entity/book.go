package entity

import (
	"strings"

	domainerrors "biblio/internal/domain/errors"
)

// ISBN length bounds, covering both ISBN-10 and ISBN-13 forms.
const (
	isbnMinLength = 10
	isbnMaxLength = 13
)

// Book represents a catalogued title with a physical stock count. Stock is
// mutated only through DecrementStock and IncrementStock so it can never
// go negative.
type Book struct {
	id              int64
	title           string
	isbn            string
	publicationYear int
	stock           int
	category        string
	authorID        int64
}

// NewBook validates the input and returns a new book.
func NewBook(title, isbn string, publicationYear int, category string, stock int, authorID int64) (*Book, error) {
	if err := validateBook(title, isbn, publicationYear, category, stock, authorID); err != nil {
		return nil, err
	}

	return &Book{
		title:           strings.TrimSpace(title),
		isbn:            strings.TrimSpace(isbn),
		publicationYear: publicationYear,
		stock:           stock,
		category:        strings.TrimSpace(category),
		authorID:        authorID,
	}, nil
}

// RestoreBook rehydrates a book from persisted state without re-running
// creation validation. Only the persistence layer should use it.
func RestoreBook(id int64, title, isbn string, publicationYear int, category string, stock int, authorID int64) *Book {
	return &Book{
		id:              id,
		title:           title,
		isbn:            isbn,
		publicationYear: publicationYear,
		stock:           stock,
		category:        category,
		authorID:        authorID,
	}
}

// ID returns the book's identifier.
func (b *Book) ID() int64 { return b.id }

// Title returns the book's title.
func (b *Book) Title() string { return b.title }

// ISBN returns the book's ISBN.
func (b *Book) ISBN() string { return b.isbn }

// PublicationYear returns the year the book was published.
func (b *Book) PublicationYear() int { return b.publicationYear }

// Stock returns the number of copies currently available.
func (b *Book) Stock() int { return b.stock }

// Category returns the book's category.
func (b *Book) Category() string { return b.category }

// AuthorID returns the identifier of the owning author.
func (b *Book) AuthorID() int64 { return b.authorID }

// Update replaces the book's data after re-running the creation validation.
func (b *Book) Update(title, isbn string, publicationYear int, category string, stock int, authorID int64) error {
	if err := validateBook(title, isbn, publicationYear, category, stock, authorID); err != nil {
		return err
	}

	b.title = strings.TrimSpace(title)
	b.isbn = strings.TrimSpace(isbn)
	b.publicationYear = publicationYear
	b.stock = stock
	b.category = strings.TrimSpace(category)
	b.authorID = authorID

	return nil
}

// DecrementStock consumes one copy. It fails when no copies are left,
// which keeps the stock count from ever going negative.
func (b *Book) DecrementStock() error {
	if b.stock == 0 {
		return domainerrors.NewBusinessRuleError("book is out of stock")
	}

	b.stock--

	return nil
}

// IncrementStock restores one copy to stock.
func (b *Book) IncrementStock() {
	b.stock++
}

func validateBook(title, isbn string, publicationYear int, category string, stock int, authorID int64) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.NewValidationError("book title must not be blank")
	}

	trimmedISBN := strings.TrimSpace(isbn)
	if trimmedISBN == "" {
		return domainerrors.NewValidationError("book ISBN must not be blank")
	}
	if len(trimmedISBN) < isbnMinLength || len(trimmedISBN) > isbnMaxLength {
		return domainerrors.NewValidationError("book ISBN must be between 10 and 13 characters")
	}
	if publicationYear <= 0 {
		return domainerrors.NewValidationError("book publication year must be positive")
	}
	if strings.TrimSpace(category) == "" {
		return domainerrors.NewValidationError("book category must not be blank")
	}
	if stock < 0 {
		return domainerrors.NewValidationError("book stock must not be negative")
	}
	if authorID <= 0 {
		return domainerrors.NewValidationError("book author id must be positive")
	}

	return nil
}
