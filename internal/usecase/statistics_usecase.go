package usecase

import (
	"context"

	"biblio/internal/domain/entity"
)

// TopBookEntry pairs a book with its number of open loans.
type TopBookEntry struct {
	Book      *entity.Book `json:"book"`
	LoanCount int          `json:"loan_count"`
}

// TopAuthorEntry pairs an author with the number of open loans of their books.
type TopAuthorEntry struct {
	Author    *entity.Author `json:"author"`
	LoanCount int            `json:"loan_count"`
}

// StatisticsUsecase defines the interface for loan statistics use cases
type StatisticsUsecase interface {
	// TopBooks retrieves the most borrowed books among open loans, ordered
	// by loan count descending. Ties break on ascending book id.
	TopBooks(ctx context.Context, limit int) ([]*TopBookEntry, error)

	// TopAuthors retrieves the most borrowed authors among open loans,
	// ordered by loan count descending. Ties break on ascending author id.
	TopAuthors(ctx context.Context, limit int) ([]*TopAuthorEntry, error)
}
