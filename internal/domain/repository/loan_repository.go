package repository

import (
	"context"
	"time"

	"biblio/internal/domain/entity"
	"biblio/internal/errors"
)

// ErrLoanNotFound is returned when a loan is not found.
var ErrLoanNotFound = errors.New("loan not found")

// LoanRepository defines the interface for loan-related database operations.
type LoanRepository interface {
	// FindByID retrieves a loan by its unique id.
	FindByID(ctx context.Context, id int64) (*entity.Loan, error)

	// ListActiveByUser retrieves the user's currently open loans.
	ListActiveByUser(ctx context.Context, userID int64) ([]*entity.Loan, error)

	// ListHistoryByUser retrieves the user's closed loans.
	ListHistoryByUser(ctx context.Context, userID int64) ([]*entity.Loan, error)

	// HasPendingFine reports whether the user owes any unpaid fine across
	// their loan history.
	HasPendingFine(ctx context.Context, userID int64) (bool, error)

	// ExistsActiveLoanForBook reports whether any open loan references
	// the book.
	ExistsActiveLoanForBook(ctx context.Context, bookID int64) (bool, error)

	// ListAllActiveDetailed retrieves every open loan joined with its
	// book and the book's author.
	ListAllActiveDetailed(ctx context.Context) ([]*entity.LoanDetail, error)

	// ListWithPendingFines retrieves loans whose fine exceeds the paid
	// amount, regardless of active state.
	ListWithPendingFines(ctx context.Context) ([]*entity.Loan, error)

	// ListUsersWithOverdueLoans retrieves the distinct users holding at
	// least one open loan whose due date is before now.
	ListUsersWithOverdueLoans(ctx context.Context, now time.Time) ([]*entity.User, error)

	// Create persists a new loan and returns it with its generated id.
	Create(ctx context.Context, loan *entity.Loan) (*entity.Loan, error)

	// Update persists the loan's current state.
	Update(ctx context.Context, loan *entity.Loan) error
}
