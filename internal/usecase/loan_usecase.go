package usecase

import (
	"context"

	"biblio/internal/domain/entity"
)

// LoanUsecase defines the interface for the loan lifecycle use cases
type LoanUsecase interface {
	// CreateLoan opens a loan for the user and book, consuming one unit of
	// stock. The eligibility checks and the stock mutation run in a single
	// database transaction.
	CreateLoan(ctx context.Context, userID, bookID int64) (*entity.Loan, error)

	// ReturnLoan closes an open loan, computes any overdue fine and
	// restores the book's stock. Transactional.
	ReturnLoan(ctx context.Context, loanID int64) (*entity.Loan, error)

	// RenewLoan extends an open loan's due date by one loan period. A loan
	// can be renewed once, and only before its due date.
	RenewLoan(ctx context.Context, loanID int64) (*entity.Loan, error)

	// GetLoan retrieves a loan by id
	GetLoan(ctx context.Context, loanID int64) (*entity.Loan, error)

	// ListActiveLoansByUser retrieves the user's open loans
	ListActiveLoansByUser(ctx context.Context, userID int64) ([]*entity.Loan, error)

	// ListLoanHistoryByUser retrieves the user's closed loans
	ListLoanHistoryByUser(ctx context.Context, userID int64) ([]*entity.Loan, error)
}
