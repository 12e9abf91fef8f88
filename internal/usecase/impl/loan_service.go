// Package impl contains the concrete implementations of the use case interfaces.
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

// maxActiveLoans is the number of loans a user may hold open at once.
const maxActiveLoans = 3

type loanService struct {
	txManager repository.TransactionManager
	loanRepo  repository.LoanRepository
	clock     service.Clock
}

// LoanServiceParams holds dependencies for LoanService, injected by Fx.
type LoanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LoanRepo  repository.LoanRepository
	Clock     service.Clock
}

// NewLoanService creates a new loan service instance
func NewLoanService(params LoanServiceParams) usecase.LoanUsecase {
	return &loanService{
		txManager: params.TxManager,
		loanRepo:  params.LoanRepo,
		clock:     params.Clock,
	}
}

// CreateLoan opens a loan for the user and book. The eligibility checks and
// the stock decrement run in one transaction so a rejected request never
// consumes stock.
func (s *loanService) CreateLoan(ctx context.Context, userID, bookID int64) (*entity.Loan, error) {
	var created *entity.Loan
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if !user.Active() {
			return domainerrors.NewBusinessRuleError("user is inactive")
		}

		loanRepo := repos.LoanRepo()
		hasPending, err := loanRepo.HasPendingFine(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to check pending fines")
		}
		if hasPending {
			return domainerrors.NewBusinessRuleError("user has pending fines")
		}

		activeLoans, err := loanRepo.ListActiveByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list active loans")
		}
		if len(activeLoans) >= maxActiveLoans {
			return domainerrors.NewBusinessRuleError("user reached the active loan limit")
		}

		bookRepo := repos.BookRepo()
		book, err := bookRepo.FindByID(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to find book")
		}
		if err := book.DecrementStock(); err != nil {
			return err
		}
		if err := bookRepo.Update(ctx, book); err != nil {
			return errors.Wrap(err, "failed to update book stock")
		}

		loan := entity.NewLoan(userID, bookID, s.clock.Now())
		created, err = loanRepo.Create(ctx, loan)
		if err != nil {
			return errors.Wrap(err, "failed to create loan")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ReturnLoan closes an open loan and restores the book's stock. The fine is
// computed by the loan entity from the due and return dates.
func (s *loanService) ReturnLoan(ctx context.Context, loanID int64) (*entity.Loan, error) {
	var returned *entity.Loan
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		loanRepo := repos.LoanRepo()
		loan, err := loanRepo.FindByID(ctx, loanID)
		if err != nil {
			if errors.Is(err, repository.ErrLoanNotFound) {
				return domainerrors.ErrLoanNotFound
			}

			return errors.Wrap(err, "failed to find loan")
		}

		if err := loan.Return(s.clock.Now()); err != nil {
			return err
		}

		// Restore stock only while the book is still in the catalog.
		bookRepo := repos.BookRepo()
		book, err := bookRepo.FindByID(ctx, loan.BookID())
		switch {
		case err == nil:
			book.IncrementStock()
			if err := bookRepo.Update(ctx, book); err != nil {
				return errors.Wrap(err, "failed to restore book stock")
			}
		case !errors.Is(err, repository.ErrBookNotFound):
			return errors.Wrap(err, "failed to find book")
		}

		if err := loanRepo.Update(ctx, loan); err != nil {
			return errors.Wrap(err, "failed to update loan")
		}
		returned = loan

		return nil
	})
	if err != nil {
		return nil, err
	}

	return returned, nil
}

// RenewLoan extends an open loan's due date by one loan period.
func (s *loanService) RenewLoan(ctx context.Context, loanID int64) (*entity.Loan, error) {
	loan, err := s.findLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}

	if err := loan.Renew(s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, errors.Wrap(err, "failed to update loan")
	}

	return loan, nil
}

// GetLoan retrieves a loan by id
func (s *loanService) GetLoan(ctx context.Context, loanID int64) (*entity.Loan, error) {
	return s.findLoan(ctx, loanID)
}

// ListActiveLoansByUser retrieves the user's open loans
func (s *loanService) ListActiveLoansByUser(ctx context.Context, userID int64) ([]*entity.Loan, error) {
	loans, err := s.loanRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active loans")
	}

	return loans, nil
}

// ListLoanHistoryByUser retrieves the user's closed loans
func (s *loanService) ListLoanHistoryByUser(ctx context.Context, userID int64) ([]*entity.Loan, error) {
	loans, err := s.loanRepo.ListHistoryByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loan history")
	}

	return loans, nil
}

func (s *loanService) findLoan(ctx context.Context, loanID int64) (*entity.Loan, error) {
	loan, err := s.loanRepo.FindByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, repository.ErrLoanNotFound) {
			return nil, domainerrors.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan")
	}

	return loan, nil
}
