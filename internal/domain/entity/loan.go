package entity

import (
	"time"

	domainerrors "biblio/internal/domain/errors"
)

const (
	// loanPeriodDays is the length of the initial loan period and of a
	// single renewal.
	loanPeriodDays = 14

	// dailyFineAmount is charged per calendar day of delay on return.
	dailyFineAmount = 2.0
)

// Loan represents a book checkout by a user. The due date is fixed at
// creation; returning the loan computes the fine from calendar days of
// delay, ignoring time-of-day.
type Loan struct {
	id         int64
	userID     int64
	bookID     int64
	loanDate   time.Time
	dueDate    time.Time
	returnDate *time.Time
	fineAmount float64
	finePaid   float64
	renewed    bool
	active     bool
}

// NewLoan creates an active loan starting now and due in 14 days.
func NewLoan(userID, bookID int64, now time.Time) *Loan {
	return &Loan{
		userID:   userID,
		bookID:   bookID,
		loanDate: now,
		dueDate:  now.AddDate(0, 0, loanPeriodDays),
		active:   true,
	}
}

// RestoreLoan rehydrates a loan from persisted state. Only the persistence
// layer should use it.
func RestoreLoan(id, userID, bookID int64, loanDate, dueDate time.Time, returnDate *time.Time, fineAmount, finePaid float64, renewed, active bool) *Loan {
	return &Loan{
		id:         id,
		userID:     userID,
		bookID:     bookID,
		loanDate:   loanDate,
		dueDate:    dueDate,
		returnDate: returnDate,
		fineAmount: fineAmount,
		finePaid:   finePaid,
		renewed:    renewed,
		active:     active,
	}
}

// ID returns the loan's identifier.
func (l *Loan) ID() int64 { return l.id }

// UserID returns the borrowing user's identifier.
func (l *Loan) UserID() int64 { return l.userID }

// BookID returns the borrowed book's identifier.
func (l *Loan) BookID() int64 { return l.bookID }

// LoanDate returns when the loan started.
func (l *Loan) LoanDate() time.Time { return l.loanDate }

// DueDate returns the current due date.
func (l *Loan) DueDate() time.Time { return l.dueDate }

// ReturnDate returns when the book was actually returned, nil while the
// loan is open.
func (l *Loan) ReturnDate() *time.Time { return l.returnDate }

// FineAmount returns the total fine accrued on return.
func (l *Loan) FineAmount() float64 { return l.fineAmount }

// FinePaid returns how much of the fine has been paid.
func (l *Loan) FinePaid() float64 { return l.finePaid }

// Renewed reports whether the loan has already been renewed.
func (l *Loan) Renewed() bool { return l.renewed }

// Active reports whether the loan is still open.
func (l *Loan) Active() bool { return l.active }

// PendingFine returns the unpaid part of the fine.
func (l *Loan) PendingFine() float64 {
	return l.fineAmount - l.finePaid
}

// IsOverdue reports whether an open loan has passed its due date.
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.active && now.After(l.dueDate)
}

// Renew extends the due date by another 14 days. A loan can be renewed at
// most once, only while active and not yet overdue.
func (l *Loan) Renew(now time.Time) error {
	if !l.active {
		return domainerrors.NewBusinessRuleError("loan is no longer active")
	}
	if l.renewed {
		return domainerrors.NewBusinessRuleError("loan has already been renewed")
	}
	if now.After(l.dueDate) {
		return domainerrors.NewBusinessRuleError("overdue loan cannot be renewed")
	}

	l.dueDate = l.dueDate.AddDate(0, 0, loanPeriodDays)
	l.renewed = true

	return nil
}

// Return closes the loan, recording the return date and charging a fine of
// 2.0 per calendar day of delay. Time-of-day is ignored in the comparison.
func (l *Loan) Return(now time.Time) error {
	if !l.active {
		return domainerrors.NewBusinessRuleError("loan has already been returned")
	}

	returned := now
	l.returnDate = &returned
	l.active = false

	if overdueDays := daysBetween(l.dueDate, now); overdueDays > 0 {
		l.fineAmount = float64(overdueDays) * dailyFineAmount
	}

	return nil
}
