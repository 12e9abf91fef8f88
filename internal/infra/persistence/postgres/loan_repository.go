package postgres

import (
	"context"
	"time"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"
	"biblio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loanRepository implements the repository.LoanRepository interface using GORM.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

// FindByID retrieves a loan by its unique id.
func (repo *loanRepository) FindByID(ctx context.Context, id int64) (*entity.Loan, error) {
	var loanM model.LoanModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&loanM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by id")
	}

	return toLoanDomain(&loanM), nil
}

// ListActiveByUser retrieves the user's currently open loans.
func (repo *loanRepository) ListActiveByUser(ctx context.Context, userID int64) ([]*entity.Loan, error) {
	var loansM []*model.LoanModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("loan_date").
		Find(&loansM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active loans by user")
	}

	return toLoanDomainList(loansM), nil
}

// ListHistoryByUser retrieves the user's closed loans.
func (repo *loanRepository) ListHistoryByUser(ctx context.Context, userID int64) ([]*entity.Loan, error) {
	var loansM []*model.LoanModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, false).
		Order("loan_date").
		Find(&loansM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loan history by user")
	}

	return toLoanDomainList(loansM), nil
}

// HasPendingFine reports whether the user owes any unpaid fine across
// their loan history.
func (repo *loanRepository) HasPendingFine(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("user_id = ? AND fine_amount > fine_paid", userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check pending fines")
	}

	return count > 0, nil
}

// ExistsActiveLoanForBook reports whether any open loan references the book.
func (repo *loanRepository) ExistsActiveLoanForBook(ctx context.Context, bookID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("book_id = ? AND active = ?", bookID, true).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check active loans for book")
	}

	return count > 0, nil
}

// ListAllActiveDetailed retrieves every open loan joined with its book and
// the book's author.
func (repo *loanRepository) ListAllActiveDetailed(ctx context.Context) ([]*entity.LoanDetail, error) {
	var loansM []*model.LoanModel
	err := repo.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Author").
		Where("active = ?", true).
		Order("loan_date").
		Find(&loansM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active loans with details")
	}

	details := make([]*entity.LoanDetail, 0, len(loansM))
	for _, loanM := range loansM {
		detail := &entity.LoanDetail{Loan: toLoanDomain(loanM)}
		if loanM.Book != nil {
			detail.Book = toBookDomain(loanM.Book)
			detail.Author = toAuthorDomain(loanM.Book.Author)
		}
		details = append(details, detail)
	}

	return details, nil
}

// ListWithPendingFines retrieves loans whose fine exceeds the paid amount.
func (repo *loanRepository) ListWithPendingFines(ctx context.Context) ([]*entity.Loan, error) {
	var loansM []*model.LoanModel
	err := repo.db.WithContext(ctx).
		Where("fine_amount > fine_paid").
		Order("loan_date").
		Find(&loansM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loans with pending fines")
	}

	return toLoanDomainList(loansM), nil
}

// ListUsersWithOverdueLoans retrieves the distinct users holding at least
// one open loan whose due date is before now.
func (repo *loanRepository) ListUsersWithOverdueLoans(ctx context.Context, now time.Time) ([]*entity.User, error) {
	var usersM []*model.UserModel
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Distinct("users.*").
		Joins("JOIN loans ON loans.user_id = users.id").
		Where("loans.active = ? AND loans.due_date < ?", true, now).
		Order("users.name").
		Find(&usersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users with overdue loans")
	}

	return toUserDomainList(usersM), nil
}

// Create persists a new loan and returns it with its generated id.
func (repo *loanRepository) Create(ctx context.Context, loan *entity.Loan) (*entity.Loan, error) {
	loanM := fromLoanDomain(loan)
	if err := repo.db.WithContext(ctx).Create(loanM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create loan")
	}

	return toLoanDomain(loanM), nil
}

// Update persists the loan's current state.
func (repo *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)
	result := repo.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("id = ?", loanM.ID).
		Updates(map[string]any{
			"due_date":    loanM.DueDate,
			"return_date": loanM.ReturnDate,
			"fine_amount": loanM.FineAmount,
			"fine_paid":   loanM.FinePaid,
			"renewed":     loanM.Renewed,
			"active":      loanM.Active,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update loan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoanNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLoanDomain converts a GORM LoanModel to a domain Loan entity.
func toLoanDomain(data *model.LoanModel) *entity.Loan {
	if data == nil {
		return nil
	}

	return entity.RestoreLoan(data.ID, data.UserID, data.BookID, data.LoanDate, data.DueDate,
		data.ReturnDate, data.FineAmount, data.FinePaid, data.Renewed, data.Active)
}

func toLoanDomainList(data []*model.LoanModel) []*entity.Loan {
	loans := make([]*entity.Loan, 0, len(data))
	for _, loanM := range data {
		loans = append(loans, toLoanDomain(loanM))
	}

	return loans
}

// fromLoanDomain converts a domain Loan entity to a GORM LoanModel for persistence.
func fromLoanDomain(data *entity.Loan) *model.LoanModel {
	if data == nil {
		return nil
	}

	return &model.LoanModel{
		ID:         data.ID(),
		UserID:     data.UserID(),
		BookID:     data.BookID(),
		LoanDate:   data.LoanDate(),
		DueDate:    data.DueDate(),
		ReturnDate: data.ReturnDate(),
		FineAmount: data.FineAmount(),
		FinePaid:   data.FinePaid(),
		Renewed:    data.Renewed(),
		Active:     data.Active(),
	}
}
