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

type userService struct {
	userRepo repository.UserRepository
	loanRepo repository.LoanRepository
	clock    service.Clock
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	LoanRepo repository.LoanRepository
	Clock    service.Clock
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		loanRepo: params.LoanRepo,
		clock:    params.Clock,
	}
}

// CreateUser registers a new user. CPF and email are unique across all users.
func (s *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	cpfTaken, err := s.userRepo.ExistsByCPF(ctx, input.CPF)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check cpf")
	}
	if cpfTaken {
		return nil, domainerrors.NewBusinessRuleError("cpf already registered")
	}

	emailTaken, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if emailTaken {
		return nil, domainerrors.NewBusinessRuleError("email already registered")
	}

	user, err := entity.NewUser(input.Name, input.CPF, input.Email, input.Phone, input.BirthDate, input.GuardianCPF, s.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return created, nil
}

// GetUserByCPF retrieves a user by CPF document number
func (s *userService) GetUserByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	user, err := s.userRepo.FindByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by cpf")
	}

	return user, nil
}

// ListActiveUsers retrieves all active users ordered by name
func (s *userService) ListActiveUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active users")
	}

	return users, nil
}

// UpdateUser replaces the user's contact attributes. Inactive users behave
// as if they do not exist.
func (s *userService) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := s.findActiveUser(ctx, id)
	if err != nil {
		return nil, err
	}

	cpfTaken, err := s.userRepo.ExistsCPFForOtherUser(ctx, id, input.CPF)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check cpf")
	}
	if cpfTaken {
		return nil, domainerrors.NewBusinessRuleError("cpf already registered to another user")
	}

	emailTaken, err := s.userRepo.ExistsEmailForOtherUser(ctx, id, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if emailTaken {
		return nil, domainerrors.NewBusinessRuleError("email already registered to another user")
	}

	if err := user.Update(input.Name, input.CPF, input.Email, input.Phone); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeactivateUser marks the user as inactive. Users holding open loans or
// owing fines cannot leave.
func (s *userService) DeactivateUser(ctx context.Context, id int64) error {
	user, err := s.findActiveUser(ctx, id)
	if err != nil {
		return err
	}

	activeLoans, err := s.loanRepo.ListActiveByUser(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to list active loans")
	}
	if len(activeLoans) > 0 {
		return domainerrors.NewBusinessRuleError("user has open loans")
	}

	hasPending, err := s.loanRepo.HasPendingFine(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check pending fines")
	}
	if hasPending {
		return domainerrors.NewBusinessRuleError("user has pending fines")
	}

	if err := user.Deactivate(); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

func (s *userService) findActiveUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Active() {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, nil
}
