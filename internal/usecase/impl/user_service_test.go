package impl

import (
	"context"
	"testing"
	"time"

	"biblio/internal/domain/entity"
	domainerrors "biblio/internal/domain/errors"
	"biblio/internal/domain/repository"
	"biblio/internal/mocks"
	"biblio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo *mocks.MockUserRepository
	loanRepo *mocks.MockLoanRepository
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		userRepo: mocks.NewMockUserRepository(t),
		loanRepo: mocks.NewMockLoanRepository(t),
	}
	service := NewUserService(UserServiceParams{
		UserRepo: m.userRepo,
		LoanRepo: m.loanRepo,
		Clock:    &mocks.FixedClock{Time: testNow},
	})

	return service, m
}

func validCreateUserInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Name:      "Alice",
		CPF:       "12345678901",
		Email:     "alice@example.com",
		Phone:     "555-0100",
		BirthDate: time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()
	input := validCreateUserInput()

	m.userRepo.On("ExistsByCPF", ctx, input.CPF).Return(false, nil)
	m.userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	m.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.RegisteredAt().Equal(testNow)
	})).Return(entity.RestoreUser(1, input.Name, input.CPF, input.Email, input.Phone, input.BirthDate, "", testNow, true), nil)

	user, err := service.CreateUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID())
	assert.True(t, user.Active())
}

func TestUserService_CreateUser_DuplicateCPF(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()
	input := validCreateUserInput()

	m.userRepo.On("ExistsByCPF", ctx, input.CPF).Return(true, nil)

	_, err := service.CreateUser(ctx, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()
	input := validCreateUserInput()

	m.userRepo.On("ExistsByCPF", ctx, input.CPF).Return(false, nil)
	m.userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil)

	_, err := service.CreateUser(ctx, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestUserService_CreateUser_MinorWithoutGuardian(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()
	input := validCreateUserInput()
	input.BirthDate = testNow.AddDate(-12, 0, 0)

	m.userRepo.On("ExistsByCPF", ctx, input.CPF).Return(false, nil)
	m.userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil)

	_, err := service.CreateUser(ctx, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestUserService_GetUserByCPF_NotFound(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByCPF", ctx, "00000000000").Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUserByCPF(ctx, "00000000000")
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestUserService_UpdateUser_InactiveBehavesAsMissing(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()

	inactive := entity.RestoreUser(1, "Alice", "12345678901", "alice@example.com", "",
		time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC), "", testNow.AddDate(-1, 0, 0), false)
	m.userRepo.On("FindByID", ctx, int64(1)).Return(inactive, nil)

	_, err := service.UpdateUser(ctx, 1, &usecase.UpdateUserInput{
		Name: "Alice", CPF: "12345678901", Email: "alice@example.com",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestUserService_UpdateUser_CPFTakenByOtherUser(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.userRepo.On("ExistsCPFForOtherUser", ctx, int64(1), "99988877766").Return(true, nil)

	_, err := service.UpdateUser(ctx, 1, &usecase.UpdateUserInput{
		Name: "Alice", CPF: "99988877766", Email: "alice@example.com",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.userRepo.On("ExistsCPFForOtherUser", ctx, int64(1), "12345678901").Return(false, nil)
	m.userRepo.On("ExistsEmailForOtherUser", ctx, int64(1), "alice@new.example.com").Return(false, nil)
	m.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email() == "alice@new.example.com"
	})).Return(nil)

	user, err := service.UpdateUser(ctx, 1, &usecase.UpdateUserInput{
		Name: "Alice", CPF: "12345678901", Email: "alice@new.example.com", Phone: "555-0199",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@new.example.com", user.Email())
}

func TestUserService_DeactivateUser_BlockedByOpenLoans(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("ListActiveByUser", ctx, int64(1)).
		Return([]*entity.Loan{entity.NewLoan(1, 2, testNow)}, nil)

	err := service.DeactivateUser(ctx, 1)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestUserService_DeactivateUser_BlockedByPendingFine(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("ListActiveByUser", ctx, int64(1)).Return([]*entity.Loan{}, nil)
	m.loanRepo.On("HasPendingFine", ctx, int64(1)).Return(true, nil)

	err := service.DeactivateUser(ctx, 1)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestUserService_DeactivateUser_Success(t *testing.T) {
	service, m := newUserServiceForTest(t)
	ctx := context.Background()

	m.userRepo.On("FindByID", ctx, int64(1)).Return(activeTestUser(), nil)
	m.loanRepo.On("ListActiveByUser", ctx, int64(1)).Return([]*entity.Loan{}, nil)
	m.loanRepo.On("HasPendingFine", ctx, int64(1)).Return(false, nil)
	m.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return !u.Active()
	})).Return(nil)

	err := service.DeactivateUser(ctx, 1)
	require.NoError(t, err)
}
