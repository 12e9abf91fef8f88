package usecase

import (
	"context"
	"time"

	"biblio/internal/domain/entity"
)

// CreateUserInput represents the input for registering a new user
type CreateUserInput struct {
	Name        string    `json:"name"`
	CPF         string    `json:"cpf"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	BirthDate   time.Time `json:"birth_date"`
	GuardianCPF string    `json:"guardian_cpf"`
}

// UpdateUserInput represents the input for updating an existing user
type UpdateUserInput struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UserUsecase defines the interface for user management use cases
type UserUsecase interface {
	// CreateUser registers a new user after checking CPF and email uniqueness
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetUserByCPF retrieves a user by CPF document number
	GetUserByCPF(ctx context.Context, cpf string) (*entity.User, error)

	// ListActiveUsers retrieves all active users ordered by name
	ListActiveUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser replaces the user's contact attributes
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)

	// DeactivateUser marks the user as inactive. Users holding open loans
	// or owing fines cannot be deactivated.
	DeactivateUser(ctx context.Context, id int64) error
}
