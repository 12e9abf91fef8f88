package repository

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindByID retrieves a user by id, active or not.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByCPF retrieves a user by CPF document number.
	FindByCPF(ctx context.Context, cpf string) (*entity.User, error)

	// ListActive retrieves all active users ordered by name.
	ListActive(ctx context.Context) ([]*entity.User, error)

	// ExistsByCPF reports whether any user is registered with the CPF.
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)

	// ExistsByEmail reports whether any user is registered with the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsCPFForOtherUser reports whether a user other than userID is
	// registered with the CPF.
	ExistsCPFForOtherUser(ctx context.Context, userID int64, cpf string) (bool, error)

	// ExistsEmailForOtherUser reports whether a user other than userID is
	// registered with the email.
	ExistsEmailForOtherUser(ctx context.Context, userID int64, email string) (bool, error)

	// Create persists a new user and returns it with its generated id.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update persists the user's current state.
	Update(ctx context.Context, user *entity.User) error
}
