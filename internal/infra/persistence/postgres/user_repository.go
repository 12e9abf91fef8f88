package postgres

import (
	"context"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"
	"biblio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by id, active or not.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByCPF retrieves a user by CPF document number.
func (repo *userRepository) FindByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by cpf")
	}

	return toUserDomain(&userM), nil
}

// ListActive retrieves all active users ordered by name.
func (repo *userRepository) ListActive(ctx context.Context) ([]*entity.User, error) {
	var usersM []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&usersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active users")
	}

	return toUserDomainList(usersM), nil
}

// ExistsByCPF reports whether any user is registered with the CPF.
func (repo *userRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return repo.exists(ctx, "cpf = ?", cpf)
}

// ExistsByEmail reports whether any user is registered with the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

// ExistsCPFForOtherUser reports whether a user other than userID is registered with the CPF.
func (repo *userRepository) ExistsCPFForOtherUser(ctx context.Context, userID int64, cpf string) (bool, error) {
	return repo.exists(ctx, "cpf = ? AND id <> ?", cpf, userID)
}

// ExistsEmailForOtherUser reports whether a user other than userID is registered with the email.
func (repo *userRepository) ExistsEmailForOtherUser(ctx context.Context, userID int64, email string) (bool, error) {
	return repo.exists(ctx, "email = ? AND id <> ?", email, userID)
}

func (repo *userRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where(query, args...).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user and returns it with its generated id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return toUserDomain(userM), nil
}

// Update persists the user's current state.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"name":   userM.Name,
			"cpf":    userM.CPF,
			"email":  userM.Email,
			"phone":  userM.Phone,
			"active": userM.Active,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return entity.RestoreUser(data.ID, data.Name, data.CPF, data.Email, data.Phone,
		data.BirthDate, data.GuardianCPF, data.RegisteredAt, data.Active)
}

func toUserDomainList(data []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(data))
	for _, userM := range data {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID(),
		Name:         data.Name(),
		CPF:          data.CPF(),
		Email:        data.Email(),
		Phone:        data.Phone(),
		BirthDate:    data.BirthDate(),
		GuardianCPF:  data.GuardianCPF(),
		RegisteredAt: data.RegisteredAt(),
		Active:       data.Active(),
	}
}
