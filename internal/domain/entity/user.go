package entity

import (
	"strings"
	"time"
	"unicode"

	domainerrors "biblio/internal/domain/errors"
)

const (
	cpfLength = 11

	// adultAge is the age from which a reader no longer needs a guardian.
	adultAge = 16
)

// User represents a library reader. Minors require a guardian CPF at
// registration. Inactive users are kept for loan history.
type User struct {
	id           int64
	name         string
	cpf          string
	email        string
	phone        string
	birthDate    time.Time
	guardianCPF  string
	registeredAt time.Time
	active       bool
}

// NewUser validates the input and returns a new active user. The
// registration timestamp comes from the injected clock value.
func NewUser(name, cpf, email, phone string, birthDate time.Time, guardianCPF string, now time.Time) (*User, error) {
	if err := validateUser(name, cpf, email, birthDate, guardianCPF, now); err != nil {
		return nil, err
	}

	return &User{
		name:         strings.TrimSpace(name),
		cpf:          strings.TrimSpace(cpf),
		email:        strings.TrimSpace(email),
		phone:        strings.TrimSpace(phone),
		birthDate:    birthDate,
		guardianCPF:  strings.TrimSpace(guardianCPF),
		registeredAt: now,
		active:       true,
	}, nil
}

// RestoreUser rehydrates a user from persisted state without re-running
// creation validation. Only the persistence layer should use it.
func RestoreUser(id int64, name, cpf, email, phone string, birthDate time.Time, guardianCPF string, registeredAt time.Time, active bool) *User {
	return &User{
		id:           id,
		name:         name,
		cpf:          cpf,
		email:        email,
		phone:        phone,
		birthDate:    birthDate,
		guardianCPF:  guardianCPF,
		registeredAt: registeredAt,
		active:       active,
	}
}

// ID returns the user's identifier.
func (u *User) ID() int64 { return u.id }

// Name returns the user's name.
func (u *User) Name() string { return u.name }

// CPF returns the user's CPF document number.
func (u *User) CPF() string { return u.cpf }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Phone returns the user's phone number.
func (u *User) Phone() string { return u.phone }

// BirthDate returns the user's date of birth.
func (u *User) BirthDate() time.Time { return u.birthDate }

// GuardianCPF returns the guardian's CPF, empty for adult users.
func (u *User) GuardianCPF() string { return u.guardianCPF }

// RegisteredAt returns the registration timestamp.
func (u *User) RegisteredAt() time.Time { return u.registeredAt }

// Active reports whether the user is active.
func (u *User) Active() bool { return u.active }

// Update replaces the user's contact data. Inactive users cannot be
// updated. Birth date and guardian are fixed at registration.
func (u *User) Update(name, cpf, email, phone string) error {
	if !u.active {
		return domainerrors.NewBusinessRuleError("inactive user cannot be updated")
	}

	if strings.TrimSpace(name) == "" {
		return domainerrors.NewValidationError("user name must not be blank")
	}
	if err := validateCPF(cpf); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" {
		return domainerrors.NewValidationError("user email must not be blank")
	}

	u.name = strings.TrimSpace(name)
	u.cpf = strings.TrimSpace(cpf)
	u.email = strings.TrimSpace(email)
	u.phone = strings.TrimSpace(phone)

	return nil
}

// Deactivate soft-deletes the user. Deactivating an already-inactive user
// fails rather than silently succeeding.
func (u *User) Deactivate() error {
	if !u.active {
		return domainerrors.NewBusinessRuleError("user is already inactive")
	}

	u.active = false

	return nil
}

func validateUser(name, cpf, email string, birthDate time.Time, guardianCPF string, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.NewValidationError("user name must not be blank")
	}
	if err := validateCPF(cpf); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" {
		return domainerrors.NewValidationError("user email must not be blank")
	}
	if dateOnly(birthDate).After(dateOnly(now)) {
		return domainerrors.NewValidationError("user birth date must not be in the future")
	}
	if ageOn(birthDate, now) < adultAge {
		if strings.TrimSpace(guardianCPF) == "" {
			return domainerrors.NewValidationError("users under 16 require a guardian CPF")
		}
		if err := validateCPF(guardianCPF); err != nil {
			return domainerrors.NewValidationError("guardian CPF must contain exactly 11 digits")
		}
	}

	return nil
}

func validateCPF(cpf string) error {
	trimmed := strings.TrimSpace(cpf)
	if trimmed == "" {
		return domainerrors.NewValidationError("user CPF must not be blank")
	}
	if len(trimmed) != cpfLength {
		return domainerrors.NewValidationError("user CPF must contain exactly 11 digits")
	}
	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			return domainerrors.NewValidationError("user CPF must contain exactly 11 digits")
		}
	}

	return nil
}
