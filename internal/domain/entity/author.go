// Package entity contains the core business objects of the project. Each
// entity guards its own construction and mutation invariants: state is
// changed only through the exported methods, never by field assignment.
package entity

import (
	"strings"
	"time"

	domainerrors "biblio/internal/domain/errors"
)

// minimumAuthorAge is the youngest age at which an author may be registered.
const minimumAuthorAge = 16

// Author represents a registered book author. Inactive authors are kept for
// history but may no longer be linked to new books.
type Author struct {
	id        int64
	name      string
	birthDate time.Time
	country   string
	biography string
	active    bool
}

// NewAuthor validates the input and returns a new active author. The
// reference date is injected so age checks stay deterministic in tests.
func NewAuthor(name string, birthDate time.Time, country, biography string, now time.Time) (*Author, error) {
	if err := validateAuthor(name, birthDate, country, now); err != nil {
		return nil, err
	}

	return &Author{
		name:      strings.TrimSpace(name),
		birthDate: birthDate,
		country:   strings.TrimSpace(country),
		biography: biography,
		active:    true,
	}, nil
}

// RestoreAuthor rehydrates an author from persisted state without
// re-running creation validation. Only the persistence layer should use it.
func RestoreAuthor(id int64, name string, birthDate time.Time, country, biography string, active bool) *Author {
	return &Author{
		id:        id,
		name:      name,
		birthDate: birthDate,
		country:   country,
		biography: biography,
		active:    active,
	}
}

// ID returns the author's identifier.
func (a *Author) ID() int64 { return a.id }

// Name returns the author's display name.
func (a *Author) Name() string { return a.name }

// BirthDate returns the author's date of birth.
func (a *Author) BirthDate() time.Time { return a.birthDate }

// Country returns the author's country of origin.
func (a *Author) Country() string { return a.country }

// Biography returns the author's biography text.
func (a *Author) Biography() string { return a.biography }

// Active reports whether the author is active.
func (a *Author) Active() bool { return a.active }

// Update replaces the author's mutable data after re-running the creation
// validation. Inactive authors cannot be updated.
func (a *Author) Update(name string, birthDate time.Time, country, biography string, now time.Time) error {
	if !a.active {
		return domainerrors.NewBusinessRuleError("inactive author cannot be updated")
	}

	if err := validateAuthor(name, birthDate, country, now); err != nil {
		return err
	}

	a.name = strings.TrimSpace(name)
	a.birthDate = birthDate
	a.country = strings.TrimSpace(country)
	a.biography = biography

	return nil
}

// Deactivate soft-deletes the author. Deactivating an already-inactive
// author fails rather than silently succeeding.
func (a *Author) Deactivate() error {
	if !a.active {
		return domainerrors.NewBusinessRuleError("author is already inactive")
	}

	a.active = false

	return nil
}

func validateAuthor(name string, birthDate time.Time, country string, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.NewValidationError("author name must not be blank")
	}
	if strings.TrimSpace(country) == "" {
		return domainerrors.NewValidationError("author country must not be blank")
	}
	if dateOnly(birthDate).After(dateOnly(now)) {
		return domainerrors.NewValidationError("author birth date must not be in the future")
	}
	if ageOn(birthDate, now) < minimumAuthorAge {
		return domainerrors.NewValidationError("author must be at least 16 years old")
	}

	return nil
}
