package entity

import (
	"testing"

	domainerrors "biblio/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook_Valid(t *testing.T) {
	book, err := NewBook("Dom Casmurro", "9788535910663", 1899, "Fiction", 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dom Casmurro", book.Title())
	assert.Equal(t, 5, book.Stock())
	assert.Equal(t, int64(1), book.AuthorID())
}

func TestNewBook_ISBNTooShort(t *testing.T) {
	_, err := NewBook("Dom Casmurro", "123456789", 1899, "Fiction", 5, 1)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestNewBook_ISBNTooLong(t *testing.T) {
	_, err := NewBook("Dom Casmurro", "12345678901234", 1899, "Fiction", 5, 1)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestNewBook_NonPositiveYear(t *testing.T) {
	_, err := NewBook("Dom Casmurro", "9788535910663", 0, "Fiction", 5, 1)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestNewBook_NegativeStock(t *testing.T) {
	_, err := NewBook("Dom Casmurro", "9788535910663", 1899, "Fiction", -1, 1)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestNewBook_InvalidAuthorID(t *testing.T) {
	_, err := NewBook("Dom Casmurro", "9788535910663", 1899, "Fiction", 5, 0)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestBookDecrementStock(t *testing.T) {
	book := RestoreBook(1, "Dom Casmurro", "9788535910663", 1899, "Fiction", 2, 1)

	require.NoError(t, book.DecrementStock())
	assert.Equal(t, 1, book.Stock())
	require.NoError(t, book.DecrementStock())
	assert.Equal(t, 0, book.Stock())
}

func TestBookDecrementStock_Exhausted(t *testing.T) {
	book := RestoreBook(1, "Dom Casmurro", "9788535910663", 1899, "Fiction", 0, 1)

	err := book.DecrementStock()
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
	assert.Equal(t, 0, book.Stock())
}

func TestBookIncrementStock(t *testing.T) {
	book := RestoreBook(1, "Dom Casmurro", "9788535910663", 1899, "Fiction", 0, 1)

	book.IncrementStock()
	assert.Equal(t, 1, book.Stock())
}
