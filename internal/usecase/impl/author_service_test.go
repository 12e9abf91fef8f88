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

func newAuthorServiceForTest(t *testing.T) (usecase.AuthorUsecase, *mocks.MockAuthorRepository) {
	authorRepo := mocks.NewMockAuthorRepository(t)
	service := NewAuthorService(AuthorServiceParams{
		AuthorRepo: authorRepo,
		Clock:      &mocks.FixedClock{Time: testNow},
	})

	return service, authorRepo
}

func validAuthorInput() *usecase.AuthorInput {
	return &usecase.AuthorInput{
		Name:      "Ursula K. Le Guin",
		BirthDate: time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC),
		Country:   "USA",
		Biography: "Science fiction and fantasy writer",
	}
}

func TestAuthorService_CreateAuthor_Success(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()
	input := validAuthorInput()

	authorRepo.On("ExistsByName", ctx, input.Name).Return(false, nil)
	authorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Author")).
		Return(entity.RestoreAuthor(1, input.Name, input.BirthDate, input.Country, input.Biography, true), nil)

	author, err := service.CreateAuthor(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), author.ID())
	assert.Equal(t, input.Name, author.Name())
	assert.True(t, author.Active())
}

func TestAuthorService_CreateAuthor_DuplicateName(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()
	input := validAuthorInput()

	authorRepo.On("ExistsByName", ctx, input.Name).Return(true, nil)

	_, err := service.CreateAuthor(ctx, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessRule(err))
}

func TestAuthorService_CreateAuthor_InvalidInput(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()
	input := validAuthorInput()
	input.Country = ""

	authorRepo.On("ExistsByName", ctx, input.Name).Return(false, nil)

	_, err := service.CreateAuthor(ctx, input)
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
}

func TestAuthorService_GetAuthor_NotFound(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()

	authorRepo.On("FindActiveByID", ctx, int64(404)).Return(nil, repository.ErrAuthorNotFound)

	_, err := service.GetAuthor(ctx, 404)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestAuthorService_ListAuthors_DefaultsPagination(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()

	authorRepo.On("List", ctx, 1, 20).Return([]*entity.Author{}, nil)

	authors, err := service.ListAuthors(ctx, 0, -5)
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestAuthorService_UpdateAuthor_Success(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()
	input := validAuthorInput()
	input.Biography = "Updated biography"

	existing := entity.RestoreAuthor(1, "Ursula K. Le Guin",
		time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC), "USA", "old", true)
	authorRepo.On("FindActiveByID", ctx, int64(1)).Return(existing, nil)
	authorRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Author) bool {
		return a.Biography() == "Updated biography"
	})).Return(nil)

	updated, err := service.UpdateAuthor(ctx, 1, input)
	require.NoError(t, err)
	assert.Equal(t, "Updated biography", updated.Biography())
}

func TestAuthorService_DeactivateAuthor_Success(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()

	existing := entity.RestoreAuthor(1, "Ursula K. Le Guin",
		time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC), "USA", "", true)
	authorRepo.On("FindActiveByID", ctx, int64(1)).Return(existing, nil)
	authorRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Author) bool {
		return !a.Active()
	})).Return(nil)

	err := service.DeactivateAuthor(ctx, 1)
	require.NoError(t, err)
}

func TestAuthorService_DeactivateAuthor_NotFound(t *testing.T) {
	service, authorRepo := newAuthorServiceForTest(t)
	ctx := context.Background()

	authorRepo.On("FindActiveByID", ctx, int64(404)).Return(nil, repository.ErrAuthorNotFound)

	err := service.DeactivateAuthor(ctx, 404)
	require.Error(t, err)
	assert.True(t, domainerrors.IsNotFound(err))
}
