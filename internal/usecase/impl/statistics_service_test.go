package impl

import (
	"context"
	"testing"
	"time"

	"biblio/internal/domain/entity"
	"biblio/internal/mocks"
	"biblio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatisticsServiceForTest(t *testing.T) (usecase.StatisticsUsecase, *mocks.MockLoanRepository) {
	loanRepo := mocks.NewMockLoanRepository(t)
	service := NewStatisticsService(StatisticsServiceParams{LoanRepo: loanRepo})

	return service, loanRepo
}

func statTestDetails() []*entity.LoanDetail {
	herbert := entity.RestoreAuthor(10, "Frank Herbert",
		time.Date(1920, 10, 8, 0, 0, 0, 0, time.UTC), "USA", "", true)
	leguin := entity.RestoreAuthor(20, "Ursula K. Le Guin",
		time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC), "USA", "", true)

	dune := entity.RestoreBook(1, "Dune", "9780441172719", 1965, "scifi", 3, 10)
	messiah := entity.RestoreBook(2, "Dune Messiah", "9780441172696", 1969, "scifi", 2, 10)
	dispossessed := entity.RestoreBook(3, "The Dispossessed", "9780061054884", 1974, "scifi", 1, 20)

	newDetail := func(id int64, book *entity.Book, author *entity.Author) *entity.LoanDetail {
		return &entity.LoanDetail{
			Loan:   entity.RestoreLoan(id, 1, book.ID(), testNow, testNow.AddDate(0, 0, 14), nil, 0, 0, false, true),
			Book:   book,
			Author: author,
		}
	}

	return []*entity.LoanDetail{
		newDetail(1, dune, herbert),
		newDetail(2, dune, herbert),
		newDetail(3, messiah, herbert),
		newDetail(4, dispossessed, leguin),
	}
}

func TestStatisticsService_TopBooks_OrderedByCountThenID(t *testing.T) {
	service, loanRepo := newStatisticsServiceForTest(t)
	ctx := context.Background()

	loanRepo.On("ListAllActiveDetailed", ctx).Return(statTestDetails(), nil)

	entries, err := service.TopBooks(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(1), entries[0].Book.ID())
	assert.Equal(t, 2, entries[0].LoanCount)
	// One loan each; the lower book id wins the tie.
	assert.Equal(t, int64(2), entries[1].Book.ID())
	assert.Equal(t, int64(3), entries[2].Book.ID())
}

func TestStatisticsService_TopBooks_AppliesLimit(t *testing.T) {
	service, loanRepo := newStatisticsServiceForTest(t)
	ctx := context.Background()

	loanRepo.On("ListAllActiveDetailed", ctx).Return(statTestDetails(), nil)

	entries, err := service.TopBooks(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStatisticsService_TopAuthors_AggregatesAcrossBooks(t *testing.T) {
	service, loanRepo := newStatisticsServiceForTest(t)
	ctx := context.Background()

	loanRepo.On("ListAllActiveDetailed", ctx).Return(statTestDetails(), nil)

	entries, err := service.TopAuthors(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(10), entries[0].Author.ID())
	assert.Equal(t, 3, entries[0].LoanCount)
	assert.Equal(t, int64(20), entries[1].Author.ID())
	assert.Equal(t, 1, entries[1].LoanCount)
}

func TestStatisticsService_TopBooks_NoOpenLoans(t *testing.T) {
	service, loanRepo := newStatisticsServiceForTest(t)
	ctx := context.Background()

	loanRepo.On("ListAllActiveDetailed", ctx).Return([]*entity.LoanDetail{}, nil)

	entries, err := service.TopBooks(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
