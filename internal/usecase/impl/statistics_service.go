package impl

import (
	"context"
	"sort"

	"biblio/internal/domain/entity"
	"biblio/internal/domain/repository"
	"biblio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type statisticsService struct {
	loanRepo repository.LoanRepository
}

// StatisticsServiceParams holds dependencies for StatisticsService, injected by Fx.
type StatisticsServiceParams struct {
	fx.In

	LoanRepo repository.LoanRepository
}

// NewStatisticsService creates a new statistics service instance
func NewStatisticsService(params StatisticsServiceParams) usecase.StatisticsUsecase {
	return &statisticsService{loanRepo: params.LoanRepo}
}

// TopBooks retrieves the most borrowed books among open loans. Results are
// ordered by loan count descending, ties break on ascending book id.
func (s *statisticsService) TopBooks(ctx context.Context, limit int) ([]*usecase.TopBookEntry, error) {
	details, err := s.listActiveDetails(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]*usecase.TopBookEntry)
	for _, detail := range details {
		if detail.Book == nil {
			continue
		}
		entry, ok := counts[detail.Book.ID()]
		if !ok {
			entry = &usecase.TopBookEntry{Book: detail.Book}
			counts[detail.Book.ID()] = entry
		}
		entry.LoanCount++
	}

	entries := make([]*usecase.TopBookEntry, 0, len(counts))
	for _, entry := range counts {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LoanCount != entries[j].LoanCount {
			return entries[i].LoanCount > entries[j].LoanCount
		}

		return entries[i].Book.ID() < entries[j].Book.ID()
	})

	return truncate(entries, limit), nil
}

// TopAuthors retrieves the most borrowed authors among open loans. Results
// are ordered by loan count descending, ties break on ascending author id.
func (s *statisticsService) TopAuthors(ctx context.Context, limit int) ([]*usecase.TopAuthorEntry, error) {
	details, err := s.listActiveDetails(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]*usecase.TopAuthorEntry)
	for _, detail := range details {
		if detail.Author == nil {
			continue
		}
		entry, ok := counts[detail.Author.ID()]
		if !ok {
			entry = &usecase.TopAuthorEntry{Author: detail.Author}
			counts[detail.Author.ID()] = entry
		}
		entry.LoanCount++
	}

	entries := make([]*usecase.TopAuthorEntry, 0, len(counts))
	for _, entry := range counts {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LoanCount != entries[j].LoanCount {
			return entries[i].LoanCount > entries[j].LoanCount
		}

		return entries[i].Author.ID() < entries[j].Author.ID()
	})

	return truncate(entries, limit), nil
}

func (s *statisticsService) listActiveDetails(ctx context.Context) ([]*entity.LoanDetail, error) {
	details, err := s.loanRepo.ListAllActiveDetailed(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active loans with details")
	}

	return details, nil
}

func truncate[T any](entries []T, limit int) []T {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}

	return entries
}
