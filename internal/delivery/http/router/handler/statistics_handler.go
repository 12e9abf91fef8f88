package handler

import (
	"net/http"
	"strconv"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultTopLimit bounds statistics listings when no limit is requested.
const defaultTopLimit = 10

// StatisticsHandler holds dependencies for statistics handlers.
type StatisticsHandler struct {
	uc usecase.StatisticsUsecase
}

// NewStatisticsHandler is the constructor for StatisticsHandler, injected by Fx.
func NewStatisticsHandler(uc usecase.StatisticsUsecase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

type topBookResponse struct {
	Book      *bookResponse `json:"book"`
	LoanCount int           `json:"loan_count"`
}

type topAuthorResponse struct {
	Author    *authorResponse `json:"author"`
	LoanCount int             `json:"loan_count"`
}

// TopBooks handles the most-borrowed-books request.
func (h *StatisticsHandler) TopBooks(c echo.Context) error {
	entries, err := h.uc.TopBooks(c.Request().Context(), queryLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*topBookResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &topBookResponse{
			Book:      toBookResponse(entry.Book),
			LoanCount: entry.LoanCount,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}

// TopAuthors handles the most-borrowed-authors request.
func (h *StatisticsHandler) TopAuthors(c echo.Context) error {
	entries, err := h.uc.TopAuthors(c.Request().Context(), queryLimit(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*topAuthorResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &topAuthorResponse{
			Author:    toAuthorResponse(entry.Author),
			LoanCount: entry.LoanCount,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}

func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		return defaultTopLimit
	}

	return limit
}
