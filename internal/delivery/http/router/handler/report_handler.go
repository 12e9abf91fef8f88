package handler

import (
	"net/http"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for reporting handlers.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

type pendingFinesResponse struct {
	Total float64 `json:"total"`
}

// PendingFines handles the pending fine total request.
func (h *ReportHandler) PendingFines(c echo.Context) error {
	total, err := h.uc.TotalPendingFines(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &pendingFinesResponse{Total: total}, "")
}

// OverdueUsers handles the overdue user listing request.
func (h *ReportHandler) OverdueUsers(c echo.Context) error {
	users, err := h.uc.UsersWithOverdueLoans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users), "")
}
