package handler

import (
	"net/http"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoanHandler holds dependencies for loan-related handlers.
type LoanHandler struct {
	uc usecase.LoanUsecase
}

// NewLoanHandler is the constructor for LoanHandler, injected by Fx.
func NewLoanHandler(uc usecase.LoanUsecase) *LoanHandler {
	return &LoanHandler{uc: uc}
}

type createLoanRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	BookID int64 `json:"book_id" validate:"required,gt=0"`
}

// Create handles the loan opening request.
func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loan input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.uc.CreateLoan(c.Request().Context(), req.UserID, req.BookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLoanResponse(loan), "Loan created successfully")
}

// Get handles the loan detail request.
func (h *LoanHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan id")
	}

	loan, err := h.uc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLoanResponse(loan), "")
}

// Return handles the loan return request.
func (h *LoanHandler) Return(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan id")
	}

	loan, err := h.uc.ReturnLoan(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLoanResponse(loan), "Loan returned successfully")
}

// Renew handles the loan renewal request.
func (h *LoanHandler) Renew(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid loan id")
	}

	loan, err := h.uc.RenewLoan(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLoanResponse(loan), "Loan renewed successfully")
}

// ListActiveByUser handles the open loan listing for a user.
func (h *LoanHandler) ListActiveByUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	loans, err := h.uc.ListActiveLoansByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLoanResponses(loans), "")
}

// ListHistoryByUser handles the closed loan listing for a user.
func (h *LoanHandler) ListHistoryByUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	loans, err := h.uc.ListLoanHistoryByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLoanResponses(loans), "")
}
