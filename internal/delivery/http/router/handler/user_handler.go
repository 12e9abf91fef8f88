package handler

import (
	"net/http"
	"time"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type createUserRequest struct {
	Name        string `json:"name" validate:"required"`
	CPF         string `json:"cpf" validate:"required,len=11,numeric"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	GuardianCPF string `json:"guardian_cpf" validate:"omitempty,len=11,numeric"`
}

type updateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	CPF   string `json:"cpf" validate:"required,len=11,numeric"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// Create handles the user registration request.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birth date")
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:        req.Name,
		CPF:         req.CPF,
		Email:       req.Email,
		Phone:       req.Phone,
		BirthDate:   birthDate,
		GuardianCPF: req.GuardianCPF,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User created successfully")
}

// GetByCPF handles the user lookup by document number.
func (h *UserHandler) GetByCPF(c echo.Context) error {
	cpf := c.Param("cpf")
	if cpf == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cpf")
	}

	user, err := h.uc.GetUserByCPF(c.Request().Context(), cpf)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// List handles the active user listing request.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListActiveUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users), "")
}

// Update handles the user update request.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, &usecase.UpdateUserInput{
		Name:  req.Name,
		CPF:   req.CPF,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// Deactivate handles the user deactivation request.
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.DeactivateUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deactivated successfully")
}
