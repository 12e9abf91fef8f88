package handler

import (
	"net/http"
	"strconv"
	"time"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthorHandler holds dependencies for author-related handlers.
type AuthorHandler struct {
	uc usecase.AuthorUsecase
}

// NewAuthorHandler is the constructor for AuthorHandler, injected by Fx.
func NewAuthorHandler(uc usecase.AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{uc: uc}
}

type authorRequest struct {
	Name      string `json:"name" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Country   string `json:"country" validate:"required"`
	Biography string `json:"biography"`
}

func (r *authorRequest) toInput() (*usecase.AuthorInput, error) {
	birthDate, err := time.Parse(dateLayout, r.BirthDate)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthorInput{
		Name:      r.Name,
		BirthDate: birthDate,
		Country:   r.Country,
		Biography: r.Biography,
	}, nil
}

// Create handles the author registration request.
func (h *AuthorHandler) Create(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birth date")
	}

	author, err := h.uc.CreateAuthor(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthorResponse(author), "Author created successfully")
}

// Get handles the author detail request.
func (h *AuthorHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid author id")
	}

	author, err := h.uc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthorResponse(author), "")
}

// List handles the paginated author listing request.
func (h *AuthorHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	authors, err := h.uc.ListAuthors(c.Request().Context(), page, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthorResponses(authors), "")
}

// Update handles the author update request.
func (h *AuthorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid author id")
	}

	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birth date")
	}

	author, err := h.uc.UpdateAuthor(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthorResponse(author), "Author updated successfully")
}

// Deactivate handles the author deactivation request.
func (h *AuthorHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid author id")
	}

	if err := h.uc.DeactivateAuthor(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Author deactivated successfully")
}

// pathID parses a positive integer id path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid %s path parameter", name)
	}

	return id, nil
}
