package handler

import (
	"net/http"

	"biblio/internal/delivery/http/response"
	"biblio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for book-related handlers.
type BookHandler struct {
	uc usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase) *BookHandler {
	return &BookHandler{uc: uc}
}

type bookRequest struct {
	Title           string `json:"title" validate:"required"`
	ISBN            string `json:"isbn" validate:"required,min=10,max=13"`
	PublicationYear int    `json:"publication_year" validate:"required,gt=0"`
	Category        string `json:"category" validate:"required"`
	Stock           int    `json:"stock" validate:"gte=0"`
	AuthorID        int64  `json:"author_id" validate:"required,gt=0"`
}

func (r *bookRequest) toInput() *usecase.BookInput {
	return &usecase.BookInput{
		Title:           r.Title,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
		Category:        r.Category,
		Stock:           r.Stock,
		AuthorID:        r.AuthorID,
	}
}

// Create handles the book registration request.
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.uc.CreateBook(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookResponse(book), "Book created successfully")
}

// Get handles the book detail request.
func (h *BookHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	book, err := h.uc.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book), "")
}

// List handles the filtered book listing request.
func (h *BookHandler) List(c echo.Context) error {
	filter := &usecase.BookFilter{
		Title: c.QueryParam("title"),
		ISBN:  c.QueryParam("isbn"),
	}

	books, err := h.uc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books), "")
}

// ListInStock handles the available book listing request.
func (h *BookHandler) ListInStock(c echo.Context) error {
	books, err := h.uc.ListBooksInStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books), "")
}

// ListByAuthor handles the per-author book listing request.
func (h *BookHandler) ListByAuthor(c echo.Context) error {
	authorID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid author id")
	}

	books, err := h.uc.ListBooksByAuthor(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books), "")
}

// Update handles the book update request.
func (h *BookHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.uc.UpdateBook(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book), "Book updated successfully")
}

// Delete handles the book removal request.
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book id")
	}

	if err := h.uc.DeleteBook(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book deleted successfully")
}
