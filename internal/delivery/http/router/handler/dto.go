// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"biblio/internal/domain/entity"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

type authorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Country   string `json:"country"`
	Biography string `json:"biography,omitempty"`
	Active    bool   `json:"active"`
}

func toAuthorResponse(author *entity.Author) *authorResponse {
	if author == nil {
		return nil
	}

	return &authorResponse{
		ID:        author.ID(),
		Name:      author.Name(),
		BirthDate: author.BirthDate().Format(dateLayout),
		Country:   author.Country(),
		Biography: author.Biography(),
		Active:    author.Active(),
	}
}

func toAuthorResponses(authors []*entity.Author) []*authorResponse {
	out := make([]*authorResponse, 0, len(authors))
	for _, author := range authors {
		out = append(out, toAuthorResponse(author))
	}

	return out
}

type bookResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
	Category        string `json:"category"`
	Stock           int    `json:"stock"`
	AuthorID        int64  `json:"author_id"`
}

func toBookResponse(book *entity.Book) *bookResponse {
	if book == nil {
		return nil
	}

	return &bookResponse{
		ID:              book.ID(),
		Title:           book.Title(),
		ISBN:            book.ISBN(),
		PublicationYear: book.PublicationYear(),
		Category:        book.Category(),
		Stock:           book.Stock(),
		AuthorID:        book.AuthorID(),
	}
}

func toBookResponses(books []*entity.Book) []*bookResponse {
	out := make([]*bookResponse, 0, len(books))
	for _, book := range books {
		out = append(out, toBookResponse(book))
	}

	return out
}

type userResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	BirthDate    string `json:"birth_date"`
	GuardianCPF  string `json:"guardian_cpf,omitempty"`
	RegisteredAt string `json:"registered_at"`
	Active       bool   `json:"active"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:           user.ID(),
		Name:         user.Name(),
		CPF:          user.CPF(),
		Email:        user.Email(),
		Phone:        user.Phone(),
		BirthDate:    user.BirthDate().Format(dateLayout),
		GuardianCPF:  user.GuardianCPF(),
		RegisteredAt: user.RegisteredAt().Format(time.RFC3339),
		Active:       user.Active(),
	}
}

func toUserResponses(users []*entity.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

type loanResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	BookID     int64   `json:"book_id"`
	LoanDate   string  `json:"loan_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date,omitempty"`
	FineAmount float64 `json:"fine_amount"`
	FinePaid   float64 `json:"fine_paid"`
	Renewed    bool    `json:"renewed"`
	Active     bool    `json:"active"`
}

func toLoanResponse(loan *entity.Loan) *loanResponse {
	if loan == nil {
		return nil
	}

	resp := &loanResponse{
		ID:         loan.ID(),
		UserID:     loan.UserID(),
		BookID:     loan.BookID(),
		LoanDate:   loan.LoanDate().Format(time.RFC3339),
		DueDate:    loan.DueDate().Format(time.RFC3339),
		FineAmount: loan.FineAmount(),
		FinePaid:   loan.FinePaid(),
		Renewed:    loan.Renewed(),
		Active:     loan.Active(),
	}
	if returnDate := loan.ReturnDate(); returnDate != nil {
		formatted := returnDate.Format(time.RFC3339)
		resp.ReturnDate = &formatted
	}

	return resp
}

func toLoanResponses(loans []*entity.Loan) []*loanResponse {
	out := make([]*loanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, toLoanResponse(loan))
	}

	return out
}
