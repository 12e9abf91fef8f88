// Package errors defines the application-level error kinds raised by the
// domain and use case layers. Three recoverable kinds exist: not-found,
// validation failures on entity construction/mutation, and business rule
// violations. Anything else is treated as an unhandled fault by the
// delivery layer.
package errors

import (
	"net/http"

	"biblio/internal/errors"
)

// Business error codes shared by all errors of the same kind.
const (
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeBusinessRuleViolation = "BUSINESS_RULE_VIOLATION"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewValidationError creates a validation-kind error for malformed input to
// an entity constructor or mutator.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeValidationFailed, message, "")
}

// NewBusinessRuleError creates a business-rule-kind error for rule failures
// such as stock exhaustion, pending fines, or renewal while overdue.
func NewBusinessRuleError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeBusinessRuleViolation, message, "")
}

// NewNotFoundError creates a not-found-kind error for an absent entity.
func NewNotFoundError(errorCode, message string) *BaseError {
	return NewBaseError(http.StatusNotFound, errorCode, message, "")
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined not-found errors, one per aggregate.
var (
	ErrAuthorNotFound = NewNotFoundError("AUTHOR_NOT_FOUND", "author not found")

	ErrBookNotFound = NewNotFoundError("BOOK_NOT_FOUND", "book not found")

	ErrUserNotFound = NewNotFoundError("USER_NOT_FOUND", "user not found")

	ErrLoanNotFound = NewNotFoundError("LOAN_NOT_FOUND", "loan not found")
)

// IsNotFound reports whether err carries the not-found kind.
func IsNotFound(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() == http.StatusNotFound
}

// IsValidation reports whether err carries the validation kind.
func IsValidation(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == CodeValidationFailed
}

// IsBusinessRule reports whether err carries the business-rule kind.
func IsBusinessRule(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == CodeBusinessRuleViolation
}
