package model

import "errors"

var (
	// Validation Errors
	ErrValidation = errors.New("validation failed")

	// Business Rule Errors
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("referenced author does not exist")
	ErrDuplicateISBN  = errors.New("isbn already exists")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrAuthorNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDuplicateISBN):
		return "UNIQUE_VIOLATION"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateISBN):
		return 409
	case errors.Is(err, ErrValidation):
		return 400
	default:
		return 500
	}
}
