package model

import "errors"

var (
	// Validation Errors
	ErrValidation = errors.New("validation failed")

	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
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
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail):
		return 409
	case errors.Is(err, ErrValidation):
		return 400
	default:
		return 500
	}
}
