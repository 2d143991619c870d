package model

import "errors"

var (
	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateEmail = errors.New("email already in use by another author")
	ErrMissingName    = errors.New("first name or last name must be provided")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrMissingName):
		return "MISSING_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail):
		return 409
	case errors.Is(err, ErrMissingName):
		return 400
	default:
		return 500
	}
}
