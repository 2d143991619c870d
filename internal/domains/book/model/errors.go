package model

import "errors"

var (
	// Validation Errors
	ErrInvalidRequest = errors.New("invalid book request")

	// Business Rule Errors
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateBook = errors.New("book with the same title by the same author already exists")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateBook):
		return "DUPLICATE_BOOK"
	case errors.Is(err, ErrInvalidRequest):
		return "INVALID_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrDuplicateBook):
		return 409
	case errors.Is(err, ErrInvalidRequest):
		return 400
	default:
		return 500
	}
}
