package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// UpdateAuthorRequest carries a partial update. Every field is optional:
// nil means "not supplied", and unsupplied fields are never touched.
type UpdateAuthorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Bio       *string `json:"bio"`
	Genre     *string `json:"genre"`
}

// Validate runs format-level checks only. Ordering-sensitive business
// rules (duplicate email, missing name) belong to the update validator.
func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.FirstName, validation.Length(0, 255)),
		validation.Field(&r.LastName, validation.Length(0, 255)),
		validation.Field(&r.Genre, validation.Length(0, 100)),
	)
}

// BookSummary is the book projection nested under an author response.
// It deliberately carries no author of its own to bound recursion.
type BookSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Genre *string   `json:"genre,omitempty"`
}

// AuthorResponse is the API-facing author projection.
type AuthorResponse struct {
	ID        uuid.UUID     `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Bio       *string       `json:"bio,omitempty"`
	Genre     *string       `json:"genre,omitempty"`
	Books     []BookSummary `json:"books"`
}

// ToResponse converts an Author plus its (queried) books to AuthorResponse.
func ToResponse(a *Author, books []BookSummary) *AuthorResponse {
	if books == nil {
		books = []BookSummary{}
	}
	return &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Bio:       a.Bio,
		Genre:     a.Genre,
		Books:     books,
	}
}
