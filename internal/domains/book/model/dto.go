package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ============ REQUESTS ============

// AuthorPayload is the author block of an add-book request. When the
// email resolves to an existing author, the store's record wins and the
// rest of this payload is discarded.
type AuthorPayload struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Bio       *string `json:"bio"`
	Genre     *string `json:"genre"`
}

// AddBookRequest is the add-book payload.
type AddBookRequest struct {
	Title  string         `json:"title"`
	Genre  *string        `json:"genre"`
	Author *AuthorPayload `json:"author"`
}

// Validate runs format-level checks only. The ordering-sensitive
// reconciliation checks (blank title, missing payload, blank email,
// missing names for a new author) stay in the service so their strict
// evaluation order is preserved.
func (r AddBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 500)),
		validation.Field(&r.Genre, validation.Length(0, 100)),
		validation.Field(&r.Author),
	)
}

func (p AuthorPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email,
			validation.When(p.Email != "", is.Email.Error("invalid email format")),
		),
		validation.Field(&p.FirstName, validation.Length(0, 255)),
		validation.Field(&p.LastName, validation.Length(0, 255)),
	)
}

// ============ RESPONSES ============

// AuthorSummary is the author projection used by the book API. In a
// nested position its Books field is omitted to bound recursion; as the
// add-book response it carries exactly the one just-saved book.
type AuthorSummary struct {
	ID        uuid.UUID      `json:"id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Email     string         `json:"email"`
	Bio       *string        `json:"bio,omitempty"`
	Genre     *string        `json:"genre,omitempty"`
	Books     []BookResponse `json:"books,omitempty"`
}

// BookResponse is the API-facing book projection.
type BookResponse struct {
	ID     uuid.UUID      `json:"id"`
	Title  string         `json:"title"`
	Genre  *string        `json:"genre,omitempty"`
	Author *AuthorSummary `json:"author,omitempty"`
}

// ToResponse converts a Book (with joined author data) to BookResponse.
// The nested author carries no book list of its own.
func ToResponse(b *Book) BookResponse {
	return BookResponse{
		ID:    b.ID,
		Title: b.Title,
		Genre: b.Genre,
		Author: &AuthorSummary{
			ID:        b.AuthorID,
			FirstName: b.AuthorFirstName,
			LastName:  b.AuthorLastName,
			Email:     b.AuthorEmail,
			Bio:       b.AuthorBio,
			Genre:     b.AuthorGenre,
		},
	}
}
