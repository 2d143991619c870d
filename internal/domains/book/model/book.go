package model

import (
	"time"

	"github.com/google/uuid"
)

// Book is the domain entity. A book is owned by exactly one author and
// is never updated or deleted once created.
type Book struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`
	Genre *string   `json:"genre" db:"genre"`

	AuthorID uuid.UUID `json:"author_id" db:"author_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined author data (populated only by queries that JOIN authors)
	AuthorFirstName string  `json:"-" db:"author_first_name"`
	AuthorLastName  string  `json:"-" db:"author_last_name"`
	AuthorEmail     string  `json:"-" db:"author_email"`
	AuthorBio       *string `json:"-" db:"author_bio"`
	AuthorGenre     *string `json:"-" db:"author_genre"`
}
