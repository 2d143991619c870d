package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity, independent of database/API concerns.
// The book list is a derived, query-time association (lookup by author id),
// not a stored back-pointer, so it does not live on the entity.
type Author struct {
	ID uuid.UUID `json:"id" db:"id"`

	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`

	// Email is globally unique, enforced by the store.
	Email string `json:"email" db:"email"`

	// Optional details
	Bio   *string `json:"bio" db:"bio"`
	Genre *string `json:"genre" db:"genre"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
