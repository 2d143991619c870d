package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// ServiceInterface defines business logic operations for the Author domain.
type ServiceInterface interface {
	// SearchByName matches the query as a case-insensitive substring of
	// the first OR last name.
	// Business rules:
	// - An empty match set is a failure, not an empty success:
	//   returns ErrAuthorNotFound (deliberate API behavior, preserved).
	// - Each hit carries the author's full book list; nested books have
	//   no author of their own.
	SearchByName(ctx context.Context, query string) ([]model.AuthorResponse, error)

	// Update applies a partial update to an author.
	// Business rules:
	// - Only supplied, non-blank fields are applied; the rest keep
	//   their stored values.
	// - Email uniqueness is validated against the pre-update stored
	//   state; the write happens only after validation passes.
	// Errors: ErrAuthorNotFound, ErrDuplicateEmail, ErrMissingName
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error)
}
