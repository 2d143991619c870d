package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface defines Author data access operations.
// This abstraction allows:
// 1. Easy testing via fakes
// 2. Swapping database implementations
// 3. Clear separation of concerns
type RepositoryInterface interface {
	// Create inserts a new author; the store assigns the id.
	// Errors: ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID retrieves author by UUID.
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetByEmail retrieves author by exact email.
	// Returns: ErrAuthorNotFound if not exists
	GetByEmail(ctx context.Context, email string) (*model.Author, error)

	// ExistsByEmail checks if any author holds the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByEmailExcludingID checks if an author other than id holds
	// the email. Used by the update validator.
	ExistsByEmailExcludingID(ctx context.Context, email string, id uuid.UUID) (bool, error)

	// FindByName returns authors whose first OR last name contains the
	// token, case-insensitively. A blank token imposes no constraint
	// and matches every author.
	FindByName(ctx context.Context, token string) ([]model.Author, error)

	// Update persists all fields of an existing author.
	// Errors: ErrAuthorNotFound, ErrDuplicateEmail.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetBooks returns the derived book list for an author, projected
	// without nested author data. Order follows store return order.
	GetBooks(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error)
}
