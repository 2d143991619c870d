package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface defines Book data access operations.
type RepositoryInterface interface {
	// Create inserts a new book; the store assigns the id.
	// The referenced author must already be persisted.
	// Errors: ErrDuplicateBook on the (title, author) unique constraint.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID retrieves a book with its joined author data.
	// Returns: ErrBookNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// List returns every book with joined author data.
	List(ctx context.Context) ([]model.Book, error)

	// ListFiltered returns books matching the composed filter, with
	// joined author data. An unconstrained filter behaves like List.
	ListFiltered(ctx context.Context, f Filter) ([]model.Book, error)

	// ExistsByTitleAndAuthorEmail checks the (title, author-email)
	// uniqueness pair used by the add-book duplicate pre-check.
	ExistsByTitleAndAuthorEmail(ctx context.Context, title, email string) (bool, error)
}
