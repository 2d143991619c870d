package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// ServiceInterface defines business logic operations for the Book domain.
type ServiceInterface interface {
	// GetAll returns every book, each with its owning author summary.
	// The nested author carries no book list of its own.
	GetAll(ctx context.Context) ([]model.BookResponse, error)

	// GetByID returns a single book.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)

	// GetFiltered lists books matching the optional author-name and
	// genre tokens and groups the results by genre. Blank tokens add no
	// constraint. Books without a genre form their own group under the
	// empty key. Group order is unspecified; in-group order follows the
	// store.
	GetFiltered(ctx context.Context, authorToken, genreToken string) (map[string][]model.BookResponse, error)

	// Save runs the add-book reconciliation, in strict order:
	//  1. blank title          -> ErrInvalidRequest
	//  2. missing author block -> ErrInvalidRequest
	//  3. blank author email   -> ErrInvalidRequest
	//  4. resolve author by email: reuse the stored record, or create a
	//     new one (both names blank -> ErrInvalidRequest)
	//  5. duplicate (title, author email) -> ErrDuplicateBook
	//  6. persist the book
	// Returns the author summary containing exactly the one just-saved
	// book, not the author's full history.
	Save(ctx context.Context, req *model.AddBookRequest) (*model.AuthorSummary, error)
}
