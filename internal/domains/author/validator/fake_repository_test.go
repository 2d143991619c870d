package validator

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// fakeRepository is an embeddable no-op base so test fakes only override
// the methods they care about.
type fakeRepository struct{}

func (fakeRepository) Create(context.Context, *model.Author) (*model.Author, error) {
	return nil, nil
}

func (fakeRepository) GetByID(context.Context, uuid.UUID) (*model.Author, error) {
	return nil, model.ErrAuthorNotFound
}

func (fakeRepository) GetByEmail(context.Context, string) (*model.Author, error) {
	return nil, model.ErrAuthorNotFound
}

func (fakeRepository) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

func (fakeRepository) ExistsByEmailExcludingID(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}

func (fakeRepository) FindByName(context.Context, string) ([]model.Author, error) {
	return nil, nil
}

func (fakeRepository) Update(context.Context, *model.Author) (*model.Author, error) {
	return nil, nil
}

func (fakeRepository) GetBooks(context.Context, uuid.UUID) ([]model.BookSummary, error) {
	return []model.BookSummary{}, nil
}
