package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/author/validator"
	"library-catalog/pkg/logger"
)

// authorService implements ServiceInterface
type authorService struct {
	repo      repository.RepositoryInterface
	validator *validator.UpdateValidator
}

// NewAuthorService creates a new author service instance.
// Service depends on the repository abstraction, not the concrete type,
// so tests can swap in fakes.
func NewAuthorService(repo repository.RepositoryInterface, v *validator.UpdateValidator) ServiceInterface {
	return &authorService{
		repo:      repo,
		validator: v,
	}
}

func (s *authorService) SearchByName(ctx context.Context, query string) ([]model.AuthorResponse, error) {
	query = strings.TrimSpace(query)

	authors, err := s.repo.FindByName(ctx, query)
	if err != nil {
		return nil, err
	}

	// An empty match set is treated as a failure, not an empty success.
	if len(authors) == 0 {
		return nil, model.ErrAuthorNotFound
	}

	responses := make([]model.AuthorResponse, 0, len(authors))
	for i := range authors {
		resp, err := s.project(ctx, &authors[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	// Load the pre-update stored state. Validation runs against this
	// snapshot, never against the merged result.
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateForUpdate(ctx, id, req, current); err != nil {
		return nil, err
	}

	// Apply only supplied, non-blank fields (PATCH behavior). An
	// unsupplied field is never erased.
	updated := *current
	if !isBlank(req.FirstName) {
		updated.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if !isBlank(req.LastName) {
		updated.LastName = strings.TrimSpace(*req.LastName)
	}
	if !isBlank(req.Email) {
		updated.Email = *req.Email
	}
	if !isBlank(req.Bio) {
		updated.Bio = req.Bio
	}
	if !isBlank(req.Genre) {
		updated.Genre = req.Genre
	}

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	logger.Info("Author updated", map[string]interface{}{
		"author_id": result.ID.String(),
	})

	return s.project(ctx, result)
}

// project builds the API response for an author, resolving the derived
// book association.
func (s *authorService) project(ctx context.Context, a *model.Author) (*model.AuthorResponse, error) {
	books, err := s.repo.GetBooks(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load books for author %s: %w", a.ID, err)
	}
	return model.ToResponse(a, books), nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
