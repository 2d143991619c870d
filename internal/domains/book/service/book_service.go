package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	authormodel "library-catalog/internal/domains/author/model"
	authorrepo "library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
	"library-catalog/pkg/logger"
)

// bookService implements ServiceInterface. It is stateless: every call
// is a synchronous orchestration over the two repositories.
type bookService struct {
	repo       repository.RepositoryInterface
	authorRepo authorrepo.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface, authorRepo authorrepo.RepositoryInterface) ServiceInterface {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *bookService) GetAll(ctx context.Context) ([]model.BookResponse, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, model.ToResponse(&books[i]))
	}
	return responses, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := model.ToResponse(b)
	return &resp, nil
}

func (s *bookService) GetFiltered(ctx context.Context, authorToken, genreToken string) (map[string][]model.BookResponse, error) {
	// Blank tokens contribute no clause; both blank matches everything.
	f := repository.NewFilter().
		And(repository.HasAuthorName(authorToken)).
		And(repository.HasGenre(genreToken))

	books, err := s.repo.ListFiltered(ctx, f)
	if err != nil {
		return nil, err
	}

	// Group by the genre field verbatim. A missing genre is still a
	// valid group key: those books land under the empty key.
	grouped := make(map[string][]model.BookResponse)
	for i := range books {
		key := ""
		if books[i].Genre != nil {
			key = *books[i].Genre
		}
		grouped[key] = append(grouped[key], model.ToResponse(&books[i]))
	}

	return grouped, nil
}

// Save is the add-book reconciliation. Validation precedes any store
// mutation, author resolution precedes the duplicate check, and the
// duplicate check precedes persistence.
func (s *bookService) Save(ctx context.Context, req *model.AddBookRequest) (*model.AuthorSummary, error) {
	if req == nil || strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: book title cannot be empty", model.ErrInvalidRequest)
	}

	payload := req.Author
	if payload == nil {
		return nil, fmt.Errorf("%w: book author cannot be null", model.ErrInvalidRequest)
	}

	if strings.TrimSpace(payload.Email) == "" {
		return nil, fmt.Errorf("%w: author email is required", model.ErrInvalidRequest)
	}

	author, err := s.resolveAuthor(ctx, payload)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitleAndAuthorEmail(ctx, req.Title, author.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate book: %w", err)
	}
	if exists {
		return nil, model.ErrDuplicateBook
	}

	saved, err := s.repo.Create(ctx, &model.Book{
		Title:    req.Title,
		Genre:    req.Genre,
		AuthorID: author.ID,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Book saved", map[string]interface{}{
		"book_id":   saved.ID.String(),
		"title":     saved.Title,
		"author_id": author.ID.String(),
	})

	// The response carries exactly the one just-saved book, never the
	// author's full history.
	return &model.AuthorSummary{
		ID:        author.ID,
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Email:     author.Email,
		Bio:       author.Bio,
		Genre:     author.Genre,
		Books: []model.BookResponse{{
			ID:    saved.ID,
			Title: saved.Title,
			Genre: saved.Genre,
		}},
	}, nil
}

// resolveAuthor finds the author by email or creates one from the
// payload. An existing author's stored identity and fields are
// authoritative; the payload is discarded.
func (s *bookService) resolveAuthor(ctx context.Context, payload *model.AuthorPayload) (*authormodel.Author, error) {
	existing, err := s.authorRepo.GetByEmail(ctx, payload.Email)
	if err == nil {
		logger.Info("Reusing existing author", map[string]interface{}{
			"email": existing.Email,
		})
		return existing, nil
	}
	if !errors.Is(err, authormodel.ErrAuthorNotFound) {
		return nil, fmt.Errorf("failed to look up author by email: %w", err)
	}

	if strings.TrimSpace(payload.FirstName) == "" && strings.TrimSpace(payload.LastName) == "" {
		return nil, fmt.Errorf("%w: new author must have a first name or last name", model.ErrInvalidRequest)
	}

	created, err := s.authorRepo.Create(ctx, &authormodel.Author{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Bio:       payload.Bio,
		Genre:     payload.Genre,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}
