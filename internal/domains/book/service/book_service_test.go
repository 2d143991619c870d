package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
)

// fakeBookRepo is an in-memory book repository. ListFiltered returns the
// canned book list and records the rendered filter for assertions; the
// SQL itself is covered by the filter tests.
type fakeBookRepo struct {
	books []model.Book

	created       []model.Book
	lastWhere     string
	lastArgs      []interface{}
	existingPairs map[string]bool // "title|email"
}

func (f *fakeBookRepo) Create(_ context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	created.ID = uuid.New()
	f.created = append(f.created, created)
	return &created, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	for i := range f.books {
		if f.books[i].ID == id {
			return &f.books[i], nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	return f.ListFiltered(ctx, repository.NewFilter())
}

func (f *fakeBookRepo) ListFiltered(_ context.Context, filter repository.Filter) ([]model.Book, error) {
	f.lastWhere, f.lastArgs = filter.Render(1)
	return f.books, nil
}

func (f *fakeBookRepo) ExistsByTitleAndAuthorEmail(_ context.Context, title, email string) (bool, error) {
	return f.existingPairs[title+"|"+email], nil
}

// fakeAuthorRepo is the slice of the author repository the book service
// touches during reconciliation.
type fakeAuthorRepo struct {
	byEmail map[string]authormodel.Author
	created []authormodel.Author
}

func (f *fakeAuthorRepo) Create(_ context.Context, a *authormodel.Author) (*authormodel.Author, error) {
	created := *a
	created.ID = uuid.New()
	f.byEmail[created.Email] = created
	f.created = append(f.created, created)
	return &created, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*authormodel.Author, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, authormodel.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) GetByEmail(_ context.Context, email string) (*authormodel.Author, error) {
	if a, ok := f.byEmail[email]; ok {
		return &a, nil
	}
	return nil, authormodel.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeAuthorRepo) ExistsByEmailExcludingID(_ context.Context, email string, id uuid.UUID) (bool, error) {
	a, ok := f.byEmail[email]
	return ok && a.ID != id, nil
}

func (f *fakeAuthorRepo) FindByName(context.Context, string) ([]authormodel.Author, error) {
	return nil, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, a *authormodel.Author) (*authormodel.Author, error) {
	return a, nil
}

func (f *fakeAuthorRepo) GetBooks(context.Context, uuid.UUID) ([]authormodel.BookSummary, error) {
	return []authormodel.BookSummary{}, nil
}

func newFakes() (*fakeBookRepo, *fakeAuthorRepo, ServiceInterface) {
	bookRepo := &fakeBookRepo{existingPairs: map[string]bool{}}
	authorRepo := &fakeAuthorRepo{byEmail: map[string]authormodel.Author{}}
	return bookRepo, authorRepo, NewBookService(bookRepo, authorRepo)
}

func strptr(s string) *string { return &s }

func TestSave_NewAuthorAndBook(t *testing.T) {
	bookRepo, authorRepo, svc := newFakes()

	resp, err := svc.Save(context.Background(), &model.AddBookRequest{
		Title: "Pride and Prejudice",
		Genre: strptr("Novel"),
		Author: &model.AuthorPayload{
			FirstName: "Jane",
			LastName:  "Austen",
			Email:     "jane@example.com",
		},
	})
	require.NoError(t, err)

	// Exactly one author and one book created.
	require.Len(t, authorRepo.created, 1)
	require.Len(t, bookRepo.created, 1)

	assert.Equal(t, "jane@example.com", resp.Email)
	// The response carries only the just-saved book.
	require.Len(t, resp.Books, 1)
	assert.Equal(t, "Pride and Prejudice", resp.Books[0].Title)
	assert.Nil(t, resp.Books[0].Author)
}

func TestSave_ReusesExistingAuthor(t *testing.T) {
	bookRepo, authorRepo, svc := newFakes()
	stored := authormodel.Author{
		ID:        uuid.New(),
		FirstName: "Jane",
		LastName:  "Austen",
		Email:     "jane@example.com",
		Bio:       strptr("stored bio"),
	}
	authorRepo.byEmail[stored.Email] = stored

	resp, err := svc.Save(context.Background(), &model.AddBookRequest{
		Title: "Emma",
		Author: &model.AuthorPayload{
			// Different names in the payload must be discarded.
			FirstName: "Janet",
			LastName:  "Austin",
			Email:     "jane@example.com",
		},
	})
	require.NoError(t, err)

	assert.Empty(t, authorRepo.created, "no new author may be created")
	assert.Equal(t, stored.ID, resp.ID)
	assert.Equal(t, "Jane", resp.FirstName)
	assert.Equal(t, "stored bio", *resp.Bio)
	require.Len(t, bookRepo.created, 1)
	assert.Equal(t, stored.ID, bookRepo.created[0].AuthorID)
}

func TestSave_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  *model.AddBookRequest
	}{
		{"nil request", nil},
		{"blank title", &model.AddBookRequest{Title: "  ", Author: &model.AuthorPayload{Email: "a@b.com"}}},
		{"missing author", &model.AddBookRequest{Title: "X"}},
		{"blank email", &model.AddBookRequest{Title: "X", Author: &model.AuthorPayload{FirstName: "A"}}},
		{"new author without names", &model.AddBookRequest{
			Title:  "X",
			Author: &model.AuthorPayload{Email: "e@x.com"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookRepo, authorRepo, svc := newFakes()

			_, err := svc.Save(context.Background(), tt.req)
			assert.ErrorIs(t, err, model.ErrInvalidRequest)
			assert.Empty(t, bookRepo.created)
			assert.Empty(t, authorRepo.created)
		})
	}
}

func TestSave_DuplicateBook(t *testing.T) {
	bookRepo, authorRepo, svc := newFakes()
	authorRepo.byEmail["jane@example.com"] = authormodel.Author{
		ID:    uuid.New(),
		Email: "jane@example.com",
	}
	bookRepo.existingPairs["Emma|jane@example.com"] = true

	_, err := svc.Save(context.Background(), &model.AddBookRequest{
		Title:  "Emma",
		Author: &model.AuthorPayload{Email: "jane@example.com"},
	})
	assert.ErrorIs(t, err, model.ErrDuplicateBook)
	assert.Empty(t, bookRepo.created, "no second book may be persisted")
}

func TestGetFiltered_GroupsByGenre(t *testing.T) {
	novel := strptr("Novel")
	adventure := strptr("Adventure")
	bookRepo, _, svc := newFakes()
	bookRepo.books = []model.Book{
		{ID: uuid.New(), Title: "Pride and Prejudice", Genre: novel, AuthorFirstName: "Jane"},
		{ID: uuid.New(), Title: "Adventures", Genre: adventure, AuthorFirstName: "Mark"},
		{ID: uuid.New(), Title: "Untagged", Genre: nil},
	}

	grouped, err := svc.GetFiltered(context.Background(), "", "")
	require.NoError(t, err)

	// No tokens -> no constraint.
	assert.Empty(t, bookRepo.lastWhere)

	require.Len(t, grouped, 3)
	assert.Len(t, grouped["Novel"], 1)
	assert.Len(t, grouped["Adventure"], 1)
	// Books without a genre form their own group under the empty key.
	assert.Len(t, grouped[""], 1)
	assert.Equal(t, "Untagged", grouped[""][0].Title)
}

func TestGetFiltered_PassesTokensToFilter(t *testing.T) {
	bookRepo, _, svc := newFakes()

	_, err := svc.GetFiltered(context.Background(), "Jane", "Novel")
	require.NoError(t, err)

	assert.Contains(t, bookRepo.lastWhere, "a.first_name ILIKE $1 OR a.last_name ILIKE $1")
	assert.Contains(t, bookRepo.lastWhere, "LOWER(b.genre) = LOWER($2)")
	assert.Equal(t, []interface{}{"%Jane%", "Novel"}, bookRepo.lastArgs)
}

func TestGetAll_ProjectsAuthorWithoutBooks(t *testing.T) {
	bookRepo, _, svc := newFakes()
	bookRepo.books = []model.Book{{
		ID:              uuid.New(),
		Title:           "Emma",
		AuthorID:        uuid.New(),
		AuthorFirstName: "Jane",
		AuthorLastName:  "Austen",
		AuthorEmail:     "jane@example.com",
	}}

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)

	require.NotNil(t, resp[0].Author)
	assert.Equal(t, "Jane", resp[0].Author.FirstName)
	// Recursion is bounded: the nested author has no book list.
	assert.Empty(t, resp[0].Author.Books)
}

func TestGetByID_NotFound(t *testing.T) {
	_, _, svc := newFakes()

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
