package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/book/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookWithAuthorQuery = `
    SELECT b.id, b.title, b.genre, b.author_id, b.created_at,
           a.first_name, a.last_name, a.email, a.bio, a.genre
    FROM books b
    JOIN authors a ON a.id = b.author_id`

func scanBookWithAuthor(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Genre,
		&b.AuthorID,
		&b.CreatedAt,
		&b.AuthorFirstName,
		&b.AuthorLastName,
		&b.AuthorEmail,
		&b.AuthorBio,
		&b.AuthorGenre,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, genre, author_id)
        VALUES ($1, $2, $3)
        RETURNING id, title, genre, author_id, created_at`

	var created model.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Genre, b.AuthorID).Scan(
		&created.ID,
		&created.Title,
		&created.Genre,
		&created.AuthorID,
		&created.CreatedAt,
	)
	if err != nil {
		// Unique constraint on (title, author_id) is the final backstop
		// against concurrent duplicate adds.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateBook
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := bookWithAuthorQuery + ` WHERE b.id = $1`

	b, err := scanBookWithAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	return r.ListFiltered(ctx, NewFilter())
}

func (r *postgresRepository) ListFiltered(ctx context.Context, f Filter) ([]model.Book, error) {
	where, args := f.Render(1)
	query := bookWithAuthorQuery + where + ` ORDER BY b.created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		b, err := scanBookWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book rows: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) ExistsByTitleAndAuthorEmail(ctx context.Context, title, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
        SELECT EXISTS(
            SELECT 1
            FROM books b
            JOIN authors a ON a.id = b.author_id
            WHERE b.title = $1 AND a.email = $2
        )`, title, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}
