package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author/model"
	"library-catalog/pkg/cache"
)

// postgresRepository implements RepositoryInterface.
// Uses pgxpool for PostgreSQL and Redis for caching.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new author repository instance.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = `id, name, email, bio, nationality, birth_year, created_at, updated_at`

func scanAuthor(row pgx.Row, a *model.Author) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Bio,
		&a.Nationality,
		&a.BirthYear,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// Create inserts a new author with generated ID and timestamps.
func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, email, bio, nationality, birth_year)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + authorColumns

	var created model.Author
	err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Email,
		a.Bio,
		a.Nationality,
		a.BirthYear,
	), &created)

	if err != nil {
		// Unique constraint violation on email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

// GetByID retrieves an author row by UUID with caching.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	err := scanAuthor(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

// GetAll retrieves every author ordered by name, each with its books and
// book count.
func (r *postgresRepository) GetAll(ctx context.Context) ([]model.AuthorResponse, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+authorColumns+` FROM authors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.AuthorResponse{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var a model.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		index[a.ID] = len(authors)
		authors = append(authors, model.AuthorResponse{Author: a, Books: []model.Book{}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	bookRows, err := r.pool.Query(ctx, `
        SELECT `+bookColumns+`
        FROM books
        ORDER BY published_year DESC NULLS LAST, created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var b model.Book
		if err := scanBook(bookRows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		if i, ok := index[b.AuthorID]; ok {
			authors[i].Books = append(authors[i].Books, b)
			authors[i].BookCount++
		}
	}
	if err := bookRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return authors, nil
}

// GetDetail retrieves an author with its books sorted by year descending.
func (r *postgresRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := r.GetBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.AuthorResponse{
		Author:    *a,
		Books:     books,
		BookCount: len(books),
	}, nil
}

// Update persists a fully merged author entity.
func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, email = $2, bio = $3, nationality = $4, birth_year = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING ` + authorColumns

	var updated model.Author
	err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Email,
		a.Bio,
		a.Nationality,
		a.BirthYear,
		a.ID,
	), &updated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidateAuthorCache(ctx, a.ID)

	return &updated, nil
}

// Delete removes an author. Its books go with it via ON DELETE CASCADE.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	r.invalidateAuthorCache(ctx, id)

	return nil
}

// ExistsByID checks if an author exists (lightweight query).
func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

const bookColumns = `id, title, description, isbn, published_year, genre, pages, author_id, created_at, updated_at`

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.ISBN,
		&b.PublishedYear,
		&b.Genre,
		&b.Pages,
		&b.AuthorID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

// GetBooks returns an author's books sorted by publication year descending.
func (r *postgresRepository) GetBooks(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+bookColumns+`
        FROM books
        WHERE author_id = $1
        ORDER BY published_year DESC NULLS LAST
    `, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author books: %w", err)
	}

	return books, nil
}

// GetBookSummaries returns the stats input rows, sorted ascending by
// publication year as the aggregation requires.
func (r *postgresRepository) GetBookSummaries(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT title, published_year, pages, genre
        FROM books
        WHERE author_id = $1
        ORDER BY published_year ASC NULLS LAST
    `, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book summaries: %w", err)
	}
	defer rows.Close()

	summaries := []model.BookSummary{}
	for rows.Next() {
		var s model.BookSummary
		if err := rows.Scan(&s.Title, &s.PublishedYear, &s.Pages, &s.Genre); err != nil {
			return nil, fmt.Errorf("failed to scan book summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book summaries: %w", err)
	}

	return summaries, nil
}

func (r *postgresRepository) invalidateAuthorCache(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())
	// Book detail responses embed author fields.
	_ = r.cache.DeletePattern(ctx, "book:*")
}
