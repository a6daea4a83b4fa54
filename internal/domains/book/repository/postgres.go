package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/pkg/cache"
)

// postgresRepository implements RepositoryInterface. It takes the
// database wrapper rather than the bare pool because search needs the
// transaction helper.
type postgresRepository struct {
	db    *database.PostgresDB
	cache cache.Cache
}

// NewPostgresRepository creates a new book repository instance.
func NewPostgresRepository(db *database.PostgresDB, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		db:    db,
		cache: cache,
	}
}

// Cache key constants
const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

const bookColumns = `id, title, description, isbn, published_year, genre, pages, author_id, created_at, updated_at`

// sortColumns whitelists the normalized sort fields onto real columns.
// The query builder already rejects anything else; this map is the only
// place user input meets SQL identifiers.
var sortColumns = map[string]string{
	model.SortByTitle:         "title",
	model.SortByPublishedYear: "published_year",
	model.SortByCreatedAt:     "created_at",
}

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

// Create inserts a new book with generated ID and timestamps.
func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, description, isbn, published_year, genre, pages, author_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + bookColumns

	var created model.Book
	err := scanBook(r.db.Pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.Description,
		b.ISBN,
		b.PublishedYear,
		b.Genre,
		b.Pages,
		b.AuthorID,
	), &created)

	if err != nil {
		return nil, translateWriteError(err, "failed to create book")
	}

	return &created, nil
}

// GetByID retrieves a book with its full author, cached.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var resp model.BookResponse
	if found, err := r.cache.Get(ctx, cacheKey, &resp); err == nil && found {
		return &resp, nil
	}

	query := `
        SELECT b.id, b.title, b.description, b.isbn, b.published_year, b.genre, b.pages,
               b.author_id, b.created_at, b.updated_at,
               a.id, a.name, a.email, a.bio, a.nationality, a.birth_year
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&resp.ID,
		&resp.Title,
		&resp.Description,
		&resp.ISBN,
		&resp.PublishedYear,
		&resp.Genre,
		&resp.Pages,
		&resp.AuthorID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.Author.ID,
		&resp.Author.Name,
		&resp.Author.Email,
		&resp.Author.Bio,
		&resp.Author.Nationality,
		&resp.Author.BirthYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, resp, cacheTTL)

	return &resp, nil
}

// Update persists a fully merged book entity.
func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        UPDATE books
        SET title = $1, description = $2, isbn = $3, published_year = $4,
            genre = $5, pages = $6, author_id = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING ` + bookColumns

	var updated model.Book
	err := scanBook(r.db.Pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.Description,
		b.ISBN,
		b.PublishedYear,
		b.Genre,
		b.Pages,
		b.AuthorID,
		b.ID,
	), &updated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, translateWriteError(err, "failed to update book")
	}

	r.invalidateBookCache(ctx, b.ID)

	return &updated, nil
}

// Delete removes a book by ID.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidateBookCache(ctx, id)

	return nil
}

// Search executes the normalized query description: one paged fetch and
// one count, inside a single read-only repeatable-read transaction so
// both observe the same snapshot under concurrent writes.
func (r *postgresRepository) Search(ctx context.Context, q model.SearchQuery) ([]model.SearchItem, int64, error) {
	where, args := buildSearchPredicate(q)

	orderClause := fmt.Sprintf(" ORDER BY b.%s %s", sortColumns[q.SortBy], strings.ToUpper(q.Order))
	if q.SortBy == model.SortByPublishedYear {
		orderClause += " NULLS LAST"
	}

	fetchQuery := `
        SELECT b.id, b.title, b.description, b.isbn, b.published_year, b.genre, b.pages,
               b.author_id, b.created_at, b.updated_at,
               a.id, a.name, a.email
        FROM books b
        JOIN authors a ON a.id = b.author_id
    ` + where + orderClause +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	countQuery := `
        SELECT COUNT(*)
        FROM books b
        JOIN authors a ON a.id = b.author_id
    ` + where

	items := []model.SearchItem{}
	var total int64

	txOpts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := r.db.ExecuteInTransaction(ctx, txOpts, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, fetchQuery, append(args, q.Limit, q.Offset)...)
		if err != nil {
			return fmt.Errorf("failed to search books: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var item model.SearchItem
			if err := rows.Scan(
				&item.ID,
				&item.Title,
				&item.Description,
				&item.ISBN,
				&item.PublishedYear,
				&item.Genre,
				&item.Pages,
				&item.AuthorID,
				&item.CreatedAt,
				&item.UpdatedAt,
				&item.Author.ID,
				&item.Author.Name,
				&item.Author.Email,
			); err != nil {
				return fmt.Errorf("failed to scan search result: %w", err)
			}
			items = append(items, item)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating search results: %w", err)
		}

		if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count search results: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// buildSearchPredicate assembles the WHERE clause as a conjunction of the
// present filters: title substring, exact genre, author name substring,
// all case-insensitive.
func buildSearchPredicate(q model.SearchQuery) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(" WHERE 1=1")

	args := []interface{}{}

	if q.Search != "" {
		args = append(args, "%"+escapeWildcards(q.Search)+"%")
		sb.WriteString(fmt.Sprintf(" AND b.title ILIKE $%d", len(args)))
	}

	if q.Genre != "" {
		args = append(args, q.Genre)
		sb.WriteString(fmt.Sprintf(" AND LOWER(b.genre) = LOWER($%d)", len(args)))
	}

	if q.AuthorName != "" {
		args = append(args, "%"+escapeWildcards(q.AuthorName)+"%")
		sb.WriteString(fmt.Sprintf(" AND a.name ILIKE $%d", len(args)))
	}

	return sb.String(), args
}

// escapeWildcards prevents user input from injecting ILIKE wildcards.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}

func translateWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation (isbn)
			return model.ErrDuplicateISBN
		case "23503": // foreign_key_violation (author_id)
			return model.ErrAuthorNotFound
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (r *postgresRepository) invalidateBookCache(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())
}
