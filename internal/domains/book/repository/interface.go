package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface is the book data access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Search runs the paged fetch and the total count against a single
	// database snapshot so rows and total cannot disagree.
	Search(ctx context.Context, q model.SearchQuery) ([]model.SearchItem, int64, error)
}
