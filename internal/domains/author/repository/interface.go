package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface is the author data access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	GetAll(ctx context.Context) ([]model.AuthorResponse, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error)
	Update(ctx context.Context, a *model.Author) (*model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	GetBooks(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
	GetBookSummaries(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error)
}
