package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// ServiceInterface is the book business logic contract.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.BookResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.BookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, params model.SearchParams) (*model.SearchResponse, error)
}
