package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// ServiceInterface is the author business logic contract.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.AuthorResponse, error)
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.AuthorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetBooks(ctx context.Context, id uuid.UUID) (*model.AuthorBooksResponse, error)
	GetStats(ctx context.Context, id uuid.UUID) (*model.Stats, error)
}
