package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
)

// authorService implements ServiceInterface.
type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance.
// Depends on the repository abstraction, not a concrete type, so tests
// can inject a stub.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.AuthorResponse, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.AuthorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	newAuthor := &model.Author{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Bio:         req.Bio,
		Nationality: req.Nationality,
		BirthYear:   req.BirthYear,
	}

	created, err := s.repo.Create(ctx, newAuthor)
	if err != nil {
		return nil, err
	}

	return &model.AuthorResponse{Author: *created, Books: []model.Book{}}, nil
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	return s.repo.GetDetail(ctx, id)
}

// Update applies a partial update: only non-nil request fields replace the
// current values.
func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updated.Email = strings.TrimSpace(*req.Email)
	}
	if req.Bio != nil {
		updated.Bio = req.Bio
	}
	if req.Nationality != nil {
		updated.Nationality = req.Nationality
	}
	if req.BirthYear != nil {
		updated.BirthYear = req.BirthYear
	}

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.AuthorResponse{Author: *result, Books: books, BookCount: len(books)}, nil
}

// Delete removes the author. The store cascades the delete to the
// author's books.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *authorService) GetBooks(ctx context.Context, id uuid.UUID) (*model.AuthorBooksResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.AuthorBooksResponse{
		Author:     model.AuthorRef{ID: a.ID, Name: a.Name},
		TotalBooks: len(books),
		Books:      books,
	}, nil
}

func (s *authorService) GetStats(ctx context.Context, id uuid.UUID) (*model.Stats, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.GetBookSummaries(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := model.ComputeStats(summaries)
	stats.AuthorID = a.ID
	stats.AuthorName = a.Name

	return &stats, nil
}
