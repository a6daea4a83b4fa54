package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	authorrepo "library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
)

// BookService implements ServiceInterface.
type BookService struct {
	repo    repository.RepositoryInterface
	authors authorrepo.RepositoryInterface
}

// NewBookService creates a book service. The author repository is used
// to verify author references before writes.
func NewBookService(repo repository.RepositoryInterface, authors authorrepo.RepositoryInterface) ServiceInterface {
	return &BookService{repo: repo, authors: authors}
}

func (s *BookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	exists, err := s.authors.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrAuthorNotFound
	}

	book := &model.Book{
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Pages:         req.Pages,
		AuthorID:      req.AuthorID,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, created.ID)
}

func (s *BookService) Get(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book := current.Book
	if req.Title != nil {
		book.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		book.Description = req.Description
	}
	if req.ISBN != nil {
		book.ISBN = req.ISBN
	}
	if req.PublishedYear != nil {
		book.PublishedYear = req.PublishedYear
	}
	if req.Genre != nil {
		book.Genre = req.Genre
	}
	if req.Pages != nil {
		book.Pages = req.Pages
	}
	if req.AuthorID != nil && *req.AuthorID != book.AuthorID {
		exists, err := s.authors.ExistsByID(ctx, *req.AuthorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrAuthorNotFound
		}
		book.AuthorID = *req.AuthorID
	}

	if _, err := s.repo.Update(ctx, &book); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *BookService) Search(ctx context.Context, params model.SearchParams) (*model.SearchResponse, error) {
	query := model.NormalizeSearchParams(params)

	items, total, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.SearchItem{}
	}

	return &model.SearchResponse{
		Data:       items,
		Pagination: model.NewPagination(query.Page, query.Limit, total),
	}, nil
}
