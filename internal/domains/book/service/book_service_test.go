package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/book/model"
)

type stubBookRepo struct {
	createFn  func(ctx context.Context, b *model.Book) (*model.Book, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.BookResponse, error)
	updateFn  func(ctx context.Context, b *model.Book) (*model.Book, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	searchFn  func(ctx context.Context, q model.SearchQuery) ([]model.SearchItem, int64, error)

	createCalls int
}

func (s *stubBookRepo) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	s.createCalls++
	return s.createFn(ctx, b)
}

func (s *stubBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.BookResponse, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubBookRepo) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	return s.updateFn(ctx, b)
}

func (s *stubBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubBookRepo) Search(ctx context.Context, q model.SearchQuery) ([]model.SearchItem, int64, error) {
	return s.searchFn(ctx, q)
}

// stubAuthorRepo only answers ExistsByID, everything else is unused by
// the book service.
type stubAuthorRepo struct {
	existsFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (s *stubAuthorRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.existsFn(ctx, id)
}

func (s *stubAuthorRepo) Create(context.Context, *authormodel.Author) (*authormodel.Author, error) {
	panic("unexpected call")
}

func (s *stubAuthorRepo) GetByID(context.Context, uuid.UUID) (*authormodel.Author, error) {
	panic("unexpected call")
}

func (s *stubAuthorRepo) GetAll(context.Context) ([]authormodel.AuthorResponse, error) {
	panic("unexpected call")
}

func (s *stubAuthorRepo) GetDetail(context.Context, uuid.UUID) (*authormodel.AuthorResponse, error) {
	panic("unexpected call")
}

func (s *stubAuthorRepo) Update(context.Context, *authormodel.Author) (*authormodel.Author, error) {
	panic("unexpected call")
}

func (s *stubAuthorRepo) Delete(context.Context, uuid.UUID) error {
	panic("unexpected call")
}

func (s *stubAuthorRepo) GetBooks(context.Context, uuid.UUID) ([]authormodel.Book, error) {
	panic("unexpected call")
}

func (s *stubAuthorRepo) GetBookSummaries(context.Context, uuid.UUID) ([]authormodel.BookSummary, error) {
	panic("unexpected call")
}

func authorExists(exists bool) *stubAuthorRepo {
	return &stubAuthorRepo{
		existsFn: func(context.Context, uuid.UUID) (bool, error) {
			return exists, nil
		},
	}
}

func TestBookService_Create(t *testing.T) {
	authorID := uuid.New()
	bookID := uuid.New()

	repo := &stubBookRepo{
		createFn: func(_ context.Context, b *model.Book) (*model.Book, error) {
			created := *b
			created.ID = bookID
			return &created, nil
		},
		getByIDFn: func(_ context.Context, id uuid.UUID) (*model.BookResponse, error) {
			require.Equal(t, bookID, id)
			return &model.BookResponse{
				Book:   model.Book{ID: bookID, Title: "Eva Luna", AuthorID: authorID},
				Author: model.AuthorInfo{ID: authorID, Name: "Isabel Allende"},
			}, nil
		},
	}
	svc := NewBookService(repo, authorExists(true))

	resp, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Title:    "  Eva Luna ",
		AuthorID: authorID,
	})

	require.NoError(t, err)
	assert.Equal(t, bookID, resp.ID)
	assert.Equal(t, "Isabel Allende", resp.Author.Name)
}

func TestBookService_Create_ValidationSkipsStore(t *testing.T) {
	repo := &stubBookRepo{
		createFn: func(_ context.Context, b *model.Book) (*model.Book, error) {
			t.Fatal("store must not be called on invalid input")
			return nil, nil
		},
	}
	svc := NewBookService(repo, authorExists(true))

	tests := []struct {
		name string
		req  model.CreateBookRequest
	}{
		{"missing title", model.CreateBookRequest{AuthorID: uuid.New()}},
		{"short title", model.CreateBookRequest{Title: "ab", AuthorID: uuid.New()}},
		{"missing author", model.CreateBookRequest{Title: "Valid Title"}},
		{"zero pages", model.CreateBookRequest{Title: "Valid Title", Pages: intPtr(0), AuthorID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
	assert.Equal(t, 0, repo.createCalls)
}

func TestBookService_Create_UnknownAuthor(t *testing.T) {
	repo := &stubBookRepo{
		createFn: func(_ context.Context, b *model.Book) (*model.Book, error) {
			t.Fatal("store must not be called when the author is missing")
			return nil, nil
		},
	}
	svc := NewBookService(repo, authorExists(false))

	_, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Title:    "Valid Title",
		AuthorID: uuid.New(),
	})

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestBookService_Create_DuplicateISBN(t *testing.T) {
	repo := &stubBookRepo{
		createFn: func(_ context.Context, b *model.Book) (*model.Book, error) {
			return nil, model.ErrDuplicateISBN
		},
	}
	svc := NewBookService(repo, authorExists(true))

	_, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Title:    "Valid Title",
		AuthorID: uuid.New(),
	})

	assert.ErrorIs(t, err, model.ErrDuplicateISBN)
}

func TestBookService_Update_PartialMerge(t *testing.T) {
	bookID := uuid.New()
	authorID := uuid.New()
	isbn := "978-0553383812"

	var stored *model.Book
	repo := &stubBookRepo{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*model.BookResponse, error) {
			return &model.BookResponse{
				Book: model.Book{ID: bookID, Title: "Old Title", ISBN: &isbn, AuthorID: authorID},
			}, nil
		},
		updateFn: func(_ context.Context, b *model.Book) (*model.Book, error) {
			stored = b
			return b, nil
		},
	}
	svc := NewBookService(repo, authorExists(true))

	newTitle := "New Title"
	_, err := svc.Update(context.Background(), bookID, &model.UpdateBookRequest{Title: &newTitle})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New Title", stored.Title)
	assert.Equal(t, &isbn, stored.ISBN, "unset fields keep current values")
	assert.Equal(t, authorID, stored.AuthorID)
}

func TestBookService_Update_ReassignToUnknownAuthor(t *testing.T) {
	bookID := uuid.New()

	repo := &stubBookRepo{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*model.BookResponse, error) {
			return &model.BookResponse{Book: model.Book{ID: bookID, Title: "T", AuthorID: uuid.New()}}, nil
		},
		updateFn: func(_ context.Context, b *model.Book) (*model.Book, error) {
			t.Fatal("store must not be called when the new author is missing")
			return nil, nil
		},
	}
	svc := NewBookService(repo, authorExists(false))

	otherAuthor := uuid.New()
	_, err := svc.Update(context.Background(), bookID, &model.UpdateBookRequest{AuthorID: &otherAuthor})

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestBookService_Update_ShortTitleSkipsStore(t *testing.T) {
	repo := &stubBookRepo{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*model.BookResponse, error) {
			t.Fatal("store must not be read on invalid input")
			return nil, nil
		},
	}
	svc := NewBookService(repo, authorExists(true))

	title := "ab"
	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateBookRequest{Title: &title})

	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestBookService_Update_NotFound(t *testing.T) {
	repo := &stubBookRepo{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*model.BookResponse, error) {
			return nil, model.ErrBookNotFound
		},
	}
	svc := NewBookService(repo, authorExists(true))

	title := "New Title"
	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateBookRequest{Title: &title})

	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestBookService_Search(t *testing.T) {
	item := model.SearchItem{
		Book:   model.Book{ID: uuid.New(), Title: "Cien años de soledad"},
		Author: model.AuthorBrief{ID: uuid.New(), Name: "Gabriel García Márquez"},
	}

	var gotQuery model.SearchQuery
	repo := &stubBookRepo{
		searchFn: func(_ context.Context, q model.SearchQuery) ([]model.SearchItem, int64, error) {
			gotQuery = q
			return []model.SearchItem{item}, 23, nil
		},
	}
	svc := NewBookService(repo, authorExists(true))

	resp, err := svc.Search(context.Background(), model.SearchParams{
		Search: "soledad",
		Page:   "2",
		Limit:  "10",
	})

	require.NoError(t, err)
	assert.Equal(t, "soledad", gotQuery.Search)
	assert.Equal(t, 10, gotQuery.Offset)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(23), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestBookService_Search_EmptyResultIsNotNil(t *testing.T) {
	repo := &stubBookRepo{
		searchFn: func(_ context.Context, q model.SearchQuery) ([]model.SearchItem, int64, error) {
			return nil, 0, nil
		},
	}
	svc := NewBookService(repo, authorExists(true))

	resp, err := svc.Search(context.Background(), model.SearchParams{})

	require.NoError(t, err)
	assert.NotNil(t, resp.Data, "data must serialize as [] not null")
	assert.Empty(t, resp.Data)
}

func intPtr(v int) *int { return &v }
