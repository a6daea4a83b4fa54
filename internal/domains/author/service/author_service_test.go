package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author/model"
)

// stubRepo is a hand-rolled repository stub. Fields left nil make the
// corresponding call fail the test.
type stubRepo struct {
	createFn           func(ctx context.Context, a *model.Author) (*model.Author, error)
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*model.Author, error)
	getAllFn           func(ctx context.Context) ([]model.AuthorResponse, error)
	getDetailFn        func(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error)
	updateFn           func(ctx context.Context, a *model.Author) (*model.Author, error)
	deleteFn           func(ctx context.Context, id uuid.UUID) error
	existsByIDFn       func(ctx context.Context, id uuid.UUID) (bool, error)
	getBooksFn         func(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
	getBookSummariesFn func(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error)

	createCalls int
}

func (s *stubRepo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	s.createCalls++
	return s.createFn(ctx, a)
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubRepo) GetAll(ctx context.Context) ([]model.AuthorResponse, error) {
	return s.getAllFn(ctx)
}

func (s *stubRepo) GetDetail(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	return s.getDetailFn(ctx, id)
}

func (s *stubRepo) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	return s.updateFn(ctx, a)
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.existsByIDFn(ctx, id)
}

func (s *stubRepo) GetBooks(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return s.getBooksFn(ctx, authorID)
}

func (s *stubRepo) GetBookSummaries(ctx context.Context, authorID uuid.UUID) ([]model.BookSummary, error) {
	return s.getBookSummariesFn(ctx, authorID)
}

func TestAuthorService_Create(t *testing.T) {
	repo := &stubRepo{
		createFn: func(_ context.Context, a *model.Author) (*model.Author, error) {
			created := *a
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := NewAuthorService(repo)

	resp, err := svc.Create(context.Background(), &model.CreateAuthorRequest{
		Name:  "  Isabel Allende  ",
		Email: " isabel@example.com ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Isabel Allende", resp.Name)
	assert.Equal(t, "isabel@example.com", resp.Email)
	assert.NotNil(t, resp.Books, "books must serialize as [] not null")
	assert.Equal(t, 0, resp.BookCount)
}

func TestAuthorService_Create_ValidationSkipsStore(t *testing.T) {
	repo := &stubRepo{
		createFn: func(_ context.Context, a *model.Author) (*model.Author, error) {
			t.Fatal("store must not be called on invalid input")
			return nil, nil
		},
	}
	svc := NewAuthorService(repo)

	tests := []struct {
		name string
		req  model.CreateAuthorRequest
	}{
		{"missing name", model.CreateAuthorRequest{Email: "a@example.com"}},
		{"missing email", model.CreateAuthorRequest{Name: "A"}},
		{"bad email", model.CreateAuthorRequest{Name: "A", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
	assert.Equal(t, 0, repo.createCalls)
}

func TestAuthorService_Create_DuplicateEmail(t *testing.T) {
	repo := &stubRepo{
		createFn: func(_ context.Context, a *model.Author) (*model.Author, error) {
			return nil, model.ErrDuplicateEmail
		},
	}
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{
		Name:  "Gabriel",
		Email: "gabriel@example.com",
	})

	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestAuthorService_Update_PartialMerge(t *testing.T) {
	id := uuid.New()
	bio := "old bio"
	current := &model.Author{ID: id, Name: "Old Name", Email: "old@example.com", Bio: &bio}

	var stored *model.Author
	repo := &stubRepo{
		getByIDFn: func(_ context.Context, gotID uuid.UUID) (*model.Author, error) {
			assert.Equal(t, id, gotID)
			return current, nil
		},
		updateFn: func(_ context.Context, a *model.Author) (*model.Author, error) {
			stored = a
			return a, nil
		},
		getBooksFn: func(_ context.Context, _ uuid.UUID) ([]model.Book, error) {
			return []model.Book{}, nil
		},
	}
	svc := NewAuthorService(repo)

	newName := "New Name"
	resp, err := svc.Update(context.Background(), id, &model.UpdateAuthorRequest{Name: &newName})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, "old@example.com", stored.Email, "unset fields keep current values")
	assert.Equal(t, &bio, stored.Bio)
	assert.Equal(t, "New Name", resp.Name)
}

func TestAuthorService_Update_NotFound(t *testing.T) {
	repo := &stubRepo{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*model.Author, error) {
			return nil, model.ErrAuthorNotFound
		},
	}
	svc := NewAuthorService(repo)

	name := "X"
	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateAuthorRequest{Name: &name})

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorService_GetStats(t *testing.T) {
	id := uuid.New()
	year1, year2 := 1967, 1985
	pages1, pages2 := 448, 348
	genre := "Novela"

	repo := &stubRepo{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*model.Author, error) {
			return &model.Author{ID: id, Name: "Gabriel García Márquez"}, nil
		},
		getBookSummariesFn: func(_ context.Context, _ uuid.UUID) ([]model.BookSummary, error) {
			return []model.BookSummary{
				{Title: "Cien años de soledad", PublishedYear: &year1, Pages: &pages1, Genre: &genre},
				{Title: "El amor en los tiempos del cólera", PublishedYear: &year2, Pages: &pages2, Genre: &genre},
			}, nil
		},
	}
	svc := NewAuthorService(repo)

	stats, err := svc.GetStats(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, stats.AuthorID)
	assert.Equal(t, "Gabriel García Márquez", stats.AuthorName)
	assert.Equal(t, 2, stats.TotalBooks)
	assert.Equal(t, "Cien años de soledad", stats.FirstBook.Title)
	assert.Equal(t, "El amor en los tiempos del cólera", stats.LatestBook.Title)
	assert.Equal(t, 398, stats.AveragePages)
	assert.Equal(t, []string{"Novela"}, stats.Genres)
}

func TestAuthorService_GetStats_UnknownAuthor(t *testing.T) {
	repo := &stubRepo{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*model.Author, error) {
			return nil, model.ErrAuthorNotFound
		},
	}
	svc := NewAuthorService(repo)

	_, err := svc.GetStats(context.Background(), uuid.New())

	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
