package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Author represents a catalog author.
type Author struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         *string   `json:"bio"`
	Nationality *string   `json:"nationality"`
	BirthYear   *int      `json:"birthYear"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Book is the author-side view of a book row, returned nested under
// author responses.
type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	ISBN          *string   `json:"isbn"`
	PublishedYear *int      `json:"publishedYear"`
	Genre         *string   `json:"genre"`
	Pages         *int      `json:"pages"`
	AuthorID      uuid.UUID `json:"authorId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateAuthorRequest is the payload for POST /api/authors.
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
	BirthYear   *int    `json:"birthYear"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// UpdateAuthorRequest is the payload for PUT /api/authors/:id.
// Nil fields are left unchanged.
type UpdateAuthorRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
	BirthYear   *int    `json:"birthYear"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
	)
}

// AuthorResponse is an author with its books and book count, as returned
// by the list and detail endpoints.
type AuthorResponse struct {
	Author
	Books     []Book `json:"books"`
	BookCount int    `json:"bookCount"`
}

// AuthorRef is the minimal author identification nested in the
// /authors/:id/books response.
type AuthorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AuthorBooksResponse is the payload of GET /api/authors/:id/books.
type AuthorBooksResponse struct {
	Author     AuthorRef `json:"author"`
	TotalBooks int       `json:"totalBooks"`
	Books      []Book    `json:"books"`
}
