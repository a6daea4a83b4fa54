package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Book represents a catalog book.
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

// AuthorInfo is the author as embedded in a book detail response.
// Defined here rather than imported to keep the domains decoupled.
type AuthorInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         *string   `json:"bio"`
	Nationality *string   `json:"nationality"`
	BirthYear   *int      `json:"birthYear"`
}

// AuthorBrief is the author slice attached to search results.
type AuthorBrief struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BookResponse is a book with its full author, returned by the detail
// and write endpoints.
type BookResponse struct {
	Book
	Author AuthorInfo `json:"author"`
}

// SearchItem is a book row in search results, with the brief author.
type SearchItem struct {
	Book
	Author AuthorBrief `json:"author"`
}

// CreateBookRequest is the payload for POST /api/books.
type CreateBookRequest struct {
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	ISBN          *string   `json:"isbn"`
	PublishedYear *int      `json:"publishedYear"`
	Genre         *string   `json:"genre"`
	Pages         *int      `json:"pages"`
	AuthorID      uuid.UUID `json:"authorId"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 0)),
		validation.Field(&r.Pages, validation.Min(1)),
		validation.Field(&r.AuthorID, validation.By(requiredUUID)),
	)
}

// UpdateBookRequest is the payload for PUT /api/books/:id.
// Nil fields are left unchanged; AuthorID may reassign the book.
type UpdateBookRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	ISBN          *string    `json:"isbn"`
	PublishedYear *int       `json:"publishedYear"`
	Genre         *string    `json:"genre"`
	Pages         *int       `json:"pages"`
	AuthorID      *uuid.UUID `json:"authorId"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(3, 0)),
		validation.Field(&r.Pages, validation.Min(1)),
	)
}

func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}
