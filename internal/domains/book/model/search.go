package model

import (
	"strconv"
	"strings"
)

// Search parameter bounds and defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// Whitelisted sort fields. Anything else falls back to createdAt.
const (
	SortByTitle         = "title"
	SortByPublishedYear = "publishedYear"
	SortByCreatedAt     = "createdAt"
)

// SearchParams are the raw query string values of GET /api/books/search.
type SearchParams struct {
	Search     string
	Genre      string
	AuthorName string
	Page       string
	Limit      string
	SortBy     string
	Order      string
}

// SearchQuery is the normalized, validated query description. Filter
// strings are trimmed; an empty string means the clause is absent.
type SearchQuery struct {
	Search     string
	Genre      string
	AuthorName string
	Page       int
	Limit      int
	Offset     int
	SortBy     string
	Order      string
}

// NormalizeSearchParams maps raw user input into a SearchQuery. Pure
// function: invalid numbers fall back to defaults, limit is clamped to
// [1, 50], and sort field/order are whitelisted so they can be spliced
// into SQL safely.
func NormalizeSearchParams(p SearchParams) SearchQuery {
	page := DefaultPage
	if n, err := strconv.Atoi(p.Page); err == nil {
		page = n
	}
	if page < 1 {
		page = 1
	}

	limit := DefaultLimit
	if n, err := strconv.Atoi(p.Limit); err == nil {
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sortBy := p.SortBy
	switch sortBy {
	case SortByTitle, SortByPublishedYear, SortByCreatedAt:
	default:
		sortBy = SortByCreatedAt
	}

	order := p.Order
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	return SearchQuery{
		Search:     strings.TrimSpace(p.Search),
		Genre:      strings.TrimSpace(p.Genre),
		AuthorName: strings.TrimSpace(p.AuthorName),
		Page:       page,
		Limit:      limit,
		Offset:     (page - 1) * limit,
		SortBy:     sortBy,
		Order:      order,
	}
}

// Pagination summarizes a search result page.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination derives the pagination summary from the total match count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// SearchResponse is the payload of GET /api/books/search.
type SearchResponse struct {
	Data       []SearchItem `json:"data"`
	Pagination Pagination   `json:"pagination"`
}
