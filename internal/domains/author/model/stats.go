package model

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// BookSummary is the slice of a book row the stats computation needs.
// Any of the optional fields may be absent.
type BookSummary struct {
	Title         string
	PublishedYear *int
	Pages         *int
	Genre         *string
}

// YearRef identifies a book by title and publication year.
type YearRef struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// PagesRef identifies a book by title and page count.
type PagesRef struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

// Stats is the aggregate output of GET /api/authors/:id/stats.
type Stats struct {
	AuthorID     uuid.UUID `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	TotalBooks   int       `json:"totalBooks"`
	FirstBook    *YearRef  `json:"firstBook"`
	LatestBook   *YearRef  `json:"latestBook"`
	AveragePages int       `json:"averagePages"`
	Genres       []string  `json:"genres"`
	LongestBook  *PagesRef `json:"longestBook"`
	ShortestBook *PagesRef `json:"shortestBook"`
}

// ComputeStats aggregates an author's books into summary statistics.
// Pure function, no I/O. The input must already be sorted ascending by
// publication year; first/latest are taken positionally from that order,
// so year ties preserve input order.
func ComputeStats(books []BookSummary) Stats {
	stats := Stats{
		TotalBooks: len(books),
		Genres:     []string{},
	}

	if len(books) == 0 {
		return stats
	}

	// First and latest publication, over books that have a year.
	for i := range books {
		b := books[i]
		if b.PublishedYear == nil {
			continue
		}
		if stats.FirstBook == nil {
			stats.FirstBook = &YearRef{Title: b.Title, Year: *b.PublishedYear}
		}
		stats.LatestBook = &YearRef{Title: b.Title, Year: *b.PublishedYear}
	}

	// Page statistics over books with a positive page count. Rows with
	// pages <= 0 should not exist, but are skipped rather than trusted.
	var pageSum, pageCount int
	for i := range books {
		b := books[i]
		if b.Pages == nil || *b.Pages <= 0 {
			continue
		}

		pageSum += *b.Pages
		pageCount++

		if stats.LongestBook == nil || *b.Pages > stats.LongestBook.Pages {
			stats.LongestBook = &PagesRef{Title: b.Title, Pages: *b.Pages}
		}
		if stats.ShortestBook == nil || *b.Pages < stats.ShortestBook.Pages {
			stats.ShortestBook = &PagesRef{Title: b.Title, Pages: *b.Pages}
		}
	}
	if pageCount > 0 {
		stats.AveragePages = int(math.Round(float64(pageSum) / float64(pageCount)))
	}

	// Distinct non-blank genres, sorted ascending.
	seen := make(map[string]struct{})
	for i := range books {
		g := books[i].Genre
		if g == nil || strings.TrimSpace(*g) == "" {
			continue
		}
		if _, ok := seen[*g]; ok {
			continue
		}
		seen[*g] = struct{}{}
		stats.Genres = append(stats.Genres, *g)
	}
	sort.Strings(stats.Genres)

	return stats
}
