package books

import (
	"math"

	"github.com/shelfmark/shelfmark/pkg/models"
)

// Stats summarizes the full catalog. Genre and author keys appear exactly as
// stored; grouping is for display, so unlike filtering it doesn't case-fold.
type Stats struct {
	TotalBooks     int            `json:"total_books"`
	AvailableBooks int            `json:"available_books"`
	BorrowedBooks  int            `json:"borrowed_books"`
	TotalPages     int            `json:"total_pages"`
	AveragePages   float64        `json:"average_pages"`
	BooksPerGenre  map[string]int `json:"books_per_genre"`
	BooksPerAuthor map[string]int `json:"books_per_author"`
}

// Aggregate derives the summary counters in a single pass. An empty catalog
// yields zero counts and empty groupings, not a division error.
func Aggregate(list []*models.Book) Stats {
	stats := Stats{
		TotalBooks:     len(list),
		BooksPerGenre:  map[string]int{},
		BooksPerAuthor: map[string]int{},
	}

	for _, book := range list {
		if book.Available {
			stats.AvailableBooks++
		} else {
			stats.BorrowedBooks++
		}
		stats.TotalPages += book.Pages
		stats.BooksPerGenre[book.Genre]++
		stats.BooksPerAuthor[book.Author]++
	}

	if stats.TotalBooks > 0 {
		average := float64(stats.TotalPages) / float64(stats.TotalBooks)
		stats.AveragePages = math.Round(average*100) / 100
	}

	return stats
}
