package books

import (
	"strings"

	"github.com/shelfmark/shelfmark/pkg/models"
)

// FilterCriteria is a set of optional constraints combined with logical AND.
// Nil fields don't constrain anything.
type FilterCriteria struct {
	Genre     *string // exact match, case-insensitive
	Author    *string // substring match, case-insensitive
	Available *bool
	MinPages  *int // inclusive
	MaxPages  *int // inclusive
}

// Filter narrows books down to the ones matching every supplied criterion.
// Input order is preserved and the input slice is never mutated.
func Filter(list []*models.Book, criteria FilterCriteria) []*models.Book {
	filtered := make([]*models.Book, 0, len(list))
	for _, book := range list {
		if criteria.Genre != nil && !strings.EqualFold(book.Genre, *criteria.Genre) {
			continue
		}
		if criteria.Author != nil && !strings.Contains(strings.ToLower(book.Author), strings.ToLower(*criteria.Author)) {
			continue
		}
		if criteria.Available != nil && book.Available != *criteria.Available {
			continue
		}
		if criteria.MinPages != nil && book.Pages < *criteria.MinPages {
			continue
		}
		if criteria.MaxPages != nil && book.Pages > *criteria.MaxPages {
			continue
		}
		filtered = append(filtered, book)
	}
	return filtered
}
