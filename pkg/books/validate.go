package books

import (
	"fmt"
	"unicode/utf8"

	"github.com/shelfmark/shelfmark/pkg/errcodes"
	"github.com/shelfmark/shelfmark/pkg/models"
)

const (
	maxTitleLength   = 200
	maxAuthorLength  = 100
	isbnLength       = 13
	minPublishedYear = 1000
	maxPublishedYear = 2100
	maxSummaryLength = 1000
)

// validateBook enforces the per-field constraints independently of how the
// input arrived, so the HTTP handlers, the seed loader, and tests all go
// through the same checks. Length limits count characters, not bytes.
func validateBook(b *models.Book) error {
	if b.Title == "" {
		return errcodes.ValidationError(`"title" is required`)
	}
	if utf8.RuneCountInString(b.Title) > maxTitleLength {
		return errcodes.ValidationError(fmt.Sprintf("%q length must be less than or equal to %d characters", "title", maxTitleLength))
	}
	if b.Author == "" {
		return errcodes.ValidationError(`"author" is required`)
	}
	if utf8.RuneCountInString(b.Author) > maxAuthorLength {
		return errcodes.ValidationError(fmt.Sprintf("%q length must be less than or equal to %d characters", "author", maxAuthorLength))
	}
	if b.ISBN == "" {
		return errcodes.ValidationError(`"isbn" is required`)
	}
	if utf8.RuneCountInString(b.ISBN) != isbnLength {
		return errcodes.ValidationError(fmt.Sprintf("%q must be exactly %d characters", "isbn", isbnLength))
	}
	if b.PublishedYear < minPublishedYear {
		return errcodes.ValidationError(fmt.Sprintf("%q must be greater than or equal to %d", "published_year", minPublishedYear))
	}
	if b.PublishedYear > maxPublishedYear {
		return errcodes.ValidationError(fmt.Sprintf("%q must be less than or equal to %d", "published_year", maxPublishedYear))
	}
	if b.Pages <= 0 {
		return errcodes.ValidationError(`"pages" must be greater than 0`)
	}
	if b.Genre == "" {
		return errcodes.ValidationError(`"genre" is required`)
	}
	if b.Summary != nil && utf8.RuneCountInString(*b.Summary) > maxSummaryLength {
		return errcodes.ValidationError(fmt.Sprintf("%q length must be less than or equal to %d characters", "summary", maxSummaryLength))
	}
	return nil
}
