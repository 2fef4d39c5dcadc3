package models

import (
	"time"
)

// Book is a single catalog record. The books.Store owns every instance; it
// only ever hands out clones, so callers can't reach into the live record.
type Book struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	PublishedYear int       `json:"published_year"`
	Pages         int       `json:"pages"`
	Available     bool      `json:"available"`
	Genre         string    `json:"genre"`
	Summary       *string   `json:"summary"`
	AddedAt       time.Time `json:"added_at"`
}

// Clone returns an independent copy of the book, including the optional
// summary.
func (b *Book) Clone() *Book {
	clone := *b
	if b.Summary != nil {
		summary := *b.Summary
		clone.Summary = &summary
	}
	return &clone
}
