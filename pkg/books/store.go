package books

import (
	"sync"
	"time"

	"github.com/shelfmark/shelfmark/pkg/errcodes"
	"github.com/shelfmark/shelfmark/pkg/models"
)

// CreateBookOptions holds the fields for a new book. Available defaults to
// true when nil.
type CreateBookOptions struct {
	Title         string
	Author        string
	ISBN          string
	PublishedYear int
	Pages         int
	Available     *bool
	Genre         string
	Summary       *string
}

// UpdateBookOptions holds a partial set of fields to apply to an existing
// book. Nil fields are left untouched. Summary is only applied when
// SummarySet is true, so it can be cleared to nil explicitly.
type UpdateBookOptions struct {
	Title         *string
	Author        *string
	ISBN          *string
	PublishedYear *int
	Pages         *int
	Available     *bool
	Genre         *string
	Summary       *string
	SummarySet    bool
}

// Store is the authoritative in-memory holder of all books. Echo serves
// requests concurrently, so every operation takes the mutex; id assignment
// and updates are never interleaved.
type Store struct {
	mu     sync.RWMutex
	books  map[int]*models.Book
	order  []int
	lastID int
}

func NewStore() *Store {
	return &Store{
		books: map[int]*models.Book{},
	}
}

// Create validates the fields, assigns the next id and the creation
// timestamp, and inserts the record. Ids are strictly increasing and never
// reused, even after deletes.
func (s *Store) Create(opts CreateBookOptions) (*models.Book, error) {
	available := true
	if opts.Available != nil {
		available = *opts.Available
	}

	book := &models.Book{
		Title:         opts.Title,
		Author:        opts.Author,
		ISBN:          opts.ISBN,
		PublishedYear: opts.PublishedYear,
		Pages:         opts.Pages,
		Available:     available,
		Genre:         opts.Genre,
	}
	if opts.Summary != nil {
		summary := *opts.Summary
		book.Summary = &summary
	}

	if err := validateBook(book); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	book.ID = s.lastID
	book.AddedAt = time.Now()
	s.books[book.ID] = book
	s.order = append(s.order, book.ID)

	return book.Clone(), nil
}

func (s *Store) Retrieve(id int) (*models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return nil, errcodes.NotFound("Book")
	}
	return book.Clone(), nil
}

// Update applies the supplied fields to the stored record. The merged record
// is validated before anything is committed, so a failed update leaves the
// book untouched. ID and AddedAt are immutable.
func (s *Store) Update(id int, opts UpdateBookOptions) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, errcodes.NotFound("Book")
	}

	candidate := book.Clone()
	if opts.Title != nil {
		candidate.Title = *opts.Title
	}
	if opts.Author != nil {
		candidate.Author = *opts.Author
	}
	if opts.ISBN != nil {
		candidate.ISBN = *opts.ISBN
	}
	if opts.PublishedYear != nil {
		candidate.PublishedYear = *opts.PublishedYear
	}
	if opts.Pages != nil {
		candidate.Pages = *opts.Pages
	}
	if opts.Available != nil {
		candidate.Available = *opts.Available
	}
	if opts.Genre != nil {
		candidate.Genre = *opts.Genre
	}
	if opts.SummarySet {
		if opts.Summary != nil {
			summary := *opts.Summary
			candidate.Summary = &summary
		} else {
			candidate.Summary = nil
		}
	}

	if err := validateBook(candidate); err != nil {
		return nil, err
	}

	s.books[id] = candidate

	return candidate.Clone(), nil
}

// Delete removes the record permanently and returns it. The id is never
// assigned again.
func (s *Store) Delete(id int) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, errcodes.NotFound("Book")
	}

	delete(s.books, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return book, nil
}

// List returns clones of all live books in insertion order.
func (s *Store) List() []*models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*models.Book, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.books[id].Clone())
	}
	return list
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.books)
}
