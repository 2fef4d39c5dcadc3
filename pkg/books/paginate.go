package books

import (
	"fmt"

	"github.com/shelfmark/shelfmark/pkg/errcodes"
	"github.com/shelfmark/shelfmark/pkg/models"
)

const maxPageSize = 100

// Paginate returns the contiguous window of up to limit books starting at
// index skip. A skip past the end of the list yields an empty slice, never an
// error; an out-of-range limit is rejected rather than clamped.
func Paginate(list []*models.Book, skip, limit int) ([]*models.Book, error) {
	if skip < 0 {
		return nil, errcodes.ValidationError(`"skip" must be greater than or equal to 0`)
	}
	if limit < 1 {
		return nil, errcodes.ValidationError(`"limit" must be greater than or equal to 1`)
	}
	if limit > maxPageSize {
		return nil, errcodes.ValidationError(fmt.Sprintf("%q must be less than or equal to %d", "limit", maxPageSize))
	}

	if skip >= len(list) {
		return []*models.Book{}, nil
	}
	end := skip + limit
	if end > len(list) {
		end = len(list)
	}
	return list[skip:end], nil
}
