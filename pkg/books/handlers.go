package books

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/errcodes"
	"github.com/shelfmark/shelfmark/pkg/models"
)

type handler struct {
	store *Store
}

func (h *handler) list(c echo.Context) error {
	// Bind params.
	params := ListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	filtered := Filter(h.store.List(), FilterCriteria{
		Genre:     params.Genre,
		Author:    params.Author,
		Available: params.Available,
		MinPages:  params.MinPages,
		MaxPages:  params.MaxPages,
	})

	page, err := Paginate(filtered, *params.Skip, *params.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Books []*models.Book `json:"books"`
		Total int            `json:"total"`
	}{page, len(filtered)}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) retrieve(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.store.Retrieve(id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) create(c echo.Context) error {
	// Bind params.
	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.store.Create(CreateBookOptions{
		Title:         params.Title,
		Author:        params.Author,
		ISBN:          params.ISBN,
		PublishedYear: params.PublishedYear,
		Pages:         params.Pages,
		Available:     params.Available,
		Genre:         params.Genre,
		Summary:       params.Summary,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, book))
}

func (h *handler) update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	// Bind params.
	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.store.Update(id, UpdateBookOptions{
		Title:         params.Title,
		Author:        params.Author,
		ISBN:          params.ISBN,
		PublishedYear: params.PublishedYear,
		Pages:         params.Pages,
		Available:     params.Available,
		Genre:         params.Genre,
		Summary:       params.Summary,
		SummarySet:    params.Summary != nil,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.store.Delete(id)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Message     string       `json:"message"`
		DeletedBook *models.Book `json:"deleted_book"`
	}{"Book deleted successfully", book}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) search(c echo.Context) error {
	author := c.Param("author")

	// Bind params.
	params := SearchBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Same substring semantics as the list endpoint's author filter.
	filtered := Filter(h.store.List(), FilterCriteria{
		Author:    &author,
		Genre:     params.Genre,
		Available: params.Available,
	})

	return errors.WithStack(c.JSON(http.StatusOK, filtered))
}

func (h *handler) stats(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, Aggregate(h.store.List())))
}
