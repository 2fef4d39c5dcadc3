package books

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all book, search, and stats routes.
func RegisterRoutes(e *echo.Echo, store *Store) {
	h := &handler{store: store}

	e.GET("/books", h.list)
	e.POST("/books", h.create)
	e.GET("/books/:id", h.retrieve)
	e.PUT("/books/:id", h.update)
	e.DELETE("/books/:id", h.delete)
	e.GET("/search/:author/books", h.search)
	e.GET("/stats", h.stats)
}
