package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robinjoseph08/golib/logger"
	"github.com/shelfmark/shelfmark/pkg/books"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	store := books.NewStore()

	loaded, skipped := Load(logger.New(), store, filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 0, loaded)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 0, store.Count())
}

func TestLoad_MalformedFileStartsEmpty(t *testing.T) {
	t.Parallel()

	store := books.NewStore()
	path := writeSeedFile(t, `{"definitely": "not an array"`)

	loaded, skipped := Load(logger.New(), store, path)
	assert.Equal(t, 0, loaded)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 0, store.Count())
}

func TestLoad_LoadsValidRecords(t *testing.T) {
	t.Parallel()

	store := books.NewStore()
	path := writeSeedFile(t, `[
		{
			"title": "The Great Gatsby",
			"author": "F. Scott Fitzgerald",
			"isbn": "9780743273565",
			"published_year": 1925,
			"pages": 180,
			"genre": "Fiction",
			"summary": "A classic American novel set in the 1920s"
		},
		{
			"title": "A Brief History of Time",
			"author": "Stephen Hawking",
			"isbn": "9780553380163",
			"published_year": 1988,
			"pages": 212,
			"available": false,
			"genre": "Science"
		}
	]`)

	loaded, skipped := Load(logger.New(), store, path)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 0, skipped)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "The Great Gatsby", list[0].Title)
	assert.True(t, list[0].Available) // omitted available defaults to true
	assert.False(t, list[1].Available)
}

func TestLoad_SkipsInvalidRecords(t *testing.T) {
	t.Parallel()

	store := books.NewStore()
	path := writeSeedFile(t, `[
		{
			"title": "The Great Gatsby",
			"author": "F. Scott Fitzgerald",
			"isbn": "9780743273565",
			"published_year": 1925,
			"pages": 180,
			"genre": "Fiction"
		},
		{
			"title": "Bad ISBN",
			"author": "Nobody",
			"isbn": "123",
			"published_year": 2000,
			"pages": 100,
			"genre": "Fiction"
		}
	]`)

	loaded, skipped := Load(logger.New(), store, path)
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, store.Count())
}
