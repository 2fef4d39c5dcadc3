package seed

import (
	"os"

	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/shelfmark/shelfmark/pkg/books"
)

// Record is a single entry in a seed file. It goes through the same
// validation as the create API, so a seed file can't smuggle in records the
// API would reject.
type Record struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	ISBN          string  `json:"isbn"`
	PublishedYear int     `json:"published_year"`
	Pages         int     `json:"pages"`
	Available     *bool   `json:"available"`
	Genre         string  `json:"genre"`
	Summary       *string `json:"summary"`
}

// Load bulk-loads a JSON array of book records into the store before any
// request is served. A missing or malformed seed file is an operator concern,
// not an API one: the store simply starts empty and the condition is logged.
// Individually invalid records are skipped; valid ones still load.
func Load(log logger.Logger, store *books.Store, path string) (loaded, skipped int) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("seed file not found, starting with an empty catalog", logger.Data{"path": path})
		} else {
			log.Err(err).Warn("failed to read seed file, starting with an empty catalog")
		}
		return 0, 0
	}

	records := []Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		log.Err(err).Warn("malformed seed file, starting with an empty catalog")
		return 0, 0
	}

	for i, record := range records {
		_, err := store.Create(books.CreateBookOptions{
			Title:         record.Title,
			Author:        record.Author,
			ISBN:          record.ISBN,
			PublishedYear: record.PublishedYear,
			Pages:         record.Pages,
			Available:     record.Available,
			Genre:         record.Genre,
			Summary:       record.Summary,
		})
		if err != nil {
			log.Warn("skipping invalid seed record", logger.Data{"index": i, "title": record.Title, "error": err.Error()})
			skipped++
			continue
		}
		loaded++
	}

	log.Info("seed load finished", logger.Data{"path": path, "loaded": loaded, "skipped": skipped})

	return loaded, skipped
}
