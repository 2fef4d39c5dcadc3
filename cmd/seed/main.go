package main

import (
	"fmt"
	"os"

	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/shelfmark/shelfmark/pkg/books"
	"github.com/shelfmark/shelfmark/pkg/seed"
	"github.com/urfave/cli/v2"
)

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

func sampleRecords() []seed.Record {
	return []seed.Record{
		{
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			ISBN:          "9780743273565",
			PublishedYear: 1925,
			Pages:         180,
			Genre:         "Fiction",
			Summary:       strPtr("A classic American novel set in the 1920s"),
		},
		{
			Title:         "A Brief History of Time",
			Author:        "Stephen Hawking",
			ISBN:          "9780553380163",
			PublishedYear: 1988,
			Pages:         212,
			Available:     boolPtr(false),
			Genre:         "Science",
		},
		{
			Title:         "The Hobbit",
			Author:        "J.R.R. Tolkien",
			ISBN:          "9780547928227",
			PublishedYear: 1937,
			Pages:         310,
			Genre:         "Fantasy",
		},
	}
}

func main() {
	log := logger.New()

	app := &cli.App{
		Name:        "seed",
		Usage:       "CLI to work with catalog seed files",
		Description: "CLI to generate and validate the JSON seed files loaded at startup",
		Commands: []*cli.Command{
			{
				Name:  "sample",
				Usage: "write a sample seed file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "path to write the sample seed file to",
						Value: "./seed/books.json",
					},
				},
				Action: func(c *cli.Context) error {
					out := c.String("out")

					data, err := json.MarshalIndent(sampleRecords(), "", "  ")
					if err != nil {
						return err
					}
					if err := os.WriteFile(out, data, 0644); err != nil {
						return err
					}

					fmt.Printf("Wrote sample seed file to %s\n", out)
					return nil
				},
			},
			{
				Name:      "validate",
				Usage:     "dry-run a seed file against the catalog constraints",
				ArgsUsage: "<path>",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						return cli.Exit("a seed file path is required", 1)
					}

					store := books.NewStore()
					loaded, skipped := seed.Load(log, store, path)

					fmt.Printf("Loaded %d records, skipped %d\n", loaded, skipped)
					if skipped > 0 {
						return cli.Exit("seed file contains invalid records", 1)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("seed command error")
	}
}
