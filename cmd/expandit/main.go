// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/poiesic/expandit"
	"github.com/poiesic/expandit/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "expandit",
		Usage:     "Semantic query expansion over a WordNet lexicon",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Import a WordNet noun database into the lexicon",
				Action: importCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:     "dict",
						Usage:    "Path to the WordNet dict directory (containing index.noun and data.noun)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent import workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of synsets to write in each batch",
						Value: 500,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N synsets (0 = quiet)",
						Value: 5000,
					},
				},
			},
			{
				Name:      "expand",
				Usage:     "Expand a single query",
				ArgsUsage: "<query>",
				Action:    expandCommand,
				Flags: slices.Concat(expansionFlags(), []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-expand",
						Usage: "Print the query unchanged",
					},
					&cli.BoolFlag{
						Name:  "senses",
						Usage: "Print the sense chosen for each query word",
					},
				}),
			},
			{
				Name:   "batch",
				Usage:  "Expand one query per input line",
				Action: batchCommand,
				Flags: slices.Concat(expansionFlags(), []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Query file, one per line (- for stdin)",
						Value:   "-",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent expansion workers",
						Value: 4,
					},
				}),
			},
		},
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB lexicon directory",
		Required: true,
	}
}

// expansionFlags returns the flags shared by expand and batch.
func expansionFlags() []cli.Flag {
	return []cli.Flag{
		dbFlag(),
		&cli.BoolFlag{
			Name:  "read-only",
			Usage: "Open the lexicon without write access",
		},
		&cli.StringFlag{
			Name:  "method",
			Usage: "Disambiguation method (similarity, overlap)",
			Value: expandit.MethodSimilarity,
		},
		&cli.IntFlag{
			Name:  "max-synonyms",
			Usage: "Maximum terms added per query word (0 = unlimited)",
			Value: 0,
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Maximum content words per query (0 = unlimited)",
			Value: 64,
		},
		&cli.BoolFlag{
			Name:  "truncate",
			Usage: "Truncate oversize queries instead of rejecting them",
		},
		&cli.BoolFlag{
			Name:  "no-morphology",
			Usage: "Disable dictionary-form lookup of inflected words",
		},
	}
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Int("workers") <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if c.Int("batch-size") <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}

	engine, err := expandit.NewEngine(expandit.NewConfig(
		expandit.WithPath(dbPath),
		expandit.WithMorphology(false),
	))
	if err != nil {
		return fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer engine.Close()

	opts := []ingestion.Option{
		ingestion.WithPoolSize(c.Int("workers")),
		ingestion.WithBatchSize(c.Int("batch-size")),
	}
	if interval := c.Int("report-interval"); interval > 0 {
		opts = append(opts, ingestion.WithProgress(c.App.ErrWriter, interval))
	}

	pipeline, err := engine.NewImportPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create import pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(c.App.ErrWriter, "Lexicon: %s\n", dbPath)
	fmt.Fprintf(c.App.ErrWriter, "WordNet: %s\n", c.String("dict"))

	stats, err := pipeline.ImportDir(ctx, c.String("dict"))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Imported %d synsets and %d words\n", stats.Synsets, stats.Words)
	return nil
}

func expandCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	if c.Bool("no-expand") {
		fmt.Fprintln(c.App.Writer, query)
		return nil
	}

	engine, err := openEngine(c, 1)
	if err != nil {
		return err
	}
	defer engine.Close()

	result, err := engine.Expand(context.Background(), query)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	fmt.Fprintln(c.App.Writer, result.Expanded)
	if c.Bool("senses") {
		for _, r := range result.Senses {
			fmt.Fprintf(c.App.Writer, "%s\t%s\t%.4f\t%s\n", r.Token, r.Sense.Name(), r.Score, r.Sense.Definition())
		}
	}
	return nil
}

func batchCommand(c *cli.Context) error {
	if c.Int("workers") <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	var input io.Reader = os.Stdin
	if path := c.String("input"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		input = f
	}

	var queries []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		queries = append(queries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	engine, err := openEngine(c, c.Int("workers"))
	if err != nil {
		return err
	}
	defer engine.Close()

	results, err := engine.ExpandAll(context.Background(), queries)
	if results == nil && err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	// Failed queries are echoed unchanged so output lines match input lines.
	for i, result := range results {
		if result == nil {
			fmt.Fprintln(c.App.Writer, queries[i])
			continue
		}
		fmt.Fprintln(c.App.Writer, result.Expanded)
	}
	if err != nil {
		for _, e := range unwrapJoined(err) {
			slog.Warn("query not expanded", "err", e)
		}
		return fmt.Errorf("some queries were not expanded: %w", err)
	}
	return nil
}

func openEngine(c *cli.Context, workers int) (*expandit.Engine, error) {
	cfg := expandit.NewConfig(
		expandit.WithPath(c.String("db")),
		expandit.WithReadOnly(c.Bool("read-only")),
		expandit.WithMorphology(!c.Bool("no-morphology")),
		expandit.WithWorkers(workers),
		expandit.WithMethod(c.String("method")),
		expandit.WithMaxSynonymsPerWord(c.Int("max-synonyms")),
		expandit.WithMaxTokens(c.Int("max-tokens")),
		expandit.WithTruncate(c.Bool("truncate")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	engine, err := expandit.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	return engine, nil
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	writer := io.Writer(os.Stderr)
	if c.App != nil && c.App.ErrWriter != nil {
		writer = c.App.ErrWriter
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
