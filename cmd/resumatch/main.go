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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/resumatch"
	"github.com/poiesic/resumatch/ai"
	"github.com/poiesic/resumatch/core"
	"github.com/poiesic/resumatch/enhance"
	"github.com/poiesic/resumatch/extract"
	"github.com/poiesic/resumatch/reindex"
	"github.com/poiesic/resumatch/search"
)

func main() {
	app := &cli.App{
		Name:  "resumatch",
		Usage: "Resume processing and semantic candidate matching",
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
				Name:      "ingest",
				Usage:     "Ingest resume files into the candidate index",
				ArgsUsage: "FILE [FILE...]",
				Action:    ingestCommand,
				Flags:     append(dbFlags(), aiFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Search indexed candidates by semantic similarity",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: append(append(dbFlags(), aiFlags()...),
					&cli.StringFlag{
						Name:  "category",
						Usage: "Restrict results to one job category",
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum similarity score in [0,1]",
						Value: float64(search.DefaultSimilarityThreshold),
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: search.DefaultLimit,
					},
					&cli.StringFlag{
						Name:    "enhance",
						Usage:   "Query enhancement strategy (none, openai, gemini, custom, local)",
						Value:   "none",
						EnvVars: []string{"RESUMATCH_ENHANCE_STRATEGY"},
					},
					&cli.StringFlag{
						Name:    "openai-token",
						Usage:   "API token for the openai enhancement strategy",
						EnvVars: []string{"RESUMATCH_OPENAI_TOKEN", "OPENAI_API_KEY"},
					},
					&cli.StringFlag{
						Name:    "openai-base-url",
						Usage:   "Base URL for the openai enhancement strategy",
						EnvVars: []string{"RESUMATCH_OPENAI_BASE_URL"},
					},
					&cli.StringFlag{
						Name:  "openai-model",
						Usage: "Chat model for the openai enhancement strategy",
					},
					&cli.StringFlag{
						Name:    "gemini-api-key",
						Usage:   "API key for the gemini enhancement strategy",
						EnvVars: []string{"RESUMATCH_GEMINI_API_KEY", "GEMINI_API_KEY"},
					},
					&cli.StringFlag{
						Name:  "gemini-model",
						Usage: "Model for the gemini enhancement strategy",
					},
					&cli.StringFlag{
						Name:    "custom-endpoint",
						Usage:   "HTTP endpoint for the custom enhancement strategy",
						EnvVars: []string{"RESUMATCH_CUSTOM_ENDPOINT"},
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all indexed documents with the configured model",
				Action: reindexCommand,
				Flags: append(append(dbFlags(), aiFlags()...),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
			{
				Name:   "retrigger",
				Usage:  "Reprocess all failed documents",
				Action: retriggerCommand,
				Flags:  append(dbFlags(), aiFlags()...),
			},
			{
				Name:   "status",
				Usage:  "Show document counts per status and the index manifest",
				Action: statusCommand,
				Flags:  append(dbFlags(), aiFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
			EnvVars:  []string{"RESUMATCH_DB"},
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"RESUMATCH_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "embeddinggemma",
			EnvVars: []string{"RESUMATCH_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "embedding-token",
			Usage:   "Embedding service API token",
			EnvVars: []string{"RESUMATCH_EMBEDDING_TOKEN"},
		},
		&cli.IntFlag{
			Name:    "dimensions",
			Usage:   "Embedding vector dimensionality",
			Value:   768,
			EnvVars: []string{"RESUMATCH_EMBEDDING_DIMENSIONS"},
		},
	}
}

func buildAIConfig(c *cli.Context) (*ai.Config, error) {
	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithEmbeddingToken(c.String("embedding-token")),
		ai.WithDimensions(c.Int("dimensions")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(c *cli.Context) (*resumatch.Database, error) {
	cfg, err := buildAIConfig(c)
	if err != nil {
		return nil, err
	}
	db, err := resumatch.NewDatabase(c.String("db"), resumatch.WithAIConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one resume file is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := db.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	ctx := context.Background()
	failures := 0

	for _, path := range c.Args().Slice() {
		payload, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}

		format, err := extract.ParseFormat(filepath.Ext(path))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}

		id, err := p.IngestSync(ctx, filepath.Base(path), payload, format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: processing failed: %v\n", path, err)
			failures++
			continue
		}

		record, err := db.CandidateRepository().GetCandidate(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("indexed %s (id %d, category %s, %d skills)\n",
			path, record.Id, record.Fields.Category, len(record.Fields.Skills))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, c.NArg())
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a search query is required")
	}
	queryText := strings.Join(c.Args().Slice(), " ")

	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	strategy, err := enhance.ParseStrategy(c.String("enhance"))
	if err != nil {
		return err
	}
	enhancer, err := buildEnhancer(ctx, c, strategy)
	if err != nil {
		return err
	}
	db.Enhancement().SetStrategy(enhancer)

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	query := &core.SearchQuery{
		Text:                queryText,
		CategoryFilter:      core.JobCategory(c.String("category")),
		SimilarityThreshold: float32(c.Float64("threshold")),
		Limit:               c.Int("limit"),
	}

	results, err := searcher.Search(ctx, query)
	if err != nil {
		return err
	}

	if query.EnhancedText != query.Text {
		fmt.Printf("Query enhanced to: %s\n", query.EnhancedText)
	}
	fmt.Printf("Found %d candidates\n", len(results))
	for i, hit := range results {
		fields := hit.Record.Fields
		name := fields.FullName
		if name == "" {
			name = hit.Record.SourceName
		}
		fmt.Printf("%d: %s [%.3f]\n", i+1, name, hit.Score)
		if fields.Email != "" {
			fmt.Printf("   email: %s\n", fields.Email)
		}
		if fields.Category != "" {
			fmt.Printf("   category: %s\n", fields.Category)
		}
		if fields.TotalExperience != "" {
			fmt.Printf("   experience: %s\n", fields.TotalExperience)
		}
		if len(fields.Skills) > 0 {
			fmt.Printf("   skills: %s\n", strings.Join(fields.Skills, ", "))
		}
	}
	return nil
}

func buildEnhancer(ctx context.Context, c *cli.Context, strategy enhance.Strategy) (enhance.Enhancer, error) {
	switch strategy {
	case enhance.StrategyNone:
		return enhance.NewNoopEnhancer(), nil
	case enhance.StrategyLocal:
		return enhance.NewLocalEnhancer(), nil
	case enhance.StrategyOpenAI:
		return enhance.NewOpenAIEnhancer(enhance.OpenAIConfig{
			BaseURL: c.String("openai-base-url"),
			Token:   c.String("openai-token"),
			Model:   c.String("openai-model"),
		})
	case enhance.StrategyGemini:
		return enhance.NewGeminiEnhancer(ctx, enhance.GeminiConfig{
			APIKey: c.String("gemini-api-key"),
			Model:  c.String("gemini-model"),
		})
	case enhance.StrategyCustom:
		return enhance.NewCustomEnhancer(c.String("custom-endpoint"))
	}
	return nil, fmt.Errorf("%w: %q", enhance.ErrUnknownStrategy, strategy)
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reindexer, err := db.NewReindexer(config, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reindexer.Run(ctx); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	return nil
}

func retriggerCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := db.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	failed, err := db.CandidateRepository().ListByStatus(ctx, core.StatusFailed)
	if err != nil {
		return err
	}
	if len(failed) == 0 {
		fmt.Println("No failed documents")
		return nil
	}

	recovered := 0
	for _, record := range failed {
		if err := p.Process(ctx, record.Id); err != nil {
			fmt.Fprintf(os.Stderr, "%s (id %d): still failing: %v\n", record.SourceName, record.Id, err)
			continue
		}
		recovered++
		fmt.Printf("recovered %s (id %d)\n", record.SourceName, record.Id)
	}

	fmt.Printf("Recovered %d of %d failed documents\n", recovered, len(failed))
	return nil
}

func statusCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	manifest, err := db.ManifestRepository().LoadManifest(ctx)
	if err != nil {
		return err
	}
	if manifest == nil {
		fmt.Println("Index: empty (no manifest)")
	} else {
		fmt.Printf("Index: model %s, %d dimensions, updated %s\n",
			manifest.EmbeddingModel, manifest.Dimensions,
			manifest.UpdatedAt.Format(time.RFC3339))
	}

	statuses := []core.Status{
		core.StatusReceived, core.StatusParsing, core.StatusParsed,
		core.StatusEmbedding, core.StatusIndexed, core.StatusFailed,
	}
	for _, status := range statuses {
		records, err := db.CandidateRepository().ListByStatus(ctx, status)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %d\n", status, len(records))
		if status == core.StatusFailed {
			for _, record := range records {
				fmt.Printf("  %s (id %d): %s\n", record.SourceName, record.Id, record.FailureReason)
			}
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
