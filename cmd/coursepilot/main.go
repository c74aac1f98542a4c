// Copyright 2025 Course Pilot Authors
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
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/kaitongg-bit/course-pilot/ai/openai"
	"github.com/kaitongg-bit/course-pilot/catalog"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/ingestion"
	"github.com/kaitongg-bit/course-pilot/match"
	"github.com/kaitongg-bit/course-pilot/reindex"
	"github.com/kaitongg-bit/course-pilot/review"
	"github.com/kaitongg-bit/course-pilot/similarity"
	"github.com/kaitongg-bit/course-pilot/storage/badger"
)

func main() {
	app := &cli.App{
		Name:   "coursepilot",
		Usage:  "Hybrid semantic course matching over a catalog CSV",
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
				Name:   "seed",
				Usage:  "Embed the course catalog and persist it to the vector store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "courses",
						Aliases:  []string{"c"},
						Usage:    "Path to course catalog CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "API token for the embedding service",
						EnvVars: []string{"COURSEPILOT_API_TOKEN"},
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of courses to embed per request",
						Value: 32,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent embedding workers",
						Value: 4,
					},
				},
			},
			{
				Name:   "match",
				Usage:  "Rank courses for a user profile",
				Action: matchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "courses",
						Aliases:  []string{"c"},
						Usage:    "Path to course catalog CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "reviews",
						Usage: "Path to review CSV (optional)",
					},
					&cli.StringFlag{
						Name:  "goal",
						Usage: "Career or learning goal",
					},
					&cli.StringFlag{
						Name:  "skills",
						Usage: "Comma-separated list of skills",
					},
					&cli.StringFlag{
						Name:  "resume",
						Usage: "Resume text",
					},
					&cli.StringFlag{
						Name:  "availability",
						Usage: `Weekly availability as JSON, e.g. {"M":["9:00 AM","9:30 AM"]}`,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of results to return",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "keyword-fallback",
						Usage: "Rank by keyword only if semantic search is unavailable",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "API token for the embedding service",
						EnvVars: []string{"COURSEPILOT_API_TOKEN"},
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed every stored course with the configured embedding model",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "API token for the embedding service",
						EnvVars: []string{"COURSEPILOT_API_TOKEN"},
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of courses to re-embed per request",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts per embedding request",
						Value: 3,
					},
				},
			},
			{
				Name:   "summarize",
				Usage:  "Generate a personalized summary for one course",
				Action: summarizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "courses",
						Aliases:  []string{"c"},
						Usage:    "Path to course catalog CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "course",
						Usage:    "Course code to summarize",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "goal",
						Usage: "Career or learning goal",
					},
					&cli.StringFlag{
						Name:  "skills",
						Usage: "Comma-separated list of skills",
					},
					&cli.StringFlag{
						Name:  "generator-host",
						Usage: "Generation service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "generator-model",
						Usage: "Generation model name",
						Value: "llama-3.3-70b-versatile",
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "API token for the generation service",
						EnvVars: []string{"COURSEPILOT_API_TOKEN"},
					},
				},
			},
			{
				Name:   "audit",
				Usage:  "Moderate a review text",
				Action: auditCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Review text to audit",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "generator-host",
						Usage: "Generation service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "generator-model",
						Usage: "Generation model name",
						Value: "llama-3.3-70b-versatile",
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "API token for the generation service",
						EnvVars: []string{"COURSEPILOT_API_TOKEN"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	cat, err := catalog.LoadFile(c.String("courses"))
	if err != nil {
		return fmt.Errorf("failed to load course catalog: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCourseRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	embedder, err := openai.NewEmbedder(embeddingConfig(c))
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	pipeline, err := ingestion.NewPipeline(repo, embedder,
		ingestion.WithBatchSize(c.Int("batch-size")),
		ingestion.WithPoolSize(c.Int("pool-size")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Seeding %d courses into %s\n", cat.Len(), c.String("db"))

	stored, err := pipeline.Seed(ctx, cat.Courses())
	if err != nil {
		return fmt.Errorf("seeding failed after %d courses: %w", stored, err)
	}

	fmt.Fprintf(os.Stderr, "Stored %d courses\n", stored)
	return nil
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	cat, err := catalog.LoadFile(c.String("courses"))
	if err != nil {
		return fmt.Errorf("failed to load course catalog: %w", err)
	}

	reviews := review.NewEmptySet()
	if path := c.String("reviews"); path != "" {
		reviews, err = review.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load reviews: %w", err)
		}
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCourseRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	embedder, err := openai.NewEmbedder(embeddingConfig(c))
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	source, err := similarity.NewSource(repo, embedder)
	if err != nil {
		return fmt.Errorf("failed to create similarity source: %w", err)
	}

	matcher, err := match.NewMatcher(cat, reviews, source,
		match.WithTopK(c.Int("top-k")),
		match.WithKeywordFallback(c.Bool("keyword-fallback")))
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}

	profile := &core.Profile{
		Goal:   c.String("goal"),
		Skills: splitSkills(c.String("skills")),
		Resume: c.String("resume"),
	}

	availability, err := parseAvailability(c.String("availability"))
	if err != nil {
		return fmt.Errorf("invalid availability: %w", err)
	}

	results, err := matcher.Match(ctx, profile, availability)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCourseRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	embedder, err := openai.NewEmbedder(embeddingConfig(c))
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	config := reindex.DefaultConfig()
	config.BatchSize = c.Int("batch-size")
	config.MaxRetries = c.Int("max-retries")

	reindexer := reindex.NewReindexer(repo, embedder, config, os.Stderr)
	return reindexer.Run(ctx)
}

func summarizeCommand(c *cli.Context) error {
	ctx := context.Background()

	cat, err := catalog.LoadFile(c.String("courses"))
	if err != nil {
		return fmt.Errorf("failed to load course catalog: %w", err)
	}

	code := c.String("course")
	course, ok := cat.Get(code)
	if !ok {
		return fmt.Errorf("course %q not found in catalog", code)
	}

	summarizer, err := openai.NewSummarizer(generatorConfig(c))
	if err != nil {
		return fmt.Errorf("failed to create summarizer: %w", err)
	}

	profile := &core.Profile{
		Goal:   c.String("goal"),
		Skills: splitSkills(c.String("skills")),
	}

	summary, err := summarizer.Summarize(ctx, course, profile)
	if err != nil {
		// Same degradation as the service path: fall back to the description
		slog.Warn("summary generation failed, using course description", "code", code, "err", err)
		summary = course.Description
	}

	fmt.Println(summary)
	return nil
}

func auditCommand(c *cli.Context) error {
	ctx := context.Background()

	auditor, err := openai.NewReviewAuditor(generatorConfig(c))
	if err != nil {
		return fmt.Errorf("failed to create auditor: %w", err)
	}

	result, err := auditor.Audit(ctx, c.String("text"))
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func embeddingConfig(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithAPIToken(c.String("api-token")),
	)
}

func generatorConfig(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithGeneratorHost(c.String("generator-host")),
		ai.WithGeneratorModel(c.String("generator-model")),
		ai.WithAPIToken(c.String("api-token")),
	)
}

// splitSkills splits a comma-separated skill list, dropping empty entries.
func splitSkills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// parseAvailability decodes the CLI availability JSON, a map from day code
// to the list of free half-hour slots.
func parseAvailability(s string) (core.Availability, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var raw map[string][]string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}

	availability := make(core.Availability, len(raw))
	for day, slots := range raw {
		set := make(map[string]bool, len(slots))
		for _, slot := range slots {
			set[slot] = true
		}
		availability[strings.ToUpper(strings.TrimSpace(day))] = set
	}
	return availability, nil
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
