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


package coursepilot

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/kaitongg-bit/course-pilot/ai/openai"
	"github.com/kaitongg-bit/course-pilot/catalog"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/ingestion"
	"github.com/kaitongg-bit/course-pilot/match"
	"github.com/kaitongg-bit/course-pilot/reindex"
	"github.com/kaitongg-bit/course-pilot/review"
	"github.com/kaitongg-bit/course-pilot/similarity"
	"github.com/kaitongg-bit/course-pilot/storage"
	"github.com/kaitongg-bit/course-pilot/storage/badger"
)

// ErrCourseNotFound is returned when a course code is not in the catalog.
var ErrCourseNotFound = errors.New("course not found")

// System wires the catalog, review set, vector store, and AI provider into
// one unit. All components are initialized eagerly in NewSystem so a
// misconfiguration fails at startup, not on the first request.
type System struct {
	backend    *badger.Backend
	courseRepo storage.CourseRepository
	catalog    *catalog.Catalog
	reviews    *review.Set
	provider   ai.AIProvider
	logger     *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig   *ai.Config
	provider   ai.AIProvider
	reviewPath string
	inMemory   bool
}

// WithAIConfig sets the AI service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI
// construction. Used by tests with ai/mock.
func WithProvider(provider ai.AIProvider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithReviewFile sets the review CSV path. An absent file is not an error;
// courses simply load without review data.
func WithReviewFile(path string) SystemOption {
	return func(o *systemOptions) {
		o.reviewPath = path
	}
}

// WithInMemoryStorage uses an in-memory vector store instead of a BadgerDB
// directory. The dbPath argument is ignored.
func WithInMemoryStorage() SystemOption {
	return func(o *systemOptions) {
		o.inMemory = true
	}
}

// NewSystem opens the vector store at dbPath and loads the course catalog
// from coursePath. A missing course file is fatal.
func NewSystem(dbPath, coursePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	cat, err := catalog.LoadFile(coursePath)
	if err != nil {
		return nil, err
	}

	reviews := review.NewEmptySet()
	if options.reviewPath != "" {
		reviews, err = review.LoadFile(options.reviewPath)
		if err != nil {
			return nil, err
		}
	}

	backend, err := badger.OpenBackend(dbPath, options.inMemory)
	if err != nil {
		return nil, err
	}

	courseRepo, err := badger.NewCourseRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			courseRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &System{
		backend:    backend,
		courseRepo: courseRepo,
		catalog:    cat,
		reviews:    reviews,
		provider:   provider,
		logger:     slog.Default(),
	}, nil
}

func (s *System) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.courseRepo.Close(); err != nil {
		s.logger.Error("error closing course repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *System) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *System) Reviews() *review.Set {
	return s.reviews
}

func (s *System) CourseRepository() storage.CourseRepository {
	return s.courseRepo
}

// NewMatcher builds a matcher over the loaded catalog, reviews, and the
// stored course vectors.
func (s *System) NewMatcher(opts ...match.Option) (*match.Matcher, error) {
	source, err := similarity.NewSource(s.courseRepo, s.provider.Embedder())
	if err != nil {
		return nil, err
	}
	return match.NewMatcher(s.catalog, s.reviews, source, opts...)
}

// NewIngestionPipeline builds a seeding pipeline into the course repository.
func (s *System) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.courseRepo, s.provider.Embedder(), opts...)
}

// NewReindexer builds a reindexer that re-embeds every stored course,
// writing progress to the given writer.
func (s *System) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(s.courseRepo, s.provider.Embedder(), config, progress)
}

// Seed embeds every catalog course and persists it to the vector store.
func (s *System) Seed(ctx context.Context, opts ...ingestion.Option) (int, error) {
	pipeline, err := s.NewIngestionPipeline(opts...)
	if err != nil {
		return 0, err
	}
	defer pipeline.Release()

	return pipeline.Seed(ctx, s.catalog.Courses())
}

// Summarize generates a personalized recommendation blurb for a course.
// Generation failures degrade to the stored course description; only an
// unknown course code is an error.
func (s *System) Summarize(ctx context.Context, code string, profile *core.Profile) (string, error) {
	course, ok := s.catalog.Get(code)
	if !ok {
		return "", ErrCourseNotFound
	}

	summary, err := s.provider.Summarizer().Summarize(ctx, course, profile)
	if err != nil {
		s.logger.Warn("summary generation failed, using course description", "code", code, "err", err)
		return course.Description, nil
	}
	return summary, nil
}

// AuditReview moderates review text. Audit failures degrade to a pass so a
// flaky moderation model never blocks submissions.
func (s *System) AuditReview(ctx context.Context, reviewText string) ai.AuditResult {
	result, err := s.provider.ReviewAuditor().Audit(ctx, reviewText)
	if err != nil {
		s.logger.Warn("review audit failed, passing review", "err", err)
		return ai.AuditResult{Status: ai.AuditPass, Reason: "Audit unavailable"}
	}
	return result
}
