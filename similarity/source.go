package similarity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage"
)

// Source answers semantic similarity queries over the stored course vectors.
// A query is embedded and then matched against the repository; similarities
// are already in [0,1] for normalized embedding vectors.
type Source struct {
	repository    storage.Repository
	embedder      ai.Embedder
	minSimilarity float32
	timeout       time.Duration
	logger        *slog.Logger
}

// Option configures a Source.
type Option func(*Source) error

// WithMinSimilarity sets the similarity floor for returned candidates.
// Default is 0 (no floor); ranking happens downstream.
func WithMinSimilarity(min float32) Option {
	return func(s *Source) error {
		s.minSimilarity = min
		return nil
	}
}

// WithTimeout bounds each Search call. Zero means no per-call timeout;
// callers can still cancel through the context.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) error {
		if d < 0 {
			d = 0
		}
		s.timeout = d
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSource creates a similarity source over the given repository and embedder.
func NewSource(repository storage.Repository, embedder ai.Embedder, opts ...Option) (*Source, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Source{
		repository: repository,
		embedder:   embedder,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to limit course candidates semantically similar to the
// query, best first. Any embedding or storage failure is wrapped in
// ErrUnavailable so callers can decide their degradation policy.
func (s *Source) Search(ctx context.Context, query string, limit int) ([]core.Candidate, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error embedding query", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	candidates, err := s.repository.FindSimilar(ctx, vector, s.minSimilarity, limit)
	if err != nil {
		s.logger.Error("error querying similar courses", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return candidates, nil
}
