package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/kaitongg-bit/course-pilot/catalog"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/review"
)

const (
	semanticWeight = 0.7
	keywordWeight  = 0.3

	// fallbackQuery stands in for an empty profile so the pipeline still
	// returns broadly relevant courses instead of nothing.
	fallbackQuery = "general course"

	defaultTopK           = 20
	defaultCandidateLimit = 50
)

// SimilaritySource answers semantic similarity queries over the course store.
// similarity.Source is the production implementation.
type SimilaritySource interface {
	Search(ctx context.Context, query string, limit int) ([]core.Candidate, error)
}

// Matcher ranks catalog courses for a user profile. It is stateless per
// request and safe for concurrent use.
type Matcher struct {
	catalog         *catalog.Catalog
	reviews         *review.Set
	source          SimilaritySource
	topK            int
	candidateLimit  int
	keywordFallback bool
	logger          *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithTopK sets how many ranked courses are returned.
// Default is 20.
func WithTopK(k int) Option {
	return func(m *Matcher) error {
		if k < 1 {
			k = 1
		}
		m.topK = k
		return nil
	}
}

// WithCandidateLimit sets how many semantic candidates are fetched before
// re-ranking. Default is 50, leaving headroom above topK so the keyword
// component can promote courses the embedding alone ranked lower.
func WithCandidateLimit(limit int) Option {
	return func(m *Matcher) error {
		if limit < 1 {
			limit = 1
		}
		m.candidateLimit = limit
		return nil
	}
}

// WithKeywordFallback enables keyword-only ranking over the whole catalog
// when the similarity source fails. Default is off: failures surface as
// ErrSimilarityUnavailable.
func WithKeywordFallback(enabled bool) Option {
	return func(m *Matcher) error {
		m.keywordFallback = enabled
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a new matcher.
func NewMatcher(cat *catalog.Catalog, reviews *review.Set, source SimilaritySource, opts ...Option) (*Matcher, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if reviews == nil {
		return nil, ErrReviewSetRequired
	}
	if source == nil {
		return nil, ErrSimilaritySourceRequired
	}

	m := &Matcher{
		catalog:        cat,
		reviews:        reviews,
		source:         source,
		topK:           defaultTopK,
		candidateLimit: defaultCandidateLimit,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Match ranks courses for the profile under the availability constraint.
// Returns up to topK enriched results, best first. Zero matching courses is
// an empty slice and a nil error, not a failure.
func (m *Matcher) Match(ctx context.Context, profile *core.Profile, availability core.Availability) ([]core.CourseResult, error) {
	return m.MatchWithMonitor(ctx, profile, availability, nil)
}

// MatchWithMonitor ranks courses with monitoring. The monitor receives
// callbacks at each stage of the match process.
func (m *Matcher) MatchWithMonitor(ctx context.Context, profile *core.Profile, availability core.Availability, monitor MatchMonitor) ([]core.CourseResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if profile == nil {
		return nil, ErrInvalidQuery
	}

	query := strings.TrimSpace(profile.QueryText())
	if query == "" {
		query = fallbackQuery
	}
	monitor.Start(query)

	candidates, err := m.source.Search(ctx, query, m.candidateLimit)
	if err != nil {
		if !m.keywordFallback {
			return nil, fmt.Errorf("%w: %w", ErrSimilarityUnavailable, err)
		}
		m.logger.Warn("semantic search unavailable, ranking by keyword only", "err", err)
		monitor.KeywordFallback(err)
		candidates = m.catalogCandidates()
	}
	monitor.AfterSemanticSearch(candidates)

	scored := make([]core.ScoredCourse, 0, len(candidates))
	for _, candidate := range candidates {
		course, ok := m.catalog.Get(candidate.Code)
		if !ok {
			// Stale vector store entry, e.g. a course dropped from the catalog
			m.logger.Debug("candidate not in catalog", "code", candidate.Code)
			continue
		}

		if !Compatible(course, availability) {
			monitor.ScheduleRejected(course.Code)
			continue
		}

		score := candidate.Similarity*semanticWeight + KeywordScore(query, course.Code)*keywordWeight
		scored = append(scored, core.ScoredCourse{Course: course, Score: score})
	}

	// Stable: ties keep candidate order, which is similarity order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > m.topK {
		scored = scored[:m.topK]
	}
	monitor.AfterRanking(scored)

	results := make([]core.CourseResult, len(scored))
	for i, sc := range scored {
		results[i] = m.enrich(sc)
	}
	monitor.Finish(results)

	return results, nil
}

// catalogCandidates lists every catalog course as a zero-similarity
// candidate, used when ranking degrades to keyword only.
func (m *Matcher) catalogCandidates() []core.Candidate {
	courses := m.catalog.Courses()
	candidates := make([]core.Candidate, len(courses))
	for i, course := range courses {
		candidates[i] = core.Candidate{Code: course.Code}
	}
	return candidates
}
