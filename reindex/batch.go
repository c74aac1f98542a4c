package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage"
)

// BatchProcessor regenerates embedding vectors for batches of courses.
type BatchProcessor struct {
	repo           storage.CourseRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.CourseRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process embeds the documents of a batch of courses and writes the updated
// records back to storage. Vectors are normalized so dot-product similarity
// behaves as cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, courses []*core.Course) error {
	if len(courses) == 0 {
		return nil
	}

	texts := make([]string, len(courses))
	for i, course := range courses {
		texts[i] = course.Document
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(courses) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(courses), len(embeddings))
	}

	for i := range courses {
		courses[i].Vector = Normalize(embeddings[i])
	}

	if _, err := bp.repo.UpdateCourses(ctx, courses...); err != nil {
		return fmt.Errorf("failed to update courses: %w", err)
	}

	return nil
}
