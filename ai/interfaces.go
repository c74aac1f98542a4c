package ai

import (
	"context"

	"github.com/kaitongg-bit/course-pilot/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Summarizer generates a personalized course recommendation blurb for a
// user profile. Implementations must be thread-safe for concurrent use.
//
// Callers own the fallback policy: on error, use the stored course
// description verbatim.
type Summarizer interface {
	// Summarize produces a short recommendation explaining why the course
	// fits the given profile.
	Summarize(ctx context.Context, course *core.Course, profile *core.Profile) (string, error)
}

// ReviewAuditor moderates user-submitted review text.
// Implementations must be thread-safe for concurrent use.
//
// Callers own the fallback policy: on error, treat the review as passing.
type ReviewAuditor interface {
	// Audit checks review text for profanity, hate speech, and personal
	// attacks. Negative but civil reviews must pass.
	Audit(ctx context.Context, reviewText string) (AuditResult, error)
}

// AuditResult is the outcome of a review audit.
type AuditResult struct {
	Status string `json:"Audit Status"` // AuditPass or AuditFail
	Reason string `json:"Reason"`
}

// Passed reports whether the audit allowed the review.
func (r AuditResult) Passed() bool {
	return r.Status == AuditPass
}

// AIProvider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder, Summarizer, and
// ReviewAuditor instances, ensuring they share configuration and resources
// appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Summarizer returns the course summary generation service.
	// The returned Summarizer is safe for concurrent use.
	Summarizer() Summarizer

	// ReviewAuditor returns the review moderation service.
	// The returned ReviewAuditor is safe for concurrent use.
	ReviewAuditor() ReviewAuditor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
