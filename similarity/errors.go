package similarity

import "errors"

var (
	// ErrRepositoryRequired is returned when a course repository is not provided.
	ErrRepositoryRequired = errors.New("course repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrUnavailable indicates the similarity source could not serve the query.
	// It wraps the underlying embedding or storage error.
	ErrUnavailable = errors.New("similarity source unavailable")
)
