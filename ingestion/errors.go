package ingestion

import "errors"

var (
	// ErrCourseRepositoryRequired is returned when a course repository is not provided.
	ErrCourseRepositoryRequired = errors.New("course repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrSeedFailed is returned when one or more batches could not be seeded.
	ErrSeedFailed = errors.New("seeding failed")
)
