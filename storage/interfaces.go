package storage

import (
	"context"

	"github.com/kaitongg-bit/course-pilot/core"
)

// Repository provides common storage operations shared by all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds stored courses similar to the given vector.
	// Returns candidates with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]core.Candidate, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CourseRepository provides operations for managing embedded course records.
type CourseRepository interface {
	Repository
	// AddCourses adds one or more courses to storage.
	// Course IDs are content-based, so re-adding the same catalog row
	// overwrites the existing record instead of duplicating it.
	// Sets InsertedAt timestamp if not already set.
	// Returns the courses with timestamps populated.
	AddCourses(ctx context.Context, courses ...*core.Course) ([]*core.Course, error)

	// UpdateCourses updates existing courses.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any course doesn't exist.
	UpdateCourses(ctx context.Context, courses ...*core.Course) ([]*core.Course, error)

	// DeleteCourses removes courses by their IDs.
	// Also removes the code index entries.
	// Returns ErrNotFound if any course doesn't exist.
	DeleteCourses(ctx context.Context, ids ...core.ID) error

	// GetCourse retrieves a single course by ID.
	// Returns ErrNotFound if the course doesn't exist.
	GetCourse(ctx context.Context, id core.ID) (*core.Course, error)

	// GetCourses retrieves multiple courses by their IDs.
	// Returns only the courses that exist (no error for missing courses).
	GetCourses(ctx context.Context, ids ...core.ID) ([]*core.Course, error)

	// GetCourseByCode retrieves a course by its display code, e.g. "15-112".
	// Returns ErrNotFound if no course with that code exists.
	GetCourseByCode(ctx context.Context, code string) (*core.Course, error)

	// ListCourses retrieves every stored course record.
	// Ordering follows the underlying key order and is stable across calls.
	ListCourses(ctx context.Context) ([]*core.Course, error)

	// CountCourses returns the number of stored course records.
	CountCourses(ctx context.Context) (int, error)
}
