package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage"
)

// CourseRepository implements storage.CourseRepository for BadgerDB.
type CourseRepository struct {
	backend *Backend
}

var _ storage.CourseRepository = (*CourseRepository)(nil)

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(backend *Backend) (*CourseRepository, error) {
	return &CourseRepository{
		backend: backend,
	}, nil
}

// NewRepository opens a persistent course repository at the given path.
// Returns the repository together with its backend; the caller must close
// both when done.
func NewRepository(path string) (storage.CourseRepository, *Backend, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, nil, err
	}

	courseRepo, err := NewCourseRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return courseRepo, backend, nil
}

// Close releases resources. CourseRepository has no resources to release.
func (r *CourseRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *CourseRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]core.Candidate, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *CourseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddCourses adds one or more courses to storage.
// IDs are content-based, so re-seeding the same catalog row overwrites the
// existing record in place instead of creating a duplicate.
func (r *CourseRepository) AddCourses(ctx context.Context, courses ...*core.Course) ([]*core.Course, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, course := range courses {
			// Use content-based ID if not set
			if course.Id == 0 {
				course.Id = core.IDFromContent(course.Document)
			}

			// Set timestamps
			if course.InsertedAt.IsZero() {
				course.InsertedAt = time.Now().UTC()
			}
			course.UpdatedAt = course.InsertedAt

			// Store primary record
			key := makeCourseKey(course.Id)
			value := storage.MarshalCourse(course)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store code index
			if course.Code != "" {
				codeKey := makeCourseCodeKey(course.Code)
				if err := tx.Set(codeKey, storage.MarshalID(course.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return courses, err
}

// UpdateCourses updates existing courses.
func (r *CourseRepository) UpdateCourses(ctx context.Context, courses ...*core.Course) ([]*core.Course, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, course := range courses {
			key := makeCourseKey(course.Id)

			// Read old course to detect code changes
			old, err := readCourse(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			course.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalCourse(course)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update code index if the code changed
			if old.Code != course.Code {
				if old.Code != "" {
					if err := tx.Delete(makeCourseCodeKey(old.Code)); err != nil {
						return err
					}
				}
				if course.Code != "" {
					if err := tx.Set(makeCourseCodeKey(course.Code), storage.MarshalID(course.Id)); err != nil {
						return err
					}
				}
			}
		}
		return tx.Commit()
	}, true)

	return courses, err
}

// DeleteCourses removes courses by their IDs.
func (r *CourseRepository) DeleteCourses(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCourseKey(id)

			// Read course to get the code for index cleanup
			course, err := readCourse(tx, key)
			if err != nil {
				return err
			}
			if course == nil {
				return storage.ErrNotFound
			}

			if course.Code != "" {
				if err := tx.Delete(makeCourseCodeKey(course.Code)); err != nil {
					return err
				}
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCourse retrieves a single course by ID.
func (r *CourseRepository) GetCourse(ctx context.Context, id core.ID) (*core.Course, error) {
	var result *core.Course
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCourseKey(id)
		var err error
		result, err = readCourse(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetCourses retrieves multiple courses by their IDs.
func (r *CourseRepository) GetCourses(ctx context.Context, ids ...core.ID) ([]*core.Course, error) {
	var result []*core.Course
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCourseKey(id)
			course, err := readCourse(tx, key)
			if err != nil {
				return err
			}
			if course != nil {
				result = append(result, course)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetCourseByCode retrieves a course by its display code.
func (r *CourseRepository) GetCourseByCode(ctx context.Context, code string) (*core.Course, error) {
	var result *core.Course
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from code index
		item, err := tx.Get(makeCourseCodeKey(code))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var courseID core.ID
		err = item.Value(func(val []byte) error {
			courseID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full course
		result, err = readCourse(tx, makeCourseKey(courseID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListCourses retrieves every stored course record in key order.
func (r *CourseRepository) ListCourses(ctx context.Context) ([]*core.Course, error) {
	var result []*core.Course
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(courseRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var course *core.Course
			err := iter.Item().Value(func(val []byte) error {
				var err error
				course, err = storage.UnmarshalCourse(val)
				return err
			})
			if err != nil {
				return err
			}
			result = append(result, course)
		}
		return nil
	}, false)
	return result, err
}

// CountCourses returns the number of stored course records.
func (r *CourseRepository) CountCourses(ctx context.Context) (int, error) {
	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(courseRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readCourse reads a course from the transaction.
func readCourse(tx *badger.Txn, key []byte) (*core.Course, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var course *core.Course
	err = item.Value(func(val []byte) error {
		var err error
		course, err = storage.UnmarshalCourse(val)
		return err
	})
	return course, err
}
