package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage"
)

const defaultBatchSize = 32

// Pipeline seeds the course repository from a loaded catalog.
// Batches of course documents are embedded and stored concurrently.
type Pipeline struct {
	courseRepository storage.CourseRepository
	embedder         ai.Embedder
	pool             *ants.Pool
	batchSize        int
	logger           *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of courses embedded per request.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new seeding pipeline.
func NewPipeline(
	courseRepository storage.CourseRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if courseRepository == nil {
		return nil, ErrCourseRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		courseRepository: courseRepository,
		embedder:         embedder,
		pool:             pool,
		batchSize:        defaultBatchSize,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Seed embeds and stores the given courses, returning the number stored.
// Batches run concurrently on the worker pool; Seed blocks until every batch
// has finished. A failed batch is logged and skipped, and the remaining
// batches still run; if any batch failed, the returned error wraps
// ErrSeedFailed.
func (p *Pipeline) Seed(ctx context.Context, courses []*core.Course) (int, error) {
	if len(courses) == 0 {
		return 0, nil
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		stored int
		failed int
	)

	for start := 0; start < len(courses); start += p.batchSize {
		end := start + p.batchSize
		if end > len(courses) {
			end = len(courses)
		}
		batch := courses[start:end]

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			n, err := p.seedBatch(ctx, batch)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error("error seeding batch", "err", err, "batch_size", len(batch))
				failed += len(batch)
				return
			}
			stored += n
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			failed += len(batch)
			mu.Unlock()
			p.logger.Error("error submitting batch", "err", err)
		}
	}

	wg.Wait()

	if failed > 0 {
		return stored, fmt.Errorf("%w: %d of %d courses not stored", ErrSeedFailed, failed, len(courses))
	}
	return stored, nil
}

func (p *Pipeline) seedBatch(ctx context.Context, batch []*core.Course) (int, error) {
	documents := make([]string, len(batch))
	for i, course := range batch {
		documents[i] = course.Document
	}

	vectors, err := p.embedder.EmbedTexts(ctx, documents)
	if err != nil {
		return 0, err
	}
	if len(vectors) != len(batch) {
		return 0, fmt.Errorf("%w: got %d embeddings for %d documents", ErrSeedFailed, len(vectors), len(batch))
	}

	for i, course := range batch {
		course.Vector = vectors[i]
	}

	added, err := p.courseRepository.AddCourses(ctx, batch...)
	if err != nil {
		return 0, err
	}
	return len(added), nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
