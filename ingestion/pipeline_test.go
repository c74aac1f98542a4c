package ingestion

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage/badger"
)

// testEmbedder implements ai.Embedder for testing
type testEmbedder struct {
	shouldError bool
	calls       atomic.Int32
}

func (m *testEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if m.shouldError {
		return nil, errors.New("embedder error")
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *testEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls.Add(1)
	if m.shouldError {
		return nil, errors.New("embedder error")
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = []float32{float32(i) * 0.1, float32(i) * 0.2, float32(i) * 0.3}
	}
	return result, nil
}

func newTestPipeline(t *testing.T, embedder *testEmbedder, opts ...Option) *Pipeline {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(); backend.Close() })

	pipeline, err := NewPipeline(repo, embedder, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline
}

func makeCourses(n int) []*core.Course {
	courses := make([]*core.Course, n)
	for i := range courses {
		// Documents must differ or content IDs collide
		courses[i] = &core.Course{
			Code:     fmt.Sprintf("15-%03d", i),
			Document: fmt.Sprintf("Course: 15-%03d | Title: Test Course %d", i, i),
		}
	}
	return courses
}

func TestNewPipeline_Validation(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil, &testEmbedder{})
		assert.ErrorIs(t, err, ErrCourseRepositoryRequired)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("valid", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, &testEmbedder{})
		require.NoError(t, err)
		pipeline.Release()
	})
}

func TestSeed(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	pipeline, err := NewPipeline(repo, &testEmbedder{})
	require.NoError(t, err)
	defer pipeline.Release()

	courses := makeCourses(5)
	stored, err := pipeline.Seed(context.Background(), courses)
	require.NoError(t, err)
	assert.Equal(t, 5, stored)

	count, err := repo.CountCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Vectors must be attached to the stored records
	fetched, err := repo.GetCourse(context.Background(), courses[0].Id)
	require.NoError(t, err)
	assert.NotEmpty(t, fetched.Vector)
}

func TestSeed_Empty(t *testing.T) {
	pipeline := newTestPipeline(t, &testEmbedder{})

	stored, err := pipeline.Seed(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, stored)
}

func TestSeed_Batching(t *testing.T) {
	embedder := &testEmbedder{}
	pipeline := newTestPipeline(t, embedder, WithBatchSize(4), WithPoolSize(2))

	stored, err := pipeline.Seed(context.Background(), makeCourses(10))
	require.NoError(t, err)
	assert.Equal(t, 10, stored)
	assert.Equal(t, int32(3), embedder.calls.Load()) // 4 + 4 + 2
}

func TestSeed_EmbedderError(t *testing.T) {
	pipeline := newTestPipeline(t, &testEmbedder{shouldError: true})

	stored, err := pipeline.Seed(context.Background(), makeCourses(3))
	assert.ErrorIs(t, err, ErrSeedFailed)
	assert.Zero(t, stored)
}
