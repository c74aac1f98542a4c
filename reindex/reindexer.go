// Copyright 2025 Course Pilot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage"
)

// Config holds configuration for a reindexing run.
type Config struct {
	// BatchSize is the number of courses to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of courses)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for failed embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer orchestrates re-embedding every course in a store.
type Reindexer struct {
	repo      storage.CourseRepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *CourseIterator
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(repo storage.CourseRepository, embedder ai.Embedder, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(repo, embedder, config.MaxRetries, config.RetryDelay)
	iterator := NewCourseIterator(repo, config.BatchSize)

	return &Reindexer{
		repo:      repo,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: processor,
		iterator:  iterator,
	}
}

// Run executes the reindexing run.
// Every stored course is re-embedded with the configured embedder and the
// progress is reported to the configured writer.
func (r *Reindexer) Run(ctx context.Context) error {
	totalCourses, err := r.repo.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}

	if totalCourses == 0 {
		fmt.Fprintf(r.progress, "No courses found in store (0 records)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d courses (batch size: %d)\n",
		totalCourses, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, totalCourses, r.config.ReportInterval)
	tracker.Start()

	processed := 0

	err = r.iterator.ForEach(ctx, func(courses []*core.Course) error {
		if err := r.processor.Process(ctx, courses); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		processed += len(courses)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d courses in %v (%.1f courses/sec)\n",
		totalCourses, elapsed.Round(time.Second), float64(totalCourses)/elapsed.Seconds())

	return nil
}
