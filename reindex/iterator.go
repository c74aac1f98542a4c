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

	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage"
)

const (
	// DefaultBatchSize is the default number of courses handed to each batch
	DefaultBatchSize = 100
)

// CourseIterator iterates over all stored courses in batches.
type CourseIterator struct {
	repo      storage.CourseRepository
	batchSize int
}

// NewCourseIterator creates a new course iterator.
// batchSize: number of courses in each batch (must be > 0)
func NewCourseIterator(repo storage.CourseRepository, batchSize int) *CourseIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &CourseIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all stored courses, calling fn for each batch.
// Iteration stops on the first error from fn or when every course has been
// visited. Context cancellation is checked between batches.
func (it *CourseIterator) ForEach(ctx context.Context, fn func([]*core.Course) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	courses, err := it.repo.ListCourses(ctx)
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		return nil
	}

	for i := 0; i < len(courses); i += it.batchSize {
		end := i + it.batchSize
		if end > len(courses) {
			end = len(courses)
		}

		if err := fn(courses[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
