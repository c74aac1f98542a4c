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


package core

import "fmt"

// ValidateCourse validates a Course according to domain rules.
//
// Validation rules:
//   - Code must not be empty
//   - MeetingDays and MeetingSlots must both be empty or both be non-empty
//
// NOT validated (populated later):
//   - Vector (can be empty until the ingestion pipeline runs)
//   - Document (can be empty until the index builder runs)
func ValidateCourse(course *Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", ErrInvalidCourse)
	}

	if course.Code == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrEmptyCourseCode)
	}

	if (len(course.MeetingDays) == 0) != (len(course.MeetingSlots) == 0) {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrInconsistentSchedule)
	}

	return nil
}

// ValidateReview validates a Review according to domain rules.
//
// Validation rules:
//   - CourseCode must not be empty
//   - Rating must be in the 1-5 range
func ValidateReview(review *Review) error {
	if review == nil {
		return fmt.Errorf("%w: review is nil", ErrInvalidReview)
	}

	if review.CourseCode == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReview, ErrEmptyCourseCode)
	}

	if err := ValidateRating(review.Rating); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReview, err)
	}

	return nil
}

// ValidateRating validates that a rating value is in the 1-5 range.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: value %d", ErrRatingOutOfRange, rating)
	}
	return nil
}
