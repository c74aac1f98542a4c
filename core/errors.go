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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCourse indicates a Course failed validation.
	ErrInvalidCourse = errors.New("invalid course")

	// ErrInvalidReview indicates a Review failed validation.
	ErrInvalidReview = errors.New("invalid review")

	// ErrEmptyCourseCode indicates the course Code field is empty.
	ErrEmptyCourseCode = errors.New("course code cannot be empty")

	// ErrInconsistentSchedule indicates meeting days without slots or vice versa.
	ErrInconsistentSchedule = errors.New("meeting days and slots must both be set or both be empty")

	// ErrRatingOutOfRange indicates a rating outside the 1-5 range.
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)
