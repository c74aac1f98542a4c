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


package match

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog is not provided.
	ErrCatalogRequired = errors.New("catalog required")

	// ErrReviewSetRequired is returned when a review set is not provided.
	ErrReviewSetRequired = errors.New("review set required")

	// ErrSimilaritySourceRequired is returned when a similarity source is not provided.
	ErrSimilaritySourceRequired = errors.New("similarity source required")

	// ErrInvalidQuery is returned when the match request carries no profile.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrSimilarityUnavailable indicates that semantic search failed and no
	// fallback was configured. It wraps the underlying error.
	ErrSimilarityUnavailable = errors.New("similarity search unavailable")
)
