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


// Package match provides hybrid course ranking and result enrichment.
//
// The Matcher type implements a multi-stage ranking algorithm that combines:
//   - Semantic similarity from the course vector store
//   - Keyword matching against course identifiers
//   - A hard schedule-compatibility filter against the user's availability
//
// Ranked courses are enriched with review aggregates, workload labels, and
// display metadata before being returned to the caller.
package match
