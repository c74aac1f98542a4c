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


// Package review loads raw course reviews and folds them into per-course
// aggregates (average rating, average workload hours).
//
// Numeric fields are parsed as validated-value-or-default: a review row with
// an unparseable or non-positive rating is excluded from the aggregate but
// retained for display. A missing review source is non-fatal; enrichment
// degrades to defaults.
package review
