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


// Package catalog builds the immutable in-memory course index.
//
// Raw tabular rows are normalized through a schema-tolerant adapter into the
// canonical Course shape: day codes and half-hour meeting slots are derived
// from the weekday/start/end columns, stringified skill lists are decoded,
// and a searchable text document is assembled for embedding.
//
// Row-level parse failures never abort a load; the affected field falls back
// to its empty value and the row still loads. A missing backing data source,
// by contrast, is fatal at startup.
package catalog
