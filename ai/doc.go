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


// Package ai provides abstractions for the AI services Course Pilot consumes.
//
// The matching engine only depends on these interfaces, never on a concrete
// model client; embeddings and text generation are external collaborators
// behind narrow boundaries.
//
//   - Embedder: generates vector embeddings from text
//   - Summarizer: generates personalized course recommendation blurbs
//   - ReviewAuditor: moderates user-submitted review text
//   - AIProvider: aggregates the three for convenient initialization
//
// Two implementation sub-packages exist:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles for unit testing without
//     external services
//
// Production constructors (openai.NewProvider, openai.NewEmbedder, ...)
// return interface types to enforce abstraction. Mock constructors return
// concrete types so tests can inject behavior and assert call counts.
//
// Summarizer and ReviewAuditor failures carry no retry or fallback policy
// here: the calling layer substitutes the stored description (summary) or a
// pass verdict (audit).
package ai
