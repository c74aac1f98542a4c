// Package reindex rebuilds the embedding vectors of stored courses.
//
// After switching embedding models the vectors in storage no longer live in
// the same space as query embeddings, so every course must be re-embedded.
// This package walks the full course store in batches, regenerates each
// vector with retry and exponential backoff, and reports progress as it goes.
package reindex
