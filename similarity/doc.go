// Package similarity adapts the embedder and the course repository into a
// single semantic search operation: embed the query, then rank stored course
// vectors by cosine similarity. Failures of either collaborator surface as
// ErrUnavailable so the ranking layer can fall back or fail loudly.
package similarity
