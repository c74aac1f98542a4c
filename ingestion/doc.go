// Package ingestion provides the seeding pipeline for the course catalog.
//
// The Pipeline type embeds course documents and writes the resulting records
// to the course repository in batches. Batches are processed concurrently on
// a worker pool; a failed batch is logged and skipped so one bad embedding
// request cannot abort a whole catalog seed.
package ingestion
