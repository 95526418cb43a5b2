// Package ingestion loads candidate profiles into the pool.
//
// The Importer type reads profile documents (YAML, or JSON read as YAML),
// including:
//   - Decoding files concurrently on a worker pool
//   - Validating each profile and skipping invalid ones
//   - Upserting valid profiles keyed by email
//
// Importer.Watch keeps a directory in sync by re-importing documents as they
// are created or rewritten. Invalid profiles are logged and counted but do not
// fail an import.
package ingestion
