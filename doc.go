// Package sitebook implements the ledger consolidation and aggregation
// engine of a construction-project tracker.
//
// The engine consumes already-fetched raw material and labor records for a
// project scope (a section or mini-section), normalizes them into uniform
// ledger entries, consolidates duplicate entries with conserved totals and
// weighted-average unit costs, buckets entries by calendar day for timeline
// views, reconciles multi-client staff assignments into one deduplicated
// project list, and rolls consolidated costs up into grand totals.
//
// All operations are pure, synchronous transformations over immutable
// in-memory snapshots: the engine never fetches, persists, or renders.
// Because inputs are treated as snapshots, every function is idempotent and
// safe to call repeatedly without locking.
package sitebook
