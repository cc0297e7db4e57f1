// Package sqlite provides SQLite-backed persistence for backfill runs.
//
// The store keeps three tables: runs, day_outcomes, and benchmarks.
// Schema changes ship as embedded SQL migrations applied on open.
// The database lives under the data directory (default
// ~/.benchrange/data) in WAL mode.
package sqlite
