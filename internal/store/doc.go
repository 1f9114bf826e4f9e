// Package store provides the SQLite-backed word/hash store.
//
// The store owns a single table with three columns: a monotonically
// increasing id, a unique word, and the unique hex digest of that word.
// The dual uniqueness (no two rows share a word, no two rows share a
// hash) is enforced by the schema; inserts that would violate it are
// silently skipped rather than rejected, since re-ingesting the same
// word list is the common case.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of
// other databases because:
//  1. No external dependencies - the database is a single file
//  2. CGO-free implementation allows easy cross-compilation
//  3. Sufficient performance for a single-process local store
//  4. VACUUM INTO gives us consistent single-statement backups
//
// The store is single-writer by design. Concurrent external access to
// the same database file is not supported.
package store
