package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pwdsec/wordvault/internal/model"
)

// DBFileName is the name of the SQLite database file inside the store
// directory.
const DBFileName = "wordvault.db"

// Hasher maps a word to its lowercase hex digest. The production
// implementation is *hash.Engine; tests may substitute a degenerate
// hasher to exercise collision handling.
type Hasher interface {
	Sum(word string) string
}

// WordStore is the persistent word/hash store. It enforces dual
// uniqueness (word and hash) and delegates digest computation to the
// Hasher supplied at open time.
//
// A WordStore exclusively owns its database handle. Open it once,
// issue operations sequentially, and Close it exactly once.
type WordStore struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// hasher computes digests for inserted and updated words.
	hasher Hasher
}

// Options configures WordStore behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended for most use
	// cases; read performance benefits even without concurrent access.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a WordStore in the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created. Opening never destroys existing data; the schema is created
// only if absent.
//
// The hasher's algorithm is not persisted and is not validated against
// pre-existing rows. Opening a populated store with a different
// algorithm than the one that produced its hashes is the caller's
// responsibility.
//
// All failure modes wrap ErrStoreUnavailable.
func Open(dbDir string, hasher Hasher, opts Options) (*WordStore, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: database not found at %s (use CreateIfNotExists option to create)", ErrStoreUnavailable, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("%w: failed to check database path: %v", ErrStoreUnavailable, err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("%w: failed to create database directory: %v", ErrStoreUnavailable, err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", ErrStoreUnavailable, err)
	}

	// SQLite only supports one writer; a single connection also keeps
	// the sequential execution model honest.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ws := &WordStore{
		db:     db,
		dbPath: dbPath,
		hasher: hasher,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: failed to enable WAL mode: %v", ErrStoreUnavailable, err)
		}
	}

	if err := ws.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to create tables: %v", ErrStoreUnavailable, err)
	}

	return ws, nil
}

// Close closes the database connection.
func (ws *WordStore) Close() error {
	return ws.db.Close()
}

// Path returns the path to the SQLite database file.
func (ws *WordStore) Path() string {
	return ws.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (ws *WordStore) createTables() error {
	schema := `
	-- One row per ingested word. The UNIQUE constraints on word and
	-- hash jointly enforce dual uniqueness; their implicit indexes
	-- serve both lookup directions.
	CREATE TABLE IF NOT EXISTS words (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		word TEXT NOT NULL UNIQUE,
		hash TEXT NOT NULL UNIQUE
	);
	`

	_, err := ws.db.ExecContext(context.Background(), schema)
	return err
}

// Insert stores a word and its digest. If a row with this word or this
// hash already exists, the insert is silently discarded: duplicate
// insertion is the normal path when re-ingesting word lists, not an
// error. The no-op outcome is part of the contract, not a caught
// constraint failure.
func (ws *WordStore) Insert(ctx context.Context, word string) error {
	if word == "" {
		return ErrEmptyWord
	}

	query := `
	INSERT INTO words (word, hash) VALUES (?, ?)
	ON CONFLICT DO NOTHING
	`

	if _, err := ws.db.ExecContext(ctx, query, word, ws.hasher.Sum(word)); err != nil {
		return fmt.Errorf("failed to insert word: %w", err)
	}
	return nil
}

// BatchInsert stores many words in a single transaction. The per-row
// duplicate-skip policy of Insert applies independently to every word;
// duplicates within the batch are resolved by insertion order (first
// occurrence wins). Empty words are skipped. The whole batch commits
// together or not at all: on a medium failure the transaction is rolled
// back and ErrBatchWriteFailed is returned with no partial batch
// visible.
func (ws *WordStore) BatchInsert(ctx context.Context, words []string) error {
	tx, err := ws.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBatchWriteFailed, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO words (word, hash) VALUES (?, ?)
	ON CONFLICT DO NOTHING
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %v", ErrBatchWriteFailed, err)
	}
	defer stmt.Close()

	for _, word := range words {
		if word == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, word, ws.hasher.Sum(word)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: %v", ErrBatchWriteFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrBatchWriteFailed, err)
	}
	return nil
}

// Delete removes the record with an exact word match. Deleting a
// non-existent word is a no-op, not an error.
func (ws *WordStore) Delete(ctx context.Context, word string) error {
	if _, err := ws.db.ExecContext(ctx, `DELETE FROM words WHERE word = ?`, word); err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

// Update renames the record matching oldWord to newWord, recomputing
// its hash. If oldWord does not exist, no row is changed (silent
// no-op; use SearchWord first for a distinguishable not-found signal).
// If newWord or its hash would collide with a different existing
// record, ErrConstraintViolation is returned and the store is left
// unchanged. Renaming a record to itself is allowed.
func (ws *WordStore) Update(ctx context.Context, oldWord, newWord string) error {
	if newWord == "" {
		return ErrEmptyWord
	}
	newHash := ws.hasher.Sum(newWord)

	tx, err := ws.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin update: %w", err)
	}
	// Rollback is a no-op after a successful commit.
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM words WHERE word = ?`, oldWord).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up word: %w", err)
	}

	var clashID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM words WHERE (word = ? OR hash = ?) AND id != ?`,
		newWord, newHash, id,
	).Scan(&clashID)
	switch {
	case err == nil:
		return fmt.Errorf("%w: new word collides with an existing record", ErrConstraintViolation)
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("failed to check for collision: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE words SET word = ?, hash = ? WHERE id = ?`,
		newWord, newHash, id,
	); err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update: %w", err)
	}
	return nil
}

// SearchWord returns the hash for an exact word match. A missing word
// is reported through the found flag, never as an error.
func (ws *WordStore) SearchWord(ctx context.Context, word string) (hash string, found bool, err error) {
	err = ws.db.QueryRowContext(ctx, `SELECT hash FROM words WHERE word = ?`, word).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to search word: %w", err)
	}
	return hash, true, nil
}

// SearchHash returns the word for an exact hash match. A missing hash
// is reported through the found flag, never as an error.
func (ws *WordStore) SearchHash(ctx context.Context, hash string) (word string, found bool, err error) {
	err = ws.db.QueryRowContext(ctx, `SELECT word FROM words WHERE hash = ?`, hash).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to search hash: %w", err)
	}
	return word, true, nil
}

// ListAll returns every record ordered by id ascending, which matches
// insertion order.
func (ws *WordStore) ListAll(ctx context.Context) ([]model.Record, error) {
	rows, err := ws.db.QueryContext(ctx, `SELECT id, word, hash FROM words ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.ID, &r.Word, &r.Hash); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the total record count.
func (ws *WordStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := ws.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// LongestWord returns a word of maximum length. Among equal-length
// candidates the winner is whichever the storage returns first; callers
// must not rely on a specific tie-break. The found flag is false for an
// empty store.
func (ws *WordStore) LongestWord(ctx context.Context) (string, bool, error) {
	return ws.scalarWord(ctx, `SELECT word FROM words ORDER BY LENGTH(word) DESC LIMIT 1`)
}

// ShortestWord returns a word of minimum length, with the same
// tie-break caveat as LongestWord.
func (ws *WordStore) ShortestWord(ctx context.Context) (string, bool, error) {
	return ws.scalarWord(ctx, `SELECT word FROM words ORDER BY LENGTH(word) ASC LIMIT 1`)
}

// MostRecentWord returns the word of the record with the maximum id,
// i.e. the most recently inserted one.
func (ws *WordStore) MostRecentWord(ctx context.Context) (string, bool, error) {
	return ws.scalarWord(ctx, `SELECT word FROM words ORDER BY id DESC LIMIT 1`)
}

// scalarWord runs a single-word query, mapping sql.ErrNoRows to a
// false found flag.
func (ws *WordStore) scalarWord(ctx context.Context, query string) (string, bool, error) {
	var word string
	err := ws.db.QueryRowContext(ctx, query).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query word: %w", err)
	}
	return word, true, nil
}

// Backup writes a complete, independently-openable copy of the store's
// current committed state to the destination file path. The parent
// directory is created if needed. SQLite's VACUUM INTO refuses to
// overwrite an existing file, so the destination must not exist.
func (ws *WordStore) Backup(ctx context.Context, dest string) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
	}

	if _, err := ws.db.ExecContext(ctx, `VACUUM INTO ?`, dest); err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}
	return nil
}
