package store

import "errors"

// Store errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers
// to use errors.Is() for programmatic error handling while still
// providing human-readable messages. Not-found conditions are NOT
// errors: searches return an explicit found flag, and delete/update of
// a missing word is a silent no-op.
var (
	// ErrStoreUnavailable is returned by Open when the backing medium
	// cannot be opened or written to. This is fatal; there is nothing
	// to close or retry at the store level.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConstraintViolation is returned by Update when the new word or
	// its hash would collide with a different existing record. The
	// store is left unchanged.
	ErrConstraintViolation = errors.New("uniqueness constraint violation")

	// ErrBatchWriteFailed is returned by BatchInsert when the backing
	// medium fails mid-batch. The batch is rolled back as a whole; no
	// partial batch is ever visible.
	ErrBatchWriteFailed = errors.New("batch write failed")

	// ErrEmptyWord is returned when a caller tries to insert or update
	// to an empty word. Words are non-empty by the data model; callers
	// are expected to trim input before it reaches the store.
	ErrEmptyWord = errors.New("word must not be empty")
)
