package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to
// use errors.Is() for programmatic error handling while still
// providing human-readable messages.
var (
	// ErrNoAlgorithm is returned when no hash algorithm is configured.
	// This should not happen in practice since the CLI defaults to md5.
	ErrNoAlgorithm = errors.New("no hash algorithm configured")

	// ErrNoDatabaseDir is returned when the database directory is empty.
	ErrNoDatabaseDir = errors.New("no database directory configured")

	// ErrConfigNotFound is returned when the configuration file does
	// not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
