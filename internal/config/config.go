package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultAlgorithm is the hash algorithm used when neither the
	// command line nor the configuration file chooses one. The store
	// itself fails closed on unknown algorithms; defaulting happens
	// here at the presentation boundary, never inside the store.
	DefaultAlgorithm = "md5"

	// AppName is the application name used for XDG directory paths.
	AppName = "wordvault"
)

// Config holds all configuration options for wordvault.
// This struct is populated from CLI flags and the optional config file
// and passed through the application via dependency injection rather
// than global state.
type Config struct {
	// Algorithm is the digest algorithm identifier (md5, sha1, sha256,
	// sha512). The choice is fixed for the lifetime of the opened
	// store and is not persisted in the database; opening an existing
	// database with a different algorithm than the one that populated
	// it is the caller's responsibility.
	Algorithm string

	// DatabaseDir is the directory holding the SQLite database file.
	DatabaseDir string

	// ConfigFilePath is the path to the configuration file. If empty,
	// .wordvault is searched for in the current directory and then in
	// the user's home directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// PlaintextLogs disables redaction of word values in log output.
	// Words are often password material, so redaction is on by default.
	PlaintextLogs bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Algorithm:   DefaultAlgorithm,
		DatabaseDir: XDGDataDir(),
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Algorithm == "" {
		return ErrNoAlgorithm
	}
	if c.DatabaseDir == "" {
		return ErrNoDatabaseDir
	}
	return nil
}

// XDGDataDir returns the XDG data directory for wordvault.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/wordvault
// On macOS: ~/Library/Application Support/wordvault
// On Windows: %LOCALAPPDATA%\wordvault
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
