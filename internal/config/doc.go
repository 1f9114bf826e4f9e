// Package config holds the runtime configuration for wordvault.
//
// Configuration comes from three layers, highest priority first:
// command-line flags, an optional YAML configuration file (.wordvault
// in the current directory or the user's home directory), and built-in
// defaults. The store's database directory defaults to the XDG data
// directory so the database is found regardless of working directory.
package config
