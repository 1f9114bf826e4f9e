// Package ingest reads word lists for batch insertion into the store.
//
// A word list is a plain text file with one word per line. Lines are
// trimmed of surrounding whitespace and blank lines are dropped; what
// remains is handed to the store's batch insert, which resolves
// duplicates. The package reads and trims only - it never talks to
// the store itself.
package ingest
