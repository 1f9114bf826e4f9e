// Package log provides logging helpers for wordvault.
//
// The words ingested into the store are frequently password material,
// so the plaintext word must not leak into log files by accident.
// RedactHandler wraps any slog.Handler and masks attribute values
// whose keys identify word content before the record reaches the
// underlying handler.
package log
