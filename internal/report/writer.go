package report

import (
	"io"

	"github.com/pwdsec/wordvault/internal/model"
)

// Writer defines the interface for record export output.
// Implementations render the full row set in a specific format.
//
// Design decision: We use an interface so the export command can pick
// a format at runtime and write to stdout or a file with the same API.
type Writer interface {
	// Write renders the records to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(records []model.Record) (int, error)
}

// baseWriter provides common functionality for export writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
