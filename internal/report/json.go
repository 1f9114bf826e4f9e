package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pwdsec/wordvault/internal/model"
)

// JSONWriter outputs records in JSON format for tool integration.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because it's sufficient for a flat record
// array and keeps the export dependency-free.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders the records as a JSON array. A nil slice renders as an
// empty array, not null.
func (w *JSONWriter) Write(records []model.Record) (int, error) {
	if records == nil {
		records = []model.Record{}
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to serialize records: %w", err)
	}
	data = append(data, '\n')

	return w.output.Write(data)
}
