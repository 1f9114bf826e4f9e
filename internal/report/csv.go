package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pwdsec/wordvault/internal/model"
)

// CSVWriter outputs records in CSV format. The header names the
// algorithm that produced the hashes: "Word,MD5 Hash" and so on.
// Rows appear in the order given, which for a full export is the
// store's id order.
type CSVWriter struct {
	baseWriter

	// algorithm is the uppercase display name used in the header.
	algorithm string
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
// The algorithm is the uppercase display name of the store's hash
// algorithm (for example "SHA256").
func NewCSVWriter(output io.Writer, algorithm string) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
		algorithm:  algorithm,
	}
}

// Write renders the records as CSV. The whole document is rendered
// into memory first so that an encoding failure never produces a
// truncated file.
func (w *CSVWriter) Write(records []model.Record) (int, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"Word", w.algorithm + " Hash"}); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Word, r.Hash}); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return w.output.Write(buf.Bytes())
}
