package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/pwdsec/wordvault/internal/model"
)

// MarkdownWriter outputs records as a GitHub-flavored Markdown table.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation because it provides type-safe tables and
// consistent escaping, which matters for words containing pipes or
// other markdown metacharacters.
type MarkdownWriter struct {
	baseWriter

	// algorithm is the uppercase display name used in the table header.
	algorithm string
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, algorithm string) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		algorithm:  algorithm,
	}
}

// Write renders the records as a Markdown document.
func (w *MarkdownWriter) Write(records []model.Record) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Word Hash Export")
	md.PlainText("")
	md.PlainText("Total records: " + strconv.Itoa(len(records)))
	md.PlainText("")

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Word, "`" + r.Hash + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Word", w.algorithm + " Hash"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}
