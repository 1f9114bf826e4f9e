package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/pwdsec/wordvault/internal/report"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all records as CSV, Markdown, or JSON",
		Long: `Export renders the full record set in the chosen format. CSV is the
default: a "Word,<ALGO> Hash" header followed by one row per record in
insertion order.

Output goes to stdout unless --output is given, in which case the file
is written atomically (a partially-written export never replaces an
existing file).

Examples:
  # CSV to stdout
  wordvault export

  # Markdown to a file
  wordvault export --format markdown -o words.md`,
		Args: cobra.NoArgs,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("format", "f", "csv", "Output format: csv, markdown, or json")
	cmd.Flags().StringP("output", "o", "", "Write to the specified file instead of stdout")
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	pretty, err := cmd.Flags().GetBool("pretty")
	if err != nil {
		return err
	}

	records, err := sess.store.ListAll(cmd.Context())
	if err != nil {
		return err
	}

	// Render into memory so file output can be written atomically.
	var buf bytes.Buffer
	writer, err := newExportWriter(&buf, format, sess.engine.Algorithm().DisplayName(), pretty)
	if err != nil {
		return err
	}
	if _, err := writer.Write(records); err != nil {
		return err
	}

	if outputPath == "" {
		_, err := io.Copy(cmd.OutOrStdout(), &buf)
		return err
	}
	if err := atomic.WriteFile(outputPath, &buf); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s.\n", len(records), outputPath)
	return nil
}

// newExportWriter builds the report writer for the requested format.
func newExportWriter(out io.Writer, format, algorithm string, pretty bool) (report.Writer, error) {
	switch format {
	case "csv":
		return report.NewCSVWriter(out, algorithm), nil
	case "markdown", "md":
		return report.NewMarkdownWriter(out, algorithm), nil
	case "json":
		if pretty {
			return report.NewJSONWriter(out, report.WithPrettyPrint()), nil
		}
		return report.NewJSONWriter(out), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (supported: csv, markdown, json)", format)
	}
}
