package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwdsec/wordvault/internal/ingest"
)

// NewIngestCmd creates the ingest command.
func NewIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>...",
		Short: "Batch-insert words from word-list files",
		Long: `Ingest reads one or more word-list files (one word per line, blank
lines ignored) and inserts the words in a single batch per file. Words
already present in the store are silently skipped, so ingesting the
same list twice is harmless.

Each file's batch commits as a whole: if the write fails mid-file, none
of that file's words are stored.

Examples:
  # Ingest one word list
  wordvault ingest rockyou.txt

  # Ingest several lists; files are read concurrently
  wordvault ingest common.txt names.txt dates.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngestCmd,
	}
}

// runIngestCmd executes the ingest command.
func runIngestCmd(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()

	// Read all files up front; a missing or unreadable file aborts the
	// whole run before anything is written.
	wordLists, err := ingest.Files(ctx, args)
	if err != nil {
		return err
	}

	for i, words := range wordLists {
		if err := sess.store.BatchInsert(ctx, words); err != nil {
			return fmt.Errorf("failed to ingest %s: %w", args[i], err)
		}
		sess.logger.Debug("file ingested", "file", args[i], "count", len(words))
		fmt.Fprintf(cmd.OutOrStdout(), "Processed %d words from %q.\n", len(words), args[i])
	}
	return nil
}
