package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>...",
		Short: "Add words to the store",
		Long: `Add stores each word together with its digest under the configured
hash algorithm. Words that are already present are silently skipped.

Examples:
  # Add a single word
  wordvault add hello

  # Add several words at once
  wordvault add cat elephant dog`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAddCmd,
	}
}

// runAddCmd executes the add command.
func runAddCmd(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	if err := sess.store.BatchInsert(ctx, args); err != nil {
		return err
	}
	sess.logger.Debug("words added", "words", args)

	fmt.Fprintf(cmd.OutOrStdout(), "Added %d word(s).\n", len(args))
	return nil
}
