package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command.
func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <word>...",
		Short: "Delete words from the store",
		Long: `Delete removes the record for each word given. Deleting a word that
is not in the store is a no-op, not an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDeleteCmd,
	}
}

// runDeleteCmd executes the delete command.
func runDeleteCmd(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	for _, word := range args {
		if err := sess.store.Delete(ctx, word); err != nil {
			return err
		}
		sess.logger.Debug("word deleted", "word", word)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d word(s).\n", len(args))
	return nil
}
