package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <old-word> <new-word>",
		Short: "Rename a stored word, recomputing its hash",
		Long: `Update replaces old-word with new-word on the same record and
recomputes the hash for the new word. If old-word is not in the store,
nothing changes. If new-word (or its hash) already belongs to a
different record, the update fails and the store is left unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: runUpdateCmd,
	}
}

// runUpdateCmd executes the update command.
func runUpdateCmd(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	oldWord, newWord := args[0], args[1]

	ctx := cmd.Context()
	if err := sess.store.Update(ctx, oldWord, newWord); err != nil {
		return err
	}
	sess.logger.Debug("word updated", "old_word", oldWord, "new_word", newWord)

	fmt.Fprintln(cmd.OutOrStdout(), "Updated.")
	return nil
}
