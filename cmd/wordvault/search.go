package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <word|hash>",
		Short: "Look up a word's hash, or a hash's word",
		Long: `Search looks up the hash stored for an exact word match and prints
it. With --by-hash the lookup runs in the other direction: the argument
is treated as a hex digest and the matching word is printed.

A missing entry is not an error; a not-found note is printed instead.

Examples:
  # Word to hash
  wordvault search hello

  # Hash to word
  wordvault search --by-hash 2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824`,
		Args: cobra.ExactArgs(1),
		RunE: runSearchCmd,
	}

	cmd.Flags().Bool("by-hash", false, "Treat the argument as a hash and look up its word")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	byHash, err := cmd.Flags().GetBool("by-hash")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var (
		result string
		found  bool
	)
	if byHash {
		result, found, err = sess.store.SearchHash(ctx, args[0])
	} else {
		result, found, err = sess.store.SearchWord(ctx, args[0])
	}
	if err != nil {
		return err
	}

	if !found {
		fmt.Fprintf(cmd.OutOrStdout(), "No entry for %q.\n", args[0])
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
