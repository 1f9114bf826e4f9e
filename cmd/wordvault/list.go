package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored words and their hashes",
		Long:  `List prints every record in insertion order, one "word - hash" pair per line.`,
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	records, err := sess.store.ListAll(cmd.Context())
	if err != nil {
		return err
	}

	for _, r := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", r.Word, r.Hash)
	}
	return nil
}
