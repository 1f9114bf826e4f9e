package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewBackupCmd creates the backup command.
func NewBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <destination>",
		Short: "Write a complete copy of the database",
		Long: `Backup writes a complete, independently-openable copy of the
database to the destination file path. The copy reflects the records
committed at the moment the backup starts. The destination must not
already exist.

Examples:
  wordvault backup /mnt/backups/wordvault.db`,
		Args: cobra.ExactArgs(1),
		RunE: runBackupCmd,
	}
}

// runBackupCmd executes the backup command.
func runBackupCmd(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.store.Backup(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s.\n", args[0])
	return nil
}
