package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wordvault.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordvault",
		Short: "Persistent word/hash lookup store",
		Long: `wordvault stores plaintext words together with their digest under a
fixed hash algorithm (md5, sha1, sha256, or sha512) and supports lookup
in both directions: word to hash and hash to word.

Both the word and the hash column are unique. Inserting a word that is
already present (or whose hash is already present) is silently skipped,
so re-ingesting the same word list is cheap and idempotent.

The database lives in the XDG data directory by default; use --db to
point at a different directory. The algorithm is chosen per invocation
and is not recorded in the database, so always use the same algorithm
for a given database.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("db", "", "Database directory (default: XDG data directory)")
	cmd.PersistentFlags().StringP("algorithm", "a", "", "Hash algorithm: md5, sha1, sha256, sha512 (default: md5)")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: .wordvault in current or home directory)")
	cmd.PersistentFlags().Bool("plaintext-logs", false, "Log word values without redaction")

	// Add subcommands
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewUpdateCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewBackupCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
