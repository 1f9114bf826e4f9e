package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		Long: `Stats prints the total word count, the longest and shortest stored
words, and the most recently inserted word. When several words tie on
length, one of them is shown.`,
		Args: cobra.NoArgs,
		RunE: runStatsCmd,
	}
}

// runStatsCmd executes the stats command.
func runStatsCmd(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	count, err := sess.store.Count(ctx)
	if err != nil {
		return err
	}

	// Large word lists are common; group digits for readability.
	p := message.NewPrinter(language.English)
	fmt.Fprintf(out, "Total words:      %s\n", p.Sprintf("%d", count))

	if count == 0 {
		return nil
	}

	longest, _, err := sess.store.LongestWord(ctx)
	if err != nil {
		return err
	}
	shortest, _, err := sess.store.ShortestWord(ctx)
	if err != nil {
		return err
	}
	recent, _, err := sess.store.MostRecentWord(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Longest word:     %s\n", longest)
	fmt.Fprintf(out, "Shortest word:    %s\n", shortest)
	fmt.Fprintf(out, "Most recent word: %s\n", recent)
	return nil
}
