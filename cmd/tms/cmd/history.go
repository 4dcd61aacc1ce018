package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/tms/internal/history"
)

var (
	historyLimit     int
	historyOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the run journal",
	Long:  `History lists recorded runs from the journal, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No recorded runs.")
			return nil
		}
		for _, e := range entries {
			verdict := "rejected"
			if e.Accepted {
				verdict = "accepted"
			}
			fmt.Fprintf(out, "%s  %s  %-8s  input=%q  state=%s  steps=%d  %s\n",
				e.CreatedAt.Format(time.RFC3339), e.RunID, verdict,
				e.Input, e.FinalState, e.Steps, e.ModelPath)
		}
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete journal entries older than a given age",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Prune(cmd.Context(), historyOlderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries older than %s\n", removed, historyOlderThan)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to list")
	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 30*24*time.Hour, "delete entries older than this age")
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
