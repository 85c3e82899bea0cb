package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClips bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent queries and clips",
	Long: `Lists locally recorded queries, newest first. With --clips, lists
resolved clips instead.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.Flags().BoolVar(&historyClips, "clips", false, "show clip history instead of queries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if historyClips {
		records, err := historyService.RecentClips(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("listing clip history: %w", err)
		}
		if len(records) == 0 {
			cmd.Println("No clips resolved yet.")
			return nil
		}
		for _, rec := range records {
			cmd.Printf("%s  %-12s %s - %s  %s\n",
				rec.At.Local().Format("2006-01-02 15:04"), rec.Scope, rec.Start, rec.End, rec.URL)
		}
		return nil
	}

	records, err := historyService.RecentQueries(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing query history: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No queries recorded yet.")
		return nil
	}
	for _, rec := range records {
		cmd.Printf("%s  %-12s %q (%d results)\n",
			rec.At.Local().Format("2006-01-02 15:04"), rec.Scope, rec.Query, rec.Results)
	}
	return nil
}
