package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearIndexCmd = &cobra.Command{
	Use:   "clear-index",
	Short: "Discard the legacy single-video index",
	Long: `Discards the backend's legacy single-video search index. The source
video itself is not deleted. Project-scoped indexes are removed with
"vquery projects delete" instead.`,
	RunE: runClearIndex,
}

func init() {
	rootCmd.AddCommand(clearIndexCmd)
}

func runClearIndex(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	if err := queryService.ClearIndex(cmd.Context()); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	cmd.Println("Index deleted.")
	return nil
}
