package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

var (
	searchProject string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search an indexed video in natural language",
	Long: `Runs a semantic query against an indexed video and prints the
matching segments, best match first. Each segment carries its time
range, relevance score, description and keywords.

With --project, the query is scoped to one project. Without it, the
legacy single-video index is queried.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchProject, "project", "p", "", "project id to query")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	scope := domain.ClipScope{ProjectID: searchProject}
	segments, err := queryService.Search(cmd.Context(), scope, args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, segments)
	}
	return outputSearchTable(cmd, segments)
}

func outputSearchTable(cmd *cobra.Command, segments []domain.Segment) error {
	if len(segments) == 0 {
		cmd.Println("No matching segments.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, seg := range segments {
		cmd.Printf("[%d] %s  (score %.2f)\n", i+1, seg.TimeRange(), seg.Score)
		if seg.Description != "" {
			cmd.Printf("    %s\n", seg.Description)
		}
		if len(seg.Keywords) > 0 {
			cmd.Printf("    keywords: %s\n", strings.Join(seg.Keywords, ", "))
		}
		cmd.Println()
	}

	if suggestions := queryService.Suggestions(segments); len(suggestions) > 0 {
		cmd.Printf("Try next: %s\n", strings.Join(suggestions, " | "))
	}
	return nil
}
