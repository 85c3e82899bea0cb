package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index [url|file]",
	Short: "Submit a video for indexing",
	Long: `Submits a video source to the backend for download, analysis and
semantic indexing. The source is either a video platform URL or a path
to a local video file.

The backend answers only once the whole pipeline has finished, so this
command blocks for the duration of the indexing run.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	input := args[0]
	source := domain.IngestSource{}
	switch {
	case domain.IsVideoURL(input):
		source.URL = input
	case domain.IsVideoFile(input):
		source.FilePath = input
	default:
		return fmt.Errorf("%q is neither a video URL nor a video file", input)
	}

	cmd.Printf("Indexing %s...\n", input)
	cmd.Println("This can take several minutes depending on video length.")

	receipt, err := ingestService.Submit(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	if receipt.Legacy() {
		cmd.Printf("Indexed %s.\n", receipt.Filename)
		cmd.Println("Query it with: vquery search \"...\"")
	} else {
		cmd.Printf("Indexed as project %s.\n", receipt.ProjectID)
		cmd.Printf("Query it with: vquery search --project %s \"...\"\n", receipt.ProjectID)
	}
	return nil
}
