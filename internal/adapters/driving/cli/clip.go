package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

var (
	clipProject  string
	clipFile     string
	clipDownload bool
)

var clipCmd = &cobra.Command{
	Use:   "clip [start] [end]",
	Short: "Extract a sub-clip of an indexed video",
	Long: `Asks the backend to extract the given time range and prints the
resulting clip URL. Timestamps use the backend's own format, as shown
in search results (e.g. 00:01:05).

With --download, the clip body is saved to the configured download
directory instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runClip,
}

func init() {
	clipCmd.Flags().StringVarP(&clipProject, "project", "p", "", "project id owning the clip")
	clipCmd.Flags().StringVarP(&clipFile, "file", "f", "", "source filename (legacy single-video mode)")
	clipCmd.Flags().BoolVarP(&clipDownload, "download", "d", false, "save the clip locally")
	rootCmd.AddCommand(clipCmd)
}

func runClip(cmd *cobra.Command, args []string) error {
	if clipService == nil {
		return errors.New("clip service not configured")
	}

	key := domain.ClipKey{
		Scope: domain.ClipScope{ProjectID: clipProject, Filename: clipFile},
		Start: args[0],
		End:   args[1],
	}

	if clipDownload {
		path, err := clipService.Download(cmd.Context(), key)
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}
		cmd.Printf("Saved %s\n", path)
		return nil
	}

	url, err := clipService.Resolve(cmd.Context(), key)
	if err != nil {
		return fmt.Errorf("clip extraction failed: %w", err)
	}
	cmd.Println(url)
	return nil
}
