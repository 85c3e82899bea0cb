// Package cli implements the cobra command surface of vquery.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/vquery/vquery-cli/internal/core/ports/driving"
	"github.com/vquery/vquery-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services holds the driving ports the commands run against.
type Services struct {
	Ingest  driving.IngestService
	Project driving.ProjectService
	Query   driving.QueryService
	Clip    driving.ClipService
	History driving.HistoryService
}

var (
	ingestService  driving.IngestService
	projectService driving.ProjectService
	queryService   driving.QueryService
	clipService    driving.ClipService
	historyService driving.HistoryService
)

// Configure injects the services the commands depend on. Called from
// main before Execute.
func Configure(s Services) {
	ingestService = s.Ingest
	projectService = s.Project
	queryService = s.Query
	clipService = s.Clip
	historyService = s.History
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vquery",
	Short: "Semantic video search from the terminal",
	Long: `vquery turns videos into semantically searchable, time-coded segments.

Submit a video URL or local file for indexing, then query it in natural
language and play or download the matching sub-clips.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
