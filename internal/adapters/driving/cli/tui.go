package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vquery/vquery-cli/internal/adapters/driving/tui"
	"github.com/vquery/vquery-cli/internal/core/domain"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	Config *domain.Config
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for vquery.

The TUI shows your video library, drives ingestion with live progress,
and lets you query a video and play or download matching clips.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Submit / Select
  Esc      - Back / Cancel
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Ingest:  ingestService,
		Project: projectService,
		Query:   queryService,
		Clip:    clipService,
	}

	cfg := domain.DefaultConfig()
	if tuiConfig != nil && tuiConfig.Config != nil {
		cfg = tuiConfig.Config
	}

	app, err := tui.NewApp(ports, cfg)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
