// Command vquery is a semantic video search client. It submits videos
// to an indexing backend, queries them in natural language and resolves
// matching time ranges to playable clips, from either a one-shot CLI or
// an interactive TUI.
package main

import (
	"fmt"
	"os"

	"github.com/vquery/vquery-cli/internal/adapters/driven/api"
	"github.com/vquery/vquery-cli/internal/adapters/driven/config/file"
	"github.com/vquery/vquery-cli/internal/adapters/driven/storage/sqlite"
	"github.com/vquery/vquery-cli/internal/adapters/driving/cli"
	"github.com/vquery/vquery-cli/internal/core/ports/driven"
	"github.com/vquery/vquery-cli/internal/core/services"
	"github.com/vquery/vquery-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	cfg, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := api.NewClient(cfg.APIOrigin)
	if err != nil {
		return fmt.Errorf("creating api client: %w", err)
	}

	// History is best-effort: a broken local database degrades recording
	// and the history command, never querying.
	var history driven.HistoryStore
	store, err := sqlite.NewHistoryStore(cfg.HistoryPath)
	if err != nil {
		logger.Warn("history store unavailable: %v", err)
	} else {
		history = store
		defer store.Close()
	}

	clipSvc := services.NewClipService(client, history, cfg.DownloadDir, cfg.ClipRequestsPerSecond)

	cli.Configure(cli.Services{
		Ingest:  services.NewIngestService(client),
		Project: services.NewProjectService(client, clipSvc),
		Query:   services.NewQueryService(client, history, cfg.SuggestionCount, cfg.SuggestionTemplate),
		Clip:    clipSvc,
		History: services.NewHistoryService(history),
	})
	cli.SetTUIConfig(&cli.TUIConfig{Config: cfg})

	return cli.Execute()
}
