package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/keymap"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/messages"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/styles"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/views/detail"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/views/ingest"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/views/library"
	"github.com/vquery/vquery-cli/internal/core/domain"
)

// App is the root Bubbletea model. It owns the views and routes
// messages between them.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap

	libraryView *library.View
	ingestView  *ingest.View
	detailView  *detail.View

	currentView messages.ViewType
	width       int
	height      int
	ready       bool
	err         error
}

// NewApp creates the root model from the driving ports and settings.
func NewApp(ports *Ports, cfg *domain.Config) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		styles:      s,
		keymap:      km,
		libraryView: library.NewView(s, km, ports.Project),
		ingestView:  ingest.NewView(s, ports.Ingest, time.Duration(cfg.PhaseIntervalSeconds)*time.Second),
		detailView: detail.NewView(s, km, ports.Project, ports.Query, ports.Clip,
			time.Duration(cfg.RetryCeilingSeconds)*time.Second),
		currentView: messages.ViewLibrary,
	}, nil
}

// WithContext sets the context used for backend calls.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	a.libraryView.WithContext(ctx)
	a.ingestView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("vquery"),
		a.libraryView.Init(),
	)
}

// Update handles messages and routes them to views.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.libraryView.SetDimensions(msg.Width, msg.Height)
		a.ingestView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a.routeToActive(msg)

	case messages.Quit:
		return a, tea.Quit

	case messages.ViewChanged:
		return a.switchView(msg.View)

	case messages.SubmitRequested:
		// An ingestion in flight cannot be preempted; the submission
		// itself will fail fast with ErrIngestInProgress if raced.
		a.currentView = messages.ViewIngest
		return a, a.ingestView.Start(msg.Source)

	case messages.IngestFinished:
		var cmd tea.Cmd
		a.ingestView, cmd = a.ingestView.Update(msg)
		if msg.Err != nil {
			// Back to the library with the input preserved for retry.
			a.currentView = messages.ViewLibrary
			a.libraryView.Reset()
			a.libraryView, _ = a.libraryView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.libraryView.ClearSource()
		a.currentView = messages.ViewDetail
		return a, tea.Batch(cmd, a.detailView.OpenScope(msg.Receipt.Scope()))

	case messages.PhaseTicked:
		var cmd tea.Cmd
		a.ingestView, cmd = a.ingestView.Update(msg)
		return a, cmd

	case messages.ProjectSelected:
		a.currentView = messages.ViewDetail
		return a, a.detailView.Open(msg.Project)

	case messages.ProjectsLoaded, messages.ProjectDeleted:
		var cmd tea.Cmd
		a.libraryView, cmd = a.libraryView.Update(msg)
		return a, cmd

	case messages.ProjectLoaded, messages.QueryCompleted,
		messages.ClipResolved, messages.ClipDownloaded, messages.RetryElapsed:
		var cmd tea.Cmd
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.routeToActive(msg)
	}

	return a.routeToActive(msg)
}

// routeToActive forwards a message to the active view.
func (a *App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewLibrary:
		a.libraryView, cmd = a.libraryView.Update(msg)
	case messages.ViewIngest:
		a.ingestView, cmd = a.ingestView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	}
	return a, cmd
}

// switchView navigates to a view, re-initialising it where needed.
func (a *App) switchView(view messages.ViewType) (tea.Model, tea.Cmd) {
	a.currentView = view
	switch view {
	case messages.ViewLibrary:
		a.libraryView.Reset()
		return a, a.libraryView.Init()
	case messages.ViewIngest:
		return a, a.ingestView.Init()
	case messages.ViewDetail:
		return a, a.detailView.Init()
	}
	return a, nil
}

// View renders the active view.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	switch a.currentView {
	case messages.ViewLibrary:
		return a.libraryView.View()
	case messages.ViewIngest:
		return a.ingestView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	default:
		return ""
	}
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready reports whether the first window size has been received.
func (a *App) Ready() bool {
	return a.ready
}

// Err returns the last routed error, if any.
func (a *App) Err() error {
	return a.err
}

// Library returns the library view.
func (a *App) Library() *library.View {
	return a.libraryView
}

// Ingest returns the ingest view.
func (a *App) Ingest() *ingest.View {
	return a.ingestView
}

// Detail returns the detail view.
func (a *App) Detail() *detail.View {
	return a.detailView
}
