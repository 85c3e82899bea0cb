// Package ingest provides the ingestion progress view for the TUI. It
// shows a staged progress sequence while a submission is in flight. The
// stages advance on a fixed wall-clock interval and do not reflect real
// backend progress; the backend call is synchronous and opaque.
package ingest

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/messages"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/styles"
	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
)

// View renders the staged ingestion progress.
type View struct {
	styles *styles.Styles

	ingestService driving.IngestService
	ctx           context.Context

	source   domain.IngestSource
	phase    domain.IngestPhase
	interval time.Duration
	running  bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new ingest view. interval is the wall-clock delay
// between phase advances.
func NewView(s *styles.Styles, ingestService driving.IngestService, interval time.Duration) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &View{
		styles:        s,
		ingestService: ingestService,
		ctx:           context.Background(),
		interval:      interval,
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init is a no-op; the view only becomes active through Start.
func (v *View) Init() tea.Cmd {
	return nil
}

// Start begins tracking a submission. It returns the command that
// dispatches the source and the first phase tick.
func (v *View) Start(source domain.IngestSource) tea.Cmd {
	v.source = source
	v.phase = domain.PhaseRetrieving
	v.running = true
	v.err = nil
	return tea.Batch(v.submit(source), v.tick())
}

// Update handles messages for the ingest view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PhaseTicked:
		if !v.running {
			return v, nil
		}
		v.phase = v.phase.Next()
		// The final phase holds until the backend answers.
		if v.phase < domain.PhaseIndexing {
			return v, v.tick()
		}
		return v, nil

	case messages.IngestFinished:
		v.running = false
		v.err = msg.Err
		return v, nil
	}
	return v, nil
}

// submit dispatches the source and reports the outcome.
func (v *View) submit(source domain.IngestSource) tea.Cmd {
	return func() tea.Msg {
		receipt, err := v.ingestService.Submit(v.ctx, source)
		return messages.IngestFinished{Receipt: receipt, Err: err}
	}
}

// tick schedules the next cosmetic phase advance.
func (v *View) tick() tea.Cmd {
	return tea.Tick(v.interval, func(time.Time) tea.Msg {
		return messages.PhaseTicked{}
	})
}

// View renders the progress sequence.
func (v *View) View() string {
	sections := make([]string, 0, 10)

	sections = append(sections, v.styles.Title.Render("Indexing"), "")
	sections = append(sections, v.styles.Normal.Render(v.source.String()), "")

	for _, phase := range domain.Phases() {
		sections = append(sections, v.renderPhase(phase))
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
		sections = append(sections, v.styles.Muted.Render("Press esc to go back and retry."))
	} else if !v.running {
		sections = append(sections, "", v.styles.Success.Render("Indexed. Ready to search."))
	} else {
		sections = append(sections, "", v.styles.Muted.Render("This can take a while for long videos."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPhase formats one row of the progress sequence.
func (v *View) renderPhase(phase domain.IngestPhase) string {
	switch {
	case phase < v.phase || (!v.running && v.err == nil):
		return fmt.Sprintf("  %s %s", v.styles.Success.Render("✓"), v.styles.Muted.Render(phase.Label()))
	case phase == v.phase && v.running:
		label := fmt.Sprintf("%s  %s", phase.Label(), v.styles.Warning.Render(phase.Activity()))
		return fmt.Sprintf("  %s %s", v.styles.Title.Render("▸"), v.styles.Normal.Render(label))
	default:
		return fmt.Sprintf("  %s %s", " ", v.styles.Muted.Render(phase.Label()))
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Phase returns the current cosmetic phase.
func (v *View) Phase() domain.IngestPhase {
	return v.phase
}

// Running reports whether a submission is in flight.
func (v *View) Running() bool {
	return v.running
}

// Source returns the source being ingested.
func (v *View) Source() domain.IngestSource {
	return v.source
}

// Err returns the submission error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the view for reuse.
func (v *View) Reset() {
	v.source = domain.IngestSource{}
	v.phase = domain.PhaseRetrieving
	v.running = false
	v.err = nil
}
