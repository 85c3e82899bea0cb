// Package library provides the project library view for the TUI. It
// shows the indexed videos and hosts the ingestion input where new
// sources are submitted.
package library

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/components/input"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/components/status"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/keymap"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/messages"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/styles"
	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
)

// View is the project library with the ingestion input on top.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	statusbar *status.Bar

	projectService driving.ProjectService
	ctx            context.Context

	projects   []domain.Project
	selected   int
	confirming bool // delete confirmation pending

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a new library view.
func NewView(s *styles.Styles, km *keymap.KeyMap, projectService driving.ProjectService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewField(s, "Source:", "Video URL or path to a local video file..."),
		statusbar:      status.NewBar(s, km),
		projectService: projectService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
		focusInput:     true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the project catalog.
func (v *View) Init() tea.Cmd {
	cmds := []tea.Cmd{v.loadProjects()}
	if v.focusInput {
		cmds = append(cmds, v.input.Focus(), v.input.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the library view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProjectsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.projects = msg.Projects
		if v.selected >= len(v.projects) {
			v.selected = 0
		}
		v.statusbar.Clear()
		return v, nil

	case messages.ProjectDeleted:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.statusbar.Clear()
		v.statusbar.SetMessage("Deleted " + msg.ID)
		return v, v.loadProjects()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.confirming {
		return v.handleConfirmKey(msg)
	}

	// Enter in input mode submits the source for indexing.
	if msg.Type == tea.KeyEnter && v.focusInput {
		raw := strings.TrimSpace(v.input.Value())
		if raw == "" {
			return v, nil
		}
		if !domain.IsVideoSource(raw) {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("Not a video URL or video file")
			return v, nil
		}

		source := domain.IngestSource{}
		if domain.IsVideoURL(raw) {
			source.URL = raw
		} else {
			source.FilePath = raw
		}
		return v, func() tea.Msg {
			return messages.SubmitRequested{Source: source}
		}
	}

	// Esc in input mode moves to browsing; otherwise quit falls through
	// to the app.
	if v.focusInput {
		if msg.Type == tea.KeyEsc {
			v.focusInput = false
			v.input.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.moveUp()
		return v, nil
	case tea.KeyDown:
		v.moveDown()
		return v, nil
	case tea.KeyEnter:
		if project := v.SelectedProject(); project != nil {
			return v, func() tea.Msg {
				return messages.ProjectSelected{Project: *project}
			}
		}
		return v, nil
	default:
	}

	switch msg.String() {
	case "k":
		v.moveUp()
	case "j":
		v.moveDown()
	case "i", "/":
		v.focusInput = true
		return v, v.input.Focus()
	case "x":
		if v.SelectedProject() != nil {
			v.confirming = true
		}
	case "R":
		return v, v.loadProjects()
	case "q":
		return v, func() tea.Msg { return messages.Quit{} }
	}
	return v, nil
}

// handleConfirmKey processes keys while the delete confirmation is shown.
func (v *View) handleConfirmKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y":
		v.confirming = false
		project := v.SelectedProject()
		if project == nil {
			return v, nil
		}
		return v, v.deleteProject(project.ID)
	case "n", "esc":
		v.confirming = false
	}
	return v, nil
}

// loadProjects fetches the catalog.
func (v *View) loadProjects() tea.Cmd {
	return func() tea.Msg {
		projects, err := v.projectService.List(v.ctx)
		return messages.ProjectsLoaded{Projects: projects, Err: err}
	}
}

// deleteProject removes a project.
func (v *View) deleteProject(id string) tea.Cmd {
	return func() tea.Msg {
		err := v.projectService.Delete(v.ctx, id)
		return messages.ProjectDeleted{ID: id, Err: err}
	}
}

func (v *View) moveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

func (v *View) moveDown() {
	if v.selected < len(v.projects)-1 {
		v.selected++
	}
}

// View renders the library.
func (v *View) View() string {
	sections := make([]string, 0, 10)

	sections = append(sections, v.styles.Title.Render("vquery"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.renderProjects())

	if v.confirming {
		if project := v.SelectedProject(); project != nil {
			prompt := fmt.Sprintf("Delete %q and its index? (y/n)", project.Name)
			sections = append(sections, "", v.styles.Border.Padding(0, 1).Render(v.styles.Warning.Render(prompt)))
		}
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderProjects formats the project list.
func (v *View) renderProjects() string {
	if len(v.projects) == 0 {
		return v.styles.Muted.Render("No videos indexed yet. Paste a URL or file path above.")
	}

	lines := make([]string, 0, len(v.projects)+2)
	lines = append(lines, v.styles.Subtitle.Render(fmt.Sprintf("Library (%d)", len(v.projects))), "")

	for i, p := range v.projects {
		indicator := "  "
		if i == v.selected && !v.focusInput {
			indicator = "> "
		}

		glyph := v.statusGlyph(p.Status)
		line := fmt.Sprintf("%s%s %s  %s", indicator, glyph, p.Name, v.styles.Muted.Render(p.CreatedAt))
		if i == v.selected && !v.focusInput {
			line = v.styles.Selected.Render(fmt.Sprintf("%s%s %s  %s", indicator, glyph, p.Name, p.CreatedAt))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// statusGlyph maps a project status to a coloured marker.
func (v *View) statusGlyph(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectReady:
		return v.styles.Success.Render("●")
	case domain.ProjectProcessing:
		return v.styles.Warning.Render("◌")
	case domain.ProjectError:
		return v.styles.Error.Render("✗")
	default:
		return v.styles.Muted.Render("·")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// SelectedProject returns the currently selected project, or nil.
func (v *View) SelectedProject() *domain.Project {
	if v.selected < 0 || v.selected >= len(v.projects) {
		return nil
	}
	return &v.projects[v.selected]
}

// Projects returns the loaded catalog.
func (v *View) Projects() []domain.Project {
	return v.projects
}

// InputFocused returns whether the source input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// SourceInput returns the current source input text. A failed
// submission leaves it intact so the user can retry.
func (v *View) SourceInput() string {
	return v.input.Value()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearSource empties the source input, after a successful submission.
// A failed submission keeps the input so the user can correct it.
func (v *View) ClearSource() {
	v.input.Reset()
}

// Reset returns the view to input mode without dropping state.
func (v *View) Reset() {
	v.focusInput = true
	v.confirming = false
}
