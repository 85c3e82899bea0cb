// Package detail provides the per-project view for the TUI: the query
// input, the segment results, follow-up suggestions and the clip player.
package detail

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/components/cliplist"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/components/input"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/components/status"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/keymap"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/messages"
	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/styles"
	"github.com/vquery/vquery-cli/internal/core/domain"
	"github.com/vquery/vquery-cli/internal/core/ports/driving"
)

// player is the clip overlay state. A clip is "played" by resolving and
// presenting its URL; rendering video is out of scope for a terminal.
type player struct {
	open         bool
	key          domain.ClipKey
	url          string
	pending      bool
	retryOffered bool
}

// View is the query and playback surface for one scope.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *cliplist.SegmentList
	statusbar *status.Bar

	projectService driving.ProjectService
	queryService   driving.QueryService
	clipService    driving.ClipService
	ctx            context.Context

	scope    domain.ClipScope
	project  *domain.Project
	notFound bool

	session     domain.QuerySession
	suggestions []string

	player player
	alert  string // blocking error overlay, empty when hidden

	retryCeiling time.Duration
	width        int
	height       int
	ready        bool
	focusInput   bool
}

// NewView creates a new detail view. retryCeiling is how long a clip
// resolution may stay pending before a manual retry is offered.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	projectService driving.ProjectService,
	queryService driving.QueryService,
	clipService driving.ClipService,
	retryCeiling time.Duration,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if retryCeiling <= 0 {
		retryCeiling = 45 * time.Second
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewField(s, "Query:", "Describe the moment you are looking for..."),
		list:           cliplist.NewSegmentList(s),
		statusbar:      status.NewBar(s, km),
		projectService: projectService,
		queryService:   queryService,
		clipService:    clipService,
		ctx:            context.Background(),
		retryCeiling:   retryCeiling,
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

// Init is a no-op; the view becomes active through Open or OpenScope.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open targets a project chosen from the library and refreshes its
// metadata from the backend.
func (v *View) Open(project domain.Project) tea.Cmd {
	v.reset()
	v.project = &project
	v.scope = domain.ClipScope{ProjectID: project.ID}
	return tea.Batch(v.loadProject(project.ID), v.input.Focus(), v.input.Init())
}

// OpenScope targets a scope directly, as produced by a fresh ingestion
// receipt. Legacy filename scopes have no project to fetch.
func (v *View) OpenScope(scope domain.ClipScope) tea.Cmd {
	v.reset()
	v.scope = scope
	cmds := []tea.Cmd{v.input.Focus(), v.input.Init()}
	if scope.ProjectID != "" {
		cmds = append(cmds, v.loadProject(scope.ProjectID))
	}
	return tea.Batch(cmds...)
}

// reset clears per-scope state. Pending query responses become stale.
func (v *View) reset() {
	v.project = nil
	v.notFound = false
	v.session.Reset()
	v.suggestions = nil
	v.list.SetSegments(nil)
	v.player = player{}
	v.alert = ""
	v.focusInput = true
	v.input.Reset()
	v.statusbar.Clear()
	v.statusbar.SetSegmentCount(0)
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProjectLoaded:
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrNotFound) {
				v.notFound = true
				return v, nil
			}
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.project = msg.Project
		return v, nil

	case messages.QueryCompleted:
		// Only the response to the most recent request may land.
		if !v.session.Apply(msg.Token, msg.Segments, msg.Err) {
			return v, nil
		}
		if v.session.LastErr != nil {
			v.list.SetSegments(nil)
			v.suggestions = nil
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(v.session.LastErr.Error())
			return v, nil
		}
		v.list.SetSegments(v.session.Results)
		v.suggestions = v.queryService.Suggestions(v.session.Results)
		v.statusbar.SetState(status.StateSegments)
		v.statusbar.SetSegmentCount(len(v.session.Results))
		v.statusbar.SetMessage("")
		if len(v.session.Results) > 0 {
			v.focusInput = false
			v.input.Blur()
		}
		return v, nil

	case messages.ClipResolved:
		if !v.player.open || msg.Key != v.player.key {
			return v, nil
		}
		v.player.pending = false
		v.player.retryOffered = false
		if msg.Err != nil {
			v.player.open = false
			v.alert = "Clip failed: " + msg.Err.Error()
			return v, nil
		}
		v.player.url = msg.URL
		return v, nil

	case messages.ClipDownloaded:
		if msg.Err != nil {
			v.alert = "Download failed: " + msg.Err.Error()
			return v, nil
		}
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("Saved " + msg.Path)
		return v, nil

	case messages.RetryElapsed:
		if v.player.open && v.player.pending && msg.Key == v.player.key {
			v.player.retryOffered = true
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// A blocking alert must be acknowledged before anything else.
	if v.alert != "" {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			v.alert = ""
		}
		return v, nil
	}

	if v.player.open {
		return v.handlePlayerKey(msg)
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewLibrary}
		}
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	case tea.KeyEnter:
		return v.playSelected()
	default:
	}

	key := msg.String()
	switch key {
	case "k":
		v.list.MoveUp()
	case "j":
		v.list.MoveDown()
	case "i", "/":
		v.focusInput = true
		return v, v.input.Focus()
	case "p":
		return v.playSelected()
	case "d":
		return v.downloadSelected()
	case "q":
		return v, func() tea.Msg { return messages.Quit{} }
	default:
		// Digit keys re-run the numbered suggestion.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(v.suggestions) {
			suggestion := v.suggestions[n-1]
			v.input.SetValue(suggestion)
			return v, v.search(suggestion)
		}
	}
	return v, nil
}

// handleInputKey processes keys while the query input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		return v, v.search(query)
	case tea.KeyEsc:
		v.focusInput = false
		v.input.Blur()
		return v, nil
	default:
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handlePlayerKey processes keys while the player overlay is shown.
func (v *View) handlePlayerKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		v.player = player{}
		return v, nil
	case "r":
		if v.player.retryOffered {
			key := v.player.key
			v.player.pending = true
			v.player.retryOffered = false
			return v, tea.Batch(v.resolveClip(key), v.retryTimer(key))
		}
	case "d":
		if v.player.url != "" {
			return v, v.downloadClip(v.player.key)
		}
	}
	return v, nil
}

// search issues a query against the active scope.
func (v *View) search(query string) tea.Cmd {
	token := v.session.Begin(query)
	v.statusbar.SetState(status.StateWorking)
	v.statusbar.SetMessage("Searching...")
	scope := v.scope
	return func() tea.Msg {
		segments, err := v.queryService.Search(v.ctx, scope, query)
		return messages.QueryCompleted{Token: token, Segments: segments, Err: err}
	}
}

// playSelected opens the player for the selected segment.
func (v *View) playSelected() (*View, tea.Cmd) {
	seg := v.list.SelectedSegment()
	if seg == nil {
		return v, nil
	}
	key := v.clipKey(*seg)
	v.player = player{open: true, key: key, pending: true}
	return v, tea.Batch(v.resolveClip(key), v.retryTimer(key))
}

// downloadSelected saves the selected segment's clip to disk.
func (v *View) downloadSelected() (*View, tea.Cmd) {
	seg := v.list.SelectedSegment()
	if seg == nil {
		return v, nil
	}
	v.statusbar.SetState(status.StateWorking)
	v.statusbar.SetMessage("Downloading...")
	return v, v.downloadClip(v.clipKey(*seg))
}

// clipKey builds the cache key for a segment, falling back to the view
// scope when the backend omitted ownership fields.
func (v *View) clipKey(seg domain.Segment) domain.ClipKey {
	key := seg.ClipKey()
	if key.Scope.Empty() {
		key.Scope = v.scope
	}
	return key
}

// resolveClip resolves a clip URL.
func (v *View) resolveClip(key domain.ClipKey) tea.Cmd {
	return func() tea.Msg {
		url, err := v.clipService.Resolve(v.ctx, key)
		return messages.ClipResolved{Key: key, URL: url, Err: err}
	}
}

// downloadClip saves a clip to the download directory.
func (v *View) downloadClip(key domain.ClipKey) tea.Cmd {
	return func() tea.Msg {
		path, err := v.clipService.Download(v.ctx, key)
		return messages.ClipDownloaded{Key: key, Path: path, Err: err}
	}
}

// retryTimer offers a manual retry once a resolution has been pending
// longer than the ceiling.
func (v *View) retryTimer(key domain.ClipKey) tea.Cmd {
	return tea.Tick(v.retryCeiling, func(time.Time) tea.Msg {
		return messages.RetryElapsed{Key: key}
	})
}

// View renders the detail view.
func (v *View) View() string {
	if v.notFound {
		return lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Title.Render("Not found"),
			"",
			v.styles.Muted.Render("This project no longer exists on the backend."),
			v.styles.Muted.Render("Press esc to return to the library."),
		)
	}

	sections := make([]string, 0, 12)
	sections = append(sections, v.styles.Title.Render(v.title()), "")
	sections = append(sections, v.input.View(), "")

	if v.session.InFlight {
		sections = append(sections, v.styles.Muted.Render("Searching..."), "")
	}

	sections = append(sections, v.list.View())

	if len(v.suggestions) > 0 {
		sections = append(sections, "", v.renderSuggestions())
	}

	if v.player.open {
		sections = append(sections, "", v.renderPlayer())
	}
	if v.alert != "" {
		alertBody := lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Error.Render(v.alert),
			v.styles.Muted.Render("Press enter to dismiss."),
		)
		sections = append(sections, "", v.styles.Border.Padding(0, 1).Render(alertBody))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// title formats the heading for the active scope.
func (v *View) title() string {
	if v.project != nil {
		return v.project.Name
	}
	if v.scope.Legacy() {
		return v.scope.Filename
	}
	return v.scope.String()
}

// renderSuggestions formats the numbered follow-up row.
func (v *View) renderSuggestions() string {
	parts := make([]string, 0, len(v.suggestions))
	for i, s := range v.suggestions {
		parts = append(parts, fmt.Sprintf("[%d] %s", i+1, s))
	}
	return v.styles.Muted.Render("Try next: ") + v.styles.Normal.Render(strings.Join(parts, "  "))
}

// renderPlayer formats the player overlay.
func (v *View) renderPlayer() string {
	var lines []string
	lines = append(lines, v.styles.Subtitle.Render("Clip "+v.player.key.Start+" - "+v.player.key.End))
	switch {
	case v.player.pending && v.player.retryOffered:
		lines = append(lines,
			v.styles.Warning.Render("Still extracting..."),
			v.styles.Muted.Render("Press r to retry or esc to close."))
	case v.player.pending:
		lines = append(lines, v.styles.Muted.Render("Extracting clip..."))
	default:
		lines = append(lines,
			v.styles.Success.Render(v.player.url),
			v.styles.Muted.Render("d: download  esc: close"))
	}
	return v.styles.Border.Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// loadProject fetches one project.
func (v *View) loadProject(id string) tea.Cmd {
	return func() tea.Msg {
		project, err := v.projectService.Get(v.ctx, id)
		return messages.ProjectLoaded{Project: project, Err: err}
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.list.SetDimensions(width, height-8)
}

// Scope returns the active scope.
func (v *View) Scope() domain.ClipScope {
	return v.scope
}

// Project returns the loaded project, or nil.
func (v *View) Project() *domain.Project {
	return v.project
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.session.Query
}

// Results returns the current result set.
func (v *View) Results() []domain.Segment {
	return v.session.Results
}

// Suggestions returns the current follow-up suggestions.
func (v *View) Suggestions() []string {
	return v.suggestions
}

// PlayerOpen reports whether the player overlay is visible.
func (v *View) PlayerOpen() bool {
	return v.player.open
}

// PlayerURL returns the resolved clip URL shown in the player.
func (v *View) PlayerURL() string {
	return v.player.url
}

// AlertVisible reports whether the blocking error overlay is shown.
func (v *View) AlertVisible() bool {
	return v.alert != ""
}

// NotFound reports whether the targeted project was deleted remotely.
func (v *View) NotFound() bool {
	return v.notFound
}
