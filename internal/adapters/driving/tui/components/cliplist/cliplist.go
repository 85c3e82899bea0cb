// Package cliplist provides the segment result list for the TUI.
package cliplist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vquery/vquery-cli/internal/adapters/driving/tui/styles"
	"github.com/vquery/vquery-cli/internal/core/domain"
)

// SegmentList displays query results in a navigable list. The order of
// segments is the backend's: best match first, never re-sorted here.
type SegmentList struct {
	segments []domain.Segment
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSegmentList creates a new segment list component.
func NewSegmentList(s *styles.Styles) *SegmentList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SegmentList{
		segments: nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the segment list.
func (l *SegmentList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *SegmentList) Update(msg tea.Msg) (*SegmentList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the segment list.
func (l *SegmentList) View() string {
	if len(l.segments) == 0 {
		return l.styles.Muted.Render("No matching segments")
	}

	lines := make([]string, 0, len(l.segments)*3+2)

	header := l.styles.Subtitle.Render(fmt.Sprintf("Segments (%d)", len(l.segments)))
	lines = append(lines, header, "")

	// Each segment takes up to 3 lines: title, description, keywords.
	visibleCount := (l.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.segments) {
		end = len(l.segments)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderSegment(i, &l.segments[i]))
	}

	return strings.Join(lines, "\n")
}

// renderSegment formats a single segment entry.
func (l *SegmentList) renderSegment(index int, seg *domain.Segment) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := seg.PrimaryKeyword()
	maxTitleLen := l.width - 30
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	head := fmt.Sprintf("%s%s  %s  %.2f", indicator, title, seg.TimeRange(), seg.Score)

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(head)
	} else {
		titleLine = l.styles.Normal.Render(head)
	}

	parts := []string{titleLine}

	if seg.Description != "" {
		desc := seg.Description
		maxDescLen := l.width - 6
		if maxDescLen < 20 {
			maxDescLen = 20
		}
		if len(desc) > maxDescLen {
			desc = desc[:maxDescLen-3] + "..."
		}
		parts = append(parts, l.styles.Muted.Render("    "+desc))
	}

	if len(seg.Keywords) > 0 {
		keywords := seg.Keywords
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		parts = append(parts, l.styles.Muted.Render("    "+strings.Join(keywords, " · ")))
	}

	return strings.Join(parts, "\n")
}

// MoveUp moves the selection up.
func (l *SegmentList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down.
func (l *SegmentList) MoveDown() {
	if l.selected < len(l.segments)-1 {
		l.selected++
	}
}

// SetSegments replaces the list contents and resets the selection.
func (l *SegmentList) SetSegments(segments []domain.Segment) {
	l.segments = segments
	l.selected = 0
}

// Segments returns the current segments.
func (l *SegmentList) Segments() []domain.Segment {
	return l.segments
}

// Selected returns the selected index.
func (l *SegmentList) Selected() int {
	return l.selected
}

// SelectedSegment returns the currently selected segment, or nil.
func (l *SegmentList) SelectedSegment() *domain.Segment {
	if l.selected < 0 || l.selected >= len(l.segments) {
		return nil
	}
	return &l.segments[l.selected]
}

// SetDimensions sets the list dimensions.
func (l *SegmentList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}
