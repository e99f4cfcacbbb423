// Package browse lists the active question view with progress markers
// and lets the learner jump straight to a question.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studydrill/drill/internal/practice"
	"github.com/studydrill/drill/internal/router"
	"github.com/studydrill/drill/internal/screen"
	"github.com/studydrill/drill/internal/ui/layout"
	"github.com/studydrill/drill/internal/ui/theme"
)

// BrowseScreen is a scrollable index of the current view.
type BrowseScreen struct {
	ctrl   *practice.Controller
	cursor int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates the browse screen.
func New(ctrl *practice.Controller) *BrowseScreen {
	return &BrowseScreen{ctrl: ctrl, cursor: ctrl.View().Index}
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Title() string {
	return "Browse"
}

func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	active := s.ctrl.Active()
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(active)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(active) {
			if err := s.ctrl.JumpTo(active[s.cursor].ID); err == nil {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}
	return s, nil
}

func (s *BrowseScreen) View(width, height int) string {
	active := s.ctrl.Active()
	if len(active) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Nothing to list in this view.")
	}

	prog := s.ctrl.Progress()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s — %d questions", s.ctrl.Subject(), len(active))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")

	visible := maxInt(height-4, 3)
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}
	end := minInt(start+visible, len(active))

	for i := start; i < end; i++ {
		q := active[i]
		marks := " "
		if prog.Bookmarks.Has(q.ID) {
			marks = "★"
		}
		wrong := " "
		if prog.Wrong.Has(q.ID) {
			wrong = "!"
		}
		text := q.Question
		if len(text) > width-18 && width > 18 {
			text = text[:width-18] + "…"
		}
		row := fmt.Sprintf("  #%-4d %s%s  %s", q.ID, marks, wrong, text)
		if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("> " + strings.TrimPrefix(row, "  ")))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
