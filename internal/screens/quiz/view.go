package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studydrill/drill/internal/practice"
	"github.com/studydrill/drill/internal/ui/theme"
	"github.com/studydrill/drill/internal/view"
)

func (s *QuizScreen) View(width, height int) string {
	if s.mode == modeChat {
		return s.renderChat(width, height)
	}

	q, ok := s.ctrl.Current()
	if !ok {
		return s.renderEmptyView(width)
	}

	var b strings.Builder

	active := s.ctrl.Active()
	prog := s.ctrl.Progress()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  #%d  %d/%d", q.ID, s.ctrl.View().Index+1, len(active)))

	tags := filterTag(s.ctrl.View().Filter)
	if s.ctrl.View().Shuffled {
		tags += "  shuffled"
	}
	if prog.Bookmarks.Has(q.ID) {
		tags += "  ★"
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(tags)

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question)
	b.WriteString(question)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.opts.View()))
	b.WriteString("\n")

	if s.ctrl.Phase() == practice.PhaseAnswered {
		b.WriteString(s.renderFeedback(width, q.CorrectAnswer()))
	} else if len(s.ctrl.Hidden()) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("hint used: two wrong options removed"))
		b.WriteString("\n")
	}

	switch s.mode {
	case modeJump:
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Jump to id: "+s.input.View()))
	case modeSearch:
		b.WriteString("\n")
		b.WriteString(s.renderSearch(width))
	}

	if s.flash != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.flash))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int, correct string) string {
	var b strings.Builder
	if s.ctrl.Selected() == correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Correct answer: " + correct))
	}
	b.WriteString("\n")
	return b.String()
}

func (s *QuizScreen) renderSearch(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Search: "+s.input.View()))
	b.WriteString("\n")
	for i, q := range s.searchResults {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.searchCursor {
			prefix = "> "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		text := q.Question
		if len(text) > width-16 && width > 16 {
			text = text[:width-16] + "…"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(fmt.Sprintf("%s#%d  %s", prefix, q.ID, text))))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *QuizScreen) renderChat(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("Tutor"))
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(min(width-8, 72))
	turns := s.chatLog
	if len(turns) > 8 {
		turns = turns[len(turns)-8:]
	}
	for _, turn := range turns {
		var block string
		if turn.FromLearner {
			block = wrap.Foreground(theme.Primary).Render("You: " + turn.Text)
		} else {
			block = wrap.Foreground(theme.Text).Render("Tutor: " + turn.Text)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n\n")
	}

	if s.chatWaiting {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("thinking..."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "> "+s.input.View()))
	return b.String()
}

func (s *QuizScreen) renderEmptyView(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	msg := "Nothing to review here."
	switch s.ctrl.View().Filter {
	case view.FilterErrors:
		msg = "No wrong answers to review. Well done!"
	case view.FilterBookmarks:
		msg = "No bookmarked questions."
	default:
		msg = "The question bank is empty."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press f to change filter or Esc to go back."))
	if s.flash != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.flash))
	}
	return b.String()
}

func filterTag(f view.FilterMode) string {
	switch f {
	case view.FilterErrors:
		return "filter: errors"
	case view.FilterBookmarks:
		return "filter: bookmarks"
	default:
		return "filter: all"
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
