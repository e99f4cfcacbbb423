package examscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studydrill/drill/internal/exam"
	"github.com/studydrill/drill/internal/ui/components"
	"github.com/studydrill/drill/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	switch s.ctrl.Phase() {
	case exam.PhaseRunning:
		if s.confirmQuit {
			return renderConfirmQuit(width)
		}
		return s.renderRunning(width)
	case exam.PhaseFinished:
		return s.renderResult(width, height)
	}
	return s.renderForm(width)
}

func (s *ExamScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Configure exam"))
	b.WriteString("\n\n")

	countLabel := "  Questions: "
	minutesLabel := "  Minutes:   "
	if s.focused == fieldCount {
		countLabel = "> Questions: "
	} else if s.focused == fieldMinutes {
		minutesLabel = "> Minutes:   "
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, countLabel+s.countInput.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, minutesLabel+s.minutesInput.View()))
	b.WriteString("\n\n")
	start := components.NewButton("START EXAM", s.focused == fieldStart, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, start.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pass mark is 60%. The clock cannot be paused."))

	if s.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.formErr))
	}
	return b.String()
}

func (s *ExamScreen) renderRunning(width int) string {
	q, ok := s.ctrl.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	remaining := s.ctrl.Remaining()
	timer := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if remaining <= 30 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d", s.ctrl.Index()+1, len(s.ctrl.Questions())))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d answered  ", s.ctrl.Answered())) + timerStyle.Render(timer)

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, opt := range s.ctrl.Options() {
		prefix := "  "
		if i == s.cursor {
			prefix = "> "
		}
		marker := "  "
		if s.ctrl.Selected() == opt && opt != "" {
			marker = "● "
		}
		line := fmt.Sprintf("%s%s%s", prefix, marker, opt)
		switch {
		case i == s.cursor:
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		case s.ctrl.Selected() == opt:
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))
	b.WriteString("\n")

	if s.ctrl.Index() == len(s.ctrl.Questions())-1 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Next on the last question submits the exam."))
	}
	return b.String()
}

func (s *ExamScreen) renderResult(width, height int) string {
	r := s.ctrl.Result()

	var b strings.Builder
	b.WriteString("\n")

	if r.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("PASSED"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("FAILED"))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d/%d correct (needed %d)", r.Correct, r.Total, r.Threshold)))
	b.WriteString("\n")

	if r.Total > 0 {
		bar := components.NewProgressBar("", float64(r.Correct)/float64(r.Total), true, minInt(width-8, 48))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	sheet := s.ctrl.ReviewSheet()
	visible := maxInt(height-8, 3)
	start := s.reviewOffset
	if start > len(sheet)-1 {
		start = maxInt(len(sheet)-1, 0)
	}
	end := minInt(start+visible, len(sheet))

	for _, rev := range sheet[start:end] {
		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if rev.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}
		given := rev.Given
		if given == "" {
			given = "(no answer)"
		}
		text := rev.Question.Question
		if len(text) > width-30 && width > 30 {
			text = text[:width-30] + "…"
		}
		row := fmt.Sprintf("  %s #%-4d %s", mark, rev.Question.ID, text)
		b.WriteString(row)
		b.WriteString("\n")
		if !rev.Correct {
			detail := fmt.Sprintf("        gave: %s   correct: %s", given, rev.Question.CorrectAnswer())
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderConfirmQuit(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this exam?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing will be recorded."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
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
