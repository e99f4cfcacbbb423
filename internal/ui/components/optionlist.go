package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studydrill/drill/internal/ui/theme"
)

// OptionList renders the answer choices for one question. Choices are
// identified by their text; hidden ones stay in place but are dimmed
// and skipped by the cursor.
type OptionList struct {
	Options  []string
	Hidden   []string
	Correct  string
	Answered bool
	Chosen   string

	cursor int
}

// NewOptionList creates a list positioned on the first visible option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// SetHidden marks options removed from play by a hint and moves the
// cursor off a hidden option if needed.
func (o OptionList) SetHidden(hidden []string) OptionList {
	o.Hidden = hidden
	if o.isHidden(o.cursor) {
		o.cursor = o.firstVisible()
	}
	return o
}

// Resolve records the submitted choice so the list can color the
// outcome.
func (o OptionList) Resolve(chosen, correct string) OptionList {
	o.Answered = true
	o.Chosen = chosen
	o.Correct = correct
	return o
}

// Clear returns the list to the unanswered state, keeping the options.
func (o OptionList) Clear() OptionList {
	o.Answered = false
	o.Chosen = ""
	o.Hidden = nil
	o.cursor = 0
	return o
}

// Cursor returns the highlighted option, or "" when every option is
// hidden or the list is empty.
func (o OptionList) Cursor() string {
	if o.cursor < 0 || o.cursor >= len(o.Options) || o.isHidden(o.cursor) {
		return ""
	}
	return o.Options[o.cursor]
}

// Update handles cursor movement. Selection is the caller's job: the
// screen reads Cursor() on enter so it can route the answer through
// its own state machine.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Answered {
		return o, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch kmsg.String() {
	case "up", "k":
		o.cursor = o.step(-1)
	case "down", "j":
		o.cursor = o.step(1)
	}
	return o, nil
}

// View renders the option rows.
func (o OptionList) View() string {
	labels := "abcdefgh"
	s := ""
	for i, opt := range o.Options {
		label := "?"
		if i < len(labels) {
			label = string(labels[i])
		}
		prefix := "  "
		if i == o.cursor && !o.Answered && !o.isHidden(i) {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.isHidden(i):
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true).Render(line)
		case o.Answered && opt == o.Correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line)
		case o.Answered && opt == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line)
		case o.Answered:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		case i == o.cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		s += "\n"
	}
	return s
}

func (o OptionList) isHidden(i int) bool {
	if i < 0 || i >= len(o.Options) {
		return false
	}
	for _, h := range o.Hidden {
		if o.Options[i] == h {
			return true
		}
	}
	return false
}

func (o OptionList) firstVisible() int {
	for i := range o.Options {
		if !o.isHidden(i) {
			return i
		}
	}
	return 0
}

// step moves the cursor by dir, skipping hidden options and stopping at
// the edges.
func (o OptionList) step(dir int) int {
	i := o.cursor
	for {
		i += dir
		if i < 0 || i >= len(o.Options) {
			return o.cursor
		}
		if !o.isHidden(i) {
			return i
		}
	}
}
