// Package home is the entry screen: subject summary, lifetime tallies,
// and the main menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/exam"
	"github.com/studydrill/drill/internal/practice"
	"github.com/studydrill/drill/internal/router"
	"github.com/studydrill/drill/internal/screen"
	"github.com/studydrill/drill/internal/screens/browse"
	"github.com/studydrill/drill/internal/screens/examscreen"
	"github.com/studydrill/drill/internal/screens/quiz"
	"github.com/studydrill/drill/internal/tutor"
	"github.com/studydrill/drill/internal/ui/components"
	"github.com/studydrill/drill/internal/ui/theme"
)

// Deps carries the controllers and services the menu screens need.
// Tutor may be nil when no LLM provider is configured.
type Deps struct {
	Bank        *bank.Repository
	Practice    *practice.Controller
	Exam        *exam.Controller
	Tutor       *tutor.Service
	SearchLimit int
	ExamCount   int
	ExamMinutes int
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quiz.New(deps.Practice, deps.Tutor, deps.SearchLimit),
				}
			}
		}},
		{Label: "EXAM", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: examscreen.New(deps.Exam, deps.ExamCount, deps.ExamMinutes),
				}
			}
		}},
		{Label: "BROWSE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(deps.Practice)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{deps: deps, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	prog := h.deps.Practice.Progress()

	var b strings.Builder
	b.WriteString("\n")

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("D R I L L")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%s   %d questions   score %d/%d   %d to review",
		h.deps.Bank.Subject(), h.deps.Bank.Len(), prog.Score, prog.Attempts, len(prog.Wrong))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats)))
	b.WriteString("\n\n")

	if h.deps.Bank.Len() == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render("The question bank is empty. Run `drill import <file>` first.")))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
