// Package examscreen runs the timed exam: a config form, the running
// question loop against the countdown, and the graded review sheet.
package examscreen

import (
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/studydrill/drill/internal/exam"
	"github.com/studydrill/drill/internal/screen"
	"github.com/studydrill/drill/internal/ui/components"
	"github.com/studydrill/drill/internal/ui/layout"
)

const (
	fieldCount = iota
	fieldMinutes
	fieldStart
)

// ExamScreen drives the exam controller.
type ExamScreen struct {
	ctrl *exam.Controller

	countInput   components.TextInput
	minutesInput components.TextInput
	focused      int
	formErr      string

	cursor       int
	confirmQuit  bool
	reviewOffset int
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.EscHandler = (*ExamScreen)(nil)

// New creates the exam screen with the config form pre-filled. Results
// from an earlier visit are discarded so every visit starts at the
// config form.
func New(ctrl *exam.Controller, defaultCount, defaultMinutes int) *ExamScreen {
	if ctrl.Phase() == exam.PhaseFinished {
		ctrl.Abandon()
	}
	s := &ExamScreen{ctrl: ctrl}
	s.resetForm(defaultCount, defaultMinutes)
	return s
}

func (s *ExamScreen) resetForm(count, minutes int) {
	s.countInput = components.NewTextInput("questions", true, 4)
	s.minutesInput = components.NewTextInput("minutes", true, 4)
	s.countInput.Model.SetValue(strconv.Itoa(count))
	s.minutesInput.Model.SetValue(strconv.Itoa(minutes))
	s.focused = fieldCount
	s.formErr = ""
}

func (s *ExamScreen) Init() tea.Cmd {
	return s.countInput.Init()
}

func (s *ExamScreen) Title() string {
	return "Exam"
}

// HandlesEsc keeps esc local while an exam is running or a dialog is
// open, so backing out is always an explicit choice.
func (s *ExamScreen) HandlesEsc() bool {
	return s.ctrl.Phase() == exam.PhaseRunning || s.confirmQuit
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.Phase() {
	case exam.PhaseRunning:
		if s.confirmQuit {
			return []layout.KeyHint{
				{Key: "Y", Description: "Abandon exam"},
				{Key: "N", Description: "Keep going"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Mark answer"},
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Abandon"},
		}
	case exam.PhaseFinished:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		s.ctrl.Tick()
		if s.ctrl.Phase() == exam.PhaseRunning {
			return s, s.waitForTick()
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.Phase() == exam.PhaseConfiguring {
		return s.updateForm(msg)
	}
	return s, nil
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.ctrl.Phase() {
	case exam.PhaseConfiguring:
		return s.handleConfigKey(msg)
	case exam.PhaseRunning:
		return s.handleRunningKey(msg)
	default:
		return s.handleFinishedKey(msg)
	}
}

func (s *ExamScreen) handleConfigKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		s.focused = (s.focused + 1) % 3
		return s, s.focusCmd()
	case "shift+tab", "up":
		s.focused = (s.focused + 2) % 3
		return s, s.focusCmd()
	case "enter":
		count, err1 := s.countInput.NumericValue()
		minutes, err2 := s.minutesInput.NumericValue()
		if err1 != nil || err2 != nil {
			s.formErr = "both fields need a number"
			return s, nil
		}
		if err := s.ctrl.Start(count, minutes); err != nil {
			s.formErr = "out of range: need 1 or more minutes and between 1 and the bank size questions"
			return s, nil
		}
		s.formErr = ""
		s.cursor = 0
		return s, s.waitForTick()
	}
	return s.updateForm(msg)
}

func (s *ExamScreen) focusCmd() tea.Cmd {
	switch s.focused {
	case fieldCount:
		return s.countInput.Init()
	case fieldMinutes:
		return s.minutesInput.Init()
	}
	return nil
}

func (s *ExamScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focused {
	case fieldCount:
		s.countInput, cmd = s.countInput.Update(msg)
	case fieldMinutes:
		s.minutesInput, cmd = s.minutesInput.Update(msg)
	}
	return s, cmd
}

func (s *ExamScreen) handleRunningKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmQuit {
		switch msg.String() {
		case "y", "Y":
			s.confirmQuit = false
			s.ctrl.Abandon()
			return s, nil
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	options := s.ctrl.Options()
	switch msg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(options)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(options) {
			s.ctrl.SelectAnswer(options[s.cursor])
		}
	case "n", "right":
		s.ctrl.Next()
		s.cursor = 0
	case "p", "left":
		s.ctrl.Prev()
		s.cursor = 0
	}
	return s, nil
}

func (s *ExamScreen) handleFinishedKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.reviewOffset > 0 {
			s.reviewOffset--
		}
	case "down", "j":
		if s.reviewOffset < len(s.ctrl.ReviewSheet())-1 {
			s.reviewOffset++
		}
	}
	return s, nil
}

// waitForTick blocks on the controller's countdown until the next tick
// or until the countdown is stopped.
func (s *ExamScreen) waitForTick() tea.Cmd {
	cd := s.ctrl.Countdown()
	if cd == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-cd.C:
			return clockTickMsg{}
		case <-cd.Done():
			return nil
		}
	}
}
