// Package quiz is the practice screen: one question at a time with
// answer feedback, hints, bookmarks, filters, jump, search, and an
// optional tutor chat overlay.
package quiz

import (
	"context"
	"errors"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/llm"
	"github.com/studydrill/drill/internal/practice"
	"github.com/studydrill/drill/internal/screen"
	"github.com/studydrill/drill/internal/tutor"
	"github.com/studydrill/drill/internal/ui/components"
	"github.com/studydrill/drill/internal/ui/layout"
	"github.com/studydrill/drill/internal/view"
)

type mode int

const (
	modeQuestion mode = iota
	modeJump
	modeSearch
	modeChat
)

// chatTurn is one rendered line of the tutor conversation.
type chatTurn struct {
	FromLearner bool
	Text        string
}

// QuizScreen drives the practice controller.
type QuizScreen struct {
	ctrl        *practice.Controller
	tutor       *tutor.Service
	searchLimit int

	mode  mode
	opts  components.OptionList
	input components.TextInput
	flash string

	searchResults []bank.Question
	searchCursor  int

	chatLog     []chatTurn
	chatHistory []llm.Message
	chatWaiting bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates the practice screen over an existing controller.
func New(ctrl *practice.Controller, tutorSvc *tutor.Service, searchLimit int) *QuizScreen {
	s := &QuizScreen{ctrl: ctrl, tutor: tutorSvc, searchLimit: searchLimit}
	s.syncOptions()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Practice"
}

// HandlesEsc keeps esc inside the screen while an overlay is open.
func (s *QuizScreen) HandlesEsc() bool {
	return s.mode != modeQuestion
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeJump:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search / open"},
			{Key: "↑↓", Description: "Results"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeChat:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Close chat"},
		}
	}
	if s.ctrl.Phase() == practice.PhaseAnswered {
		return []layout.KeyHint{
			{Key: "n", Description: "Next"},
			{Key: "r", Description: "Retry"},
			{Key: "b", Description: "Bookmark"},
			{Key: "t", Description: "Tutor"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "h", Description: "Hint"},
		{Key: "f", Description: "Filter"},
		{Key: "s", Description: "Shuffle"},
		{Key: "g", Description: "Jump"},
		{Key: "/", Description: "Search"},
		{Key: "t", Description: "Tutor"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutorPollMsg:
		return s.handleTutorPoll()
	case flashClearMsg:
		s.flash = ""
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeJump || s.mode == modeSearch || s.mode == modeChat {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeJump:
		return s.handleJumpKey(msg)
	case modeSearch:
		return s.handleSearchKey(msg)
	case modeChat:
		return s.handleChatKey(msg)
	}
	return s.handleQuestionKey(msg)
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if choice := s.opts.Cursor(); choice != "" && s.ctrl.Phase() == practice.PhaseUnanswered {
			if err := s.ctrl.SelectAnswer(choice); err == nil {
				s.syncOptions()
			}
		}
		return s, nil
	case "r":
		s.ctrl.Retry()
		s.syncOptions()
		return s, nil
	case "h":
		s.ctrl.Hint()
		s.syncOptions()
		return s, nil
	case "b":
		s.ctrl.ToggleBookmark()
		s.syncOptions()
		return s, nil
	case "n", "right":
		s.ctrl.Next()
		s.syncOptions()
		return s, nil
	case "p", "left":
		s.ctrl.Prev()
		s.syncOptions()
		return s, nil
	case "f":
		s.ctrl.SetFilter(nextFilter(s.ctrl.View().Filter))
		s.syncOptions()
		return s, nil
	case "s":
		s.ctrl.ToggleShuffle()
		s.syncOptions()
		return s, nil
	case "g":
		s.mode = modeJump
		s.input = components.NewTextInput("question id", true, 6)
		return s, s.input.Init()
	case "/":
		s.mode = modeSearch
		s.searchResults = nil
		s.searchCursor = 0
		s.input = components.NewTextInput("search text or id", false, 40)
		return s, s.input.Init()
	case "t":
		if s.tutor == nil {
			return s.setFlash("tutor unavailable: no LLM provider configured")
		}
		if _, ok := s.ctrl.Current(); !ok {
			return s.setFlash("no question to discuss")
		}
		s.mode = modeChat
		s.input = components.NewTextInput("ask the tutor", false, 120)
		return s, s.input.Init()
	}

	var cmd tea.Cmd
	s.opts, cmd = s.opts.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleJumpKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeQuestion
		return s, nil
	case "enter":
		id, err := s.input.NumericValue()
		if err != nil {
			return s.setFlash("enter a question id")
		}
		s.mode = modeQuestion
		if err := s.ctrl.JumpTo(id); err != nil {
			return s.setFlash("question " + strconv.Itoa(id) + " is not in this view")
		}
		s.syncOptions()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleSearchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeQuestion
		return s, nil
	case "up", "ctrl+p":
		if s.searchCursor > 0 {
			s.searchCursor--
		}
		return s, nil
	case "down", "ctrl+n":
		if s.searchCursor < len(s.searchResults)-1 {
			s.searchCursor++
		}
		return s, nil
	case "enter":
		if len(s.searchResults) == 0 {
			s.searchResults = s.ctrl.Search(s.input.Value(), s.searchLimit)
			s.searchCursor = 0
			if len(s.searchResults) == 0 {
				return s.setFlash("no matches")
			}
			return s, nil
		}
		target := s.searchResults[s.searchCursor]
		s.mode = modeQuestion
		if err := s.ctrl.SelectSearchResult(target.ID); err != nil {
			if errors.Is(err, view.ErrNotFound) {
				return s.setFlash("question no longer available")
			}
			return s.setFlash(err.Error())
		}
		s.syncOptions()
		return s, nil
	}
	// Typing again invalidates stale results.
	s.searchResults = nil
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleChatKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeQuestion
		return s, nil
	case "enter":
		if s.chatWaiting {
			return s, nil
		}
		question := s.input.Value()
		if question == "" {
			return s, nil
		}
		q, ok := s.ctrl.Current()
		if !ok {
			return s, nil
		}
		snap := tutor.Snapshot(q, s.ctrl.Options(), s.ctrl.Subject())
		s.tutor.Ask(context.Background(), snap, s.chatHistory, question)
		s.chatLog = append(s.chatLog, chatTurn{FromLearner: true, Text: question})
		s.chatHistory = append(s.chatHistory, llm.Message{Role: llm.RoleUser, Content: question})
		s.chatWaiting = true
		s.input = components.NewTextInput("ask the tutor", false, 120)
		return s, tea.Batch(s.input.Init(), pollTutorCmd())
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleTutorPoll() (screen.Screen, tea.Cmd) {
	if !s.chatWaiting {
		return s, nil
	}
	if err := s.tutor.Err(); err != nil {
		s.chatWaiting = false
		s.chatLog = append(s.chatLog, chatTurn{Text: "(tutor error: " + err.Error() + ")"})
		s.tutor.Consume()
		return s, nil
	}
	reply, ok := s.tutor.Consume()
	if !ok {
		return s, pollTutorCmd()
	}
	s.chatWaiting = false
	s.chatLog = append(s.chatLog, chatTurn{Text: reply.Text})
	s.chatHistory = append(s.chatHistory, llm.Message{Role: llm.RoleAssistant, Content: reply.Text})
	return s, nil
}

// syncOptions rebuilds the option list component from controller state.
func (s *QuizScreen) syncOptions() {
	q, ok := s.ctrl.Current()
	if !ok {
		s.opts = components.NewOptionList(nil)
		return
	}
	list := components.NewOptionList(s.ctrl.Options())
	list = list.SetHidden(s.ctrl.Hidden())
	if s.ctrl.Phase() == practice.PhaseAnswered {
		list = list.Resolve(s.ctrl.Selected(), q.CorrectAnswer())
	}
	s.opts = list
}

func (s *QuizScreen) setFlash(text string) (screen.Screen, tea.Cmd) {
	s.flash = text
	return s, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return flashClearMsg{} })
}

func nextFilter(f view.FilterMode) view.FilterMode {
	switch f {
	case view.FilterAll:
		return view.FilterErrors
	case view.FilterErrors:
		return view.FilterBookmarks
	default:
		return view.FilterAll
	}
}

func pollTutorCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tutorPollMsg(t)
	})
}
