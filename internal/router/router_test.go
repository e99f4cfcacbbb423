package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studydrill/drill/internal/screen"
)

// fakeScreen records lifecycle calls.
type fakeScreen struct {
	name    string
	initRan bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.name }
func (s *fakeScreen) Title() string                           { return s.name }

func newStack(names ...string) (*Router, []*fakeScreen) {
	screens := make([]*fakeScreen, len(names))
	for i, n := range names {
		screens[i] = &fakeScreen{name: n}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func TestPushRunsInitAndActivates(t *testing.T) {
	r, screens := newStack("home", "practice")

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "practice" {
		t.Errorf("active = %q, want practice", r.Active().Title())
	}
	if !screens[1].initRan {
		t.Error("pushed screen's Init never ran")
	}
}

func TestPopRevealsScreenBelow(t *testing.T) {
	r, _ := newStack("home", "practice")
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r, _ := newStack("home")
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after bottom pop, want 1", r.Depth())
	}
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r, _ := newStack("home", "practice")

	exam := &fakeScreen{name: "exam"}
	r.Replace(exam)

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "exam" {
		t.Errorf("active = %q, want exam", r.Active().Title())
	}
	if !exam.initRan {
		t.Error("replacement screen's Init never ran")
	}

	// Back navigation skips the replaced screen entirely.
	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestNavigationMessages(t *testing.T) {
	r, _ := newStack("home")

	practice := &fakeScreen{name: "practice"}
	r.Update(PushScreenMsg{Screen: practice})
	if r.Active().Title() != "practice" {
		t.Fatalf("active = %q after push msg, want practice", r.Active().Title())
	}

	browse := &fakeScreen{name: "browse"}
	r.Update(ReplaceScreenMsg{Screen: browse})
	if r.Active().Title() != "browse" || !browse.initRan {
		t.Fatalf("replace msg failed: active = %q, init = %v", r.Active().Title(), browse.initRan)
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active = %q after pop msg, want home", r.Active().Title())
	}
}
