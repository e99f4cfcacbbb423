package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/distractor"
	"github.com/studydrill/drill/internal/practice"
	"github.com/studydrill/drill/internal/screen"
	"github.com/studydrill/drill/internal/view"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func makeBank(n int) *bank.Repository {
	qs := make([]bank.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, bank.Question{
			ID:       i,
			Question: fmt.Sprintf("What is concept %d?", i),
			Answer:   fmt.Sprintf("Answer %d", i),
		})
	}
	return bank.NewRepository(qs, "Test Subject")
}

func testQuizScreen(n int) *QuizScreen {
	repo := makeBank(n)
	rng := rand.New(rand.NewPCG(7, 11))
	gen := distractor.NewWithRand(rng)
	ctrl := practice.NewController(repo, practice.NewProgress(), gen, rng, nil)
	return New(ctrl, nil, 20)
}

func TestQuizScreen_Title(t *testing.T) {
	s := testQuizScreen(5)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestQuizScreen_AnswerAndAdvance(t *testing.T) {
	s := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.ctrl.Phase() != practice.PhaseAnswered {
		t.Fatal("expected answered phase after enter")
	}
	if v := qs.View(80, 24); v == "" {
		t.Error("expected non-empty feedback view")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.ctrl.Phase() != practice.PhaseUnanswered {
		t.Error("expected fresh question after next")
	}
	if qs.ctrl.View().Index != 1 {
		t.Errorf("index = %d, want 1", qs.ctrl.View().Index)
	}
}

func TestQuizScreen_HintSkipsHiddenOptions(t *testing.T) {
	s := testQuizScreen(6)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('h'))
	qs := scr.(*QuizScreen)

	if len(qs.ctrl.Hidden()) != 2 {
		t.Fatalf("hidden = %d, want 2", len(qs.ctrl.Hidden()))
	}
	if qs.opts.Cursor() == "" {
		t.Error("cursor should rest on a visible option")
	}
	for _, h := range qs.ctrl.Hidden() {
		if qs.opts.Cursor() == h {
			t.Error("cursor must not sit on a hidden option")
		}
	}
}

func TestQuizScreen_FilterKeyCycles(t *testing.T) {
	s := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('f'))
	qs := scr.(*QuizScreen)
	if qs.ctrl.View().Filter != view.FilterErrors {
		t.Errorf("filter = %v, want ERRORS", qs.ctrl.View().Filter)
	}
	scr, _ = qs.Update(keyPress('f'))
	qs = scr.(*QuizScreen)
	if qs.ctrl.View().Filter != view.FilterBookmarks {
		t.Errorf("filter = %v, want BOOKMARKS", qs.ctrl.View().Filter)
	}
	scr, _ = qs.Update(keyPress('f'))
	qs = scr.(*QuizScreen)
	if qs.ctrl.View().Filter != view.FilterAll {
		t.Errorf("filter = %v, want ALL", qs.ctrl.View().Filter)
	}
}

func TestQuizScreen_JumpOverlay(t *testing.T) {
	s := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('g'))
	qs := scr.(*QuizScreen)
	if !qs.HandlesEsc() {
		t.Fatal("jump overlay should consume esc")
	}

	qs.input.Model.SetValue("4")
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)

	if qs.HandlesEsc() {
		t.Error("overlay should close after jump")
	}
	q, ok := qs.ctrl.Current()
	if !ok || q.ID != 4 {
		t.Errorf("current = %+v, want question 4", q)
	}
}

func TestQuizScreen_SearchThenOpen(t *testing.T) {
	s := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('/'))
	qs := scr.(*QuizScreen)

	qs.input.Model.SetValue("concept 3")
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	if len(qs.searchResults) != 1 {
		t.Fatalf("results = %d, want 1", len(qs.searchResults))
	}

	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)
	q, ok := qs.ctrl.Current()
	if !ok || q.ID != 3 {
		t.Errorf("current = %+v, want question 3", q)
	}
}

func TestQuizScreen_TutorUnavailable(t *testing.T) {
	s := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('t'))
	qs := scr.(*QuizScreen)

	if qs.mode == modeChat {
		t.Error("chat should not open without a tutor service")
	}
	if qs.flash == "" {
		t.Error("expected a flash message explaining the tutor is unavailable")
	}
}

func TestQuizScreen_EmptyErrorsView(t *testing.T) {
	s := testQuizScreen(3)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('f'))
	qs := scr.(*QuizScreen)

	v := qs.View(80, 24)
	if !strings.Contains(v, "No wrong answers") {
		t.Errorf("empty errors view should explain itself, got:\n%s", v)
	}
}
