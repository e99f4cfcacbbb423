package examscreen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/distractor"
	"github.com/studydrill/drill/internal/exam"
	"github.com/studydrill/drill/internal/screen"
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

func testExamScreen(n int) *ExamScreen {
	repo := makeBank(n)
	rng := rand.New(rand.NewPCG(3, 9))
	gen := distractor.NewWithRand(rng)
	return New(exam.NewController(repo, gen, rng, nil), 5, 10)
}

// startExam drives the config form through a valid start.
func startExam(t *testing.T, s *ExamScreen, count, minutes int) *ExamScreen {
	t.Helper()
	s.countInput.Model.SetValue(fmt.Sprintf("%d", count))
	s.minutesInput.Model.SetValue(fmt.Sprintf("%d", minutes))

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)
	if es.ctrl.Phase() != exam.PhaseRunning {
		t.Fatalf("expected running phase, got %v (formErr=%q)", es.ctrl.Phase(), es.formErr)
	}
	if cmd == nil {
		t.Fatal("starting must arm the clock wait command")
	}
	return es
}

func TestExamScreen_Title(t *testing.T) {
	s := testExamScreen(5)
	if s.Title() != "Exam" {
		t.Errorf("Title = %q, want %q", s.Title(), "Exam")
	}
}

func TestExamScreen_FormRejectsBadConfig(t *testing.T) {
	s := testExamScreen(5)
	s.countInput.Model.SetValue("50")
	s.minutesInput.Model.SetValue("10")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)

	if es.ctrl.Phase() != exam.PhaseConfiguring {
		t.Error("oversized exam must not start")
	}
	if es.formErr == "" {
		t.Error("expected a form error message")
	}
	if !strings.Contains(es.View(80, 24), es.formErr) {
		t.Error("form error should be visible")
	}
}

func TestExamScreen_FormFocusCycles(t *testing.T) {
	s := testExamScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	es := scr.(*ExamScreen)
	if es.focused != fieldMinutes {
		t.Errorf("focused = %d, want minutes field", es.focused)
	}
	scr, _ = es.Update(specialKey(tea.KeyTab))
	es = scr.(*ExamScreen)
	if es.focused != fieldStart {
		t.Errorf("focused = %d, want start button", es.focused)
	}
	scr, _ = es.Update(specialKey(tea.KeyTab))
	es = scr.(*ExamScreen)
	if es.focused != fieldCount {
		t.Errorf("focused = %d, want count field", es.focused)
	}
}

func TestExamScreen_AnswerAndAdvance(t *testing.T) {
	s := startExam(t, testExamScreen(8), 3, 5)
	defer s.ctrl.Abandon()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	es := scr.(*ExamScreen)
	if es.ctrl.Answered() != 1 {
		t.Fatalf("answered = %d, want 1", es.ctrl.Answered())
	}

	scr, _ = es.Update(keyPress('n'))
	es = scr.(*ExamScreen)
	if es.ctrl.Index() != 1 {
		t.Errorf("index = %d, want 1", es.ctrl.Index())
	}
	if es.cursor != 0 {
		t.Error("option cursor should reset on navigation")
	}
}

func TestExamScreen_NextOnLastSubmits(t *testing.T) {
	s := startExam(t, testExamScreen(8), 2, 5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('n'))
	es := scr.(*ExamScreen)
	scr, _ = es.Update(keyPress('n'))
	es = scr.(*ExamScreen)

	if es.ctrl.Phase() != exam.PhaseFinished {
		t.Fatal("Next from the last question should submit")
	}
	v := es.View(80, 24)
	if !strings.Contains(v, "FAILED") {
		t.Errorf("unanswered exam should fail, got:\n%s", v)
	}
}

func TestExamScreen_EscConfirmThenKeepGoing(t *testing.T) {
	s := startExam(t, testExamScreen(8), 3, 5)
	defer s.ctrl.Abandon()

	if !s.HandlesEsc() {
		t.Fatal("running exam must consume esc")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	es := scr.(*ExamScreen)
	if !es.confirmQuit {
		t.Fatal("esc should open the abandon dialog")
	}
	if !strings.Contains(es.View(80, 24), "Abandon") {
		t.Error("dialog should be visible")
	}

	scr, _ = es.Update(keyPress('n'))
	es = scr.(*ExamScreen)
	if es.confirmQuit {
		t.Error("n should dismiss the dialog")
	}
	if es.ctrl.Phase() != exam.PhaseRunning {
		t.Error("dismissing must not end the exam")
	}
}

func TestExamScreen_EscConfirmThenAbandon(t *testing.T) {
	s := startExam(t, testExamScreen(8), 3, 5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	es := scr.(*ExamScreen)
	scr, _ = es.Update(keyPress('y'))
	es = scr.(*ExamScreen)

	if es.ctrl.Phase() != exam.PhaseConfiguring {
		t.Error("abandoning should return to the config form")
	}
	if es.HandlesEsc() {
		t.Error("esc should pop the screen again after abandoning")
	}
}

func TestExamScreen_ClockTickTimesOut(t *testing.T) {
	s := startExam(t, testExamScreen(8), 2, 1)

	var scr screen.Screen = s
	var es *ExamScreen
	for i := 0; i < 60; i++ {
		scr, _ = scr.Update(clockTickMsg{})
	}
	es = scr.(*ExamScreen)

	if es.ctrl.Phase() != exam.PhaseFinished {
		t.Fatal("exhausting the clock should force submission")
	}
	if es.ctrl.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", es.ctrl.Remaining())
	}
}

func TestExamScreen_ReviewScroll(t *testing.T) {
	s := startExam(t, testExamScreen(8), 4, 5)
	s.ctrl.Submit()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	es := scr.(*ExamScreen)
	if es.reviewOffset != 1 {
		t.Errorf("reviewOffset = %d, want 1", es.reviewOffset)
	}
	scr, _ = es.Update(specialKey(tea.KeyUp))
	es = scr.(*ExamScreen)
	if es.reviewOffset != 0 {
		t.Errorf("reviewOffset = %d, want 0", es.reviewOffset)
	}
}

func TestExamScreen_RevisitAfterFinishStartsFresh(t *testing.T) {
	s := startExam(t, testExamScreen(8), 2, 5)
	s.ctrl.Submit()
	ctrl := s.ctrl

	// Leaving and coming back reuses the shared controller; the stale
	// results must not survive into the next visit.
	s2 := New(ctrl, 5, 10)
	if ctrl.Phase() != exam.PhaseConfiguring {
		t.Fatalf("phase = %v on revisit, want configuring", ctrl.Phase())
	}
	if !strings.Contains(s2.View(80, 24), "Configure exam") {
		t.Error("revisit should show the config form")
	}

	// A second exam can start normally.
	s2 = startExam(t, s2, 2, 5)
	s2.ctrl.Abandon()
}

func TestExamScreen_KeyHints(t *testing.T) {
	s := testExamScreen(5)
	if len(s.KeyHints()) == 0 {
		t.Error("config form should advertise key hints")
	}
	s = startExam(t, s, 2, 5)
	defer s.ctrl.Abandon()
	if len(s.KeyHints()) == 0 {
		t.Error("running exam should advertise key hints")
	}
}
