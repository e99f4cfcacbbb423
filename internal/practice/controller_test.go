package practice

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/distractor"
	"github.com/studydrill/drill/internal/view"
)

type recordingSink struct {
	progressSaves int
	answers       []int
}

func (s *recordingSink) SaveProgress(_ context.Context, _ Progress) error {
	s.progressSaves++
	return nil
}

func (s *recordingSink) RecordAnswer(_ context.Context, _ string, questionID int, _ bool) error {
	s.answers = append(s.answers, questionID)
	return nil
}

func makeBank(n int) *bank.Repository {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			ID:       i + 1,
			Question: fmt.Sprintf("Question number %d?", i+1),
			Answer:   fmt.Sprintf("Unique answer text %d", i+1),
		}
	}
	return bank.NewRepository(qs, "Test Subject")
}

func newController(repo *bank.Repository, sink Sink) *Controller {
	rng := rand.New(rand.NewPCG(1, 2))
	gen := distractor.NewWithRand(rand.New(rand.NewPCG(3, 4)))
	return NewController(repo, NewProgress(), gen, rng, sink)
}

func TestSelectAnswerScoring(t *testing.T) {
	sink := &recordingSink{}
	c := newController(makeBank(10), sink)

	q, ok := c.Current()
	if !ok {
		t.Fatal("no current question")
	}

	if err := c.SelectAnswer(q.CorrectAnswer()); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	p := c.Progress()
	if p.Score != 1 || p.Attempts != 1 {
		t.Errorf("score/attempts = %d/%d, want 1/1", p.Score, p.Attempts)
	}
	if p.Wrong.Has(q.ID) {
		t.Error("correct answer must not enter the wrong set")
	}
	if c.Phase() != PhaseAnswered {
		t.Error("phase should be ANSWERED")
	}

	// Answering again without navigating is illegal.
	if err := c.SelectAnswer(q.CorrectAnswer()); err != ErrAlreadyAnswered {
		t.Errorf("second SelectAnswer err = %v, want ErrAlreadyAnswered", err)
	}

	if sink.progressSaves == 0 || len(sink.answers) != 1 {
		t.Errorf("sink saw %d saves / %d answers", sink.progressSaves, len(sink.answers))
	}
}

func TestWrongAnswerJoinsWrongSetIdempotently(t *testing.T) {
	c := newController(makeBank(10), nil)
	q, _ := c.Current()

	c.SelectAnswer("definitely wrong")
	c.Retry()
	c.SelectAnswer("still wrong")

	p := c.Progress()
	if !p.Wrong.Has(q.ID) {
		t.Fatal("wrong set missing question")
	}
	if got := len(p.Wrong.IDs()); got != 1 {
		t.Errorf("wrong set size = %d, want 1 (no duplicates)", got)
	}
	if p.Attempts != 2 {
		t.Errorf("attempts = %d, want 2 (retry does not revert)", p.Attempts)
	}
	if p.Score != 0 {
		t.Errorf("score = %d, want 0", p.Score)
	}
}

func TestRetryClearsSelectionAndHint(t *testing.T) {
	c := newController(makeBank(10), nil)

	c.Hint()
	if len(c.Hidden()) != 2 {
		t.Fatalf("hint hid %d options, want 2", len(c.Hidden()))
	}
	c.SelectAnswer("wrong")
	c.Retry()

	if c.Selected() != "" || c.Phase() != PhaseUnanswered {
		t.Error("retry must return to UNANSWERED with no selection")
	}
	if len(c.Hidden()) != 0 {
		t.Error("retry must clear the hint")
	}
}

func TestHintIdempotentAndNeverHidesCorrect(t *testing.T) {
	c := newController(makeBank(10), nil)
	q, _ := c.Current()

	c.Hint()
	first := append([]string(nil), c.Hidden()...)
	c.Hint()
	second := c.Hidden()

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("hidden counts = %d/%d, want 2/2", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Error("repeat Hint changed the hidden options")
		}
	}
	for _, h := range first {
		if h == q.CorrectAnswer() {
			t.Error("hint hid the correct option")
		}
	}
}

func TestHintIllegalAfterAnswer(t *testing.T) {
	c := newController(makeBank(10), nil)
	c.SelectAnswer("wrong")
	c.Hint()
	if len(c.Hidden()) != 0 {
		t.Error("hint must be a no-op in ANSWERED")
	}
}

func TestNextWrapsInAllMode(t *testing.T) {
	c := newController(makeBank(3), nil)

	for i := 0; i < 3; i++ {
		c.Next()
	}
	if c.View().Index != 0 {
		t.Errorf("index = %d after full loop, want 0", c.View().Index)
	}
	q, ok := c.Current()
	if !ok || q.ID != 1 {
		t.Errorf("current = %+v, want question 1", q)
	}
}

func TestNavigationRegeneratesOptions(t *testing.T) {
	c := newController(makeBank(10), nil)
	q1, _ := c.Current()

	c.Hint()
	c.Next()

	q2, _ := c.Current()
	if q1.ID == q2.ID {
		t.Fatal("Next did not change the question")
	}
	if len(c.Hidden()) != 0 {
		t.Error("hint must clear when question identity changes")
	}
	found := false
	for _, o := range c.Options() {
		if o == q2.CorrectAnswer() {
			found = true
		}
	}
	if !found {
		t.Error("regenerated options missing new correct answer")
	}
}

func TestErrorsFilterSelfHealing(t *testing.T) {
	c := newController(makeBank(5), nil)

	// Miss questions 1 and 2.
	c.SelectAnswer("wrong")
	c.Next()
	c.SelectAnswer("wrong")
	c.SetFilter(view.FilterErrors)

	if got := len(c.Active()); got != 2 {
		t.Fatalf("errors view size = %d, want 2", got)
	}

	// The displayed question is the one just missed, and the filter
	// switch keeps its answered state. It has to be retried before a
	// new answer is accepted.
	q, _ := c.Current()
	if err := c.SelectAnswer(q.CorrectAnswer()); err != ErrAlreadyAnswered {
		t.Fatalf("SelectAnswer on answered question err = %v, want ErrAlreadyAnswered", err)
	}

	// Retry and answer correctly: its id leaves the wrong set.
	c.Retry()
	c.SelectAnswer(q.CorrectAnswer())
	if c.Progress().Wrong.Has(q.ID) {
		t.Error("correct answer under ERRORS must heal the wrong set")
	}

	c.Next()
	if got := len(c.Active()); got != 1 {
		t.Fatalf("errors view size = %d, want 1", got)
	}
	idx := c.View().Index
	if idx < 0 || idx > 0 {
		t.Errorf("index = %d, want 0 within shrunken view", idx)
	}

	// Clear the last error: the view empties and reports no questions.
	q, _ = c.Current()
	c.SelectAnswer(q.CorrectAnswer())
	c.Next()
	if _, ok := c.Current(); ok {
		t.Error("view should be empty after the last error heals")
	}
	if c.View().Index != 0 {
		t.Errorf("index = %d on empty view, want 0", c.View().Index)
	}
}

func TestErrorsFilterLoopsOnWrongAnswers(t *testing.T) {
	c := newController(makeBank(4), nil)
	c.SelectAnswer("wrong")
	c.Next()
	c.SelectAnswer("wrong")
	c.SetFilter(view.FilterErrors)

	// Index was 1 when the filter switched; it is clamped, not reset.
	if c.View().Index != 1 {
		t.Fatalf("index = %d after filter switch, want 1", c.View().Index)
	}

	// Keep missing: the reviewer cycles through unresolved errors.
	c.SelectAnswer("wrong again")
	c.Next()
	if c.View().Index != 0 {
		t.Errorf("index = %d, want 0", c.View().Index)
	}
	c.SelectAnswer("wrong again")
	c.Next()
	if c.View().Index != 1 {
		t.Errorf("index = %d, want 1", c.View().Index)
	}
	c.SelectAnswer("wrong again")
	c.Next()
	if c.View().Index != 0 {
		t.Errorf("index = %d after wrap, want 0", c.View().Index)
	}
}

func TestPrevWrapsOnlyInErrors(t *testing.T) {
	c := newController(makeBank(5), nil)

	c.Prev()
	if c.View().Index != 0 {
		t.Errorf("Prev at 0 under ALL moved to %d", c.View().Index)
	}

	c.SelectAnswer("wrong")
	c.Next()
	c.SelectAnswer("wrong")
	c.SetFilter(view.FilterErrors)
	c.Prev() // 1 -> 0
	if c.View().Index != 0 {
		t.Fatalf("index = %d, want 0", c.View().Index)
	}
	c.Prev() // wraps to the end
	if c.View().Index != 1 {
		t.Errorf("Prev at 0 under ERRORS = %d, want wrap to 1", c.View().Index)
	}
}

func TestToggleBookmark(t *testing.T) {
	c := newController(makeBank(5), nil)
	q, _ := c.Current()

	c.ToggleBookmark()
	if !c.Progress().Bookmarks.Has(q.ID) {
		t.Fatal("bookmark not set")
	}
	c.ToggleBookmark()
	if c.Progress().Bookmarks.Has(q.ID) {
		t.Fatal("bookmark not cleared")
	}
	if p := c.Progress(); p.Score != 0 || p.Attempts != 0 {
		t.Error("bookmarking must not touch score or attempts")
	}
}

func TestJumpToRespectsFilter(t *testing.T) {
	c := newController(makeBank(5), nil)

	if err := c.JumpTo(4); err != nil {
		t.Fatalf("JumpTo(4): %v", err)
	}
	if q, _ := c.Current(); q.ID != 4 {
		t.Errorf("current id = %d, want 4", q.ID)
	}

	c.SetFilter(view.FilterBookmarks)
	if err := c.JumpTo(2); err != view.ErrNotFound {
		t.Errorf("JumpTo(2) err = %v, want ErrNotFound", err)
	}
}

func TestSearchFallsBackToAll(t *testing.T) {
	c := newController(makeBank(5), nil)
	c.SetFilter(view.FilterErrors)

	hits := c.Search("number 3", 5)
	if len(hits) != 1 || hits[0].ID != 3 {
		t.Fatalf("search hits = %v", hits)
	}
	if err := c.SelectSearchResult(3); err != nil {
		t.Fatalf("SelectSearchResult: %v", err)
	}
	if c.View().Filter != view.FilterAll {
		t.Error("filter should fall back to ALL for an excluded target")
	}
	if q, _ := c.Current(); q.ID != 3 {
		t.Errorf("current id = %d, want 3", q.ID)
	}
}

func TestReplaceBankClearsProgress(t *testing.T) {
	c := newController(makeBank(5), nil)
	c.SelectAnswer("wrong")
	c.ToggleBookmark()
	c.SetFilter(view.FilterErrors)

	c.ReplaceBank([]bank.Question{
		{ID: 1, Question: "fresh?", Answer: "Fresh answer"},
	}, "New Subject")

	p := c.Progress()
	if p.Score != 0 || p.Attempts != 0 || len(p.Wrong.IDs()) != 0 || len(p.Bookmarks.IDs()) != 0 {
		t.Errorf("progress not cleared: %+v", p)
	}
	if c.View().Filter != view.FilterAll || c.View().Index != 0 {
		t.Error("view not reset")
	}
	if q, ok := c.Current(); !ok || q.Question != "fresh?" {
		t.Errorf("current = %+v", q)
	}
}

func TestResetEmptiesEverything(t *testing.T) {
	repo := makeBank(5)
	c := newController(repo, nil)
	c.SelectAnswer("wrong")
	c.ToggleBookmark()

	c.Reset()

	if repo.Len() != 0 {
		t.Errorf("bank size = %d, want 0", repo.Len())
	}
	p := c.Progress()
	if p.Score != 0 || p.Attempts != 0 || len(p.Wrong.IDs()) != 0 || len(p.Bookmarks.IDs()) != 0 {
		t.Errorf("progress not cleared: %+v", p)
	}
	if c.View().Filter != view.FilterAll {
		t.Error("filter not reset to ALL")
	}
	if _, ok := c.Current(); ok {
		t.Error("no current question expected on empty bank")
	}
}
