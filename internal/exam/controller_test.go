package exam

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/distractor"
)

type recordingSink struct {
	results []Result
}

func (s *recordingSink) RecordExam(_ context.Context, _ string, r Result, _ int) error {
	s.results = append(s.results, r)
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

func newExam(repo *bank.Repository, sink Sink) *Controller {
	rng := rand.New(rand.NewPCG(7, 11))
	gen := distractor.NewWithRand(rand.New(rand.NewPCG(13, 17)))
	c := NewController(repo, gen, rng, sink)
	c.SetTickInterval(time.Millisecond)
	return c
}

func TestStartValidation(t *testing.T) {
	c := newExam(makeBank(10), nil)

	cases := []struct {
		count, minutes int
	}{
		{0, 1},
		{11, 1},
		{-1, 1},
		{5, 0},
		{5, -3},
	}
	for _, tc := range cases {
		if err := c.Start(tc.count, tc.minutes); err != ErrInvalidConfig {
			t.Errorf("Start(%d, %d) err = %v, want ErrInvalidConfig", tc.count, tc.minutes, err)
		}
		if c.Phase() != PhaseConfiguring {
			t.Errorf("Start(%d, %d) changed phase to %v", tc.count, tc.minutes, c.Phase())
		}
	}

	if err := c.Start(10, 1); err != nil {
		t.Errorf("Start(10, 1) at the full bank size: %v", err)
	}
	c.Abandon()
}

func TestStartSamplesDistinctQuestions(t *testing.T) {
	c := newExam(makeBank(10), nil)
	if err := c.Start(5, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer c.Abandon()

	qs := c.Questions()
	if len(qs) != 5 {
		t.Fatalf("sampled %d questions, want 5", len(qs))
	}
	seen := make(map[int]bool)
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("question %d sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
	if c.Remaining() != 60 {
		t.Errorf("remaining = %d, want 60", c.Remaining())
	}
	if c.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want RUNNING", c.Phase())
	}
}

func TestPassAtThreeOfFive(t *testing.T) {
	sink := &recordingSink{}
	c := newExam(makeBank(10), sink)
	if err := c.Start(5, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Three right, two wrong, in order.
	for i := 0; i < 5; i++ {
		q, ok := c.Current()
		if !ok {
			t.Fatalf("no current question at %d", i)
		}
		if i < 3 {
			c.SelectAnswer(q.CorrectAnswer())
		} else {
			c.SelectAnswer("not even close")
		}
		c.Next() // from the last question this submits
	}

	if c.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want FINISHED", c.Phase())
	}
	r := c.Result()
	if r.Correct != 3 || r.Total != 5 || r.Threshold != 3 {
		t.Errorf("result = %+v, want 3/5 threshold 3", r)
	}
	if !r.Passed {
		t.Error("3 of 5 meets the 60%% threshold and must pass")
	}
	if len(sink.results) != 1 || sink.results[0] != r {
		t.Errorf("sink recorded %v", sink.results)
	}
	if c.Countdown() != nil {
		t.Error("countdown must be released on submit")
	}
}

func TestFailBelowThreshold(t *testing.T) {
	c := newExam(makeBank(10), nil)
	if err := c.Start(5, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q, _ := c.Current()
	c.SelectAnswer(q.CorrectAnswer())
	c.Submit()

	r := c.Result()
	if r.Correct != 1 || r.Passed {
		t.Errorf("result = %+v, want 1 correct and failed", r)
	}
}

func TestAnswersAreOverwritable(t *testing.T) {
	c := newExam(makeBank(10), nil)
	if err := c.Start(3, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q, _ := c.Current()

	c.SelectAnswer("first guess")
	c.SelectAnswer(q.CorrectAnswer())
	if c.Answered() != 1 {
		t.Errorf("answered = %d, want 1 (overwrite, not append)", c.Answered())
	}

	// Moving away and back preloads the recorded answer.
	c.Next()
	c.Prev()
	if c.Selected() != q.CorrectAnswer() {
		t.Errorf("selected = %q after revisit, want recorded answer", c.Selected())
	}

	c.Submit()
	if got := c.Result().Correct; got != 1 {
		t.Errorf("correct = %d, want 1 (final overwrite counts)", got)
	}
}

func TestPrevStopsAtFirstQuestion(t *testing.T) {
	c := newExam(makeBank(10), nil)
	if err := c.Start(3, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer c.Abandon()

	c.Prev()
	if c.Index() != 0 {
		t.Errorf("Prev on first question moved index to %d", c.Index())
	}
	c.Next()
	c.Prev()
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
}

func TestTimeoutForcesFinish(t *testing.T) {
	c := newExam(makeBank(10), nil)
	if err := c.Start(5, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q, _ := c.Current()
	c.SelectAnswer(q.CorrectAnswer())

	for i := 0; i < 60; i++ {
		c.Tick()
	}

	if c.Phase() != PhaseFinished {
		t.Fatalf("phase = %v after timeout, want FINISHED", c.Phase())
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", c.Remaining())
	}
	if got := c.Result().Correct; got != 1 {
		t.Errorf("correct = %d, want the one recorded answer", got)
	}
	// Ticks after the deadline are inert.
	c.Tick()
	if c.Phase() != PhaseFinished || c.Remaining() != 0 {
		t.Error("post-finish tick mutated state")
	}
}

func TestCountdownStopIdempotent(t *testing.T) {
	cd := NewCountdown(time.Millisecond)
	cd.Stop()
	cd.Stop() // must not panic

	select {
	case <-cd.Done():
	default:
		t.Error("Done not closed after Stop")
	}
}

func TestAbandonReleasesEverything(t *testing.T) {
	c := newExam(makeBank(10), nil)
	if err := c.Start(5, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cd := c.Countdown()
	c.Abandon()

	if c.Phase() != PhaseConfiguring {
		t.Errorf("phase = %v, want CONFIGURING", c.Phase())
	}
	select {
	case <-cd.Done():
	default:
		t.Error("countdown still live after Abandon")
	}
	if len(c.Questions()) != 0 || c.Answered() != 0 {
		t.Error("abandoned exam retained state")
	}
}

func TestReviewSheet(t *testing.T) {
	c := newExam(makeBank(10), nil)
	if err := c.Start(3, 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q, _ := c.Current()
	c.SelectAnswer(q.CorrectAnswer())
	c.Next()
	c.SelectAnswer("wrong")
	c.Submit()

	sheet := c.ReviewSheet()
	if len(sheet) != 3 {
		t.Fatalf("sheet length = %d, want 3", len(sheet))
	}
	if !sheet[0].Correct || sheet[1].Correct || sheet[2].Correct {
		t.Errorf("sheet correctness = %v %v %v, want true false false",
			sheet[0].Correct, sheet[1].Correct, sheet[2].Correct)
	}
	if sheet[2].Given != "" {
		t.Errorf("unanswered question carries answer %q", sheet[2].Given)
	}
}

func TestThresholdRoundsUp(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{1, 1}, {2, 2}, {3, 2}, {4, 3}, {5, 3}, {7, 5}, {10, 6},
	}
	for _, tc := range cases {
		if got := (tc.n*3 + 4) / 5; got != tc.want {
			t.Errorf("threshold(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}
