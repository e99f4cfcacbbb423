package store

import (
	"context"
	"testing"

	"github.com/studydrill/drill/internal/bank"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestBankDefaultsWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	state := s.StateRepo()
	ctx := context.Background()

	b, err := state.LoadBank(ctx)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if b.Subject != bank.DefaultSubject {
		t.Errorf("subject = %q, want default", b.Subject)
	}
	if len(b.Questions) != 0 {
		t.Errorf("questions = %d, want 0", len(b.Questions))
	}

	p, err := state.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if p.Score != 0 || p.Attempts != 0 || len(p.Wrong) != 0 || len(p.Bookmarks) != 0 {
		t.Errorf("progress = %+v, want zeroes", p)
	}
}

func TestBankRoundTrip(t *testing.T) {
	s := openTestStore(t)
	state := s.StateRepo()
	ctx := context.Background()

	in := BankState{
		Subject: "History 101",
		Questions: []Question{
			{ID: 1, Question: "When?", Answer: "Then"},
			{ID: 2, Question: "Where?", Answer: "There", Options: []string{"Here", "There"}},
		},
	}
	if err := state.SaveBank(ctx, in); err != nil {
		t.Fatalf("SaveBank: %v", err)
	}

	out, err := state.LoadBank(ctx)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if out.Subject != "History 101" || len(out.Questions) != 2 {
		t.Fatalf("loaded %+v", out)
	}
	if out.Questions[1].Options[0] != "Here" {
		t.Errorf("explicit options lost in round trip: %+v", out.Questions[1])
	}

	// Saving again must overwrite the same key, not append.
	in.Subject = "History 102"
	if err := state.SaveBank(ctx, in); err != nil {
		t.Fatalf("second SaveBank: %v", err)
	}
	out, err = state.LoadBank(ctx)
	if err != nil {
		t.Fatalf("second LoadBank: %v", err)
	}
	if out.Subject != "History 102" {
		t.Errorf("subject = %q after overwrite, want History 102", out.Subject)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	state := s.StateRepo()
	ctx := context.Background()

	in := ProgressState{Score: 7, Attempts: 12, Wrong: []int{2, 5}, Bookmarks: []int{9}}
	if err := state.SaveProgress(ctx, in); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	out, err := state.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if out.Score != 7 || out.Attempts != 12 {
		t.Errorf("tallies = %d/%d, want 7/12", out.Score, out.Attempts)
	}
	if len(out.Wrong) != 2 || len(out.Bookmarks) != 1 {
		t.Errorf("sets = %v / %v", out.Wrong, out.Bookmarks)
	}
}

func TestAnswerEventsAndTotals(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i, correct := range []bool{true, false, true} {
		err := events.AppendAnswer(ctx, AnswerEventData{
			SessionID:  "session-a",
			QuestionID: i + 1,
			Correct:    correct,
		})
		if err != nil {
			t.Fatalf("AppendAnswer: %v", err)
		}
	}

	total, correct, err := events.AnswerTotals(ctx)
	if err != nil {
		t.Fatalf("AnswerTotals: %v", err)
	}
	if total != 3 || correct != 2 {
		t.Errorf("totals = %d/%d, want 3/2", total, correct)
	}
}

func TestExamHistoryNewestFirst(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := events.AppendExam(ctx, ExamEventData{
			SessionID:    "exam",
			CorrectCount: i,
			Total:        5,
			Threshold:    3,
			Passed:       i >= 3,
			DurationSecs: 30,
		})
		if err != nil {
			t.Fatalf("AppendExam: %v", err)
		}
	}

	hist, err := events.ExamHistory(ctx, 2)
	if err != nil {
		t.Fatalf("ExamHistory: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	if hist[0].CorrectCount != 2 || hist[1].CorrectCount != 1 {
		t.Errorf("history order = %d, %d; want newest first", hist[0].CorrectCount, hist[1].CorrectCount)
	}
}
