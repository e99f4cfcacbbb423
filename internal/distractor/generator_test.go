package distractor

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/studydrill/drill/internal/bank"
)

func testGen(seed uint64) *Generator {
	return NewWithRand(rand.New(rand.NewPCG(seed, 0)))
}

func makeBank(n int) *bank.Repository {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			ID:       i + 1,
			Question: fmt.Sprintf("Describe structure %c?", 'A'+i%26),
			Answer:   fmt.Sprintf("Structure %c is load-bearing variant %d", 'A'+i%26, i),
		}
	}
	return bank.NewRepository(qs, "Anatomy")
}

func contains(opts []string, want string) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

func TestExplicitOptionsReturnedAsSet(t *testing.T) {
	repo := makeBank(10)
	q := bank.Question{
		ID:       3,
		Question: "Pick one",
		Answer:   "beta",
		Options:  []string{"alpha", "beta", "gamma", "delta"},
	}

	opts := testGen(1).Options(q, repo)

	if len(opts) != 4 {
		t.Fatalf("got %d options, want 4", len(opts))
	}
	for _, want := range q.Options {
		if !contains(opts, want) {
			t.Errorf("missing explicit option %q", want)
		}
	}
	if !contains(opts, "beta") {
		t.Error("correct answer missing from explicit option set")
	}
}

func TestGeneratesFourDistinctOptions(t *testing.T) {
	repo := makeBank(50)
	q := repo.At(25)

	for seed := uint64(1); seed <= 5; seed++ {
		opts := testGen(seed).Options(q, repo)

		if len(opts) != 4 {
			t.Fatalf("seed %d: got %d options, want 4", seed, len(opts))
		}
		seen := make(map[string]bool)
		correctCount := 0
		for _, o := range opts {
			if seen[o] {
				t.Errorf("seed %d: duplicate option %q", seed, o)
			}
			seen[o] = true
			if o == q.CorrectAnswer() {
				correctCount++
			}
		}
		if correctCount != 1 {
			t.Errorf("seed %d: correct answer appears %d times, want 1", seed, correctCount)
		}
	}
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	repo := makeBank(50)
	q := repo.At(10)

	a := testGen(42).Options(q, repo)
	b := testGen(42).Options(q, repo)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("option %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestQualityFilters(t *testing.T) {
	// The neighborhood supplies exactly three valid distractors, so the
	// top-up tier (which applies only the correctness/length/duplicate
	// exclusions) never runs and the junk answers must not appear.
	qs := []bank.Question{
		{ID: 1, Question: "q1", Answer: "The correct one"},
		{ID: 2, Question: "q2", Answer: "The correct one"}, // equals correct
		{ID: 3, Question: "q3", Answer: "ab"},              // too short
		{ID: 4, Question: "q4", Answer: "1234"},            // pure integer
		{ID: 5, Question: "q5", Answer: "3,14"},            // decimal
		{ID: 6, Question: "q6", Answer: "See Chapter four"},
		{ID: 7, Question: "q7", Answer: "page 12 footer"},
		{ID: 8, Question: "q8", Answer: "First valid distractor"},
		{ID: 9, Question: "q9", Answer: "Second valid distractor"},
		{ID: 10, Question: "q10", Answer: "Third valid distractor"},
	}
	repo := bank.NewRepository(qs, "Mixed")

	opts := testGen(7).Options(repo.At(0), repo)

	if !contains(opts, "The correct one") {
		t.Fatal("correct answer missing")
	}
	if len(opts) != 4 {
		t.Fatalf("got %d options, want 4", len(opts))
	}
	for _, rejected := range []string{"ab", "1234", "3,14", "See Chapter four", "page 12 footer"} {
		if contains(opts, rejected) {
			t.Errorf("filtered answer %q leaked into options", rejected)
		}
	}
}

func TestTopUpBeyondWindow(t *testing.T) {
	// 100 questions where the neighborhood of the first question holds
	// only duplicate answers; valid distractors live past the window.
	qs := make([]bank.Question, 100)
	for i := range qs {
		ans := "Repeated neighborhood answer"
		if i >= 60 {
			ans = fmt.Sprintf("Distant unique answer %d", i)
		}
		qs[i] = bank.Question{ID: i + 1, Question: fmt.Sprintf("q%d", i+1), Answer: ans}
	}
	qs[0].Answer = "The target answer"
	repo := bank.NewRepository(qs, "Spread")

	opts := testGen(3).Options(repo.At(0), repo)

	if len(opts) != 4 {
		t.Fatalf("got %d options, want 4 after top-up", len(opts))
	}
	distant := 0
	for _, o := range opts {
		if len(o) > 7 && o[:7] == "Distant" {
			distant++
		}
	}
	if distant < 2 {
		t.Errorf("expected top-up to draw from beyond the window, got %d distant options", distant)
	}
}

func TestUnknownQuestionFallsBackGlobally(t *testing.T) {
	repo := makeBank(10)
	stray := bank.Question{ID: 999, Question: "Not in bank", Answer: "Stray answer"}

	opts := testGen(9).Options(stray, repo)

	if !contains(opts, "Stray answer") {
		t.Fatal("correct answer missing from fallback options")
	}
	if len(opts) != 4 {
		t.Errorf("got %d options, want 4", len(opts))
	}
}

func TestTinyBankReturnsFewerOptions(t *testing.T) {
	repo := bank.NewRepository([]bank.Question{
		{ID: 1, Question: "only", Answer: "The lonely answer"},
	}, "Tiny")

	opts := testGen(5).Options(repo.At(0), repo)

	if len(opts) != 1 || opts[0] != "The lonely answer" {
		t.Errorf("opts = %v, want just the correct answer", opts)
	}
}
