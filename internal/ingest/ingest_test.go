package ingest

import (
	"testing"

	"github.com/studydrill/drill/internal/bank"
)

func TestExtractAnswerLineFormat(t *testing.T) {
	text := `
1. What year did the empire fall?
Answer: 476 AD

2. Who crossed the Rubicon
   in January?
Answer: Julius Caesar
`
	qs := ExtractQuestions(text)
	if len(qs) != 2 {
		t.Fatalf("extracted %d questions, want 2", len(qs))
	}
	if qs[0].ID != 1 || qs[1].ID != 2 {
		t.Errorf("ids = %d, %d; want sequential from 1", qs[0].ID, qs[1].ID)
	}
	if qs[0].Answer != "476 AD" {
		t.Errorf("answer = %q", qs[0].Answer)
	}
	if qs[1].Question != "Who crossed the Rubicon in January?" {
		t.Errorf("multi-line question = %q", qs[1].Question)
	}
}

func TestExtractMarkedOptionFormat(t *testing.T) {
	text := `
1) Which river runs through Rome?
a) Po
X b) Tiber
c) Arno
d) Adige
`
	qs := ExtractQuestions(text)
	if len(qs) != 1 {
		t.Fatalf("extracted %d questions, want 1", len(qs))
	}
	q := qs[0]
	if q.Answer != "Tiber" {
		t.Errorf("answer = %q, want the marked option", q.Answer)
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %v, want all 4", q.Options)
	}
}

func TestExtractLetterAnswerResolvesToOptionText(t *testing.T) {
	text := `
1. Which general crossed the Alps with elephants?
a) Scipio
b) Hannibal
c) Fabius
Answer: b
`
	qs := ExtractQuestions(text)
	if len(qs) != 1 {
		t.Fatalf("extracted %d questions, want 1", len(qs))
	}
	q := qs[0]
	if q.Answer != "Hannibal" {
		t.Errorf("answer = %q, want the referenced option text", q.Answer)
	}
	if len(q.Options) != 3 {
		t.Fatalf("options = %v, want all 3", q.Options)
	}
	found := false
	for _, o := range q.Options {
		if o == q.Answer {
			found = true
		}
	}
	if !found {
		t.Error("answer must be a member of the kept options")
	}
}

func TestExtractDropsOptionsMissingTheAnswer(t *testing.T) {
	text := `
1. Which city did Constantine make his capital?
a) Rome
b) Ravenna
Answer: Byzantium
`
	qs := ExtractQuestions(text)
	if len(qs) != 1 {
		t.Fatalf("extracted %d questions, want 1", len(qs))
	}
	q := qs[0]
	if q.Answer != "Byzantium" {
		t.Errorf("answer = %q", q.Answer)
	}
	if len(q.Options) != 0 {
		t.Errorf("options = %v, want none when the answer is not among them", q.Options)
	}
}

func TestBlocksWithoutAnswersAreDropped(t *testing.T) {
	text := `
1. A question with no answer at all

2. A complete one?
Answer: Yes

Some footer noise
`
	qs := ExtractQuestions(text)
	if len(qs) != 1 {
		t.Fatalf("extracted %d questions, want 1", len(qs))
	}
	if qs[0].ID != 1 {
		t.Errorf("surviving question id = %d, want renumbered to 1", qs[0].ID)
	}
	if qs[0].Question != "A complete one?" {
		t.Errorf("question = %q", qs[0].Question)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	if qs := ExtractQuestions(""); len(qs) != 0 {
		t.Errorf("extracted %d from empty text", len(qs))
	}
	if qs := ExtractQuestions("no numbered lines here\njust prose"); len(qs) != 0 {
		t.Errorf("extracted %d from prose", len(qs))
	}
}

func TestSubjectFromFilename(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/tmp/roman_history-2.pdf", "Roman History 2"},
		{"biology.txt", "Biology"},
		{"study guide.pdf", "Study Guide"},
		{"---.pdf", bank.DefaultSubject},
	}
	for _, tc := range cases {
		if got := SubjectFromFilename(tc.path); got != tc.want {
			t.Errorf("SubjectFromFilename(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
