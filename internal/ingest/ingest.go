// Package ingest turns study documents into validated question records.
// It understands numbered question blocks with either an explicit
// "Answer:" line or lettered options where the correct one carries an
// "X" marker. IDs are reassigned sequentially; the engine relies on
// that.
package ingest

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/studydrill/drill/internal/bank"
)

var (
	questionPattern = regexp.MustCompile(`^\s*\d+\s*[.)]\s+(.+)$`)
	answerPattern   = regexp.MustCompile(`^\s*(?:Answer|A)\s*[:.]\s*(.+)$`)
	optionPattern   = regexp.MustCompile(`^\s*([a-fA-F])\)\s*(.+)$`)
	markedPattern   = regexp.MustCompile(`^\s*[Xx*]\s+([a-fA-F])\)\s*(.+)$`)
)

// ExtractQuestions parses document text into question records. Blocks
// missing a question or an answer are dropped; zero extracted questions
// is not an error here, the caller treats it as an empty import.
func ExtractQuestions(text string) []bank.Question {
	var out []bank.Question
	var cur *block

	flush := func() {
		if cur == nil {
			return
		}
		if q, ok := cur.build(len(out) + 1); ok {
			out = append(out, q)
		}
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")

		if m := questionPattern.FindStringSubmatch(line); m != nil {
			flush()
			cur = &block{question: strings.TrimSpace(m[1])}
			continue
		}
		if cur == nil {
			continue
		}

		if m := markedPattern.FindStringSubmatch(line); m != nil {
			opt := strings.TrimSpace(m[2])
			cur.options = append(cur.options, opt)
			cur.answer = opt
			continue
		}
		if m := optionPattern.FindStringSubmatch(line); m != nil {
			cur.options = append(cur.options, strings.TrimSpace(m[2]))
			continue
		}
		if m := answerPattern.FindStringSubmatch(line); m != nil {
			cur.answer = strings.TrimSpace(m[1])
			continue
		}

		// Continuation of the question text, but only before any
		// option or answer appeared.
		if trimmed := strings.TrimSpace(line); trimmed != "" && len(cur.options) == 0 && cur.answer == "" {
			cur.question += " " + trimmed
		}
	}
	flush()

	return out
}

type block struct {
	question string
	answer   string
	options  []string
}

func (b *block) build(id int) (bank.Question, bool) {
	q := strings.TrimSpace(b.question)
	a := strings.TrimSpace(b.answer)
	if q == "" || a == "" {
		return bank.Question{}, false
	}

	// "Answer: b" style answers refer to an option by letter; resolve
	// them to the option text.
	if len(b.options) > 0 && len(a) == 1 {
		c := a[0]
		if c >= 'A' && c <= 'F' {
			c += 'a' - 'A'
		}
		if i := int(c) - 'a'; i >= 0 && i < len(b.options) {
			a = b.options[i]
		}
	}

	out := bank.Question{ID: id, Question: q, Answer: a}
	// Options only hold as a set the answer belongs to. When the answer
	// isn't among them, drop them and let distractors be generated.
	if len(b.options) >= 2 && contains(b.options, a) {
		out.Options = b.options
	}
	return out, true
}

func contains(opts []string, s string) bool {
	for _, o := range opts {
		if o == s {
			return true
		}
	}
	return false
}

// FromFile extracts questions from a document on disk. PDFs go through
// pdftotext; anything else is read as plain text.
func FromFile(path string) ([]bank.Question, error) {
	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		out, err := exec.Command("pdftotext", path, "-").Output()
		if err != nil {
			return nil, fmt.Errorf("pdftotext %s: %w", path, err)
		}
		text = string(out)
	} else {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		text = string(b)
	}
	return ExtractQuestions(text), nil
}

// SubjectFromFilename derives a subject label from the document name:
// "roman_history-2.pdf" becomes "Roman History 2". An unusable name
// falls back to the default subject.
func SubjectFromFilename(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return bank.DefaultSubject
	}

	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
