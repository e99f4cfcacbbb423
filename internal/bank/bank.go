package bank

import (
	"sort"
	"strings"
)

// DefaultSubject is the subject label used when no bank has been imported.
const DefaultSubject = "General Subject"

// Question is a single imported question. ID is the durable identity used
// by the wrong-answer and bookmark sets; it is assigned at import time and
// never reassigned.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options,omitempty"`
}

// CorrectAnswer returns the trimmed answer text, which is the form used
// for all equality checks.
func (q Question) CorrectAnswer() string {
	return strings.TrimSpace(q.Answer)
}

// Repository holds the imported question bank and its subject label.
// Questions are immutable for the lifetime of a bank: the only mutations
// are wholesale Replace and Reset.
type Repository struct {
	questions []Question
	subject   string
}

// NewRepository creates a repository with the given questions and subject.
// An empty subject falls back to DefaultSubject.
func NewRepository(questions []Question, subject string) *Repository {
	r := &Repository{}
	r.Replace(questions, subject)
	return r
}

// Replace swaps the entire bank atomically. Callers that own progress
// state (score, wrong set, bookmarks) must clear it alongside this call;
// importing new material invalidates all prior progress.
func (r *Repository) Replace(questions []Question, subject string) {
	r.questions = make([]Question, len(questions))
	copy(r.questions, questions)
	if subject == "" {
		subject = DefaultSubject
	}
	r.subject = subject
}

// Reset empties the repository and restores the default subject.
func (r *Repository) Reset() {
	r.questions = nil
	r.subject = DefaultSubject
}

// Len returns the number of questions in the bank.
func (r *Repository) Len() int {
	return len(r.questions)
}

// Subject returns the subject label.
func (r *Repository) Subject() string {
	return r.subject
}

// Questions returns the bank in source order. The returned slice is
// shared; callers must not mutate it.
func (r *Repository) Questions() []Question {
	return r.questions
}

// At returns the question at repository position i.
func (r *Repository) At(i int) Question {
	return r.questions[i]
}

// ByID returns the question with the given id.
func (r *Repository) ByID(id int) (Question, bool) {
	for _, q := range r.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// PositionOf returns the repository position of the question with the
// given id, or -1 if absent.
func (r *Repository) PositionOf(id int) int {
	for i, q := range r.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// IDSet is a set of question ids, used for the wrong-answer review queue
// and the bookmark list.
type IDSet map[int]bool

// NewIDSet builds a set from a list of ids.
func NewIDSet(ids []int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Add inserts id into the set. Idempotent.
func (s IDSet) Add(id int) { s[id] = true }

// Remove deletes id from the set. No-op if absent.
func (s IDSet) Remove(id int) { delete(s, id) }

// Has reports membership.
func (s IDSet) Has(id int) bool { return s[id] }

// Toggle flips membership and reports the new state.
func (s IDSet) Toggle(id int) bool {
	if s[id] {
		delete(s, id)
		return false
	}
	s[id] = true
	return true
}

// IDs returns the members in ascending order, suitable for persistence.
func (s IDSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
