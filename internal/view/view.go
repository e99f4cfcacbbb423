// Package view derives the active ordered question list from the bank,
// the filter mode, and the shuffle state, and keeps the current index
// valid as those inputs change.
package view

import (
	"errors"
	"math/rand/v2"

	"github.com/studydrill/drill/internal/bank"
)

// ErrNotFound reports a jump target absent from the active filtered view.
var ErrNotFound = errors.New("question not in current view")

// FilterMode selects which subset of the bank forms the active view.
type FilterMode string

const (
	FilterAll       FilterMode = "ALL"
	FilterErrors    FilterMode = "ERRORS"
	FilterBookmarks FilterMode = "BOOKMARKS"
)

// State is the navigation state over the bank: filter mode, an optional
// frozen shuffle permutation, and the index into the active filtered
// list (not into the repository).
type State struct {
	Filter   FilterMode
	Shuffled bool
	Index    int

	// order is the frozen permutation of repository positions. It is
	// re-randomized only when shuffle is toggled on, never per render.
	order []int
}

// NewState returns a State at filter ALL, unshuffled, index 0.
func NewState() *State {
	return &State{Filter: FilterAll}
}

// SetFilter switches the filter mode. The index is reconciled against
// the next Active call.
func (s *State) SetFilter(m FilterMode) {
	s.Filter = m
}

// ToggleShuffle flips shuffle mode. Enabling freezes a fresh Fisher-Yates
// permutation of the n repository positions; disabling restores pure
// repository order. Either way the index resets to 0.
func (s *State) ToggleShuffle(n int, rng *rand.Rand) {
	if s.Shuffled {
		s.Shuffled = false
		s.order = nil
	} else {
		s.order = rng.Perm(n)
		s.Shuffled = true
	}
	s.Index = 0
}

// Invalidate drops the shuffle permutation and resets navigation. Called
// when the repository identity changes (import or reset).
func (s *State) Invalidate() {
	s.Filter = FilterAll
	s.Shuffled = false
	s.order = nil
	s.Index = 0
}

// Active computes the ordered filtered list: the bank (or its frozen
// permutation) narrowed to the wrong set or bookmark set when the
// corresponding filter is active.
func (s *State) Active(repo *bank.Repository, wrong, marks bank.IDSet) []bank.Question {
	base := repo.Questions()
	if s.Shuffled && len(s.order) == repo.Len() {
		shuffled := make([]bank.Question, 0, len(s.order))
		for _, pos := range s.order {
			shuffled = append(shuffled, repo.At(pos))
		}
		base = shuffled
	}

	switch s.Filter {
	case FilterErrors:
		return filterByID(base, wrong)
	case FilterBookmarks:
		return filterByID(base, marks)
	default:
		return base
	}
}

// Reconcile clamps the index into [0, n-1] for an active list of length
// n, and to 0 for an empty list. It must run after every mutation of the
// filter mode, wrong set, bookmark set, or shuffle state so the index
// never points past the end of a shrinking filtered list.
func (s *State) Reconcile(n int) {
	if n == 0 {
		s.Index = 0
		return
	}
	if s.Index >= n {
		s.Index = n - 1
	}
	if s.Index < 0 {
		s.Index = 0
	}
}

// JumpTo moves the index to the question with the given id within the
// active list. Navigation is unchanged on ErrNotFound.
func (s *State) JumpTo(active []bank.Question, id int) error {
	for i, q := range active {
		if q.ID == id {
			s.Index = i
			return nil
		}
	}
	return ErrNotFound
}

func filterByID(qs []bank.Question, ids bank.IDSet) []bank.Question {
	out := make([]bank.Question, 0, len(ids))
	for _, q := range qs {
		if ids.Has(q.ID) {
			out = append(out, q)
		}
	}
	return out
}
