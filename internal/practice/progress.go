package practice

import "github.com/studydrill/drill/internal/bank"

// Progress is the persisted practice state: score and attempt tallies
// plus the wrong-answer review queue and bookmark list. All fields are
// independently reconstructible, so writes carry no transactional
// guarantee.
type Progress struct {
	Score     int
	Attempts  int
	Wrong     bank.IDSet
	Bookmarks bank.IDSet
}

// NewProgress returns zeroed progress with initialized sets.
func NewProgress() Progress {
	return Progress{
		Wrong:     bank.NewIDSet(nil),
		Bookmarks: bank.NewIDSet(nil),
	}
}

// Reset zeroes the tallies and empties both sets in place.
func (p *Progress) Reset() {
	p.Score = 0
	p.Attempts = 0
	p.Wrong = bank.NewIDSet(nil)
	p.Bookmarks = bank.NewIDSet(nil)
}
