// Package practice drives the untimed study loop: answer submission,
// scoring, retry, hints, bookmarks, and navigation with error-review
// loop semantics.
package practice

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/distractor"
	"github.com/studydrill/drill/internal/view"
)

// ErrAlreadyAnswered reports a SelectAnswer call outside the UNANSWERED
// state. The caller must Retry or navigate first.
var ErrAlreadyAnswered = errors.New("current question already answered")

// Phase is the per-question state of the practice loop.
type Phase int

const (
	PhaseUnanswered Phase = iota
	PhaseAnswered
)

// Sink receives fire-and-forget persistence writes. Failures are
// ignored by the controller; every persisted field can be rebuilt from
// session state.
type Sink interface {
	SaveProgress(ctx context.Context, p Progress) error
	RecordAnswer(ctx context.Context, sessionID string, questionID int, correct bool) error
}

// Controller is the practice state machine. It owns the progress record
// and the view state; the repository is shared with the rest of the app.
type Controller struct {
	repo *bank.Repository
	view *view.State
	gen  *distractor.Generator
	rng  *rand.Rand
	sink Sink

	progress  Progress
	sessionID string

	current    bank.Question
	hasCurrent bool
	options    []string
	hidden     []string
	selected   string
	phase      Phase
}

// NewController creates a controller over the given repository and
// restored progress. sink may be nil.
func NewController(repo *bank.Repository, progress Progress, gen *distractor.Generator, rng *rand.Rand, sink Sink) *Controller {
	if progress.Wrong == nil {
		progress.Wrong = bank.NewIDSet(nil)
	}
	if progress.Bookmarks == nil {
		progress.Bookmarks = bank.NewIDSet(nil)
	}
	c := &Controller{
		repo:      repo,
		view:      view.NewState(),
		gen:       gen,
		rng:       rng,
		sink:      sink,
		progress:  progress,
		sessionID: uuid.New().String(),
	}
	c.sync()
	return c
}

// Active returns the current filtered question list.
func (c *Controller) Active() []bank.Question {
	return c.view.Active(c.repo, c.progress.Wrong, c.progress.Bookmarks)
}

// Current returns the question being displayed, or false when the
// active view is empty. An empty view is a valid state, not an error.
func (c *Controller) Current() (bank.Question, bool) {
	return c.current, c.hasCurrent
}

// Options returns the option list for the current question.
func (c *Controller) Options() []string { return c.options }

// Hidden returns the options removed from play by a hint.
func (c *Controller) Hidden() []string { return c.hidden }

// Selected returns the submitted option, empty in UNANSWERED.
func (c *Controller) Selected() string { return c.selected }

// Phase returns the current per-question phase.
func (c *Controller) Phase() Phase { return c.phase }

// Progress returns a copy of the progress record.
func (c *Controller) Progress() Progress { return c.progress }

// View returns the navigation state (filter, shuffle, index).
func (c *Controller) View() *view.State { return c.view }

// SessionID identifies this practice session in the event log.
func (c *Controller) SessionID() string { return c.sessionID }

// Subject returns the bank's subject label.
func (c *Controller) Subject() string { return c.repo.Subject() }

// SelectAnswer records the chosen option. Legal only in UNANSWERED:
// attempts always increment, score increments on trimmed equality with
// the correct answer, a wrong choice joins the wrong set, and a correct
// choice given while reviewing errors heals the wrong set.
func (c *Controller) SelectAnswer(option string) error {
	if !c.hasCurrent {
		return nil
	}
	if c.phase == PhaseAnswered {
		return ErrAlreadyAnswered
	}

	c.selected = option
	c.phase = PhaseAnswered
	c.progress.Attempts++

	correct := option == c.current.CorrectAnswer()
	if correct {
		c.progress.Score++
		if c.view.Filter == view.FilterErrors {
			c.progress.Wrong.Remove(c.current.ID)
		}
	} else {
		c.progress.Wrong.Add(c.current.ID)
	}

	c.persist()
	if c.sink != nil {
		_ = c.sink.RecordAnswer(context.Background(), c.sessionID, c.current.ID, correct)
	}
	return nil
}

// Retry clears the selection and any revealed hint and returns to
// UNANSWERED on the same question. Attempts and score stand; a retry is
// a fresh attempt opportunity, not an undo.
func (c *Controller) Retry() {
	c.selected = ""
	c.hidden = nil
	c.phase = PhaseUnanswered
}

// Hint hides two of the wrong options, never the correct one. One hint
// per question instance; repeat calls are no-ops.
func (c *Controller) Hint() {
	if !c.hasCurrent || c.phase != PhaseUnanswered || len(c.hidden) > 0 {
		return
	}
	correct := c.current.CorrectAnswer()
	var wrong []string
	for _, opt := range c.options {
		if opt != correct {
			wrong = append(wrong, opt)
		}
	}
	c.rng.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })
	if len(wrong) > 2 {
		wrong = wrong[:2]
	}
	c.hidden = wrong
}

// Next advances navigation. Outside the ERRORS filter the list loops
// indefinitely. Under ERRORS, a correct answer has already removed the
// question from the wrong set, so the index is clamped to 0 when it
// fell off the shrunken list; a wrong answer keeps cycling through the
// remaining errors.
func (c *Controller) Next() {
	active := c.Active()

	if c.view.Filter == view.FilterErrors {
		answeredCorrect := c.phase == PhaseAnswered && c.hasCurrent &&
			c.selected == c.current.CorrectAnswer()
		if answeredCorrect {
			if c.view.Index >= len(active) {
				c.view.Index = 0
			}
		} else if len(active) > 0 {
			c.view.Index = (c.view.Index + 1) % len(active)
		}
	} else if len(active) > 0 {
		c.view.Index = (c.view.Index + 1) % len(active)
	}

	c.afterNav()
}

// Prev steps back. At position 0 it wraps to the end only under the
// ERRORS filter when more than one error remains.
func (c *Controller) Prev() {
	active := c.Active()
	if c.view.Index > 0 {
		c.view.Index--
	} else if c.view.Filter == view.FilterErrors && len(active) > 1 {
		c.view.Index = len(active) - 1
	}
	c.afterNav()
}

// ToggleBookmark flips the current question's bookmark. Legal in any
// phase; score and attempts are untouched.
func (c *Controller) ToggleBookmark() {
	if !c.hasCurrent {
		return
	}
	c.progress.Bookmarks.Toggle(c.current.ID)
	c.view.Reconcile(len(c.Active()))
	c.sync()
	c.persist()
}

// SetFilter switches the active filter and reconciles the index.
func (c *Controller) SetFilter(m view.FilterMode) {
	c.view.SetFilter(m)
	c.view.Reconcile(len(c.Active()))
	c.sync()
}

// ToggleShuffle freezes or discards the shuffle permutation and resets
// the index.
func (c *Controller) ToggleShuffle() {
	c.view.ToggleShuffle(c.repo.Len(), c.rng)
	c.view.Reconcile(len(c.Active()))
	c.sync()
}

// JumpTo moves to the question with the given id within the active
// view. Navigation is unchanged on view.ErrNotFound.
func (c *Controller) JumpTo(id int) error {
	if err := c.view.JumpTo(c.Active(), id); err != nil {
		return err
	}
	c.sync()
	return nil
}

// Search returns up to limit questions whose id or text matches term,
// scanning the whole bank regardless of filter.
func (c *Controller) Search(term string, limit int) []bank.Question {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []bank.Question
	for _, q := range c.repo.Questions() {
		if strings.Contains(strings.ToLower(q.Question), term) ||
			strings.Contains(strconv.Itoa(q.ID), term) {
			out = append(out, q)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// SelectSearchResult jumps to a search hit, dropping back to the ALL
// filter when the target is excluded by the current one.
func (c *Controller) SelectSearchResult(id int) error {
	if err := c.JumpTo(id); err == nil {
		return nil
	}
	if c.view.Filter == view.FilterAll {
		return view.ErrNotFound
	}
	c.SetFilter(view.FilterAll)
	return c.JumpTo(id)
}

// ReplaceBank swaps in a freshly imported bank. All prior progress is
// invalidated by design: new material is a different subject.
func (c *Controller) ReplaceBank(questions []bank.Question, subject string) {
	c.repo.Replace(questions, subject)
	c.progress.Reset()
	c.view.Invalidate()
	c.sync()
	c.persist()
}

// Reset empties the bank and all progress.
func (c *Controller) Reset() {
	c.repo.Reset()
	c.progress.Reset()
	c.view.Invalidate()
	c.sync()
	c.persist()
}

// afterNav clears the per-attempt state and re-syncs the current
// question after any navigation step.
func (c *Controller) afterNav() {
	c.selected = ""
	c.phase = PhaseUnanswered
	c.sync()
}

// sync reconciles the cached current question against the active list.
// Options regenerate and hints clear only when the question identity
// actually changed.
func (c *Controller) sync() {
	active := c.Active()
	c.view.Reconcile(len(active))

	if len(active) == 0 {
		c.current = bank.Question{}
		c.hasCurrent = false
		c.options = nil
		c.hidden = nil
		c.selected = ""
		c.phase = PhaseUnanswered
		return
	}

	next := active[c.view.Index]
	if c.hasCurrent && next.ID == c.current.ID {
		c.current = next
		return
	}

	c.current = next
	c.hasCurrent = true
	c.options = c.gen.Options(next, c.repo)
	c.hidden = nil
	c.selected = ""
	c.phase = PhaseUnanswered
}

func (c *Controller) persist() {
	if c.sink == nil {
		return
	}
	_ = c.sink.SaveProgress(context.Background(), c.progress)
}
