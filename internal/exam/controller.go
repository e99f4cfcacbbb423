// Package exam implements the timed-exam state machine: uniform
// sampling from the bank, revisable answers, a one-second countdown,
// and a fixed 60% pass threshold.
package exam

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/distractor"
)

// ErrInvalidConfig reports an out-of-range exam configuration. The
// session stays in CONFIGURING; nothing is clamped silently.
var ErrInvalidConfig = errors.New("exam config out of range")

// Phase is the exam lifecycle state.
type Phase int

const (
	PhaseConfiguring Phase = iota
	PhaseRunning
	PhaseFinished
)

// Result is the outcome computed by Submit.
type Result struct {
	Correct   int
	Total     int
	Threshold int
	Passed    bool
}

// Sink receives the fire-and-forget exam outcome record. May be nil.
type Sink interface {
	RecordExam(ctx context.Context, sessionID string, r Result, durationSeconds int) error
}

// Controller is the exam state machine. It reads the shared repository
// at Start and never mutates it; practice progress is untouched for the
// whole exam.
type Controller struct {
	repo *bank.Repository
	gen  *distractor.Generator
	rng  *rand.Rand
	sink Sink

	phase     Phase
	sessionID string

	sampled   []bank.Question
	options   [][]string
	answers   map[int]string
	index     int
	selected  string
	remaining int
	duration  int
	result    Result

	countdown *Countdown
	interval  time.Duration
}

// NewController creates an exam controller in CONFIGURING. sink may be
// nil.
func NewController(repo *bank.Repository, gen *distractor.Generator, rng *rand.Rand, sink Sink) *Controller {
	return &Controller{
		repo:     repo,
		gen:      gen,
		rng:      rng,
		sink:     sink,
		answers:  map[int]string{},
		interval: time.Second,
	}
}

// SetTickInterval overrides the countdown interval. Tests use this to
// run the clock fast.
func (c *Controller) SetTickInterval(d time.Duration) { c.interval = d }

// Phase returns the lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// Questions returns the sampled exam set in presentation order.
func (c *Controller) Questions() []bank.Question { return c.sampled }

// Index returns the current position within the sampled set.
func (c *Controller) Index() int { return c.index }

// Current returns the question at the exam cursor, or false outside
// RUNNING.
func (c *Controller) Current() (bank.Question, bool) {
	if c.phase != PhaseRunning || c.index >= len(c.sampled) {
		return bank.Question{}, false
	}
	return c.sampled[c.index], true
}

// Options returns the option set for the current question. Option sets
// are generated once at Start so revisiting a question shows the same
// choices.
func (c *Controller) Options() []string {
	if c.phase != PhaseRunning || c.index >= len(c.options) {
		return nil
	}
	return c.options[c.index]
}

// Selected returns the answer currently marked for the cursor question.
func (c *Controller) Selected() string { return c.selected }

// Remaining returns the seconds left on the clock.
func (c *Controller) Remaining() int { return c.remaining }

// Result returns the outcome; meaningful only in FINISHED.
func (c *Controller) Result() Result { return c.result }

// Answered reports how many questions carry a recorded answer.
func (c *Controller) Answered() int { return len(c.answers) }

// Countdown returns the live ticker, or nil outside RUNNING. The caller
// drives Tick from it.
func (c *Controller) Countdown() *Countdown { return c.countdown }

// Start validates the configuration, samples count questions uniformly
// without replacement, arms the countdown, and enters RUNNING. Any
// answers from a previous run are discarded.
func (c *Controller) Start(count, minutes int) error {
	if count < 1 || count > c.repo.Len() || minutes < 1 {
		return ErrInvalidConfig
	}

	perm := c.rng.Perm(c.repo.Len())
	c.sampled = make([]bank.Question, 0, count)
	c.options = make([][]string, 0, count)
	for _, pos := range perm[:count] {
		q := c.repo.At(pos)
		c.sampled = append(c.sampled, q)
		c.options = append(c.options, c.gen.Options(q, c.repo))
	}

	c.answers = map[int]string{}
	c.index = 0
	c.selected = ""
	c.duration = minutes * 60
	c.remaining = c.duration
	c.sessionID = uuid.New().String()
	c.countdown = NewCountdown(c.interval)
	c.phase = PhaseRunning
	return nil
}

// SelectAnswer stores or overwrites the answer for the cursor question.
// Unlike practice, changing one's mind before moving on is allowed.
func (c *Controller) SelectAnswer(option string) {
	if c.phase != PhaseRunning {
		return
	}
	c.selected = option
	c.answers[c.sampled[c.index].ID] = option
}

// Next advances to the following question, preloading any answer
// already recorded for it. From the last question Next submits.
func (c *Controller) Next() {
	if c.phase != PhaseRunning {
		return
	}
	if c.index == len(c.sampled)-1 {
		c.Submit()
		return
	}
	c.index++
	c.selected = c.answers[c.sampled[c.index].ID]
}

// Prev steps back one question. No wrap: Prev on the first question is
// a no-op.
func (c *Controller) Prev() {
	if c.phase != PhaseRunning || c.index == 0 {
		return
	}
	c.index--
	c.selected = c.answers[c.sampled[c.index].ID]
}

// Tick consumes one countdown second. Reaching zero forces submission
// with whatever answers were recorded, even mid-question.
func (c *Controller) Tick() {
	if c.phase != PhaseRunning {
		return
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.Submit()
	}
}

// Submit stops the countdown, grades the recorded answers, and enters
// FINISHED. Pass requires at least 60% correct, rounded up.
func (c *Controller) Submit() {
	if c.phase != PhaseRunning {
		return
	}
	c.stopCountdown()

	correct := 0
	for _, q := range c.sampled {
		if ans, ok := c.answers[q.ID]; ok && ans == q.CorrectAnswer() {
			correct++
		}
	}
	n := len(c.sampled)
	threshold := (n*3 + 4) / 5 // ceil(0.6 * n) in integer arithmetic
	c.result = Result{
		Correct:   correct,
		Total:     n,
		Threshold: threshold,
		Passed:    correct >= threshold,
	}
	c.phase = PhaseFinished

	if c.sink != nil {
		_ = c.sink.RecordExam(context.Background(), c.sessionID, c.result, c.duration-c.remaining)
	}
}

// Abandon discards the exam on any phase and guarantees the countdown
// is released. Nothing is recorded.
func (c *Controller) Abandon() {
	c.stopCountdown()
	c.phase = PhaseConfiguring
	c.sampled = nil
	c.options = nil
	c.answers = map[int]string{}
	c.index = 0
	c.selected = ""
	c.remaining = 0
}

// Review pairs each sampled question with the answer recorded for it.
// Meaningful only in FINISHED.
type Review struct {
	Question bank.Question
	Given    string
	Correct  bool
}

// ReviewSheet returns the per-question breakdown for the results screen.
func (c *Controller) ReviewSheet() []Review {
	out := make([]Review, 0, len(c.sampled))
	for _, q := range c.sampled {
		given := c.answers[q.ID]
		out = append(out, Review{
			Question: q,
			Given:    given,
			Correct:  given != "" && given == q.CorrectAnswer(),
		})
	}
	return out
}

func (c *Controller) stopCountdown() {
	if c.countdown != nil {
		c.countdown.Stop()
		c.countdown = nil
	}
}
