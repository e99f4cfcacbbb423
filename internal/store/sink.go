package store

import (
	"context"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/exam"
	"github.com/studydrill/drill/internal/practice"
)

// Sink adapts the store to the controllers' fire-and-forget persistence
// interfaces. It satisfies both practice.Sink and exam.Sink.
type Sink struct {
	state  StateRepo
	events EventRepo
}

// NewSink builds a sink over the store's repositories.
func NewSink(s *Store) *Sink {
	return &Sink{state: s.StateRepo(), events: s.EventRepo()}
}

func (k *Sink) SaveProgress(ctx context.Context, p practice.Progress) error {
	return k.state.SaveProgress(ctx, ProgressState{
		Score:     p.Score,
		Attempts:  p.Attempts,
		Wrong:     p.Wrong.IDs(),
		Bookmarks: p.Bookmarks.IDs(),
	})
}

func (k *Sink) RecordAnswer(ctx context.Context, sessionID string, questionID int, correct bool) error {
	return k.events.AppendAnswer(ctx, AnswerEventData{
		SessionID:  sessionID,
		QuestionID: questionID,
		Correct:    correct,
	})
}

func (k *Sink) RecordExam(ctx context.Context, sessionID string, r exam.Result, durationSeconds int) error {
	return k.events.AppendExam(ctx, ExamEventData{
		SessionID:    sessionID,
		CorrectCount: r.Correct,
		Total:        r.Total,
		Threshold:    r.Threshold,
		Passed:       r.Passed,
		DurationSecs: durationSeconds,
	})
}

// SaveBank persists the repository contents and subject label.
func (k *Sink) SaveBank(ctx context.Context, repo *bank.Repository) error {
	qs := repo.Questions()
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, Question{
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
			Options:  q.Options,
		})
	}
	return k.state.SaveBank(ctx, BankState{Subject: repo.Subject(), Questions: out})
}

// LoadSession restores the bank and progress, applying documented
// defaults for missing keys.
func LoadSession(ctx context.Context, state StateRepo) (*bank.Repository, practice.Progress, error) {
	bs, err := state.LoadBank(ctx)
	if err != nil {
		return nil, practice.Progress{}, err
	}
	qs := make([]bank.Question, 0, len(bs.Questions))
	for _, q := range bs.Questions {
		qs = append(qs, bank.Question{
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
			Options:  q.Options,
		})
	}
	repo := bank.NewRepository(qs, bs.Subject)

	ps, err := state.LoadProgress(ctx)
	if err != nil {
		return nil, practice.Progress{}, err
	}
	progress := practice.Progress{
		Score:     ps.Score,
		Attempts:  ps.Attempts,
		Wrong:     bank.NewIDSet(ps.Wrong),
		Bookmarks: bank.NewIDSet(ps.Bookmarks),
	}
	return repo, progress, nil
}
