package store

import (
	"context"
	"time"
)

// BankState is the persisted question bank. Absence of the key means an
// empty bank under the default subject label.
type BankState struct {
	Subject   string     `json:"subject"`
	Questions []Question `json:"questions"`
}

// Question is the serialized form of a bank question.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options,omitempty"`
}

// ProgressState is the persisted practice progress. Absence of the key
// means zero tallies and empty sets.
type ProgressState struct {
	Score     int   `json:"score"`
	Attempts  int   `json:"attempts"`
	Wrong     []int `json:"wrong"`
	Bookmarks []int `json:"bookmarks"`
}

// StateRepo is the key-value persistence boundary. Every key is
// independently readable and writable; a missing key yields its
// documented default, never an error.
type StateRepo interface {
	LoadBank(ctx context.Context) (BankState, error)
	SaveBank(ctx context.Context, b BankState) error
	LoadProgress(ctx context.Context) (ProgressState, error)
	SaveProgress(ctx context.Context, p ProgressState) error
}

// AnswerEventData captures one practice answer for the event log.
type AnswerEventData struct {
	SessionID  string
	QuestionID int
	Correct    bool
}

// ExamEventData captures one finished exam for the event log.
type ExamEventData struct {
	SessionID    string
	CorrectCount int
	Total        int
	Threshold    int
	Passed       bool
	DurationSecs int
	Timestamp    time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a logged LLM API call as read back from the event log.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStat aggregates logged LLM calls for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryOpts bounds event log queries.
type QueryOpts struct {
	Limit int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendAnswer records a practice answer event.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendExam records a finished exam outcome.
	AppendExam(ctx context.Context, data ExamEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AnswerTotals returns lifetime answered and correct counts.
	AnswerTotals(ctx context.Context) (total, correct int, err error)

	// ExamHistory returns the most recent exams, newest first.
	ExamHistory(ctx context.Context, limit int) ([]ExamEventData, error)

	// QueryLLMEvents returns logged LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// LLMUsageByPurpose returns token and latency aggregates grouped
	// by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
}
