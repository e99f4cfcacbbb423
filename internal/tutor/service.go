// Package tutor is the read-only chat collaborator: it sees a snapshot
// of the current question and answers learner questions about it. It
// never mutates session state; its output is display-only.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/llm"
)

const systemPrompt = `You are a patient study tutor. The learner is working through
a multiple-choice question. Help them reason about it: clarify terms, point at the
relevant part of the question, or walk through elimination. Do not state the correct
answer unless the learner explicitly asks for it.`

// Context is the engine snapshot handed to the tutor. It is read-only.
type Context struct {
	Question      string
	Options       []string
	CorrectAnswer string
	Subject       string
}

// Snapshot builds a tutor context from the current engine state.
func Snapshot(q bank.Question, options []string, subject string) Context {
	return Context{
		Question:      q.Question,
		Options:       options,
		CorrectAnswer: q.CorrectAnswer(),
		Subject:       subject,
	}
}

// Reply is one tutor turn.
type Reply struct {
	Text          string `json:"reply"`
	RevealsAnswer bool   `json:"reveals_answer"`
}

// Config bounds tutor generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard chat bounds.
func DefaultConfig() Config {
	return Config{MaxTokens: 600, Temperature: 0.4}
}

// Service generates tutor replies asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Reply
	err     error
	ready   bool
}

// NewService creates a tutor chat service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Ask starts async reply generation. Only one reply is in-flight at a
// time; a new request replaces any pending one.
func (s *Service) Ask(ctx context.Context, snap Context, history []llm.Message, question string) {
	go func() {
		reply, err := s.generate(ctx, snap, history, question)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = reply
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending reply if one is ready. Returns
// (nil, false) while generation is still running. After consumption the
// pending slot is cleared.
func (s *Service) Consume() (*Reply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	reply := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return reply, reply != nil
}

// Err returns the error from the last finished generation, if any.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Service) generate(ctx context.Context, snap Context, history []llm.Message, question string) (*Reply, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTutorChat)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: buildContextMessage(snap)})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	req := llm.Request{
		System:      systemPrompt,
		Messages:    messages,
		Schema:      ReplySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tutor reply: %w", err)
	}

	var reply Reply
	if err := json.Unmarshal(resp.Content, &reply); err != nil {
		return nil, fmt.Errorf("decode tutor reply: %w", err)
	}
	return &reply, nil
}

func buildContextMessage(snap Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", snap.Subject)
	fmt.Fprintf(&b, "Question: %s\n", snap.Question)
	if len(snap.Options) > 0 {
		b.WriteString("Options:\n")
		for _, opt := range snap.Options {
			fmt.Fprintf(&b, "- %s\n", opt)
		}
	}
	fmt.Fprintf(&b, "Correct answer (do not reveal unless asked): %s\n", snap.CorrectAnswer)
	return b.String()
}
