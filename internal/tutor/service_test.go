package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/studydrill/drill/internal/bank"
	"github.com/studydrill/drill/internal/llm"
)

func waitForReply(t *testing.T, s *Service) *Reply {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if err := s.Err(); err != nil {
			t.Fatalf("generation failed: %v", err)
		}
		if reply, ok := s.Consume(); ok {
			return reply
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no reply before deadline")
	return nil
}

func TestAskProducesReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"reply":"Think about the capital, not the largest city.","reveals_answer":false}`),
	})
	s := NewService(mock, DefaultConfig())

	q := bank.Question{ID: 1, Question: "Capital of Australia?", Answer: "Canberra"}
	snap := Snapshot(q, []string{"Sydney", "Canberra", "Perth", "Melbourne"}, "Geography")

	s.Ask(context.Background(), snap, nil, "Is it the biggest city?")
	reply := waitForReply(t, s)

	if !strings.Contains(reply.Text, "capital") {
		t.Errorf("reply = %q", reply.Text)
	}
	if reply.RevealsAnswer {
		t.Error("reply should not reveal the answer")
	}

	// The snapshot travels in the first user message.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	first := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Geography", "Capital of Australia?", "Canberra", "Sydney"} {
		if !strings.Contains(first, want) {
			t.Errorf("context message missing %q:\n%s", want, first)
		}
	}
	if mock.Calls[0].Schema != ReplySchema {
		t.Error("request did not carry the reply schema")
	}
}

func TestHistoryPrecedesNewQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"reply":"Yes.","reveals_answer":false}`),
	})
	s := NewService(mock, DefaultConfig())

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "earlier question"},
		{Role: llm.RoleAssistant, Content: "earlier reply"},
	}
	s.Ask(context.Background(), Context{Question: "q", CorrectAnswer: "a"}, history, "followup")
	waitForReply(t, s)

	msgs := mock.Calls[0].Messages
	if len(msgs) != 4 {
		t.Fatalf("message count = %d, want context + 2 history + question", len(msgs))
	}
	if msgs[3].Content != "followup" {
		t.Errorf("last message = %q, want the new question", msgs[3].Content)
	}
}

func TestConsumeClearsPendingSlot(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"reply":"ok","reveals_answer":false}`),
	})
	s := NewService(mock, DefaultConfig())

	s.Ask(context.Background(), Context{Question: "q", CorrectAnswer: "a"}, nil, "hi")
	waitForReply(t, s)

	if _, ok := s.Consume(); ok {
		t.Error("second Consume returned a stale reply")
	}
}

func TestProviderErrorSurfacesViaErr(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	s := NewService(mock, DefaultConfig())

	s.Ask(context.Background(), Context{Question: "q", CorrectAnswer: "a"}, nil, "hi")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if err := s.Err(); err != nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("provider error never surfaced")
}
