package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiAgainst(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cc := openai.DefaultConfig("test-key")
	cc.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cc), model: "gpt-4o-mini"}
}

func openaiReply(text, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1756700000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": text},
					"finish_reason": finish,
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     88,
				"completion_tokens": 34,
				"total_tokens":      122,
			},
		})
	}
}

func openaiError(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "err", "message": "err"},
		})
	}
}

func TestOpenAIGenerate(t *testing.T) {
	p := openaiAgainst(t, openaiReply("Hannibal crossed the Alps with war elephants.", "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a study tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Tell me about Hannibal."}},
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Usage.InputTokens != 88 || resp.Usage.OutputTokens != 34 {
		t.Errorf("usage = %+v, want 88 in / 34 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestOpenAITruncationStopReason(t *testing.T) {
	p := openaiAgainst(t, openaiReply("Hannibal crossed", "length"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Tell me about Hannibal."}},
		MaxTokens: 4,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", resp.StopReason)
	}
}

func TestOpenAIErrorClassification(t *testing.T) {
	t.Run("throttled", func(t *testing.T) {
		p := openaiAgainst(t, openaiError(http.StatusTooManyRequests))
		_, err := p.Generate(context.Background(), Request{
			Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 64,
		})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("err = %T (%v), want *ErrRateLimit", err, err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		p := openaiAgainst(t, openaiError(http.StatusInternalServerError))
		_, err := p.Generate(context.Background(), Request{
			Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 64,
		})
		var down *ErrProviderUnavailable
		if !errors.As(err, &down) {
			t.Fatalf("err = %T (%v), want *ErrProviderUnavailable", err, err)
		}
	})
}

func TestOpenAIBaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://compatible.example/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", p.ModelID())
	}
}
