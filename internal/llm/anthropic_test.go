package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicAgainst(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicReply(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_1",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  120,
				"output_tokens": 45,
			},
		})
	}
}

func anthropicError(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": kind, "message": kind},
		})
	}
}

func TestAnthropicGenerate(t *testing.T) {
	p := anthropicAgainst(t, anthropicReply("The Rubicon marked the boundary of Italy proper."))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a study tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Why did crossing the Rubicon matter?"}},
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := string(resp.Content); got != "The Rubicon marked the boundary of Italy proper." {
		t.Errorf("content = %q", got)
	}
	if resp.Usage.InputTokens != 120 || resp.Usage.OutputTokens != 45 {
		t.Errorf("usage = %+v, want 120 in / 45 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicErrorClassification(t *testing.T) {
	t.Run("throttled", func(t *testing.T) {
		p := anthropicAgainst(t, anthropicError(http.StatusTooManyRequests, "rate_limit_error"))
		_, err := p.Generate(context.Background(), Request{
			Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 64,
		})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("err = %T (%v), want *ErrRateLimit", err, err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		p := anthropicAgainst(t, anthropicError(http.StatusInternalServerError, "api_error"))
		_, err := p.Generate(context.Background(), Request{
			Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 64,
		})
		var down *ErrProviderUnavailable
		if !errors.As(err, &down) {
			t.Fatalf("err = %T (%v), want *ErrProviderUnavailable", err, err)
		}
	})
}

func TestAnthropicAliases(t *testing.T) {
	for alias, id := range anthropicAliases {
		if got := aliasModel(alias, anthropicAliases); got != id {
			t.Errorf("aliasModel(%q) = %q, want %q", alias, got, id)
		}
	}
	if got := aliasModel("claude-opus-next", anthropicAliases); got != "claude-opus-next" {
		t.Errorf("unknown name must pass through, got %q", got)
	}
}
