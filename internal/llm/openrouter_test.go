package llm

import "testing"

func TestOpenRouterModelPassthrough(t *testing.T) {
	// OpenRouter ids carry a vendor prefix; the alias table must not
	// touch them.
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "anthropic/claude-3-haiku",
	})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q, want anthropic/claude-3-haiku", p.ModelID())
	}
}

func TestOpenRouterRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "meta-llama/llama-3-8b"}); err == nil {
		t.Fatal("expected an error without an API key")
	}
}

func TestOpenRouterBaseURLs(t *testing.T) {
	for _, base := range []string{"", "https://proxy.example/v1"} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: base,
		})
		if err != nil {
			t.Fatalf("base %q: %v", base, err)
		}
		if p == nil {
			t.Fatalf("base %q: nil provider", base)
		}
	}
}
