package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiAliases(t *testing.T) {
	for alias, id := range geminiAliases {
		if got := aliasModel(alias, geminiAliases); got != id {
			t.Errorf("aliasModel(%q) = %q, want %q", alias, got, id)
		}
	}
	if got := aliasModel("gemini-3.0-ultra", geminiAliases); got != "gemini-3.0-ultra" {
		t.Errorf("unknown name must pass through, got %q", got)
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer":     map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number"},
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"correct", "incorrect", "partial"},
			},
			"references": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"answer", "verdict"},
	}

	s := geminiSchema(def)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %v, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if s.Properties["answer"].Type != genai.TypeString {
		t.Errorf("answer type = %v, want STRING", s.Properties["answer"].Type)
	}
	if s.Properties["confidence"].Type != genai.TypeNumber {
		t.Errorf("confidence type = %v, want NUMBER", s.Properties["confidence"].Type)
	}
	if got := s.Properties["verdict"].Enum; len(got) != 3 {
		t.Errorf("verdict enum = %v, want 3 values", got)
	}
	if s.Properties["references"].Items.Type != genai.TypeInteger {
		t.Errorf("references items = %v, want INTEGER", s.Properties["references"].Items.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v, want 2 fields", s.Required)
	}
}

func TestGeminiSchemaUnknownTypeDegrades(t *testing.T) {
	s := geminiSchema(map[string]any{"type": "tuple"})
	if s.Type != genai.TypeString {
		t.Errorf("unknown type = %v, want STRING fallback", s.Type)
	}
}
