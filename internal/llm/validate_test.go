package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// tutorReplySchema mirrors the shape the tutor asks for: a reply plus a
// verdict on the learner's thinking.
func tutorReplySchema() *Schema {
	return &Schema{
		Name:        "tutor-reply-test",
		Description: "A tutor reply with a verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"reply":      map[string]any{"type": "string"},
				"verdict":    map[string]any{"type": "string", "enum": []any{"correct", "incorrect", "partial"}},
				"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			},
			"required": []any{"reply", "verdict"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"complete reply", `{"reply":"Think about the year 49 BC.","verdict":"partial","confidence":0.8}`, true},
		{"optional field omitted", `{"reply":"Correct.","verdict":"correct"}`, true},
		{"missing required field", `{"reply":"Correct."}`, false},
		{"wrong type", `{"reply":"Correct.","verdict":"correct","confidence":"high"}`, false},
		{"verdict outside enum", `{"reply":"Hmm.","verdict":"unsure"}`, false},
		{"not JSON at all", `the tutor rambled in prose`, false},
		{"empty output", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tutorReplySchema(), json.RawMessage(tt.raw))
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var rejected *ErrInvalidResponse
			if !errors.As(err, &rejected) {
				t.Fatalf("err = %T, want *ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain prose, not JSON`)); err != nil {
		t.Fatalf("nil schema must accept raw text, got %v", err)
	}
}

func TestValidateResponseNestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "review-items-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id": map[string]any{"type": "integer"},
						},
						"required": []any{"id"},
					},
				},
			},
			"required": []any{"items"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"items":[{"id":1},{"id":2}]}`)); err != nil {
		t.Fatalf("valid nested document rejected: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"items":[{"id":"one"}]}`)); err == nil {
		t.Fatal("expected rejection of wrong nested type")
	}
}
