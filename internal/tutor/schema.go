package tutor

import "github.com/studydrill/drill/internal/llm"

// ReplySchema defines the JSON schema for tutor chat replies.
var ReplySchema = &llm.Schema{
	Name:        "tutor-reply",
	Description: "A short tutoring reply about the current question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "Conversational answer to the learner (2-5 sentences)",
			},
			"reveals_answer": map[string]any{
				"type":        "boolean",
				"description": "Whether the reply states the correct answer outright",
			},
		},
		"required":             []any{"reply", "reveals_answer"},
		"additionalProperties": false,
	},
}
