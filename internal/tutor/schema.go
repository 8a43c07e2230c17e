package tutor

import "github.com/sagelearn/sage/internal/llm"

// ReplySchema defines the JSON schema for tutor chat replies.
var ReplySchema = &llm.Schema{
	Name:        "chat-reply",
	Description: "A tutoring reply with quick suggestions and lesson hints",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The tutor's reply to the learner",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short follow-up prompts the learner can tap",
			},
			"contextualHints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Hints tied to the current lesson",
			},
		},
		"required":             []any{"message", "suggestions"},
		"additionalProperties": false,
	},
}
