package adaptive

import "github.com/sagelearn/sage/internal/llm"

// AssessmentSchema defines the JSON schema for difficulty-assessment
// responses. The classifier trusts no field until the response has
// passed this schema.
var AssessmentSchema = &llm.Schema{
	Name:        "difficulty-assessment",
	Description: "Assessment of a learner's comprehension level based on recent chat interactions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"currentLevel": map[string]any{
				"type":        "string",
				"enum":        []any{"struggling", "comfortable", "advanced", "mastery"},
				"description": "The learner's inferred comprehension level",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the level classification (0.0-1.0)",
			},
			"indicators": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific observations from the messages supporting the classification",
			},
			"recommendations": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"adjustDifficulty": map[string]any{
						"type": "string",
						"enum": []any{"increase", "decrease", "maintain"},
					},
					"suggestedContent": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"focusAreas": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"adjustDifficulty", "suggestedContent", "focusAreas"},
				"additionalProperties": false,
			},
			"adaptivePrompts": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"nextLesson": map[string]any{
						"type":        "string",
						"description": "Prompt modifier for generating next lesson content at this level",
					},
					"chatPersona": map[string]any{
						"type":        "string",
						"description": "Personality adjustment for tutor responses",
					},
				},
				"required":             []any{"nextLesson", "chatPersona"},
				"additionalProperties": false,
			},
			"inferredLearningStyle": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"primary": map[string]any{
						"type":        "string",
						"description": "Apparent learning style, e.g. visual, hands-on, reading",
					},
					"confidence": map[string]any{
						"type":    "number",
						"minimum": 0.0,
						"maximum": 1.0,
					},
				},
				"required":             []any{"primary", "confidence"},
				"additionalProperties": false,
			},
		},
		"required": []any{
			"currentLevel", "confidence", "indicators",
			"recommendations", "adaptivePrompts", "inferredLearningStyle",
		},
		"additionalProperties": false,
	},
}

// RecommendationsSchema defines the JSON schema for recommendation
// responses.
var RecommendationsSchema = &llm.Schema{
	Name:        "adaptive-recommendations",
	Description: "Actionable learning recommendations derived from a difficulty assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendedActions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Immediate actions to help the learner",
			},
			"nextLessonModifications": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "How to modify the next lesson for the learner's level",
			},
			"chatSuggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Conversation starters and comprehension-check questions",
			},
		},
		"required":             []any{"recommendedActions", "nextLessonModifications", "chatSuggestions"},
		"additionalProperties": false,
	},
}
