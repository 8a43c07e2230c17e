package curriculum

import "github.com/sagelearn/sage/internal/llm"

// PathPlanSchema defines the JSON schema for onboarding responses.
var PathPlanSchema = &llm.Schema{
	Name:        "path-plan",
	Description: "A personalized learning path generated from a learner's goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"learningPath": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"motivation": map[string]any{
						"type": "string",
						"enum": []any{"career", "hobby", "corporate", "personal", "project", "entrepreneurship"},
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"beginner", "intermediate", "advanced"},
					},
					"estimatedDuration": map[string]any{"type": "string"},
					"modules": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title":       map[string]any{"type": "string"},
								"description": map[string]any{"type": "string"},
								"orderIndex":  map[string]any{"type": "integer"},
								"lessons": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"title":       map[string]any{"type": "string"},
											"description": map[string]any{"type": "string"},
											"orderIndex":  map[string]any{"type": "integer"},
											"duration":    map[string]any{"type": "integer"},
										},
										"required":             []any{"title", "description", "orderIndex", "duration"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"title", "description", "orderIndex", "lessons"},
							"additionalProperties": false,
						},
					},
				},
				"required": []any{
					"title", "description", "motivation", "difficulty",
					"estimatedDuration", "modules",
				},
				"additionalProperties": false,
			},
			"followUpQuestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"learningPath", "followUpQuestions"},
		"additionalProperties": false,
	},
}

// LessonContentSchema defines the JSON schema for generated lesson
// content. The content itself stays loosely typed: it is stored and
// served as an opaque document.
var LessonContentSchema = &llm.Schema{
	Name:        "lesson-content",
	Description: "Structured lesson content with sections, takeaways, and an exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"introduction": map[string]any{"type": "string"},
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"concept", "example", "exercise", "quiz", "visual"},
						},
						"title":             map[string]any{"type": "string"},
						"content":           map[string]any{"type": "string"},
						"codeExample":       map[string]any{"type": "string"},
						"visualDescription": map[string]any{"type": "string"},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title":         map[string]any{"type": "string"},
									"url":           map[string]any{"type": "string"},
									"type":          map[string]any{"type": "string"},
									"summary":       map[string]any{"type": "string"},
									"estimatedTime": map[string]any{"type": "string"},
								},
								"required":             []any{"title", "url", "type"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"type", "title", "content"},
					"additionalProperties": false,
				},
			},
			"keyTakeaways": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"practicalExercise": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":            map[string]any{"type": "string"},
					"description":      map[string]any{"type": "string"},
					"instructions":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"successCriteria":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"estimatedTime":    map[string]any{"type": "string"},
					"skillsReinforced": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required":             []any{"title", "description", "instructions"},
				"additionalProperties": false,
			},
			"nextSteps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"introduction", "sections", "keyTakeaways", "practicalExercise", "nextSteps"},
		"additionalProperties": false,
	},
}
