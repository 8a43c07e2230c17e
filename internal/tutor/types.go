package tutor

import "github.com/sagelearn/sage/internal/adaptive"

// ChatRequest is one inbound tutoring message with its lesson context.
type ChatRequest struct {
	UserID   string `json:"userId"`
	PathID   string `json:"pathId,omitempty"`
	LessonID string `json:"lessonId,omitempty"`
	Message  string `json:"message"`

	Lesson   adaptive.LessonContext   `json:"-"`
	Module   adaptive.ModuleContext   `json:"-"`
	Progress adaptive.ProgressContext `json:"-"`
}

// ChatResponse is the tutor's reply for one turn. AdaptiveInsights is
// nil on turns where the analysis cadence did not fire.
type ChatResponse struct {
	Message          string             `json:"message"`
	Suggestions      []string           `json:"suggestions"`
	ContextualHints  []string           `json:"contextualHints,omitempty"`
	AdaptiveInsights *adaptive.Analysis `json:"adaptiveInsights,omitempty"`
	MessageID        string             `json:"messageId"`
}
