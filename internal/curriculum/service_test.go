package curriculum

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sagelearn/sage/internal/llm"
)

const planJSON = `{
	"learningPath": {
		"title": "Backend Development with Go",
		"description": "A hands-on path from basics to production services",
		"motivation": "career",
		"difficulty": "intermediate",
		"estimatedDuration": "12 weeks",
		"modules": [
			{
				"title": "Go Fundamentals",
				"description": "Syntax, types, and tooling",
				"orderIndex": 0,
				"lessons": [
					{"title": "Setting up", "description": "Install and hello world", "orderIndex": 0, "duration": 15},
					{"title": "Types and functions", "description": "Core language", "orderIndex": 1, "duration": 20}
				]
			},
			{
				"title": "Web Services",
				"description": "HTTP servers and JSON APIs",
				"orderIndex": 1,
				"lessons": [
					{"title": "net/http basics", "description": "Handlers and routing", "orderIndex": 0, "duration": 25}
				]
			}
		]
	},
	"followUpQuestions": ["How many hours per week can you commit?"]
}`

func TestPlanPath_ParsesPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(planJSON)})
	svc := NewService(mock, DefaultConfig(), nil)

	result, err := svc.PlanPath(context.Background(), "I want to learn backend development in Go", nil)
	if err != nil {
		t.Fatalf("PlanPath failed: %v", err)
	}
	if result.LearningPath.Title != "Backend Development with Go" {
		t.Errorf("title = %q", result.LearningPath.Title)
	}
	if len(result.LearningPath.Modules) != 2 {
		t.Fatalf("modules = %d, want 2", len(result.LearningPath.Modules))
	}
	if len(result.LearningPath.Modules[0].Lessons) != 2 {
		t.Errorf("module 0 lessons = %d, want 2", len(result.LearningPath.Modules[0].Lessons))
	}
	if len(result.FollowUpQuestions) != 1 {
		t.Errorf("followUpQuestions = %d, want 1", len(result.FollowUpQuestions))
	}
}

func TestPlanPath_IncludesHistoryAndGoal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(planJSON)})
	svc := NewService(mock, DefaultConfig(), nil)

	history := []Turn{
		{Role: "assistant", Content: "What would you like to learn?"},
		{Role: "user", Content: "Something with servers"},
	}
	if _, err := svc.PlanPath(context.Background(), "Go backend development", history); err != nil {
		t.Fatalf("PlanPath failed: %v", err)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 3 {
		t.Fatalf("messages = %d, want history plus goal", len(req.Messages))
	}
	last := req.Messages[2]
	if last.Role != llm.RoleUser || last.Content != "Go backend development" {
		t.Error("goal should be the final user message")
	}
	if req.Schema != PathPlanSchema {
		t.Error("request should carry the path plan schema")
	}
}

func TestPlanPath_EmptyGoalRejected(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig(), nil)
	if _, err := svc.PlanPath(context.Background(), "  ", nil); err == nil {
		t.Error("empty goal should be rejected without a provider call")
	}
}

func TestPlanPath_EmptyPlanRejected(t *testing.T) {
	empty := `{"learningPath":{"title":"x","description":"","motivation":"career","difficulty":"beginner","estimatedDuration":"","modules":[]},"followUpQuestions":[]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(empty)})
	svc := NewService(mock, DefaultConfig(), nil)

	if _, err := svc.PlanPath(context.Background(), "learn something", nil); err == nil {
		t.Error("plan without modules should be rejected")
	}
}

func TestPlanPath_ProviderErrorPropagates(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig(), nil)
	if _, err := svc.PlanPath(context.Background(), "learn go", nil); err == nil {
		t.Error("provider failure should propagate, there is no default curriculum")
	}
}

func TestGenerateLessonContent(t *testing.T) {
	content := `{
		"introduction": "Slices are Go's dynamic arrays.",
		"sections": [{"type": "concept", "title": "Slice headers", "content": "A slice is a view over an array."}],
		"keyTakeaways": ["Slices share backing arrays"],
		"practicalExercise": {"title": "Build a ring buffer", "description": "...", "instructions": ["Step 1"]},
		"nextSteps": ["Read about maps"]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	svc := NewService(mock, DefaultConfig(), nil)

	doc, err := svc.GenerateLessonContent(context.Background(), LessonInfo{
		Title:       "Slices",
		Description: "Working with slices",
		Difficulty:  "beginner",
		ModuleTitle: "Go Fundamentals",
		PathGoal:    "Backend development",
	})
	if err != nil {
		t.Fatalf("GenerateLessonContent failed: %v", err)
	}
	if doc["introduction"] != "Slices are Go's dynamic arrays." {
		t.Errorf("introduction = %v", doc["introduction"])
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Slices", "beginner", "Go Fundamentals", "Backend development"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
