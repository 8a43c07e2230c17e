package adaptive

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sagelearn/sage/internal/llm"
)

const recommendationsJSON = `{
	"recommendedActions": ["Review pointer semantics", "Try the practice set"],
	"nextLessonModifications": ["Add a worked example"],
	"chatSuggestions": ["Can you explain what a nil pointer is?"]
}`

func TestLLMRecommender_ParsesRecommendations(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(recommendationsJSON)})
	r := NewLLMRecommender(mock, DefaultRecommenderConfig())

	recs, err := r.Recommend(context.Background(), RecommendInput{
		Assessment: DefaultAssessment(),
		Lesson:     LessonContext{Title: "Pointers"},
		Progress:   ProgressContext{Completed: 3, Total: 8},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs.RecommendedActions) != 2 {
		t.Errorf("recommendedActions len = %d, want 2", len(recs.RecommendedActions))
	}
	if recs.ChatSuggestions[0] != "Can you explain what a nil pointer is?" {
		t.Errorf("chatSuggestions[0] = %q", recs.ChatSuggestions[0])
	}
}

func TestLLMRecommender_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	r := NewLLMRecommender(mock, DefaultRecommenderConfig())

	_, err := r.Recommend(context.Background(), RecommendInput{Assessment: DefaultAssessment()})
	if err == nil {
		t.Error("expected error from empty mock provider")
	}
}

func TestBuildRecommendMessage(t *testing.T) {
	a := DefaultAssessment()
	a.CurrentLevel = LevelStruggling
	a.Indicators = []string{"Repeats the same question"}
	a.Recommendations.FocusAreas = []string{"Loops"}

	msg := buildRecommendMessage(RecommendInput{
		Assessment: a,
		Lesson:     LessonContext{Title: "For loops"},
		Progress:   ProgressContext{Completed: 2, Total: 10},
	})

	for _, want := range []string{"struggling", "Repeats the same question", "Loops", "For loops", "2/10"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestDefaultRecommendations_FixedTriple(t *testing.T) {
	recs := DefaultRecommendations()
	if recs.RecommendedActions[0] != "Continue with current pace" {
		t.Errorf("recommendedActions[0] = %q", recs.RecommendedActions[0])
	}
	if recs.NextLessonModifications[0] != "No modifications needed" {
		t.Errorf("nextLessonModifications[0] = %q", recs.NextLessonModifications[0])
	}
	if recs.ChatSuggestions[0] != "How are you finding this lesson?" {
		t.Errorf("chatSuggestions[0] = %q", recs.ChatSuggestions[0])
	}
}
