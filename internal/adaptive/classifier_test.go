package adaptive

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sagelearn/sage/internal/llm"
	"github.com/sagelearn/sage/internal/store"
)

const assessmentJSON = `{
	"currentLevel": "advanced",
	"confidence": 0.85,
	"indicators": ["Asks about edge cases", "Uses correct terminology"],
	"recommendations": {
		"adjustDifficulty": "increase",
		"suggestedContent": ["Concurrency patterns"],
		"focusAreas": ["Error handling"]
	},
	"adaptivePrompts": {
		"nextLesson": "Introduce more advanced material",
		"chatPersona": "Challenge with deeper questions"
	},
	"inferredLearningStyle": {"primary": "hands-on", "confidence": 0.6}
}`

func turns(roleContent ...string) []*store.Turn {
	var out []*store.Turn
	for i := 0; i+1 < len(roleContent); i += 2 {
		out = append(out, &store.Turn{Role: roleContent[i], Content: roleContent[i+1]})
	}
	return out
}

func TestLLMClassifier_ParsesAssessment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := ClassifyInput{
		History: turns(
			"user", "How does goroutine scheduling interact with channel sends?",
			"assistant", "Great question. A send blocks until...",
			"user", "So a buffered channel decouples them until the buffer fills?",
		),
		Lesson: LessonContext{Title: "Channels", Difficulty: "intermediate"},
		Module: ModuleContext{Title: "Concurrency"},
	}

	a, err := c.Classify(context.Background(), input)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if a.CurrentLevel != LevelAdvanced {
		t.Errorf("currentLevel = %q, want %q", a.CurrentLevel, LevelAdvanced)
	}
	if a.Confidence != 0.85 {
		t.Errorf("confidence = %f, want 0.85", a.Confidence)
	}
	if a.Recommendations.AdjustDifficulty != AdjustIncrease {
		t.Errorf("adjustDifficulty = %q, want %q", a.Recommendations.AdjustDifficulty, AdjustIncrease)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestLLMClassifier_InsufficientEvidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := ClassifyInput{
		History: turns(
			"user", "Hi!",
			"assistant", "Hello, ready to learn?",
		),
	}

	a, err := c.Classify(context.Background(), input)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if a.CurrentLevel != LevelComfortable || a.Confidence != 0.5 {
		t.Errorf("got %q/%f, want default comfortable/0.5", a.CurrentLevel, a.Confidence)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0 below evidence floor", mock.CallCount())
	}
}

func TestLLMClassifier_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := ClassifyInput{History: turns("user", "a", "user", "b")}
	if _, err := c.Classify(context.Background(), input); err == nil {
		t.Error("expected error from empty mock provider")
	}
}

func TestLLMClassifier_UndefinedLevelRejected(t *testing.T) {
	bad := strings.Replace(assessmentJSON, `"advanced"`, `"expert"`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := ClassifyInput{History: turns("user", "a", "user", "b")}
	if _, err := c.Classify(context.Background(), input); err == nil {
		t.Error("expected error for undefined level")
	}
}

func TestLLMClassifier_ClampsConfidence(t *testing.T) {
	hot := strings.Replace(assessmentJSON, `"confidence": 0.85`, `"confidence": 1.7`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(hot)})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := ClassifyInput{History: turns("user", "a", "user", "b")}
	a, err := c.Classify(context.Background(), input)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if a.Confidence != 1.0 {
		t.Errorf("confidence = %f, want clamped to 1.0", a.Confidence)
	}
}

func TestLLMClassifier_TemperatureCapped(t *testing.T) {
	cfg := DefaultClassifierConfig()
	cfg.Temperature = 0.9
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	c := NewLLMClassifier(mock, cfg)

	input := ClassifyInput{History: turns("user", "a", "user", "b")}
	if _, err := c.Classify(context.Background(), input); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got := mock.Calls[0].Temperature; got > maxClassifierTemperature {
		t.Errorf("request temperature = %f, want <= %f", got, maxClassifierTemperature)
	}
}

func TestLLMClassifier_WindowBoundsHistory(t *testing.T) {
	var history []*store.Turn
	for i := 0; i < 30; i++ {
		history = append(history, &store.Turn{Role: "user", Content: "user message " + string(rune('a'+i))})
		history = append(history, &store.Turn{Role: "assistant", Content: "reply " + string(rune('a'+i))})
	}

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	if _, err := c.Classify(context.Background(), ClassifyInput{History: history}); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "user message a") {
		t.Error("prompt should not contain turns outside the window")
	}
	// The 21st of 30 user turns (index 20, rune 'u') is inside the last 10.
	if !strings.Contains(prompt, "user message u") {
		t.Error("prompt should contain the most recent window of user turns")
	}
}

func TestBuildClassifyMessage_TruncatesAssistantReplies(t *testing.T) {
	long := strings.Repeat("x", 500)
	msg := buildClassifyMessage(ClassifyInput{}, []string{"short question"}, []string{long})

	if strings.Contains(msg, long) {
		t.Error("assistant reply should be truncated in the prompt")
	}
	if !strings.Contains(msg, strings.Repeat("x", assistantExcerptLen)+"...") {
		t.Error("truncated reply should end with ellipsis")
	}
	if !strings.Contains(msg, "short question") {
		t.Error("user messages are never truncated")
	}
}
