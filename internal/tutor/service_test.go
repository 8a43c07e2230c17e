package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sagelearn/sage/internal/adaptive"
	"github.com/sagelearn/sage/internal/llm"
	"github.com/sagelearn/sage/internal/store"
)

// fakeTurns is an in-memory TurnRepo.
type fakeTurns struct {
	turns []*store.Turn
	next  int
}

func (f *fakeTurns) Append(_ context.Context, t store.NewTurn) (*store.Turn, error) {
	f.next++
	turn := &store.Turn{
		ID:        fmt.Sprintf("msg-%d", f.next),
		UserID:    t.UserID,
		PathID:    t.PathID,
		LessonID:  t.LessonID,
		Role:      t.Role,
		Content:   t.Content,
		Context:   t.Context,
		CreatedAt: time.Now(),
	}
	f.turns = append(f.turns, turn)
	return turn, nil
}

func (f *fakeTurns) ListByUserPath(_ context.Context, userID, pathID string) ([]*store.Turn, error) {
	var out []*store.Turn
	for _, t := range f.turns {
		if t.UserID == userID && (pathID == "" || t.PathID == pathID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTurns) CountUserTurns(_ context.Context, userID, pathID string) (int, error) {
	n := 0
	for _, t := range f.turns {
		if t.Role == "user" && t.UserID == userID && (pathID == "" || t.PathID == pathID) {
			n++
		}
	}
	return n, nil
}

type fakeSnapshots struct {
	latest  *store.SnapshotRecord
	records []store.NewSnapshot
}

func (f *fakeSnapshots) Record(_ context.Context, s store.NewSnapshot) (*store.SnapshotRecord, error) {
	f.records = append(f.records, s)
	return &store.SnapshotRecord{ID: "snap", UserID: s.UserID, Level: s.Level}, nil
}

func (f *fakeSnapshots) Latest(context.Context, string, string) (*store.SnapshotRecord, error) {
	return f.latest, nil
}

func (f *fakeSnapshots) ListByUserPath(context.Context, string, string) ([]*store.SnapshotRecord, error) {
	return nil, nil
}

const replyJSON = `{"message":"Nice question! A slice header holds a pointer, length, and capacity.","suggestions":["Show me an example","What about maps?"],"contextualHints":["Revisit the arrays section"]}`

const assessmentJSON = `{
	"currentLevel": "struggling",
	"confidence": 0.7,
	"indicators": ["Repeats questions"],
	"recommendations": {"adjustDifficulty": "decrease", "suggestedContent": [], "focusAreas": ["Basics"]},
	"adaptivePrompts": {"nextLesson": "Slow down", "chatPersona": "Extra patient"},
	"inferredLearningStyle": {"primary": "visual", "confidence": 0.4}
}`

const recommendationsJSON = `{"recommendedActions":["Review the basics"],"nextLessonModifications":["Simplify"],"chatSuggestions":["Want a recap?"]}`

// newService wires a tutor service where replyProvider answers the chat
// and analysisProvider backs both adaptive passes.
func newService(replyProvider, analysisProvider *llm.MockProvider, turns *fakeTurns, snaps *fakeSnapshots) *Service {
	adaptiveSvc := adaptive.NewService(
		adaptive.DefaultTriggerPolicy(),
		adaptive.NewLLMClassifier(analysisProvider, adaptive.DefaultClassifierConfig()),
		adaptive.NewLLMRecommender(analysisProvider, adaptive.DefaultRecommenderConfig()),
		snaps,
		nil,
	)
	return NewService(replyProvider, turns, snaps, adaptiveSvc, DefaultConfig(), nil)
}

// seedConversation appends n user/assistant turn pairs.
func seedConversation(t *testing.T, turns *fakeTurns, userID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := turns.Append(context.Background(), store.NewTurn{UserID: userID, Role: "user", Content: fmt.Sprintf("question %d", i+1)}); err != nil {
			t.Fatal(err)
		}
		if _, err := turns.Append(context.Background(), store.NewTurn{UserID: userID, Role: "assistant", Content: fmt.Sprintf("answer %d", i+1)}); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHandleMessage_PlainTurn(t *testing.T) {
	turns := &fakeTurns{}
	reply := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(replyJSON)})
	analysis := llm.NewMockProvider()

	svc := newService(reply, analysis, turns, &fakeSnapshots{})
	resp, err := svc.HandleMessage(context.Background(), ChatRequest{
		UserID:  "u1",
		Message: "What is a slice?",
	})
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if resp.Message == "" {
		t.Error("reply message is empty")
	}
	if len(resp.Suggestions) != 2 {
		t.Errorf("suggestions len = %d, want 2", len(resp.Suggestions))
	}
	if resp.AdaptiveInsights != nil {
		t.Error("first turn should not carry adaptive insights")
	}
	if resp.MessageID != "msg-2" {
		t.Errorf("messageId = %q, want id of the saved assistant turn", resp.MessageID)
	}
	if analysis.CallCount() != 0 {
		t.Errorf("analysis provider calls = %d, want 0 off cadence", analysis.CallCount())
	}

	// Both turns persisted, assistant turn carries the auxiliary context.
	if len(turns.turns) != 2 {
		t.Fatalf("persisted turns = %d, want 2", len(turns.turns))
	}
	last := turns.turns[1]
	if last.Role != "assistant" || last.Context["suggestions"] == nil {
		t.Error("assistant turn should persist suggestions in context")
	}
	if _, ok := last.Context["assessment"]; ok {
		t.Error("off-cadence turn should not persist an assessment")
	}
}

func TestHandleMessage_AnalysisTurn(t *testing.T) {
	turns := &fakeTurns{}
	seedConversation(t, turns, "u1", 4) // this message is the 5th user turn

	reply := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(replyJSON)})
	analysis := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(assessmentJSON)},
		llm.MockResponse{Content: json.RawMessage(recommendationsJSON)},
	)
	snaps := &fakeSnapshots{}

	svc := newService(reply, analysis, turns, snaps)
	resp, err := svc.HandleMessage(context.Background(), ChatRequest{
		UserID:  "u1",
		Message: "I still don't get it",
	})
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if resp.AdaptiveInsights == nil {
		t.Fatal("5th user turn should carry adaptive insights")
	}
	if resp.AdaptiveInsights.Assessment.CurrentLevel != adaptive.LevelStruggling {
		t.Errorf("level = %q, want struggling", resp.AdaptiveInsights.Assessment.CurrentLevel)
	}
	if analysis.CallCount() != 2 {
		t.Errorf("analysis provider calls = %d, want 2 (classify + recommend)", analysis.CallCount())
	}
	if len(snaps.records) != 1 {
		t.Errorf("snapshots recorded = %d, want 1", len(snaps.records))
	}

	// The reply is steered by the struggling persona.
	system := reply.Calls[0].System
	if !strings.Contains(system, "extra patient") {
		t.Errorf("system prompt should carry the struggling persona, got %q", system)
	}

	// The assistant turn persists the assessment alongside the reply context.
	last := turns.turns[len(turns.turns)-1]
	assess, ok := last.Context["assessment"].(map[string]any)
	if !ok {
		t.Fatal("assistant turn should persist the assessment in context")
	}
	if assess["currentLevel"] != "struggling" {
		t.Errorf("persisted level = %v, want struggling", assess["currentLevel"])
	}
	if assess["adjustDifficulty"] != "decrease" {
		t.Errorf("persisted adjustment = %v, want decrease", assess["adjustDifficulty"])
	}
}

func TestHandleMessage_OffCadenceSkipsAnalysis(t *testing.T) {
	turns := &fakeTurns{}
	seedConversation(t, turns, "u1", 3) // this message is the 4th user turn

	reply := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(replyJSON)})
	analysis := llm.NewMockProvider()

	svc := newService(reply, analysis, turns, &fakeSnapshots{})
	resp, err := svc.HandleMessage(context.Background(), ChatRequest{UserID: "u1", Message: "ok"})
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if resp.AdaptiveInsights != nil {
		t.Error("4th user turn should not carry adaptive insights")
	}
	if analysis.CallCount() != 0 {
		t.Errorf("analysis provider calls = %d, want 0", analysis.CallCount())
	}
}

func TestHandleMessage_BrokenAnalysisStillReplies(t *testing.T) {
	turns := &fakeTurns{}
	seedConversation(t, turns, "u1", 4)

	reply := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(replyJSON)})
	// Classifier gets malformed JSON; recommender queue is then empty.
	analysis := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"currentLevel": "exp`)})

	svc := newService(reply, analysis, turns, &fakeSnapshots{})
	resp, err := svc.HandleMessage(context.Background(), ChatRequest{UserID: "u1", Message: "hm"})
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if resp.AdaptiveInsights == nil {
		t.Fatal("analysis turn should still carry insights built from defaults")
	}
	if resp.AdaptiveInsights.Assessment.CurrentLevel != adaptive.LevelComfortable {
		t.Errorf("level = %q, want default comfortable", resp.AdaptiveInsights.Assessment.CurrentLevel)
	}
	if resp.AdaptiveInsights.Recommendations.RecommendedActions[0] != "Continue with current pace" {
		t.Error("recommendations should be the default triple")
	}
}

func TestHandleMessage_ReplyFailureIsFatal(t *testing.T) {
	turns := &fakeTurns{}
	reply := llm.NewMockProvider() // empty queue

	svc := newService(reply, llm.NewMockProvider(), turns, &fakeSnapshots{})
	_, err := svc.HandleMessage(context.Background(), ChatRequest{UserID: "u1", Message: "hi"})
	if err == nil {
		t.Error("reply generation failure should fail the turn")
	}
}

func TestHandleMessage_ValidatesInput(t *testing.T) {
	svc := newService(llm.NewMockProvider(), llm.NewMockProvider(), &fakeTurns{}, &fakeSnapshots{})

	if _, err := svc.HandleMessage(context.Background(), ChatRequest{UserID: "u1"}); err == nil {
		t.Error("empty message should be rejected")
	}
	if _, err := svc.HandleMessage(context.Background(), ChatRequest{Message: "hi"}); err == nil {
		t.Error("missing userId should be rejected")
	}
}

func TestHandleMessage_PersonaFromLatestSnapshot(t *testing.T) {
	turns := &fakeTurns{}
	snaps := &fakeSnapshots{latest: &store.SnapshotRecord{Level: "mastery"}}
	reply := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(replyJSON)})

	svc := newService(reply, llm.NewMockProvider(), turns, snaps)
	if _, err := svc.HandleMessage(context.Background(), ChatRequest{UserID: "u1", Message: "hi"}); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	system := reply.Calls[0].System
	if !strings.Contains(system, "mastered the current material") {
		t.Errorf("system prompt should carry the mastery persona on off-cadence turns, got %q", system)
	}
}

func TestReplyMessages_WindowAndDedup(t *testing.T) {
	var history []*store.Turn
	for i := 0; i < 15; i++ {
		history = append(history, &store.Turn{Role: "user", Content: fmt.Sprintf("q%d", i)})
		history = append(history, &store.Turn{Role: "assistant", Content: fmt.Sprintf("a%d", i)})
	}
	history = append(history, &store.Turn{Role: "user", Content: "current"})

	messages := replyMessages(history, "current")

	// Window of 10 prior turns plus the current message.
	if len(messages) != historyWindow+1 {
		t.Fatalf("messages len = %d, want %d", len(messages), historyWindow+1)
	}
	last := messages[len(messages)-1]
	if last.Role != llm.RoleUser || last.Content != "current" {
		t.Error("current message should be last")
	}
	// The just-appended duplicate must not appear twice.
	count := 0
	for _, m := range messages {
		if m.Content == "current" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("current message appears %d times, want 1", count)
	}
}
