package adaptive

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sagelearn/sage/internal/llm"
	"github.com/sagelearn/sage/internal/store"
)

// hangingProvider blocks until the context is done.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingProvider) ModelID() string { return "hanging" }

// fakeSnapshots records snapshot writes in memory.
type fakeSnapshots struct {
	records []store.NewSnapshot
	err     error
}

func (f *fakeSnapshots) Record(_ context.Context, s store.NewSnapshot) (*store.SnapshotRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.records = append(f.records, s)
	return &store.SnapshotRecord{ID: "snap-1", UserID: s.UserID, Level: s.Level}, nil
}

func (f *fakeSnapshots) Latest(context.Context, string, string) (*store.SnapshotRecord, error) {
	return nil, nil
}

func (f *fakeSnapshots) ListByUserPath(context.Context, string, string) ([]*store.SnapshotRecord, error) {
	return nil, nil
}

func newTestService(classifierMock, recommenderMock *llm.MockProvider, snaps store.SnapshotRepo) *Service {
	return NewService(
		DefaultTriggerPolicy(),
		NewLLMClassifier(classifierMock, DefaultClassifierConfig()),
		NewLLMRecommender(recommenderMock, DefaultRecommenderConfig()),
		snaps,
		nil,
	)
}

func historyWithUserTurns(n int) []*store.Turn {
	var out []*store.Turn
	for i := 0; i < n; i++ {
		out = append(out, &store.Turn{Role: "user", Content: "question"})
		out = append(out, &store.Turn{Role: "assistant", Content: "answer"})
	}
	return out
}

func TestService_AnalyzeIfDue_NotDue(t *testing.T) {
	cm := llm.NewMockProvider()
	rm := llm.NewMockProvider()
	svc := newTestService(cm, rm, &fakeSnapshots{})

	analysis, err := svc.AnalyzeIfDue(context.Background(), AnalyzeRequest{
		UserID:  "u1",
		History: historyWithUserTurns(4),
	})
	if err != nil {
		t.Fatalf("AnalyzeIfDue failed: %v", err)
	}
	if analysis != nil {
		t.Error("analysis should be nil when trigger is not due")
	}
	if cm.CallCount() != 0 || rm.CallCount() != 0 {
		t.Error("no provider call should happen when trigger is not due")
	}
}

func TestService_AnalyzeIfDue_FullPass(t *testing.T) {
	cm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	rm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(recommendationsJSON)})
	snaps := &fakeSnapshots{}
	svc := newTestService(cm, rm, snaps)

	analysis, err := svc.AnalyzeIfDue(context.Background(), AnalyzeRequest{
		UserID:  "u1",
		PathID:  "p1",
		History: historyWithUserTurns(5),
		Lesson:  LessonContext{ID: "l1", Title: "Channels"},
	})
	if err != nil {
		t.Fatalf("AnalyzeIfDue failed: %v", err)
	}
	if analysis == nil {
		t.Fatal("analysis should run on the 5th user turn")
	}
	if analysis.Assessment.CurrentLevel != LevelAdvanced {
		t.Errorf("level = %q, want advanced", analysis.Assessment.CurrentLevel)
	}
	if analysis.Persona != PersonaFor(LevelAdvanced) {
		t.Error("persona should match the assessed level")
	}
	if len(analysis.Recommendations.RecommendedActions) == 0 {
		t.Error("recommendations should be populated")
	}

	if len(snaps.records) != 1 {
		t.Fatalf("snapshots recorded = %d, want 1", len(snaps.records))
	}
	snap := snaps.records[0]
	if snap.UserID != "u1" || snap.PathID != "p1" || snap.LessonID != "l1" {
		t.Errorf("snapshot keys = %s/%s/%s", snap.UserID, snap.PathID, snap.LessonID)
	}
	if snap.Level != "advanced" || snap.Confidence != 0.85 {
		t.Errorf("snapshot level/confidence = %s/%f", snap.Level, snap.Confidence)
	}
	if snap.Assessment["currentLevel"] != "advanced" {
		t.Error("snapshot should embed the full assessment payload")
	}
}

func TestService_ClassifierFailureDegradesToDefault(t *testing.T) {
	cm := llm.NewMockProvider() // empty queue, Generate errors
	rm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(recommendationsJSON)})
	svc := newTestService(cm, rm, &fakeSnapshots{})

	analysis, err := svc.AnalyzeIfDue(context.Background(), AnalyzeRequest{
		UserID:  "u1",
		History: historyWithUserTurns(5),
	})
	if err != nil {
		t.Fatalf("AnalyzeIfDue failed: %v", err)
	}
	if analysis == nil {
		t.Fatal("analysis should still be produced")
	}
	if analysis.Assessment.CurrentLevel != LevelComfortable {
		t.Errorf("level = %q, want default comfortable", analysis.Assessment.CurrentLevel)
	}
	if analysis.Persona != PersonaFor(LevelComfortable) {
		t.Error("persona should derive from the default assessment")
	}
}

func TestService_HungClassifierTimesOutToDefault(t *testing.T) {
	classifier := NewLLMClassifier(
		llm.WithTimeout(hangingProvider{}, 10*time.Millisecond),
		DefaultClassifierConfig(),
	)
	rm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(recommendationsJSON)})
	svc := NewService(DefaultTriggerPolicy(), classifier, NewLLMRecommender(rm, DefaultRecommenderConfig()), &fakeSnapshots{}, nil)

	start := time.Now()
	analysis, err := svc.AnalyzeIfDue(context.Background(), AnalyzeRequest{
		UserID:  "u1",
		History: historyWithUserTurns(5),
	})
	if err != nil {
		t.Fatalf("AnalyzeIfDue failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("analysis took %v, deadline not enforced", elapsed)
	}
	if analysis == nil {
		t.Fatal("analysis should still be produced")
	}
	if analysis.Assessment.CurrentLevel != LevelComfortable {
		t.Errorf("level = %q, want default comfortable after timeout", analysis.Assessment.CurrentLevel)
	}
}

func TestService_RecommenderFailureDegradesToDefault(t *testing.T) {
	cm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	rm := llm.NewMockProvider() // empty queue
	svc := newTestService(cm, rm, &fakeSnapshots{})

	analysis, err := svc.AnalyzeIfDue(context.Background(), AnalyzeRequest{
		UserID:  "u1",
		History: historyWithUserTurns(5),
	})
	if err != nil {
		t.Fatalf("AnalyzeIfDue failed: %v", err)
	}
	if analysis.Recommendations.RecommendedActions[0] != "Continue with current pace" {
		t.Error("recommendations should degrade to the default triple")
	}
	// The assessment itself survives the recommendation failure.
	if analysis.Assessment.CurrentLevel != LevelAdvanced {
		t.Errorf("level = %q, want advanced", analysis.Assessment.CurrentLevel)
	}
}

func TestService_SnapshotFailureIsSoft(t *testing.T) {
	cm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	rm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(recommendationsJSON)})
	svc := newTestService(cm, rm, &fakeSnapshots{err: errors.New("disk full")})

	analysis, err := svc.AnalyzeIfDue(context.Background(), AnalyzeRequest{
		UserID:  "u1",
		History: historyWithUserTurns(5),
	})
	if err != nil {
		t.Fatalf("AnalyzeIfDue failed: %v", err)
	}
	if analysis == nil || analysis.Assessment.CurrentLevel != LevelAdvanced {
		t.Error("snapshot failure must not affect the analysis result")
	}
}

func TestService_NilSnapshotRepo(t *testing.T) {
	cm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	rm := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(recommendationsJSON)})
	svc := newTestService(cm, rm, nil)

	analysis, err := svc.AnalyzeIfDue(context.Background(), AnalyzeRequest{
		UserID:  "u1",
		History: historyWithUserTurns(5),
	})
	if err != nil {
		t.Fatalf("AnalyzeIfDue failed: %v", err)
	}
	if analysis == nil {
		t.Fatal("analysis should run without a snapshot repo")
	}
}
