package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sagelearn/sage/internal/adaptive"
	"github.com/sagelearn/sage/internal/curriculum"
	"github.com/sagelearn/sage/internal/llm"
	"github.com/sagelearn/sage/internal/store"
	"github.com/sagelearn/sage/internal/tutor"
)

const replyJSON = `{"message":"Happy to help!","suggestions":["Tell me more"],"contextualHints":["See the intro section"]}`

const assessmentJSON = `{
	"currentLevel": "advanced",
	"confidence": 0.8,
	"indicators": ["Precise questions"],
	"recommendations": {"adjustDifficulty": "increase", "suggestedContent": [], "focusAreas": []},
	"adaptivePrompts": {"nextLesson": "Go deeper", "chatPersona": "Challenge them"},
	"inferredLearningStyle": {"primary": "reading", "confidence": 0.5}
}`

const recommendationsJSON = `{"recommendedActions":["Try a harder exercise"],"nextLessonModifications":["Add depth"],"chatSuggestions":["Ready for a challenge?"]}`

type testEnv struct {
	mem        *memStore
	reply      *llm.MockProvider
	analysis   *llm.MockProvider
	curriculum *llm.MockProvider
	server     *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mem := newMemStore()
	turns := &memTurns{s: mem}
	snapshots := &memSnapshots{s: mem}

	env := &testEnv{
		mem:        mem,
		reply:      llm.NewMockProvider(),
		analysis:   llm.NewMockProvider(),
		curriculum: llm.NewMockProvider(),
	}

	adaptiveSvc := adaptive.NewService(
		adaptive.DefaultTriggerPolicy(),
		adaptive.NewLLMClassifier(env.analysis, adaptive.DefaultClassifierConfig()),
		adaptive.NewLLMRecommender(env.analysis, adaptive.DefaultRecommenderConfig()),
		snapshots,
		nil,
	)
	tutorSvc := tutor.NewService(env.reply, turns, snapshots, adaptiveSvc, tutor.DefaultConfig(), nil)
	curriculumSvc := curriculum.NewService(env.curriculum, curriculum.DefaultConfig(), nil)

	srv := NewServer(Deps{
		Users:      mem,
		Paths:      mem,
		Turns:      turns,
		Snapshots:  snapshots,
		Portfolio:  mem,
		Tutor:      tutorSvc,
		Curriculum: curriculumSvc,
	})

	env.server = httptest.NewServer(srv.Handler())
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(e.server.URL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func (e *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(e.server.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestUsers_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	resp := env.post(t, "/api/users", store.NewUser{Username: "ada", Email: "ada@example.com", Name: "Ada"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	user := decode[store.User](t, resp)
	if user.ID == "" {
		t.Fatal("created user has no id")
	}

	resp = env.get(t, "/api/users/"+user.ID)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("get status = %d", resp.StatusCode)
	}
	got := decode[store.User](t, resp)
	if got.Email != "ada@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	resp = env.get(t, "/api/users/email/ada@example.com")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("get by email status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestUsers_NotFound(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/api/users/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestUsers_InvalidData(t *testing.T) {
	env := newTestEnv(t)
	resp := env.post(t, "/api/users", map[string]string{"name": "no username"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestOnboarding_RequiresGoal(t *testing.T) {
	env := newTestEnv(t)
	resp := env.post(t, "/api/onboarding/process", map[string]string{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLearningPaths_CreateWithModules(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{
		"userId":     "u1",
		"title":      "Go Backend",
		"goal":       "learn go",
		"difficulty": "beginner",
		"modules": []map[string]any{
			{
				"title":      "Basics",
				"orderIndex": 0,
				"lessons": []map[string]any{
					{"title": "Hello", "orderIndex": 0, "duration": 10},
					{"title": "Types", "orderIndex": 1, "duration": 15},
				},
			},
		},
	}

	resp := env.post(t, "/api/learning-paths", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	path := decode[store.LearningPath](t, resp)

	resp = env.get(t, "/api/learning-paths/"+path.ID)
	type pathWithModules struct {
		store.LearningPath
		Modules []store.Module `json:"modules"`
	}
	got := decode[pathWithModules](t, resp)
	if len(got.Modules) != 1 {
		t.Fatalf("modules = %d, want 1", len(got.Modules))
	}
	if got.Modules[0].TotalLessons != 2 {
		t.Errorf("totalLessons = %d, want 2", got.Modules[0].TotalLessons)
	}

	resp = env.get(t, "/api/modules/"+got.Modules[0].ID)
	type moduleWithLessons struct {
		store.Module
		Lessons []store.Lesson `json:"lessons"`
	}
	mod := decode[moduleWithLessons](t, resp)
	if len(mod.Lessons) != 2 {
		t.Errorf("lessons = %d, want 2", len(mod.Lessons))
	}
}

func TestLessons_LazyContentGeneration(t *testing.T) {
	env := newTestEnv(t)

	ctx := context.Background()
	path, _ := env.mem.CreatePath(ctx, store.NewPath{UserID: "u1", Title: "Go", Goal: "learn go", Difficulty: "beginner"})
	mod, _ := env.mem.CreateModule(ctx, store.NewModule{PathID: path.ID, Title: "Basics"})
	lesson, _ := env.mem.CreateLesson(ctx, store.NewLesson{ModuleID: mod.ID, Title: "Hello"})

	content := `{"introduction":"Welcome","sections":[],"keyTakeaways":[],"practicalExercise":{"title":"","description":"","instructions":[]},"nextSteps":[]}`
	env.curriculum.AddResponse(llm.MockResponse{Content: json.RawMessage(content)})

	resp := env.get(t, "/api/lessons/"+lesson.ID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	got := decode[store.Lesson](t, resp)
	if got.Content["introduction"] != "Welcome" {
		t.Errorf("content not generated: %v", got.Content)
	}

	// Second fetch serves the stored content without another provider call.
	resp = env.get(t, "/api/lessons/"+lesson.ID)
	resp.Body.Close()
	if env.curriculum.CallCount() != 1 {
		t.Errorf("curriculum provider calls = %d, want 1", env.curriculum.CallCount())
	}
}

func TestChat_RequiresMessageAndUser(t *testing.T) {
	env := newTestEnv(t)
	resp := env.post(t, "/api/chat", map[string]string{"message": "hi"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestChat_TurnWithAdaptiveInsights(t *testing.T) {
	env := newTestEnv(t)

	// Off-cadence turns reply without analysis.
	for i := 0; i < 4; i++ {
		env.reply.AddResponse(llm.MockResponse{Content: json.RawMessage(replyJSON)})
		resp := env.post(t, "/api/chat", map[string]string{"userId": "u1", "message": fmt.Sprintf("question %d", i+1)})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("turn %d status = %d", i+1, resp.StatusCode)
		}
		chat := decode[tutor.ChatResponse](t, resp)
		if chat.AdaptiveInsights != nil {
			t.Fatalf("turn %d should not carry insights", i+1)
		}
	}
	if env.analysis.CallCount() != 0 {
		t.Fatalf("analysis calls = %d before 5th turn", env.analysis.CallCount())
	}

	// 5th user turn triggers the adaptive pass.
	env.reply.AddResponse(llm.MockResponse{Content: json.RawMessage(replyJSON)})
	env.analysis.AddResponse(llm.MockResponse{Content: json.RawMessage(assessmentJSON)})
	env.analysis.AddResponse(llm.MockResponse{Content: json.RawMessage(recommendationsJSON)})

	resp := env.post(t, "/api/chat", map[string]string{"userId": "u1", "message": "question 5"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	chat := decode[tutor.ChatResponse](t, resp)
	if chat.AdaptiveInsights == nil {
		t.Fatal("5th turn should carry insights")
	}
	if chat.AdaptiveInsights.Assessment.CurrentLevel != adaptive.LevelAdvanced {
		t.Errorf("level = %q", chat.AdaptiveInsights.Assessment.CurrentLevel)
	}
	if chat.MessageID == "" {
		t.Error("messageId missing")
	}

	// Snapshot recorded and served by the insights endpoint.
	resp = env.get(t, "/api/insights/user/u1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("insights status = %d", resp.StatusCode)
	}
	snap := decode[store.SnapshotRecord](t, resp)
	if snap.Level != "advanced" {
		t.Errorf("snapshot level = %q", snap.Level)
	}
}

func TestChat_BrokenAnalysisStillSucceeds(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 4; i++ {
		env.reply.AddResponse(llm.MockResponse{Content: json.RawMessage(replyJSON)})
		resp := env.post(t, "/api/chat", map[string]string{"userId": "u1", "message": "q"})
		resp.Body.Close()
	}

	// Analysis turn: classifier returns garbage, recommender queue empty.
	env.reply.AddResponse(llm.MockResponse{Content: json.RawMessage(replyJSON)})
	env.analysis.AddResponse(llm.MockResponse{Content: json.RawMessage(`not json`)})

	resp := env.post(t, "/api/chat", map[string]string{"userId": "u1", "message": "q5"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite broken analysis", resp.StatusCode)
	}
	chat := decode[tutor.ChatResponse](t, resp)
	if chat.AdaptiveInsights == nil {
		t.Fatal("insights should still be present, built from defaults")
	}
	if chat.AdaptiveInsights.Assessment.CurrentLevel != adaptive.LevelComfortable {
		t.Errorf("level = %q, want default comfortable", chat.AdaptiveInsights.Assessment.CurrentLevel)
	}
}

func TestChat_ReplyFailureIs500(t *testing.T) {
	env := newTestEnv(t)
	resp := env.post(t, "/api/chat", map[string]string{"userId": "u1", "message": "hello"})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when reply generation fails", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestChat_History(t *testing.T) {
	env := newTestEnv(t)

	env.reply.AddResponse(llm.MockResponse{Content: json.RawMessage(replyJSON)})
	resp := env.post(t, "/api/chat", map[string]string{"userId": "u1", "message": "hello"})
	resp.Body.Close()

	resp = env.get(t, "/api/chat/user/u1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	messages := decode[[]store.Turn](t, resp)
	if len(messages) != 2 {
		t.Fatalf("messages = %d, want user + assistant", len(messages))
	}
	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Error("messages should be in creation order")
	}
}

func TestInsights_NotFound(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/api/insights/user/u1")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestProjects_CreateAndList(t *testing.T) {
	env := newTestEnv(t)

	resp := env.post(t, "/api/projects", store.Project{UserID: "u1", Title: "CLI tool", Technologies: []string{"go"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.get(t, "/api/projects/user/u1")
	projects := decode[[]store.Project](t, resp)
	if len(projects) != 1 {
		t.Errorf("projects = %d, want 1", len(projects))
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp := env.get(t, "/health")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["status"] != "healthy" {
		t.Errorf("status body = %v", body)
	}
}
