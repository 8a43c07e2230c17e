package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelearn/sage/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestUserCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing, "absent user should be (nil, nil)")

	created, err := repo.Create(ctx, NewUser{Username: "ada", Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@example.com", got.Email)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestTurnAppendOrderAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.TurnRepo()
	ctx := context.Background()

	for _, turn := range []NewTurn{
		{UserID: "u1", PathID: "p1", Role: "user", Content: "first"},
		{UserID: "u1", PathID: "p1", Role: "assistant", Content: "reply"},
		{UserID: "u1", PathID: "p1", Role: "user", Content: "second"},
		{UserID: "u1", PathID: "p2", Role: "user", Content: "other path"},
		{UserID: "u2", PathID: "p1", Role: "user", Content: "other user"},
	} {
		_, err := repo.Append(ctx, turn)
		require.NoError(t, err)
	}

	turns, err := repo.ListByUserPath(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "first", turns[0].Content, "turns should come back in creation order")
	assert.Equal(t, "second", turns[2].Content)

	n, err := repo.CountUserTurns(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "assistant turns must not count")

	// Empty path matches all of the user's turns.
	all, err := repo.ListByUserPath(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSnapshotRecordAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	latest, err := repo.Latest(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Nil(t, latest, "no snapshot yet")

	_, err = repo.Record(ctx, NewSnapshot{
		UserID: "u1", PathID: "p1", Level: "comfortable", Confidence: 0.5,
		Assessment: map[string]any{"currentLevel": "comfortable"},
	})
	require.NoError(t, err)

	_, err = repo.Record(ctx, NewSnapshot{
		UserID: "u1", PathID: "p1", Level: "advanced", Confidence: 0.8,
		Assessment: map[string]any{"currentLevel": "advanced"},
	})
	require.NoError(t, err)

	latest, err = repo.Latest(ctx, "u1", "p1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "advanced", latest.Level, "latest snapshot wins")

	history, err := repo.ListByUserPath(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "comfortable", history[0].Level, "history in creation order")
}

func TestPathModuleLessonRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	path, err := repo.CreatePath(ctx, NewPath{
		UserID: "u1", Title: "Go Backend", Goal: "learn go", Difficulty: "beginner",
	})
	require.NoError(t, err)

	mod, err := repo.CreateModule(ctx, NewModule{
		PathID: path.ID, Title: "Basics", OrderIndex: 0, TotalLessons: 1,
	})
	require.NoError(t, err)

	lesson, err := repo.CreateLesson(ctx, NewLesson{
		ModuleID: mod.ID, Title: "Hello", OrderIndex: 0, Duration: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, lesson.Content, "content starts empty")

	content := map[string]any{"introduction": "Welcome"}
	updated, err := repo.UpdateLesson(ctx, lesson.ID, LessonPatch{Content: &content})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Welcome", updated.Content["introduction"])

	done := true
	patchedMod, err := repo.UpdateModule(ctx, mod.ID, ModulePatch{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, patchedMod.IsCompleted)

	mods, err := repo.ListPathModules(ctx, path.ID)
	require.NoError(t, err)
	require.Len(t, mods, 1)

	lessons, err := repo.ListModuleLessons(ctx, mod.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, llm.RequestEvent{
		Provider: "openai", Model: "gpt-4o", Purpose: "difficulty-analysis",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 900, Success: true,
		RequestBody: "[user]\nhi", ResponseBody: `{"ok":true}`,
	})
	require.NoError(t, err)

	err = repo.AppendLLMRequest(ctx, llm.RequestEvent{
		Provider: "openai", Model: "gpt-4o", Purpose: "chat-reply",
		Success: false, ErrorMessage: "rate limited",
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "chat-reply", events[0].Purpose, "newest first")

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "difficulty-analysis"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	full, err := repo.GetLLMEvent(ctx, filtered[0].ID)
	require.NoError(t, err)
	require.NotNil(t, full)
	assert.Equal(t, `{"ok":true}`, full.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
