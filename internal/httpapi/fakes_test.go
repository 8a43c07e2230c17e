package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/sagelearn/sage/internal/store"
)

// memStore is an in-memory implementation of the repo interfaces for
// handler tests.
type memStore struct {
	seq       int
	users     map[string]*store.User
	paths     map[string]*store.LearningPath
	modules   map[string]*store.Module
	lessons   map[string]*store.Lesson
	turns     []*store.Turn
	snapshots []*store.SnapshotRecord
	projects  []*store.Project
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*store.User),
		paths:   make(map[string]*store.LearningPath),
		modules: make(map[string]*store.Module),
		lessons: make(map[string]*store.Lesson),
	}
}

func (m *memStore) id(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) Create(_ context.Context, u store.NewUser) (*store.User, error) {
	user := &store.User{
		ID:        m.id("user"),
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: time.Now(),
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memStore) Get(_ context.Context, id string) (*store.User, error) {
	return m.users[id], nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*store.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreatePath(_ context.Context, p store.NewPath) (*store.LearningPath, error) {
	path := &store.LearningPath{
		ID:          m.id("path"),
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		Goal:        p.Goal,
		Motivation:  p.Motivation,
		Difficulty:  p.Difficulty,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	m.paths[path.ID] = path
	return path, nil
}

func (m *memStore) GetPath(_ context.Context, id string) (*store.LearningPath, error) {
	return m.paths[id], nil
}

func (m *memStore) ListUserPaths(_ context.Context, userID string) ([]*store.LearningPath, error) {
	var out []*store.LearningPath
	for _, p := range m.paths {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) CreateModule(_ context.Context, mod store.NewModule) (*store.Module, error) {
	module := &store.Module{
		ID:           m.id("module"),
		PathID:       mod.PathID,
		Title:        mod.Title,
		Description:  mod.Description,
		OrderIndex:   mod.OrderIndex,
		TotalLessons: mod.TotalLessons,
	}
	m.modules[module.ID] = module
	return module, nil
}

func (m *memStore) GetModule(_ context.Context, id string) (*store.Module, error) {
	return m.modules[id], nil
}

func (m *memStore) UpdateModule(_ context.Context, id string, patch store.ModulePatch) (*store.Module, error) {
	module := m.modules[id]
	if module == nil {
		return nil, nil
	}
	if patch.IsCompleted != nil {
		module.IsCompleted = *patch.IsCompleted
	}
	if patch.IsUnlocked != nil {
		module.IsUnlocked = *patch.IsUnlocked
	}
	if patch.CompletedLessons != nil {
		module.CompletedLessons = *patch.CompletedLessons
	}
	return module, nil
}

func (m *memStore) ListPathModules(_ context.Context, pathID string) ([]*store.Module, error) {
	var out []*store.Module
	for _, mod := range m.modules {
		if mod.PathID == pathID {
			out = append(out, mod)
		}
	}
	return out, nil
}

func (m *memStore) CreateLesson(_ context.Context, l store.NewLesson) (*store.Lesson, error) {
	lesson := &store.Lesson{
		ID:          m.id("lesson"),
		ModuleID:    l.ModuleID,
		Title:       l.Title,
		Description: l.Description,
		OrderIndex:  l.OrderIndex,
		Duration:    l.Duration,
	}
	m.lessons[lesson.ID] = lesson
	return lesson, nil
}

func (m *memStore) GetLesson(_ context.Context, id string) (*store.Lesson, error) {
	return m.lessons[id], nil
}

func (m *memStore) UpdateLesson(_ context.Context, id string, patch store.LessonPatch) (*store.Lesson, error) {
	lesson := m.lessons[id]
	if lesson == nil {
		return nil, nil
	}
	if patch.Content != nil {
		lesson.Content = *patch.Content
	}
	if patch.IsCompleted != nil {
		lesson.IsCompleted = *patch.IsCompleted
	}
	return lesson, nil
}

func (m *memStore) ListModuleLessons(_ context.Context, moduleID string) ([]*store.Lesson, error) {
	var out []*store.Lesson
	for _, l := range m.lessons {
		if l.ModuleID == moduleID {
			out = append(out, l)
		}
	}
	return out, nil
}

// memTurns and memSnapshots expose the turn and snapshot repos over the
// shared memStore. They are separate types because both interfaces name
// a ListByUserPath method.
type memTurns struct{ s *memStore }

func (m *memTurns) Append(_ context.Context, t store.NewTurn) (*store.Turn, error) {
	turn := &store.Turn{
		ID:        m.s.id("msg"),
		UserID:    t.UserID,
		PathID:    t.PathID,
		LessonID:  t.LessonID,
		Role:      t.Role,
		Content:   t.Content,
		Context:   t.Context,
		CreatedAt: time.Now(),
	}
	m.s.turns = append(m.s.turns, turn)
	return turn, nil
}

func (m *memTurns) ListByUserPath(_ context.Context, userID, pathID string) ([]*store.Turn, error) {
	var out []*store.Turn
	for _, t := range m.s.turns {
		if t.UserID == userID && (pathID == "" || t.PathID == pathID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTurns) CountUserTurns(_ context.Context, userID, pathID string) (int, error) {
	n := 0
	for _, t := range m.s.turns {
		if t.Role == "user" && t.UserID == userID && (pathID == "" || t.PathID == pathID) {
			n++
		}
	}
	return n, nil
}

type memSnapshots struct{ s *memStore }

func (m *memSnapshots) Record(_ context.Context, s store.NewSnapshot) (*store.SnapshotRecord, error) {
	snap := &store.SnapshotRecord{
		ID:         m.s.id("snap"),
		UserID:     s.UserID,
		PathID:     s.PathID,
		LessonID:   s.LessonID,
		Level:      s.Level,
		Confidence: s.Confidence,
		Assessment: s.Assessment,
		CreatedAt:  time.Now(),
	}
	m.s.snapshots = append(m.s.snapshots, snap)
	return snap, nil
}

func (m *memSnapshots) Latest(_ context.Context, userID, pathID string) (*store.SnapshotRecord, error) {
	for i := len(m.s.snapshots) - 1; i >= 0; i-- {
		s := m.s.snapshots[i]
		if s.UserID == userID && (pathID == "" || s.PathID == pathID) {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSnapshots) ListByUserPath(_ context.Context, userID, pathID string) ([]*store.SnapshotRecord, error) {
	var out []*store.SnapshotRecord
	for _, s := range m.s.snapshots {
		if s.UserID == userID && (pathID == "" || s.PathID == pathID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) CreateProject(_ context.Context, p store.Project) (*store.Project, error) {
	p.ID = m.id("project")
	p.CreatedAt = time.Now()
	m.projects = append(m.projects, &p)
	return &p, nil
}

func (m *memStore) ListUserProjects(_ context.Context, userID string) ([]*store.Project, error) {
	var out []*store.Project
	for _, p := range m.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) CreateAchievement(_ context.Context, a store.Achievement) (*store.Achievement, error) {
	a.ID = m.id("achievement")
	a.EarnedAt = time.Now()
	return &a, nil
}

func (m *memStore) ListUserAchievements(context.Context, string) ([]*store.Achievement, error) {
	return nil, nil
}

func (m *memStore) CreateSkill(_ context.Context, s store.Skill) (*store.Skill, error) {
	s.ID = m.id("skill")
	return &s, nil
}

func (m *memStore) ListUserSkills(context.Context, string) ([]*store.Skill, error) {
	return nil, nil
}
