package store

import (
	"context"
	"fmt"

	"github.com/sagelearn/sage/ent"
	"github.com/sagelearn/sage/ent/learningpath"
	"github.com/sagelearn/sage/ent/lesson"
	entmodule "github.com/sagelearn/sage/ent/module"
)

// pathRepo implements PathRepo using the ent client.
type pathRepo struct {
	client *ent.Client
}

func (r *pathRepo) CreatePath(ctx context.Context, p NewPath) (*LearningPath, error) {
	created, err := r.client.LearningPath.Create().
		SetUserID(p.UserID).
		SetTitle(p.Title).
		SetDescription(p.Description).
		SetGoal(p.Goal).
		SetMotivation(p.Motivation).
		SetDifficulty(p.Difficulty).
		SetEstimatedDuration(p.EstimatedDuration).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create learning path: %w", err)
	}
	return entPathToPath(created), nil
}

func (r *pathRepo) GetPath(ctx context.Context, id string) (*LearningPath, error) {
	p, err := r.client.LearningPath.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get learning path: %w", err)
	}
	return entPathToPath(p), nil
}

func (r *pathRepo) ListUserPaths(ctx context.Context, userID string) ([]*LearningPath, error) {
	paths, err := r.client.LearningPath.Query().
		Where(learningpath.UserID(userID)).
		Order(ent.Desc(learningpath.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user paths: %w", err)
	}
	out := make([]*LearningPath, len(paths))
	for i, p := range paths {
		out[i] = entPathToPath(p)
	}
	return out, nil
}

func (r *pathRepo) CreateModule(ctx context.Context, m NewModule) (*Module, error) {
	created, err := r.client.Module.Create().
		SetPathID(m.PathID).
		SetTitle(m.Title).
		SetDescription(m.Description).
		SetOrderIndex(m.OrderIndex).
		SetTotalLessons(m.TotalLessons).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}
	return entModuleToModule(created), nil
}

func (r *pathRepo) GetModule(ctx context.Context, id string) (*Module, error) {
	m, err := r.client.Module.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get module: %w", err)
	}
	return entModuleToModule(m), nil
}

func (r *pathRepo) UpdateModule(ctx context.Context, id string, patch ModulePatch) (*Module, error) {
	upd := r.client.Module.UpdateOneID(id)
	if patch.Title != nil {
		upd.SetTitle(*patch.Title)
	}
	if patch.Description != nil {
		upd.SetDescription(*patch.Description)
	}
	if patch.IsCompleted != nil {
		upd.SetIsCompleted(*patch.IsCompleted)
	}
	if patch.IsUnlocked != nil {
		upd.SetIsUnlocked(*patch.IsUnlocked)
	}
	if patch.CompletedLessons != nil {
		upd.SetCompletedLessons(*patch.CompletedLessons)
	}

	m, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update module: %w", err)
	}
	return entModuleToModule(m), nil
}

func (r *pathRepo) ListPathModules(ctx context.Context, pathID string) ([]*Module, error) {
	modules, err := r.client.Module.Query().
		Where(entmodule.PathID(pathID)).
		Order(ent.Asc(entmodule.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list path modules: %w", err)
	}
	out := make([]*Module, len(modules))
	for i, m := range modules {
		out[i] = entModuleToModule(m)
	}
	return out, nil
}

func (r *pathRepo) CreateLesson(ctx context.Context, l NewLesson) (*Lesson, error) {
	created, err := r.client.Lesson.Create().
		SetModuleID(l.ModuleID).
		SetTitle(l.Title).
		SetDescription(l.Description).
		SetOrderIndex(l.OrderIndex).
		SetDuration(l.Duration).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	return entLessonToLesson(created), nil
}

func (r *pathRepo) GetLesson(ctx context.Context, id string) (*Lesson, error) {
	l, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return entLessonToLesson(l), nil
}

func (r *pathRepo) UpdateLesson(ctx context.Context, id string, patch LessonPatch) (*Lesson, error) {
	upd := r.client.Lesson.UpdateOneID(id)
	if patch.Title != nil {
		upd.SetTitle(*patch.Title)
	}
	if patch.Description != nil {
		upd.SetDescription(*patch.Description)
	}
	if patch.Content != nil {
		upd.SetContent(*patch.Content)
	}
	if patch.IsCompleted != nil {
		upd.SetIsCompleted(*patch.IsCompleted)
	}

	l, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update lesson: %w", err)
	}
	return entLessonToLesson(l), nil
}

func (r *pathRepo) ListModuleLessons(ctx context.Context, moduleID string) ([]*Lesson, error) {
	lessons, err := r.client.Lesson.Query().
		Where(lesson.ModuleID(moduleID)).
		Order(ent.Asc(lesson.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list module lessons: %w", err)
	}
	out := make([]*Lesson, len(lessons))
	for i, l := range lessons {
		out[i] = entLessonToLesson(l)
	}
	return out, nil
}

func entPathToPath(p *ent.LearningPath) *LearningPath {
	return &LearningPath{
		ID:                p.ID,
		UserID:            p.UserID,
		Title:             p.Title,
		Description:       p.Description,
		Goal:              p.Goal,
		Motivation:        p.Motivation,
		Difficulty:        p.Difficulty,
		EstimatedDuration: p.EstimatedDuration,
		Progress:          p.Progress,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
	}
}

func entModuleToModule(m *ent.Module) *Module {
	return &Module{
		ID:               m.ID,
		PathID:           m.PathID,
		Title:            m.Title,
		Description:      m.Description,
		OrderIndex:       m.OrderIndex,
		IsCompleted:      m.IsCompleted,
		IsUnlocked:       m.IsUnlocked,
		TotalLessons:     m.TotalLessons,
		CompletedLessons: m.CompletedLessons,
	}
}

func entLessonToLesson(l *ent.Lesson) *Lesson {
	return &Lesson{
		ID:          l.ID,
		ModuleID:    l.ModuleID,
		Title:       l.Title,
		Description: l.Description,
		Content:     l.Content,
		OrderIndex:  l.OrderIndex,
		Duration:    l.Duration,
		IsCompleted: l.IsCompleted,
		Resources:   l.Resources,
	}
}
