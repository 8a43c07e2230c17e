package store

import (
	"context"
	"fmt"

	"github.com/sagelearn/sage/ent"
	"github.com/sagelearn/sage/ent/achievement"
	"github.com/sagelearn/sage/ent/project"
	"github.com/sagelearn/sage/ent/skill"
)

// portfolioRepo implements PortfolioRepo using the ent client.
type portfolioRepo struct {
	client *ent.Client
}

func (r *portfolioRepo) CreateProject(ctx context.Context, p Project) (*Project, error) {
	create := r.client.Project.Create().
		SetUserID(p.UserID).
		SetTitle(p.Title).
		SetDescription(p.Description).
		SetTechnologies(p.Technologies).
		SetImageURL(p.ImageURL).
		SetGithubURL(p.GithubURL).
		SetLiveURL(p.LiveURL).
		SetIsCompleted(p.IsCompleted)
	if p.CompletedAt != nil {
		create.SetCompletedAt(*p.CompletedAt)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return entProjectToProject(created), nil
}

func (r *portfolioRepo) ListUserProjects(ctx context.Context, userID string) ([]*Project, error) {
	projects, err := r.client.Project.Query().
		Where(project.UserID(userID)).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user projects: %w", err)
	}
	out := make([]*Project, len(projects))
	for i, p := range projects {
		out[i] = entProjectToProject(p)
	}
	return out, nil
}

func (r *portfolioRepo) CreateAchievement(ctx context.Context, a Achievement) (*Achievement, error) {
	created, err := r.client.Achievement.Create().
		SetUserID(a.UserID).
		SetTitle(a.Title).
		SetDescription(a.Description).
		SetIcon(a.Icon).
		SetPoints(a.Points).
		SetCategory(a.Category).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create achievement: %w", err)
	}
	return entAchievementToAchievement(created), nil
}

func (r *portfolioRepo) ListUserAchievements(ctx context.Context, userID string) ([]*Achievement, error) {
	achievements, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Order(ent.Desc(achievement.FieldEarnedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user achievements: %w", err)
	}
	out := make([]*Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = entAchievementToAchievement(a)
	}
	return out, nil
}

func (r *portfolioRepo) CreateSkill(ctx context.Context, s Skill) (*Skill, error) {
	created, err := r.client.Skill.Create().
		SetUserID(s.UserID).
		SetName(s.Name).
		SetCategory(s.Category).
		SetLevel(s.Level).
		SetProgress(s.Progress).
		SetIcon(s.Icon).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return entSkillToSkill(created), nil
}

func (r *portfolioRepo) ListUserSkills(ctx context.Context, userID string) ([]*Skill, error) {
	skills, err := r.client.Skill.Query().
		Where(skill.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user skills: %w", err)
	}
	out := make([]*Skill, len(skills))
	for i, s := range skills {
		out[i] = entSkillToSkill(s)
	}
	return out, nil
}

func entProjectToProject(p *ent.Project) *Project {
	out := &Project{
		ID:           p.ID,
		UserID:       p.UserID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		ImageURL:     p.ImageURL,
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		IsCompleted:  p.IsCompleted,
		CreatedAt:    p.CreatedAt,
	}
	if !p.CompletedAt.IsZero() {
		t := p.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

func entAchievementToAchievement(a *ent.Achievement) *Achievement {
	return &Achievement{
		ID:          a.ID,
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		Icon:        a.Icon,
		Points:      a.Points,
		Category:    a.Category,
		EarnedAt:    a.EarnedAt,
	}
}

func entSkillToSkill(s *ent.Skill) *Skill {
	return &Skill{
		ID:       s.ID,
		UserID:   s.UserID,
		Name:     s.Name,
		Category: s.Category,
		Level:    s.Level,
		Progress: s.Progress,
		Icon:     s.Icon,
	}
}
