package store

import (
	"context"
	"time"

	"github.com/sagelearn/sage/internal/llm"
)

// User is a learner account.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar,omitempty"`
	TotalPoints int       `json:"totalPoints"`
	StreakDays  int       `json:"streakDays"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser holds the fields for user creation.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}

// UserRepo manages learner accounts.
// All getters return (nil, nil) when the entity does not exist.
type UserRepo interface {
	Create(ctx context.Context, u NewUser) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// LearningPath is an AI-generated curriculum for one goal.
type LearningPath struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Goal              string    `json:"goal"`
	Motivation        string    `json:"motivation"`
	Difficulty        string    `json:"difficulty"`
	EstimatedDuration string    `json:"estimatedDuration,omitempty"`
	Progress          int       `json:"progress"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewPath holds the fields for learning path creation.
type NewPath struct {
	UserID            string `json:"userId"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Goal              string `json:"goal"`
	Motivation        string `json:"motivation"`
	Difficulty        string `json:"difficulty"`
	EstimatedDuration string `json:"estimatedDuration,omitempty"`
}

// Module is an ordered unit of a learning path.
type Module struct {
	ID               string `json:"id"`
	PathID           string `json:"pathId"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	OrderIndex       int    `json:"orderIndex"`
	IsCompleted      bool   `json:"isCompleted"`
	IsUnlocked       bool   `json:"isUnlocked"`
	TotalLessons     int    `json:"totalLessons"`
	CompletedLessons int    `json:"completedLessons"`
}

// NewModule holds the fields for module creation.
type NewModule struct {
	PathID       string `json:"pathId"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	OrderIndex   int    `json:"orderIndex"`
	TotalLessons int    `json:"totalLessons"`
}

// ModulePatch holds optional module updates. Nil fields are left unchanged.
type ModulePatch struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	IsCompleted      *bool   `json:"isCompleted,omitempty"`
	IsUnlocked       *bool   `json:"isUnlocked,omitempty"`
	CompletedLessons *int    `json:"completedLessons,omitempty"`
}

// Lesson is an ordered unit of a module.
type Lesson struct {
	ID          string           `json:"id"`
	ModuleID    string           `json:"moduleId"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Content     map[string]any   `json:"content"`
	OrderIndex  int              `json:"orderIndex"`
	Duration    int              `json:"duration,omitempty"`
	IsCompleted bool             `json:"isCompleted"`
	Resources   []map[string]any `json:"resources,omitempty"`
}

// NewLesson holds the fields for lesson creation.
type NewLesson struct {
	ModuleID    string `json:"moduleId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"orderIndex"`
	Duration    int    `json:"duration,omitempty"`
}

// LessonPatch holds optional lesson updates. Nil fields are left unchanged.
type LessonPatch struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Content     *map[string]any `json:"content,omitempty"`
	IsCompleted *bool           `json:"isCompleted,omitempty"`
}

// PathRepo manages learning paths and their modules and lessons.
type PathRepo interface {
	CreatePath(ctx context.Context, p NewPath) (*LearningPath, error)
	GetPath(ctx context.Context, id string) (*LearningPath, error)
	ListUserPaths(ctx context.Context, userID string) ([]*LearningPath, error)

	CreateModule(ctx context.Context, m NewModule) (*Module, error)
	GetModule(ctx context.Context, id string) (*Module, error)
	UpdateModule(ctx context.Context, id string, patch ModulePatch) (*Module, error)
	ListPathModules(ctx context.Context, pathID string) ([]*Module, error)

	CreateLesson(ctx context.Context, l NewLesson) (*Lesson, error)
	GetLesson(ctx context.Context, id string) (*Lesson, error)
	UpdateLesson(ctx context.Context, id string, patch LessonPatch) (*Lesson, error)
	ListModuleLessons(ctx context.Context, moduleID string) ([]*Lesson, error)
}

// Turn is one message in a tutoring conversation.
type Turn struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	PathID    string         `json:"pathId,omitempty"`
	LessonID  string         `json:"lessonId,omitempty"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Context   map[string]any `json:"context,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NewTurn holds the fields for appending a conversation turn.
type NewTurn struct {
	UserID   string
	PathID   string
	LessonID string
	Role     string
	Content  string
	Context  map[string]any
}

// TurnRepo is the append-only conversation log, ordered per (user, path)
// by creation time. Turns are immutable once appended.
type TurnRepo interface {
	Append(ctx context.Context, t NewTurn) (*Turn, error)

	// ListByUserPath returns all turns for the user in creation order.
	// An empty pathID matches turns from any path.
	ListByUserPath(ctx context.Context, userID, pathID string) ([]*Turn, error)

	// CountUserTurns counts user-authored turns for (user, path).
	CountUserTurns(ctx context.Context, userID, pathID string) (int, error)
}

// SnapshotRecord is a persisted learner-state snapshot: one difficulty
// assessment with its correlation keys.
type SnapshotRecord struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	PathID     string         `json:"pathId,omitempty"`
	LessonID   string         `json:"lessonId,omitempty"`
	Level      string         `json:"level"`
	Confidence float64        `json:"confidence"`
	Assessment map[string]any `json:"assessment"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// NewSnapshot holds the fields for recording a learner-state snapshot.
type NewSnapshot struct {
	UserID     string
	PathID     string
	LessonID   string
	Level      string
	Confidence float64
	Assessment map[string]any
}

// SnapshotRepo is the append-only learner-state time series. Snapshots are
// never mutated after creation.
type SnapshotRepo interface {
	Record(ctx context.Context, s NewSnapshot) (*SnapshotRecord, error)

	// Latest returns the most recent snapshot for (user, path), or nil
	// when none exists.
	Latest(ctx context.Context, userID, pathID string) (*SnapshotRecord, error)

	// ListByUserPath returns snapshots for (user, path) in creation order.
	ListByUserPath(ctx context.Context, userID, pathID string) ([]*SnapshotRecord, error)
}

// Project is a portfolio entry.
type Project struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Technologies []string   `json:"technologies"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	GithubURL    string     `json:"githubUrl,omitempty"`
	LiveURL      string     `json:"liveUrl,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Achievement is an earned badge.
type Achievement struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Points      int       `json:"points"`
	Category    string    `json:"category"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Skill tracks per-user skill progress.
type Skill struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Progress int    `json:"progress"`
	Icon     string `json:"icon,omitempty"`
}

// PortfolioRepo manages projects, achievements, and skills.
type PortfolioRepo interface {
	CreateProject(ctx context.Context, p Project) (*Project, error)
	ListUserProjects(ctx context.Context, userID string) ([]*Project, error)

	CreateAchievement(ctx context.Context, a Achievement) (*Achievement, error)
	ListUserAchievements(ctx context.Context, userID string) ([]*Achievement, error)

	CreateSkill(ctx context.Context, s Skill) (*Skill, error)
	ListUserSkills(ctx context.Context, userID string) ([]*Skill, error)
}

// LLMEvent is a recorded LLM request with its database identity.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	llm.RequestEvent
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int
	Purpose string
}

// EventRepo provides append and query access to LLM request events.
// It satisfies llm.EventSink.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data llm.RequestEvent) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one event with its captured bodies, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
