package curriculum

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sagelearn/sage/internal/llm"
)

// Config holds tuning for curriculum generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Service generates curricula: a full path plan from an onboarding
// goal, and lesson content on demand.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Turn is one prior onboarding exchange.
type Turn struct {
	Role    string
	Content string
}

// PlanPath turns a learning goal into a structured path plan plus
// follow-up questions. Generation failure is fatal here: there is no
// sensible default curriculum.
func (s *Service) PlanPath(ctx context.Context, goal string, history []Turn) (*OnboardingResult, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, fmt.Errorf("goal is required")
	}

	ctx = llm.WithPurpose(ctx, "path-plan")

	messages := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: t.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: goal})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      onboardingSystemPrompt,
		Messages:    messages,
		Schema:      PathPlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("process onboarding goal: %w", err)
	}

	var result OnboardingResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("parse onboarding response: %w", err)
	}
	if len(result.LearningPath.Modules) == 0 {
		return nil, fmt.Errorf("generated plan has no modules")
	}

	s.logger.Info("generated learning path",
		zap.String("title", result.LearningPath.Title),
		zap.Int("modules", len(result.LearningPath.Modules)))

	return &result, nil
}

// GenerateLessonContent produces the full content document for a
// lesson. Content is returned as a loosely-typed document for storage.
func (s *Service) GenerateLessonContent(ctx context.Context, info LessonInfo) (map[string]any, error) {
	ctx = llm.WithPurpose(ctx, "lesson-content")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonPrompt(info)},
		},
		Schema:      LessonContentSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate lesson content: %w", err)
	}

	var content map[string]any
	if err := json.Unmarshal(resp.Content, &content); err != nil {
		return nil, fmt.Errorf("parse lesson content: %w", err)
	}
	return content, nil
}

const onboardingSystemPrompt = `You are Sage's AI learning advisor. Analyze the user's learning preferences to create a highly personalized learning path.

PERSONALIZATION INSTRUCTIONS:
- Parse the user's current skill level and adjust complexity accordingly
- Adapt to their preferred learning styles (visual, hands-on, reading, interactive, step-by-step)
- Consider their time commitment and weekly hours for realistic pacing
- Tailor content to their industry/context when provided
- Structure the path to achieve their specific outcomes
- Match their motivation type (career, personal, project, corporate, entrepreneurship)

Create 4-8 modules with 3-6 lessons each. Prioritize their learning preferences and make it practical for their stated goals and timeline.`

func buildLessonPrompt(info LessonInfo) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Create comprehensive, engaging lesson content for: %q\n\n", info.Title))
	b.WriteString("LESSON DETAILS:\n")
	b.WriteString(fmt.Sprintf("- Description: %s\n", info.Description))
	b.WriteString(fmt.Sprintf("- Difficulty: %s\n", info.Difficulty))
	b.WriteString(fmt.Sprintf("- Module: %s\n", info.ModuleTitle))
	b.WriteString(fmt.Sprintf("- Learning Goal: %s\n", info.PathGoal))
	b.WriteString(`
CONTENT REQUIREMENTS:
- Make content practical and immediately applicable
- Include diverse learning modalities (visual explanations, hands-on exercises, real examples)
- Provide high-quality, current resources from reputable sources
- Create realistic, portfolio-worthy exercises
- Structure content for progressive understanding`)
	return b.String()
}
