package adaptive

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sagelearn/sage/internal/llm"
	"github.com/sagelearn/sage/internal/store"
)

// Classifier infers a learner's comprehension level from conversation
// history. The production implementation delegates to the LLM; tests use
// a deterministic substitute.
type Classifier interface {
	Classify(ctx context.Context, input ClassifyInput) (*Assessment, error)
}

// ClassifyInput holds the evidence for one classification pass.
type ClassifyInput struct {
	History []*store.Turn
	Lesson  LessonContext
	Module  ModuleContext
}

// ClassifierConfig holds tuning for the LLM classifier.
type ClassifierConfig struct {
	// WindowPerRole bounds how many recent turns of each role feed the
	// prompt.
	WindowPerRole int

	// MinUserTurns is the evidence floor: below it, classification is
	// not attempted and the default assessment is returned.
	MinUserTurns int

	MaxTokens   int
	Temperature float64
}

// maxClassifierTemperature caps sampling randomness. Classification is
// not creative generation.
const maxClassifierTemperature = 0.3

// DefaultClassifierConfig returns the standard classifier tuning. The
// window and evidence-floor constants carry over from the original
// product tuning.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		WindowPerRole: 10,
		MinUserTurns:  2,
		MaxTokens:     1024,
		Temperature:   0.3,
	}
}

// LLMClassifier is the production Classifier backed by the generative
// text service. It is stateless: non-determinism comes solely from the
// external model.
type LLMClassifier struct {
	provider llm.Provider
	cfg      ClassifierConfig
}

// NewLLMClassifier creates an LLM-backed classifier. Temperatures above
// the classification cap are normalized down.
func NewLLMClassifier(provider llm.Provider, cfg ClassifierConfig) *LLMClassifier {
	if cfg.Temperature > maxClassifierTemperature {
		cfg.Temperature = maxClassifierTemperature
	}
	return &LLMClassifier{provider: provider, cfg: cfg}
}

// Classify assesses the learner's level from the recent conversation
// window. With fewer than MinUserTurns user-authored turns it returns
// the default assessment without calling the provider. Provider and
// parse failures are returned as errors; the caller decides the
// fallback policy.
func (c *LLMClassifier) Classify(ctx context.Context, input ClassifyInput) (*Assessment, error) {
	ctx = llm.WithPurpose(ctx, "difficulty-analysis")

	userMsgs := lastByRole(input.History, "user", c.cfg.WindowPerRole)
	assistantMsgs := lastByRole(input.History, "assistant", c.cfg.WindowPerRole)

	if len(userMsgs) < c.cfg.MinUserTurns {
		return DefaultAssessment(), nil
	}

	req := llm.Request{
		System: classifierSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildClassifyMessage(input, userMsgs, assistantMsgs)},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("difficulty analysis failed: %w", err)
	}

	var a Assessment
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, fmt.Errorf("parse assessment response: %w", err)
	}

	if err := normalizeAssessment(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// normalizeAssessment enforces the assessment invariants: a defined
// level and adjustment, confidence within [0,1].
func normalizeAssessment(a *Assessment) error {
	if !a.CurrentLevel.Valid() {
		return fmt.Errorf("assessment has undefined level %q", a.CurrentLevel)
	}
	if !a.Recommendations.AdjustDifficulty.Valid() {
		a.Recommendations.AdjustDifficulty = AdjustMaintain
	}
	a.Confidence = clamp01(a.Confidence)
	a.InferredLearningStyle.Confidence = clamp01(a.InferredLearningStyle.Confidence)
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lastByRole returns the content of the last n turns with the given
// role, oldest first.
func lastByRole(turns []*store.Turn, role string, n int) []string {
	var matched []string
	for _, t := range turns {
		if t.Role == role {
			matched = append(matched, t.Content)
		}
	}
	if len(matched) > n {
		matched = matched[len(matched)-n:]
	}
	return matched
}

const classifierSystemPrompt = `You are an expert learning analytics AI that assesses student comprehension and learning patterns.`

// assistantExcerptLen bounds how much of each tutor reply feeds the
// prompt. The learner's own words carry the signal; replies are context.
const assistantExcerptLen = 200

func buildClassifyMessage(input ClassifyInput, userMsgs, assistantMsgs []string) string {
	var b strings.Builder

	b.WriteString("Analyze this student's chat interactions to assess their learning difficulty level and comprehension.\n\n")

	b.WriteString("CURRENT CONTEXT:\n")
	b.WriteString(fmt.Sprintf("- Lesson: %s\n", orDefault(input.Lesson.Title, "General learning")))
	b.WriteString(fmt.Sprintf("- Module: %s\n", orDefault(input.Module.Title, "Unknown")))
	difficulty := input.Lesson.Difficulty
	if difficulty == "" {
		difficulty = input.Module.Difficulty
	}
	b.WriteString(fmt.Sprintf("- Difficulty Level: %s\n", orDefault(difficulty, "Unknown")))

	b.WriteString("\nRECENT USER MESSAGES:\n")
	for i, msg := range userMsgs {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, msg))
	}

	b.WriteString("\nRECENT TUTOR RESPONSES:\n")
	for i, msg := range assistantMsgs {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, excerpt(msg, assistantExcerptLen)))
	}

	b.WriteString(`
Analyze the user's:
1. Question complexity and depth
2. Concept understanding based on their questions and responses
3. Engagement level and learning patterns
4. Whether they frequently need help or clarification
5. Topic mastery indicators`)

	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
