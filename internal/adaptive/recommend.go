package adaptive

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sagelearn/sage/internal/llm"
)

// Recommender turns an assessment into concrete next actions.
type Recommender interface {
	Recommend(ctx context.Context, input RecommendInput) (*Recommendations, error)
}

// RecommendInput carries the assessment and the surrounding lesson
// state for one recommendation pass.
type RecommendInput struct {
	Assessment *Assessment
	Lesson     LessonContext
	Progress   ProgressContext
}

// RecommenderConfig holds tuning for the LLM recommender.
type RecommenderConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRecommenderConfig returns the standard recommender tuning.
// Recommendations tolerate more variety than classification, so the
// temperature sits higher.
func DefaultRecommenderConfig() RecommenderConfig {
	return RecommenderConfig{
		MaxTokens:   1024,
		Temperature: 0.5,
	}
}

// LLMRecommender is the production Recommender backed by the generative
// text service.
type LLMRecommender struct {
	provider llm.Provider
	cfg      RecommenderConfig
}

func NewLLMRecommender(provider llm.Provider, cfg RecommenderConfig) *LLMRecommender {
	return &LLMRecommender{provider: provider, cfg: cfg}
}

// Recommend generates actionable recommendations from an assessment.
// Failures are returned as errors; callers substitute the default
// triple.
func (r *LLMRecommender) Recommend(ctx context.Context, input RecommendInput) (*Recommendations, error) {
	ctx = llm.WithPurpose(ctx, "recommendations")

	req := llm.Request{
		System: recommenderSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRecommendMessage(input)},
		},
		Schema:      RecommendationsSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	var recs Recommendations
	if err := json.Unmarshal(resp.Content, &recs); err != nil {
		return nil, fmt.Errorf("parse recommendations response: %w", err)
	}
	return &recs, nil
}

const recommenderSystemPrompt = `You are an adaptive learning specialist that creates personalized educational recommendations.`

func buildRecommendMessage(input RecommendInput) string {
	a := input.Assessment

	var b strings.Builder
	b.WriteString("Based on this difficulty analysis, generate adaptive learning recommendations:\n\n")
	b.WriteString("STUDENT ANALYSIS:\n")
	b.WriteString(fmt.Sprintf("- Current Level: %s\n", a.CurrentLevel))
	b.WriteString(fmt.Sprintf("- Confidence: %.2f\n", a.Confidence))
	b.WriteString(fmt.Sprintf("- Key Indicators: %s\n", strings.Join(a.Indicators, ", ")))
	b.WriteString(fmt.Sprintf("- Focus Areas: %s\n", strings.Join(a.Recommendations.FocusAreas, ", ")))

	b.WriteString("\nCURRENT CONTEXT:\n")
	b.WriteString(fmt.Sprintf("- Lesson: %s\n", orDefault(input.Lesson.Title, "Unknown")))
	b.WriteString(fmt.Sprintf("- Progress: %d/%d lessons\n", input.Progress.Completed, input.Progress.Total))

	b.WriteString("\nGenerate specific, actionable recommendations: immediate actions to help the student, how to modify the next lesson for their level, and conversation starters or comprehension checks for the chat.")

	return b.String()
}
