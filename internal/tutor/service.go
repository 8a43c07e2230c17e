package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sagelearn/sage/internal/adaptive"
	"github.com/sagelearn/sage/internal/llm"
	"github.com/sagelearn/sage/internal/store"
)

// historyWindow bounds how many prior turns feed the reply prompt.
const historyWindow = 10

// Config holds tuning for reply generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service runs one tutoring turn end to end: it persists the learner's
// message, lets the adaptive subsystem analyze on its cadence, generates
// the reply under the current persona, and persists the reply.
type Service struct {
	provider  llm.Provider
	turns     store.TurnRepo
	snapshots store.SnapshotRepo
	adaptive  *adaptive.Service
	cfg       Config
	logger    *zap.Logger
}

func NewService(provider llm.Provider, turns store.TurnRepo, snapshots store.SnapshotRepo, adaptiveSvc *adaptive.Service, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider:  provider,
		turns:     turns,
		snapshots: snapshots,
		adaptive:  adaptiveSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// HandleMessage processes one learner message. Reply generation failure
// fails the turn; adaptive-subsystem failures never do, the turn
// proceeds with defaults.
func (s *Service) HandleMessage(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Message == "" || req.UserID == "" {
		return nil, fmt.Errorf("message and userId are required")
	}

	_, err := s.turns.Append(ctx, store.NewTurn{
		UserID:   req.UserID,
		PathID:   req.PathID,
		LessonID: req.LessonID,
		Role:     "user",
		Content:  req.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	history, err := s.turns.ListByUserPath(ctx, req.UserID, req.PathID)
	if err != nil {
		return nil, fmt.Errorf("load conversation history: %w", err)
	}

	analysis, _ := s.adaptive.AnalyzeIfDue(ctx, adaptive.AnalyzeRequest{
		UserID:   req.UserID,
		PathID:   req.PathID,
		History:  history,
		Lesson:   req.Lesson,
		Module:   req.Module,
		Progress: req.Progress,
	})

	reply, err := s.generateReply(ctx, req, history, analysis)
	if err != nil {
		return nil, err
	}

	turnContext := map[string]any{
		"suggestions":     reply.Suggestions,
		"contextualHints": reply.ContextualHints,
	}
	if analysis != nil {
		turnContext["assessment"] = map[string]any{
			"currentLevel":     string(analysis.Assessment.CurrentLevel),
			"confidence":       analysis.Assessment.Confidence,
			"adjustDifficulty": string(analysis.Assessment.Recommendations.AdjustDifficulty),
		}
	}

	saved, err := s.turns.Append(ctx, store.NewTurn{
		UserID:   req.UserID,
		PathID:   req.PathID,
		LessonID: req.LessonID,
		Role:     "assistant",
		Content:  reply.Message,
		Context:  turnContext,
	})
	if err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}

	reply.AdaptiveInsights = analysis
	reply.MessageID = saved.ID
	return reply, nil
}

// replyOutput mirrors the reply schema.
type replyOutput struct {
	Message         string   `json:"message"`
	Suggestions     []string `json:"suggestions"`
	ContextualHints []string `json:"contextualHints"`
}

func (s *Service) generateReply(ctx context.Context, req ChatRequest, history []*store.Turn, analysis *adaptive.Analysis) (*ChatResponse, error) {
	ctx = llm.WithPurpose(ctx, "chat-reply")

	persona, err := s.currentPersona(ctx, req, analysis)
	if err != nil {
		s.logger.Warn("persona lookup failed, using base persona", zap.Error(err))
		persona = adaptive.BasePersona
	}

	messages := replyMessages(history, req.Message)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      buildReplySystemPrompt(persona, req),
		Messages:    messages,
		Schema:      ReplySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate chat response: %w", err)
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse chat response: %w", err)
	}

	return &ChatResponse{
		Message:         out.Message,
		Suggestions:     out.Suggestions,
		ContextualHints: out.ContextualHints,
	}, nil
}

// currentPersona picks the persona steering this turn's reply: the one
// from a just-completed analysis, else the level of the latest stored
// snapshot, else the base persona.
func (s *Service) currentPersona(ctx context.Context, req ChatRequest, analysis *adaptive.Analysis) (string, error) {
	if analysis != nil {
		return analysis.Persona, nil
	}
	if s.snapshots == nil {
		return adaptive.BasePersona, nil
	}
	snap, err := s.snapshots.Latest(ctx, req.UserID, req.PathID)
	if err != nil {
		return "", err
	}
	if snap == nil {
		return adaptive.BasePersona, nil
	}
	return adaptive.PersonaFor(adaptive.Level(snap.Level)), nil
}

// replyMessages builds the prompt history: the last historyWindow prior
// turns followed by the current message. The just-appended user turn is
// dropped from the history so it appears exactly once.
func replyMessages(history []*store.Turn, current string) []llm.Message {
	prior := history
	if n := len(prior); n > 0 && prior[n-1].Role == "user" && prior[n-1].Content == current {
		prior = prior[:n-1]
	}
	if len(prior) > historyWindow {
		prior = prior[len(prior)-historyWindow:]
	}

	var messages []llm.Message
	for _, t := range prior {
		role := llm.RoleUser
		if t.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: t.Content})
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: current})
}

func buildReplySystemPrompt(persona string, req ChatRequest) string {
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString(" You're helping a user learn through their personalized curriculum.\n\nContext:\n")

	if req.Lesson.Title != "" {
		b.WriteString(fmt.Sprintf("- Current lesson: %q - %s\n", req.Lesson.Title, req.Lesson.Description))
	} else {
		b.WriteString("- Current lesson: None\n")
	}
	if req.Module.Title != "" {
		b.WriteString(fmt.Sprintf("- Current module: %q\n", req.Module.Title))
	} else {
		b.WriteString("- Current module: None\n")
	}
	if req.Progress.Total > 0 {
		b.WriteString(fmt.Sprintf("- User progress: %d/%d lessons completed\n", req.Progress.Completed, req.Progress.Total))
	} else {
		b.WriteString("- User progress: Starting\n")
	}

	b.WriteString("\nMatch the user's communication style while being supportive. Provide contextual help related to their current lesson when appropriate.")
	return b.String()
}
