package adaptive

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/sagelearn/sage/internal/store"
)

// Analysis is the complete outcome of one adaptive pass: the assessment,
// the persona derived from it, and the recommendations it produced.
type Analysis struct {
	Assessment      *Assessment      `json:"assessment"`
	Persona         string           `json:"persona"`
	Recommendations *Recommendations `json:"recommendations"`
}

// AnalyzeRequest carries everything one adaptive pass needs. History is
// the full (user, path) conversation in creation order, including the
// turn that triggered the pass.
type AnalyzeRequest struct {
	UserID   string
	PathID   string
	History  []*store.Turn
	Lesson   LessonContext
	Module   ModuleContext
	Progress ProgressContext
}

// Service orchestrates the adaptive pipeline: trigger check,
// classification, persona selection, recommendation, snapshot. It fails
// soft at every stage after the trigger: a broken model or store never
// surfaces as an error to the conversation flow.
type Service struct {
	trigger     TriggerPolicy
	classifier  Classifier
	recommender Recommender
	snapshots   store.SnapshotRepo
	logger      *zap.Logger
}

// NewService creates the adaptive service. snapshots may be nil, in
// which case assessments are not persisted.
func NewService(trigger TriggerPolicy, classifier Classifier, recommender Recommender, snapshots store.SnapshotRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		trigger:     trigger,
		classifier:  classifier,
		recommender: recommender,
		snapshots:   snapshots,
		logger:      logger,
	}
}

// Trigger exposes the service's trigger policy.
func (s *Service) Trigger() TriggerPolicy {
	return s.trigger
}

// AnalyzeIfDue runs the adaptive pipeline if the trigger cadence says
// this turn warrants it; otherwise it returns (nil, nil). When the pass
// runs it always yields a usable Analysis: classification and
// recommendation failures degrade to the documented defaults, and
// snapshot persistence failures are logged but never propagated.
func (s *Service) AnalyzeIfDue(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	userTurns := 0
	for _, t := range req.History {
		if t.Role == "user" {
			userTurns++
		}
	}
	if !s.trigger.ShouldAnalyze(userTurns) {
		return nil, nil
	}
	return s.Analyze(ctx, req), nil
}

// Analyze runs one adaptive pass unconditionally. It never fails: every
// stage degrades to its default on error.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) *Analysis {
	assessment, err := s.classifier.Classify(ctx, ClassifyInput{
		History: req.History,
		Lesson:  req.Lesson,
		Module:  req.Module,
	})
	if err != nil {
		s.logger.Warn("difficulty classification failed, using default assessment",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		assessment = DefaultAssessment()
	}

	recs, err := s.recommender.Recommend(ctx, RecommendInput{
		Assessment: assessment,
		Lesson:     req.Lesson,
		Progress:   req.Progress,
	})
	if err != nil {
		s.logger.Warn("recommendation generation failed, using defaults",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		recs = DefaultRecommendations()
	}

	s.recordSnapshot(ctx, req, assessment)

	return &Analysis{
		Assessment:      assessment,
		Persona:         PersonaFor(assessment.CurrentLevel),
		Recommendations: recs,
	}
}

// recordSnapshot persists the assessment as a learner-state snapshot.
// Failure costs only history, never the response.
func (s *Service) recordSnapshot(ctx context.Context, req AnalyzeRequest, a *Assessment) {
	if s.snapshots == nil {
		return
	}

	raw, err := json.Marshal(a)
	if err != nil {
		s.logger.Warn("marshal assessment for snapshot", zap.Error(err))
		return
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Warn("encode assessment for snapshot", zap.Error(err))
		return
	}

	_, err = s.snapshots.Record(ctx, store.NewSnapshot{
		UserID:     req.UserID,
		PathID:     req.PathID,
		LessonID:   req.Lesson.ID,
		Level:      string(a.CurrentLevel),
		Confidence: a.Confidence,
		Assessment: payload,
	})
	if err != nil {
		s.logger.Warn("record learner snapshot",
			zap.String("user_id", req.UserID),
			zap.Error(err))
	}
}
