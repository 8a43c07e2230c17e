package adaptive

// Level is the inferred comprehension level of a learner.
// Levels are ordinal: Struggling < Comfortable < Advanced < Mastery.
type Level string

const (
	LevelStruggling  Level = "struggling"
	LevelComfortable Level = "comfortable"
	LevelAdvanced    Level = "advanced"
	LevelMastery     Level = "mastery"
)

// levelRank orders levels for comparison. Unknown levels rank below all.
var levelRank = map[Level]int{
	LevelStruggling:  1,
	LevelComfortable: 2,
	LevelAdvanced:    3,
	LevelMastery:     4,
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Compare returns -1, 0, or 1 as l orders before, equal to, or after other.
func (l Level) Compare(other Level) int {
	a, b := levelRank[l], levelRank[other]
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Adjustment is the recommended content-difficulty change.
type Adjustment string

const (
	AdjustIncrease Adjustment = "increase"
	AdjustDecrease Adjustment = "decrease"
	AdjustMaintain Adjustment = "maintain"
)

// Valid reports whether a is one of the three defined adjustments.
func (a Adjustment) Valid() bool {
	return a == AdjustIncrease || a == AdjustDecrease || a == AdjustMaintain
}

// AssessmentRecommendations carries the content guidance embedded in an
// assessment. AdjustDifficulty is advisory: downstream lesson generation
// consumes it as a prompt modifier, there is no closed feedback loop.
type AssessmentRecommendations struct {
	AdjustDifficulty Adjustment `json:"adjustDifficulty"`
	SuggestedContent []string   `json:"suggestedContent"`
	FocusAreas       []string   `json:"focusAreas"`
}

// AdaptivePrompts holds directive strings for downstream generators.
type AdaptivePrompts struct {
	NextLesson  string `json:"nextLesson"`
	ChatPersona string `json:"chatPersona"`
}

// LearningStyle is an advisory label for the learner's apparent style.
// It carries no decision logic.
type LearningStyle struct {
	Primary    string  `json:"primary"`
	Confidence float64 `json:"confidence"`
}

// Assessment is the structured output of one difficulty-classification
// pass. It is transient: created per triggered analysis, persisted as a
// learner snapshot, projected into a persona and recommendations, then
// discarded.
type Assessment struct {
	CurrentLevel          Level                     `json:"currentLevel"`
	Confidence            float64                   `json:"confidence"`
	Indicators            []string                  `json:"indicators"`
	Recommendations       AssessmentRecommendations `json:"recommendations"`
	AdaptivePrompts       AdaptivePrompts           `json:"adaptivePrompts"`
	InferredLearningStyle LearningStyle             `json:"inferredLearningStyle"`
}

// DefaultAssessment returns the canonical neutral assessment used when
// classification is impossible (insufficient data) or fails. It is a
// low-confidence prior, not an error.
func DefaultAssessment() *Assessment {
	return &Assessment{
		CurrentLevel: LevelComfortable,
		Confidence:   0.5,
		Indicators:   []string{"Insufficient data for analysis"},
		Recommendations: AssessmentRecommendations{
			AdjustDifficulty: AdjustMaintain,
			SuggestedContent: []string{"Continue with current curriculum"},
			FocusAreas:       []string{"General comprehension"},
		},
		AdaptivePrompts: AdaptivePrompts{
			NextLesson:  "Standard difficulty level",
			ChatPersona: "Supportive and encouraging",
		},
		InferredLearningStyle: LearningStyle{
			Primary:    "unknown",
			Confidence: 0,
		},
	}
}

// Recommendations is the output of one recommendation pass: concrete
// next actions derived from an assessment. The engine returns unbounded
// lists; truncation for display is a presentation concern.
type Recommendations struct {
	RecommendedActions      []string `json:"recommendedActions"`
	NextLessonModifications []string `json:"nextLessonModifications"`
	ChatSuggestions         []string `json:"chatSuggestions"`
}

// DefaultRecommendations returns the fixed fallback used when the
// recommendation pass fails.
func DefaultRecommendations() *Recommendations {
	return &Recommendations{
		RecommendedActions:      []string{"Continue with current pace"},
		NextLessonModifications: []string{"No modifications needed"},
		ChatSuggestions:         []string{"How are you finding this lesson?"},
	}
}

// LessonContext carries the lesson priors supplied to classification
// and recommendation.
type LessonContext struct {
	ID          string
	Title       string
	Description string
	Difficulty  string
}

// ModuleContext carries the module priors supplied to classification.
type ModuleContext struct {
	Title      string
	Difficulty string
}

// ProgressContext summarizes path progress for recommendation prompts.
type ProgressContext struct {
	Completed int
	Total     int
}
