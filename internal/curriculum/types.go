package curriculum

// PlanLesson is one lesson in a generated path plan.
type PlanLesson struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
	Duration    int    `json:"duration"`
}

// PlanModule is one ordered module in a generated path plan.
type PlanModule struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	OrderIndex  int          `json:"orderIndex"`
	Lessons     []PlanLesson `json:"lessons"`
}

// PathPlan is a complete generated curriculum for one learning goal.
type PathPlan struct {
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Motivation        string       `json:"motivation"`
	Difficulty        string       `json:"difficulty"`
	EstimatedDuration string       `json:"estimatedDuration"`
	Modules           []PlanModule `json:"modules"`
}

// OnboardingResult is the outcome of processing a learning goal: the
// plan plus clarifying questions for the learner.
type OnboardingResult struct {
	LearningPath      PathPlan `json:"learningPath"`
	FollowUpQuestions []string `json:"followUpQuestions"`
}

// LessonInfo identifies the lesson whose content is being generated.
type LessonInfo struct {
	Title       string
	Description string
	Difficulty  string
	ModuleTitle string
	PathGoal    string
}
