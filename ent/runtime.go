// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sagelearn/sage/ent/achievement"
	"github.com/sagelearn/sage/ent/chatmessage"
	"github.com/sagelearn/sage/ent/learnersnapshot"
	"github.com/sagelearn/sage/ent/learningpath"
	"github.com/sagelearn/sage/ent/lesson"
	"github.com/sagelearn/sage/ent/llmrequestevent"
	"github.com/sagelearn/sage/ent/module"
	"github.com/sagelearn/sage/ent/project"
	"github.com/sagelearn/sage/ent/schema"
	"github.com/sagelearn/sage/ent/skill"
	"github.com/sagelearn/sage/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUserID is the schema descriptor for user_id field.
	achievementDescUserID := achievementFields[1].Descriptor()
	// achievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievement.UserIDValidator = achievementDescUserID.Validators[0].(func(string) error)
	// achievementDescTitle is the schema descriptor for title field.
	achievementDescTitle := achievementFields[2].Descriptor()
	// achievement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	achievement.TitleValidator = achievementDescTitle.Validators[0].(func(string) error)
	// achievementDescDescription is the schema descriptor for description field.
	achievementDescDescription := achievementFields[3].Descriptor()
	// achievement.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	achievement.DescriptionValidator = achievementDescDescription.Validators[0].(func(string) error)
	// achievementDescIcon is the schema descriptor for icon field.
	achievementDescIcon := achievementFields[4].Descriptor()
	// achievement.IconValidator is a validator for the "icon" field. It is called by the builders before save.
	achievement.IconValidator = achievementDescIcon.Validators[0].(func(string) error)
	// achievementDescCategory is the schema descriptor for category field.
	achievementDescCategory := achievementFields[6].Descriptor()
	// achievement.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	achievement.CategoryValidator = achievementDescCategory.Validators[0].(func(string) error)
	// achievementDescEarnedAt is the schema descriptor for earned_at field.
	achievementDescEarnedAt := achievementFields[7].Descriptor()
	// achievement.DefaultEarnedAt holds the default value on creation for the earned_at field.
	achievement.DefaultEarnedAt = achievementDescEarnedAt.Default.(func() time.Time)
	// achievementDescID is the schema descriptor for id field.
	achievementDescID := achievementFields[0].Descriptor()
	// achievement.DefaultID holds the default value on creation for the id field.
	achievement.DefaultID = achievementDescID.Default.(func() string)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescUserID is the schema descriptor for user_id field.
	chatmessageDescUserID := chatmessageFields[1].Descriptor()
	// chatmessage.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	chatmessage.UserIDValidator = chatmessageDescUserID.Validators[0].(func(string) error)
	// chatmessageDescRole is the schema descriptor for role field.
	chatmessageDescRole := chatmessageFields[4].Descriptor()
	// chatmessage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatmessage.RoleValidator = chatmessageDescRole.Validators[0].(func(string) error)
	// chatmessageDescContent is the schema descriptor for content field.
	chatmessageDescContent := chatmessageFields[5].Descriptor()
	// chatmessage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	chatmessage.ContentValidator = chatmessageDescContent.Validators[0].(func(string) error)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[7].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	// chatmessageDescID is the schema descriptor for id field.
	chatmessageDescID := chatmessageFields[0].Descriptor()
	// chatmessage.DefaultID holds the default value on creation for the id field.
	chatmessage.DefaultID = chatmessageDescID.Default.(func() string)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	learnersnapshotFields := schema.LearnerSnapshot{}.Fields()
	_ = learnersnapshotFields
	// learnersnapshotDescUserID is the schema descriptor for user_id field.
	learnersnapshotDescUserID := learnersnapshotFields[1].Descriptor()
	// learnersnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learnersnapshot.UserIDValidator = learnersnapshotDescUserID.Validators[0].(func(string) error)
	// learnersnapshotDescLevel is the schema descriptor for level field.
	learnersnapshotDescLevel := learnersnapshotFields[4].Descriptor()
	// learnersnapshot.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	learnersnapshot.LevelValidator = learnersnapshotDescLevel.Validators[0].(func(string) error)
	// learnersnapshotDescCreatedAt is the schema descriptor for created_at field.
	learnersnapshotDescCreatedAt := learnersnapshotFields[7].Descriptor()
	// learnersnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnersnapshot.DefaultCreatedAt = learnersnapshotDescCreatedAt.Default.(func() time.Time)
	// learnersnapshotDescID is the schema descriptor for id field.
	learnersnapshotDescID := learnersnapshotFields[0].Descriptor()
	// learnersnapshot.DefaultID holds the default value on creation for the id field.
	learnersnapshot.DefaultID = learnersnapshotDescID.Default.(func() string)
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescUserID is the schema descriptor for user_id field.
	learningpathDescUserID := learningpathFields[1].Descriptor()
	// learningpath.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningpath.UserIDValidator = learningpathDescUserID.Validators[0].(func(string) error)
	// learningpathDescTitle is the schema descriptor for title field.
	learningpathDescTitle := learningpathFields[2].Descriptor()
	// learningpath.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	learningpath.TitleValidator = learningpathDescTitle.Validators[0].(func(string) error)
	// learningpathDescDescription is the schema descriptor for description field.
	learningpathDescDescription := learningpathFields[3].Descriptor()
	// learningpath.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	learningpath.DescriptionValidator = learningpathDescDescription.Validators[0].(func(string) error)
	// learningpathDescGoal is the schema descriptor for goal field.
	learningpathDescGoal := learningpathFields[4].Descriptor()
	// learningpath.GoalValidator is a validator for the "goal" field. It is called by the builders before save.
	learningpath.GoalValidator = learningpathDescGoal.Validators[0].(func(string) error)
	// learningpathDescMotivation is the schema descriptor for motivation field.
	learningpathDescMotivation := learningpathFields[5].Descriptor()
	// learningpath.MotivationValidator is a validator for the "motivation" field. It is called by the builders before save.
	learningpath.MotivationValidator = learningpathDescMotivation.Validators[0].(func(string) error)
	// learningpathDescDifficulty is the schema descriptor for difficulty field.
	learningpathDescDifficulty := learningpathFields[6].Descriptor()
	// learningpath.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	learningpath.DifficultyValidator = learningpathDescDifficulty.Validators[0].(func(string) error)
	// learningpathDescProgress is the schema descriptor for progress field.
	learningpathDescProgress := learningpathFields[8].Descriptor()
	// learningpath.DefaultProgress holds the default value on creation for the progress field.
	learningpath.DefaultProgress = learningpathDescProgress.Default.(int)
	// learningpathDescIsActive is the schema descriptor for is_active field.
	learningpathDescIsActive := learningpathFields[9].Descriptor()
	// learningpath.DefaultIsActive holds the default value on creation for the is_active field.
	learningpath.DefaultIsActive = learningpathDescIsActive.Default.(bool)
	// learningpathDescCreatedAt is the schema descriptor for created_at field.
	learningpathDescCreatedAt := learningpathFields[10].Descriptor()
	// learningpath.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningpath.DefaultCreatedAt = learningpathDescCreatedAt.Default.(func() time.Time)
	// learningpathDescID is the schema descriptor for id field.
	learningpathDescID := learningpathFields[0].Descriptor()
	// learningpath.DefaultID holds the default value on creation for the id field.
	learningpath.DefaultID = learningpathDescID.Default.(func() string)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescModuleID is the schema descriptor for module_id field.
	lessonDescModuleID := lessonFields[1].Descriptor()
	// lesson.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	lesson.ModuleIDValidator = lessonDescModuleID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescIsCompleted is the schema descriptor for is_completed field.
	lessonDescIsCompleted := lessonFields[7].Descriptor()
	// lesson.DefaultIsCompleted holds the default value on creation for the is_completed field.
	lesson.DefaultIsCompleted = lessonDescIsCompleted.Default.(bool)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() string)
	moduleFields := schema.Module{}.Fields()
	_ = moduleFields
	// moduleDescPathID is the schema descriptor for path_id field.
	moduleDescPathID := moduleFields[1].Descriptor()
	// module.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	module.PathIDValidator = moduleDescPathID.Validators[0].(func(string) error)
	// moduleDescTitle is the schema descriptor for title field.
	moduleDescTitle := moduleFields[2].Descriptor()
	// module.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	module.TitleValidator = moduleDescTitle.Validators[0].(func(string) error)
	// moduleDescIsCompleted is the schema descriptor for is_completed field.
	moduleDescIsCompleted := moduleFields[5].Descriptor()
	// module.DefaultIsCompleted holds the default value on creation for the is_completed field.
	module.DefaultIsCompleted = moduleDescIsCompleted.Default.(bool)
	// moduleDescIsUnlocked is the schema descriptor for is_unlocked field.
	moduleDescIsUnlocked := moduleFields[6].Descriptor()
	// module.DefaultIsUnlocked holds the default value on creation for the is_unlocked field.
	module.DefaultIsUnlocked = moduleDescIsUnlocked.Default.(bool)
	// moduleDescTotalLessons is the schema descriptor for total_lessons field.
	moduleDescTotalLessons := moduleFields[7].Descriptor()
	// module.DefaultTotalLessons holds the default value on creation for the total_lessons field.
	module.DefaultTotalLessons = moduleDescTotalLessons.Default.(int)
	// moduleDescCompletedLessons is the schema descriptor for completed_lessons field.
	moduleDescCompletedLessons := moduleFields[8].Descriptor()
	// module.DefaultCompletedLessons holds the default value on creation for the completed_lessons field.
	module.DefaultCompletedLessons = moduleDescCompletedLessons.Default.(int)
	// moduleDescID is the schema descriptor for id field.
	moduleDescID := moduleFields[0].Descriptor()
	// module.DefaultID holds the default value on creation for the id field.
	module.DefaultID = moduleDescID.Default.(func() string)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescUserID is the schema descriptor for user_id field.
	projectDescUserID := projectFields[1].Descriptor()
	// project.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	project.UserIDValidator = projectDescUserID.Validators[0].(func(string) error)
	// projectDescTitle is the schema descriptor for title field.
	projectDescTitle := projectFields[2].Descriptor()
	// project.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	project.TitleValidator = projectDescTitle.Validators[0].(func(string) error)
	// projectDescDescription is the schema descriptor for description field.
	projectDescDescription := projectFields[3].Descriptor()
	// project.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	project.DescriptionValidator = projectDescDescription.Validators[0].(func(string) error)
	// projectDescIsCompleted is the schema descriptor for is_completed field.
	projectDescIsCompleted := projectFields[8].Descriptor()
	// project.DefaultIsCompleted holds the default value on creation for the is_completed field.
	project.DefaultIsCompleted = projectDescIsCompleted.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[10].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() string)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescUserID is the schema descriptor for user_id field.
	skillDescUserID := skillFields[1].Descriptor()
	// skill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	skill.UserIDValidator = skillDescUserID.Validators[0].(func(string) error)
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[2].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[3].Descriptor()
	// skill.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	skill.CategoryValidator = skillDescCategory.Validators[0].(func(string) error)
	// skillDescLevel is the schema descriptor for level field.
	skillDescLevel := skillFields[4].Descriptor()
	// skill.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	skill.LevelValidator = skillDescLevel.Validators[0].(func(string) error)
	// skillDescProgress is the schema descriptor for progress field.
	skillDescProgress := skillFields[5].Descriptor()
	// skill.DefaultProgress holds the default value on creation for the progress field.
	skill.DefaultProgress = skillDescProgress.Default.(int)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.DefaultID holds the default value on creation for the id field.
	skill.DefaultID = skillDescID.Default.(func() string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescTotalPoints is the schema descriptor for total_points field.
	userDescTotalPoints := userFields[5].Descriptor()
	// user.DefaultTotalPoints holds the default value on creation for the total_points field.
	user.DefaultTotalPoints = userDescTotalPoints.Default.(int)
	// userDescStreakDays is the schema descriptor for streak_days field.
	userDescStreakDays := userFields[6].Descriptor()
	// user.DefaultStreakDays holds the default value on creation for the streak_days field.
	user.DefaultStreakDays = userDescStreakDays.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() string)
}
