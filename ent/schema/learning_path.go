package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LearningPath is an AI-generated curriculum for one learner goal.
type LearningPath struct {
	ent.Schema
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
		field.String("goal").
			NotEmpty(),
		field.String("motivation").
			NotEmpty().
			Comment("career, hobby, corporate, personal, project, entrepreneurship"),
		field.String("difficulty").
			NotEmpty().
			Comment("beginner, intermediate, advanced"),
		field.String("estimated_duration").
			Optional(),
		field.Int("progress").
			Default(0).
			Comment("Completion percentage"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearningPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
