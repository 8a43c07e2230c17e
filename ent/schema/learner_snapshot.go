package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LearnerSnapshot is a persisted difficulty assessment: one timestamped
// record per analysis pass, keyed by user, path, and lesson. Snapshots are
// append-only: never mutated, and the learner-state time series is read
// back in creation order.
type LearnerSnapshot struct {
	ent.Schema
}

func (LearnerSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("path_id").
			Optional().
			Immutable(),
		field.String("lesson_id").
			Optional().
			Immutable(),
		field.String("level").
			NotEmpty().
			Immutable().
			Comment("struggling, comfortable, advanced, mastery"),
		field.Float("confidence").
			Immutable(),
		field.JSON("assessment", map[string]any{}).
			Immutable().
			Comment("Full assessment payload as produced by the classifier"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearnerSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "path_id", "created_at"),
	}
}
