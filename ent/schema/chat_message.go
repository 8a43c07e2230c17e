package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ChatMessage is one turn in a tutoring conversation. The log is append-only:
// turns are never updated or deleted, and per-(user, path) ordering is by
// created_at.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Fields() []ent.Field {
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
		field.String("role").
			NotEmpty().
			Immutable().
			Comment("user or assistant"),
		field.Text("content").
			NotEmpty().
			Immutable(),
		field.JSON("context", map[string]any{}).
			Optional().
			Comment("Auxiliary turn context: suggestions, hints, assessment summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "path_id", "created_at"),
	}
}
