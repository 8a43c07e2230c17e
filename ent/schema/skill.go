package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Skill tracks per-user progress on a named skill.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("category").
			NotEmpty(),
		field.String("level").
			NotEmpty().
			Comment("beginner, intermediate, advanced"),
		field.Int("progress").
			Default(0).
			Comment("Percentage"),
		field.String("icon").
			Optional(),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
