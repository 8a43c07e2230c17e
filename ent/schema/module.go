package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Module is an ordered unit of a learning path.
type Module struct {
	ent.Schema
}

func (Module) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("path_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Int("order_index"),
		field.Bool("is_completed").
			Default(false),
		field.Bool("is_unlocked").
			Default(false),
		field.Int("total_lessons").
			Default(0),
		field.Int("completed_lessons").
			Default(0),
	}
}

func (Module) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id", "order_index"),
	}
}
