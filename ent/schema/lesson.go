package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Lesson is an ordered unit of a module. Content is generated lazily on
// first access and stored as JSON.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("module_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.JSON("content", map[string]any{}).
			Optional().
			Comment("Rich content structure, empty until generated"),
		field.Int("order_index"),
		field.Int("duration").
			Optional().
			Comment("Estimated minutes"),
		field.Bool("is_completed").
			Default(false),
		field.JSON("resources", []map[string]any{}).
			Optional(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id", "order_index"),
	}
}
