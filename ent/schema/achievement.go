package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Achievement is an earned badge with a point value.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
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
		field.String("icon").
			NotEmpty(),
		field.Int("points"),
		field.String("category").
			NotEmpty().
			Comment("completion, streak, skill"),
		field.Time("earned_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
