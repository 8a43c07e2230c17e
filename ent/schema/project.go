package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Project is a portfolio entry built during a learning path.
type Project struct {
	ent.Schema
}

func (Project) Fields() []ent.Field {
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
		field.JSON("technologies", []string{}),
		field.String("image_url").
			Optional(),
		field.String("github_url").
			Optional(),
		field.String("live_url").
			Optional(),
		field.Bool("is_completed").
			Default(false),
		field.Time("completed_at").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
