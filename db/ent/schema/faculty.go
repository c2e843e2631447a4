package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Faculty struct{ ent.Schema }

func (Faculty) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "faculty"},
	}
}

func (Faculty) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty().Unique(),
		field.String("department").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Faculty) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("clearance_sets", ClearanceSet.Type),
	}
}
