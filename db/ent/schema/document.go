package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/rtanga/clearance-tracker/constants"
	"github.com/rtanga/clearance-tracker/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("clearance_set_id", uuid.UUID{}),
		field.String("clearance_type").NotEmpty().
			Validate(utils.EnumValidator(constants.TypesAsStringSlice()...)),
		field.String("source_path").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("clearance_status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		field.String("predicted_status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.PredictedStatuses...)),
		field.Time("predicted_at").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE clearance set
		edge.From("clearance_set", ClearanceSet.Type).
			Ref("documents").
			Field("clearance_set_id").
			Required().
			Unique(),
		// ONE document -> MANY prediction jobs
		edge.To("jobs", PredictJob.Type).
			Annotations(entsql.Annotation{
				OnDelete: entsql.Cascade,
			}),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clearance_set_id", "content_hash").Unique(),
		index.Fields("clearance_set_id", "clearance_type"),
	}
}
