package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// academic years are stored as "2025-2026"
var reAcademicYear = regexp.MustCompile(`^[0-9]{4}-[0-9]{4}$`)

var errAcademicYear = errors.New("academic year must look like 2025-2026")

type ClearanceSet struct{ ent.Schema }

func (ClearanceSet) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "clearance_sets"},
	}
}

func (ClearanceSet) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("faculty_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("academic_year").NotEmpty().
			Validate(func(s string) error {
				if reAcademicYear.MatchString(s) {
					return nil
				}
				return errAcademicYear
			}),
		field.JSON("required_types", []string{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ClearanceSet) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY sets -> ONE faculty member
		edge.From("faculty", Faculty.Type).
			Ref("clearance_sets").
			Field("faculty_id").
			Required().
			Unique(),
		// ONE set -> MANY documents
		edge.To("documents", Document.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (ClearanceSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("faculty_id", "name").Unique(),
	}
}
