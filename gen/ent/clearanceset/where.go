// Code generated by ent, DO NOT EDIT.

package clearanceset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLTE(FieldID, id))
}

// FacultyID applies equality check predicate on the "faculty_id" field. It's identical to FacultyIDEQ.
func FacultyID(v uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldFacultyID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldName, v))
}

// AcademicYear applies equality check predicate on the "academic_year" field. It's identical to AcademicYearEQ.
func AcademicYear(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldAcademicYear, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// FacultyIDEQ applies the EQ predicate on the "faculty_id" field.
func FacultyIDEQ(v uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldFacultyID, v))
}

// FacultyIDNEQ applies the NEQ predicate on the "faculty_id" field.
func FacultyIDNEQ(v uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNEQ(FieldFacultyID, v))
}

// FacultyIDIn applies the In predicate on the "faculty_id" field.
func FacultyIDIn(vs ...uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldIn(FieldFacultyID, vs...))
}

// FacultyIDNotIn applies the NotIn predicate on the "faculty_id" field.
func FacultyIDNotIn(vs ...uuid.UUID) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNotIn(FieldFacultyID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldContainsFold(FieldName, v))
}

// AcademicYearEQ applies the EQ predicate on the "academic_year" field.
func AcademicYearEQ(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldAcademicYear, v))
}

// AcademicYearNEQ applies the NEQ predicate on the "academic_year" field.
func AcademicYearNEQ(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNEQ(FieldAcademicYear, v))
}

// AcademicYearIn applies the In predicate on the "academic_year" field.
func AcademicYearIn(vs ...string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldIn(FieldAcademicYear, vs...))
}

// AcademicYearNotIn applies the NotIn predicate on the "academic_year" field.
func AcademicYearNotIn(vs ...string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNotIn(FieldAcademicYear, vs...))
}

// AcademicYearGT applies the GT predicate on the "academic_year" field.
func AcademicYearGT(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGT(FieldAcademicYear, v))
}

// AcademicYearGTE applies the GTE predicate on the "academic_year" field.
func AcademicYearGTE(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGTE(FieldAcademicYear, v))
}

// AcademicYearLT applies the LT predicate on the "academic_year" field.
func AcademicYearLT(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLT(FieldAcademicYear, v))
}

// AcademicYearLTE applies the LTE predicate on the "academic_year" field.
func AcademicYearLTE(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLTE(FieldAcademicYear, v))
}

// AcademicYearContains applies the Contains predicate on the "academic_year" field.
func AcademicYearContains(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldContains(FieldAcademicYear, v))
}

// AcademicYearHasPrefix applies the HasPrefix predicate on the "academic_year" field.
func AcademicYearHasPrefix(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldHasPrefix(FieldAcademicYear, v))
}

// AcademicYearHasSuffix applies the HasSuffix predicate on the "academic_year" field.
func AcademicYearHasSuffix(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldHasSuffix(FieldAcademicYear, v))
}

// AcademicYearEqualFold applies the EqualFold predicate on the "academic_year" field.
func AcademicYearEqualFold(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEqualFold(FieldAcademicYear, v))
}

// AcademicYearContainsFold applies the ContainsFold predicate on the "academic_year" field.
func AcademicYearContainsFold(v string) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldContainsFold(FieldAcademicYear, v))
}

// RequiredTypesIsNil applies the IsNil predicate on the "required_types" field.
func RequiredTypesIsNil() predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldIsNull(FieldRequiredTypes))
}

// RequiredTypesNotNil applies the NotNil predicate on the "required_types" field.
func RequiredTypesNotNil() predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNotNull(FieldRequiredTypes))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFaculty applies the HasEdge predicate on the "faculty" edge.
func HasFaculty() predicate.ClearanceSet {
	return predicate.ClearanceSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FacultyTable, FacultyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacultyWith applies the HasEdge predicate on the "faculty" edge with a given conditions (other predicates).
func HasFacultyWith(preds ...predicate.Faculty) predicate.ClearanceSet {
	return predicate.ClearanceSet(func(s *sql.Selector) {
		step := newFacultyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.ClearanceSet {
	return predicate.ClearanceSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.ClearanceSet {
	return predicate.ClearanceSet(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClearanceSet) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClearanceSet) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClearanceSet) predicate.ClearanceSet {
	return predicate.ClearanceSet(sql.NotPredicates(p))
}
