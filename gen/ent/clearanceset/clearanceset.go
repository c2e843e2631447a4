// Code generated by ent, DO NOT EDIT.

package clearanceset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the clearanceset type in the database.
	Label = "clearance_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFacultyID holds the string denoting the faculty_id field in the database.
	FieldFacultyID = "faculty_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAcademicYear holds the string denoting the academic_year field in the database.
	FieldAcademicYear = "academic_year"
	// FieldRequiredTypes holds the string denoting the required_types field in the database.
	FieldRequiredTypes = "required_types"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFaculty holds the string denoting the faculty edge name in mutations.
	EdgeFaculty = "faculty"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// Table holds the table name of the clearanceset in the database.
	Table = "clearance_sets"
	// FacultyTable is the table that holds the faculty relation/edge.
	FacultyTable = "clearance_sets"
	// FacultyInverseTable is the table name for the Faculty entity.
	// It exists in this package in order to avoid circular dependency with the "faculty" package.
	FacultyInverseTable = "faculty"
	// FacultyColumn is the table column denoting the faculty relation/edge.
	FacultyColumn = "faculty_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "clearance_set_id"
)

// Columns holds all SQL columns for clearanceset fields.
var Columns = []string{
	FieldID,
	FieldFacultyID,
	FieldName,
	FieldAcademicYear,
	FieldRequiredTypes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// AcademicYearValidator is a validator for the "academic_year" field. It is called by the builders before save.
	AcademicYearValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ClearanceSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFacultyID orders the results by the faculty_id field.
func ByFacultyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacultyID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAcademicYear orders the results by the academic_year field.
func ByAcademicYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcademicYear, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFacultyField orders the results by faculty field.
func ByFacultyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacultyStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFacultyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacultyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FacultyTable, FacultyColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
