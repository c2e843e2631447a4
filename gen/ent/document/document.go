// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClearanceSetID holds the string denoting the clearance_set_id field in the database.
	FieldClearanceSetID = "clearance_set_id"
	// FieldClearanceType holds the string denoting the clearance_type field in the database.
	FieldClearanceType = "clearance_type"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileExt holds the string denoting the file_ext field in the database.
	FieldFileExt = "file_ext"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldClearanceStatus holds the string denoting the clearance_status field in the database.
	FieldClearanceStatus = "clearance_status"
	// FieldPredictedStatus holds the string denoting the predicted_status field in the database.
	FieldPredictedStatus = "predicted_status"
	// FieldPredictedAt holds the string denoting the predicted_at field in the database.
	FieldPredictedAt = "predicted_at"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeClearanceSet holds the string denoting the clearance_set edge name in mutations.
	EdgeClearanceSet = "clearance_set"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// ClearanceSetTable is the table that holds the clearance_set relation/edge.
	ClearanceSetTable = "documents"
	// ClearanceSetInverseTable is the table name for the ClearanceSet entity.
	// It exists in this package in order to avoid circular dependency with the "clearanceset" package.
	ClearanceSetInverseTable = "clearance_sets"
	// ClearanceSetColumn is the table column denoting the clearance_set relation/edge.
	ClearanceSetColumn = "clearance_set_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "predict_job"
	// JobsInverseTable is the table name for the PredictJob entity.
	// It exists in this package in order to avoid circular dependency with the "predictjob" package.
	JobsInverseTable = "predict_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldClearanceSetID,
	FieldClearanceType,
	FieldSourcePath,
	FieldFileName,
	FieldFileExt,
	FieldContentHash,
	FieldClearanceStatus,
	FieldPredictedStatus,
	FieldPredictedAt,
	FieldUploadedAt,
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
	// ClearanceTypeValidator is a validator for the "clearance_type" field. It is called by the builders before save.
	ClearanceTypeValidator func(string) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	FileExtValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// DefaultClearanceStatus holds the default value on creation for the "clearance_status" field.
	DefaultClearanceStatus string
	// ClearanceStatusValidator is a validator for the "clearance_status" field. It is called by the builders before save.
	ClearanceStatusValidator func(string) error
	// PredictedStatusValidator is a validator for the "predicted_status" field. It is called by the builders before save.
	PredictedStatusValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClearanceSetID orders the results by the clearance_set_id field.
func ByClearanceSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearanceSetID, opts...).ToFunc()
}

// ByClearanceType orders the results by the clearance_type field.
func ByClearanceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearanceType, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFileExt orders the results by the file_ext field.
func ByFileExt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileExt, opts...).ToFunc()
}

// ByClearanceStatus orders the results by the clearance_status field.
func ByClearanceStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearanceStatus, opts...).ToFunc()
}

// ByPredictedStatus orders the results by the predicted_status field.
func ByPredictedStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedStatus, opts...).ToFunc()
}

// ByPredictedAt orders the results by the predicted_at field.
func ByPredictedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedAt, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByClearanceSetField orders the results by clearance_set field.
func ByClearanceSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClearanceSetStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClearanceSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClearanceSetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClearanceSetTable, ClearanceSetColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
