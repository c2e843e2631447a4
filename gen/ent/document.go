// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ClearanceSetID holds the value of the "clearance_set_id" field.
	ClearanceSetID uuid.UUID `json:"clearance_set_id,omitempty"`
	// ClearanceType holds the value of the "clearance_type" field.
	ClearanceType string `json:"clearance_type,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// ClearanceStatus holds the value of the "clearance_status" field.
	ClearanceStatus string `json:"clearance_status,omitempty"`
	// PredictedStatus holds the value of the "predicted_status" field.
	PredictedStatus *string `json:"predicted_status,omitempty"`
	// PredictedAt holds the value of the "predicted_at" field.
	PredictedAt *time.Time `json:"predicted_at,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// ClearanceSet holds the value of the clearance_set edge.
	ClearanceSet *ClearanceSet `json:"clearance_set,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*PredictJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClearanceSetOrErr returns the ClearanceSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) ClearanceSetOrErr() (*ClearanceSet, error) {
	if e.ClearanceSet != nil {
		return e.ClearanceSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clearanceset.Label}
	}
	return nil, &NotLoadedError{edge: "clearance_set"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) JobsOrErr() ([]*PredictJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldContentHash:
			values[i] = new([]byte)
		case document.FieldClearanceType, document.FieldSourcePath, document.FieldFileName, document.FieldFileExt, document.FieldClearanceStatus, document.FieldPredictedStatus:
			values[i] = new(sql.NullString)
		case document.FieldPredictedAt, document.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID, document.FieldClearanceSetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldClearanceSetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clearance_set_id", values[i])
			} else if value != nil {
				_m.ClearanceSetID = *value
			}
		case document.FieldClearanceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clearance_type", values[i])
			} else if value.Valid {
				_m.ClearanceType = value.String
			}
		case document.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case document.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case document.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case document.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case document.FieldClearanceStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clearance_status", values[i])
			} else if value.Valid {
				_m.ClearanceStatus = value.String
			}
		case document.FieldPredictedStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_status", values[i])
			} else if value.Valid {
				_m.PredictedStatus = new(string)
				*_m.PredictedStatus = value.String
			}
		case document.FieldPredictedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_at", values[i])
			} else if value.Valid {
				_m.PredictedAt = new(time.Time)
				*_m.PredictedAt = value.Time
			}
		case document.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClearanceSet queries the "clearance_set" edge of the Document entity.
func (_m *Document) QueryClearanceSet() *ClearanceSetQuery {
	return NewDocumentClient(_m.config).QueryClearanceSet(_m)
}

// QueryJobs queries the "jobs" edge of the Document entity.
func (_m *Document) QueryJobs() *PredictJobQuery {
	return NewDocumentClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("clearance_set_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClearanceSetID))
	builder.WriteString(", ")
	builder.WriteString("clearance_type=")
	builder.WriteString(_m.ClearanceType)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("clearance_status=")
	builder.WriteString(_m.ClearanceStatus)
	builder.WriteString(", ")
	if v := _m.PredictedStatus; v != nil {
		builder.WriteString("predicted_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PredictedAt; v != nil {
		builder.WriteString("predicted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
