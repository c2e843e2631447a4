// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
)

// ClearanceSet is the model entity for the ClearanceSet schema.
type ClearanceSet struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FacultyID holds the value of the "faculty_id" field.
	FacultyID uuid.UUID `json:"faculty_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// AcademicYear holds the value of the "academic_year" field.
	AcademicYear string `json:"academic_year,omitempty"`
	// RequiredTypes holds the value of the "required_types" field.
	RequiredTypes []string `json:"required_types,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClearanceSetQuery when eager-loading is set.
	Edges        ClearanceSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClearanceSetEdges holds the relations/edges for other nodes in the graph.
type ClearanceSetEdges struct {
	// Faculty holds the value of the faculty edge.
	Faculty *Faculty `json:"faculty,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FacultyOrErr returns the Faculty value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClearanceSetEdges) FacultyOrErr() (*Faculty, error) {
	if e.Faculty != nil {
		return e.Faculty, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: faculty.Label}
	}
	return nil, &NotLoadedError{edge: "faculty"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e ClearanceSetEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClearanceSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clearanceset.FieldRequiredTypes:
			values[i] = new([]byte)
		case clearanceset.FieldName, clearanceset.FieldAcademicYear:
			values[i] = new(sql.NullString)
		case clearanceset.FieldCreatedAt, clearanceset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case clearanceset.FieldID, clearanceset.FieldFacultyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClearanceSet fields.
func (_m *ClearanceSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clearanceset.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clearanceset.FieldFacultyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field faculty_id", values[i])
			} else if value != nil {
				_m.FacultyID = *value
			}
		case clearanceset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case clearanceset.FieldAcademicYear:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field academic_year", values[i])
			} else if value.Valid {
				_m.AcademicYear = value.String
			}
		case clearanceset.FieldRequiredTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredTypes); err != nil {
					return fmt.Errorf("unmarshal field required_types: %w", err)
				}
			}
		case clearanceset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clearanceset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClearanceSet.
// This includes values selected through modifiers, order, etc.
func (_m *ClearanceSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFaculty queries the "faculty" edge of the ClearanceSet entity.
func (_m *ClearanceSet) QueryFaculty() *FacultyQuery {
	return NewClearanceSetClient(_m.config).QueryFaculty(_m)
}

// QueryDocuments queries the "documents" edge of the ClearanceSet entity.
func (_m *ClearanceSet) QueryDocuments() *DocumentQuery {
	return NewClearanceSetClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this ClearanceSet.
// Note that you need to call ClearanceSet.Unwrap() before calling this method if this ClearanceSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClearanceSet) Update() *ClearanceSetUpdateOne {
	return NewClearanceSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClearanceSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClearanceSet) Unwrap() *ClearanceSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClearanceSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClearanceSet) String() string {
	var builder strings.Builder
	builder.WriteString("ClearanceSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("faculty_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FacultyID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("academic_year=")
	builder.WriteString(_m.AcademicYear)
	builder.WriteString(", ")
	builder.WriteString("required_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredTypes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClearanceSets is a parsable slice of ClearanceSet.
type ClearanceSets []*ClearanceSet
