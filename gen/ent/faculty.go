// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
)

// Faculty is the model entity for the Faculty schema.
type Faculty struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacultyQuery when eager-loading is set.
	Edges        FacultyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FacultyEdges holds the relations/edges for other nodes in the graph.
type FacultyEdges struct {
	// ClearanceSets holds the value of the clearance_sets edge.
	ClearanceSets []*ClearanceSet `json:"clearance_sets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClearanceSetsOrErr returns the ClearanceSets value or an error if the edge
// was not loaded in eager-loading.
func (e FacultyEdges) ClearanceSetsOrErr() ([]*ClearanceSet, error) {
	if e.loadedTypes[0] {
		return e.ClearanceSets, nil
	}
	return nil, &NotLoadedError{edge: "clearance_sets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Faculty) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case faculty.FieldName, faculty.FieldEmail, faculty.FieldDepartment:
			values[i] = new(sql.NullString)
		case faculty.FieldCreatedAt, faculty.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case faculty.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Faculty fields.
func (_m *Faculty) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case faculty.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case faculty.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case faculty.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case faculty.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case faculty.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case faculty.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Faculty.
// This includes values selected through modifiers, order, etc.
func (_m *Faculty) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClearanceSets queries the "clearance_sets" edge of the Faculty entity.
func (_m *Faculty) QueryClearanceSets() *ClearanceSetQuery {
	return NewFacultyClient(_m.config).QueryClearanceSets(_m)
}

// Update returns a builder for updating this Faculty.
// Note that you need to call Faculty.Unwrap() before calling this method if this Faculty
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Faculty) Update() *FacultyUpdateOne {
	return NewFacultyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Faculty entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Faculty) Unwrap() *Faculty {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Faculty is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Faculty) String() string {
	var builder strings.Builder
	builder.WriteString("Faculty(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Faculties is a parsable slice of Faculty.
type Faculties []*Faculty
