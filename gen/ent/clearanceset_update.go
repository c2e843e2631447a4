// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/document"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
)

// ClearanceSetUpdate is the builder for updating ClearanceSet entities.
type ClearanceSetUpdate struct {
	config
	hooks    []Hook
	mutation *ClearanceSetMutation
}

// Where appends a list predicates to the ClearanceSetUpdate builder.
func (_u *ClearanceSetUpdate) Where(ps ...predicate.ClearanceSet) *ClearanceSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFacultyID sets the "faculty_id" field.
func (_u *ClearanceSetUpdate) SetFacultyID(v uuid.UUID) *ClearanceSetUpdate {
	_u.mutation.SetFacultyID(v)
	return _u
}

// SetNillableFacultyID sets the "faculty_id" field if the given value is not nil.
func (_u *ClearanceSetUpdate) SetNillableFacultyID(v *uuid.UUID) *ClearanceSetUpdate {
	if v != nil {
		_u.SetFacultyID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ClearanceSetUpdate) SetName(v string) *ClearanceSetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClearanceSetUpdate) SetNillableName(v *string) *ClearanceSetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAcademicYear sets the "academic_year" field.
func (_u *ClearanceSetUpdate) SetAcademicYear(v string) *ClearanceSetUpdate {
	_u.mutation.SetAcademicYear(v)
	return _u
}

// SetNillableAcademicYear sets the "academic_year" field if the given value is not nil.
func (_u *ClearanceSetUpdate) SetNillableAcademicYear(v *string) *ClearanceSetUpdate {
	if v != nil {
		_u.SetAcademicYear(*v)
	}
	return _u
}

// SetRequiredTypes sets the "required_types" field.
func (_u *ClearanceSetUpdate) SetRequiredTypes(v []string) *ClearanceSetUpdate {
	_u.mutation.SetRequiredTypes(v)
	return _u
}

// AppendRequiredTypes appends value to the "required_types" field.
func (_u *ClearanceSetUpdate) AppendRequiredTypes(v []string) *ClearanceSetUpdate {
	_u.mutation.AppendRequiredTypes(v)
	return _u
}

// ClearRequiredTypes clears the value of the "required_types" field.
func (_u *ClearanceSetUpdate) ClearRequiredTypes() *ClearanceSetUpdate {
	_u.mutation.ClearRequiredTypes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClearanceSetUpdate) SetCreatedAt(v time.Time) *ClearanceSetUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClearanceSetUpdate) SetNillableCreatedAt(v *time.Time) *ClearanceSetUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClearanceSetUpdate) SetUpdatedAt(v time.Time) *ClearanceSetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFaculty sets the "faculty" edge to the Faculty entity.
func (_u *ClearanceSetUpdate) SetFaculty(v *Faculty) *ClearanceSetUpdate {
	return _u.SetFacultyID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ClearanceSetUpdate) AddDocumentIDs(ids ...uuid.UUID) *ClearanceSetUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ClearanceSetUpdate) AddDocuments(v ...*Document) *ClearanceSetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ClearanceSetMutation object of the builder.
func (_u *ClearanceSetUpdate) Mutation() *ClearanceSetMutation {
	return _u.mutation
}

// ClearFaculty clears the "faculty" edge to the Faculty entity.
func (_u *ClearanceSetUpdate) ClearFaculty() *ClearanceSetUpdate {
	_u.mutation.ClearFaculty()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ClearanceSetUpdate) ClearDocuments() *ClearanceSetUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ClearanceSetUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *ClearanceSetUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ClearanceSetUpdate) RemoveDocuments(v ...*Document) *ClearanceSetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClearanceSetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClearanceSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClearanceSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClearanceSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClearanceSetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clearanceset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClearanceSetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clearanceset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ClearanceSet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AcademicYear(); ok {
		if err := clearanceset.AcademicYearValidator(v); err != nil {
			return &ValidationError{Name: "academic_year", err: fmt.Errorf(`ent: validator failed for field "ClearanceSet.academic_year": %w`, err)}
		}
	}
	if _u.mutation.FacultyCleared() && len(_u.mutation.FacultyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClearanceSet.faculty"`)
	}
	return nil
}

func (_u *ClearanceSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clearanceset.Table, clearanceset.Columns, sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clearanceset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcademicYear(); ok {
		_spec.SetField(clearanceset.FieldAcademicYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredTypes(); ok {
		_spec.SetField(clearanceset.FieldRequiredTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clearanceset.FieldRequiredTypes, value)
		})
	}
	if _u.mutation.RequiredTypesCleared() {
		_spec.ClearField(clearanceset.FieldRequiredTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(clearanceset.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clearanceset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FacultyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clearanceset.FacultyTable,
			Columns: []string{clearanceset.FacultyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faculty.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacultyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clearanceset.FacultyTable,
			Columns: []string{clearanceset.FacultyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faculty.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clearanceset.DocumentsTable,
			Columns: []string{clearanceset.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clearanceset.DocumentsTable,
			Columns: []string{clearanceset.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clearanceset.DocumentsTable,
			Columns: []string{clearanceset.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clearanceset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClearanceSetUpdateOne is the builder for updating a single ClearanceSet entity.
type ClearanceSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClearanceSetMutation
}

// SetFacultyID sets the "faculty_id" field.
func (_u *ClearanceSetUpdateOne) SetFacultyID(v uuid.UUID) *ClearanceSetUpdateOne {
	_u.mutation.SetFacultyID(v)
	return _u
}

// SetNillableFacultyID sets the "faculty_id" field if the given value is not nil.
func (_u *ClearanceSetUpdateOne) SetNillableFacultyID(v *uuid.UUID) *ClearanceSetUpdateOne {
	if v != nil {
		_u.SetFacultyID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ClearanceSetUpdateOne) SetName(v string) *ClearanceSetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClearanceSetUpdateOne) SetNillableName(v *string) *ClearanceSetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAcademicYear sets the "academic_year" field.
func (_u *ClearanceSetUpdateOne) SetAcademicYear(v string) *ClearanceSetUpdateOne {
	_u.mutation.SetAcademicYear(v)
	return _u
}

// SetNillableAcademicYear sets the "academic_year" field if the given value is not nil.
func (_u *ClearanceSetUpdateOne) SetNillableAcademicYear(v *string) *ClearanceSetUpdateOne {
	if v != nil {
		_u.SetAcademicYear(*v)
	}
	return _u
}

// SetRequiredTypes sets the "required_types" field.
func (_u *ClearanceSetUpdateOne) SetRequiredTypes(v []string) *ClearanceSetUpdateOne {
	_u.mutation.SetRequiredTypes(v)
	return _u
}

// AppendRequiredTypes appends value to the "required_types" field.
func (_u *ClearanceSetUpdateOne) AppendRequiredTypes(v []string) *ClearanceSetUpdateOne {
	_u.mutation.AppendRequiredTypes(v)
	return _u
}

// ClearRequiredTypes clears the value of the "required_types" field.
func (_u *ClearanceSetUpdateOne) ClearRequiredTypes() *ClearanceSetUpdateOne {
	_u.mutation.ClearRequiredTypes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClearanceSetUpdateOne) SetCreatedAt(v time.Time) *ClearanceSetUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClearanceSetUpdateOne) SetNillableCreatedAt(v *time.Time) *ClearanceSetUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClearanceSetUpdateOne) SetUpdatedAt(v time.Time) *ClearanceSetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFaculty sets the "faculty" edge to the Faculty entity.
func (_u *ClearanceSetUpdateOne) SetFaculty(v *Faculty) *ClearanceSetUpdateOne {
	return _u.SetFacultyID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ClearanceSetUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *ClearanceSetUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ClearanceSetUpdateOne) AddDocuments(v ...*Document) *ClearanceSetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the ClearanceSetMutation object of the builder.
func (_u *ClearanceSetUpdateOne) Mutation() *ClearanceSetMutation {
	return _u.mutation
}

// ClearFaculty clears the "faculty" edge to the Faculty entity.
func (_u *ClearanceSetUpdateOne) ClearFaculty() *ClearanceSetUpdateOne {
	_u.mutation.ClearFaculty()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ClearanceSetUpdateOne) ClearDocuments() *ClearanceSetUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ClearanceSetUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *ClearanceSetUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ClearanceSetUpdateOne) RemoveDocuments(v ...*Document) *ClearanceSetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the ClearanceSetUpdate builder.
func (_u *ClearanceSetUpdateOne) Where(ps ...predicate.ClearanceSet) *ClearanceSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClearanceSetUpdateOne) Select(field string, fields ...string) *ClearanceSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClearanceSet entity.
func (_u *ClearanceSetUpdateOne) Save(ctx context.Context) (*ClearanceSet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClearanceSetUpdateOne) SaveX(ctx context.Context) *ClearanceSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClearanceSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClearanceSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClearanceSetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clearanceset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClearanceSetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clearanceset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ClearanceSet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AcademicYear(); ok {
		if err := clearanceset.AcademicYearValidator(v); err != nil {
			return &ValidationError{Name: "academic_year", err: fmt.Errorf(`ent: validator failed for field "ClearanceSet.academic_year": %w`, err)}
		}
	}
	if _u.mutation.FacultyCleared() && len(_u.mutation.FacultyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClearanceSet.faculty"`)
	}
	return nil
}

func (_u *ClearanceSetUpdateOne) sqlSave(ctx context.Context) (_node *ClearanceSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clearanceset.Table, clearanceset.Columns, sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClearanceSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clearanceset.FieldID)
		for _, f := range fields {
			if !clearanceset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clearanceset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clearanceset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcademicYear(); ok {
		_spec.SetField(clearanceset.FieldAcademicYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredTypes(); ok {
		_spec.SetField(clearanceset.FieldRequiredTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clearanceset.FieldRequiredTypes, value)
		})
	}
	if _u.mutation.RequiredTypesCleared() {
		_spec.ClearField(clearanceset.FieldRequiredTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(clearanceset.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clearanceset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FacultyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clearanceset.FacultyTable,
			Columns: []string{clearanceset.FacultyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faculty.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacultyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clearanceset.FacultyTable,
			Columns: []string{clearanceset.FacultyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(faculty.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clearanceset.DocumentsTable,
			Columns: []string{clearanceset.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clearanceset.DocumentsTable,
			Columns: []string{clearanceset.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clearanceset.DocumentsTable,
			Columns: []string{clearanceset.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClearanceSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clearanceset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
