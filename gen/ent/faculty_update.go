// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
)

// FacultyUpdate is the builder for updating Faculty entities.
type FacultyUpdate struct {
	config
	hooks    []Hook
	mutation *FacultyMutation
}

// Where appends a list predicates to the FacultyUpdate builder.
func (_u *FacultyUpdate) Where(ps ...predicate.Faculty) *FacultyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FacultyUpdate) SetName(v string) *FacultyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FacultyUpdate) SetNillableName(v *string) *FacultyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *FacultyUpdate) SetEmail(v string) *FacultyUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *FacultyUpdate) SetNillableEmail(v *string) *FacultyUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *FacultyUpdate) SetDepartment(v string) *FacultyUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *FacultyUpdate) SetNillableDepartment(v *string) *FacultyUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FacultyUpdate) SetCreatedAt(v time.Time) *FacultyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FacultyUpdate) SetNillableCreatedAt(v *time.Time) *FacultyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FacultyUpdate) SetUpdatedAt(v time.Time) *FacultyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddClearanceSetIDs adds the "clearance_sets" edge to the ClearanceSet entity by IDs.
func (_u *FacultyUpdate) AddClearanceSetIDs(ids ...uuid.UUID) *FacultyUpdate {
	_u.mutation.AddClearanceSetIDs(ids...)
	return _u
}

// AddClearanceSets adds the "clearance_sets" edges to the ClearanceSet entity.
func (_u *FacultyUpdate) AddClearanceSets(v ...*ClearanceSet) *FacultyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClearanceSetIDs(ids...)
}

// Mutation returns the FacultyMutation object of the builder.
func (_u *FacultyUpdate) Mutation() *FacultyMutation {
	return _u.mutation
}

// ClearClearanceSets clears all "clearance_sets" edges to the ClearanceSet entity.
func (_u *FacultyUpdate) ClearClearanceSets() *FacultyUpdate {
	_u.mutation.ClearClearanceSets()
	return _u
}

// RemoveClearanceSetIDs removes the "clearance_sets" edge to ClearanceSet entities by IDs.
func (_u *FacultyUpdate) RemoveClearanceSetIDs(ids ...uuid.UUID) *FacultyUpdate {
	_u.mutation.RemoveClearanceSetIDs(ids...)
	return _u
}

// RemoveClearanceSets removes "clearance_sets" edges to ClearanceSet entities.
func (_u *FacultyUpdate) RemoveClearanceSets(v ...*ClearanceSet) *FacultyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClearanceSetIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FacultyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacultyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FacultyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacultyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FacultyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := faculty.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacultyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := faculty.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Faculty.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := faculty.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Faculty.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := faculty.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Faculty.department": %w`, err)}
		}
	}
	return nil
}

func (_u *FacultyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faculty.Table, faculty.Columns, sqlgraph.NewFieldSpec(faculty.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(faculty.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(faculty.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(faculty.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(faculty.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(faculty.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClearanceSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   faculty.ClearanceSetsTable,
			Columns: []string{faculty.ClearanceSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClearanceSetsIDs(); len(nodes) > 0 && !_u.mutation.ClearanceSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   faculty.ClearanceSetsTable,
			Columns: []string{faculty.ClearanceSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClearanceSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   faculty.ClearanceSetsTable,
			Columns: []string{faculty.ClearanceSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faculty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FacultyUpdateOne is the builder for updating a single Faculty entity.
type FacultyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacultyMutation
}

// SetName sets the "name" field.
func (_u *FacultyUpdateOne) SetName(v string) *FacultyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FacultyUpdateOne) SetNillableName(v *string) *FacultyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *FacultyUpdateOne) SetEmail(v string) *FacultyUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *FacultyUpdateOne) SetNillableEmail(v *string) *FacultyUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *FacultyUpdateOne) SetDepartment(v string) *FacultyUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *FacultyUpdateOne) SetNillableDepartment(v *string) *FacultyUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FacultyUpdateOne) SetCreatedAt(v time.Time) *FacultyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FacultyUpdateOne) SetNillableCreatedAt(v *time.Time) *FacultyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FacultyUpdateOne) SetUpdatedAt(v time.Time) *FacultyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddClearanceSetIDs adds the "clearance_sets" edge to the ClearanceSet entity by IDs.
func (_u *FacultyUpdateOne) AddClearanceSetIDs(ids ...uuid.UUID) *FacultyUpdateOne {
	_u.mutation.AddClearanceSetIDs(ids...)
	return _u
}

// AddClearanceSets adds the "clearance_sets" edges to the ClearanceSet entity.
func (_u *FacultyUpdateOne) AddClearanceSets(v ...*ClearanceSet) *FacultyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClearanceSetIDs(ids...)
}

// Mutation returns the FacultyMutation object of the builder.
func (_u *FacultyUpdateOne) Mutation() *FacultyMutation {
	return _u.mutation
}

// ClearClearanceSets clears all "clearance_sets" edges to the ClearanceSet entity.
func (_u *FacultyUpdateOne) ClearClearanceSets() *FacultyUpdateOne {
	_u.mutation.ClearClearanceSets()
	return _u
}

// RemoveClearanceSetIDs removes the "clearance_sets" edge to ClearanceSet entities by IDs.
func (_u *FacultyUpdateOne) RemoveClearanceSetIDs(ids ...uuid.UUID) *FacultyUpdateOne {
	_u.mutation.RemoveClearanceSetIDs(ids...)
	return _u
}

// RemoveClearanceSets removes "clearance_sets" edges to ClearanceSet entities.
func (_u *FacultyUpdateOne) RemoveClearanceSets(v ...*ClearanceSet) *FacultyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClearanceSetIDs(ids...)
}

// Where appends a list predicates to the FacultyUpdate builder.
func (_u *FacultyUpdateOne) Where(ps ...predicate.Faculty) *FacultyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FacultyUpdateOne) Select(field string, fields ...string) *FacultyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Faculty entity.
func (_u *FacultyUpdateOne) Save(ctx context.Context) (*Faculty, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacultyUpdateOne) SaveX(ctx context.Context) *Faculty {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FacultyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacultyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FacultyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := faculty.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacultyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := faculty.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Faculty.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := faculty.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Faculty.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := faculty.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Faculty.department": %w`, err)}
		}
	}
	return nil
}

func (_u *FacultyUpdateOne) sqlSave(ctx context.Context) (_node *Faculty, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(faculty.Table, faculty.Columns, sqlgraph.NewFieldSpec(faculty.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Faculty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, faculty.FieldID)
		for _, f := range fields {
			if !faculty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != faculty.FieldID {
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
		_spec.SetField(faculty.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(faculty.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(faculty.FieldDepartment, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(faculty.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(faculty.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClearanceSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   faculty.ClearanceSetsTable,
			Columns: []string{faculty.ClearanceSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClearanceSetsIDs(); len(nodes) > 0 && !_u.mutation.ClearanceSetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   faculty.ClearanceSetsTable,
			Columns: []string{faculty.ClearanceSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClearanceSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   faculty.ClearanceSetsTable,
			Columns: []string{faculty.ClearanceSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Faculty{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{faculty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
