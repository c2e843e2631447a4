// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/document"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
)

// ClearanceSetCreate is the builder for creating a ClearanceSet entity.
type ClearanceSetCreate struct {
	config
	mutation *ClearanceSetMutation
	hooks    []Hook
}

// SetFacultyID sets the "faculty_id" field.
func (_c *ClearanceSetCreate) SetFacultyID(v uuid.UUID) *ClearanceSetCreate {
	_c.mutation.SetFacultyID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ClearanceSetCreate) SetName(v string) *ClearanceSetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAcademicYear sets the "academic_year" field.
func (_c *ClearanceSetCreate) SetAcademicYear(v string) *ClearanceSetCreate {
	_c.mutation.SetAcademicYear(v)
	return _c
}

// SetRequiredTypes sets the "required_types" field.
func (_c *ClearanceSetCreate) SetRequiredTypes(v []string) *ClearanceSetCreate {
	_c.mutation.SetRequiredTypes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClearanceSetCreate) SetCreatedAt(v time.Time) *ClearanceSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClearanceSetCreate) SetNillableCreatedAt(v *time.Time) *ClearanceSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClearanceSetCreate) SetUpdatedAt(v time.Time) *ClearanceSetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClearanceSetCreate) SetNillableUpdatedAt(v *time.Time) *ClearanceSetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClearanceSetCreate) SetID(v uuid.UUID) *ClearanceSetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClearanceSetCreate) SetNillableID(v *uuid.UUID) *ClearanceSetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFaculty sets the "faculty" edge to the Faculty entity.
func (_c *ClearanceSetCreate) SetFaculty(v *Faculty) *ClearanceSetCreate {
	return _c.SetFacultyID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *ClearanceSetCreate) AddDocumentIDs(ids ...uuid.UUID) *ClearanceSetCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *ClearanceSetCreate) AddDocuments(v ...*Document) *ClearanceSetCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the ClearanceSetMutation object of the builder.
func (_c *ClearanceSetCreate) Mutation() *ClearanceSetMutation {
	return _c.mutation
}

// Save creates the ClearanceSet in the database.
func (_c *ClearanceSetCreate) Save(ctx context.Context) (*ClearanceSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClearanceSetCreate) SaveX(ctx context.Context) *ClearanceSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClearanceSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClearanceSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClearanceSetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clearanceset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clearanceset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clearanceset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClearanceSetCreate) check() error {
	if _, ok := _c.mutation.FacultyID(); !ok {
		return &ValidationError{Name: "faculty_id", err: errors.New(`ent: missing required field "ClearanceSet.faculty_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ClearanceSet.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := clearanceset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ClearanceSet.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcademicYear(); !ok {
		return &ValidationError{Name: "academic_year", err: errors.New(`ent: missing required field "ClearanceSet.academic_year"`)}
	}
	if v, ok := _c.mutation.AcademicYear(); ok {
		if err := clearanceset.AcademicYearValidator(v); err != nil {
			return &ValidationError{Name: "academic_year", err: fmt.Errorf(`ent: validator failed for field "ClearanceSet.academic_year": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClearanceSet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClearanceSet.updated_at"`)}
	}
	if len(_c.mutation.FacultyIDs()) == 0 {
		return &ValidationError{Name: "faculty", err: errors.New(`ent: missing required edge "ClearanceSet.faculty"`)}
	}
	return nil
}

func (_c *ClearanceSetCreate) sqlSave(ctx context.Context) (*ClearanceSet, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClearanceSetCreate) createSpec() (*ClearanceSet, *sqlgraph.CreateSpec) {
	var (
		_node = &ClearanceSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clearanceset.Table, sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clearanceset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AcademicYear(); ok {
		_spec.SetField(clearanceset.FieldAcademicYear, field.TypeString, value)
		_node.AcademicYear = value
	}
	if value, ok := _c.mutation.RequiredTypes(); ok {
		_spec.SetField(clearanceset.FieldRequiredTypes, field.TypeJSON, value)
		_node.RequiredTypes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clearanceset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clearanceset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FacultyIDs(); len(nodes) > 0 {
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
		_node.FacultyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClearanceSetCreateBulk is the builder for creating many ClearanceSet entities in bulk.
type ClearanceSetCreateBulk struct {
	config
	err      error
	builders []*ClearanceSetCreate
}

// Save creates the ClearanceSet entities in the database.
func (_c *ClearanceSetCreateBulk) Save(ctx context.Context) ([]*ClearanceSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClearanceSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClearanceSetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClearanceSetCreateBulk) SaveX(ctx context.Context) []*ClearanceSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClearanceSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClearanceSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
