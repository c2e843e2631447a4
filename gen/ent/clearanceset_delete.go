// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
)

// ClearanceSetDelete is the builder for deleting a ClearanceSet entity.
type ClearanceSetDelete struct {
	config
	hooks    []Hook
	mutation *ClearanceSetMutation
}

// Where appends a list predicates to the ClearanceSetDelete builder.
func (_d *ClearanceSetDelete) Where(ps ...predicate.ClearanceSet) *ClearanceSetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ClearanceSetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClearanceSetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ClearanceSetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(clearanceset.Table, sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ClearanceSetDeleteOne is the builder for deleting a single ClearanceSet entity.
type ClearanceSetDeleteOne struct {
	_d *ClearanceSetDelete
}

// Where appends a list predicates to the ClearanceSetDelete builder.
func (_d *ClearanceSetDeleteOne) Where(ps ...predicate.ClearanceSet) *ClearanceSetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ClearanceSetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{clearanceset.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ClearanceSetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
