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
	"github.com/rtanga/clearance-tracker/gen/ent/document"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
	"github.com/rtanga/clearance-tracker/gen/ent/predictjob"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClearanceSetID sets the "clearance_set_id" field.
func (_u *DocumentUpdate) SetClearanceSetID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetClearanceSetID(v)
	return _u
}

// SetNillableClearanceSetID sets the "clearance_set_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableClearanceSetID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetClearanceSetID(*v)
	}
	return _u
}

// SetClearanceType sets the "clearance_type" field.
func (_u *DocumentUpdate) SetClearanceType(v string) *DocumentUpdate {
	_u.mutation.SetClearanceType(v)
	return _u
}

// SetNillableClearanceType sets the "clearance_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableClearanceType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetClearanceType(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v []byte) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetClearanceStatus sets the "clearance_status" field.
func (_u *DocumentUpdate) SetClearanceStatus(v string) *DocumentUpdate {
	_u.mutation.SetClearanceStatus(v)
	return _u
}

// SetNillableClearanceStatus sets the "clearance_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableClearanceStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetClearanceStatus(*v)
	}
	return _u
}

// SetPredictedStatus sets the "predicted_status" field.
func (_u *DocumentUpdate) SetPredictedStatus(v string) *DocumentUpdate {
	_u.mutation.SetPredictedStatus(v)
	return _u
}

// SetNillablePredictedStatus sets the "predicted_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePredictedStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPredictedStatus(*v)
	}
	return _u
}

// ClearPredictedStatus clears the value of the "predicted_status" field.
func (_u *DocumentUpdate) ClearPredictedStatus() *DocumentUpdate {
	_u.mutation.ClearPredictedStatus()
	return _u
}

// SetPredictedAt sets the "predicted_at" field.
func (_u *DocumentUpdate) SetPredictedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetPredictedAt(v)
	return _u
}

// SetNillablePredictedAt sets the "predicted_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePredictedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetPredictedAt(*v)
	}
	return _u
}

// ClearPredictedAt clears the value of the "predicted_at" field.
func (_u *DocumentUpdate) ClearPredictedAt() *DocumentUpdate {
	_u.mutation.ClearPredictedAt()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdate) SetUploadedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetClearanceSet sets the "clearance_set" edge to the ClearanceSet entity.
func (_u *DocumentUpdate) SetClearanceSet(v *ClearanceSet) *DocumentUpdate {
	return _u.SetClearanceSetID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the PredictJob entity by IDs.
func (_u *DocumentUpdate) AddJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the PredictJob entity.
func (_u *DocumentUpdate) AddJobs(v ...*PredictJob) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearClearanceSet clears the "clearance_set" edge to the ClearanceSet entity.
func (_u *DocumentUpdate) ClearClearanceSet() *DocumentUpdate {
	_u.mutation.ClearClearanceSet()
	return _u
}

// ClearJobs clears all "jobs" edges to the PredictJob entity.
func (_u *DocumentUpdate) ClearJobs() *DocumentUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to PredictJob entities by IDs.
func (_u *DocumentUpdate) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to PredictJob entities.
func (_u *DocumentUpdate) RemoveJobs(v ...*PredictJob) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.ClearanceType(); ok {
		if err := document.ClearanceTypeValidator(v); err != nil {
			return &ValidationError{Name: "clearance_type", err: fmt.Errorf(`ent: validator failed for field "Document.clearance_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClearanceStatus(); ok {
		if err := document.ClearanceStatusValidator(v); err != nil {
			return &ValidationError{Name: "clearance_status", err: fmt.Errorf(`ent: validator failed for field "Document.clearance_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredictedStatus(); ok {
		if err := document.PredictedStatusValidator(v); err != nil {
			return &ValidationError{Name: "predicted_status", err: fmt.Errorf(`ent: validator failed for field "Document.predicted_status": %w`, err)}
		}
	}
	if _u.mutation.ClearanceSetCleared() && len(_u.mutation.ClearanceSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.clearance_set"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClearanceType(); ok {
		_spec.SetField(document.FieldClearanceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.ClearanceStatus(); ok {
		_spec.SetField(document.FieldClearanceStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedStatus(); ok {
		_spec.SetField(document.FieldPredictedStatus, field.TypeString, value)
	}
	if _u.mutation.PredictedStatusCleared() {
		_spec.ClearField(document.FieldPredictedStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PredictedAt(); ok {
		_spec.SetField(document.FieldPredictedAt, field.TypeTime, value)
	}
	if _u.mutation.PredictedAtCleared() {
		_spec.ClearField(document.FieldPredictedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ClearanceSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ClearanceSetTable,
			Columns: []string{document.ClearanceSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClearanceSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ClearanceSetTable,
			Columns: []string{document.ClearanceSetColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(predictjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(predictjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(predictjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetClearanceSetID sets the "clearance_set_id" field.
func (_u *DocumentUpdateOne) SetClearanceSetID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetClearanceSetID(v)
	return _u
}

// SetNillableClearanceSetID sets the "clearance_set_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableClearanceSetID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetClearanceSetID(*v)
	}
	return _u
}

// SetClearanceType sets the "clearance_type" field.
func (_u *DocumentUpdateOne) SetClearanceType(v string) *DocumentUpdateOne {
	_u.mutation.SetClearanceType(v)
	return _u
}

// SetNillableClearanceType sets the "clearance_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableClearanceType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetClearanceType(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v []byte) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetClearanceStatus sets the "clearance_status" field.
func (_u *DocumentUpdateOne) SetClearanceStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetClearanceStatus(v)
	return _u
}

// SetNillableClearanceStatus sets the "clearance_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableClearanceStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetClearanceStatus(*v)
	}
	return _u
}

// SetPredictedStatus sets the "predicted_status" field.
func (_u *DocumentUpdateOne) SetPredictedStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetPredictedStatus(v)
	return _u
}

// SetNillablePredictedStatus sets the "predicted_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePredictedStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPredictedStatus(*v)
	}
	return _u
}

// ClearPredictedStatus clears the value of the "predicted_status" field.
func (_u *DocumentUpdateOne) ClearPredictedStatus() *DocumentUpdateOne {
	_u.mutation.ClearPredictedStatus()
	return _u
}

// SetPredictedAt sets the "predicted_at" field.
func (_u *DocumentUpdateOne) SetPredictedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetPredictedAt(v)
	return _u
}

// SetNillablePredictedAt sets the "predicted_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePredictedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetPredictedAt(*v)
	}
	return _u
}

// ClearPredictedAt clears the value of the "predicted_at" field.
func (_u *DocumentUpdateOne) ClearPredictedAt() *DocumentUpdateOne {
	_u.mutation.ClearPredictedAt()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdateOne) SetUploadedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetClearanceSet sets the "clearance_set" edge to the ClearanceSet entity.
func (_u *DocumentUpdateOne) SetClearanceSet(v *ClearanceSet) *DocumentUpdateOne {
	return _u.SetClearanceSetID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the PredictJob entity by IDs.
func (_u *DocumentUpdateOne) AddJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the PredictJob entity.
func (_u *DocumentUpdateOne) AddJobs(v ...*PredictJob) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearClearanceSet clears the "clearance_set" edge to the ClearanceSet entity.
func (_u *DocumentUpdateOne) ClearClearanceSet() *DocumentUpdateOne {
	_u.mutation.ClearClearanceSet()
	return _u
}

// ClearJobs clears all "jobs" edges to the PredictJob entity.
func (_u *DocumentUpdateOne) ClearJobs() *DocumentUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to PredictJob entities by IDs.
func (_u *DocumentUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to PredictJob entities.
func (_u *DocumentUpdateOne) RemoveJobs(v ...*PredictJob) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.ClearanceType(); ok {
		if err := document.ClearanceTypeValidator(v); err != nil {
			return &ValidationError{Name: "clearance_type", err: fmt.Errorf(`ent: validator failed for field "Document.clearance_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClearanceStatus(); ok {
		if err := document.ClearanceStatusValidator(v); err != nil {
			return &ValidationError{Name: "clearance_status", err: fmt.Errorf(`ent: validator failed for field "Document.clearance_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredictedStatus(); ok {
		if err := document.PredictedStatusValidator(v); err != nil {
			return &ValidationError{Name: "predicted_status", err: fmt.Errorf(`ent: validator failed for field "Document.predicted_status": %w`, err)}
		}
	}
	if _u.mutation.ClearanceSetCleared() && len(_u.mutation.ClearanceSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.clearance_set"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.ClearanceType(); ok {
		_spec.SetField(document.FieldClearanceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.ClearanceStatus(); ok {
		_spec.SetField(document.FieldClearanceStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PredictedStatus(); ok {
		_spec.SetField(document.FieldPredictedStatus, field.TypeString, value)
	}
	if _u.mutation.PredictedStatusCleared() {
		_spec.ClearField(document.FieldPredictedStatus, field.TypeString)
	}
	if value, ok := _u.mutation.PredictedAt(); ok {
		_spec.SetField(document.FieldPredictedAt, field.TypeTime, value)
	}
	if _u.mutation.PredictedAtCleared() {
		_spec.ClearField(document.FieldPredictedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ClearanceSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ClearanceSetTable,
			Columns: []string{document.ClearanceSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClearanceSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ClearanceSetTable,
			Columns: []string{document.ClearanceSetColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(predictjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(predictjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(predictjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
