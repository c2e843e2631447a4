// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/document"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
	"github.com/rtanga/clearance-tracker/gen/ent/predictjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClearanceSet = "ClearanceSet"
	TypeDocument     = "Document"
	TypeFaculty      = "Faculty"
	TypePredictJob   = "PredictJob"
)

// ClearanceSetMutation represents an operation that mutates the ClearanceSet nodes in the graph.
type ClearanceSetMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	name                 *string
	academic_year        *string
	required_types       *[]string
	appendrequired_types []string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	faculty              *uuid.UUID
	clearedfaculty       bool
	documents            map[uuid.UUID]struct{}
	removeddocuments     map[uuid.UUID]struct{}
	cleareddocuments     bool
	done                 bool
	oldValue             func(context.Context) (*ClearanceSet, error)
	predicates           []predicate.ClearanceSet
}

var _ ent.Mutation = (*ClearanceSetMutation)(nil)

// clearancesetOption allows management of the mutation configuration using functional options.
type clearancesetOption func(*ClearanceSetMutation)

// newClearanceSetMutation creates new mutation for the ClearanceSet entity.
func newClearanceSetMutation(c config, op Op, opts ...clearancesetOption) *ClearanceSetMutation {
	m := &ClearanceSetMutation{
		config:        c,
		op:            op,
		typ:           TypeClearanceSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClearanceSetID sets the ID field of the mutation.
func withClearanceSetID(id uuid.UUID) clearancesetOption {
	return func(m *ClearanceSetMutation) {
		var (
			err   error
			once  sync.Once
			value *ClearanceSet
		)
		m.oldValue = func(ctx context.Context) (*ClearanceSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClearanceSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClearanceSet sets the old ClearanceSet of the mutation.
func withClearanceSet(node *ClearanceSet) clearancesetOption {
	return func(m *ClearanceSetMutation) {
		m.oldValue = func(context.Context) (*ClearanceSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClearanceSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClearanceSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClearanceSet entities.
func (m *ClearanceSetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClearanceSetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClearanceSetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClearanceSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFacultyID sets the "faculty_id" field.
func (m *ClearanceSetMutation) SetFacultyID(u uuid.UUID) {
	m.faculty = &u
}

// FacultyID returns the value of the "faculty_id" field in the mutation.
func (m *ClearanceSetMutation) FacultyID() (r uuid.UUID, exists bool) {
	v := m.faculty
	if v == nil {
		return
	}
	return *v, true
}

// OldFacultyID returns the old "faculty_id" field's value of the ClearanceSet entity.
// If the ClearanceSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClearanceSetMutation) OldFacultyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacultyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacultyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacultyID: %w", err)
	}
	return oldValue.FacultyID, nil
}

// ResetFacultyID resets all changes to the "faculty_id" field.
func (m *ClearanceSetMutation) ResetFacultyID() {
	m.faculty = nil
}

// SetName sets the "name" field.
func (m *ClearanceSetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClearanceSetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ClearanceSet entity.
// If the ClearanceSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClearanceSetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ClearanceSetMutation) ResetName() {
	m.name = nil
}

// SetAcademicYear sets the "academic_year" field.
func (m *ClearanceSetMutation) SetAcademicYear(s string) {
	m.academic_year = &s
}

// AcademicYear returns the value of the "academic_year" field in the mutation.
func (m *ClearanceSetMutation) AcademicYear() (r string, exists bool) {
	v := m.academic_year
	if v == nil {
		return
	}
	return *v, true
}

// OldAcademicYear returns the old "academic_year" field's value of the ClearanceSet entity.
// If the ClearanceSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClearanceSetMutation) OldAcademicYear(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcademicYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcademicYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcademicYear: %w", err)
	}
	return oldValue.AcademicYear, nil
}

// ResetAcademicYear resets all changes to the "academic_year" field.
func (m *ClearanceSetMutation) ResetAcademicYear() {
	m.academic_year = nil
}

// SetRequiredTypes sets the "required_types" field.
func (m *ClearanceSetMutation) SetRequiredTypes(s []string) {
	m.required_types = &s
	m.appendrequired_types = nil
}

// RequiredTypes returns the value of the "required_types" field in the mutation.
func (m *ClearanceSetMutation) RequiredTypes() (r []string, exists bool) {
	v := m.required_types
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredTypes returns the old "required_types" field's value of the ClearanceSet entity.
// If the ClearanceSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClearanceSetMutation) OldRequiredTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredTypes: %w", err)
	}
	return oldValue.RequiredTypes, nil
}

// AppendRequiredTypes adds s to the "required_types" field.
func (m *ClearanceSetMutation) AppendRequiredTypes(s []string) {
	m.appendrequired_types = append(m.appendrequired_types, s...)
}

// AppendedRequiredTypes returns the list of values that were appended to the "required_types" field in this mutation.
func (m *ClearanceSetMutation) AppendedRequiredTypes() ([]string, bool) {
	if len(m.appendrequired_types) == 0 {
		return nil, false
	}
	return m.appendrequired_types, true
}

// ClearRequiredTypes clears the value of the "required_types" field.
func (m *ClearanceSetMutation) ClearRequiredTypes() {
	m.required_types = nil
	m.appendrequired_types = nil
	m.clearedFields[clearanceset.FieldRequiredTypes] = struct{}{}
}

// RequiredTypesCleared returns if the "required_types" field was cleared in this mutation.
func (m *ClearanceSetMutation) RequiredTypesCleared() bool {
	_, ok := m.clearedFields[clearanceset.FieldRequiredTypes]
	return ok
}

// ResetRequiredTypes resets all changes to the "required_types" field.
func (m *ClearanceSetMutation) ResetRequiredTypes() {
	m.required_types = nil
	m.appendrequired_types = nil
	delete(m.clearedFields, clearanceset.FieldRequiredTypes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClearanceSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClearanceSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClearanceSet entity.
// If the ClearanceSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClearanceSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClearanceSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClearanceSetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClearanceSetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClearanceSet entity.
// If the ClearanceSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClearanceSetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClearanceSetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFaculty clears the "faculty" edge to the Faculty entity.
func (m *ClearanceSetMutation) ClearFaculty() {
	m.clearedfaculty = true
	m.clearedFields[clearanceset.FieldFacultyID] = struct{}{}
}

// FacultyCleared reports if the "faculty" edge to the Faculty entity was cleared.
func (m *ClearanceSetMutation) FacultyCleared() bool {
	return m.clearedfaculty
}

// FacultyIDs returns the "faculty" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacultyID instead. It exists only for internal usage by the builders.
func (m *ClearanceSetMutation) FacultyIDs() (ids []uuid.UUID) {
	if id := m.faculty; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFaculty resets all changes to the "faculty" edge.
func (m *ClearanceSetMutation) ResetFaculty() {
	m.faculty = nil
	m.clearedfaculty = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ClearanceSetMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ClearanceSetMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ClearanceSetMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ClearanceSetMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ClearanceSetMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ClearanceSetMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ClearanceSetMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the ClearanceSetMutation builder.
func (m *ClearanceSetMutation) Where(ps ...predicate.ClearanceSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClearanceSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClearanceSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClearanceSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClearanceSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClearanceSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClearanceSet).
func (m *ClearanceSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClearanceSetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.faculty != nil {
		fields = append(fields, clearanceset.FieldFacultyID)
	}
	if m.name != nil {
		fields = append(fields, clearanceset.FieldName)
	}
	if m.academic_year != nil {
		fields = append(fields, clearanceset.FieldAcademicYear)
	}
	if m.required_types != nil {
		fields = append(fields, clearanceset.FieldRequiredTypes)
	}
	if m.created_at != nil {
		fields = append(fields, clearanceset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clearanceset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClearanceSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clearanceset.FieldFacultyID:
		return m.FacultyID()
	case clearanceset.FieldName:
		return m.Name()
	case clearanceset.FieldAcademicYear:
		return m.AcademicYear()
	case clearanceset.FieldRequiredTypes:
		return m.RequiredTypes()
	case clearanceset.FieldCreatedAt:
		return m.CreatedAt()
	case clearanceset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClearanceSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clearanceset.FieldFacultyID:
		return m.OldFacultyID(ctx)
	case clearanceset.FieldName:
		return m.OldName(ctx)
	case clearanceset.FieldAcademicYear:
		return m.OldAcademicYear(ctx)
	case clearanceset.FieldRequiredTypes:
		return m.OldRequiredTypes(ctx)
	case clearanceset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clearanceset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClearanceSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClearanceSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clearanceset.FieldFacultyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacultyID(v)
		return nil
	case clearanceset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case clearanceset.FieldAcademicYear:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcademicYear(v)
		return nil
	case clearanceset.FieldRequiredTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredTypes(v)
		return nil
	case clearanceset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clearanceset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClearanceSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClearanceSetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClearanceSetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClearanceSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClearanceSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClearanceSetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clearanceset.FieldRequiredTypes) {
		fields = append(fields, clearanceset.FieldRequiredTypes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClearanceSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClearanceSetMutation) ClearField(name string) error {
	switch name {
	case clearanceset.FieldRequiredTypes:
		m.ClearRequiredTypes()
		return nil
	}
	return fmt.Errorf("unknown ClearanceSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClearanceSetMutation) ResetField(name string) error {
	switch name {
	case clearanceset.FieldFacultyID:
		m.ResetFacultyID()
		return nil
	case clearanceset.FieldName:
		m.ResetName()
		return nil
	case clearanceset.FieldAcademicYear:
		m.ResetAcademicYear()
		return nil
	case clearanceset.FieldRequiredTypes:
		m.ResetRequiredTypes()
		return nil
	case clearanceset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clearanceset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClearanceSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClearanceSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.faculty != nil {
		edges = append(edges, clearanceset.EdgeFaculty)
	}
	if m.documents != nil {
		edges = append(edges, clearanceset.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClearanceSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clearanceset.EdgeFaculty:
		if id := m.faculty; id != nil {
			return []ent.Value{*id}
		}
	case clearanceset.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClearanceSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, clearanceset.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClearanceSetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case clearanceset.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClearanceSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfaculty {
		edges = append(edges, clearanceset.EdgeFaculty)
	}
	if m.cleareddocuments {
		edges = append(edges, clearanceset.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClearanceSetMutation) EdgeCleared(name string) bool {
	switch name {
	case clearanceset.EdgeFaculty:
		return m.clearedfaculty
	case clearanceset.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClearanceSetMutation) ClearEdge(name string) error {
	switch name {
	case clearanceset.EdgeFaculty:
		m.ClearFaculty()
		return nil
	}
	return fmt.Errorf("unknown ClearanceSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClearanceSetMutation) ResetEdge(name string) error {
	switch name {
	case clearanceset.EdgeFaculty:
		m.ResetFaculty()
		return nil
	case clearanceset.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown ClearanceSet edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	clearance_type       *string
	source_path          *string
	file_name            *string
	file_ext             *string
	content_hash         *[]byte
	clearance_status     *string
	predicted_status     *string
	predicted_at         *time.Time
	uploaded_at          *time.Time
	clearedFields        map[string]struct{}
	clearance_set        *uuid.UUID
	clearedclearance_set bool
	jobs                 map[uuid.UUID]struct{}
	removedjobs          map[uuid.UUID]struct{}
	clearedjobs          bool
	done                 bool
	oldValue             func(context.Context) (*Document, error)
	predicates           []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClearanceSetID sets the "clearance_set_id" field.
func (m *DocumentMutation) SetClearanceSetID(u uuid.UUID) {
	m.clearance_set = &u
}

// ClearanceSetID returns the value of the "clearance_set_id" field in the mutation.
func (m *DocumentMutation) ClearanceSetID() (r uuid.UUID, exists bool) {
	v := m.clearance_set
	if v == nil {
		return
	}
	return *v, true
}

// OldClearanceSetID returns the old "clearance_set_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClearanceSetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClearanceSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClearanceSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClearanceSetID: %w", err)
	}
	return oldValue.ClearanceSetID, nil
}

// ResetClearanceSetID resets all changes to the "clearance_set_id" field.
func (m *DocumentMutation) ResetClearanceSetID() {
	m.clearance_set = nil
}

// SetClearanceType sets the "clearance_type" field.
func (m *DocumentMutation) SetClearanceType(s string) {
	m.clearance_type = &s
}

// ClearanceType returns the value of the "clearance_type" field in the mutation.
func (m *DocumentMutation) ClearanceType() (r string, exists bool) {
	v := m.clearance_type
	if v == nil {
		return
	}
	return *v, true
}

// OldClearanceType returns the old "clearance_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClearanceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClearanceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClearanceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClearanceType: %w", err)
	}
	return oldValue.ClearanceType, nil
}

// ResetClearanceType resets all changes to the "clearance_type" field.
func (m *DocumentMutation) ResetClearanceType() {
	m.clearance_type = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetClearanceStatus sets the "clearance_status" field.
func (m *DocumentMutation) SetClearanceStatus(s string) {
	m.clearance_status = &s
}

// ClearanceStatus returns the value of the "clearance_status" field in the mutation.
func (m *DocumentMutation) ClearanceStatus() (r string, exists bool) {
	v := m.clearance_status
	if v == nil {
		return
	}
	return *v, true
}

// OldClearanceStatus returns the old "clearance_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClearanceStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClearanceStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClearanceStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClearanceStatus: %w", err)
	}
	return oldValue.ClearanceStatus, nil
}

// ResetClearanceStatus resets all changes to the "clearance_status" field.
func (m *DocumentMutation) ResetClearanceStatus() {
	m.clearance_status = nil
}

// SetPredictedStatus sets the "predicted_status" field.
func (m *DocumentMutation) SetPredictedStatus(s string) {
	m.predicted_status = &s
}

// PredictedStatus returns the value of the "predicted_status" field in the mutation.
func (m *DocumentMutation) PredictedStatus() (r string, exists bool) {
	v := m.predicted_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedStatus returns the old "predicted_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPredictedStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedStatus: %w", err)
	}
	return oldValue.PredictedStatus, nil
}

// ClearPredictedStatus clears the value of the "predicted_status" field.
func (m *DocumentMutation) ClearPredictedStatus() {
	m.predicted_status = nil
	m.clearedFields[document.FieldPredictedStatus] = struct{}{}
}

// PredictedStatusCleared returns if the "predicted_status" field was cleared in this mutation.
func (m *DocumentMutation) PredictedStatusCleared() bool {
	_, ok := m.clearedFields[document.FieldPredictedStatus]
	return ok
}

// ResetPredictedStatus resets all changes to the "predicted_status" field.
func (m *DocumentMutation) ResetPredictedStatus() {
	m.predicted_status = nil
	delete(m.clearedFields, document.FieldPredictedStatus)
}

// SetPredictedAt sets the "predicted_at" field.
func (m *DocumentMutation) SetPredictedAt(t time.Time) {
	m.predicted_at = &t
}

// PredictedAt returns the value of the "predicted_at" field in the mutation.
func (m *DocumentMutation) PredictedAt() (r time.Time, exists bool) {
	v := m.predicted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedAt returns the old "predicted_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPredictedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedAt: %w", err)
	}
	return oldValue.PredictedAt, nil
}

// ClearPredictedAt clears the value of the "predicted_at" field.
func (m *DocumentMutation) ClearPredictedAt() {
	m.predicted_at = nil
	m.clearedFields[document.FieldPredictedAt] = struct{}{}
}

// PredictedAtCleared returns if the "predicted_at" field was cleared in this mutation.
func (m *DocumentMutation) PredictedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldPredictedAt]
	return ok
}

// ResetPredictedAt resets all changes to the "predicted_at" field.
func (m *DocumentMutation) ResetPredictedAt() {
	m.predicted_at = nil
	delete(m.clearedFields, document.FieldPredictedAt)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearClearanceSet clears the "clearance_set" edge to the ClearanceSet entity.
func (m *DocumentMutation) ClearClearanceSet() {
	m.clearedclearance_set = true
	m.clearedFields[document.FieldClearanceSetID] = struct{}{}
}

// ClearanceSetCleared reports if the "clearance_set" edge to the ClearanceSet entity was cleared.
func (m *DocumentMutation) ClearanceSetCleared() bool {
	return m.clearedclearance_set
}

// ClearanceSetIDs returns the "clearance_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClearanceSetID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ClearanceSetIDs() (ids []uuid.UUID) {
	if id := m.clearance_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClearanceSet resets all changes to the "clearance_set" edge.
func (m *DocumentMutation) ResetClearanceSet() {
	m.clearance_set = nil
	m.clearedclearance_set = false
}

// AddJobIDs adds the "jobs" edge to the PredictJob entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the PredictJob entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the PredictJob entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the PredictJob entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the PredictJob entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.clearance_set != nil {
		fields = append(fields, document.FieldClearanceSetID)
	}
	if m.clearance_type != nil {
		fields = append(fields, document.FieldClearanceType)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.clearance_status != nil {
		fields = append(fields, document.FieldClearanceStatus)
	}
	if m.predicted_status != nil {
		fields = append(fields, document.FieldPredictedStatus)
	}
	if m.predicted_at != nil {
		fields = append(fields, document.FieldPredictedAt)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldClearanceSetID:
		return m.ClearanceSetID()
	case document.FieldClearanceType:
		return m.ClearanceType()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldClearanceStatus:
		return m.ClearanceStatus()
	case document.FieldPredictedStatus:
		return m.PredictedStatus()
	case document.FieldPredictedAt:
		return m.PredictedAt()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldClearanceSetID:
		return m.OldClearanceSetID(ctx)
	case document.FieldClearanceType:
		return m.OldClearanceType(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldClearanceStatus:
		return m.OldClearanceStatus(ctx)
	case document.FieldPredictedStatus:
		return m.OldPredictedStatus(ctx)
	case document.FieldPredictedAt:
		return m.OldPredictedAt(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldClearanceSetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClearanceSetID(v)
		return nil
	case document.FieldClearanceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClearanceType(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldClearanceStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClearanceStatus(v)
		return nil
	case document.FieldPredictedStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedStatus(v)
		return nil
	case document.FieldPredictedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedAt(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldPredictedStatus) {
		fields = append(fields, document.FieldPredictedStatus)
	}
	if m.FieldCleared(document.FieldPredictedAt) {
		fields = append(fields, document.FieldPredictedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldPredictedStatus:
		m.ClearPredictedStatus()
		return nil
	case document.FieldPredictedAt:
		m.ClearPredictedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldClearanceSetID:
		m.ResetClearanceSetID()
		return nil
	case document.FieldClearanceType:
		m.ResetClearanceType()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldClearanceStatus:
		m.ResetClearanceStatus()
		return nil
	case document.FieldPredictedStatus:
		m.ResetPredictedStatus()
		return nil
	case document.FieldPredictedAt:
		m.ResetPredictedAt()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearance_set != nil {
		edges = append(edges, document.EdgeClearanceSet)
	}
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeClearanceSet:
		if id := m.clearance_set; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclearance_set {
		edges = append(edges, document.EdgeClearanceSet)
	}
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeClearanceSet:
		return m.clearedclearance_set
	case document.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeClearanceSet:
		m.ClearClearanceSet()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeClearanceSet:
		m.ResetClearanceSet()
		return nil
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// FacultyMutation represents an operation that mutates the Faculty nodes in the graph.
type FacultyMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	name                  *string
	email                 *string
	department            *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	clearance_sets        map[uuid.UUID]struct{}
	removedclearance_sets map[uuid.UUID]struct{}
	clearedclearance_sets bool
	done                  bool
	oldValue              func(context.Context) (*Faculty, error)
	predicates            []predicate.Faculty
}

var _ ent.Mutation = (*FacultyMutation)(nil)

// facultyOption allows management of the mutation configuration using functional options.
type facultyOption func(*FacultyMutation)

// newFacultyMutation creates new mutation for the Faculty entity.
func newFacultyMutation(c config, op Op, opts ...facultyOption) *FacultyMutation {
	m := &FacultyMutation{
		config:        c,
		op:            op,
		typ:           TypeFaculty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacultyID sets the ID field of the mutation.
func withFacultyID(id uuid.UUID) facultyOption {
	return func(m *FacultyMutation) {
		var (
			err   error
			once  sync.Once
			value *Faculty
		)
		m.oldValue = func(ctx context.Context) (*Faculty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Faculty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFaculty sets the old Faculty of the mutation.
func withFaculty(node *Faculty) facultyOption {
	return func(m *FacultyMutation) {
		m.oldValue = func(context.Context) (*Faculty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacultyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacultyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Faculty entities.
func (m *FacultyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacultyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacultyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Faculty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FacultyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FacultyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Faculty entity.
// If the Faculty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FacultyMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *FacultyMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *FacultyMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Faculty entity.
// If the Faculty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *FacultyMutation) ResetEmail() {
	m.email = nil
}

// SetDepartment sets the "department" field.
func (m *FacultyMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *FacultyMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Faculty entity.
// If the Faculty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ResetDepartment resets all changes to the "department" field.
func (m *FacultyMutation) ResetDepartment() {
	m.department = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FacultyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FacultyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Faculty entity.
// If the Faculty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FacultyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FacultyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FacultyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Faculty entity.
// If the Faculty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FacultyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddClearanceSetIDs adds the "clearance_sets" edge to the ClearanceSet entity by ids.
func (m *FacultyMutation) AddClearanceSetIDs(ids ...uuid.UUID) {
	if m.clearance_sets == nil {
		m.clearance_sets = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.clearance_sets[ids[i]] = struct{}{}
	}
}

// ClearClearanceSets clears the "clearance_sets" edge to the ClearanceSet entity.
func (m *FacultyMutation) ClearClearanceSets() {
	m.clearedclearance_sets = true
}

// ClearanceSetsCleared reports if the "clearance_sets" edge to the ClearanceSet entity was cleared.
func (m *FacultyMutation) ClearanceSetsCleared() bool {
	return m.clearedclearance_sets
}

// RemoveClearanceSetIDs removes the "clearance_sets" edge to the ClearanceSet entity by IDs.
func (m *FacultyMutation) RemoveClearanceSetIDs(ids ...uuid.UUID) {
	if m.removedclearance_sets == nil {
		m.removedclearance_sets = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.clearance_sets, ids[i])
		m.removedclearance_sets[ids[i]] = struct{}{}
	}
}

// RemovedClearanceSets returns the removed IDs of the "clearance_sets" edge to the ClearanceSet entity.
func (m *FacultyMutation) RemovedClearanceSetsIDs() (ids []uuid.UUID) {
	for id := range m.removedclearance_sets {
		ids = append(ids, id)
	}
	return
}

// ClearanceSetsIDs returns the "clearance_sets" edge IDs in the mutation.
func (m *FacultyMutation) ClearanceSetsIDs() (ids []uuid.UUID) {
	for id := range m.clearance_sets {
		ids = append(ids, id)
	}
	return
}

// ResetClearanceSets resets all changes to the "clearance_sets" edge.
func (m *FacultyMutation) ResetClearanceSets() {
	m.clearance_sets = nil
	m.clearedclearance_sets = false
	m.removedclearance_sets = nil
}

// Where appends a list predicates to the FacultyMutation builder.
func (m *FacultyMutation) Where(ps ...predicate.Faculty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacultyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacultyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Faculty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacultyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacultyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Faculty).
func (m *FacultyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacultyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, faculty.FieldName)
	}
	if m.email != nil {
		fields = append(fields, faculty.FieldEmail)
	}
	if m.department != nil {
		fields = append(fields, faculty.FieldDepartment)
	}
	if m.created_at != nil {
		fields = append(fields, faculty.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, faculty.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacultyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case faculty.FieldName:
		return m.Name()
	case faculty.FieldEmail:
		return m.Email()
	case faculty.FieldDepartment:
		return m.Department()
	case faculty.FieldCreatedAt:
		return m.CreatedAt()
	case faculty.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacultyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case faculty.FieldName:
		return m.OldName(ctx)
	case faculty.FieldEmail:
		return m.OldEmail(ctx)
	case faculty.FieldDepartment:
		return m.OldDepartment(ctx)
	case faculty.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case faculty.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Faculty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacultyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case faculty.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case faculty.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case faculty.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case faculty.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case faculty.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Faculty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacultyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacultyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacultyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Faculty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacultyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacultyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacultyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Faculty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacultyMutation) ResetField(name string) error {
	switch name {
	case faculty.FieldName:
		m.ResetName()
		return nil
	case faculty.FieldEmail:
		m.ResetEmail()
		return nil
	case faculty.FieldDepartment:
		m.ResetDepartment()
		return nil
	case faculty.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case faculty.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Faculty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacultyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearance_sets != nil {
		edges = append(edges, faculty.EdgeClearanceSets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacultyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case faculty.EdgeClearanceSets:
		ids := make([]ent.Value, 0, len(m.clearance_sets))
		for id := range m.clearance_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacultyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedclearance_sets != nil {
		edges = append(edges, faculty.EdgeClearanceSets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacultyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case faculty.EdgeClearanceSets:
		ids := make([]ent.Value, 0, len(m.removedclearance_sets))
		for id := range m.removedclearance_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacultyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclearance_sets {
		edges = append(edges, faculty.EdgeClearanceSets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacultyMutation) EdgeCleared(name string) bool {
	switch name {
	case faculty.EdgeClearanceSets:
		return m.clearedclearance_sets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacultyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Faculty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacultyMutation) ResetEdge(name string) error {
	switch name {
	case faculty.EdgeClearanceSets:
		m.ResetClearanceSets()
		return nil
	}
	return fmt.Errorf("unknown Faculty edge %s", name)
}

// PredictJobMutation represents an operation that mutates the PredictJob nodes in the graph.
type PredictJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	format          *string
	status          *string
	method          *string
	extracted_text  *string
	error_message   *string
	started_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*PredictJob, error)
	predicates      []predicate.PredictJob
}

var _ ent.Mutation = (*PredictJobMutation)(nil)

// predictjobOption allows management of the mutation configuration using functional options.
type predictjobOption func(*PredictJobMutation)

// newPredictJobMutation creates new mutation for the PredictJob entity.
func newPredictJobMutation(c config, op Op, opts ...predictjobOption) *PredictJobMutation {
	m := &PredictJobMutation{
		config:        c,
		op:            op,
		typ:           TypePredictJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPredictJobID sets the ID field of the mutation.
func withPredictJobID(id uuid.UUID) predictjobOption {
	return func(m *PredictJobMutation) {
		var (
			err   error
			once  sync.Once
			value *PredictJob
		)
		m.oldValue = func(ctx context.Context) (*PredictJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PredictJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPredictJob sets the old PredictJob of the mutation.
func withPredictJob(node *PredictJob) predictjobOption {
	return func(m *PredictJobMutation) {
		m.oldValue = func(context.Context) (*PredictJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PredictJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PredictJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PredictJob entities.
func (m *PredictJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PredictJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PredictJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PredictJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *PredictJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *PredictJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *PredictJobMutation) ResetDocumentID() {
	m.document = nil
}

// SetFormat sets the "format" field.
func (m *PredictJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *PredictJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *PredictJobMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *PredictJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PredictJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PredictJobMutation) ResetStatus() {
	m.status = nil
}

// SetMethod sets the "method" field.
func (m *PredictJobMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *PredictJobMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *PredictJobMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[predictjob.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *PredictJobMutation) MethodCleared() bool {
	_, ok := m.clearedFields[predictjob.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *PredictJobMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, predictjob.FieldMethod)
}

// SetExtractedText sets the "extracted_text" field.
func (m *PredictJobMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *PredictJobMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *PredictJobMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[predictjob.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *PredictJobMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[predictjob.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *PredictJobMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, predictjob.FieldExtractedText)
}

// SetErrorMessage sets the "error_message" field.
func (m *PredictJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PredictJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PredictJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[predictjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PredictJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[predictjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PredictJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, predictjob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *PredictJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PredictJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PredictJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *PredictJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *PredictJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the PredictJob entity.
// If the PredictJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *PredictJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[predictjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *PredictJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[predictjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *PredictJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, predictjob.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *PredictJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[predictjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *PredictJobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *PredictJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *PredictJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the PredictJobMutation builder.
func (m *PredictJobMutation) Where(ps ...predicate.PredictJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PredictJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PredictJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PredictJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PredictJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PredictJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PredictJob).
func (m *PredictJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PredictJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, predictjob.FieldDocumentID)
	}
	if m.format != nil {
		fields = append(fields, predictjob.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, predictjob.FieldStatus)
	}
	if m.method != nil {
		fields = append(fields, predictjob.FieldMethod)
	}
	if m.extracted_text != nil {
		fields = append(fields, predictjob.FieldExtractedText)
	}
	if m.error_message != nil {
		fields = append(fields, predictjob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, predictjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, predictjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PredictJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case predictjob.FieldDocumentID:
		return m.DocumentID()
	case predictjob.FieldFormat:
		return m.Format()
	case predictjob.FieldStatus:
		return m.Status()
	case predictjob.FieldMethod:
		return m.Method()
	case predictjob.FieldExtractedText:
		return m.ExtractedText()
	case predictjob.FieldErrorMessage:
		return m.ErrorMessage()
	case predictjob.FieldStartedAt:
		return m.StartedAt()
	case predictjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PredictJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case predictjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case predictjob.FieldFormat:
		return m.OldFormat(ctx)
	case predictjob.FieldStatus:
		return m.OldStatus(ctx)
	case predictjob.FieldMethod:
		return m.OldMethod(ctx)
	case predictjob.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case predictjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case predictjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case predictjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PredictJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case predictjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case predictjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case predictjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case predictjob.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case predictjob.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case predictjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case predictjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case predictjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PredictJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PredictJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PredictJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PredictJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PredictJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(predictjob.FieldMethod) {
		fields = append(fields, predictjob.FieldMethod)
	}
	if m.FieldCleared(predictjob.FieldExtractedText) {
		fields = append(fields, predictjob.FieldExtractedText)
	}
	if m.FieldCleared(predictjob.FieldErrorMessage) {
		fields = append(fields, predictjob.FieldErrorMessage)
	}
	if m.FieldCleared(predictjob.FieldFinishedAt) {
		fields = append(fields, predictjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PredictJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PredictJobMutation) ClearField(name string) error {
	switch name {
	case predictjob.FieldMethod:
		m.ClearMethod()
		return nil
	case predictjob.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case predictjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case predictjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PredictJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PredictJobMutation) ResetField(name string) error {
	switch name {
	case predictjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case predictjob.FieldFormat:
		m.ResetFormat()
		return nil
	case predictjob.FieldStatus:
		m.ResetStatus()
		return nil
	case predictjob.FieldMethod:
		m.ResetMethod()
		return nil
	case predictjob.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case predictjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case predictjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case predictjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PredictJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PredictJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, predictjob.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PredictJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case predictjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PredictJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PredictJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PredictJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, predictjob.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PredictJobMutation) EdgeCleared(name string) bool {
	switch name {
	case predictjob.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PredictJobMutation) ClearEdge(name string) error {
	switch name {
	case predictjob.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown PredictJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PredictJobMutation) ResetEdge(name string) error {
	switch name {
	case predictjob.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown PredictJob edge %s", name)
}
