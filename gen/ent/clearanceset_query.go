// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/document"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
)

// ClearanceSetQuery is the builder for querying ClearanceSet entities.
type ClearanceSetQuery struct {
	config
	ctx           *QueryContext
	order         []clearanceset.OrderOption
	inters        []Interceptor
	predicates    []predicate.ClearanceSet
	withFaculty   *FacultyQuery
	withDocuments *DocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ClearanceSetQuery builder.
func (_q *ClearanceSetQuery) Where(ps ...predicate.ClearanceSet) *ClearanceSetQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ClearanceSetQuery) Limit(limit int) *ClearanceSetQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ClearanceSetQuery) Offset(offset int) *ClearanceSetQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ClearanceSetQuery) Unique(unique bool) *ClearanceSetQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ClearanceSetQuery) Order(o ...clearanceset.OrderOption) *ClearanceSetQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFaculty chains the current query on the "faculty" edge.
func (_q *ClearanceSetQuery) QueryFaculty() *FacultyQuery {
	query := (&FacultyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clearanceset.Table, clearanceset.FieldID, selector),
			sqlgraph.To(faculty.Table, faculty.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clearanceset.FacultyTable, clearanceset.FacultyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDocuments chains the current query on the "documents" edge.
func (_q *ClearanceSetQuery) QueryDocuments() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(clearanceset.Table, clearanceset.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clearanceset.DocumentsTable, clearanceset.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ClearanceSet entity from the query.
// Returns a *NotFoundError when no ClearanceSet was found.
func (_q *ClearanceSetQuery) First(ctx context.Context) (*ClearanceSet, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{clearanceset.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ClearanceSetQuery) FirstX(ctx context.Context) *ClearanceSet {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ClearanceSet ID from the query.
// Returns a *NotFoundError when no ClearanceSet ID was found.
func (_q *ClearanceSetQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{clearanceset.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ClearanceSetQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ClearanceSet entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ClearanceSet entity is found.
// Returns a *NotFoundError when no ClearanceSet entities are found.
func (_q *ClearanceSetQuery) Only(ctx context.Context) (*ClearanceSet, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{clearanceset.Label}
	default:
		return nil, &NotSingularError{clearanceset.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ClearanceSetQuery) OnlyX(ctx context.Context) *ClearanceSet {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ClearanceSet ID in the query.
// Returns a *NotSingularError when more than one ClearanceSet ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ClearanceSetQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{clearanceset.Label}
	default:
		err = &NotSingularError{clearanceset.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ClearanceSetQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ClearanceSets.
func (_q *ClearanceSetQuery) All(ctx context.Context) ([]*ClearanceSet, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ClearanceSet, *ClearanceSetQuery]()
	return withInterceptors[[]*ClearanceSet](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ClearanceSetQuery) AllX(ctx context.Context) []*ClearanceSet {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ClearanceSet IDs.
func (_q *ClearanceSetQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(clearanceset.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ClearanceSetQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ClearanceSetQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ClearanceSetQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ClearanceSetQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ClearanceSetQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ClearanceSetQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ClearanceSetQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ClearanceSetQuery) Clone() *ClearanceSetQuery {
	if _q == nil {
		return nil
	}
	return &ClearanceSetQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]clearanceset.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ClearanceSet{}, _q.predicates...),
		withFaculty:   _q.withFaculty.Clone(),
		withDocuments: _q.withDocuments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFaculty tells the query-builder to eager-load the nodes that are connected to
// the "faculty" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ClearanceSetQuery) WithFaculty(opts ...func(*FacultyQuery)) *ClearanceSetQuery {
	query := (&FacultyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFaculty = query
	return _q
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ClearanceSetQuery) WithDocuments(opts ...func(*DocumentQuery)) *ClearanceSetQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocuments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FacultyID uuid.UUID `json:"faculty_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ClearanceSet.Query().
//		GroupBy(clearanceset.FieldFacultyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ClearanceSetQuery) GroupBy(field string, fields ...string) *ClearanceSetGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ClearanceSetGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = clearanceset.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FacultyID uuid.UUID `json:"faculty_id,omitempty"`
//	}
//
//	client.ClearanceSet.Query().
//		Select(clearanceset.FieldFacultyID).
//		Scan(ctx, &v)
func (_q *ClearanceSetQuery) Select(fields ...string) *ClearanceSetSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ClearanceSetSelect{ClearanceSetQuery: _q}
	sbuild.label = clearanceset.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ClearanceSetSelect configured with the given aggregations.
func (_q *ClearanceSetQuery) Aggregate(fns ...AggregateFunc) *ClearanceSetSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ClearanceSetQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !clearanceset.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ClearanceSetQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ClearanceSet, error) {
	var (
		nodes       = []*ClearanceSet{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withFaculty != nil,
			_q.withDocuments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ClearanceSet).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ClearanceSet{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFaculty; query != nil {
		if err := _q.loadFaculty(ctx, query, nodes, nil,
			func(n *ClearanceSet, e *Faculty) { n.Edges.Faculty = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDocuments; query != nil {
		if err := _q.loadDocuments(ctx, query, nodes,
			func(n *ClearanceSet) { n.Edges.Documents = []*Document{} },
			func(n *ClearanceSet, e *Document) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ClearanceSetQuery) loadFaculty(ctx context.Context, query *FacultyQuery, nodes []*ClearanceSet, init func(*ClearanceSet), assign func(*ClearanceSet, *Faculty)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ClearanceSet)
	for i := range nodes {
		fk := nodes[i].FacultyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(faculty.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "faculty_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ClearanceSetQuery) loadDocuments(ctx context.Context, query *DocumentQuery, nodes []*ClearanceSet, init func(*ClearanceSet), assign func(*ClearanceSet, *Document)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ClearanceSet)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(document.FieldClearanceSetID)
	}
	query.Where(predicate.Document(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(clearanceset.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ClearanceSetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "clearance_set_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ClearanceSetQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ClearanceSetQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(clearanceset.Table, clearanceset.Columns, sqlgraph.NewFieldSpec(clearanceset.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clearanceset.FieldID)
		for i := range fields {
			if fields[i] != clearanceset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFaculty != nil {
			_spec.Node.AddColumnOnce(clearanceset.FieldFacultyID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ClearanceSetQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(clearanceset.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = clearanceset.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ClearanceSetGroupBy is the group-by builder for ClearanceSet entities.
type ClearanceSetGroupBy struct {
	selector
	build *ClearanceSetQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ClearanceSetGroupBy) Aggregate(fns ...AggregateFunc) *ClearanceSetGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ClearanceSetGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClearanceSetQuery, *ClearanceSetGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ClearanceSetGroupBy) sqlScan(ctx context.Context, root *ClearanceSetQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ClearanceSetSelect is the builder for selecting fields of ClearanceSet entities.
type ClearanceSetSelect struct {
	*ClearanceSetQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ClearanceSetSelect) Aggregate(fns ...AggregateFunc) *ClearanceSetSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ClearanceSetSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ClearanceSetQuery, *ClearanceSetSelect](ctx, _s.ClearanceSetQuery, _s, _s.inters, v)
}

func (_s *ClearanceSetSelect) sqlScan(ctx context.Context, root *ClearanceSetQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
