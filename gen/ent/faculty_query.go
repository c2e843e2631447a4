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
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
	"github.com/rtanga/clearance-tracker/gen/ent/predicate"
)

// FacultyQuery is the builder for querying Faculty entities.
type FacultyQuery struct {
	config
	ctx               *QueryContext
	order             []faculty.OrderOption
	inters            []Interceptor
	predicates        []predicate.Faculty
	withClearanceSets *ClearanceSetQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FacultyQuery builder.
func (_q *FacultyQuery) Where(ps ...predicate.Faculty) *FacultyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FacultyQuery) Limit(limit int) *FacultyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FacultyQuery) Offset(offset int) *FacultyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FacultyQuery) Unique(unique bool) *FacultyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FacultyQuery) Order(o ...faculty.OrderOption) *FacultyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryClearanceSets chains the current query on the "clearance_sets" edge.
func (_q *FacultyQuery) QueryClearanceSets() *ClearanceSetQuery {
	query := (&ClearanceSetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(faculty.Table, faculty.FieldID, selector),
			sqlgraph.To(clearanceset.Table, clearanceset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, faculty.ClearanceSetsTable, faculty.ClearanceSetsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Faculty entity from the query.
// Returns a *NotFoundError when no Faculty was found.
func (_q *FacultyQuery) First(ctx context.Context) (*Faculty, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{faculty.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FacultyQuery) FirstX(ctx context.Context) *Faculty {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Faculty ID from the query.
// Returns a *NotFoundError when no Faculty ID was found.
func (_q *FacultyQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{faculty.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FacultyQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Faculty entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Faculty entity is found.
// Returns a *NotFoundError when no Faculty entities are found.
func (_q *FacultyQuery) Only(ctx context.Context) (*Faculty, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{faculty.Label}
	default:
		return nil, &NotSingularError{faculty.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FacultyQuery) OnlyX(ctx context.Context) *Faculty {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Faculty ID in the query.
// Returns a *NotSingularError when more than one Faculty ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FacultyQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{faculty.Label}
	default:
		err = &NotSingularError{faculty.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FacultyQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Faculties.
func (_q *FacultyQuery) All(ctx context.Context) ([]*Faculty, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Faculty, *FacultyQuery]()
	return withInterceptors[[]*Faculty](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FacultyQuery) AllX(ctx context.Context) []*Faculty {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Faculty IDs.
func (_q *FacultyQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(faculty.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FacultyQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FacultyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FacultyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FacultyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FacultyQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FacultyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FacultyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FacultyQuery) Clone() *FacultyQuery {
	if _q == nil {
		return nil
	}
	return &FacultyQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]faculty.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Faculty{}, _q.predicates...),
		withClearanceSets: _q.withClearanceSets.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithClearanceSets tells the query-builder to eager-load the nodes that are connected to
// the "clearance_sets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FacultyQuery) WithClearanceSets(opts ...func(*ClearanceSetQuery)) *FacultyQuery {
	query := (&ClearanceSetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withClearanceSets = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Faculty.Query().
//		GroupBy(faculty.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FacultyQuery) GroupBy(field string, fields ...string) *FacultyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FacultyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = faculty.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Faculty.Query().
//		Select(faculty.FieldName).
//		Scan(ctx, &v)
func (_q *FacultyQuery) Select(fields ...string) *FacultySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FacultySelect{FacultyQuery: _q}
	sbuild.label = faculty.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FacultySelect configured with the given aggregations.
func (_q *FacultyQuery) Aggregate(fns ...AggregateFunc) *FacultySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FacultyQuery) prepareQuery(ctx context.Context) error {
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
		if !faculty.ValidColumn(f) {
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

func (_q *FacultyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Faculty, error) {
	var (
		nodes       = []*Faculty{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withClearanceSets != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Faculty).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Faculty{config: _q.config}
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
	if query := _q.withClearanceSets; query != nil {
		if err := _q.loadClearanceSets(ctx, query, nodes,
			func(n *Faculty) { n.Edges.ClearanceSets = []*ClearanceSet{} },
			func(n *Faculty, e *ClearanceSet) { n.Edges.ClearanceSets = append(n.Edges.ClearanceSets, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FacultyQuery) loadClearanceSets(ctx context.Context, query *ClearanceSetQuery, nodes []*Faculty, init func(*Faculty), assign func(*Faculty, *ClearanceSet)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Faculty)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(clearanceset.FieldFacultyID)
	}
	query.Where(predicate.ClearanceSet(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(faculty.ClearanceSetsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FacultyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "faculty_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *FacultyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FacultyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(faculty.Table, faculty.Columns, sqlgraph.NewFieldSpec(faculty.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, faculty.FieldID)
		for i := range fields {
			if fields[i] != faculty.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *FacultyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(faculty.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = faculty.Columns
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

// FacultyGroupBy is the group-by builder for Faculty entities.
type FacultyGroupBy struct {
	selector
	build *FacultyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FacultyGroupBy) Aggregate(fns ...AggregateFunc) *FacultyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FacultyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FacultyQuery, *FacultyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FacultyGroupBy) sqlScan(ctx context.Context, root *FacultyQuery, v any) error {
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

// FacultySelect is the builder for selecting fields of Faculty entities.
type FacultySelect struct {
	*FacultyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FacultySelect) Aggregate(fns ...AggregateFunc) *FacultySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FacultySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FacultyQuery, *FacultySelect](ctx, _s.FacultyQuery, _s, _s.inters, v)
}

func (_s *FacultySelect) sqlScan(ctx context.Context, root *FacultyQuery, v any) error {
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
