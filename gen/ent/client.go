// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/rtanga/clearance-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rtanga/clearance-tracker/gen/ent/clearanceset"
	"github.com/rtanga/clearance-tracker/gen/ent/document"
	"github.com/rtanga/clearance-tracker/gen/ent/faculty"
	"github.com/rtanga/clearance-tracker/gen/ent/predictjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ClearanceSet is the client for interacting with the ClearanceSet builders.
	ClearanceSet *ClearanceSetClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Faculty is the client for interacting with the Faculty builders.
	Faculty *FacultyClient
	// PredictJob is the client for interacting with the PredictJob builders.
	PredictJob *PredictJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ClearanceSet = NewClearanceSetClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.Faculty = NewFacultyClient(c.config)
	c.PredictJob = NewPredictJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		ClearanceSet: NewClearanceSetClient(cfg),
		Document:     NewDocumentClient(cfg),
		Faculty:      NewFacultyClient(cfg),
		PredictJob:   NewPredictJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		ClearanceSet: NewClearanceSetClient(cfg),
		Document:     NewDocumentClient(cfg),
		Faculty:      NewFacultyClient(cfg),
		PredictJob:   NewPredictJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ClearanceSet.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ClearanceSet.Use(hooks...)
	c.Document.Use(hooks...)
	c.Faculty.Use(hooks...)
	c.PredictJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ClearanceSet.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.Faculty.Intercept(interceptors...)
	c.PredictJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClearanceSetMutation:
		return c.ClearanceSet.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *FacultyMutation:
		return c.Faculty.mutate(ctx, m)
	case *PredictJobMutation:
		return c.PredictJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ClearanceSetClient is a client for the ClearanceSet schema.
type ClearanceSetClient struct {
	config
}

// NewClearanceSetClient returns a client for the ClearanceSet from the given config.
func NewClearanceSetClient(c config) *ClearanceSetClient {
	return &ClearanceSetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clearanceset.Hooks(f(g(h())))`.
func (c *ClearanceSetClient) Use(hooks ...Hook) {
	c.hooks.ClearanceSet = append(c.hooks.ClearanceSet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clearanceset.Intercept(f(g(h())))`.
func (c *ClearanceSetClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClearanceSet = append(c.inters.ClearanceSet, interceptors...)
}

// Create returns a builder for creating a ClearanceSet entity.
func (c *ClearanceSetClient) Create() *ClearanceSetCreate {
	mutation := newClearanceSetMutation(c.config, OpCreate)
	return &ClearanceSetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClearanceSet entities.
func (c *ClearanceSetClient) CreateBulk(builders ...*ClearanceSetCreate) *ClearanceSetCreateBulk {
	return &ClearanceSetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClearanceSetClient) MapCreateBulk(slice any, setFunc func(*ClearanceSetCreate, int)) *ClearanceSetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClearanceSetCreateBulk{err: fmt.Errorf("calling to ClearanceSetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClearanceSetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClearanceSetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClearanceSet.
func (c *ClearanceSetClient) Update() *ClearanceSetUpdate {
	mutation := newClearanceSetMutation(c.config, OpUpdate)
	return &ClearanceSetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClearanceSetClient) UpdateOne(_m *ClearanceSet) *ClearanceSetUpdateOne {
	mutation := newClearanceSetMutation(c.config, OpUpdateOne, withClearanceSet(_m))
	return &ClearanceSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClearanceSetClient) UpdateOneID(id uuid.UUID) *ClearanceSetUpdateOne {
	mutation := newClearanceSetMutation(c.config, OpUpdateOne, withClearanceSetID(id))
	return &ClearanceSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClearanceSet.
func (c *ClearanceSetClient) Delete() *ClearanceSetDelete {
	mutation := newClearanceSetMutation(c.config, OpDelete)
	return &ClearanceSetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClearanceSetClient) DeleteOne(_m *ClearanceSet) *ClearanceSetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClearanceSetClient) DeleteOneID(id uuid.UUID) *ClearanceSetDeleteOne {
	builder := c.Delete().Where(clearanceset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClearanceSetDeleteOne{builder}
}

// Query returns a query builder for ClearanceSet.
func (c *ClearanceSetClient) Query() *ClearanceSetQuery {
	return &ClearanceSetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClearanceSet},
		inters: c.Interceptors(),
	}
}

// Get returns a ClearanceSet entity by its id.
func (c *ClearanceSetClient) Get(ctx context.Context, id uuid.UUID) (*ClearanceSet, error) {
	return c.Query().Where(clearanceset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClearanceSetClient) GetX(ctx context.Context, id uuid.UUID) *ClearanceSet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFaculty queries the faculty edge of a ClearanceSet.
func (c *ClearanceSetClient) QueryFaculty(_m *ClearanceSet) *FacultyQuery {
	query := (&FacultyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clearanceset.Table, clearanceset.FieldID, id),
			sqlgraph.To(faculty.Table, faculty.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clearanceset.FacultyTable, clearanceset.FacultyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a ClearanceSet.
func (c *ClearanceSetClient) QueryDocuments(_m *ClearanceSet) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clearanceset.Table, clearanceset.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, clearanceset.DocumentsTable, clearanceset.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClearanceSetClient) Hooks() []Hook {
	return c.hooks.ClearanceSet
}

// Interceptors returns the client interceptors.
func (c *ClearanceSetClient) Interceptors() []Interceptor {
	return c.inters.ClearanceSet
}

func (c *ClearanceSetClient) mutate(ctx context.Context, m *ClearanceSetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClearanceSetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClearanceSetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClearanceSetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClearanceSetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClearanceSet mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClearanceSet queries the clearance_set edge of a Document.
func (c *DocumentClient) QueryClearanceSet(_m *Document) *ClearanceSetQuery {
	query := (&ClearanceSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(clearanceset.Table, clearanceset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.ClearanceSetTable, document.ClearanceSetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Document.
func (c *DocumentClient) QueryJobs(_m *Document) *PredictJobQuery {
	query := (&PredictJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(predictjob.Table, predictjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.JobsTable, document.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// FacultyClient is a client for the Faculty schema.
type FacultyClient struct {
	config
}

// NewFacultyClient returns a client for the Faculty from the given config.
func NewFacultyClient(c config) *FacultyClient {
	return &FacultyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `faculty.Hooks(f(g(h())))`.
func (c *FacultyClient) Use(hooks ...Hook) {
	c.hooks.Faculty = append(c.hooks.Faculty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `faculty.Intercept(f(g(h())))`.
func (c *FacultyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Faculty = append(c.inters.Faculty, interceptors...)
}

// Create returns a builder for creating a Faculty entity.
func (c *FacultyClient) Create() *FacultyCreate {
	mutation := newFacultyMutation(c.config, OpCreate)
	return &FacultyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Faculty entities.
func (c *FacultyClient) CreateBulk(builders ...*FacultyCreate) *FacultyCreateBulk {
	return &FacultyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FacultyClient) MapCreateBulk(slice any, setFunc func(*FacultyCreate, int)) *FacultyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FacultyCreateBulk{err: fmt.Errorf("calling to FacultyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FacultyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FacultyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Faculty.
func (c *FacultyClient) Update() *FacultyUpdate {
	mutation := newFacultyMutation(c.config, OpUpdate)
	return &FacultyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FacultyClient) UpdateOne(_m *Faculty) *FacultyUpdateOne {
	mutation := newFacultyMutation(c.config, OpUpdateOne, withFaculty(_m))
	return &FacultyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FacultyClient) UpdateOneID(id uuid.UUID) *FacultyUpdateOne {
	mutation := newFacultyMutation(c.config, OpUpdateOne, withFacultyID(id))
	return &FacultyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Faculty.
func (c *FacultyClient) Delete() *FacultyDelete {
	mutation := newFacultyMutation(c.config, OpDelete)
	return &FacultyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FacultyClient) DeleteOne(_m *Faculty) *FacultyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FacultyClient) DeleteOneID(id uuid.UUID) *FacultyDeleteOne {
	builder := c.Delete().Where(faculty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FacultyDeleteOne{builder}
}

// Query returns a query builder for Faculty.
func (c *FacultyClient) Query() *FacultyQuery {
	return &FacultyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFaculty},
		inters: c.Interceptors(),
	}
}

// Get returns a Faculty entity by its id.
func (c *FacultyClient) Get(ctx context.Context, id uuid.UUID) (*Faculty, error) {
	return c.Query().Where(faculty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FacultyClient) GetX(ctx context.Context, id uuid.UUID) *Faculty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClearanceSets queries the clearance_sets edge of a Faculty.
func (c *FacultyClient) QueryClearanceSets(_m *Faculty) *ClearanceSetQuery {
	query := (&ClearanceSetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(faculty.Table, faculty.FieldID, id),
			sqlgraph.To(clearanceset.Table, clearanceset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, faculty.ClearanceSetsTable, faculty.ClearanceSetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FacultyClient) Hooks() []Hook {
	return c.hooks.Faculty
}

// Interceptors returns the client interceptors.
func (c *FacultyClient) Interceptors() []Interceptor {
	return c.inters.Faculty
}

func (c *FacultyClient) mutate(ctx context.Context, m *FacultyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FacultyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FacultyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FacultyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FacultyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Faculty mutation op: %q", m.Op())
	}
}

// PredictJobClient is a client for the PredictJob schema.
type PredictJobClient struct {
	config
}

// NewPredictJobClient returns a client for the PredictJob from the given config.
func NewPredictJobClient(c config) *PredictJobClient {
	return &PredictJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `predictjob.Hooks(f(g(h())))`.
func (c *PredictJobClient) Use(hooks ...Hook) {
	c.hooks.PredictJob = append(c.hooks.PredictJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `predictjob.Intercept(f(g(h())))`.
func (c *PredictJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.PredictJob = append(c.inters.PredictJob, interceptors...)
}

// Create returns a builder for creating a PredictJob entity.
func (c *PredictJobClient) Create() *PredictJobCreate {
	mutation := newPredictJobMutation(c.config, OpCreate)
	return &PredictJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PredictJob entities.
func (c *PredictJobClient) CreateBulk(builders ...*PredictJobCreate) *PredictJobCreateBulk {
	return &PredictJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PredictJobClient) MapCreateBulk(slice any, setFunc func(*PredictJobCreate, int)) *PredictJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PredictJobCreateBulk{err: fmt.Errorf("calling to PredictJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PredictJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PredictJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PredictJob.
func (c *PredictJobClient) Update() *PredictJobUpdate {
	mutation := newPredictJobMutation(c.config, OpUpdate)
	return &PredictJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PredictJobClient) UpdateOne(_m *PredictJob) *PredictJobUpdateOne {
	mutation := newPredictJobMutation(c.config, OpUpdateOne, withPredictJob(_m))
	return &PredictJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PredictJobClient) UpdateOneID(id uuid.UUID) *PredictJobUpdateOne {
	mutation := newPredictJobMutation(c.config, OpUpdateOne, withPredictJobID(id))
	return &PredictJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PredictJob.
func (c *PredictJobClient) Delete() *PredictJobDelete {
	mutation := newPredictJobMutation(c.config, OpDelete)
	return &PredictJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PredictJobClient) DeleteOne(_m *PredictJob) *PredictJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PredictJobClient) DeleteOneID(id uuid.UUID) *PredictJobDeleteOne {
	builder := c.Delete().Where(predictjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PredictJobDeleteOne{builder}
}

// Query returns a query builder for PredictJob.
func (c *PredictJobClient) Query() *PredictJobQuery {
	return &PredictJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePredictJob},
		inters: c.Interceptors(),
	}
}

// Get returns a PredictJob entity by its id.
func (c *PredictJobClient) Get(ctx context.Context, id uuid.UUID) (*PredictJob, error) {
	return c.Query().Where(predictjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PredictJobClient) GetX(ctx context.Context, id uuid.UUID) *PredictJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a PredictJob.
func (c *PredictJobClient) QueryDocument(_m *PredictJob) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(predictjob.Table, predictjob.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, predictjob.DocumentTable, predictjob.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PredictJobClient) Hooks() []Hook {
	return c.hooks.PredictJob
}

// Interceptors returns the client interceptors.
func (c *PredictJobClient) Interceptors() []Interceptor {
	return c.inters.PredictJob
}

func (c *PredictJobClient) mutate(ctx context.Context, m *PredictJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PredictJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PredictJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PredictJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PredictJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PredictJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ClearanceSet, Document, Faculty, PredictJob []ent.Hook
	}
	inters struct {
		ClearanceSet, Document, Faculty, PredictJob []ent.Interceptor
	}
)
