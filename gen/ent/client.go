// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/mausam-code/complete-agency/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mausam-code/complete-agency/gen/ent/documentscan"
	"github.com/mausam-code/complete-agency/gen/ent/extracteddata"
	"github.com/mausam-code/complete-agency/gen/ent/generatedcv"
	"github.com/mausam-code/complete-agency/gen/ent/processingjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DocumentScan is the client for interacting with the DocumentScan builders.
	DocumentScan *DocumentScanClient
	// ExtractedData is the client for interacting with the ExtractedData builders.
	ExtractedData *ExtractedDataClient
	// GeneratedCV is the client for interacting with the GeneratedCV builders.
	GeneratedCV *GeneratedCVClient
	// ProcessingJob is the client for interacting with the ProcessingJob builders.
	ProcessingJob *ProcessingJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DocumentScan = NewDocumentScanClient(c.config)
	c.ExtractedData = NewExtractedDataClient(c.config)
	c.GeneratedCV = NewGeneratedCVClient(c.config)
	c.ProcessingJob = NewProcessingJobClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		DocumentScan:  NewDocumentScanClient(cfg),
		ExtractedData: NewExtractedDataClient(cfg),
		GeneratedCV:   NewGeneratedCVClient(cfg),
		ProcessingJob: NewProcessingJobClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		DocumentScan:  NewDocumentScanClient(cfg),
		ExtractedData: NewExtractedDataClient(cfg),
		GeneratedCV:   NewGeneratedCVClient(cfg),
		ProcessingJob: NewProcessingJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DocumentScan.
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
	c.DocumentScan.Use(hooks...)
	c.ExtractedData.Use(hooks...)
	c.GeneratedCV.Use(hooks...)
	c.ProcessingJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DocumentScan.Intercept(interceptors...)
	c.ExtractedData.Intercept(interceptors...)
	c.GeneratedCV.Intercept(interceptors...)
	c.ProcessingJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentScanMutation:
		return c.DocumentScan.mutate(ctx, m)
	case *ExtractedDataMutation:
		return c.ExtractedData.mutate(ctx, m)
	case *GeneratedCVMutation:
		return c.GeneratedCV.mutate(ctx, m)
	case *ProcessingJobMutation:
		return c.ProcessingJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentScanClient is a client for the DocumentScan schema.
type DocumentScanClient struct {
	config
}

// NewDocumentScanClient returns a client for the DocumentScan from the given config.
func NewDocumentScanClient(c config) *DocumentScanClient {
	return &DocumentScanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentscan.Hooks(f(g(h())))`.
func (c *DocumentScanClient) Use(hooks ...Hook) {
	c.hooks.DocumentScan = append(c.hooks.DocumentScan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentscan.Intercept(f(g(h())))`.
func (c *DocumentScanClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentScan = append(c.inters.DocumentScan, interceptors...)
}

// Create returns a builder for creating a DocumentScan entity.
func (c *DocumentScanClient) Create() *DocumentScanCreate {
	mutation := newDocumentScanMutation(c.config, OpCreate)
	return &DocumentScanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentScan entities.
func (c *DocumentScanClient) CreateBulk(builders ...*DocumentScanCreate) *DocumentScanCreateBulk {
	return &DocumentScanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentScanClient) MapCreateBulk(slice any, setFunc func(*DocumentScanCreate, int)) *DocumentScanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentScanCreateBulk{err: fmt.Errorf("calling to DocumentScanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentScanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentScanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentScan.
func (c *DocumentScanClient) Update() *DocumentScanUpdate {
	mutation := newDocumentScanMutation(c.config, OpUpdate)
	return &DocumentScanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentScanClient) UpdateOne(_m *DocumentScan) *DocumentScanUpdateOne {
	mutation := newDocumentScanMutation(c.config, OpUpdateOne, withDocumentScan(_m))
	return &DocumentScanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentScanClient) UpdateOneID(id uuid.UUID) *DocumentScanUpdateOne {
	mutation := newDocumentScanMutation(c.config, OpUpdateOne, withDocumentScanID(id))
	return &DocumentScanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentScan.
func (c *DocumentScanClient) Delete() *DocumentScanDelete {
	mutation := newDocumentScanMutation(c.config, OpDelete)
	return &DocumentScanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentScanClient) DeleteOne(_m *DocumentScan) *DocumentScanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentScanClient) DeleteOneID(id uuid.UUID) *DocumentScanDeleteOne {
	builder := c.Delete().Where(documentscan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentScanDeleteOne{builder}
}

// Query returns a query builder for DocumentScan.
func (c *DocumentScanClient) Query() *DocumentScanQuery {
	return &DocumentScanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentScan},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentScan entity by its id.
func (c *DocumentScanClient) Get(ctx context.Context, id uuid.UUID) (*DocumentScan, error) {
	return c.Query().Where(documentscan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentScanClient) GetX(ctx context.Context, id uuid.UUID) *DocumentScan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtracted queries the extracted edge of a DocumentScan.
func (c *DocumentScanClient) QueryExtracted(_m *DocumentScan) *ExtractedDataQuery {
	query := (&ExtractedDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentscan.Table, documentscan.FieldID, id),
			sqlgraph.To(extracteddata.Table, extracteddata.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, documentscan.ExtractedTable, documentscan.ExtractedColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGeneratedCvs queries the generated_cvs edge of a DocumentScan.
func (c *DocumentScanClient) QueryGeneratedCvs(_m *DocumentScan) *GeneratedCVQuery {
	query := (&GeneratedCVClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentscan.Table, documentscan.FieldID, id),
			sqlgraph.To(generatedcv.Table, generatedcv.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentscan.GeneratedCvsTable, documentscan.GeneratedCvsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a DocumentScan.
func (c *DocumentScanClient) QueryJobs(_m *DocumentScan) *ProcessingJobQuery {
	query := (&ProcessingJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentscan.Table, documentscan.FieldID, id),
			sqlgraph.To(processingjob.Table, processingjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentscan.JobsTable, documentscan.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentScanClient) Hooks() []Hook {
	return c.hooks.DocumentScan
}

// Interceptors returns the client interceptors.
func (c *DocumentScanClient) Interceptors() []Interceptor {
	return c.inters.DocumentScan
}

func (c *DocumentScanClient) mutate(ctx context.Context, m *DocumentScanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentScanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentScanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentScanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentScanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentScan mutation op: %q", m.Op())
	}
}

// ExtractedDataClient is a client for the ExtractedData schema.
type ExtractedDataClient struct {
	config
}

// NewExtractedDataClient returns a client for the ExtractedData from the given config.
func NewExtractedDataClient(c config) *ExtractedDataClient {
	return &ExtractedDataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extracteddata.Hooks(f(g(h())))`.
func (c *ExtractedDataClient) Use(hooks ...Hook) {
	c.hooks.ExtractedData = append(c.hooks.ExtractedData, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extracteddata.Intercept(f(g(h())))`.
func (c *ExtractedDataClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedData = append(c.inters.ExtractedData, interceptors...)
}

// Create returns a builder for creating a ExtractedData entity.
func (c *ExtractedDataClient) Create() *ExtractedDataCreate {
	mutation := newExtractedDataMutation(c.config, OpCreate)
	return &ExtractedDataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedData entities.
func (c *ExtractedDataClient) CreateBulk(builders ...*ExtractedDataCreate) *ExtractedDataCreateBulk {
	return &ExtractedDataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedDataClient) MapCreateBulk(slice any, setFunc func(*ExtractedDataCreate, int)) *ExtractedDataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedDataCreateBulk{err: fmt.Errorf("calling to ExtractedDataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedDataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedDataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedData.
func (c *ExtractedDataClient) Update() *ExtractedDataUpdate {
	mutation := newExtractedDataMutation(c.config, OpUpdate)
	return &ExtractedDataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedDataClient) UpdateOne(_m *ExtractedData) *ExtractedDataUpdateOne {
	mutation := newExtractedDataMutation(c.config, OpUpdateOne, withExtractedData(_m))
	return &ExtractedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedDataClient) UpdateOneID(id uuid.UUID) *ExtractedDataUpdateOne {
	mutation := newExtractedDataMutation(c.config, OpUpdateOne, withExtractedDataID(id))
	return &ExtractedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedData.
func (c *ExtractedDataClient) Delete() *ExtractedDataDelete {
	mutation := newExtractedDataMutation(c.config, OpDelete)
	return &ExtractedDataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedDataClient) DeleteOne(_m *ExtractedData) *ExtractedDataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedDataClient) DeleteOneID(id uuid.UUID) *ExtractedDataDeleteOne {
	builder := c.Delete().Where(extracteddata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedDataDeleteOne{builder}
}

// Query returns a query builder for ExtractedData.
func (c *ExtractedDataClient) Query() *ExtractedDataQuery {
	return &ExtractedDataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedData},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedData entity by its id.
func (c *ExtractedDataClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedData, error) {
	return c.Query().Where(extracteddata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedDataClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedData {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractedData.
func (c *ExtractedDataClient) QueryDocument(_m *ExtractedData) *DocumentScanQuery {
	query := (&DocumentScanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extracteddata.Table, extracteddata.FieldID, id),
			sqlgraph.To(documentscan.Table, documentscan.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, extracteddata.DocumentTable, extracteddata.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedDataClient) Hooks() []Hook {
	return c.hooks.ExtractedData
}

// Interceptors returns the client interceptors.
func (c *ExtractedDataClient) Interceptors() []Interceptor {
	return c.inters.ExtractedData
}

func (c *ExtractedDataClient) mutate(ctx context.Context, m *ExtractedDataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedDataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedDataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedDataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedData mutation op: %q", m.Op())
	}
}

// GeneratedCVClient is a client for the GeneratedCV schema.
type GeneratedCVClient struct {
	config
}

// NewGeneratedCVClient returns a client for the GeneratedCV from the given config.
func NewGeneratedCVClient(c config) *GeneratedCVClient {
	return &GeneratedCVClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generatedcv.Hooks(f(g(h())))`.
func (c *GeneratedCVClient) Use(hooks ...Hook) {
	c.hooks.GeneratedCV = append(c.hooks.GeneratedCV, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generatedcv.Intercept(f(g(h())))`.
func (c *GeneratedCVClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedCV = append(c.inters.GeneratedCV, interceptors...)
}

// Create returns a builder for creating a GeneratedCV entity.
func (c *GeneratedCVClient) Create() *GeneratedCVCreate {
	mutation := newGeneratedCVMutation(c.config, OpCreate)
	return &GeneratedCVCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedCV entities.
func (c *GeneratedCVClient) CreateBulk(builders ...*GeneratedCVCreate) *GeneratedCVCreateBulk {
	return &GeneratedCVCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedCVClient) MapCreateBulk(slice any, setFunc func(*GeneratedCVCreate, int)) *GeneratedCVCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedCVCreateBulk{err: fmt.Errorf("calling to GeneratedCVClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedCVCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedCVCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedCV.
func (c *GeneratedCVClient) Update() *GeneratedCVUpdate {
	mutation := newGeneratedCVMutation(c.config, OpUpdate)
	return &GeneratedCVUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedCVClient) UpdateOne(_m *GeneratedCV) *GeneratedCVUpdateOne {
	mutation := newGeneratedCVMutation(c.config, OpUpdateOne, withGeneratedCV(_m))
	return &GeneratedCVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedCVClient) UpdateOneID(id uuid.UUID) *GeneratedCVUpdateOne {
	mutation := newGeneratedCVMutation(c.config, OpUpdateOne, withGeneratedCVID(id))
	return &GeneratedCVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedCV.
func (c *GeneratedCVClient) Delete() *GeneratedCVDelete {
	mutation := newGeneratedCVMutation(c.config, OpDelete)
	return &GeneratedCVDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedCVClient) DeleteOne(_m *GeneratedCV) *GeneratedCVDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedCVClient) DeleteOneID(id uuid.UUID) *GeneratedCVDeleteOne {
	builder := c.Delete().Where(generatedcv.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedCVDeleteOne{builder}
}

// Query returns a query builder for GeneratedCV.
func (c *GeneratedCVClient) Query() *GeneratedCVQuery {
	return &GeneratedCVQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedCV},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedCV entity by its id.
func (c *GeneratedCVClient) Get(ctx context.Context, id uuid.UUID) (*GeneratedCV, error) {
	return c.Query().Where(generatedcv.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedCVClient) GetX(ctx context.Context, id uuid.UUID) *GeneratedCV {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySourceDocument queries the source_document edge of a GeneratedCV.
func (c *GeneratedCVClient) QuerySourceDocument(_m *GeneratedCV) *DocumentScanQuery {
	query := (&DocumentScanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcv.Table, generatedcv.FieldID, id),
			sqlgraph.To(documentscan.Table, documentscan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcv.SourceDocumentTable, generatedcv.SourceDocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a GeneratedCV.
func (c *GeneratedCVClient) QueryJobs(_m *GeneratedCV) *ProcessingJobQuery {
	query := (&ProcessingJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcv.Table, generatedcv.FieldID, id),
			sqlgraph.To(processingjob.Table, processingjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, generatedcv.JobsTable, generatedcv.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GeneratedCVClient) Hooks() []Hook {
	return c.hooks.GeneratedCV
}

// Interceptors returns the client interceptors.
func (c *GeneratedCVClient) Interceptors() []Interceptor {
	return c.inters.GeneratedCV
}

func (c *GeneratedCVClient) mutate(ctx context.Context, m *GeneratedCVMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedCVCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedCVUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedCVUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedCVDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedCV mutation op: %q", m.Op())
	}
}

// ProcessingJobClient is a client for the ProcessingJob schema.
type ProcessingJobClient struct {
	config
}

// NewProcessingJobClient returns a client for the ProcessingJob from the given config.
func NewProcessingJobClient(c config) *ProcessingJobClient {
	return &ProcessingJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingjob.Hooks(f(g(h())))`.
func (c *ProcessingJobClient) Use(hooks ...Hook) {
	c.hooks.ProcessingJob = append(c.hooks.ProcessingJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingjob.Intercept(f(g(h())))`.
func (c *ProcessingJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingJob = append(c.inters.ProcessingJob, interceptors...)
}

// Create returns a builder for creating a ProcessingJob entity.
func (c *ProcessingJobClient) Create() *ProcessingJobCreate {
	mutation := newProcessingJobMutation(c.config, OpCreate)
	return &ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingJob entities.
func (c *ProcessingJobClient) CreateBulk(builders ...*ProcessingJobCreate) *ProcessingJobCreateBulk {
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingJobClient) MapCreateBulk(slice any, setFunc func(*ProcessingJobCreate, int)) *ProcessingJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingJobCreateBulk{err: fmt.Errorf("calling to ProcessingJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingJob.
func (c *ProcessingJobClient) Update() *ProcessingJobUpdate {
	mutation := newProcessingJobMutation(c.config, OpUpdate)
	return &ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingJobClient) UpdateOne(_m *ProcessingJob) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJob(_m))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingJobClient) UpdateOneID(id uuid.UUID) *ProcessingJobUpdateOne {
	mutation := newProcessingJobMutation(c.config, OpUpdateOne, withProcessingJobID(id))
	return &ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingJob.
func (c *ProcessingJobClient) Delete() *ProcessingJobDelete {
	mutation := newProcessingJobMutation(c.config, OpDelete)
	return &ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingJobClient) DeleteOne(_m *ProcessingJob) *ProcessingJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingJobClient) DeleteOneID(id uuid.UUID) *ProcessingJobDeleteOne {
	builder := c.Delete().Where(processingjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingJobDeleteOne{builder}
}

// Query returns a query builder for ProcessingJob.
func (c *ProcessingJobClient) Query() *ProcessingJobQuery {
	return &ProcessingJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingJob entity by its id.
func (c *ProcessingJobClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingJob, error) {
	return c.Query().Where(processingjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingJobClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ProcessingJob.
func (c *ProcessingJobClient) QueryDocument(_m *ProcessingJob) *DocumentScanQuery {
	query := (&DocumentScanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingjob.Table, processingjob.FieldID, id),
			sqlgraph.To(documentscan.Table, documentscan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingjob.DocumentTable, processingjob.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGeneratedCv queries the generated_cv edge of a ProcessingJob.
func (c *ProcessingJobClient) QueryGeneratedCv(_m *ProcessingJob) *GeneratedCVQuery {
	query := (&GeneratedCVClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingjob.Table, processingjob.FieldID, id),
			sqlgraph.To(generatedcv.Table, generatedcv.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingjob.GeneratedCvTable, processingjob.GeneratedCvColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingJobClient) Hooks() []Hook {
	return c.hooks.ProcessingJob
}

// Interceptors returns the client interceptors.
func (c *ProcessingJobClient) Interceptors() []Interceptor {
	return c.inters.ProcessingJob
}

func (c *ProcessingJobClient) mutate(ctx context.Context, m *ProcessingJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DocumentScan, ExtractedData, GeneratedCV, ProcessingJob []ent.Hook
	}
	inters struct {
		DocumentScan, ExtractedData, GeneratedCV, ProcessingJob []ent.Interceptor
	}
)
