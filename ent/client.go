// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ysato/dokkai/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ysato/dokkai/ent/evalrun"
	"github.com/ysato/dokkai/ent/llmrequestevent"
	"github.com/ysato/dokkai/ent/scoreresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EvalRun is the client for interacting with the EvalRun builders.
	EvalRun *EvalRunClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ScoreResult is the client for interacting with the ScoreResult builders.
	ScoreResult *ScoreResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EvalRun = NewEvalRunClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ScoreResult = NewScoreResultClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		EvalRun:         NewEvalRunClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ScoreResult:     NewScoreResultClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		EvalRun:         NewEvalRunClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ScoreResult:     NewScoreResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EvalRun.
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
	c.EvalRun.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.ScoreResult.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EvalRun.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.ScoreResult.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EvalRunMutation:
		return c.EvalRun.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ScoreResultMutation:
		return c.ScoreResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EvalRunClient is a client for the EvalRun schema.
type EvalRunClient struct {
	config
}

// NewEvalRunClient returns a client for the EvalRun from the given config.
func NewEvalRunClient(c config) *EvalRunClient {
	return &EvalRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evalrun.Hooks(f(g(h())))`.
func (c *EvalRunClient) Use(hooks ...Hook) {
	c.hooks.EvalRun = append(c.hooks.EvalRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evalrun.Intercept(f(g(h())))`.
func (c *EvalRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvalRun = append(c.inters.EvalRun, interceptors...)
}

// Create returns a builder for creating a EvalRun entity.
func (c *EvalRunClient) Create() *EvalRunCreate {
	mutation := newEvalRunMutation(c.config, OpCreate)
	return &EvalRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvalRun entities.
func (c *EvalRunClient) CreateBulk(builders ...*EvalRunCreate) *EvalRunCreateBulk {
	return &EvalRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvalRunClient) MapCreateBulk(slice any, setFunc func(*EvalRunCreate, int)) *EvalRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvalRunCreateBulk{err: fmt.Errorf("calling to EvalRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvalRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvalRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvalRun.
func (c *EvalRunClient) Update() *EvalRunUpdate {
	mutation := newEvalRunMutation(c.config, OpUpdate)
	return &EvalRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvalRunClient) UpdateOne(_m *EvalRun) *EvalRunUpdateOne {
	mutation := newEvalRunMutation(c.config, OpUpdateOne, withEvalRun(_m))
	return &EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvalRunClient) UpdateOneID(id int) *EvalRunUpdateOne {
	mutation := newEvalRunMutation(c.config, OpUpdateOne, withEvalRunID(id))
	return &EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvalRun.
func (c *EvalRunClient) Delete() *EvalRunDelete {
	mutation := newEvalRunMutation(c.config, OpDelete)
	return &EvalRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvalRunClient) DeleteOne(_m *EvalRun) *EvalRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvalRunClient) DeleteOneID(id int) *EvalRunDeleteOne {
	builder := c.Delete().Where(evalrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvalRunDeleteOne{builder}
}

// Query returns a query builder for EvalRun.
func (c *EvalRunClient) Query() *EvalRunQuery {
	return &EvalRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvalRun},
		inters: c.Interceptors(),
	}
}

// Get returns a EvalRun entity by its id.
func (c *EvalRunClient) Get(ctx context.Context, id int) (*EvalRun, error) {
	return c.Query().Where(evalrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvalRunClient) GetX(ctx context.Context, id int) *EvalRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvalRunClient) Hooks() []Hook {
	return c.hooks.EvalRun
}

// Interceptors returns the client interceptors.
func (c *EvalRunClient) Interceptors() []Interceptor {
	return c.inters.EvalRun
}

func (c *EvalRunClient) mutate(ctx context.Context, m *EvalRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvalRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvalRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvalRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvalRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvalRun mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ScoreResultClient is a client for the ScoreResult schema.
type ScoreResultClient struct {
	config
}

// NewScoreResultClient returns a client for the ScoreResult from the given config.
func NewScoreResultClient(c config) *ScoreResultClient {
	return &ScoreResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoreresult.Hooks(f(g(h())))`.
func (c *ScoreResultClient) Use(hooks ...Hook) {
	c.hooks.ScoreResult = append(c.hooks.ScoreResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoreresult.Intercept(f(g(h())))`.
func (c *ScoreResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoreResult = append(c.inters.ScoreResult, interceptors...)
}

// Create returns a builder for creating a ScoreResult entity.
func (c *ScoreResultClient) Create() *ScoreResultCreate {
	mutation := newScoreResultMutation(c.config, OpCreate)
	return &ScoreResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoreResult entities.
func (c *ScoreResultClient) CreateBulk(builders ...*ScoreResultCreate) *ScoreResultCreateBulk {
	return &ScoreResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoreResultClient) MapCreateBulk(slice any, setFunc func(*ScoreResultCreate, int)) *ScoreResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoreResultCreateBulk{err: fmt.Errorf("calling to ScoreResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoreResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoreResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoreResult.
func (c *ScoreResultClient) Update() *ScoreResultUpdate {
	mutation := newScoreResultMutation(c.config, OpUpdate)
	return &ScoreResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoreResultClient) UpdateOne(_m *ScoreResult) *ScoreResultUpdateOne {
	mutation := newScoreResultMutation(c.config, OpUpdateOne, withScoreResult(_m))
	return &ScoreResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoreResultClient) UpdateOneID(id int) *ScoreResultUpdateOne {
	mutation := newScoreResultMutation(c.config, OpUpdateOne, withScoreResultID(id))
	return &ScoreResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoreResult.
func (c *ScoreResultClient) Delete() *ScoreResultDelete {
	mutation := newScoreResultMutation(c.config, OpDelete)
	return &ScoreResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoreResultClient) DeleteOne(_m *ScoreResult) *ScoreResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoreResultClient) DeleteOneID(id int) *ScoreResultDeleteOne {
	builder := c.Delete().Where(scoreresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoreResultDeleteOne{builder}
}

// Query returns a query builder for ScoreResult.
func (c *ScoreResultClient) Query() *ScoreResultQuery {
	return &ScoreResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoreResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoreResult entity by its id.
func (c *ScoreResultClient) Get(ctx context.Context, id int) (*ScoreResult, error) {
	return c.Query().Where(scoreresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoreResultClient) GetX(ctx context.Context, id int) *ScoreResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScoreResultClient) Hooks() []Hook {
	return c.hooks.ScoreResult
}

// Interceptors returns the client interceptors.
func (c *ScoreResultClient) Interceptors() []Interceptor {
	return c.inters.ScoreResult
}

func (c *ScoreResultClient) mutate(ctx context.Context, m *ScoreResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoreResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoreResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoreResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoreResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoreResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EvalRun, LLMRequestEvent, ScoreResult []ent.Hook
	}
	inters struct {
		EvalRun, LLMRequestEvent, ScoreResult []ent.Interceptor
	}
)
