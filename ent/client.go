// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/nvarma/quizfeed/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/question"
	"github.com/nvarma/quizfeed/ent/questionstate"
	"github.com/nvarma/quizfeed/ent/topicweight"
	"github.com/nvarma/quizfeed/ent/weightchangeevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// QuestionState is the client for interacting with the QuestionState builders.
	QuestionState *QuestionStateClient
	// TopicWeight is the client for interacting with the TopicWeight builders.
	TopicWeight *TopicWeightClient
	// WeightChangeEvent is the client for interacting with the WeightChangeEvent builders.
	WeightChangeEvent *WeightChangeEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Question = NewQuestionClient(c.config)
	c.QuestionState = NewQuestionStateClient(c.config)
	c.TopicWeight = NewTopicWeightClient(c.config)
	c.WeightChangeEvent = NewWeightChangeEventClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Question:          NewQuestionClient(cfg),
		QuestionState:     NewQuestionStateClient(cfg),
		TopicWeight:       NewTopicWeightClient(cfg),
		WeightChangeEvent: NewWeightChangeEventClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Question:          NewQuestionClient(cfg),
		QuestionState:     NewQuestionStateClient(cfg),
		TopicWeight:       NewTopicWeightClient(cfg),
		WeightChangeEvent: NewWeightChangeEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Question.
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
	c.Question.Use(hooks...)
	c.QuestionState.Use(hooks...)
	c.TopicWeight.Use(hooks...)
	c.WeightChangeEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Question.Intercept(interceptors...)
	c.QuestionState.Intercept(interceptors...)
	c.TopicWeight.Intercept(interceptors...)
	c.WeightChangeEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuestionStateMutation:
		return c.QuestionState.mutate(ctx, m)
	case *TopicWeightMutation:
		return c.TopicWeight.mutate(ctx, m)
	case *WeightChangeEventMutation:
		return c.WeightChangeEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id int) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id int) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id int) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id int) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// QuestionStateClient is a client for the QuestionState schema.
type QuestionStateClient struct {
	config
}

// NewQuestionStateClient returns a client for the QuestionState from the given config.
func NewQuestionStateClient(c config) *QuestionStateClient {
	return &QuestionStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionstate.Hooks(f(g(h())))`.
func (c *QuestionStateClient) Use(hooks ...Hook) {
	c.hooks.QuestionState = append(c.hooks.QuestionState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionstate.Intercept(f(g(h())))`.
func (c *QuestionStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionState = append(c.inters.QuestionState, interceptors...)
}

// Create returns a builder for creating a QuestionState entity.
func (c *QuestionStateClient) Create() *QuestionStateCreate {
	mutation := newQuestionStateMutation(c.config, OpCreate)
	return &QuestionStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionState entities.
func (c *QuestionStateClient) CreateBulk(builders ...*QuestionStateCreate) *QuestionStateCreateBulk {
	return &QuestionStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionStateClient) MapCreateBulk(slice any, setFunc func(*QuestionStateCreate, int)) *QuestionStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionStateCreateBulk{err: fmt.Errorf("calling to QuestionStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionState.
func (c *QuestionStateClient) Update() *QuestionStateUpdate {
	mutation := newQuestionStateMutation(c.config, OpUpdate)
	return &QuestionStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionStateClient) UpdateOne(_m *QuestionState) *QuestionStateUpdateOne {
	mutation := newQuestionStateMutation(c.config, OpUpdateOne, withQuestionState(_m))
	return &QuestionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionStateClient) UpdateOneID(id int) *QuestionStateUpdateOne {
	mutation := newQuestionStateMutation(c.config, OpUpdateOne, withQuestionStateID(id))
	return &QuestionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionState.
func (c *QuestionStateClient) Delete() *QuestionStateDelete {
	mutation := newQuestionStateMutation(c.config, OpDelete)
	return &QuestionStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionStateClient) DeleteOne(_m *QuestionState) *QuestionStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionStateClient) DeleteOneID(id int) *QuestionStateDeleteOne {
	builder := c.Delete().Where(questionstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionStateDeleteOne{builder}
}

// Query returns a query builder for QuestionState.
func (c *QuestionStateClient) Query() *QuestionStateQuery {
	return &QuestionStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionState},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionState entity by its id.
func (c *QuestionStateClient) Get(ctx context.Context, id int) (*QuestionState, error) {
	return c.Query().Where(questionstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionStateClient) GetX(ctx context.Context, id int) *QuestionState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionStateClient) Hooks() []Hook {
	return c.hooks.QuestionState
}

// Interceptors returns the client interceptors.
func (c *QuestionStateClient) Interceptors() []Interceptor {
	return c.inters.QuestionState
}

func (c *QuestionStateClient) mutate(ctx context.Context, m *QuestionStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionState mutation op: %q", m.Op())
	}
}

// TopicWeightClient is a client for the TopicWeight schema.
type TopicWeightClient struct {
	config
}

// NewTopicWeightClient returns a client for the TopicWeight from the given config.
func NewTopicWeightClient(c config) *TopicWeightClient {
	return &TopicWeightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicweight.Hooks(f(g(h())))`.
func (c *TopicWeightClient) Use(hooks ...Hook) {
	c.hooks.TopicWeight = append(c.hooks.TopicWeight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicweight.Intercept(f(g(h())))`.
func (c *TopicWeightClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicWeight = append(c.inters.TopicWeight, interceptors...)
}

// Create returns a builder for creating a TopicWeight entity.
func (c *TopicWeightClient) Create() *TopicWeightCreate {
	mutation := newTopicWeightMutation(c.config, OpCreate)
	return &TopicWeightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicWeight entities.
func (c *TopicWeightClient) CreateBulk(builders ...*TopicWeightCreate) *TopicWeightCreateBulk {
	return &TopicWeightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicWeightClient) MapCreateBulk(slice any, setFunc func(*TopicWeightCreate, int)) *TopicWeightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicWeightCreateBulk{err: fmt.Errorf("calling to TopicWeightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicWeightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicWeightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicWeight.
func (c *TopicWeightClient) Update() *TopicWeightUpdate {
	mutation := newTopicWeightMutation(c.config, OpUpdate)
	return &TopicWeightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicWeightClient) UpdateOne(_m *TopicWeight) *TopicWeightUpdateOne {
	mutation := newTopicWeightMutation(c.config, OpUpdateOne, withTopicWeight(_m))
	return &TopicWeightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicWeightClient) UpdateOneID(id int) *TopicWeightUpdateOne {
	mutation := newTopicWeightMutation(c.config, OpUpdateOne, withTopicWeightID(id))
	return &TopicWeightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicWeight.
func (c *TopicWeightClient) Delete() *TopicWeightDelete {
	mutation := newTopicWeightMutation(c.config, OpDelete)
	return &TopicWeightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicWeightClient) DeleteOne(_m *TopicWeight) *TopicWeightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicWeightClient) DeleteOneID(id int) *TopicWeightDeleteOne {
	builder := c.Delete().Where(topicweight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicWeightDeleteOne{builder}
}

// Query returns a query builder for TopicWeight.
func (c *TopicWeightClient) Query() *TopicWeightQuery {
	return &TopicWeightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicWeight},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicWeight entity by its id.
func (c *TopicWeightClient) Get(ctx context.Context, id int) (*TopicWeight, error) {
	return c.Query().Where(topicweight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicWeightClient) GetX(ctx context.Context, id int) *TopicWeight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicWeightClient) Hooks() []Hook {
	return c.hooks.TopicWeight
}

// Interceptors returns the client interceptors.
func (c *TopicWeightClient) Interceptors() []Interceptor {
	return c.inters.TopicWeight
}

func (c *TopicWeightClient) mutate(ctx context.Context, m *TopicWeightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicWeightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicWeightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicWeightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicWeightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicWeight mutation op: %q", m.Op())
	}
}

// WeightChangeEventClient is a client for the WeightChangeEvent schema.
type WeightChangeEventClient struct {
	config
}

// NewWeightChangeEventClient returns a client for the WeightChangeEvent from the given config.
func NewWeightChangeEventClient(c config) *WeightChangeEventClient {
	return &WeightChangeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weightchangeevent.Hooks(f(g(h())))`.
func (c *WeightChangeEventClient) Use(hooks ...Hook) {
	c.hooks.WeightChangeEvent = append(c.hooks.WeightChangeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weightchangeevent.Intercept(f(g(h())))`.
func (c *WeightChangeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeightChangeEvent = append(c.inters.WeightChangeEvent, interceptors...)
}

// Create returns a builder for creating a WeightChangeEvent entity.
func (c *WeightChangeEventClient) Create() *WeightChangeEventCreate {
	mutation := newWeightChangeEventMutation(c.config, OpCreate)
	return &WeightChangeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeightChangeEvent entities.
func (c *WeightChangeEventClient) CreateBulk(builders ...*WeightChangeEventCreate) *WeightChangeEventCreateBulk {
	return &WeightChangeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeightChangeEventClient) MapCreateBulk(slice any, setFunc func(*WeightChangeEventCreate, int)) *WeightChangeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeightChangeEventCreateBulk{err: fmt.Errorf("calling to WeightChangeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeightChangeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeightChangeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeightChangeEvent.
func (c *WeightChangeEventClient) Update() *WeightChangeEventUpdate {
	mutation := newWeightChangeEventMutation(c.config, OpUpdate)
	return &WeightChangeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeightChangeEventClient) UpdateOne(_m *WeightChangeEvent) *WeightChangeEventUpdateOne {
	mutation := newWeightChangeEventMutation(c.config, OpUpdateOne, withWeightChangeEvent(_m))
	return &WeightChangeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeightChangeEventClient) UpdateOneID(id int) *WeightChangeEventUpdateOne {
	mutation := newWeightChangeEventMutation(c.config, OpUpdateOne, withWeightChangeEventID(id))
	return &WeightChangeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeightChangeEvent.
func (c *WeightChangeEventClient) Delete() *WeightChangeEventDelete {
	mutation := newWeightChangeEventMutation(c.config, OpDelete)
	return &WeightChangeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeightChangeEventClient) DeleteOne(_m *WeightChangeEvent) *WeightChangeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeightChangeEventClient) DeleteOneID(id int) *WeightChangeEventDeleteOne {
	builder := c.Delete().Where(weightchangeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeightChangeEventDeleteOne{builder}
}

// Query returns a query builder for WeightChangeEvent.
func (c *WeightChangeEventClient) Query() *WeightChangeEventQuery {
	return &WeightChangeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeightChangeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WeightChangeEvent entity by its id.
func (c *WeightChangeEventClient) Get(ctx context.Context, id int) (*WeightChangeEvent, error) {
	return c.Query().Where(weightchangeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeightChangeEventClient) GetX(ctx context.Context, id int) *WeightChangeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeightChangeEventClient) Hooks() []Hook {
	return c.hooks.WeightChangeEvent
}

// Interceptors returns the client interceptors.
func (c *WeightChangeEventClient) Interceptors() []Interceptor {
	return c.inters.WeightChangeEvent
}

func (c *WeightChangeEventClient) mutate(ctx context.Context, m *WeightChangeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeightChangeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeightChangeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeightChangeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeightChangeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeightChangeEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Question, QuestionState, TopicWeight, WeightChangeEvent []ent.Hook
	}
	inters struct {
		Question, QuestionState, TopicWeight, WeightChangeEvent []ent.Interceptor
	}
)
