// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/paceseed/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/assessmentresponseevent"
	"github.com/abhisek/paceseed/ent/assignment"
	"github.com/abhisek/paceseed/ent/assignmentcompletionevent"
	"github.com/abhisek/paceseed/ent/attendanceevent"
	"github.com/abhisek/paceseed/ent/coursemodule"
	"github.com/abhisek/paceseed/ent/educator"
	"github.com/abhisek/paceseed/ent/enrollment"
	"github.com/abhisek/paceseed/ent/feedbackevent"
	"github.com/abhisek/paceseed/ent/group"
	"github.com/abhisek/paceseed/ent/lesson"
	"github.com/abhisek/paceseed/ent/lessoncompletionevent"
	"github.com/abhisek/paceseed/ent/pointevent"
	"github.com/abhisek/paceseed/ent/question"
	"github.com/abhisek/paceseed/ent/questionevent"
	"github.com/abhisek/paceseed/ent/studentprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentResponseEvent is the client for interacting with the AssessmentResponseEvent builders.
	AssessmentResponseEvent *AssessmentResponseEventClient
	// Assignment is the client for interacting with the Assignment builders.
	Assignment *AssignmentClient
	// AssignmentCompletionEvent is the client for interacting with the AssignmentCompletionEvent builders.
	AssignmentCompletionEvent *AssignmentCompletionEventClient
	// AttendanceEvent is the client for interacting with the AttendanceEvent builders.
	AttendanceEvent *AttendanceEventClient
	// CourseModule is the client for interacting with the CourseModule builders.
	CourseModule *CourseModuleClient
	// Educator is the client for interacting with the Educator builders.
	Educator *EducatorClient
	// Enrollment is the client for interacting with the Enrollment builders.
	Enrollment *EnrollmentClient
	// FeedbackEvent is the client for interacting with the FeedbackEvent builders.
	FeedbackEvent *FeedbackEventClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// LessonCompletionEvent is the client for interacting with the LessonCompletionEvent builders.
	LessonCompletionEvent *LessonCompletionEventClient
	// PointEvent is the client for interacting with the PointEvent builders.
	PointEvent *PointEventClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// QuestionEvent is the client for interacting with the QuestionEvent builders.
	QuestionEvent *QuestionEventClient
	// StudentProfile is the client for interacting with the StudentProfile builders.
	StudentProfile *StudentProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentResponseEvent = NewAssessmentResponseEventClient(c.config)
	c.Assignment = NewAssignmentClient(c.config)
	c.AssignmentCompletionEvent = NewAssignmentCompletionEventClient(c.config)
	c.AttendanceEvent = NewAttendanceEventClient(c.config)
	c.CourseModule = NewCourseModuleClient(c.config)
	c.Educator = NewEducatorClient(c.config)
	c.Enrollment = NewEnrollmentClient(c.config)
	c.FeedbackEvent = NewFeedbackEventClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.LessonCompletionEvent = NewLessonCompletionEventClient(c.config)
	c.PointEvent = NewPointEventClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.QuestionEvent = NewQuestionEventClient(c.config)
	c.StudentProfile = NewStudentProfileClient(c.config)
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
		ctx:                       ctx,
		config:                    cfg,
		AssessmentResponseEvent:   NewAssessmentResponseEventClient(cfg),
		Assignment:                NewAssignmentClient(cfg),
		AssignmentCompletionEvent: NewAssignmentCompletionEventClient(cfg),
		AttendanceEvent:           NewAttendanceEventClient(cfg),
		CourseModule:              NewCourseModuleClient(cfg),
		Educator:                  NewEducatorClient(cfg),
		Enrollment:                NewEnrollmentClient(cfg),
		FeedbackEvent:             NewFeedbackEventClient(cfg),
		Group:                     NewGroupClient(cfg),
		Lesson:                    NewLessonClient(cfg),
		LessonCompletionEvent:     NewLessonCompletionEventClient(cfg),
		PointEvent:                NewPointEventClient(cfg),
		Question:                  NewQuestionClient(cfg),
		QuestionEvent:             NewQuestionEventClient(cfg),
		StudentProfile:            NewStudentProfileClient(cfg),
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
		ctx:                       ctx,
		config:                    cfg,
		AssessmentResponseEvent:   NewAssessmentResponseEventClient(cfg),
		Assignment:                NewAssignmentClient(cfg),
		AssignmentCompletionEvent: NewAssignmentCompletionEventClient(cfg),
		AttendanceEvent:           NewAttendanceEventClient(cfg),
		CourseModule:              NewCourseModuleClient(cfg),
		Educator:                  NewEducatorClient(cfg),
		Enrollment:                NewEnrollmentClient(cfg),
		FeedbackEvent:             NewFeedbackEventClient(cfg),
		Group:                     NewGroupClient(cfg),
		Lesson:                    NewLessonClient(cfg),
		LessonCompletionEvent:     NewLessonCompletionEventClient(cfg),
		PointEvent:                NewPointEventClient(cfg),
		Question:                  NewQuestionClient(cfg),
		QuestionEvent:             NewQuestionEventClient(cfg),
		StudentProfile:            NewStudentProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentResponseEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AssessmentResponseEvent, c.Assignment, c.AssignmentCompletionEvent,
		c.AttendanceEvent, c.CourseModule, c.Educator, c.Enrollment, c.FeedbackEvent,
		c.Group, c.Lesson, c.LessonCompletionEvent, c.PointEvent, c.Question,
		c.QuestionEvent, c.StudentProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AssessmentResponseEvent, c.Assignment, c.AssignmentCompletionEvent,
		c.AttendanceEvent, c.CourseModule, c.Educator, c.Enrollment, c.FeedbackEvent,
		c.Group, c.Lesson, c.LessonCompletionEvent, c.PointEvent, c.Question,
		c.QuestionEvent, c.StudentProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentResponseEventMutation:
		return c.AssessmentResponseEvent.mutate(ctx, m)
	case *AssignmentMutation:
		return c.Assignment.mutate(ctx, m)
	case *AssignmentCompletionEventMutation:
		return c.AssignmentCompletionEvent.mutate(ctx, m)
	case *AttendanceEventMutation:
		return c.AttendanceEvent.mutate(ctx, m)
	case *CourseModuleMutation:
		return c.CourseModule.mutate(ctx, m)
	case *EducatorMutation:
		return c.Educator.mutate(ctx, m)
	case *EnrollmentMutation:
		return c.Enrollment.mutate(ctx, m)
	case *FeedbackEventMutation:
		return c.FeedbackEvent.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *LessonCompletionEventMutation:
		return c.LessonCompletionEvent.mutate(ctx, m)
	case *PointEventMutation:
		return c.PointEvent.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuestionEventMutation:
		return c.QuestionEvent.mutate(ctx, m)
	case *StudentProfileMutation:
		return c.StudentProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentResponseEventClient is a client for the AssessmentResponseEvent schema.
type AssessmentResponseEventClient struct {
	config
}

// NewAssessmentResponseEventClient returns a client for the AssessmentResponseEvent from the given config.
func NewAssessmentResponseEventClient(c config) *AssessmentResponseEventClient {
	return &AssessmentResponseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentresponseevent.Hooks(f(g(h())))`.
func (c *AssessmentResponseEventClient) Use(hooks ...Hook) {
	c.hooks.AssessmentResponseEvent = append(c.hooks.AssessmentResponseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentresponseevent.Intercept(f(g(h())))`.
func (c *AssessmentResponseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentResponseEvent = append(c.inters.AssessmentResponseEvent, interceptors...)
}

// Create returns a builder for creating a AssessmentResponseEvent entity.
func (c *AssessmentResponseEventClient) Create() *AssessmentResponseEventCreate {
	mutation := newAssessmentResponseEventMutation(c.config, OpCreate)
	return &AssessmentResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentResponseEvent entities.
func (c *AssessmentResponseEventClient) CreateBulk(builders ...*AssessmentResponseEventCreate) *AssessmentResponseEventCreateBulk {
	return &AssessmentResponseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentResponseEventClient) MapCreateBulk(slice any, setFunc func(*AssessmentResponseEventCreate, int)) *AssessmentResponseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentResponseEventCreateBulk{err: fmt.Errorf("calling to AssessmentResponseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentResponseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentResponseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentResponseEvent.
func (c *AssessmentResponseEventClient) Update() *AssessmentResponseEventUpdate {
	mutation := newAssessmentResponseEventMutation(c.config, OpUpdate)
	return &AssessmentResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentResponseEventClient) UpdateOne(_m *AssessmentResponseEvent) *AssessmentResponseEventUpdateOne {
	mutation := newAssessmentResponseEventMutation(c.config, OpUpdateOne, withAssessmentResponseEvent(_m))
	return &AssessmentResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentResponseEventClient) UpdateOneID(id int) *AssessmentResponseEventUpdateOne {
	mutation := newAssessmentResponseEventMutation(c.config, OpUpdateOne, withAssessmentResponseEventID(id))
	return &AssessmentResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentResponseEvent.
func (c *AssessmentResponseEventClient) Delete() *AssessmentResponseEventDelete {
	mutation := newAssessmentResponseEventMutation(c.config, OpDelete)
	return &AssessmentResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentResponseEventClient) DeleteOne(_m *AssessmentResponseEvent) *AssessmentResponseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentResponseEventClient) DeleteOneID(id int) *AssessmentResponseEventDeleteOne {
	builder := c.Delete().Where(assessmentresponseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentResponseEventDeleteOne{builder}
}

// Query returns a query builder for AssessmentResponseEvent.
func (c *AssessmentResponseEventClient) Query() *AssessmentResponseEventQuery {
	return &AssessmentResponseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentResponseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentResponseEvent entity by its id.
func (c *AssessmentResponseEventClient) Get(ctx context.Context, id int) (*AssessmentResponseEvent, error) {
	return c.Query().Where(assessmentresponseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentResponseEventClient) GetX(ctx context.Context, id int) *AssessmentResponseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentResponseEventClient) Hooks() []Hook {
	return c.hooks.AssessmentResponseEvent
}

// Interceptors returns the client interceptors.
func (c *AssessmentResponseEventClient) Interceptors() []Interceptor {
	return c.inters.AssessmentResponseEvent
}

func (c *AssessmentResponseEventClient) mutate(ctx context.Context, m *AssessmentResponseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentResponseEvent mutation op: %q", m.Op())
	}
}

// AssignmentClient is a client for the Assignment schema.
type AssignmentClient struct {
	config
}

// NewAssignmentClient returns a client for the Assignment from the given config.
func NewAssignmentClient(c config) *AssignmentClient {
	return &AssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assignment.Hooks(f(g(h())))`.
func (c *AssignmentClient) Use(hooks ...Hook) {
	c.hooks.Assignment = append(c.hooks.Assignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assignment.Intercept(f(g(h())))`.
func (c *AssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assignment = append(c.inters.Assignment, interceptors...)
}

// Create returns a builder for creating a Assignment entity.
func (c *AssignmentClient) Create() *AssignmentCreate {
	mutation := newAssignmentMutation(c.config, OpCreate)
	return &AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assignment entities.
func (c *AssignmentClient) CreateBulk(builders ...*AssignmentCreate) *AssignmentCreateBulk {
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignmentClient) MapCreateBulk(slice any, setFunc func(*AssignmentCreate, int)) *AssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignmentCreateBulk{err: fmt.Errorf("calling to AssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assignment.
func (c *AssignmentClient) Update() *AssignmentUpdate {
	mutation := newAssignmentMutation(c.config, OpUpdate)
	return &AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignmentClient) UpdateOne(_m *Assignment) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignment(_m))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignmentClient) UpdateOneID(id int) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignmentID(id))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assignment.
func (c *AssignmentClient) Delete() *AssignmentDelete {
	mutation := newAssignmentMutation(c.config, OpDelete)
	return &AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignmentClient) DeleteOne(_m *Assignment) *AssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignmentClient) DeleteOneID(id int) *AssignmentDeleteOne {
	builder := c.Delete().Where(assignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignmentDeleteOne{builder}
}

// Query returns a query builder for Assignment.
func (c *AssignmentClient) Query() *AssignmentQuery {
	return &AssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a Assignment entity by its id.
func (c *AssignmentClient) Get(ctx context.Context, id int) (*Assignment, error) {
	return c.Query().Where(assignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignmentClient) GetX(ctx context.Context, id int) *Assignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssignmentClient) Hooks() []Hook {
	return c.hooks.Assignment
}

// Interceptors returns the client interceptors.
func (c *AssignmentClient) Interceptors() []Interceptor {
	return c.inters.Assignment
}

func (c *AssignmentClient) mutate(ctx context.Context, m *AssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assignment mutation op: %q", m.Op())
	}
}

// AssignmentCompletionEventClient is a client for the AssignmentCompletionEvent schema.
type AssignmentCompletionEventClient struct {
	config
}

// NewAssignmentCompletionEventClient returns a client for the AssignmentCompletionEvent from the given config.
func NewAssignmentCompletionEventClient(c config) *AssignmentCompletionEventClient {
	return &AssignmentCompletionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assignmentcompletionevent.Hooks(f(g(h())))`.
func (c *AssignmentCompletionEventClient) Use(hooks ...Hook) {
	c.hooks.AssignmentCompletionEvent = append(c.hooks.AssignmentCompletionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assignmentcompletionevent.Intercept(f(g(h())))`.
func (c *AssignmentCompletionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssignmentCompletionEvent = append(c.inters.AssignmentCompletionEvent, interceptors...)
}

// Create returns a builder for creating a AssignmentCompletionEvent entity.
func (c *AssignmentCompletionEventClient) Create() *AssignmentCompletionEventCreate {
	mutation := newAssignmentCompletionEventMutation(c.config, OpCreate)
	return &AssignmentCompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssignmentCompletionEvent entities.
func (c *AssignmentCompletionEventClient) CreateBulk(builders ...*AssignmentCompletionEventCreate) *AssignmentCompletionEventCreateBulk {
	return &AssignmentCompletionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignmentCompletionEventClient) MapCreateBulk(slice any, setFunc func(*AssignmentCompletionEventCreate, int)) *AssignmentCompletionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignmentCompletionEventCreateBulk{err: fmt.Errorf("calling to AssignmentCompletionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignmentCompletionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignmentCompletionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssignmentCompletionEvent.
func (c *AssignmentCompletionEventClient) Update() *AssignmentCompletionEventUpdate {
	mutation := newAssignmentCompletionEventMutation(c.config, OpUpdate)
	return &AssignmentCompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignmentCompletionEventClient) UpdateOne(_m *AssignmentCompletionEvent) *AssignmentCompletionEventUpdateOne {
	mutation := newAssignmentCompletionEventMutation(c.config, OpUpdateOne, withAssignmentCompletionEvent(_m))
	return &AssignmentCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignmentCompletionEventClient) UpdateOneID(id int) *AssignmentCompletionEventUpdateOne {
	mutation := newAssignmentCompletionEventMutation(c.config, OpUpdateOne, withAssignmentCompletionEventID(id))
	return &AssignmentCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssignmentCompletionEvent.
func (c *AssignmentCompletionEventClient) Delete() *AssignmentCompletionEventDelete {
	mutation := newAssignmentCompletionEventMutation(c.config, OpDelete)
	return &AssignmentCompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignmentCompletionEventClient) DeleteOne(_m *AssignmentCompletionEvent) *AssignmentCompletionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignmentCompletionEventClient) DeleteOneID(id int) *AssignmentCompletionEventDeleteOne {
	builder := c.Delete().Where(assignmentcompletionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignmentCompletionEventDeleteOne{builder}
}

// Query returns a query builder for AssignmentCompletionEvent.
func (c *AssignmentCompletionEventClient) Query() *AssignmentCompletionEventQuery {
	return &AssignmentCompletionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignmentCompletionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AssignmentCompletionEvent entity by its id.
func (c *AssignmentCompletionEventClient) Get(ctx context.Context, id int) (*AssignmentCompletionEvent, error) {
	return c.Query().Where(assignmentcompletionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignmentCompletionEventClient) GetX(ctx context.Context, id int) *AssignmentCompletionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssignmentCompletionEventClient) Hooks() []Hook {
	return c.hooks.AssignmentCompletionEvent
}

// Interceptors returns the client interceptors.
func (c *AssignmentCompletionEventClient) Interceptors() []Interceptor {
	return c.inters.AssignmentCompletionEvent
}

func (c *AssignmentCompletionEventClient) mutate(ctx context.Context, m *AssignmentCompletionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignmentCompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignmentCompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignmentCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignmentCompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssignmentCompletionEvent mutation op: %q", m.Op())
	}
}

// AttendanceEventClient is a client for the AttendanceEvent schema.
type AttendanceEventClient struct {
	config
}

// NewAttendanceEventClient returns a client for the AttendanceEvent from the given config.
func NewAttendanceEventClient(c config) *AttendanceEventClient {
	return &AttendanceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attendanceevent.Hooks(f(g(h())))`.
func (c *AttendanceEventClient) Use(hooks ...Hook) {
	c.hooks.AttendanceEvent = append(c.hooks.AttendanceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attendanceevent.Intercept(f(g(h())))`.
func (c *AttendanceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttendanceEvent = append(c.inters.AttendanceEvent, interceptors...)
}

// Create returns a builder for creating a AttendanceEvent entity.
func (c *AttendanceEventClient) Create() *AttendanceEventCreate {
	mutation := newAttendanceEventMutation(c.config, OpCreate)
	return &AttendanceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttendanceEvent entities.
func (c *AttendanceEventClient) CreateBulk(builders ...*AttendanceEventCreate) *AttendanceEventCreateBulk {
	return &AttendanceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttendanceEventClient) MapCreateBulk(slice any, setFunc func(*AttendanceEventCreate, int)) *AttendanceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttendanceEventCreateBulk{err: fmt.Errorf("calling to AttendanceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttendanceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttendanceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttendanceEvent.
func (c *AttendanceEventClient) Update() *AttendanceEventUpdate {
	mutation := newAttendanceEventMutation(c.config, OpUpdate)
	return &AttendanceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttendanceEventClient) UpdateOne(_m *AttendanceEvent) *AttendanceEventUpdateOne {
	mutation := newAttendanceEventMutation(c.config, OpUpdateOne, withAttendanceEvent(_m))
	return &AttendanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttendanceEventClient) UpdateOneID(id int) *AttendanceEventUpdateOne {
	mutation := newAttendanceEventMutation(c.config, OpUpdateOne, withAttendanceEventID(id))
	return &AttendanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttendanceEvent.
func (c *AttendanceEventClient) Delete() *AttendanceEventDelete {
	mutation := newAttendanceEventMutation(c.config, OpDelete)
	return &AttendanceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttendanceEventClient) DeleteOne(_m *AttendanceEvent) *AttendanceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttendanceEventClient) DeleteOneID(id int) *AttendanceEventDeleteOne {
	builder := c.Delete().Where(attendanceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttendanceEventDeleteOne{builder}
}

// Query returns a query builder for AttendanceEvent.
func (c *AttendanceEventClient) Query() *AttendanceEventQuery {
	return &AttendanceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttendanceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttendanceEvent entity by its id.
func (c *AttendanceEventClient) Get(ctx context.Context, id int) (*AttendanceEvent, error) {
	return c.Query().Where(attendanceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttendanceEventClient) GetX(ctx context.Context, id int) *AttendanceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttendanceEventClient) Hooks() []Hook {
	return c.hooks.AttendanceEvent
}

// Interceptors returns the client interceptors.
func (c *AttendanceEventClient) Interceptors() []Interceptor {
	return c.inters.AttendanceEvent
}

func (c *AttendanceEventClient) mutate(ctx context.Context, m *AttendanceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttendanceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttendanceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttendanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttendanceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttendanceEvent mutation op: %q", m.Op())
	}
}

// CourseModuleClient is a client for the CourseModule schema.
type CourseModuleClient struct {
	config
}

// NewCourseModuleClient returns a client for the CourseModule from the given config.
func NewCourseModuleClient(c config) *CourseModuleClient {
	return &CourseModuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coursemodule.Hooks(f(g(h())))`.
func (c *CourseModuleClient) Use(hooks ...Hook) {
	c.hooks.CourseModule = append(c.hooks.CourseModule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coursemodule.Intercept(f(g(h())))`.
func (c *CourseModuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseModule = append(c.inters.CourseModule, interceptors...)
}

// Create returns a builder for creating a CourseModule entity.
func (c *CourseModuleClient) Create() *CourseModuleCreate {
	mutation := newCourseModuleMutation(c.config, OpCreate)
	return &CourseModuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseModule entities.
func (c *CourseModuleClient) CreateBulk(builders ...*CourseModuleCreate) *CourseModuleCreateBulk {
	return &CourseModuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseModuleClient) MapCreateBulk(slice any, setFunc func(*CourseModuleCreate, int)) *CourseModuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseModuleCreateBulk{err: fmt.Errorf("calling to CourseModuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseModuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseModuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseModule.
func (c *CourseModuleClient) Update() *CourseModuleUpdate {
	mutation := newCourseModuleMutation(c.config, OpUpdate)
	return &CourseModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseModuleClient) UpdateOne(_m *CourseModule) *CourseModuleUpdateOne {
	mutation := newCourseModuleMutation(c.config, OpUpdateOne, withCourseModule(_m))
	return &CourseModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseModuleClient) UpdateOneID(id int) *CourseModuleUpdateOne {
	mutation := newCourseModuleMutation(c.config, OpUpdateOne, withCourseModuleID(id))
	return &CourseModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseModule.
func (c *CourseModuleClient) Delete() *CourseModuleDelete {
	mutation := newCourseModuleMutation(c.config, OpDelete)
	return &CourseModuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseModuleClient) DeleteOne(_m *CourseModule) *CourseModuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseModuleClient) DeleteOneID(id int) *CourseModuleDeleteOne {
	builder := c.Delete().Where(coursemodule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseModuleDeleteOne{builder}
}

// Query returns a query builder for CourseModule.
func (c *CourseModuleClient) Query() *CourseModuleQuery {
	return &CourseModuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseModule},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseModule entity by its id.
func (c *CourseModuleClient) Get(ctx context.Context, id int) (*CourseModule, error) {
	return c.Query().Where(coursemodule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseModuleClient) GetX(ctx context.Context, id int) *CourseModule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseModuleClient) Hooks() []Hook {
	return c.hooks.CourseModule
}

// Interceptors returns the client interceptors.
func (c *CourseModuleClient) Interceptors() []Interceptor {
	return c.inters.CourseModule
}

func (c *CourseModuleClient) mutate(ctx context.Context, m *CourseModuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseModuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseModuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseModule mutation op: %q", m.Op())
	}
}

// EducatorClient is a client for the Educator schema.
type EducatorClient struct {
	config
}

// NewEducatorClient returns a client for the Educator from the given config.
func NewEducatorClient(c config) *EducatorClient {
	return &EducatorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `educator.Hooks(f(g(h())))`.
func (c *EducatorClient) Use(hooks ...Hook) {
	c.hooks.Educator = append(c.hooks.Educator, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `educator.Intercept(f(g(h())))`.
func (c *EducatorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Educator = append(c.inters.Educator, interceptors...)
}

// Create returns a builder for creating a Educator entity.
func (c *EducatorClient) Create() *EducatorCreate {
	mutation := newEducatorMutation(c.config, OpCreate)
	return &EducatorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Educator entities.
func (c *EducatorClient) CreateBulk(builders ...*EducatorCreate) *EducatorCreateBulk {
	return &EducatorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EducatorClient) MapCreateBulk(slice any, setFunc func(*EducatorCreate, int)) *EducatorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EducatorCreateBulk{err: fmt.Errorf("calling to EducatorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EducatorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EducatorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Educator.
func (c *EducatorClient) Update() *EducatorUpdate {
	mutation := newEducatorMutation(c.config, OpUpdate)
	return &EducatorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EducatorClient) UpdateOne(_m *Educator) *EducatorUpdateOne {
	mutation := newEducatorMutation(c.config, OpUpdateOne, withEducator(_m))
	return &EducatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EducatorClient) UpdateOneID(id int) *EducatorUpdateOne {
	mutation := newEducatorMutation(c.config, OpUpdateOne, withEducatorID(id))
	return &EducatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Educator.
func (c *EducatorClient) Delete() *EducatorDelete {
	mutation := newEducatorMutation(c.config, OpDelete)
	return &EducatorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EducatorClient) DeleteOne(_m *Educator) *EducatorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EducatorClient) DeleteOneID(id int) *EducatorDeleteOne {
	builder := c.Delete().Where(educator.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EducatorDeleteOne{builder}
}

// Query returns a query builder for Educator.
func (c *EducatorClient) Query() *EducatorQuery {
	return &EducatorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEducator},
		inters: c.Interceptors(),
	}
}

// Get returns a Educator entity by its id.
func (c *EducatorClient) Get(ctx context.Context, id int) (*Educator, error) {
	return c.Query().Where(educator.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EducatorClient) GetX(ctx context.Context, id int) *Educator {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EducatorClient) Hooks() []Hook {
	return c.hooks.Educator
}

// Interceptors returns the client interceptors.
func (c *EducatorClient) Interceptors() []Interceptor {
	return c.inters.Educator
}

func (c *EducatorClient) mutate(ctx context.Context, m *EducatorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EducatorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EducatorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EducatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EducatorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Educator mutation op: %q", m.Op())
	}
}

// EnrollmentClient is a client for the Enrollment schema.
type EnrollmentClient struct {
	config
}

// NewEnrollmentClient returns a client for the Enrollment from the given config.
func NewEnrollmentClient(c config) *EnrollmentClient {
	return &EnrollmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enrollment.Hooks(f(g(h())))`.
func (c *EnrollmentClient) Use(hooks ...Hook) {
	c.hooks.Enrollment = append(c.hooks.Enrollment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enrollment.Intercept(f(g(h())))`.
func (c *EnrollmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Enrollment = append(c.inters.Enrollment, interceptors...)
}

// Create returns a builder for creating a Enrollment entity.
func (c *EnrollmentClient) Create() *EnrollmentCreate {
	mutation := newEnrollmentMutation(c.config, OpCreate)
	return &EnrollmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Enrollment entities.
func (c *EnrollmentClient) CreateBulk(builders ...*EnrollmentCreate) *EnrollmentCreateBulk {
	return &EnrollmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnrollmentClient) MapCreateBulk(slice any, setFunc func(*EnrollmentCreate, int)) *EnrollmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnrollmentCreateBulk{err: fmt.Errorf("calling to EnrollmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnrollmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnrollmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Enrollment.
func (c *EnrollmentClient) Update() *EnrollmentUpdate {
	mutation := newEnrollmentMutation(c.config, OpUpdate)
	return &EnrollmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnrollmentClient) UpdateOne(_m *Enrollment) *EnrollmentUpdateOne {
	mutation := newEnrollmentMutation(c.config, OpUpdateOne, withEnrollment(_m))
	return &EnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnrollmentClient) UpdateOneID(id int) *EnrollmentUpdateOne {
	mutation := newEnrollmentMutation(c.config, OpUpdateOne, withEnrollmentID(id))
	return &EnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Enrollment.
func (c *EnrollmentClient) Delete() *EnrollmentDelete {
	mutation := newEnrollmentMutation(c.config, OpDelete)
	return &EnrollmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnrollmentClient) DeleteOne(_m *Enrollment) *EnrollmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnrollmentClient) DeleteOneID(id int) *EnrollmentDeleteOne {
	builder := c.Delete().Where(enrollment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnrollmentDeleteOne{builder}
}

// Query returns a query builder for Enrollment.
func (c *EnrollmentClient) Query() *EnrollmentQuery {
	return &EnrollmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnrollment},
		inters: c.Interceptors(),
	}
}

// Get returns a Enrollment entity by its id.
func (c *EnrollmentClient) Get(ctx context.Context, id int) (*Enrollment, error) {
	return c.Query().Where(enrollment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnrollmentClient) GetX(ctx context.Context, id int) *Enrollment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnrollmentClient) Hooks() []Hook {
	return c.hooks.Enrollment
}

// Interceptors returns the client interceptors.
func (c *EnrollmentClient) Interceptors() []Interceptor {
	return c.inters.Enrollment
}

func (c *EnrollmentClient) mutate(ctx context.Context, m *EnrollmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnrollmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnrollmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnrollmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Enrollment mutation op: %q", m.Op())
	}
}

// FeedbackEventClient is a client for the FeedbackEvent schema.
type FeedbackEventClient struct {
	config
}

// NewFeedbackEventClient returns a client for the FeedbackEvent from the given config.
func NewFeedbackEventClient(c config) *FeedbackEventClient {
	return &FeedbackEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackevent.Hooks(f(g(h())))`.
func (c *FeedbackEventClient) Use(hooks ...Hook) {
	c.hooks.FeedbackEvent = append(c.hooks.FeedbackEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackevent.Intercept(f(g(h())))`.
func (c *FeedbackEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackEvent = append(c.inters.FeedbackEvent, interceptors...)
}

// Create returns a builder for creating a FeedbackEvent entity.
func (c *FeedbackEventClient) Create() *FeedbackEventCreate {
	mutation := newFeedbackEventMutation(c.config, OpCreate)
	return &FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackEvent entities.
func (c *FeedbackEventClient) CreateBulk(builders ...*FeedbackEventCreate) *FeedbackEventCreateBulk {
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackEventClient) MapCreateBulk(slice any, setFunc func(*FeedbackEventCreate, int)) *FeedbackEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackEventCreateBulk{err: fmt.Errorf("calling to FeedbackEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackEvent.
func (c *FeedbackEventClient) Update() *FeedbackEventUpdate {
	mutation := newFeedbackEventMutation(c.config, OpUpdate)
	return &FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackEventClient) UpdateOne(_m *FeedbackEvent) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEvent(_m))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackEventClient) UpdateOneID(id int) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEventID(id))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackEvent.
func (c *FeedbackEventClient) Delete() *FeedbackEventDelete {
	mutation := newFeedbackEventMutation(c.config, OpDelete)
	return &FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackEventClient) DeleteOne(_m *FeedbackEvent) *FeedbackEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackEventClient) DeleteOneID(id int) *FeedbackEventDeleteOne {
	builder := c.Delete().Where(feedbackevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackEventDeleteOne{builder}
}

// Query returns a query builder for FeedbackEvent.
func (c *FeedbackEventClient) Query() *FeedbackEventQuery {
	return &FeedbackEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackEvent entity by its id.
func (c *FeedbackEventClient) Get(ctx context.Context, id int) (*FeedbackEvent, error) {
	return c.Query().Where(feedbackevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackEventClient) GetX(ctx context.Context, id int) *FeedbackEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackEventClient) Hooks() []Hook {
	return c.hooks.FeedbackEvent
}

// Interceptors returns the client interceptors.
func (c *FeedbackEventClient) Interceptors() []Interceptor {
	return c.inters.FeedbackEvent
}

func (c *FeedbackEventClient) mutate(ctx context.Context, m *FeedbackEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackEvent mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id int) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id int) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id int) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id int) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id int) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id int) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id int) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id int) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// LessonCompletionEventClient is a client for the LessonCompletionEvent schema.
type LessonCompletionEventClient struct {
	config
}

// NewLessonCompletionEventClient returns a client for the LessonCompletionEvent from the given config.
func NewLessonCompletionEventClient(c config) *LessonCompletionEventClient {
	return &LessonCompletionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessoncompletionevent.Hooks(f(g(h())))`.
func (c *LessonCompletionEventClient) Use(hooks ...Hook) {
	c.hooks.LessonCompletionEvent = append(c.hooks.LessonCompletionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessoncompletionevent.Intercept(f(g(h())))`.
func (c *LessonCompletionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonCompletionEvent = append(c.inters.LessonCompletionEvent, interceptors...)
}

// Create returns a builder for creating a LessonCompletionEvent entity.
func (c *LessonCompletionEventClient) Create() *LessonCompletionEventCreate {
	mutation := newLessonCompletionEventMutation(c.config, OpCreate)
	return &LessonCompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonCompletionEvent entities.
func (c *LessonCompletionEventClient) CreateBulk(builders ...*LessonCompletionEventCreate) *LessonCompletionEventCreateBulk {
	return &LessonCompletionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonCompletionEventClient) MapCreateBulk(slice any, setFunc func(*LessonCompletionEventCreate, int)) *LessonCompletionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCompletionEventCreateBulk{err: fmt.Errorf("calling to LessonCompletionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCompletionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCompletionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonCompletionEvent.
func (c *LessonCompletionEventClient) Update() *LessonCompletionEventUpdate {
	mutation := newLessonCompletionEventMutation(c.config, OpUpdate)
	return &LessonCompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonCompletionEventClient) UpdateOne(_m *LessonCompletionEvent) *LessonCompletionEventUpdateOne {
	mutation := newLessonCompletionEventMutation(c.config, OpUpdateOne, withLessonCompletionEvent(_m))
	return &LessonCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonCompletionEventClient) UpdateOneID(id int) *LessonCompletionEventUpdateOne {
	mutation := newLessonCompletionEventMutation(c.config, OpUpdateOne, withLessonCompletionEventID(id))
	return &LessonCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonCompletionEvent.
func (c *LessonCompletionEventClient) Delete() *LessonCompletionEventDelete {
	mutation := newLessonCompletionEventMutation(c.config, OpDelete)
	return &LessonCompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonCompletionEventClient) DeleteOne(_m *LessonCompletionEvent) *LessonCompletionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonCompletionEventClient) DeleteOneID(id int) *LessonCompletionEventDeleteOne {
	builder := c.Delete().Where(lessoncompletionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonCompletionEventDeleteOne{builder}
}

// Query returns a query builder for LessonCompletionEvent.
func (c *LessonCompletionEventClient) Query() *LessonCompletionEventQuery {
	return &LessonCompletionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonCompletionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonCompletionEvent entity by its id.
func (c *LessonCompletionEventClient) Get(ctx context.Context, id int) (*LessonCompletionEvent, error) {
	return c.Query().Where(lessoncompletionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonCompletionEventClient) GetX(ctx context.Context, id int) *LessonCompletionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonCompletionEventClient) Hooks() []Hook {
	return c.hooks.LessonCompletionEvent
}

// Interceptors returns the client interceptors.
func (c *LessonCompletionEventClient) Interceptors() []Interceptor {
	return c.inters.LessonCompletionEvent
}

func (c *LessonCompletionEventClient) mutate(ctx context.Context, m *LessonCompletionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonCompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonCompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonCompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonCompletionEvent mutation op: %q", m.Op())
	}
}

// PointEventClient is a client for the PointEvent schema.
type PointEventClient struct {
	config
}

// NewPointEventClient returns a client for the PointEvent from the given config.
func NewPointEventClient(c config) *PointEventClient {
	return &PointEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pointevent.Hooks(f(g(h())))`.
func (c *PointEventClient) Use(hooks ...Hook) {
	c.hooks.PointEvent = append(c.hooks.PointEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pointevent.Intercept(f(g(h())))`.
func (c *PointEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PointEvent = append(c.inters.PointEvent, interceptors...)
}

// Create returns a builder for creating a PointEvent entity.
func (c *PointEventClient) Create() *PointEventCreate {
	mutation := newPointEventMutation(c.config, OpCreate)
	return &PointEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PointEvent entities.
func (c *PointEventClient) CreateBulk(builders ...*PointEventCreate) *PointEventCreateBulk {
	return &PointEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PointEventClient) MapCreateBulk(slice any, setFunc func(*PointEventCreate, int)) *PointEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PointEventCreateBulk{err: fmt.Errorf("calling to PointEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PointEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PointEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PointEvent.
func (c *PointEventClient) Update() *PointEventUpdate {
	mutation := newPointEventMutation(c.config, OpUpdate)
	return &PointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PointEventClient) UpdateOne(_m *PointEvent) *PointEventUpdateOne {
	mutation := newPointEventMutation(c.config, OpUpdateOne, withPointEvent(_m))
	return &PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PointEventClient) UpdateOneID(id int) *PointEventUpdateOne {
	mutation := newPointEventMutation(c.config, OpUpdateOne, withPointEventID(id))
	return &PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PointEvent.
func (c *PointEventClient) Delete() *PointEventDelete {
	mutation := newPointEventMutation(c.config, OpDelete)
	return &PointEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PointEventClient) DeleteOne(_m *PointEvent) *PointEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PointEventClient) DeleteOneID(id int) *PointEventDeleteOne {
	builder := c.Delete().Where(pointevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PointEventDeleteOne{builder}
}

// Query returns a query builder for PointEvent.
func (c *PointEventClient) Query() *PointEventQuery {
	return &PointEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePointEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PointEvent entity by its id.
func (c *PointEventClient) Get(ctx context.Context, id int) (*PointEvent, error) {
	return c.Query().Where(pointevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PointEventClient) GetX(ctx context.Context, id int) *PointEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PointEventClient) Hooks() []Hook {
	return c.hooks.PointEvent
}

// Interceptors returns the client interceptors.
func (c *PointEventClient) Interceptors() []Interceptor {
	return c.inters.PointEvent
}

func (c *PointEventClient) mutate(ctx context.Context, m *PointEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PointEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PointEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PointEvent mutation op: %q", m.Op())
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

// QuestionEventClient is a client for the QuestionEvent schema.
type QuestionEventClient struct {
	config
}

// NewQuestionEventClient returns a client for the QuestionEvent from the given config.
func NewQuestionEventClient(c config) *QuestionEventClient {
	return &QuestionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionevent.Hooks(f(g(h())))`.
func (c *QuestionEventClient) Use(hooks ...Hook) {
	c.hooks.QuestionEvent = append(c.hooks.QuestionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionevent.Intercept(f(g(h())))`.
func (c *QuestionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionEvent = append(c.inters.QuestionEvent, interceptors...)
}

// Create returns a builder for creating a QuestionEvent entity.
func (c *QuestionEventClient) Create() *QuestionEventCreate {
	mutation := newQuestionEventMutation(c.config, OpCreate)
	return &QuestionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionEvent entities.
func (c *QuestionEventClient) CreateBulk(builders ...*QuestionEventCreate) *QuestionEventCreateBulk {
	return &QuestionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionEventClient) MapCreateBulk(slice any, setFunc func(*QuestionEventCreate, int)) *QuestionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionEventCreateBulk{err: fmt.Errorf("calling to QuestionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionEvent.
func (c *QuestionEventClient) Update() *QuestionEventUpdate {
	mutation := newQuestionEventMutation(c.config, OpUpdate)
	return &QuestionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionEventClient) UpdateOne(_m *QuestionEvent) *QuestionEventUpdateOne {
	mutation := newQuestionEventMutation(c.config, OpUpdateOne, withQuestionEvent(_m))
	return &QuestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionEventClient) UpdateOneID(id int) *QuestionEventUpdateOne {
	mutation := newQuestionEventMutation(c.config, OpUpdateOne, withQuestionEventID(id))
	return &QuestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionEvent.
func (c *QuestionEventClient) Delete() *QuestionEventDelete {
	mutation := newQuestionEventMutation(c.config, OpDelete)
	return &QuestionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionEventClient) DeleteOne(_m *QuestionEvent) *QuestionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionEventClient) DeleteOneID(id int) *QuestionEventDeleteOne {
	builder := c.Delete().Where(questionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionEventDeleteOne{builder}
}

// Query returns a query builder for QuestionEvent.
func (c *QuestionEventClient) Query() *QuestionEventQuery {
	return &QuestionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionEvent entity by its id.
func (c *QuestionEventClient) Get(ctx context.Context, id int) (*QuestionEvent, error) {
	return c.Query().Where(questionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionEventClient) GetX(ctx context.Context, id int) *QuestionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionEventClient) Hooks() []Hook {
	return c.hooks.QuestionEvent
}

// Interceptors returns the client interceptors.
func (c *QuestionEventClient) Interceptors() []Interceptor {
	return c.inters.QuestionEvent
}

func (c *QuestionEventClient) mutate(ctx context.Context, m *QuestionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionEvent mutation op: %q", m.Op())
	}
}

// StudentProfileClient is a client for the StudentProfile schema.
type StudentProfileClient struct {
	config
}

// NewStudentProfileClient returns a client for the StudentProfile from the given config.
func NewStudentProfileClient(c config) *StudentProfileClient {
	return &StudentProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentprofile.Hooks(f(g(h())))`.
func (c *StudentProfileClient) Use(hooks ...Hook) {
	c.hooks.StudentProfile = append(c.hooks.StudentProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentprofile.Intercept(f(g(h())))`.
func (c *StudentProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentProfile = append(c.inters.StudentProfile, interceptors...)
}

// Create returns a builder for creating a StudentProfile entity.
func (c *StudentProfileClient) Create() *StudentProfileCreate {
	mutation := newStudentProfileMutation(c.config, OpCreate)
	return &StudentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentProfile entities.
func (c *StudentProfileClient) CreateBulk(builders ...*StudentProfileCreate) *StudentProfileCreateBulk {
	return &StudentProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentProfileClient) MapCreateBulk(slice any, setFunc func(*StudentProfileCreate, int)) *StudentProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentProfileCreateBulk{err: fmt.Errorf("calling to StudentProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentProfile.
func (c *StudentProfileClient) Update() *StudentProfileUpdate {
	mutation := newStudentProfileMutation(c.config, OpUpdate)
	return &StudentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentProfileClient) UpdateOne(_m *StudentProfile) *StudentProfileUpdateOne {
	mutation := newStudentProfileMutation(c.config, OpUpdateOne, withStudentProfile(_m))
	return &StudentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentProfileClient) UpdateOneID(id int) *StudentProfileUpdateOne {
	mutation := newStudentProfileMutation(c.config, OpUpdateOne, withStudentProfileID(id))
	return &StudentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentProfile.
func (c *StudentProfileClient) Delete() *StudentProfileDelete {
	mutation := newStudentProfileMutation(c.config, OpDelete)
	return &StudentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentProfileClient) DeleteOne(_m *StudentProfile) *StudentProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentProfileClient) DeleteOneID(id int) *StudentProfileDeleteOne {
	builder := c.Delete().Where(studentprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentProfileDeleteOne{builder}
}

// Query returns a query builder for StudentProfile.
func (c *StudentProfileClient) Query() *StudentProfileQuery {
	return &StudentProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentProfile entity by its id.
func (c *StudentProfileClient) Get(ctx context.Context, id int) (*StudentProfile, error) {
	return c.Query().Where(studentprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentProfileClient) GetX(ctx context.Context, id int) *StudentProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentProfileClient) Hooks() []Hook {
	return c.hooks.StudentProfile
}

// Interceptors returns the client interceptors.
func (c *StudentProfileClient) Interceptors() []Interceptor {
	return c.inters.StudentProfile
}

func (c *StudentProfileClient) mutate(ctx context.Context, m *StudentProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentResponseEvent, Assignment, AssignmentCompletionEvent, AttendanceEvent,
		CourseModule, Educator, Enrollment, FeedbackEvent, Group, Lesson,
		LessonCompletionEvent, PointEvent, Question, QuestionEvent,
		StudentProfile []ent.Hook
	}
	inters struct {
		AssessmentResponseEvent, Assignment, AssignmentCompletionEvent, AttendanceEvent,
		CourseModule, Educator, Enrollment, FeedbackEvent, Group, Lesson,
		LessonCompletionEvent, PointEvent, Question, QuestionEvent,
		StudentProfile []ent.Interceptor
	}
)
