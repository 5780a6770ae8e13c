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
	"github.com/abhisek/paceseed/ent/predicate"
	"github.com/abhisek/paceseed/ent/question"
	"github.com/abhisek/paceseed/ent/questionevent"
	"github.com/abhisek/paceseed/ent/studentprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentResponseEvent   = "AssessmentResponseEvent"
	TypeAssignment                = "Assignment"
	TypeAssignmentCompletionEvent = "AssignmentCompletionEvent"
	TypeAttendanceEvent           = "AttendanceEvent"
	TypeCourseModule              = "CourseModule"
	TypeEducator                  = "Educator"
	TypeEnrollment                = "Enrollment"
	TypeFeedbackEvent             = "FeedbackEvent"
	TypeGroup                     = "Group"
	TypeLesson                    = "Lesson"
	TypeLessonCompletionEvent     = "LessonCompletionEvent"
	TypePointEvent                = "PointEvent"
	TypeQuestion                  = "Question"
	TypeQuestionEvent             = "QuestionEvent"
	TypeStudentProfile            = "StudentProfile"
)

// AssessmentResponseEventMutation represents an operation that mutates the AssessmentResponseEvent nodes in the graph.
type AssessmentResponseEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	group_id              *string
	enrollment_id         *string
	assessment_id         *string
	score                 *float64
	addscore              *float64
	questions_answered    *int
	addquestions_answered *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*AssessmentResponseEvent, error)
	predicates            []predicate.AssessmentResponseEvent
}

var _ ent.Mutation = (*AssessmentResponseEventMutation)(nil)

// assessmentresponseeventOption allows management of the mutation configuration using functional options.
type assessmentresponseeventOption func(*AssessmentResponseEventMutation)

// newAssessmentResponseEventMutation creates new mutation for the AssessmentResponseEvent entity.
func newAssessmentResponseEventMutation(c config, op Op, opts ...assessmentresponseeventOption) *AssessmentResponseEventMutation {
	m := &AssessmentResponseEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentResponseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentResponseEventID sets the ID field of the mutation.
func withAssessmentResponseEventID(id int) assessmentresponseeventOption {
	return func(m *AssessmentResponseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentResponseEvent
		)
		m.oldValue = func(ctx context.Context) (*AssessmentResponseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentResponseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentResponseEvent sets the old AssessmentResponseEvent of the mutation.
func withAssessmentResponseEvent(node *AssessmentResponseEvent) assessmentresponseeventOption {
	return func(m *AssessmentResponseEventMutation) {
		m.oldValue = func(context.Context) (*AssessmentResponseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentResponseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentResponseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentResponseEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentResponseEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentResponseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssessmentResponseEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessmentResponseEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssessmentResponseEvent entity.
// If the AssessmentResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AssessmentResponseEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessmentResponseEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessmentResponseEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessmentResponseEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessmentResponseEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssessmentResponseEvent entity.
// If the AssessmentResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AssessmentResponseEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *AssessmentResponseEventMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *AssessmentResponseEventMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the AssessmentResponseEvent entity.
// If the AssessmentResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseEventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *AssessmentResponseEventMutation) ResetGroupID() {
	m.group_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *AssessmentResponseEventMutation) SetEnrollmentID(s string) {
	m.enrollment_id = &s
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *AssessmentResponseEventMutation) EnrollmentID() (r string, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the AssessmentResponseEvent entity.
// If the AssessmentResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseEventMutation) OldEnrollmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *AssessmentResponseEventMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetAssessmentID sets the "assessment_id" field.
func (m *AssessmentResponseEventMutation) SetAssessmentID(s string) {
	m.assessment_id = &s
}

// AssessmentID returns the value of the "assessment_id" field in the mutation.
func (m *AssessmentResponseEventMutation) AssessmentID() (r string, exists bool) {
	v := m.assessment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentID returns the old "assessment_id" field's value of the AssessmentResponseEvent entity.
// If the AssessmentResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseEventMutation) OldAssessmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentID: %w", err)
	}
	return oldValue.AssessmentID, nil
}

// ResetAssessmentID resets all changes to the "assessment_id" field.
func (m *AssessmentResponseEventMutation) ResetAssessmentID() {
	m.assessment_id = nil
}

// SetScore sets the "score" field.
func (m *AssessmentResponseEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AssessmentResponseEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AssessmentResponseEvent entity.
// If the AssessmentResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AssessmentResponseEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AssessmentResponseEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AssessmentResponseEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *AssessmentResponseEventMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *AssessmentResponseEventMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the AssessmentResponseEvent entity.
// If the AssessmentResponseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseEventMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *AssessmentResponseEventMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *AssessmentResponseEventMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *AssessmentResponseEventMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// Where appends a list predicates to the AssessmentResponseEventMutation builder.
func (m *AssessmentResponseEventMutation) Where(ps ...predicate.AssessmentResponseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentResponseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentResponseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentResponseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentResponseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentResponseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentResponseEvent).
func (m *AssessmentResponseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentResponseEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, assessmentresponseevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assessmentresponseevent.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, assessmentresponseevent.FieldGroupID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, assessmentresponseevent.FieldEnrollmentID)
	}
	if m.assessment_id != nil {
		fields = append(fields, assessmentresponseevent.FieldAssessmentID)
	}
	if m.score != nil {
		fields = append(fields, assessmentresponseevent.FieldScore)
	}
	if m.questions_answered != nil {
		fields = append(fields, assessmentresponseevent.FieldQuestionsAnswered)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentResponseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentresponseevent.FieldSequence:
		return m.Sequence()
	case assessmentresponseevent.FieldTimestamp:
		return m.Timestamp()
	case assessmentresponseevent.FieldGroupID:
		return m.GroupID()
	case assessmentresponseevent.FieldEnrollmentID:
		return m.EnrollmentID()
	case assessmentresponseevent.FieldAssessmentID:
		return m.AssessmentID()
	case assessmentresponseevent.FieldScore:
		return m.Score()
	case assessmentresponseevent.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentResponseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentresponseevent.FieldSequence:
		return m.OldSequence(ctx)
	case assessmentresponseevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assessmentresponseevent.FieldGroupID:
		return m.OldGroupID(ctx)
	case assessmentresponseevent.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case assessmentresponseevent.FieldAssessmentID:
		return m.OldAssessmentID(ctx)
	case assessmentresponseevent.FieldScore:
		return m.OldScore(ctx)
	case assessmentresponseevent.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentResponseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentResponseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentresponseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessmentresponseevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assessmentresponseevent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case assessmentresponseevent.FieldEnrollmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case assessmentresponseevent.FieldAssessmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentID(v)
		return nil
	case assessmentresponseevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case assessmentresponseevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentResponseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentResponseEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessmentresponseevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, assessmentresponseevent.FieldScore)
	}
	if m.addquestions_answered != nil {
		fields = append(fields, assessmentresponseevent.FieldQuestionsAnswered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentResponseEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentresponseevent.FieldSequence:
		return m.AddedSequence()
	case assessmentresponseevent.FieldScore:
		return m.AddedScore()
	case assessmentresponseevent.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentResponseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentresponseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessmentresponseevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case assessmentresponseevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentResponseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentResponseEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentResponseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentResponseEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssessmentResponseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentResponseEventMutation) ResetField(name string) error {
	switch name {
	case assessmentresponseevent.FieldSequence:
		m.ResetSequence()
		return nil
	case assessmentresponseevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assessmentresponseevent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case assessmentresponseevent.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case assessmentresponseevent.FieldAssessmentID:
		m.ResetAssessmentID()
		return nil
	case assessmentresponseevent.FieldScore:
		m.ResetScore()
		return nil
	case assessmentresponseevent.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	}
	return fmt.Errorf("unknown AssessmentResponseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentResponseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentResponseEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentResponseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentResponseEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentResponseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentResponseEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentResponseEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentResponseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentResponseEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentResponseEvent edge %s", name)
}

// AssignmentMutation represents an operation that mutates the Assignment nodes in the graph.
type AssignmentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	public_id     *string
	group_id      *string
	title         *string
	kind          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Assignment, error)
	predicates    []predicate.Assignment
}

var _ ent.Mutation = (*AssignmentMutation)(nil)

// assignmentOption allows management of the mutation configuration using functional options.
type assignmentOption func(*AssignmentMutation)

// newAssignmentMutation creates new mutation for the Assignment entity.
func newAssignmentMutation(c config, op Op, opts ...assignmentOption) *AssignmentMutation {
	m := &AssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentID sets the ID field of the mutation.
func withAssignmentID(id int) assignmentOption {
	return func(m *AssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assignment
		)
		m.oldValue = func(ctx context.Context) (*Assignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignment sets the old Assignment of the mutation.
func withAssignment(node *Assignment) assignmentOption {
	return func(m *AssignmentMutation) {
		m.oldValue = func(context.Context) (*Assignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *AssignmentMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *AssignmentMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *AssignmentMutation) ResetPublicID() {
	m.public_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *AssignmentMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *AssignmentMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *AssignmentMutation) ResetGroupID() {
	m.group_id = nil
}

// SetTitle sets the "title" field.
func (m *AssignmentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AssignmentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AssignmentMutation) ResetTitle() {
	m.title = nil
}

// SetKind sets the "kind" field.
func (m *AssignmentMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AssignmentMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AssignmentMutation) ResetKind() {
	m.kind = nil
}

// Where appends a list predicates to the AssignmentMutation builder.
func (m *AssignmentMutation) Where(ps ...predicate.Assignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assignment).
func (m *AssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.public_id != nil {
		fields = append(fields, assignment.FieldPublicID)
	}
	if m.group_id != nil {
		fields = append(fields, assignment.FieldGroupID)
	}
	if m.title != nil {
		fields = append(fields, assignment.FieldTitle)
	}
	if m.kind != nil {
		fields = append(fields, assignment.FieldKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignment.FieldPublicID:
		return m.PublicID()
	case assignment.FieldGroupID:
		return m.GroupID()
	case assignment.FieldTitle:
		return m.Title()
	case assignment.FieldKind:
		return m.Kind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignment.FieldPublicID:
		return m.OldPublicID(ctx)
	case assignment.FieldGroupID:
		return m.OldGroupID(ctx)
	case assignment.FieldTitle:
		return m.OldTitle(ctx)
	case assignment.FieldKind:
		return m.OldKind(ctx)
	}
	return nil, fmt.Errorf("unknown Assignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignment.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case assignment.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case assignment.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case assignment.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Assignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Assignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentMutation) ResetField(name string) error {
	switch name {
	case assignment.FieldPublicID:
		m.ResetPublicID()
		return nil
	case assignment.FieldGroupID:
		m.ResetGroupID()
		return nil
	case assignment.FieldTitle:
		m.ResetTitle()
		return nil
	case assignment.FieldKind:
		m.ResetKind()
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Assignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Assignment edge %s", name)
}

// AssignmentCompletionEventMutation represents an operation that mutates the AssignmentCompletionEvent nodes in the graph.
type AssignmentCompletionEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	group_id      *string
	enrollment_id *string
	assignment_id *string
	lesson_id     *string
	score         *float64
	addscore      *float64
	delayed       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AssignmentCompletionEvent, error)
	predicates    []predicate.AssignmentCompletionEvent
}

var _ ent.Mutation = (*AssignmentCompletionEventMutation)(nil)

// assignmentcompletioneventOption allows management of the mutation configuration using functional options.
type assignmentcompletioneventOption func(*AssignmentCompletionEventMutation)

// newAssignmentCompletionEventMutation creates new mutation for the AssignmentCompletionEvent entity.
func newAssignmentCompletionEventMutation(c config, op Op, opts ...assignmentcompletioneventOption) *AssignmentCompletionEventMutation {
	m := &AssignmentCompletionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignmentCompletionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentCompletionEventID sets the ID field of the mutation.
func withAssignmentCompletionEventID(id int) assignmentcompletioneventOption {
	return func(m *AssignmentCompletionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AssignmentCompletionEvent
		)
		m.oldValue = func(ctx context.Context) (*AssignmentCompletionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssignmentCompletionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignmentCompletionEvent sets the old AssignmentCompletionEvent of the mutation.
func withAssignmentCompletionEvent(node *AssignmentCompletionEvent) assignmentcompletioneventOption {
	return func(m *AssignmentCompletionEventMutation) {
		m.oldValue = func(context.Context) (*AssignmentCompletionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentCompletionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentCompletionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentCompletionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentCompletionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssignmentCompletionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssignmentCompletionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssignmentCompletionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AssignmentCompletionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssignmentCompletionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssignmentCompletionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssignmentCompletionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssignmentCompletionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AssignmentCompletionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *AssignmentCompletionEventMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *AssignmentCompletionEventMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *AssignmentCompletionEventMutation) ResetGroupID() {
	m.group_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *AssignmentCompletionEventMutation) SetEnrollmentID(s string) {
	m.enrollment_id = &s
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *AssignmentCompletionEventMutation) EnrollmentID() (r string, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldEnrollmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *AssignmentCompletionEventMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetAssignmentID sets the "assignment_id" field.
func (m *AssignmentCompletionEventMutation) SetAssignmentID(s string) {
	m.assignment_id = &s
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *AssignmentCompletionEventMutation) AssignmentID() (r string, exists bool) {
	v := m.assignment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldAssignmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *AssignmentCompletionEventMutation) ResetAssignmentID() {
	m.assignment_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *AssignmentCompletionEventMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *AssignmentCompletionEventMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *AssignmentCompletionEventMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetScore sets the "score" field.
func (m *AssignmentCompletionEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AssignmentCompletionEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AssignmentCompletionEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AssignmentCompletionEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AssignmentCompletionEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetDelayed sets the "delayed" field.
func (m *AssignmentCompletionEventMutation) SetDelayed(b bool) {
	m.delayed = &b
}

// Delayed returns the value of the "delayed" field in the mutation.
func (m *AssignmentCompletionEventMutation) Delayed() (r bool, exists bool) {
	v := m.delayed
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayed returns the old "delayed" field's value of the AssignmentCompletionEvent entity.
// If the AssignmentCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentCompletionEventMutation) OldDelayed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayed: %w", err)
	}
	return oldValue.Delayed, nil
}

// ResetDelayed resets all changes to the "delayed" field.
func (m *AssignmentCompletionEventMutation) ResetDelayed() {
	m.delayed = nil
}

// Where appends a list predicates to the AssignmentCompletionEventMutation builder.
func (m *AssignmentCompletionEventMutation) Where(ps ...predicate.AssignmentCompletionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentCompletionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentCompletionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssignmentCompletionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentCompletionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentCompletionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssignmentCompletionEvent).
func (m *AssignmentCompletionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentCompletionEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, assignmentcompletionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assignmentcompletionevent.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, assignmentcompletionevent.FieldGroupID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, assignmentcompletionevent.FieldEnrollmentID)
	}
	if m.assignment_id != nil {
		fields = append(fields, assignmentcompletionevent.FieldAssignmentID)
	}
	if m.lesson_id != nil {
		fields = append(fields, assignmentcompletionevent.FieldLessonID)
	}
	if m.score != nil {
		fields = append(fields, assignmentcompletionevent.FieldScore)
	}
	if m.delayed != nil {
		fields = append(fields, assignmentcompletionevent.FieldDelayed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentCompletionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignmentcompletionevent.FieldSequence:
		return m.Sequence()
	case assignmentcompletionevent.FieldTimestamp:
		return m.Timestamp()
	case assignmentcompletionevent.FieldGroupID:
		return m.GroupID()
	case assignmentcompletionevent.FieldEnrollmentID:
		return m.EnrollmentID()
	case assignmentcompletionevent.FieldAssignmentID:
		return m.AssignmentID()
	case assignmentcompletionevent.FieldLessonID:
		return m.LessonID()
	case assignmentcompletionevent.FieldScore:
		return m.Score()
	case assignmentcompletionevent.FieldDelayed:
		return m.Delayed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentCompletionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignmentcompletionevent.FieldSequence:
		return m.OldSequence(ctx)
	case assignmentcompletionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assignmentcompletionevent.FieldGroupID:
		return m.OldGroupID(ctx)
	case assignmentcompletionevent.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case assignmentcompletionevent.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case assignmentcompletionevent.FieldLessonID:
		return m.OldLessonID(ctx)
	case assignmentcompletionevent.FieldScore:
		return m.OldScore(ctx)
	case assignmentcompletionevent.FieldDelayed:
		return m.OldDelayed(ctx)
	}
	return nil, fmt.Errorf("unknown AssignmentCompletionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentCompletionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignmentcompletionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assignmentcompletionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assignmentcompletionevent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case assignmentcompletionevent.FieldEnrollmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case assignmentcompletionevent.FieldAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case assignmentcompletionevent.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case assignmentcompletionevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case assignmentcompletionevent.FieldDelayed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayed(v)
		return nil
	}
	return fmt.Errorf("unknown AssignmentCompletionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentCompletionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assignmentcompletionevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, assignmentcompletionevent.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentCompletionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assignmentcompletionevent.FieldSequence:
		return m.AddedSequence()
	case assignmentcompletionevent.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentCompletionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assignmentcompletionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assignmentcompletionevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown AssignmentCompletionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentCompletionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentCompletionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentCompletionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssignmentCompletionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentCompletionEventMutation) ResetField(name string) error {
	switch name {
	case assignmentcompletionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case assignmentcompletionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assignmentcompletionevent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case assignmentcompletionevent.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case assignmentcompletionevent.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case assignmentcompletionevent.FieldLessonID:
		m.ResetLessonID()
		return nil
	case assignmentcompletionevent.FieldScore:
		m.ResetScore()
		return nil
	case assignmentcompletionevent.FieldDelayed:
		m.ResetDelayed()
		return nil
	}
	return fmt.Errorf("unknown AssignmentCompletionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentCompletionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentCompletionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentCompletionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentCompletionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentCompletionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentCompletionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentCompletionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssignmentCompletionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentCompletionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssignmentCompletionEvent edge %s", name)
}

// AttendanceEventMutation represents an operation that mutates the AttendanceEvent nodes in the graph.
type AttendanceEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	group_id      *string
	enrollment_id *string
	date          *time.Time
	status        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AttendanceEvent, error)
	predicates    []predicate.AttendanceEvent
}

var _ ent.Mutation = (*AttendanceEventMutation)(nil)

// attendanceeventOption allows management of the mutation configuration using functional options.
type attendanceeventOption func(*AttendanceEventMutation)

// newAttendanceEventMutation creates new mutation for the AttendanceEvent entity.
func newAttendanceEventMutation(c config, op Op, opts ...attendanceeventOption) *AttendanceEventMutation {
	m := &AttendanceEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttendanceEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttendanceEventID sets the ID field of the mutation.
func withAttendanceEventID(id int) attendanceeventOption {
	return func(m *AttendanceEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttendanceEvent
		)
		m.oldValue = func(ctx context.Context) (*AttendanceEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttendanceEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttendanceEvent sets the old AttendanceEvent of the mutation.
func withAttendanceEvent(node *AttendanceEvent) attendanceeventOption {
	return func(m *AttendanceEventMutation) {
		m.oldValue = func(context.Context) (*AttendanceEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttendanceEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttendanceEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttendanceEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttendanceEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttendanceEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttendanceEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttendanceEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttendanceEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttendanceEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttendanceEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttendanceEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttendanceEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttendanceEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *AttendanceEventMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *AttendanceEventMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *AttendanceEventMutation) ResetGroupID() {
	m.group_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *AttendanceEventMutation) SetEnrollmentID(s string) {
	m.enrollment_id = &s
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *AttendanceEventMutation) EnrollmentID() (r string, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldEnrollmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *AttendanceEventMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetDate sets the "date" field.
func (m *AttendanceEventMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *AttendanceEventMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *AttendanceEventMutation) ResetDate() {
	m.date = nil
}

// SetStatus sets the "status" field.
func (m *AttendanceEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AttendanceEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AttendanceEvent entity.
// If the AttendanceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttendanceEventMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *AttendanceEventMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the AttendanceEventMutation builder.
func (m *AttendanceEventMutation) Where(ps ...predicate.AttendanceEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttendanceEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttendanceEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttendanceEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttendanceEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttendanceEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttendanceEvent).
func (m *AttendanceEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttendanceEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, attendanceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attendanceevent.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, attendanceevent.FieldGroupID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, attendanceevent.FieldEnrollmentID)
	}
	if m.date != nil {
		fields = append(fields, attendanceevent.FieldDate)
	}
	if m.status != nil {
		fields = append(fields, attendanceevent.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttendanceEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attendanceevent.FieldSequence:
		return m.Sequence()
	case attendanceevent.FieldTimestamp:
		return m.Timestamp()
	case attendanceevent.FieldGroupID:
		return m.GroupID()
	case attendanceevent.FieldEnrollmentID:
		return m.EnrollmentID()
	case attendanceevent.FieldDate:
		return m.Date()
	case attendanceevent.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttendanceEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attendanceevent.FieldSequence:
		return m.OldSequence(ctx)
	case attendanceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attendanceevent.FieldGroupID:
		return m.OldGroupID(ctx)
	case attendanceevent.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case attendanceevent.FieldDate:
		return m.OldDate(ctx)
	case attendanceevent.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown AttendanceEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttendanceEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attendanceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attendanceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attendanceevent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case attendanceevent.FieldEnrollmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case attendanceevent.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case attendanceevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown AttendanceEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttendanceEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attendanceevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttendanceEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attendanceevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttendanceEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attendanceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AttendanceEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttendanceEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttendanceEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttendanceEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttendanceEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttendanceEventMutation) ResetField(name string) error {
	switch name {
	case attendanceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attendanceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attendanceevent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case attendanceevent.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case attendanceevent.FieldDate:
		m.ResetDate()
		return nil
	case attendanceevent.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown AttendanceEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttendanceEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttendanceEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttendanceEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttendanceEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttendanceEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttendanceEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttendanceEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttendanceEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttendanceEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttendanceEvent edge %s", name)
}

// CourseModuleMutation represents an operation that mutates the CourseModule nodes in the graph.
type CourseModuleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	public_id     *string
	group_id      *string
	title         *string
	position      *int
	addposition   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CourseModule, error)
	predicates    []predicate.CourseModule
}

var _ ent.Mutation = (*CourseModuleMutation)(nil)

// coursemoduleOption allows management of the mutation configuration using functional options.
type coursemoduleOption func(*CourseModuleMutation)

// newCourseModuleMutation creates new mutation for the CourseModule entity.
func newCourseModuleMutation(c config, op Op, opts ...coursemoduleOption) *CourseModuleMutation {
	m := &CourseModuleMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseModule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseModuleID sets the ID field of the mutation.
func withCourseModuleID(id int) coursemoduleOption {
	return func(m *CourseModuleMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseModule
		)
		m.oldValue = func(ctx context.Context) (*CourseModule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseModule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseModule sets the old CourseModule of the mutation.
func withCourseModule(node *CourseModule) coursemoduleOption {
	return func(m *CourseModuleMutation) {
		m.oldValue = func(context.Context) (*CourseModule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseModuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseModuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseModuleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseModuleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseModule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *CourseModuleMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *CourseModuleMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the CourseModule entity.
// If the CourseModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseModuleMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *CourseModuleMutation) ResetPublicID() {
	m.public_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *CourseModuleMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *CourseModuleMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the CourseModule entity.
// If the CourseModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseModuleMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *CourseModuleMutation) ResetGroupID() {
	m.group_id = nil
}

// SetTitle sets the "title" field.
func (m *CourseModuleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CourseModuleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CourseModule entity.
// If the CourseModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseModuleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CourseModuleMutation) ResetTitle() {
	m.title = nil
}

// SetPosition sets the "position" field.
func (m *CourseModuleMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CourseModuleMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CourseModule entity.
// If the CourseModule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseModuleMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CourseModuleMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CourseModuleMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CourseModuleMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// Where appends a list predicates to the CourseModuleMutation builder.
func (m *CourseModuleMutation) Where(ps ...predicate.CourseModule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseModuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseModuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseModule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseModuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseModuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseModule).
func (m *CourseModuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseModuleMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.public_id != nil {
		fields = append(fields, coursemodule.FieldPublicID)
	}
	if m.group_id != nil {
		fields = append(fields, coursemodule.FieldGroupID)
	}
	if m.title != nil {
		fields = append(fields, coursemodule.FieldTitle)
	}
	if m.position != nil {
		fields = append(fields, coursemodule.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseModuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coursemodule.FieldPublicID:
		return m.PublicID()
	case coursemodule.FieldGroupID:
		return m.GroupID()
	case coursemodule.FieldTitle:
		return m.Title()
	case coursemodule.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseModuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coursemodule.FieldPublicID:
		return m.OldPublicID(ctx)
	case coursemodule.FieldGroupID:
		return m.OldGroupID(ctx)
	case coursemodule.FieldTitle:
		return m.OldTitle(ctx)
	case coursemodule.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown CourseModule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseModuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coursemodule.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case coursemodule.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case coursemodule.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case coursemodule.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CourseModule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseModuleMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, coursemodule.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseModuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coursemodule.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseModuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coursemodule.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CourseModule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseModuleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseModuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseModuleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CourseModule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseModuleMutation) ResetField(name string) error {
	switch name {
	case coursemodule.FieldPublicID:
		m.ResetPublicID()
		return nil
	case coursemodule.FieldGroupID:
		m.ResetGroupID()
		return nil
	case coursemodule.FieldTitle:
		m.ResetTitle()
		return nil
	case coursemodule.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown CourseModule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseModuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseModuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseModuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseModuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseModuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseModuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseModuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CourseModule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseModuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CourseModule edge %s", name)
}

// EducatorMutation represents an operation that mutates the Educator nodes in the graph.
type EducatorMutation struct {
	config
	op            Op
	typ           string
	id            *int
	public_id     *string
	name          *string
	email         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Educator, error)
	predicates    []predicate.Educator
}

var _ ent.Mutation = (*EducatorMutation)(nil)

// educatorOption allows management of the mutation configuration using functional options.
type educatorOption func(*EducatorMutation)

// newEducatorMutation creates new mutation for the Educator entity.
func newEducatorMutation(c config, op Op, opts ...educatorOption) *EducatorMutation {
	m := &EducatorMutation{
		config:        c,
		op:            op,
		typ:           TypeEducator,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEducatorID sets the ID field of the mutation.
func withEducatorID(id int) educatorOption {
	return func(m *EducatorMutation) {
		var (
			err   error
			once  sync.Once
			value *Educator
		)
		m.oldValue = func(ctx context.Context) (*Educator, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Educator.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEducator sets the old Educator of the mutation.
func withEducator(node *Educator) educatorOption {
	return func(m *EducatorMutation) {
		m.oldValue = func(context.Context) (*Educator, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EducatorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EducatorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EducatorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EducatorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Educator.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *EducatorMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *EducatorMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Educator entity.
// If the Educator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EducatorMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *EducatorMutation) ResetPublicID() {
	m.public_id = nil
}

// SetName sets the "name" field.
func (m *EducatorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EducatorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Educator entity.
// If the Educator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EducatorMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *EducatorMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *EducatorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *EducatorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Educator entity.
// If the Educator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EducatorMutation) OldEmail(ctx context.Context) (v string, err error) {
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
func (m *EducatorMutation) ResetEmail() {
	m.email = nil
}

// Where appends a list predicates to the EducatorMutation builder.
func (m *EducatorMutation) Where(ps ...predicate.Educator) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EducatorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EducatorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Educator, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EducatorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EducatorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Educator).
func (m *EducatorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EducatorMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.public_id != nil {
		fields = append(fields, educator.FieldPublicID)
	}
	if m.name != nil {
		fields = append(fields, educator.FieldName)
	}
	if m.email != nil {
		fields = append(fields, educator.FieldEmail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EducatorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case educator.FieldPublicID:
		return m.PublicID()
	case educator.FieldName:
		return m.Name()
	case educator.FieldEmail:
		return m.Email()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EducatorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case educator.FieldPublicID:
		return m.OldPublicID(ctx)
	case educator.FieldName:
		return m.OldName(ctx)
	case educator.FieldEmail:
		return m.OldEmail(ctx)
	}
	return nil, fmt.Errorf("unknown Educator field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EducatorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case educator.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case educator.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case educator.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	}
	return fmt.Errorf("unknown Educator field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EducatorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EducatorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EducatorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Educator numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EducatorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EducatorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EducatorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Educator nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EducatorMutation) ResetField(name string) error {
	switch name {
	case educator.FieldPublicID:
		m.ResetPublicID()
		return nil
	case educator.FieldName:
		m.ResetName()
		return nil
	case educator.FieldEmail:
		m.ResetEmail()
		return nil
	}
	return fmt.Errorf("unknown Educator field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EducatorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EducatorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EducatorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EducatorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EducatorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EducatorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EducatorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Educator unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EducatorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Educator edge %s", name)
}

// EnrollmentMutation represents an operation that mutates the Enrollment nodes in the graph.
type EnrollmentMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	public_id          *string
	group_id           *string
	student_profile_id *string
	display_name       *string
	position           *int
	addposition        *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Enrollment, error)
	predicates         []predicate.Enrollment
}

var _ ent.Mutation = (*EnrollmentMutation)(nil)

// enrollmentOption allows management of the mutation configuration using functional options.
type enrollmentOption func(*EnrollmentMutation)

// newEnrollmentMutation creates new mutation for the Enrollment entity.
func newEnrollmentMutation(c config, op Op, opts ...enrollmentOption) *EnrollmentMutation {
	m := &EnrollmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrollment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrollmentID sets the ID field of the mutation.
func withEnrollmentID(id int) enrollmentOption {
	return func(m *EnrollmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Enrollment
		)
		m.oldValue = func(ctx context.Context) (*Enrollment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Enrollment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrollment sets the old Enrollment of the mutation.
func withEnrollment(node *Enrollment) enrollmentOption {
	return func(m *EnrollmentMutation) {
		m.oldValue = func(context.Context) (*Enrollment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrollmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrollmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrollmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrollmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Enrollment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *EnrollmentMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *EnrollmentMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *EnrollmentMutation) ResetPublicID() {
	m.public_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *EnrollmentMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *EnrollmentMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *EnrollmentMutation) ResetGroupID() {
	m.group_id = nil
}

// SetStudentProfileID sets the "student_profile_id" field.
func (m *EnrollmentMutation) SetStudentProfileID(s string) {
	m.student_profile_id = &s
}

// StudentProfileID returns the value of the "student_profile_id" field in the mutation.
func (m *EnrollmentMutation) StudentProfileID() (r string, exists bool) {
	v := m.student_profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentProfileID returns the old "student_profile_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldStudentProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentProfileID: %w", err)
	}
	return oldValue.StudentProfileID, nil
}

// ResetStudentProfileID resets all changes to the "student_profile_id" field.
func (m *EnrollmentMutation) ResetStudentProfileID() {
	m.student_profile_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *EnrollmentMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *EnrollmentMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *EnrollmentMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetPosition sets the "position" field.
func (m *EnrollmentMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *EnrollmentMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *EnrollmentMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *EnrollmentMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *EnrollmentMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// Where appends a list predicates to the EnrollmentMutation builder.
func (m *EnrollmentMutation) Where(ps ...predicate.Enrollment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrollmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrollmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Enrollment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrollmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrollmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Enrollment).
func (m *EnrollmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrollmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.public_id != nil {
		fields = append(fields, enrollment.FieldPublicID)
	}
	if m.group_id != nil {
		fields = append(fields, enrollment.FieldGroupID)
	}
	if m.student_profile_id != nil {
		fields = append(fields, enrollment.FieldStudentProfileID)
	}
	if m.display_name != nil {
		fields = append(fields, enrollment.FieldDisplayName)
	}
	if m.position != nil {
		fields = append(fields, enrollment.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrollmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrollment.FieldPublicID:
		return m.PublicID()
	case enrollment.FieldGroupID:
		return m.GroupID()
	case enrollment.FieldStudentProfileID:
		return m.StudentProfileID()
	case enrollment.FieldDisplayName:
		return m.DisplayName()
	case enrollment.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrollmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrollment.FieldPublicID:
		return m.OldPublicID(ctx)
	case enrollment.FieldGroupID:
		return m.OldGroupID(ctx)
	case enrollment.FieldStudentProfileID:
		return m.OldStudentProfileID(ctx)
	case enrollment.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case enrollment.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Enrollment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrollment.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case enrollment.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case enrollment.FieldStudentProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentProfileID(v)
		return nil
	case enrollment.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case enrollment.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Enrollment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrollmentMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, enrollment.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrollmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrollment.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrollment.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Enrollment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrollmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrollmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrollmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Enrollment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrollmentMutation) ResetField(name string) error {
	switch name {
	case enrollment.FieldPublicID:
		m.ResetPublicID()
		return nil
	case enrollment.FieldGroupID:
		m.ResetGroupID()
		return nil
	case enrollment.FieldStudentProfileID:
		m.ResetStudentProfileID()
		return nil
	case enrollment.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case enrollment.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Enrollment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrollmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrollmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrollmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrollmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrollmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrollmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrollmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Enrollment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrollmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Enrollment edge %s", name)
}

// FeedbackEventMutation represents an operation that mutates the FeedbackEvent nodes in the graph.
type FeedbackEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	group_id      *string
	enrollment_id *string
	lesson_id     *string
	comment       *string
	tone          *string
	generator     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FeedbackEvent, error)
	predicates    []predicate.FeedbackEvent
}

var _ ent.Mutation = (*FeedbackEventMutation)(nil)

// feedbackeventOption allows management of the mutation configuration using functional options.
type feedbackeventOption func(*FeedbackEventMutation)

// newFeedbackEventMutation creates new mutation for the FeedbackEvent entity.
func newFeedbackEventMutation(c config, op Op, opts ...feedbackeventOption) *FeedbackEventMutation {
	m := &FeedbackEventMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackEventID sets the ID field of the mutation.
func withFeedbackEventID(id int) feedbackeventOption {
	return func(m *FeedbackEventMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackEvent
		)
		m.oldValue = func(ctx context.Context) (*FeedbackEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackEvent sets the old FeedbackEvent of the mutation.
func withFeedbackEvent(node *FeedbackEvent) feedbackeventOption {
	return func(m *FeedbackEventMutation) {
		m.oldValue = func(context.Context) (*FeedbackEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *FeedbackEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *FeedbackEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *FeedbackEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *FeedbackEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *FeedbackEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *FeedbackEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *FeedbackEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *FeedbackEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *FeedbackEventMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *FeedbackEventMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *FeedbackEventMutation) ResetGroupID() {
	m.group_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *FeedbackEventMutation) SetEnrollmentID(s string) {
	m.enrollment_id = &s
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *FeedbackEventMutation) EnrollmentID() (r string, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldEnrollmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *FeedbackEventMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *FeedbackEventMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *FeedbackEventMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *FeedbackEventMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetComment sets the "comment" field.
func (m *FeedbackEventMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *FeedbackEventMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ResetComment resets all changes to the "comment" field.
func (m *FeedbackEventMutation) ResetComment() {
	m.comment = nil
}

// SetTone sets the "tone" field.
func (m *FeedbackEventMutation) SetTone(s string) {
	m.tone = &s
}

// Tone returns the value of the "tone" field in the mutation.
func (m *FeedbackEventMutation) Tone() (r string, exists bool) {
	v := m.tone
	if v == nil {
		return
	}
	return *v, true
}

// OldTone returns the old "tone" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldTone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTone: %w", err)
	}
	return oldValue.Tone, nil
}

// ResetTone resets all changes to the "tone" field.
func (m *FeedbackEventMutation) ResetTone() {
	m.tone = nil
}

// SetGenerator sets the "generator" field.
func (m *FeedbackEventMutation) SetGenerator(s string) {
	m.generator = &s
}

// Generator returns the value of the "generator" field in the mutation.
func (m *FeedbackEventMutation) Generator() (r string, exists bool) {
	v := m.generator
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerator returns the old "generator" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldGenerator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerator: %w", err)
	}
	return oldValue.Generator, nil
}

// ResetGenerator resets all changes to the "generator" field.
func (m *FeedbackEventMutation) ResetGenerator() {
	m.generator = nil
}

// Where appends a list predicates to the FeedbackEventMutation builder.
func (m *FeedbackEventMutation) Where(ps ...predicate.FeedbackEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackEvent).
func (m *FeedbackEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, feedbackevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, feedbackevent.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, feedbackevent.FieldGroupID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, feedbackevent.FieldEnrollmentID)
	}
	if m.lesson_id != nil {
		fields = append(fields, feedbackevent.FieldLessonID)
	}
	if m.comment != nil {
		fields = append(fields, feedbackevent.FieldComment)
	}
	if m.tone != nil {
		fields = append(fields, feedbackevent.FieldTone)
	}
	if m.generator != nil {
		fields = append(fields, feedbackevent.FieldGenerator)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackevent.FieldSequence:
		return m.Sequence()
	case feedbackevent.FieldTimestamp:
		return m.Timestamp()
	case feedbackevent.FieldGroupID:
		return m.GroupID()
	case feedbackevent.FieldEnrollmentID:
		return m.EnrollmentID()
	case feedbackevent.FieldLessonID:
		return m.LessonID()
	case feedbackevent.FieldComment:
		return m.Comment()
	case feedbackevent.FieldTone:
		return m.Tone()
	case feedbackevent.FieldGenerator:
		return m.Generator()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackevent.FieldSequence:
		return m.OldSequence(ctx)
	case feedbackevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case feedbackevent.FieldGroupID:
		return m.OldGroupID(ctx)
	case feedbackevent.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case feedbackevent.FieldLessonID:
		return m.OldLessonID(ctx)
	case feedbackevent.FieldComment:
		return m.OldComment(ctx)
	case feedbackevent.FieldTone:
		return m.OldTone(ctx)
	case feedbackevent.FieldGenerator:
		return m.OldGenerator(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case feedbackevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case feedbackevent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case feedbackevent.FieldEnrollmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case feedbackevent.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case feedbackevent.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case feedbackevent.FieldTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTone(v)
		return nil
	case feedbackevent.FieldGenerator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerator(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, feedbackevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbackevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbackevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FeedbackEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackEventMutation) ResetField(name string) error {
	switch name {
	case feedbackevent.FieldSequence:
		m.ResetSequence()
		return nil
	case feedbackevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case feedbackevent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case feedbackevent.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case feedbackevent.FieldLessonID:
		m.ResetLessonID()
		return nil
	case feedbackevent.FieldComment:
		m.ResetComment()
		return nil
	case feedbackevent.FieldTone:
		m.ResetTone()
		return nil
	case feedbackevent.FieldGenerator:
		m.ResetGenerator()
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEvent edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op            Op
	typ           string
	id            *int
	public_id     *string
	name          *string
	educator_id   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Group, error)
	predicates    []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id int) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *GroupMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *GroupMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *GroupMutation) ResetPublicID() {
	m.public_id = nil
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *GroupMutation) ResetName() {
	m.name = nil
}

// SetEducatorID sets the "educator_id" field.
func (m *GroupMutation) SetEducatorID(s string) {
	m.educator_id = &s
}

// EducatorID returns the value of the "educator_id" field in the mutation.
func (m *GroupMutation) EducatorID() (r string, exists bool) {
	v := m.educator_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEducatorID returns the old "educator_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldEducatorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducatorID: %w", err)
	}
	return oldValue.EducatorID, nil
}

// ResetEducatorID resets all changes to the "educator_id" field.
func (m *GroupMutation) ResetEducatorID() {
	m.educator_id = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.public_id != nil {
		fields = append(fields, group.FieldPublicID)
	}
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	if m.educator_id != nil {
		fields = append(fields, group.FieldEducatorID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldPublicID:
		return m.PublicID()
	case group.FieldName:
		return m.Name()
	case group.FieldEducatorID:
		return m.EducatorID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldPublicID:
		return m.OldPublicID(ctx)
	case group.FieldName:
		return m.OldName(ctx)
	case group.FieldEducatorID:
		return m.OldEducatorID(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case group.FieldEducatorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducatorID(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldPublicID:
		m.ResetPublicID()
		return nil
	case group.FieldName:
		m.ResetName()
		return nil
	case group.FieldEducatorID:
		m.ResetEducatorID()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Group edge %s", name)
}

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op            Op
	typ           string
	id            *int
	public_id     *string
	module_id     *string
	title         *string
	position      *int
	addposition   *int
	assignment_id *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Lesson, error)
	predicates    []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id int) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *LessonMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *LessonMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *LessonMutation) ResetPublicID() {
	m.public_id = nil
}

// SetModuleID sets the "module_id" field.
func (m *LessonMutation) SetModuleID(s string) {
	m.module_id = &s
}

// ModuleID returns the value of the "module_id" field in the mutation.
func (m *LessonMutation) ModuleID() (r string, exists bool) {
	v := m.module_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleID returns the old "module_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldModuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleID: %w", err)
	}
	return oldValue.ModuleID, nil
}

// ResetModuleID resets all changes to the "module_id" field.
func (m *LessonMutation) ResetModuleID() {
	m.module_id = nil
}

// SetTitle sets the "title" field.
func (m *LessonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LessonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LessonMutation) ResetTitle() {
	m.title = nil
}

// SetPosition sets the "position" field.
func (m *LessonMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *LessonMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *LessonMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *LessonMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *LessonMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetAssignmentID sets the "assignment_id" field.
func (m *LessonMutation) SetAssignmentID(s string) {
	m.assignment_id = &s
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *LessonMutation) AssignmentID() (r string, exists bool) {
	v := m.assignment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldAssignmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ClearAssignmentID clears the value of the "assignment_id" field.
func (m *LessonMutation) ClearAssignmentID() {
	m.assignment_id = nil
	m.clearedFields[lesson.FieldAssignmentID] = struct{}{}
}

// AssignmentIDCleared returns if the "assignment_id" field was cleared in this mutation.
func (m *LessonMutation) AssignmentIDCleared() bool {
	_, ok := m.clearedFields[lesson.FieldAssignmentID]
	return ok
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *LessonMutation) ResetAssignmentID() {
	m.assignment_id = nil
	delete(m.clearedFields, lesson.FieldAssignmentID)
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.public_id != nil {
		fields = append(fields, lesson.FieldPublicID)
	}
	if m.module_id != nil {
		fields = append(fields, lesson.FieldModuleID)
	}
	if m.title != nil {
		fields = append(fields, lesson.FieldTitle)
	}
	if m.position != nil {
		fields = append(fields, lesson.FieldPosition)
	}
	if m.assignment_id != nil {
		fields = append(fields, lesson.FieldAssignmentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldPublicID:
		return m.PublicID()
	case lesson.FieldModuleID:
		return m.ModuleID()
	case lesson.FieldTitle:
		return m.Title()
	case lesson.FieldPosition:
		return m.Position()
	case lesson.FieldAssignmentID:
		return m.AssignmentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldPublicID:
		return m.OldPublicID(ctx)
	case lesson.FieldModuleID:
		return m.OldModuleID(ctx)
	case lesson.FieldTitle:
		return m.OldTitle(ctx)
	case lesson.FieldPosition:
		return m.OldPosition(ctx)
	case lesson.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case lesson.FieldModuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleID(v)
		return nil
	case lesson.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lesson.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case lesson.FieldAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, lesson.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lesson.FieldAssignmentID) {
		fields = append(fields, lesson.FieldAssignmentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	switch name {
	case lesson.FieldAssignmentID:
		m.ClearAssignmentID()
		return nil
	}
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldPublicID:
		m.ResetPublicID()
		return nil
	case lesson.FieldModuleID:
		m.ResetModuleID()
		return nil
	case lesson.FieldTitle:
		m.ResetTitle()
		return nil
	case lesson.FieldPosition:
		m.ResetPosition()
		return nil
	case lesson.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lesson edge %s", name)
}

// LessonCompletionEventMutation represents an operation that mutates the LessonCompletionEvent nodes in the graph.
type LessonCompletionEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	group_id              *string
	enrollment_id         *string
	lesson_id             *string
	module_id             *string
	questions_answered    *int
	addquestions_answered *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*LessonCompletionEvent, error)
	predicates            []predicate.LessonCompletionEvent
}

var _ ent.Mutation = (*LessonCompletionEventMutation)(nil)

// lessoncompletioneventOption allows management of the mutation configuration using functional options.
type lessoncompletioneventOption func(*LessonCompletionEventMutation)

// newLessonCompletionEventMutation creates new mutation for the LessonCompletionEvent entity.
func newLessonCompletionEventMutation(c config, op Op, opts ...lessoncompletioneventOption) *LessonCompletionEventMutation {
	m := &LessonCompletionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonCompletionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonCompletionEventID sets the ID field of the mutation.
func withLessonCompletionEventID(id int) lessoncompletioneventOption {
	return func(m *LessonCompletionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonCompletionEvent
		)
		m.oldValue = func(ctx context.Context) (*LessonCompletionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonCompletionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonCompletionEvent sets the old LessonCompletionEvent of the mutation.
func withLessonCompletionEvent(node *LessonCompletionEvent) lessoncompletioneventOption {
	return func(m *LessonCompletionEventMutation) {
		m.oldValue = func(context.Context) (*LessonCompletionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonCompletionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonCompletionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonCompletionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonCompletionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonCompletionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LessonCompletionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LessonCompletionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LessonCompletionEvent entity.
// If the LessonCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LessonCompletionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LessonCompletionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LessonCompletionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LessonCompletionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LessonCompletionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LessonCompletionEvent entity.
// If the LessonCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LessonCompletionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *LessonCompletionEventMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *LessonCompletionEventMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the LessonCompletionEvent entity.
// If the LessonCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionEventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *LessonCompletionEventMutation) ResetGroupID() {
	m.group_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *LessonCompletionEventMutation) SetEnrollmentID(s string) {
	m.enrollment_id = &s
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *LessonCompletionEventMutation) EnrollmentID() (r string, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the LessonCompletionEvent entity.
// If the LessonCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionEventMutation) OldEnrollmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *LessonCompletionEventMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *LessonCompletionEventMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LessonCompletionEventMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LessonCompletionEvent entity.
// If the LessonCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionEventMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LessonCompletionEventMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetModuleID sets the "module_id" field.
func (m *LessonCompletionEventMutation) SetModuleID(s string) {
	m.module_id = &s
}

// ModuleID returns the value of the "module_id" field in the mutation.
func (m *LessonCompletionEventMutation) ModuleID() (r string, exists bool) {
	v := m.module_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleID returns the old "module_id" field's value of the LessonCompletionEvent entity.
// If the LessonCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionEventMutation) OldModuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleID: %w", err)
	}
	return oldValue.ModuleID, nil
}

// ResetModuleID resets all changes to the "module_id" field.
func (m *LessonCompletionEventMutation) ResetModuleID() {
	m.module_id = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *LessonCompletionEventMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *LessonCompletionEventMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the LessonCompletionEvent entity.
// If the LessonCompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionEventMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *LessonCompletionEventMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *LessonCompletionEventMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *LessonCompletionEventMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// Where appends a list predicates to the LessonCompletionEventMutation builder.
func (m *LessonCompletionEventMutation) Where(ps ...predicate.LessonCompletionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonCompletionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonCompletionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonCompletionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonCompletionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonCompletionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonCompletionEvent).
func (m *LessonCompletionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonCompletionEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, lessoncompletionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, lessoncompletionevent.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, lessoncompletionevent.FieldGroupID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, lessoncompletionevent.FieldEnrollmentID)
	}
	if m.lesson_id != nil {
		fields = append(fields, lessoncompletionevent.FieldLessonID)
	}
	if m.module_id != nil {
		fields = append(fields, lessoncompletionevent.FieldModuleID)
	}
	if m.questions_answered != nil {
		fields = append(fields, lessoncompletionevent.FieldQuestionsAnswered)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonCompletionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessoncompletionevent.FieldSequence:
		return m.Sequence()
	case lessoncompletionevent.FieldTimestamp:
		return m.Timestamp()
	case lessoncompletionevent.FieldGroupID:
		return m.GroupID()
	case lessoncompletionevent.FieldEnrollmentID:
		return m.EnrollmentID()
	case lessoncompletionevent.FieldLessonID:
		return m.LessonID()
	case lessoncompletionevent.FieldModuleID:
		return m.ModuleID()
	case lessoncompletionevent.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonCompletionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessoncompletionevent.FieldSequence:
		return m.OldSequence(ctx)
	case lessoncompletionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case lessoncompletionevent.FieldGroupID:
		return m.OldGroupID(ctx)
	case lessoncompletionevent.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case lessoncompletionevent.FieldLessonID:
		return m.OldLessonID(ctx)
	case lessoncompletionevent.FieldModuleID:
		return m.OldModuleID(ctx)
	case lessoncompletionevent.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	}
	return nil, fmt.Errorf("unknown LessonCompletionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonCompletionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessoncompletionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case lessoncompletionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case lessoncompletionevent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case lessoncompletionevent.FieldEnrollmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case lessoncompletionevent.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case lessoncompletionevent.FieldModuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleID(v)
		return nil
	case lessoncompletionevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	}
	return fmt.Errorf("unknown LessonCompletionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonCompletionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, lessoncompletionevent.FieldSequence)
	}
	if m.addquestions_answered != nil {
		fields = append(fields, lessoncompletionevent.FieldQuestionsAnswered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonCompletionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessoncompletionevent.FieldSequence:
		return m.AddedSequence()
	case lessoncompletionevent.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonCompletionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessoncompletionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case lessoncompletionevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	}
	return fmt.Errorf("unknown LessonCompletionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonCompletionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonCompletionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonCompletionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LessonCompletionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonCompletionEventMutation) ResetField(name string) error {
	switch name {
	case lessoncompletionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case lessoncompletionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case lessoncompletionevent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case lessoncompletionevent.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case lessoncompletionevent.FieldLessonID:
		m.ResetLessonID()
		return nil
	case lessoncompletionevent.FieldModuleID:
		m.ResetModuleID()
		return nil
	case lessoncompletionevent.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	}
	return fmt.Errorf("unknown LessonCompletionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonCompletionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonCompletionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonCompletionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonCompletionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonCompletionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonCompletionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonCompletionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonCompletionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonCompletionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonCompletionEvent edge %s", name)
}

// PointEventMutation represents an operation that mutates the PointEvent nodes in the graph.
type PointEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	group_id      *string
	enrollment_id *string
	points        *int
	addpoints     *int
	reason        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PointEvent, error)
	predicates    []predicate.PointEvent
}

var _ ent.Mutation = (*PointEventMutation)(nil)

// pointeventOption allows management of the mutation configuration using functional options.
type pointeventOption func(*PointEventMutation)

// newPointEventMutation creates new mutation for the PointEvent entity.
func newPointEventMutation(c config, op Op, opts ...pointeventOption) *PointEventMutation {
	m := &PointEventMutation{
		config:        c,
		op:            op,
		typ:           TypePointEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPointEventID sets the ID field of the mutation.
func withPointEventID(id int) pointeventOption {
	return func(m *PointEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PointEvent
		)
		m.oldValue = func(ctx context.Context) (*PointEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PointEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPointEvent sets the old PointEvent of the mutation.
func withPointEvent(node *PointEvent) pointeventOption {
	return func(m *PointEventMutation) {
		m.oldValue = func(context.Context) (*PointEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PointEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PointEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PointEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PointEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PointEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PointEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PointEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PointEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PointEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PointEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PointEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PointEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PointEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *PointEventMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *PointEventMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *PointEventMutation) ResetGroupID() {
	m.group_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *PointEventMutation) SetEnrollmentID(s string) {
	m.enrollment_id = &s
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *PointEventMutation) EnrollmentID() (r string, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldEnrollmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *PointEventMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetPoints sets the "points" field.
func (m *PointEventMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *PointEventMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *PointEventMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *PointEventMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *PointEventMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetReason sets the "reason" field.
func (m *PointEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *PointEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *PointEventMutation) ResetReason() {
	m.reason = nil
}

// Where appends a list predicates to the PointEventMutation builder.
func (m *PointEventMutation) Where(ps ...predicate.PointEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PointEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PointEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PointEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PointEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PointEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PointEvent).
func (m *PointEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PointEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, pointevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, pointevent.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, pointevent.FieldGroupID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, pointevent.FieldEnrollmentID)
	}
	if m.points != nil {
		fields = append(fields, pointevent.FieldPoints)
	}
	if m.reason != nil {
		fields = append(fields, pointevent.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PointEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pointevent.FieldSequence:
		return m.Sequence()
	case pointevent.FieldTimestamp:
		return m.Timestamp()
	case pointevent.FieldGroupID:
		return m.GroupID()
	case pointevent.FieldEnrollmentID:
		return m.EnrollmentID()
	case pointevent.FieldPoints:
		return m.Points()
	case pointevent.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PointEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pointevent.FieldSequence:
		return m.OldSequence(ctx)
	case pointevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case pointevent.FieldGroupID:
		return m.OldGroupID(ctx)
	case pointevent.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case pointevent.FieldPoints:
		return m.OldPoints(ctx)
	case pointevent.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown PointEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pointevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case pointevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case pointevent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case pointevent.FieldEnrollmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case pointevent.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case pointevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown PointEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PointEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, pointevent.FieldSequence)
	}
	if m.addpoints != nil {
		fields = append(fields, pointevent.FieldPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PointEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pointevent.FieldSequence:
		return m.AddedSequence()
	case pointevent.FieldPoints:
		return m.AddedPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pointevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case pointevent.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	}
	return fmt.Errorf("unknown PointEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PointEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PointEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PointEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PointEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PointEventMutation) ResetField(name string) error {
	switch name {
	case pointevent.FieldSequence:
		m.ResetSequence()
		return nil
	case pointevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case pointevent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case pointevent.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case pointevent.FieldPoints:
		m.ResetPoints()
		return nil
	case pointevent.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown PointEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PointEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PointEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PointEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PointEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PointEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PointEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PointEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PointEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PointEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PointEvent edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	public_id              *string
	lesson_id              *string
	position               *int
	addposition            *int
	assignment_question_id *string
	knowledge_component_id *string
	prompt                 *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Question, error)
	predicates             []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *QuestionMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *QuestionMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *QuestionMutation) ResetPublicID() {
	m.public_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *QuestionMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *QuestionMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *QuestionMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetPosition sets the "position" field.
func (m *QuestionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *QuestionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *QuestionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *QuestionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *QuestionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (m *QuestionMutation) SetAssignmentQuestionID(s string) {
	m.assignment_question_id = &s
}

// AssignmentQuestionID returns the value of the "assignment_question_id" field in the mutation.
func (m *QuestionMutation) AssignmentQuestionID() (r string, exists bool) {
	v := m.assignment_question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentQuestionID returns the old "assignment_question_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAssignmentQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentQuestionID: %w", err)
	}
	return oldValue.AssignmentQuestionID, nil
}

// ResetAssignmentQuestionID resets all changes to the "assignment_question_id" field.
func (m *QuestionMutation) ResetAssignmentQuestionID() {
	m.assignment_question_id = nil
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (m *QuestionMutation) SetKnowledgeComponentID(s string) {
	m.knowledge_component_id = &s
}

// KnowledgeComponentID returns the value of the "knowledge_component_id" field in the mutation.
func (m *QuestionMutation) KnowledgeComponentID() (r string, exists bool) {
	v := m.knowledge_component_id
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledgeComponentID returns the old "knowledge_component_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldKnowledgeComponentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledgeComponentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledgeComponentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledgeComponentID: %w", err)
	}
	return oldValue.KnowledgeComponentID, nil
}

// ClearKnowledgeComponentID clears the value of the "knowledge_component_id" field.
func (m *QuestionMutation) ClearKnowledgeComponentID() {
	m.knowledge_component_id = nil
	m.clearedFields[question.FieldKnowledgeComponentID] = struct{}{}
}

// KnowledgeComponentIDCleared returns if the "knowledge_component_id" field was cleared in this mutation.
func (m *QuestionMutation) KnowledgeComponentIDCleared() bool {
	_, ok := m.clearedFields[question.FieldKnowledgeComponentID]
	return ok
}

// ResetKnowledgeComponentID resets all changes to the "knowledge_component_id" field.
func (m *QuestionMutation) ResetKnowledgeComponentID() {
	m.knowledge_component_id = nil
	delete(m.clearedFields, question.FieldKnowledgeComponentID)
}

// SetPrompt sets the "prompt" field.
func (m *QuestionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *QuestionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *QuestionMutation) ResetPrompt() {
	m.prompt = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.public_id != nil {
		fields = append(fields, question.FieldPublicID)
	}
	if m.lesson_id != nil {
		fields = append(fields, question.FieldLessonID)
	}
	if m.position != nil {
		fields = append(fields, question.FieldPosition)
	}
	if m.assignment_question_id != nil {
		fields = append(fields, question.FieldAssignmentQuestionID)
	}
	if m.knowledge_component_id != nil {
		fields = append(fields, question.FieldKnowledgeComponentID)
	}
	if m.prompt != nil {
		fields = append(fields, question.FieldPrompt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldPublicID:
		return m.PublicID()
	case question.FieldLessonID:
		return m.LessonID()
	case question.FieldPosition:
		return m.Position()
	case question.FieldAssignmentQuestionID:
		return m.AssignmentQuestionID()
	case question.FieldKnowledgeComponentID:
		return m.KnowledgeComponentID()
	case question.FieldPrompt:
		return m.Prompt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldPublicID:
		return m.OldPublicID(ctx)
	case question.FieldLessonID:
		return m.OldLessonID(ctx)
	case question.FieldPosition:
		return m.OldPosition(ctx)
	case question.FieldAssignmentQuestionID:
		return m.OldAssignmentQuestionID(ctx)
	case question.FieldKnowledgeComponentID:
		return m.OldKnowledgeComponentID(ctx)
	case question.FieldPrompt:
		return m.OldPrompt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case question.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case question.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case question.FieldAssignmentQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentQuestionID(v)
		return nil
	case question.FieldKnowledgeComponentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledgeComponentID(v)
		return nil
	case question.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, question.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldKnowledgeComponentID) {
		fields = append(fields, question.FieldKnowledgeComponentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldKnowledgeComponentID:
		m.ClearKnowledgeComponentID()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldPublicID:
		m.ResetPublicID()
		return nil
	case question.FieldLessonID:
		m.ResetLessonID()
		return nil
	case question.FieldPosition:
		m.ResetPosition()
		return nil
	case question.FieldAssignmentQuestionID:
		m.ResetAssignmentQuestionID()
		return nil
	case question.FieldKnowledgeComponentID:
		m.ResetKnowledgeComponentID()
		return nil
	case question.FieldPrompt:
		m.ResetPrompt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionEventMutation represents an operation that mutates the QuestionEvent nodes in the graph.
type QuestionEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	timestamp              *time.Time
	group_id               *string
	enrollment_id          *string
	lesson_id              *string
	question_id            *string
	assignment_question_id *string
	knowledge_component_id *string
	action                 *string
	correct                *bool
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*QuestionEvent, error)
	predicates             []predicate.QuestionEvent
}

var _ ent.Mutation = (*QuestionEventMutation)(nil)

// questioneventOption allows management of the mutation configuration using functional options.
type questioneventOption func(*QuestionEventMutation)

// newQuestionEventMutation creates new mutation for the QuestionEvent entity.
func newQuestionEventMutation(c config, op Op, opts ...questioneventOption) *QuestionEventMutation {
	m := &QuestionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionEventID sets the ID field of the mutation.
func withQuestionEventID(id int) questioneventOption {
	return func(m *QuestionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionEvent
		)
		m.oldValue = func(ctx context.Context) (*QuestionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionEvent sets the old QuestionEvent of the mutation.
func withQuestionEvent(node *QuestionEvent) questioneventOption {
	return func(m *QuestionEventMutation) {
		m.oldValue = func(context.Context) (*QuestionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuestionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuestionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuestionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuestionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuestionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuestionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuestionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuestionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetGroupID sets the "group_id" field.
func (m *QuestionEventMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *QuestionEventMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *QuestionEventMutation) ResetGroupID() {
	m.group_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *QuestionEventMutation) SetEnrollmentID(s string) {
	m.enrollment_id = &s
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *QuestionEventMutation) EnrollmentID() (r string, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldEnrollmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *QuestionEventMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *QuestionEventMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *QuestionEventMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *QuestionEventMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (m *QuestionEventMutation) SetAssignmentQuestionID(s string) {
	m.assignment_question_id = &s
}

// AssignmentQuestionID returns the value of the "assignment_question_id" field in the mutation.
func (m *QuestionEventMutation) AssignmentQuestionID() (r string, exists bool) {
	v := m.assignment_question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentQuestionID returns the old "assignment_question_id" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldAssignmentQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentQuestionID: %w", err)
	}
	return oldValue.AssignmentQuestionID, nil
}

// ResetAssignmentQuestionID resets all changes to the "assignment_question_id" field.
func (m *QuestionEventMutation) ResetAssignmentQuestionID() {
	m.assignment_question_id = nil
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (m *QuestionEventMutation) SetKnowledgeComponentID(s string) {
	m.knowledge_component_id = &s
}

// KnowledgeComponentID returns the value of the "knowledge_component_id" field in the mutation.
func (m *QuestionEventMutation) KnowledgeComponentID() (r string, exists bool) {
	v := m.knowledge_component_id
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledgeComponentID returns the old "knowledge_component_id" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldKnowledgeComponentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledgeComponentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledgeComponentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledgeComponentID: %w", err)
	}
	return oldValue.KnowledgeComponentID, nil
}

// ClearKnowledgeComponentID clears the value of the "knowledge_component_id" field.
func (m *QuestionEventMutation) ClearKnowledgeComponentID() {
	m.knowledge_component_id = nil
	m.clearedFields[questionevent.FieldKnowledgeComponentID] = struct{}{}
}

// KnowledgeComponentIDCleared returns if the "knowledge_component_id" field was cleared in this mutation.
func (m *QuestionEventMutation) KnowledgeComponentIDCleared() bool {
	_, ok := m.clearedFields[questionevent.FieldKnowledgeComponentID]
	return ok
}

// ResetKnowledgeComponentID resets all changes to the "knowledge_component_id" field.
func (m *QuestionEventMutation) ResetKnowledgeComponentID() {
	m.knowledge_component_id = nil
	delete(m.clearedFields, questionevent.FieldKnowledgeComponentID)
}

// SetAction sets the "action" field.
func (m *QuestionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *QuestionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *QuestionEventMutation) ResetAction() {
	m.action = nil
}

// SetCorrect sets the "correct" field.
func (m *QuestionEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *QuestionEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the QuestionEvent entity.
// If the QuestionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *QuestionEventMutation) ResetCorrect() {
	m.correct = nil
}

// Where appends a list predicates to the QuestionEventMutation builder.
func (m *QuestionEventMutation) Where(ps ...predicate.QuestionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionEvent).
func (m *QuestionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, questionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, questionevent.FieldTimestamp)
	}
	if m.group_id != nil {
		fields = append(fields, questionevent.FieldGroupID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, questionevent.FieldEnrollmentID)
	}
	if m.lesson_id != nil {
		fields = append(fields, questionevent.FieldLessonID)
	}
	if m.question_id != nil {
		fields = append(fields, questionevent.FieldQuestionID)
	}
	if m.assignment_question_id != nil {
		fields = append(fields, questionevent.FieldAssignmentQuestionID)
	}
	if m.knowledge_component_id != nil {
		fields = append(fields, questionevent.FieldKnowledgeComponentID)
	}
	if m.action != nil {
		fields = append(fields, questionevent.FieldAction)
	}
	if m.correct != nil {
		fields = append(fields, questionevent.FieldCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionevent.FieldSequence:
		return m.Sequence()
	case questionevent.FieldTimestamp:
		return m.Timestamp()
	case questionevent.FieldGroupID:
		return m.GroupID()
	case questionevent.FieldEnrollmentID:
		return m.EnrollmentID()
	case questionevent.FieldLessonID:
		return m.LessonID()
	case questionevent.FieldQuestionID:
		return m.QuestionID()
	case questionevent.FieldAssignmentQuestionID:
		return m.AssignmentQuestionID()
	case questionevent.FieldKnowledgeComponentID:
		return m.KnowledgeComponentID()
	case questionevent.FieldAction:
		return m.Action()
	case questionevent.FieldCorrect:
		return m.Correct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionevent.FieldSequence:
		return m.OldSequence(ctx)
	case questionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case questionevent.FieldGroupID:
		return m.OldGroupID(ctx)
	case questionevent.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case questionevent.FieldLessonID:
		return m.OldLessonID(ctx)
	case questionevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionevent.FieldAssignmentQuestionID:
		return m.OldAssignmentQuestionID(ctx)
	case questionevent.FieldKnowledgeComponentID:
		return m.OldKnowledgeComponentID(ctx)
	case questionevent.FieldAction:
		return m.OldAction(ctx)
	case questionevent.FieldCorrect:
		return m.OldCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case questionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case questionevent.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case questionevent.FieldEnrollmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case questionevent.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case questionevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionevent.FieldAssignmentQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentQuestionID(v)
		return nil
	case questionevent.FieldKnowledgeComponentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledgeComponentID(v)
		return nil
	case questionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case questionevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, questionevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionevent.FieldKnowledgeComponentID) {
		fields = append(fields, questionevent.FieldKnowledgeComponentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionEventMutation) ClearField(name string) error {
	switch name {
	case questionevent.FieldKnowledgeComponentID:
		m.ClearKnowledgeComponentID()
		return nil
	}
	return fmt.Errorf("unknown QuestionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionEventMutation) ResetField(name string) error {
	switch name {
	case questionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case questionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case questionevent.FieldGroupID:
		m.ResetGroupID()
		return nil
	case questionevent.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case questionevent.FieldLessonID:
		m.ResetLessonID()
		return nil
	case questionevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionevent.FieldAssignmentQuestionID:
		m.ResetAssignmentQuestionID()
		return nil
	case questionevent.FieldKnowledgeComponentID:
		m.ResetKnowledgeComponentID()
		return nil
	case questionevent.FieldAction:
		m.ResetAction()
		return nil
	case questionevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	}
	return fmt.Errorf("unknown QuestionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionEvent edge %s", name)
}

// StudentProfileMutation represents an operation that mutates the StudentProfile nodes in the graph.
type StudentProfileMutation struct {
	config
	op            Op
	typ           string
	id            *int
	public_id     *string
	display_name  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StudentProfile, error)
	predicates    []predicate.StudentProfile
}

var _ ent.Mutation = (*StudentProfileMutation)(nil)

// studentprofileOption allows management of the mutation configuration using functional options.
type studentprofileOption func(*StudentProfileMutation)

// newStudentProfileMutation creates new mutation for the StudentProfile entity.
func newStudentProfileMutation(c config, op Op, opts ...studentprofileOption) *StudentProfileMutation {
	m := &StudentProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentProfileID sets the ID field of the mutation.
func withStudentProfileID(id int) studentprofileOption {
	return func(m *StudentProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentProfile
		)
		m.oldValue = func(ctx context.Context) (*StudentProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentProfile sets the old StudentProfile of the mutation.
func withStudentProfile(node *StudentProfile) studentprofileOption {
	return func(m *StudentProfileMutation) {
		m.oldValue = func(context.Context) (*StudentProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *StudentProfileMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *StudentProfileMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *StudentProfileMutation) ResetPublicID() {
	m.public_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *StudentProfileMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *StudentProfileMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *StudentProfileMutation) ResetDisplayName() {
	m.display_name = nil
}

// Where appends a list predicates to the StudentProfileMutation builder.
func (m *StudentProfileMutation) Where(ps ...predicate.StudentProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentProfile).
func (m *StudentProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentProfileMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.public_id != nil {
		fields = append(fields, studentprofile.FieldPublicID)
	}
	if m.display_name != nil {
		fields = append(fields, studentprofile.FieldDisplayName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentprofile.FieldPublicID:
		return m.PublicID()
	case studentprofile.FieldDisplayName:
		return m.DisplayName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentprofile.FieldPublicID:
		return m.OldPublicID(ctx)
	case studentprofile.FieldDisplayName:
		return m.OldDisplayName(ctx)
	}
	return nil, fmt.Errorf("unknown StudentProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentprofile.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case studentprofile.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudentProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudentProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentProfileMutation) ResetField(name string) error {
	switch name {
	case studentprofile.FieldPublicID:
		m.ResetPublicID()
		return nil
	case studentprofile.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudentProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudentProfile edge %s", name)
}
