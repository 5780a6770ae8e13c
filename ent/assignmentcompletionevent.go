// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/assignmentcompletionevent"
)

// AssignmentCompletionEvent is the model entity for the AssignmentCompletionEvent schema.
type AssignmentCompletionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the simulated activity happened (usually in the past)
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Public ID of the group this event was seeded for
	GroupID string `json:"group_id,omitempty"`
	// EnrollmentID holds the value of the "enrollment_id" field.
	EnrollmentID string `json:"enrollment_id,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID string `json:"assignment_id,omitempty"`
	// Lesson this mastery check gates
	LessonID string `json:"lesson_id,omitempty"`
	// Fraction of the mastery check answered correctly, 0..1
	Score float64 `json:"score,omitempty"`
	// True when completion happened on a later working day than the lesson
	Delayed      bool `json:"delayed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssignmentCompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assignmentcompletionevent.FieldDelayed:
			values[i] = new(sql.NullBool)
		case assignmentcompletionevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case assignmentcompletionevent.FieldID, assignmentcompletionevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case assignmentcompletionevent.FieldGroupID, assignmentcompletionevent.FieldEnrollmentID, assignmentcompletionevent.FieldAssignmentID, assignmentcompletionevent.FieldLessonID:
			values[i] = new(sql.NullString)
		case assignmentcompletionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssignmentCompletionEvent fields.
func (_m *AssignmentCompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assignmentcompletionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assignmentcompletionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assignmentcompletionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assignmentcompletionevent.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case assignmentcompletionevent.FieldEnrollmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value.Valid {
				_m.EnrollmentID = value.String
			}
		case assignmentcompletionevent.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = value.String
			}
		case assignmentcompletionevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case assignmentcompletionevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case assignmentcompletionevent.FieldDelayed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field delayed", values[i])
			} else if value.Valid {
				_m.Delayed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssignmentCompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssignmentCompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssignmentCompletionEvent.
// Note that you need to call AssignmentCompletionEvent.Unwrap() before calling this method if this AssignmentCompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssignmentCompletionEvent) Update() *AssignmentCompletionEventUpdateOne {
	return NewAssignmentCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssignmentCompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssignmentCompletionEvent) Unwrap() *AssignmentCompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssignmentCompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssignmentCompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssignmentCompletionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("enrollment_id=")
	builder.WriteString(_m.EnrollmentID)
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(_m.AssignmentID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("delayed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delayed))
	builder.WriteByte(')')
	return builder.String()
}

// AssignmentCompletionEvents is a parsable slice of AssignmentCompletionEvent.
type AssignmentCompletionEvents []*AssignmentCompletionEvent
