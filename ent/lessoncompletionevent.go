// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/lessoncompletionevent"
)

// LessonCompletionEvent is the model entity for the LessonCompletionEvent schema.
type LessonCompletionEvent struct {
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
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// ModuleID holds the value of the "module_id" field.
	ModuleID string `json:"module_id,omitempty"`
	// Number of questions answered before completion
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonCompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessoncompletionevent.FieldID, lessoncompletionevent.FieldSequence, lessoncompletionevent.FieldQuestionsAnswered:
			values[i] = new(sql.NullInt64)
		case lessoncompletionevent.FieldGroupID, lessoncompletionevent.FieldEnrollmentID, lessoncompletionevent.FieldLessonID, lessoncompletionevent.FieldModuleID:
			values[i] = new(sql.NullString)
		case lessoncompletionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonCompletionEvent fields.
func (_m *LessonCompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessoncompletionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessoncompletionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case lessoncompletionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case lessoncompletionevent.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case lessoncompletionevent.FieldEnrollmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value.Valid {
				_m.EnrollmentID = value.String
			}
		case lessoncompletionevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessoncompletionevent.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case lessoncompletionevent.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonCompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LessonCompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonCompletionEvent.
// Note that you need to call LessonCompletionEvent.Unwrap() before calling this method if this LessonCompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonCompletionEvent) Update() *LessonCompletionEventUpdateOne {
	return NewLessonCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonCompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonCompletionEvent) Unwrap() *LessonCompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonCompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonCompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonCompletionEvent(")
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
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteByte(')')
	return builder.String()
}

// LessonCompletionEvents is a parsable slice of LessonCompletionEvent.
type LessonCompletionEvents []*LessonCompletionEvent
