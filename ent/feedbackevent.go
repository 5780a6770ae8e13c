// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/feedbackevent"
)

// FeedbackEvent is the model entity for the FeedbackEvent schema.
type FeedbackEvent struct {
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
	// Teacher-facing feedback text
	Comment string `json:"comment,omitempty"`
	// encouraging, corrective or neutral
	Tone string `json:"tone,omitempty"`
	// Model ID that produced the comment, or canned
	Generator    string `json:"generator,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeedbackEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feedbackevent.FieldID, feedbackevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case feedbackevent.FieldGroupID, feedbackevent.FieldEnrollmentID, feedbackevent.FieldLessonID, feedbackevent.FieldComment, feedbackevent.FieldTone, feedbackevent.FieldGenerator:
			values[i] = new(sql.NullString)
		case feedbackevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeedbackEvent fields.
func (_m *FeedbackEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feedbackevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case feedbackevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case feedbackevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case feedbackevent.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case feedbackevent.FieldEnrollmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value.Valid {
				_m.EnrollmentID = value.String
			}
		case feedbackevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case feedbackevent.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case feedbackevent.FieldTone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone", values[i])
			} else if value.Valid {
				_m.Tone = value.String
			}
		case feedbackevent.FieldGenerator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generator", values[i])
			} else if value.Valid {
				_m.Generator = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FeedbackEvent.
// This includes values selected through modifiers, order, etc.
func (_m *FeedbackEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FeedbackEvent.
// Note that you need to call FeedbackEvent.Unwrap() before calling this method if this FeedbackEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeedbackEvent) Update() *FeedbackEventUpdateOne {
	return NewFeedbackEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeedbackEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeedbackEvent) Unwrap() *FeedbackEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeedbackEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeedbackEvent) String() string {
	var builder strings.Builder
	builder.WriteString("FeedbackEvent(")
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
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("tone=")
	builder.WriteString(_m.Tone)
	builder.WriteString(", ")
	builder.WriteString("generator=")
	builder.WriteString(_m.Generator)
	builder.WriteByte(')')
	return builder.String()
}

// FeedbackEvents is a parsable slice of FeedbackEvent.
type FeedbackEvents []*FeedbackEvent
