// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/assessmentresponseevent"
)

// AssessmentResponseEvent is the model entity for the AssessmentResponseEvent schema.
type AssessmentResponseEvent struct {
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
	// AssessmentID holds the value of the "assessment_id" field.
	AssessmentID string `json:"assessment_id,omitempty"`
	// Overall assessment score, 0..1
	Score float64 `json:"score,omitempty"`
	// QuestionsAnswered holds the value of the "questions_answered" field.
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentResponseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentresponseevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case assessmentresponseevent.FieldID, assessmentresponseevent.FieldSequence, assessmentresponseevent.FieldQuestionsAnswered:
			values[i] = new(sql.NullInt64)
		case assessmentresponseevent.FieldGroupID, assessmentresponseevent.FieldEnrollmentID, assessmentresponseevent.FieldAssessmentID:
			values[i] = new(sql.NullString)
		case assessmentresponseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentResponseEvent fields.
func (_m *AssessmentResponseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentresponseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentresponseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentresponseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentresponseevent.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case assessmentresponseevent.FieldEnrollmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value.Valid {
				_m.EnrollmentID = value.String
			}
		case assessmentresponseevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case assessmentresponseevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case assessmentresponseevent.FieldQuestionsAnswered:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentResponseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentResponseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentResponseEvent.
// Note that you need to call AssessmentResponseEvent.Unwrap() before calling this method if this AssessmentResponseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentResponseEvent) Update() *AssessmentResponseEventUpdateOne {
	return NewAssessmentResponseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentResponseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentResponseEvent) Unwrap() *AssessmentResponseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentResponseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentResponseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentResponseEvent(")
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
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentResponseEvents is a parsable slice of AssessmentResponseEvent.
type AssessmentResponseEvents []*AssessmentResponseEvent
