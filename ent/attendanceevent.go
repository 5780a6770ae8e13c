// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/attendanceevent"
)

// AttendanceEvent is the model entity for the AttendanceEvent schema.
type AttendanceEvent struct {
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
	// Calendar day being marked, midnight UTC
	Date time.Time `json:"date,omitempty"`
	// present, absent or late
	Status       string `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttendanceEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attendanceevent.FieldID, attendanceevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case attendanceevent.FieldGroupID, attendanceevent.FieldEnrollmentID, attendanceevent.FieldStatus:
			values[i] = new(sql.NullString)
		case attendanceevent.FieldTimestamp, attendanceevent.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttendanceEvent fields.
func (_m *AttendanceEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attendanceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attendanceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case attendanceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case attendanceevent.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case attendanceevent.FieldEnrollmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrollment_id", values[i])
			} else if value.Valid {
				_m.EnrollmentID = value.String
			}
		case attendanceevent.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case attendanceevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttendanceEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AttendanceEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttendanceEvent.
// Note that you need to call AttendanceEvent.Unwrap() before calling this method if this AttendanceEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttendanceEvent) Update() *AttendanceEventUpdateOne {
	return NewAttendanceEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttendanceEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttendanceEvent) Unwrap() *AttendanceEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttendanceEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttendanceEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttendanceEvent(")
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
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// AttendanceEvents is a parsable slice of AttendanceEvent.
type AttendanceEvents []*AttendanceEvent
