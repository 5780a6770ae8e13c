// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/studentprofile"
)

// StudentProfile is the model entity for the StudentProfile schema.
type StudentProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PublicID holds the value of the "public_id" field.
	PublicID string `json:"public_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName  string `json:"display_name,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentprofile.FieldID:
			values[i] = new(sql.NullInt64)
		case studentprofile.FieldPublicID, studentprofile.FieldDisplayName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentProfile fields.
func (_m *StudentProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studentprofile.FieldPublicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field public_id", values[i])
			} else if value.Valid {
				_m.PublicID = value.String
			}
		case studentprofile.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentProfile.
// This includes values selected through modifiers, order, etc.
func (_m *StudentProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudentProfile.
// Note that you need to call StudentProfile.Unwrap() before calling this method if this StudentProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentProfile) Update() *StudentProfileUpdateOne {
	return NewStudentProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentProfile) Unwrap() *StudentProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentProfile) String() string {
	var builder strings.Builder
	builder.WriteString("StudentProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("public_id=")
	builder.WriteString(_m.PublicID)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteByte(')')
	return builder.String()
}

// StudentProfiles is a parsable slice of StudentProfile.
type StudentProfiles []*StudentProfile
