package event

import (
	"time"
)

// Type identifies a punch action.
type Type string

const (
	TypePunchIn    Type = "punch_in"
	TypePunchOut   Type = "punch_out"
	TypeBreakStart Type = "break_start"
	TypeBreakEnd   Type = "break_end"
)

// Valid reports whether t is one of the four punch actions.
func (t Type) Valid() bool {
	switch t {
	case TypePunchIn, TypePunchOut, TypeBreakStart, TypeBreakEnd:
		return true
	}
	return false
}

// PunchEvent is one recorded action. Events are append-only: the engine
// never mutates or deletes them; sessions are derived projections.
// IsLate is meaningful only for punch_in, IsEarly only for punch_out; both
// are computed against business hours when the event is recorded and are
// immutable afterward.
type PunchEvent struct {
	ID         string
	EmployeeID string
	Type       Type
	Timestamp  time.Time
	IsLate     bool
	IsEarly    bool
	Notes      *string
	CreatedAt  time.Time
}

// DateKey returns the calendar date of the event ("2006-01-02") in the
// timestamp's location. Grouping and filtering use this key.
func (e PunchEvent) DateKey() string {
	return e.Timestamp.Format("2006-01-02")
}
