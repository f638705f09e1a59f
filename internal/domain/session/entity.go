package session

import (
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
)

// Status of a derived work session.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusInProgress Status = "in_progress"
	StatusOnBreak    Status = "on_break"
)

// CurrentStatus of an employee's day, as seen by the status evaluator.
type CurrentStatus string

const (
	CurrentNotStarted CurrentStatus = "not_started"
	CurrentWorking    CurrentStatus = "working"
	CurrentOnBreak    CurrentStatus = "on_break"
	CurrentFinished   CurrentStatus = "finished"
)

// PunchCycle is one punch-in paired with its positional punch-out. A nil
// PunchOut means the cycle is still open.
type PunchCycle struct {
	PunchIn    time.Time
	PunchOut   *time.Time
	IsLateIn   bool
	IsEarlyOut bool
}

// WorkSession is one employee's reconstructed record for one calendar date.
// Sessions are recomputed from the event log on every request and never
// stored; the log is the source of truth.
//
// TotalHours is wall time from first punch-in to last punch-out (or to
// "now" while the day is open). BreakDuration is total break minutes across
// all cycles, including an ongoing break. WorkingHours subtracts break time
// per cycle, floored at zero per cycle, so TotalHours >= WorkingHours.
type WorkSession struct {
	EmployeeID    string
	Date          string // YYYY-MM-DD
	PunchIn       time.Time
	PunchOut      *time.Time
	BreakStart    *time.Time // first break window, for display
	BreakEnd      *time.Time
	TotalHours    float64
	BreakDuration float64 // minutes
	WorkingHours  float64
	IsLateIn      bool
	IsEarlyOut    bool
	Status        Status
	PunchCycles   []PunchCycle
}

// WorkStatus captures which punch actions are currently legal for an
// employee, derived purely from today's event counts.
type WorkStatus struct {
	CanPunchIn    bool
	CanPunchOut   bool
	CanStartBreak bool
	CanEndBreak   bool
	CurrentStatus CurrentStatus
	LastAction    *event.PunchEvent
}

// DailySummary is one day's line in a weekly breakdown.
type DailySummary struct {
	Date       string // YYYY-MM-DD
	DayName    string // Monday, Tuesday, ...
	Hours      float64
	BreakTime  float64 // minutes
	IsLateIn   bool
	IsEarlyOut bool
	PunchIn    time.Time
	PunchOut   *time.Time
}

// WeeklySummary aggregates one employee's sessions over a trailing 7-day
// window. It carries no state of its own; it is derived from sessions.
type WeeklySummary struct {
	EmployeeID         string
	WeekStart          string // YYYY-MM-DD
	WeekEnd            string // YYYY-MM-DD
	TotalHours         float64
	TotalBreakTime     float64 // minutes
	DaysWorked         int
	AverageHoursPerDay float64
	DailyBreakdown     []DailySummary
}
