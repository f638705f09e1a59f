package businesshours

import (
	"time"
)

// BusinessHours is the process-wide shift configuration. StartTime and
// EndTime are wall-clock "HH:MM" strings; the shift never crosses midnight
// (StartTime < EndTime is enforced on update).
type BusinessHours struct {
	ID            string
	StartTime     string // "09:00"
	EndTime       string // "17:00"
	BreakDuration int    // expected break length in minutes, informational
	LateThreshold int    // grace minutes after StartTime before a punch-in is late
	UpdatedAt     time.Time
}

// StartOn anchors StartTime on the calendar day of t, in t's location.
func (b BusinessHours) StartOn(t time.Time) time.Time {
	return anchorClock(b.StartTime, t)
}

// EndOn anchors EndTime on the calendar day of t, in t's location.
func (b BusinessHours) EndOn(t time.Time) time.Time {
	return anchorClock(b.EndTime, t)
}

// IsLatePunchIn reports whether a punch-in at ts falls after the late
// threshold past shift start.
func (b BusinessHours) IsLatePunchIn(ts time.Time) bool {
	limit := b.StartOn(ts).Add(time.Duration(b.LateThreshold) * time.Minute)
	return ts.After(limit)
}

// IsEarlyPunchOut reports whether a punch-out at ts falls before shift end.
func (b BusinessHours) IsEarlyPunchOut(ts time.Time) bool {
	return ts.Before(b.EndOn(ts))
}

func anchorClock(clockStr string, day time.Time) time.Time {
	parsed, err := time.Parse("15:04", clockStr)
	if err != nil {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, day.Location())
}
