package session

import (
	"sort"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
)

type groupKey struct {
	employeeID string
	date       string
}

// BuildSessions groups events by employee and calendar date, builds a
// session per group, and orders the result by date descending. Groups on
// the same date keep the order in which they first appeared in the input,
// so repeated calls over the same log produce identical output.
func BuildSessions(events []event.PunchEvent, now time.Time) []session.WorkSession {
	groups := make(map[groupKey][]event.PunchEvent)
	var order []groupKey

	for _, e := range events {
		key := groupKey{employeeID: e.EmployeeID, date: e.DateKey()}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}

	sessions := make([]session.WorkSession, 0, len(order))
	for _, key := range order {
		if ws := BuildSession(key.employeeID, key.date, groups[key], now); ws != nil {
			sessions = append(sessions, *ws)
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date > sessions[j].Date
	})

	return sessions
}

// BuildWeeklySummary rolls up one employee's sessions over the window
// [weekStart, weekEnd]. Hour totals sum working hours (break time already
// subtracted); break totals are in minutes. Days with no punch-in simply do
// not appear in the breakdown, which is ordered oldest day first.
func BuildWeeklySummary(employeeID string, sessions []session.WorkSession, weekStart, weekEnd time.Time) session.WeeklySummary {
	summary := session.WeeklySummary{
		EmployeeID: employeeID,
		WeekStart:  weekStart.Format("2006-01-02"),
		WeekEnd:    weekEnd.Format("2006-01-02"),
	}

	for _, ws := range sessions {
		if ws.EmployeeID != employeeID {
			continue
		}
		summary.TotalHours += ws.WorkingHours
		summary.TotalBreakTime += ws.BreakDuration
		summary.DaysWorked++

		day := session.DailySummary{
			Date:       ws.Date,
			Hours:      ws.WorkingHours,
			BreakTime:  ws.BreakDuration,
			IsLateIn:   ws.IsLateIn,
			IsEarlyOut: ws.IsEarlyOut,
			PunchIn:    ws.PunchIn,
			PunchOut:   ws.PunchOut,
		}
		if d, err := time.Parse("2006-01-02", ws.Date); err == nil {
			day.DayName = d.Weekday().String()
		}
		summary.DailyBreakdown = append(summary.DailyBreakdown, day)
	}

	if summary.DaysWorked > 0 {
		summary.AverageHoursPerDay = summary.TotalHours / float64(summary.DaysWorked)
	}

	sort.SliceStable(summary.DailyBreakdown, func(i, j int) bool {
		return summary.DailyBreakdown[i].Date < summary.DailyBreakdown[j].Date
	})

	return summary
}
