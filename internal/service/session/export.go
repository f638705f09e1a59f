package session

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
)

var csvHeaders = []string{
	"Employee Name",
	"Employee ID",
	"Date",
	"First Punch In",
	"Last Punch Out",
	"Total Hours",
	"Break Duration (min)",
	"Working Hours",
	"Punch Cycles",
	"Late Arrivals",
	"Early Departures",
	"Status",
}

// RenderCSV produces the attendance report: a header row plus one row per
// session, each field wrapped in double quotes. The historical report format
// does not escape quotes inside fields, and downstream consumers parse
// exactly that dialect, so encoding/csv is deliberately not used here.
// Times are rendered in 12-hour clock form ("9:05:00 AM").
func RenderCSV(sessions []session.WorkSession, employees map[string]employee.Employee) string {
	rows := make([][]string, 0, len(sessions)+1)
	rows = append(rows, csvHeaders)

	for _, ws := range sessions {
		name, code := "Unknown", "Unknown"
		if emp, ok := employees[ws.EmployeeID]; ok {
			name = emp.Name
			code = emp.EmployeeCode
		}

		cycleParts := make([]string, 0, len(ws.PunchCycles))
		var lateCount, earlyCount int
		for i, cycle := range ws.PunchCycles {
			out := "In Progress"
			if cycle.PunchOut != nil {
				out = formatClock(*cycle.PunchOut)
			}
			part := fmt.Sprintf("Cycle %d: %s - %s", i+1, formatClock(cycle.PunchIn), out)
			if cycle.IsLateIn {
				part += " (Late)"
				lateCount++
			}
			if cycle.IsEarlyOut {
				part += " (Early)"
				earlyCount++
			}
			cycleParts = append(cycleParts, part)
		}

		punchOut := ""
		if ws.PunchOut != nil {
			punchOut = formatClock(*ws.PunchOut)
		}

		rows = append(rows, []string{
			name,
			code,
			ws.Date,
			formatClock(ws.PunchIn),
			punchOut,
			fmt.Sprintf("%.2f", ws.TotalHours),
			fmt.Sprintf("%d", int(math.Round(ws.BreakDuration))),
			fmt.Sprintf("%.2f", ws.WorkingHours),
			strings.Join(cycleParts, "; "),
			fmt.Sprintf("%d", lateCount),
			fmt.Sprintf("%d", earlyCount),
			string(ws.Status),
		})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		quoted := make([]string, 0, len(row))
		for _, cell := range row {
			quoted = append(quoted, `"`+cell+`"`)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}

	return strings.Join(lines, "\n")
}

func formatClock(t time.Time) string {
	return t.Format("3:04:05 PM")
}
