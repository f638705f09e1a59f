package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
)

func TestRenderCSVEmpty(t *testing.T) {
	csv := RenderCSV(nil, nil)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		`"Employee Name","Employee ID","Date","First Punch In","Last Punch Out","Total Hours","Break Duration (min)","Working Hours","Punch Cycles","Late Arrivals","Early Departures","Status"`,
		lines[0],
	)
}

func TestRenderCSVRows(t *testing.T) {
	out := time.Date(2026, 8, 24, 17, 0, 0, 0, time.UTC)
	sessions := []session.WorkSession{
		{
			EmployeeID:    "emp-1",
			Date:          "2026-08-24",
			PunchIn:       time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			PunchOut:      &out,
			TotalHours:    8,
			BreakDuration: 30.4,
			WorkingHours:  7.5,
			Status:        session.StatusComplete,
			PunchCycles: []session.PunchCycle{
				{
					PunchIn:  time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
					PunchOut: &out,
					IsLateIn: true,
				},
			},
		},
	}
	employees := map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "John Smith", EmployeeCode: "EMP001"},
	}

	csv := RenderCSV(sessions, employees)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`"John Smith","EMP001","2026-08-24","9:00:00 AM","5:00:00 PM","8.00","30","7.50","Cycle 1: 9:00:00 AM - 5:00:00 PM (Late)","1","0","complete"`,
		lines[1],
	)
}

func TestRenderCSVUnknownEmployee(t *testing.T) {
	sessions := []session.WorkSession{
		{
			EmployeeID: "ghost",
			Date:       "2026-08-24",
			PunchIn:    time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			Status:     session.StatusInProgress,
			PunchCycles: []session.PunchCycle{
				{PunchIn: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)},
			},
		},
	}

	csv := RenderCSV(sessions, map[string]employee.Employee{})

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Unknown","Unknown",`))
	assert.Contains(t, lines[1], "Cycle 1: 9:00:00 AM - In Progress")
	// open session has no punch-out column value
	assert.Contains(t, lines[1], `"9:00:00 AM","",`)
}

func TestRenderCSVOneRowPerSession(t *testing.T) {
	sessions := make([]session.WorkSession, 5)
	for i := range sessions {
		sessions[i] = session.WorkSession{
			EmployeeID: "emp-1",
			Date:       "2026-08-24",
			PunchIn:    time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			Status:     session.StatusComplete,
		}
	}

	csv := RenderCSV(sessions, nil)

	assert.Len(t, strings.Split(csv, "\n"), 6)
}
