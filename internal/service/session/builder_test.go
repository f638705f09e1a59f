package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
)

func makeEvent(employeeID string, t event.Type, ts time.Time) event.PunchEvent {
	return event.PunchEvent{
		ID:         "evt-" + ts.Format("150405") + "-" + string(t),
		EmployeeID: employeeID,
		Type:       t,
		Timestamp:  ts,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC)
}

func TestBuildSessionNoPunchIn(t *testing.T) {
	now := at(12, 0)

	assert.Nil(t, BuildSession("emp-1", "2026-08-24", nil, now))

	// break events without a punch-in still do not make a session
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypeBreakStart, at(10, 0)),
		makeEvent("emp-1", event.TypeBreakEnd, at(10, 30)),
	}
	assert.Nil(t, BuildSession("emp-1", "2026-08-24", events, now))
}

func TestBuildSessionClosedDayIgnoresNow(t *testing.T) {
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
		makeEvent("emp-1", event.TypePunchOut, at(17, 0)),
	}

	first := BuildSession("emp-1", "2026-08-24", events, at(18, 0))
	second := BuildSession("emp-1", "2026-08-24", events, at(23, 59))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)

	assert.InDelta(t, 8.0, first.TotalHours, 1e-9)
	assert.InDelta(t, 8.0, first.WorkingHours, 1e-9)
	assert.InDelta(t, 0.0, first.BreakDuration, 1e-9)
	assert.Equal(t, session.StatusComplete, first.Status)
}

func TestBuildSessionBreakSubtraction(t *testing.T) {
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
		makeEvent("emp-1", event.TypeBreakStart, at(12, 0)),
		makeEvent("emp-1", event.TypeBreakEnd, at(12, 30)),
		makeEvent("emp-1", event.TypePunchOut, at(17, 30)),
	}

	ws := BuildSession("emp-1", "2026-08-24", events, at(18, 0))
	require.NotNil(t, ws)

	assert.InDelta(t, 8.5, ws.TotalHours, 1e-9)
	assert.InDelta(t, 30.0, ws.BreakDuration, 1e-9)
	assert.InDelta(t, 8.0, ws.WorkingHours, 1e-9)
	require.NotNil(t, ws.BreakStart)
	require.NotNil(t, ws.BreakEnd)
	assert.Equal(t, at(12, 0), *ws.BreakStart)
	assert.Equal(t, at(12, 30), *ws.BreakEnd)
}

func TestBuildSessionOpenDayGrowsWithNow(t *testing.T) {
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
	}

	noon := BuildSession("emp-1", "2026-08-24", events, at(12, 0))
	one := BuildSession("emp-1", "2026-08-24", events, at(13, 0))

	require.NotNil(t, noon)
	require.NotNil(t, one)

	assert.InDelta(t, 3.0, noon.WorkingHours, 1e-9)
	assert.InDelta(t, 3.0, noon.TotalHours, 1e-9)
	assert.InDelta(t, 4.0, one.WorkingHours, 1e-9)
	assert.Equal(t, session.StatusInProgress, noon.Status)
	assert.Nil(t, noon.PunchOut)
}

func TestBuildSessionPositionalPairing(t *testing.T) {
	// two punch-ins, one punch-out: the first in pairs with the out, the
	// second cycle stays open
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
		makeEvent("emp-1", event.TypePunchOut, at(12, 0)),
		makeEvent("emp-1", event.TypePunchIn, at(13, 0)),
	}

	ws := BuildSession("emp-1", "2026-08-24", events, at(15, 0))
	require.NotNil(t, ws)

	require.Len(t, ws.PunchCycles, 2)
	require.NotNil(t, ws.PunchCycles[0].PunchOut)
	assert.Equal(t, at(12, 0), *ws.PunchCycles[0].PunchOut)
	assert.Nil(t, ws.PunchCycles[1].PunchOut)

	// 3h closed cycle + 2h open tail
	assert.InDelta(t, 5.0, ws.WorkingHours, 1e-9)
	assert.Equal(t, session.StatusInProgress, ws.Status)

	// total hours anchor to the last recorded punch-out when one exists
	assert.InDelta(t, 3.0, ws.TotalHours, 1e-9)
}

func TestBuildSessionOngoingBreak(t *testing.T) {
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
		makeEvent("emp-1", event.TypeBreakStart, at(12, 0)),
	}

	ws := BuildSession("emp-1", "2026-08-24", events, at(12, 30))
	require.NotNil(t, ws)

	assert.Equal(t, session.StatusOnBreak, ws.Status)
	assert.InDelta(t, 30.0, ws.BreakDuration, 1e-9)
	assert.InDelta(t, 3.0, ws.WorkingHours, 1e-9)
	assert.InDelta(t, 3.5, ws.TotalHours, 1e-9)
}

func TestBuildSessionUnterminatedBreakInClosedCycle(t *testing.T) {
	// the break never ended, so it runs to the cycle's punch-out
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
		makeEvent("emp-1", event.TypeBreakStart, at(12, 0)),
		makeEvent("emp-1", event.TypePunchOut, at(17, 0)),
	}

	ws := BuildSession("emp-1", "2026-08-24", events, at(18, 0))
	require.NotNil(t, ws)

	assert.InDelta(t, 300.0, ws.BreakDuration, 1e-9)
	assert.InDelta(t, 3.0, ws.WorkingHours, 1e-9)
	assert.Equal(t, session.StatusComplete, ws.Status)
}

func TestBuildSessionWorkingHoursNeverNegative(t *testing.T) {
	// overlapping breaks sum past the cycle length; the cycle floors at
	// zero instead of going negative
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
		makeEvent("emp-1", event.TypeBreakStart, at(9, 10)),
		makeEvent("emp-1", event.TypeBreakStart, at(9, 20)),
		makeEvent("emp-1", event.TypeBreakEnd, at(9, 55)),
		makeEvent("emp-1", event.TypePunchOut, at(10, 0)),
		makeEvent("emp-1", event.TypePunchIn, at(11, 0)),
		makeEvent("emp-1", event.TypePunchOut, at(12, 0)),
	}

	ws := BuildSession("emp-1", "2026-08-24", events, at(13, 0))
	require.NotNil(t, ws)

	// first cycle: 45m + 40m of break inside a 60m cycle, floored at zero;
	// second cycle contributes its full hour
	assert.InDelta(t, 85.0, ws.BreakDuration, 1e-9)
	assert.InDelta(t, 1.0, ws.WorkingHours, 1e-9)
	assert.GreaterOrEqual(t, ws.TotalHours, ws.WorkingHours)
}

func TestBuildSessionLateAndEarlyFlags(t *testing.T) {
	in := makeEvent("emp-1", event.TypePunchIn, at(9, 30))
	in.IsLate = true
	out := makeEvent("emp-1", event.TypePunchOut, at(16, 0))
	out.IsEarly = true

	ws := BuildSession("emp-1", "2026-08-24", []event.PunchEvent{in, out}, at(18, 0))
	require.NotNil(t, ws)

	assert.True(t, ws.IsLateIn)
	assert.True(t, ws.IsEarlyOut)
	require.Len(t, ws.PunchCycles, 1)
	assert.True(t, ws.PunchCycles[0].IsLateIn)
	assert.True(t, ws.PunchCycles[0].IsEarlyOut)
}

func TestBuildSessionUnsortedInput(t *testing.T) {
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypePunchOut, at(17, 0)),
		makeEvent("emp-1", event.TypePunchIn, at(9, 0)),
	}

	ws := BuildSession("emp-1", "2026-08-24", events, at(18, 0))
	require.NotNil(t, ws)

	assert.Equal(t, at(9, 0), ws.PunchIn)
	assert.InDelta(t, 8.0, ws.TotalHours, 1e-9)
}
