package session

import (
	"sort"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
)

// BuildSession reconstructs one employee's work session for one calendar
// date from that day's events. It returns nil when the day has no punch-in:
// an empty day is absence of data, not an error.
//
// Cycles pair the i-th punch-in with the i-th punch-out by position. A break
// is attributed to the cycle whose [in, out] window contains its start; a
// break with no end inside the cycle runs until the cycle's punch-out.
// Per-cycle working hours are floored at zero so an over-long break cannot
// drive the day negative.
//
// now is consulted only while the day is still open (last punch-in has no
// matching punch-out): the open tail is extrapolated to now, and an ongoing
// break is counted only when it started at or after the last punch-in. For a
// closed day the result is fully determined by the events.
func BuildSession(employeeID, date string, events []event.PunchEvent, now time.Time) *session.WorkSession {
	if len(events) == 0 {
		return nil
	}

	punchIns := filterByType(events, event.TypePunchIn)
	punchOuts := filterByType(events, event.TypePunchOut)
	breakStarts := filterByType(events, event.TypeBreakStart)
	breakEnds := filterByType(events, event.TypeBreakEnd)

	if len(punchIns) == 0 {
		return nil
	}

	var workingHours float64
	var breakMinutes float64

	for i, in := range punchIns {
		if i >= len(punchOuts) {
			break
		}
		out := punchOuts[i]
		cycleHours := out.Timestamp.Sub(in.Timestamp).Hours()

		var cycleBreak float64
		for bi, bs := range breakStarts {
			if bs.Timestamp.Before(in.Timestamp) || bs.Timestamp.After(out.Timestamp) {
				continue
			}
			if bi < len(breakEnds) {
				be := breakEnds[bi]
				if !be.Timestamp.After(out.Timestamp) {
					cycleBreak += be.Timestamp.Sub(bs.Timestamp).Minutes()
				}
			} else {
				// break never ended: it runs to the cycle's punch-out
				cycleBreak += out.Timestamp.Sub(bs.Timestamp).Minutes()
			}
		}

		breakMinutes += cycleBreak
		workingHours += max(0, cycleHours-cycleBreak/60)
	}

	lastPunchIn := punchIns[len(punchIns)-1]
	var lastPunchOut *event.PunchEvent
	if len(punchOuts) > 0 {
		lastPunchOut = &punchOuts[len(punchOuts)-1]
	}
	stillWorking := lastPunchOut == nil || lastPunchIn.Timestamp.After(lastPunchOut.Timestamp)

	onBreak := false
	if len(breakStarts) > 0 {
		lastBreakStart := breakStarts[len(breakStarts)-1]
		onBreak = len(breakEnds) == 0 ||
			lastBreakStart.Timestamp.After(breakEnds[len(breakEnds)-1].Timestamp)

		if stillWorking && onBreak && !lastBreakStart.Timestamp.Before(lastPunchIn.Timestamp) {
			currentBreak := now.Sub(lastBreakStart.Timestamp).Minutes()
			breakMinutes += currentBreak
			workingHours += max(0, now.Sub(lastPunchIn.Timestamp).Hours()-currentBreak/60)
		} else if stillWorking {
			workingHours += max(0, now.Sub(lastPunchIn.Timestamp).Hours())
		}
	} else if stillWorking {
		workingHours += max(0, now.Sub(lastPunchIn.Timestamp).Hours())
	}

	status := session.StatusComplete
	if stillWorking {
		if onBreak {
			status = session.StatusOnBreak
		} else {
			status = session.StatusInProgress
		}
	}

	firstPunchIn := punchIns[0]
	var totalHours float64
	switch {
	case lastPunchOut != nil:
		totalHours = lastPunchOut.Timestamp.Sub(firstPunchIn.Timestamp).Hours()
	case stillWorking:
		totalHours = now.Sub(firstPunchIn.Timestamp).Hours()
	}

	cycles := make([]session.PunchCycle, 0, len(punchIns))
	for i, in := range punchIns {
		cycle := session.PunchCycle{
			PunchIn:  in.Timestamp,
			IsLateIn: in.IsLate,
		}
		if i < len(punchOuts) {
			out := punchOuts[i]
			cycle.PunchOut = timePtr(out.Timestamp)
			cycle.IsEarlyOut = out.IsEarly
		}
		cycles = append(cycles, cycle)
	}

	ws := &session.WorkSession{
		EmployeeID:    employeeID,
		Date:          date,
		PunchIn:       firstPunchIn.Timestamp,
		TotalHours:    totalHours,
		BreakDuration: breakMinutes,
		WorkingHours:  workingHours,
		IsLateIn:      firstPunchIn.IsLate,
		Status:        status,
		PunchCycles:   cycles,
	}
	if lastPunchOut != nil {
		ws.PunchOut = timePtr(lastPunchOut.Timestamp)
		ws.IsEarlyOut = lastPunchOut.IsEarly
	}
	if len(breakStarts) > 0 {
		ws.BreakStart = timePtr(breakStarts[0].Timestamp)
	}
	if len(breakEnds) > 0 {
		ws.BreakEnd = timePtr(breakEnds[0].Timestamp)
	}

	return ws
}

func filterByType(events []event.PunchEvent, t event.Type) []event.PunchEvent {
	var out []event.PunchEvent
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func timePtr(t time.Time) *time.Time {
	return &t
}
