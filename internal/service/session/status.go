package session

import (
	"sort"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
)

// EvaluateStatus derives which punch actions are legal from today's events
// for one employee. It is a pure function of event counts:
//
//	punched in  = more punch-ins than punch-outs
//	on break    = more break-starts than break-ends
//
// Exactly one action group is enabled per state, so an employee can never
// double punch-in or start a break twice. Event recording uses this same
// table for admission control.
func EvaluateStatus(events []event.PunchEvent) session.WorkStatus {
	if len(events) == 0 {
		return session.WorkStatus{
			CanPunchIn:    true,
			CurrentStatus: session.CurrentNotStarted,
		}
	}

	sorted := make([]event.PunchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var punchIns, punchOuts, breakStarts, breakEnds int
	for _, e := range sorted {
		switch e.Type {
		case event.TypePunchIn:
			punchIns++
		case event.TypePunchOut:
			punchOuts++
		case event.TypeBreakStart:
			breakStarts++
		case event.TypeBreakEnd:
			breakEnds++
		}
	}

	last := sorted[len(sorted)-1]
	status := session.WorkStatus{LastAction: &last}

	isPunchedIn := punchIns > punchOuts
	isOnBreak := breakStarts > breakEnds

	switch {
	case !isPunchedIn:
		if punchOuts > 0 {
			status.CurrentStatus = session.CurrentFinished
		} else {
			status.CurrentStatus = session.CurrentNotStarted
		}
		status.CanPunchIn = true
	case isOnBreak:
		status.CurrentStatus = session.CurrentOnBreak
		status.CanEndBreak = true
	default:
		status.CurrentStatus = session.CurrentWorking
		status.CanPunchOut = true
		status.CanStartBreak = true
	}

	return status
}
