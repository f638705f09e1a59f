package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
)

func TestEvaluateStatusTable(t *testing.T) {
	tests := []struct {
		name         string
		types        []event.Type
		wantStatus   session.CurrentStatus
		wantPunchIn  bool
		wantPunchOut bool
		wantStartBrk bool
		wantEndBrk   bool
	}{
		{
			name:        "no events",
			types:       nil,
			wantStatus:  session.CurrentNotStarted,
			wantPunchIn: true,
		},
		{
			name:         "punched in",
			types:        []event.Type{event.TypePunchIn},
			wantStatus:   session.CurrentWorking,
			wantPunchOut: true,
			wantStartBrk: true,
		},
		{
			name:       "on break",
			types:      []event.Type{event.TypePunchIn, event.TypeBreakStart},
			wantStatus: session.CurrentOnBreak,
			wantEndBrk: true,
		},
		{
			name:         "back from break",
			types:        []event.Type{event.TypePunchIn, event.TypeBreakStart, event.TypeBreakEnd},
			wantStatus:   session.CurrentWorking,
			wantPunchOut: true,
			wantStartBrk: true,
		},
		{
			name:        "punched out",
			types:       []event.Type{event.TypePunchIn, event.TypePunchOut},
			wantStatus:  session.CurrentFinished,
			wantPunchIn: true,
		},
		{
			name:         "punched in again after punching out",
			types:        []event.Type{event.TypePunchIn, event.TypePunchOut, event.TypePunchIn},
			wantStatus:   session.CurrentWorking,
			wantPunchOut: true,
			wantStartBrk: true,
		},
		{
			name: "full day with break then out",
			types: []event.Type{
				event.TypePunchIn, event.TypeBreakStart, event.TypeBreakEnd, event.TypePunchOut,
			},
			wantStatus:  session.CurrentFinished,
			wantPunchIn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]event.PunchEvent, 0, len(tt.types))
			base := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
			for i, typ := range tt.types {
				events = append(events, makeEvent("emp-1", typ, base.Add(time.Duration(i)*time.Hour)))
			}

			status := EvaluateStatus(events)

			assert.Equal(t, tt.wantStatus, status.CurrentStatus)
			assert.Equal(t, tt.wantPunchIn, status.CanPunchIn, "can_punch_in")
			assert.Equal(t, tt.wantPunchOut, status.CanPunchOut, "can_punch_out")
			assert.Equal(t, tt.wantStartBrk, status.CanStartBreak, "can_start_break")
			assert.Equal(t, tt.wantEndBrk, status.CanEndBreak, "can_end_break")
		})
	}
}

func TestEvaluateStatusExactlyOneActionGroup(t *testing.T) {
	// whatever the state, the enabled actions always form exactly one of
	// the three legal groups
	sequences := [][]event.Type{
		nil,
		{event.TypePunchIn},
		{event.TypePunchIn, event.TypeBreakStart},
		{event.TypePunchIn, event.TypeBreakStart, event.TypeBreakEnd},
		{event.TypePunchIn, event.TypePunchOut},
		{event.TypePunchIn, event.TypePunchOut, event.TypePunchIn},
		{event.TypeBreakEnd},
		{event.TypePunchOut},
	}

	for _, seq := range sequences {
		events := make([]event.PunchEvent, 0, len(seq))
		base := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
		for i, typ := range seq {
			events = append(events, makeEvent("emp-1", typ, base.Add(time.Duration(i)*time.Minute)))
		}

		status := EvaluateStatus(events)

		onlyPunchIn := status.CanPunchIn && !status.CanPunchOut && !status.CanStartBreak && !status.CanEndBreak
		onlyEndBreak := !status.CanPunchIn && !status.CanPunchOut && !status.CanStartBreak && status.CanEndBreak
		workGroup := !status.CanPunchIn && status.CanPunchOut && status.CanStartBreak && !status.CanEndBreak

		assert.True(t, onlyPunchIn || onlyEndBreak || workGroup, "sequence %v enabled an illegal action mix", seq)
	}
}

func TestEvaluateStatusLastActionIsChronological(t *testing.T) {
	// events arrive unsorted; last action is still the latest timestamp
	events := []event.PunchEvent{
		makeEvent("emp-1", event.TypeBreakStart, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)),
		makeEvent("emp-1", event.TypePunchIn, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)),
	}

	status := EvaluateStatus(events)

	require.NotNil(t, status.LastAction)
	assert.Equal(t, event.TypeBreakStart, status.LastAction.Type)
	assert.Equal(t, session.CurrentOnBreak, status.CurrentStatus)
}
