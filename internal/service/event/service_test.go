package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/clock"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/sse"
)

type fakeEventRepo struct {
	events []event.PunchEvent
}

func (r *fakeEventRepo) Create(_ context.Context, ev event.PunchEvent) (event.PunchEvent, error) {
	r.events = append(r.events, ev)
	return ev, nil
}

func (r *fakeEventRepo) ListByEmployeeAndDate(_ context.Context, employeeID, date string) ([]event.PunchEvent, error) {
	var out []event.PunchEvent
	for _, ev := range r.events {
		if ev.EmployeeID == employeeID && ev.DateKey() == date {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) ListByDateRange(_ context.Context, startDate, endDate string) ([]event.PunchEvent, error) {
	var out []event.PunchEvent
	for _, ev := range r.events {
		if key := ev.DateKey(); key >= startDate && key <= endDate {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) ListByEmployeeAndDateRange(_ context.Context, employeeID, startDate, endDate string) ([]event.PunchEvent, error) {
	var out []event.PunchEvent
	for _, ev := range r.events {
		if key := ev.DateKey(); ev.EmployeeID == employeeID && key >= startDate && key <= endDate {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

type fakeHoursRepo struct {
	hours businesshours.BusinessHours
	err   error
}

func (r *fakeHoursRepo) Get(_ context.Context) (businesshours.BusinessHours, error) {
	return r.hours, r.err
}

func (r *fakeHoursRepo) Save(_ context.Context, h businesshours.BusinessHours) (businesshours.BusinessHours, error) {
	r.hours = h
	return h, nil
}

func newTestService(now time.Time) (event.EventService, *fakeEventRepo) {
	eventRepo := &fakeEventRepo{}
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", Name: "John Smith", EmployeeCode: "EMP001", IsActive: true},
			"emp-2": {ID: "emp-2", Name: "Inactive", EmployeeCode: "EMP002", IsActive: false},
		},
	}
	hoursRepo := &fakeHoursRepo{
		hours: businesshours.BusinessHours{
			ID:            "bh-1",
			StartTime:     "09:00",
			EndTime:       "17:00",
			BreakDuration: 60,
			LateThreshold: 15,
		},
	}

	svc := NewEventService(eventRepo, employeeRepo, hoursRepo, clock.Fixed(now), sse.NewHub())
	return svc, eventRepo
}

func strPtr(s string) *string {
	return &s
}

func TestRecordEventPunchIn(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)

	resp, err := svc.RecordEvent(context.Background(), event.RecordEventRequest{
		EmployeeID: "emp-1",
		Type:       "punch_in",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "punch_in", resp.Type)
	assert.False(t, resp.IsLate)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, repo.events, 1)
}

func TestRecordEventAdmissionControl(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("double punch-in rejected", func(t *testing.T) {
		svc, _ := newTestService(now)
		_, err := svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "punch_in"})
		require.NoError(t, err)

		_, err = svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "punch_in"})
		assert.ErrorIs(t, err, event.ErrAlreadyPunchedIn)
	})

	t.Run("punch-out without punch-in rejected", func(t *testing.T) {
		svc, _ := newTestService(now)
		_, err := svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "punch_out"})
		assert.ErrorIs(t, err, event.ErrNotPunchedIn)
	})

	t.Run("punch-out while on break rejected", func(t *testing.T) {
		svc, _ := newTestService(now)
		_, err := svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "punch_in"})
		require.NoError(t, err)
		_, err = svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "break_start"})
		require.NoError(t, err)

		_, err = svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "punch_out"})
		assert.ErrorIs(t, err, event.ErrPunchOutWhileOnBreak)
	})

	t.Run("break-end without break rejected", func(t *testing.T) {
		svc, _ := newTestService(now)
		_, err := svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "punch_in"})
		require.NoError(t, err)

		_, err = svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "break_end"})
		assert.ErrorIs(t, err, event.ErrNotOnBreak)
	})

	t.Run("full legal day", func(t *testing.T) {
		svc, repo := newTestService(now)
		for _, typ := range []string{"punch_in", "break_start", "break_end", "punch_out"} {
			_, err := svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: typ})
			require.NoError(t, err, typ)
		}
		assert.Len(t, repo.events, 4)
	})
}

func TestRecordEventLateFlag(t *testing.T) {
	// 09:20 with a 15 minute threshold past a 09:00 start is late
	now := time.Date(2026, 8, 24, 9, 20, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	resp, err := svc.RecordEvent(context.Background(), event.RecordEventRequest{
		EmployeeID: "emp-1",
		Type:       "punch_in",
	})

	require.NoError(t, err)
	assert.True(t, resp.IsLate)
}

func TestRecordEventEarlyFlag(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := context.Background()

	_, err := svc.RecordEvent(ctx, event.RecordEventRequest{EmployeeID: "emp-1", Type: "punch_in"})
	require.NoError(t, err)

	// explicit timestamp before 17:00 shift end
	resp, err := svc.RecordEvent(ctx, event.RecordEventRequest{
		EmployeeID: "emp-1",
		Type:       "punch_out",
		Timestamp:  strPtr("2026-08-24T16:00:00Z"),
	})

	require.NoError(t, err)
	assert.True(t, resp.IsEarly)
}

func TestRecordEventUnknownEmployee(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.RecordEvent(context.Background(), event.RecordEventRequest{
		EmployeeID: "nobody",
		Type:       "punch_in",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordEventInactiveEmployee(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.RecordEvent(context.Background(), event.RecordEventRequest{
		EmployeeID: "emp-2",
		Type:       "punch_in",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestRecordEventCamelCaseWire(t *testing.T) {
	var req event.RecordEventRequest
	require.NoError(t, req.UnmarshalJSON([]byte(`{"employeeId":"emp-1","type":"punch_in"}`)))
	assert.Equal(t, "emp-1", req.EmployeeID)

	require.NoError(t, req.UnmarshalJSON([]byte(`{"employee_id":"emp-9","type":"punch_out"}`)))
	assert.Equal(t, "emp-9", req.EmployeeID)
}

func TestRecordEventPublishesToHub(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	eventRepo := &fakeEventRepo{}
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", Name: "John Smith", EmployeeCode: "EMP001", IsActive: true},
		},
	}
	hoursRepo := &fakeHoursRepo{err: businesshours.ErrNotConfigured}
	hub := sse.NewHub()
	svc := NewEventService(eventRepo, employeeRepo, hoursRepo, clock.Fixed(now), hub)

	ch, cleanup := hub.Subscribe(TopicAttendance)
	defer cleanup()

	_, err := svc.RecordEvent(context.Background(), event.RecordEventRequest{
		EmployeeID: "emp-1",
		Type:       "punch_in",
	})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, "punch_recorded", ev.Event)
	default:
		t.Fatal("expected a published event on the attendance topic")
	}
}
