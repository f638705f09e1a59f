package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/clock"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/sse"
	sessionservice "github.com/timeclock-app/timeclock-backend-go/internal/service/session"
)

// TopicAttendance is the SSE topic every recorded punch is published to.
const TopicAttendance = "attendance"

type EventServiceImpl struct {
	event.EventRepository
	employee.EmployeeRepository
	businesshours.BusinessHoursRepository
	clock clock.Clock
	hub   *sse.Hub
}

func NewEventService(
	eventRepo event.EventRepository,
	employeeRepo employee.EmployeeRepository,
	hoursRepo businesshours.BusinessHoursRepository,
	clk clock.Clock,
	hub *sse.Hub,
) event.EventService {
	return &EventServiceImpl{
		EventRepository:         eventRepo,
		EmployeeRepository:      employeeRepo,
		BusinessHoursRepository: hoursRepo,
		clock:                   clk,
		hub:                     hub,
	}
}

func (s *EventServiceImpl) RecordEvent(ctx context.Context, req event.RecordEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return event.EventResponse{}, err
	}
	if !emp.IsActive {
		return event.EventResponse{}, employee.ErrEmployeeInactive
	}

	timestamp := s.clock.Now()
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, parseErr := time.Parse(time.RFC3339, *req.Timestamp)
		if parseErr != nil {
			parsed, parseErr = time.Parse(time.RFC3339Nano, *req.Timestamp)
		}
		if parseErr != nil {
			return event.EventResponse{}, fmt.Errorf("invalid timestamp: %w", parseErr)
		}
		timestamp = parsed
	}

	eventType := event.Type(req.Type)
	if err := s.checkAdmission(ctx, emp.ID, eventType, timestamp); err != nil {
		return event.EventResponse{}, err
	}

	ev := event.PunchEvent{
		ID:         uuid.New().String(),
		EmployeeID: emp.ID,
		Type:       eventType,
		Timestamp:  timestamp,
		Notes:      req.Notes,
		CreatedAt:  s.clock.Now(),
	}

	// late/early flags are computed once at recording time and frozen
	hours, err := s.BusinessHoursRepository.Get(ctx)
	switch {
	case err == nil:
		ev.IsLate = eventType == event.TypePunchIn && hours.IsLatePunchIn(timestamp)
		ev.IsEarly = eventType == event.TypePunchOut && hours.IsEarlyPunchOut(timestamp)
	case errors.Is(err, businesshours.ErrNotConfigured):
		// no configuration means nothing is late or early
	default:
		return event.EventResponse{}, fmt.Errorf("failed to load business hours: %w", err)
	}

	created, err := s.EventRepository.Create(ctx, ev)
	if err != nil {
		return event.EventResponse{}, fmt.Errorf("failed to record event: %w", err)
	}

	resp := event.ToResponse(created)

	s.hub.Publish(TopicAttendance, sse.Event{
		Topic: TopicAttendance,
		Event: "punch_recorded",
		Data:  resp,
	})

	slog.Info("punch event recorded",
		"event_id", created.ID,
		"employee_id", created.EmployeeID,
		"type", created.Type,
		"is_late", created.IsLate,
		"is_early", created.IsEarly,
	)

	return resp, nil
}

// checkAdmission rejects actions that are illegal for the employee's current
// state, using the same count table the status endpoint serves. The event
// log can therefore never contain a double punch-in or an unmatched
// break-end.
func (s *EventServiceImpl) checkAdmission(ctx context.Context, employeeID string, t event.Type, timestamp time.Time) error {
	date := timestamp.Format("2006-01-02")
	todays, err := s.EventRepository.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	status := sessionservice.EvaluateStatus(todays)

	switch t {
	case event.TypePunchIn:
		if !status.CanPunchIn {
			return event.ErrAlreadyPunchedIn
		}
	case event.TypePunchOut:
		if status.CanEndBreak {
			return event.ErrPunchOutWhileOnBreak
		}
		if !status.CanPunchOut {
			return event.ErrNotPunchedIn
		}
	case event.TypeBreakStart:
		if !status.CanStartBreak {
			if status.CanEndBreak {
				return event.ErrAlreadyOnBreak
			}
			return event.ErrNotPunchedIn
		}
	case event.TypeBreakEnd:
		if !status.CanEndBreak {
			return event.ErrNotOnBreak
		}
	default:
		return event.ErrUnknownEventType
	}

	return nil
}

func (s *EventServiceImpl) ListEvents(ctx context.Context, filter event.EventFilter) ([]event.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	today := s.clock.Now().Format("2006-01-02")
	start, end := today, today
	if filter.StartDate != nil && *filter.StartDate != "" {
		start = *filter.StartDate
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		end = *filter.EndDate
	}

	var (
		events []event.PunchEvent
		err    error
	)
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		events, err = s.EventRepository.ListByEmployeeAndDateRange(ctx, *filter.EmployeeID, start, end)
	} else {
		events, err = s.EventRepository.ListByDateRange(ctx, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]event.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, event.ToResponse(ev))
	}
	return responses, nil
}

func (s *EventServiceImpl) GetTodayEvents(ctx context.Context, employeeID string) ([]event.EventResponse, error) {
	today := s.clock.Now().Format("2006-01-02")
	events, err := s.EventRepository.ListByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]event.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, event.ToResponse(ev))
	}
	return responses, nil
}
