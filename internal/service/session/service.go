package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/clock"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/storage"
)

type SessionServiceImpl struct {
	event.EventRepository
	employee.EmployeeRepository
	clock   clock.Clock
	storage storage.FileStorage
}

func NewSessionService(
	eventRepo event.EventRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	fileStorage storage.FileStorage,
) session.SessionService {
	return &SessionServiceImpl{
		EventRepository:    eventRepo,
		EmployeeRepository: employeeRepo,
		clock:              clk,
		storage:            fileStorage,
	}
}

func (s *SessionServiceImpl) GetWorkSessions(ctx context.Context, filter session.SessionFilter) ([]session.WorkSessionResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.listEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	sessions := BuildSessions(events, s.clock.Now())
	responses := make([]session.WorkSessionResponse, 0, len(sessions))
	for _, ws := range sessions {
		responses = append(responses, toSessionResponse(ws))
	}

	return responses, nil
}

func (s *SessionServiceImpl) GetCurrentSession(ctx context.Context, employeeID, date string) (*session.WorkSessionResponse, error) {
	events, err := s.EventRepository.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	ws := BuildSession(employeeID, date, events, s.clock.Now())
	if ws == nil {
		return nil, nil
	}

	resp := toSessionResponse(*ws)
	return &resp, nil
}

func (s *SessionServiceImpl) GetWorkStatus(ctx context.Context, employeeID string) (session.WorkStatusResponse, error) {
	today := s.clock.Now().Format("2006-01-02")

	events, err := s.EventRepository.ListByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		slog.Error("work status event lookup failed, returning safe default",
			"employee_id", employeeID,
			"error", err,
		)
		return session.DefaultWorkStatus(), fmt.Errorf("failed to list events: %w", err)
	}

	status := EvaluateStatus(events)
	resp := session.WorkStatusResponse{
		CanPunchIn:    status.CanPunchIn,
		CanPunchOut:   status.CanPunchOut,
		CanStartBreak: status.CanStartBreak,
		CanEndBreak:   status.CanEndBreak,
		CurrentStatus: string(status.CurrentStatus),
	}
	if status.LastAction != nil {
		last := event.ToResponse(*status.LastAction)
		resp.LastAction = &last
	}

	return resp, nil
}

func (s *SessionServiceImpl) GetWeeklySummary(ctx context.Context, employeeID string) (session.WeeklySummaryResponse, error) {
	now := s.clock.Now()
	weekEnd := now
	weekStart := now.AddDate(0, 0, -6)

	events, err := s.EventRepository.ListByEmployeeAndDateRange(
		ctx,
		employeeID,
		weekStart.Format("2006-01-02"),
		weekEnd.Format("2006-01-02"),
	)
	if err != nil {
		return session.WeeklySummaryResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	sessions := BuildSessions(events, now)
	summary := BuildWeeklySummary(employeeID, sessions, weekStart, weekEnd)

	return toWeeklyResponse(summary), nil
}

func (s *SessionServiceImpl) ExportCSV(ctx context.Context, filter session.SessionFilter) (string, error) {
	if err := filter.Validate(); err != nil {
		return "", err
	}

	events, err := s.listEvents(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("failed to list events: %w", err)
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list employees: %w", err)
	}

	byID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	sessions := BuildSessions(events, s.clock.Now())
	csv := RenderCSV(sessions, byID)

	filename := fmt.Sprintf("reports/attendance_%s_%s_%d.csv",
		filter.StartDate, filter.EndDate, s.clock.Now().Unix())
	if _, err := s.storage.Upload(ctx, strings.NewReader(csv), filename, "text/csv"); err != nil {
		// archive failures never block the download itself
		slog.Warn("failed to archive CSV export", "path", filename, "error", err)
	}

	return csv, nil
}

func (s *SessionServiceImpl) listEvents(ctx context.Context, filter session.SessionFilter) ([]event.PunchEvent, error) {
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		return s.EventRepository.ListByEmployeeAndDateRange(ctx, *filter.EmployeeID, filter.StartDate, filter.EndDate)
	}
	return s.EventRepository.ListByDateRange(ctx, filter.StartDate, filter.EndDate)
}

func toSessionResponse(ws session.WorkSession) session.WorkSessionResponse {
	cycles := make([]session.PunchCycleResponse, 0, len(ws.PunchCycles))
	for _, c := range ws.PunchCycles {
		cycles = append(cycles, session.PunchCycleResponse{
			PunchIn:    c.PunchIn.Format(time.RFC3339),
			PunchOut:   timeToStringPtr(c.PunchOut),
			IsLateIn:   c.IsLateIn,
			IsEarlyOut: c.IsEarlyOut,
		})
	}

	return session.WorkSessionResponse{
		EmployeeID:    ws.EmployeeID,
		Date:          ws.Date,
		PunchIn:       ws.PunchIn.Format(time.RFC3339),
		PunchOut:      timeToStringPtr(ws.PunchOut),
		BreakStart:    timeToStringPtr(ws.BreakStart),
		BreakEnd:      timeToStringPtr(ws.BreakEnd),
		TotalHours:    ws.TotalHours,
		BreakDuration: ws.BreakDuration,
		WorkingHours:  ws.WorkingHours,
		IsLateIn:      ws.IsLateIn,
		IsEarlyOut:    ws.IsEarlyOut,
		Status:        string(ws.Status),
		PunchCycles:   cycles,
	}
}

func toWeeklyResponse(summary session.WeeklySummary) session.WeeklySummaryResponse {
	breakdown := make([]session.DailySummaryResponse, 0, len(summary.DailyBreakdown))
	for _, day := range summary.DailyBreakdown {
		breakdown = append(breakdown, session.DailySummaryResponse{
			Date:       day.Date,
			DayName:    day.DayName,
			Hours:      day.Hours,
			BreakTime:  day.BreakTime,
			IsLateIn:   day.IsLateIn,
			IsEarlyOut: day.IsEarlyOut,
			PunchIn:    day.PunchIn.Format(time.RFC3339),
			PunchOut:   timeToStringPtr(day.PunchOut),
		})
	}

	return session.WeeklySummaryResponse{
		EmployeeID:         summary.EmployeeID,
		WeekStart:          summary.WeekStart,
		WeekEnd:            summary.WeekEnd,
		TotalHours:         summary.TotalHours,
		TotalBreakTime:     summary.TotalBreakTime,
		DaysWorked:         summary.DaysWorked,
		AverageHoursPerDay: summary.AverageHoursPerDay,
		DailyBreakdown:     breakdown,
	}
}

// timeToStringPtr safely converts a *time.Time to an RFC3339 string pointer.
func timeToStringPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
