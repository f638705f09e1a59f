package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
	sessionservice "github.com/timeclock-app/timeclock-backend-go/internal/service/session"
)

var autoCloseNote = "auto-closed at shift end"

// AutoCloseOpenDays implements event.EventService. It scans yesterday's
// events and appends a closing punch-out for anyone still punched in, at
// shift end or at the last recorded event if that came later. The closing
// event goes straight to the repository: the admission table would reject a
// punch-out while a break is still open, and a stale break must not keep a
// day open forever.
func (s *EventServiceImpl) AutoCloseOpenDays(ctx context.Context) (int, error) {
	yesterday := s.clock.Now().AddDate(0, 0, -1)
	date := yesterday.Format("2006-01-02")

	events, err := s.EventRepository.ListByDateRange(ctx, date, date)
	if err != nil {
		return 0, fmt.Errorf("failed to list events: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	hours, err := s.BusinessHoursRepository.Get(ctx)
	if err != nil && !errors.Is(err, businesshours.ErrNotConfigured) {
		return 0, fmt.Errorf("failed to load business hours: %w", err)
	}
	if errors.Is(err, businesshours.ErrNotConfigured) {
		hours = businesshours.BusinessHours{EndTime: "17:00"}
	}

	byEmployee := make(map[string][]event.PunchEvent)
	var order []string
	for _, ev := range events {
		if _, seen := byEmployee[ev.EmployeeID]; !seen {
			order = append(order, ev.EmployeeID)
		}
		byEmployee[ev.EmployeeID] = append(byEmployee[ev.EmployeeID], ev)
	}

	closed := 0
	for _, employeeID := range order {
		days := byEmployee[employeeID]
		status := sessionservice.EvaluateStatus(days)
		if status.CurrentStatus != session.CurrentWorking && status.CurrentStatus != session.CurrentOnBreak {
			continue
		}

		closeAt := hours.EndOn(yesterday)
		if last := status.LastAction; last != nil && last.Timestamp.After(closeAt) {
			closeAt = last.Timestamp
		}

		_, err := s.EventRepository.Create(ctx, event.PunchEvent{
			ID:         uuid.New().String(),
			EmployeeID: employeeID,
			Type:       event.TypePunchOut,
			Timestamp:  closeAt,
			Notes:      &autoCloseNote,
			CreatedAt:  s.clock.Now(),
		})
		if err != nil {
			return closed, fmt.Errorf("failed to close day for employee %s: %w", employeeID, err)
		}

		slog.Info("auto-closed open day",
			"employee_id", employeeID,
			"date", date,
			"closed_at", closeAt,
		)
		closed++
	}

	return closed, nil
}
