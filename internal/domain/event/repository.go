package event

import (
	"context"
)

type EventRepository interface {
	// Create persists a new punch event
	Create(ctx context.Context, ev PunchEvent) (PunchEvent, error)

	// ListByEmployeeAndDate returns an employee's events for one calendar
	// date (YYYY-MM-DD), ordered by timestamp ascending
	ListByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]PunchEvent, error)

	// ListByDateRange returns all events whose calendar date falls in
	// [startDate, endDate] inclusive, ordered by timestamp ascending
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]PunchEvent, error)

	// ListByEmployeeAndDateRange is ListByDateRange filtered to one employee
	ListByEmployeeAndDateRange(ctx context.Context, employeeID, startDate, endDate string) ([]PunchEvent, error)
}
