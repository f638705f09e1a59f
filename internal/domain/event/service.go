package event

import (
	"context"
)

// EventService defines business logic for recording and reading punch events
type EventService interface {
	// RecordEvent validates and persists a punch action. The action must be
	// legal under the current work status or a domain error is returned.
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// ListEvents retrieves raw events with filters (admin)
	ListEvents(ctx context.Context, filter EventFilter) ([]EventResponse, error)

	// GetTodayEvents retrieves one employee's events for the current day
	GetTodayEvents(ctx context.Context, employeeID string) ([]EventResponse, error)

	// AutoCloseOpenDays appends a punch-out at shift end for every employee
	// who forgot to punch out the previous day. Returns the number of days
	// closed. Run by the scheduler shortly after midnight.
	AutoCloseOpenDays(ctx context.Context) (int, error)
}
