package session

import (
	"context"
)

// SessionService derives work sessions, live status, weekly rollups, and
// CSV exports from the punch event log. Derivation is pure; the service
// only adds event fetching and the injected clock.
type SessionService interface {
	// GetWorkSessions reconstructs sessions for a date range, most recent
	// day first
	GetWorkSessions(ctx context.Context, filter SessionFilter) ([]WorkSessionResponse, error)

	// GetCurrentSession reconstructs one employee's session for a single
	// date; nil when the employee has no punch-ins that day
	GetCurrentSession(ctx context.Context, employeeID, date string) (*WorkSessionResponse, error)

	// GetWorkStatus evaluates which punch actions are legal right now.
	// On event-source failure it returns the all-disabled default alongside
	// the error.
	GetWorkStatus(ctx context.Context, employeeID string) (WorkStatusResponse, error)

	// GetWeeklySummary aggregates the trailing 7 calendar days ending today
	GetWeeklySummary(ctx context.Context, employeeID string) (WeeklySummaryResponse, error)

	// ExportCSV renders sessions in a range as CSV text and archives a copy
	ExportCSV(ctx context.Context, filter SessionFilter) (string, error)
}
