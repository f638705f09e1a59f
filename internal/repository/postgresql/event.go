package postgresql

import (
	"context"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// Create implements event.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, ev event.PunchEvent) (event.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (id, employee_id, type, timestamp, is_late, is_early, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, type, timestamp, is_late, is_early, notes, created_at
	`

	var created event.PunchEvent
	err := q.QueryRow(ctx, query,
		ev.ID,
		ev.EmployeeID,
		ev.Type,
		ev.Timestamp,
		ev.IsLate,
		ev.IsEarly,
		ev.Notes,
		ev.CreatedAt,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Type,
		&created.Timestamp,
		&created.IsLate,
		&created.IsEarly,
		&created.Notes,
		&created.CreatedAt,
	)
	if err != nil {
		return event.PunchEvent{}, err
	}

	return created, nil
}

// ListByEmployeeAndDate implements event.EventRepository.
func (r *eventRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]event.PunchEvent, error) {
	query := `
		SELECT id, employee_id, type, timestamp, is_late, is_early, notes, created_at
		FROM punch_events
		WHERE employee_id = $1 AND DATE(timestamp) = $2
		ORDER BY timestamp ASC
	`
	return r.list(ctx, query, employeeID, date)
}

// ListByDateRange implements event.EventRepository.
func (r *eventRepositoryImpl) ListByDateRange(ctx context.Context, startDate, endDate string) ([]event.PunchEvent, error) {
	query := `
		SELECT id, employee_id, type, timestamp, is_late, is_early, notes, created_at
		FROM punch_events
		WHERE DATE(timestamp) BETWEEN $1 AND $2
		ORDER BY timestamp ASC
	`
	return r.list(ctx, query, startDate, endDate)
}

// ListByEmployeeAndDateRange implements event.EventRepository.
func (r *eventRepositoryImpl) ListByEmployeeAndDateRange(ctx context.Context, employeeID, startDate, endDate string) ([]event.PunchEvent, error) {
	query := `
		SELECT id, employee_id, type, timestamp, is_late, is_early, notes, created_at
		FROM punch_events
		WHERE employee_id = $1 AND DATE(timestamp) BETWEEN $2 AND $3
		ORDER BY timestamp ASC
	`
	return r.list(ctx, query, employeeID, startDate, endDate)
}

func (r *eventRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]event.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []event.PunchEvent
	for rows.Next() {
		var ev event.PunchEvent
		if err := rows.Scan(
			&ev.ID,
			&ev.EmployeeID,
			&ev.Type,
			&ev.Timestamp,
			&ev.IsLate,
			&ev.IsEarly,
			&ev.Notes,
			&ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}
