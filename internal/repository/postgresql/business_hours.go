package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type businessHoursRepositoryImpl struct {
	db *database.DB
}

func NewBusinessHoursRepository(db *database.DB) businesshours.BusinessHoursRepository {
	return &businessHoursRepositoryImpl{db: db}
}

// Get implements businesshours.BusinessHoursRepository. The table holds at
// most one row.
func (r *businessHoursRepositoryImpl) Get(ctx context.Context) (businesshours.BusinessHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_time, end_time, break_duration, late_threshold, updated_at
		FROM business_hours
		LIMIT 1
	`

	var hours businesshours.BusinessHours
	err := q.QueryRow(ctx, query).Scan(
		&hours.ID,
		&hours.StartTime,
		&hours.EndTime,
		&hours.BreakDuration,
		&hours.LateThreshold,
		&hours.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return businesshours.BusinessHours{}, businesshours.ErrNotConfigured
	}
	if err != nil {
		return businesshours.BusinessHours{}, err
	}

	return hours, nil
}

// Save implements businesshours.BusinessHoursRepository.
func (r *businessHoursRepositoryImpl) Save(ctx context.Context, hours businesshours.BusinessHours) (businesshours.BusinessHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_hours (id, start_time, end_time, break_duration, late_threshold, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_duration = EXCLUDED.break_duration,
			late_threshold = EXCLUDED.late_threshold,
			updated_at = EXCLUDED.updated_at
		RETURNING id, start_time, end_time, break_duration, late_threshold, updated_at
	`

	var saved businesshours.BusinessHours
	err := q.QueryRow(ctx, query,
		hours.ID,
		hours.StartTime,
		hours.EndTime,
		hours.BreakDuration,
		hours.LateThreshold,
		hours.UpdatedAt,
	).Scan(
		&saved.ID,
		&saved.StartTime,
		&saved.EndTime,
		&saved.BreakDuration,
		&saved.LateThreshold,
		&saved.UpdatedAt,
	)
	if err != nil {
		return businesshours.BusinessHours{}, err
	}

	return saved, nil
}
