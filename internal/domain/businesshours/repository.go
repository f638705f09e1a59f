package businesshours

import (
	"context"
)

type BusinessHoursRepository interface {
	// Get returns the single business-hours configuration row
	Get(ctx context.Context) (BusinessHours, error)

	// Save upserts the configuration
	Save(ctx context.Context, hours BusinessHours) (BusinessHours, error)
}
