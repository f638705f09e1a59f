package businesshours

import (
	"context"
)

type BusinessHoursService interface {
	Get(ctx context.Context) (BusinessHoursResponse, error)
	Update(ctx context.Context, req UpdateBusinessHoursRequest) (BusinessHoursResponse, error)
}
