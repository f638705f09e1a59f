package businesshours

import (
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/validator"
)

type BusinessHoursResponse struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakDuration int    `json:"break_duration"`
	LateThreshold int    `json:"late_threshold"`
	UpdatedAt     string `json:"updated_at"`
}

type UpdateBusinessHoursRequest struct {
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	BreakDuration *int    `json:"break_duration,omitempty"`
	LateThreshold *int    `json:"late_threshold,omitempty"`
}

func (r *UpdateBusinessHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	if r.StartTime != nil {
		var ok bool
		if start, ok = validator.IsValidClockTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}

	if r.EndTime != nil {
		var ok bool
		if end, ok = validator.IsValidClockTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	// Same-day shift only: when both bounds are supplied they must be
	// ordered here; a partial update is re-checked against the stored
	// config by the service.
	if r.StartTime != nil && r.EndTime != nil && !start.IsZero() && !end.IsZero() && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if r.BreakDuration != nil && *r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must not be negative",
		})
	}

	if r.LateThreshold != nil && *r.LateThreshold < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold",
			Message: "late_threshold must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
