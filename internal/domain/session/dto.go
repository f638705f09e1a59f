package session

import (
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// WORK SESSION DTOs
// ========================================

type PunchCycleResponse struct {
	PunchIn    string  `json:"punch_in"`
	PunchOut   *string `json:"punch_out,omitempty"`
	IsLateIn   bool    `json:"is_late_in"`
	IsEarlyOut bool    `json:"is_early_out"`
}

type WorkSessionResponse struct {
	EmployeeID    string               `json:"employee_id"`
	Date          string               `json:"date"`
	PunchIn       string               `json:"punch_in"`
	PunchOut      *string              `json:"punch_out,omitempty"`
	BreakStart    *string              `json:"break_start,omitempty"`
	BreakEnd      *string              `json:"break_end,omitempty"`
	TotalHours    float64              `json:"total_hours"`
	BreakDuration float64              `json:"break_duration"`
	WorkingHours  float64              `json:"working_hours"`
	IsLateIn      bool                 `json:"is_late_in"`
	IsEarlyOut    bool                 `json:"is_early_out"`
	Status        string               `json:"status"`
	PunchCycles   []PunchCycleResponse `json:"punch_cycles"`
}

type WorkStatusResponse struct {
	CanPunchIn    bool                 `json:"can_punch_in"`
	CanPunchOut   bool                 `json:"can_punch_out"`
	CanStartBreak bool                 `json:"can_start_break"`
	CanEndBreak   bool                 `json:"can_end_break"`
	CurrentStatus string               `json:"current_status"`
	LastAction    *event.EventResponse `json:"last_action,omitempty"`
}

// DefaultWorkStatus is the safe fallback when the event source fails:
// every action disabled except the conservative state label.
func DefaultWorkStatus() WorkStatusResponse {
	return WorkStatusResponse{
		CanPunchIn:    false,
		CanPunchOut:   false,
		CanStartBreak: false,
		CanEndBreak:   false,
		CurrentStatus: string(CurrentNotStarted),
	}
}

type DailySummaryResponse struct {
	Date       string  `json:"date"`
	DayName    string  `json:"day_name"`
	Hours      float64 `json:"hours"`
	BreakTime  float64 `json:"break_time"`
	IsLateIn   bool    `json:"is_late_in"`
	IsEarlyOut bool    `json:"is_early_out"`
	PunchIn    string  `json:"punch_in"`
	PunchOut   *string `json:"punch_out,omitempty"`
}

type WeeklySummaryResponse struct {
	EmployeeID         string                 `json:"employee_id"`
	WeekStart          string                 `json:"week_start"`
	WeekEnd            string                 `json:"week_end"`
	TotalHours         float64                `json:"total_hours"`
	TotalBreakTime     float64                `json:"total_break_time"`
	DaysWorked         int                    `json:"days_worked"`
	AverageHoursPerDay float64                `json:"average_hours_per_day"`
	DailyBreakdown     []DailySummaryResponse `json:"daily_breakdown"`
}

type SessionFilter struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
