package event

import (
	"encoding/json"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH EVENT DTOs
// ========================================

// RecordEventRequest is the canonical ingestion shape for a punch action.
// The wire format historically carried both camelCase and snake_case field
// names; normalization happens once here, in UnmarshalJSON, and nothing
// past this boundary sees the alternate spellings.
type RecordEventRequest struct {
	EmployeeID string
	Type       string
	Timestamp  *string // RFC3339; defaults to the server clock when absent
	Notes      *string
}

type recordEventWire struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeIDAlt string  `json:"employeeId"`
	Type          string  `json:"type"`
	Timestamp     *string `json:"timestamp"`
	Notes         *string `json:"notes"`
}

func (r *RecordEventRequest) UnmarshalJSON(data []byte) error {
	var w recordEventWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	r.EmployeeID = w.EmployeeID
	if r.EmployeeID == "" {
		r.EmployeeID = w.EmployeeIDAlt
	}
	r.Type = w.Type
	r.Timestamp = w.Timestamp
	r.Notes = w.Notes
	return nil
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: punch_in, punch_out, break_start, break_end",
		})
	}

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(*r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	Timestamp  string  `json:"timestamp"`
	IsLate     bool    `json:"is_late"`
	IsEarly    bool    `json:"is_early"`
	Notes      *string `json:"notes,omitempty"`
}

func ToResponse(e PunchEvent) EventResponse {
	return EventResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Type:       string(e.Type),
		Timestamp:  e.Timestamp.Format(time.RFC3339),
		IsLate:     e.IsLate,
		IsEarly:    e.IsEarly,
		Notes:      e.Notes,
	}
}

type EventFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
