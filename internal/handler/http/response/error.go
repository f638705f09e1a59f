package response

import (
	"errors"
	"net/http"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/auth"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/employee"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Punch event domain errors
	case errors.Is(err, event.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in")
	case errors.Is(err, event.ErrNotPunchedIn):
		Conflict(w, "Not punched in")
	case errors.Is(err, event.ErrAlreadyOnBreak):
		Conflict(w, "Already on break")
	case errors.Is(err, event.ErrNotOnBreak):
		Conflict(w, "Not on break")
	case errors.Is(err, event.ErrPunchOutWhileOnBreak):
		Conflict(w, "Cannot punch out while on break")
	case errors.Is(err, event.ErrUnknownEventType):
		BadRequest(w, "Unknown event type", nil)
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")

	// Business hours domain errors
	case errors.Is(err, businesshours.ErrInvalidInterval):
		BadRequest(w, "Shift end must be after shift start", nil)
	case errors.Is(err, businesshours.ErrNotConfigured):
		NotFound(w, "Business hours not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
