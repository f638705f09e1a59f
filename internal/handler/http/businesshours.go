package http

import (
	"encoding/json"
	"net/http"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/businesshours"
	"github.com/timeclock-app/timeclock-backend-go/internal/handler/http/response"
)

type BusinessHoursHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type businessHoursHandlerImpl struct {
	hoursService businesshours.BusinessHoursService
}

func NewBusinessHoursHandler(hoursService businesshours.BusinessHoursService) BusinessHoursHandler {
	return &businessHoursHandlerImpl{
		hoursService: hoursService,
	}
}

// Get implements BusinessHoursHandler. Public: the kiosk shows the shift
// window next to the clock.
func (h *businessHoursHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	hours, err := h.hoursService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

// Update implements BusinessHoursHandler.
func (h *businessHoursHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req businesshours.UpdateBusinessHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.hoursService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business hours updated", updated)
}
