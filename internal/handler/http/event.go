package http

import (
	"encoding/json"
	"net/http"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/event"
	"github.com/timeclock-app/timeclock-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{
		eventService: eventService,
	}
}

// Record implements EventHandler. This is the kiosk punch endpoint; it is
// deliberately unauthenticated so a shared terminal can record punches.
func (h *eventHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req event.RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.eventService.RecordEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event recorded", created)
}

// List implements EventHandler.
func (h *eventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := event.EventFilter{}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	events, err := h.eventService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// GetToday implements EventHandler.
func (h *eventHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	events, err := h.eventService.GetTodayEvents(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
