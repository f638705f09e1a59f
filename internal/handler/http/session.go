package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/session"
	"github.com/timeclock-app/timeclock-backend-go/internal/handler/http/response"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/sse"
)

// TopicAttendance mirrors the topic the event service publishes punches to.
const TopicAttendance = "attendance"

type SessionHandler interface {
	ListWorkSessions(w http.ResponseWriter, r *http.Request)
	GetCurrentSession(w http.ResponseWriter, r *http.Request)
	GetWorkStatus(w http.ResponseWriter, r *http.Request)
	GetWeeklyHours(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService session.SessionService
	jwtService     jwt.Service
	hub            *sse.Hub
}

func NewSessionHandler(sessionService session.SessionService, jwtService jwt.Service, hub *sse.Hub) SessionHandler {
	return &sessionHandlerImpl{
		sessionService: sessionService,
		jwtService:     jwtService,
		hub:            hub,
	}
}

func sessionFilterFromQuery(r *http.Request) session.SessionFilter {
	filter := session.SessionFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	return filter
}

// ListWorkSessions implements SessionHandler.
func (h *sessionHandlerImpl) ListWorkSessions(w http.ResponseWriter, r *http.Request) {
	filter := sessionFilterFromQuery(r)

	sessions, err := h.sessionService.GetWorkSessions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sessions)
}

// GetCurrentSession implements SessionHandler. Returns the employee's
// session for one date, defaulting to today; data is null when the
// employee has not punched in that day.
func (h *sessionHandlerImpl) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	current, err := h.sessionService.GetCurrentSession(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

// GetWorkStatus implements SessionHandler. Serves the kiosk, so it is
// public; on lookup failure it still returns the all-disabled default
// status so the terminal can render something safe.
func (h *sessionHandlerImpl) GetWorkStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	// the service hands back the safe default alongside any error, and the
	// kiosk prefers that to a 500
	status, _ := h.sessionService.GetWorkStatus(r.Context(), employeeID)
	response.Success(w, status)
}

// GetWeeklyHours implements SessionHandler.
func (h *sessionHandlerImpl) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	summary, err := h.sessionService.GetWeeklySummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportCSV implements SessionHandler. Streams the report as a download
// rather than wrapping it in the JSON envelope.
func (h *sessionHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filter := sessionFilterFromQuery(r)

	csv, err := h.sessionService.ExportCSV(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.csv", filter.StartDate, filter.EndDate)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

// Stream handles the SSE connection for the live punch feed.
func (h *sessionHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot set headers, so the token travels as a query param
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	if _, err := h.jwtService.ValidateStreamToken(tokenStr); err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(TopicAttendance)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
