package trackinghandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"worktime/internal/domain/employee"
	"worktime/internal/domain/tracking"
	"worktime/internal/transport/http/api"
	"worktime/internal/transport/http/middleware"
)

type Handler struct {
	Svc *tracking.Service
}

func NewHandler(svc *tracking.Service) *Handler {
	return &Handler{Svc: svc}
}

// sessionResponse decorates the stored row with its derived state so clients
// never re-implement the open/closed decision.
type sessionResponse struct {
	tracking.Session
	State tracking.State `json:"state"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/time/start", middleware.RequireEmployee(h.handleStart))
	r.Post("/time/heartbeat", middleware.RequireEmployee(h.handleHeartbeat))
	r.Post("/time/stop", middleware.RequireEmployee(h.handleStop))
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	sess, err := h.Svc.Start(r.Context(), user.EmployeeID)
	if err != nil {
		writeTrackingError(w, r, err)
		return
	}
	api.Success(w, sessionResponse{Session: sess, State: sess.State()}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	sess, err := h.Svc.Ping(r.Context(), user.EmployeeID)
	if err != nil {
		writeTrackingError(w, r, err)
		return
	}
	api.Success(w, sessionResponse{Session: sess, State: sess.State()}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	sess, err := h.Svc.Stop(r.Context(), user.EmployeeID)
	if err != nil {
		writeTrackingError(w, r, err)
		return
	}
	api.Success(w, sessionResponse{Session: sess, State: sess.State()}, middleware.GetRequestID(r.Context()))
}

func writeTrackingError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, tracking.ErrNotRemote):
		api.Fail(w, http.StatusForbidden, "not_eligible", "not eligible for remote time tracking", requestID)
	case errors.Is(err, tracking.ErrHeartbeatOutOfOrder):
		api.Fail(w, http.StatusConflict, "heartbeat_out_of_order", "heartbeat older than last recorded activity", requestID)
	case errors.Is(err, tracking.ErrSessionClosed):
		api.Fail(w, http.StatusConflict, "session_closed", "work session already closed for today", requestID)
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "tracking_failed", "failed to record presence", requestID)
	}
}
