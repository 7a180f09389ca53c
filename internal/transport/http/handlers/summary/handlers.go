package summaryhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"worktime/internal/domain/employee"
	"worktime/internal/domain/policy"
	"worktime/internal/domain/summary"
	"worktime/internal/transport/http/api"
	"worktime/internal/transport/http/middleware"
	"worktime/internal/transport/http/shared"
)

type Handler struct {
	Svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{Svc: svc}
}

type backfillRequest struct {
	EmployeeID string `json:"employeeId"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/time/today", middleware.RequireEmployee(h.handleToday))
	r.Get("/time/summaries", middleware.RequireEmployee(h.handleList))
	r.Post("/time/backfill", middleware.RequireOperator(h.handleBackfill))
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	sum, err := h.Svc.Today(r.Context(), user.EmployeeID)
	if err != nil {
		writeSummaryError(w, r, err)
		return
	}
	api.Success(w, sum, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	from, to, err := parseRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	summaries, err := h.Svc.ListRange(r.Context(), user.EmployeeID, from, to)
	if err != nil {
		writeSummaryError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []summary.Summary{}
	}
	api.Success(w, summaries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBackfill(w http.ResponseWriter, r *http.Request) {
	var payload backfillRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee id required", middleware.GetRequestID(r.Context()))
		return
	}
	from, to, err := parseRange(payload.From, payload.To)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	report, err := h.Svc.Backfill(r.Context(), payload.EmployeeID, from, to)
	if err != nil {
		writeSummaryError(w, r, err)
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func parseRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from, err := shared.ParseDate(fromRaw)
	if err != nil || from.IsZero() {
		return time.Time{}, time.Time{}, errors.New("invalid from date")
	}
	to, err := shared.ParseDate(toRaw)
	if err != nil || to.IsZero() {
		return time.Time{}, time.Time{}, errors.New("invalid to date")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to before from")
	}
	return from, to, nil
}

func writeSummaryError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, employee.ErrNoActiveCompensation):
		api.Fail(w, http.StatusUnprocessableEntity, "no_active_compensation", "no active compensation record for employee", requestID)
	case errors.Is(err, policy.ErrUnknownClassification):
		api.Fail(w, http.StatusUnprocessableEntity, "unknown_classification", "no required-time rule for employee classification", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "summary_failed", "failed to compute work summary", requestID)
	}
}
