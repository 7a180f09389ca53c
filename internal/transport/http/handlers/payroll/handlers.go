package payrollhandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"worktime/internal/domain/payroll"
	"worktime/internal/transport/http/api"
	"worktime/internal/transport/http/middleware"
)

type Handler struct {
	Svc        *payroll.Service
	PayslipDir string
}

func NewHandler(svc *payroll.Service, payslipDir string) *Handler {
	return &Handler{Svc: svc, PayslipDir: payslipDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/periods/{period}/generate", middleware.RequireOperator(h.handleGeneratePeriod))
		r.Get("/items", middleware.RequireOperator(h.handleListItems))
		r.Get("/items/{itemID}/payslip", middleware.RequireOperator(h.handleDownloadPayslip))
	})
}

func (h *Handler) handleGeneratePeriod(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")
	report, err := h.Svc.GeneratePeriod(r.Context(), period)
	if err != nil {
		writePayrollError(w, r, err)
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if _, _, err := payroll.ParsePeriod(period); err != nil {
		writePayrollError(w, r, err)
		return
	}

	items, err := h.Svc.ListItems(r.Context(), period)
	if err != nil {
		writePayrollError(w, r, err)
		return
	}
	if items == nil {
		items = []payroll.Item{}
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	filePath, err := h.Svc.GeneratePayslipPDF(r.Context(), itemID, h.PayslipDir)
	if err != nil {
		writePayrollError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=payslip-"+itemID+".pdf")
	http.ServeFile(w, r, filePath)
}

func writePayrollError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, payroll.ErrInvalidPeriodKey):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "period key must be YYYY-MM", requestID)
	case errors.Is(err, payroll.ErrItemNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payroll item not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "payroll operation failed", requestID)
	}
}
