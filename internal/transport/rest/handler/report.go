package handler

import (
	"errors"
	"net/http"

	"pawbody/internal/service"
	"pawbody/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// ReportHandler handles AI narrative report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Trigger handles POST /v1/pets/{petId}/reports/ai
func (h *ReportHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Trigger(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		if errors.Is(err, service.ErrNoSurveyReports) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, report)
}

// Get handles GET /v1/pets/{petId}/reports/ai
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.Get(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		writePetError(w, err)
		return
	}
	if report == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "not_started"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}
