package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pawbody/internal/service"
	"pawbody/internal/survey"
	"pawbody/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// SurveyHandler handles the survey flow endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// Start handles POST /v1/pets/{petId}/surveys
func (h *SurveyHandler) Start(w http.ResponseWriter, r *http.Request) {
	resp, err := h.surveySvc.Start(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFreeReports):
			writeError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, survey.ErrEmptyQuestionPool):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writePetError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Answer handles POST /v1/pets/{petId}/surveys/answers
func (h *SurveyHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == "" {
		writeError(w, http.StatusBadRequest, "value is required")
		return
	}

	resp, err := h.surveySvc.Answer(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"], req.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSurvey):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidOption):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writePetError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Complete handles POST /v1/pets/{petId}/surveys/complete
func (h *SurveyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	report, err := h.surveySvc.Complete(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		var incomplete *survey.IncompleteSurveyError
		switch {
		case errors.Is(err, service.ErrNoActiveSurvey):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &incomplete):
			// Send the client back to the first unanswered question.
			writeJSON(w, http.StatusConflict, map[string]interface{}{
				"error":   "survey incomplete",
				"missing": incomplete.Missing,
			})
		default:
			writePetError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Latest handles GET /v1/pets/{petId}/reports/latest
func (h *SurveyHandler) Latest(w http.ResponseWriter, r *http.Request) {
	report, err := h.surveySvc.Latest(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		writePetError(w, err)
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "no reports yet")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
