package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pawbody/internal/model"
	"pawbody/internal/service"
	"pawbody/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// PetHandler handles pet profile endpoints
type PetHandler struct {
	petSvc *service.PetService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petSvc *service.PetService) *PetHandler {
	return &PetHandler{petSvc: petSvc}
}

// Create handles POST /v1/pets
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterPetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pet, err := h.petSvc.Register(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, pet)
}

// List handles GET /v1/pets
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petSvc.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pets": pets})
}

// Get handles GET /v1/pets/{petId}
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petSvc.Get(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}

// Update handles PUT /v1/pets/{petId}
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pet, err := h.petSvc.Update(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"], &req)
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}

// Delete handles DELETE /v1/pets/{petId}
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.petSvc.Delete(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"]); err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AddWeight handles POST /v1/pets/{petId}/weights
func (h *PetHandler) AddWeight(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kg float64 `json:"kg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Kg <= 0 {
		writeError(w, http.StatusBadRequest, "kg must be a positive number")
		return
	}

	pet, err := h.petSvc.AddWeight(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"], req.Kg)
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pet.WeightRecords)
}

// ListWeights handles GET /v1/pets/{petId}/weights
func (h *PetHandler) ListWeights(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petSvc.Get(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet.WeightRecords)
}

// AddNote handles POST /v1/pets/{petId}/notes
func (h *PetHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	pet, err := h.petSvc.AddNote(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"], req.Text)
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pet.HealthNotes)
}

// ListNotes handles GET /v1/pets/{petId}/notes
func (h *PetHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petSvc.Get(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet.HealthNotes)
}

// AddHeatCycle handles POST /v1/pets/{petId}/heats
func (h *PetHandler) AddHeatCycle(w http.ResponseWriter, r *http.Request) {
	var cycle model.HeatCycle
	if err := json.NewDecoder(r.Body).Decode(&cycle); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pet, err := h.petSvc.AddHeatCycle(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"], cycle)
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pet.HeatCycles)
}

// ListHeatCycles handles GET /v1/pets/{petId}/heats
func (h *PetHandler) ListHeatCycles(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petSvc.Get(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet.HeatCycles)
}

// ToggleMission handles POST /v1/pets/{petId}/missions/{index}/toggle
func (h *PetHandler) ToggleMission(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mission index")
		return
	}

	pet, err := h.petSvc.ToggleMission(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"], index)
	if err != nil {
		if errors.Is(err, service.ErrMissionOutOfRange) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet.DailyMission)
}

// RerollMissions handles POST /v1/pets/{petId}/missions/reroll
func (h *PetHandler) RerollMissions(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petSvc.RerollMissions(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["petId"])
	if err != nil {
		if errors.Is(err, service.ErrRerollUsed) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writePetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet.DailyMission)
}

func writePetError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrPetNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
