package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"airportops-service/internal/domain/entity"
)

// ListAircraft handles GET /api/aircraft
func (h *Handler) ListAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.registry.ListAircraft(r.Context())
	if err != nil {
		h.respondOpError(w, "list_aircraft", err)
		return
	}
	respondJSON(w, http.StatusOK, aircraft)
}

// GetAircraft handles GET /api/aircraft/{id}
func (h *Handler) GetAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.registry.GetAircraft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondOpError(w, "get_aircraft", err)
		return
	}
	respondJSON(w, http.StatusOK, aircraft)
}

// UpdateAircraftStatus handles PUT /api/aircraft/{id}/status
func (h *Handler) UpdateAircraftStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		respondError(w, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.registry.SetAircraftStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		h.respondOpError(w, "update_aircraft_status", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// AssignAircraft handles POST /api/aircraft/assign
func (h *Handler) AssignAircraft(w http.ResponseWriter, r *http.Request) {
	var req entity.AssignAircraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.assignments.AssignAircraft(r.Context(), &req); err != nil {
		h.respondOpError(w, "assign_aircraft", err)
		return
	}

	if h.metrics != nil {
		h.metrics.AircraftAssignments.Inc()
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"aircraftId": req.AircraftID,
		"flightCode": req.FlightCode,
	})
}

// SwapAircraft handles POST /api/aircraft/swap
func (h *Handler) SwapAircraft(w http.ResponseWriter, r *http.Request) {
	var req entity.SwapAircraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.assignments.SwapAircraft(r.Context(), &req); err != nil {
		h.respondOpError(w, "swap_aircraft", err)
		return
	}

	if h.metrics != nil {
		h.metrics.AircraftSwaps.Inc()
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"currentId":     req.CurrentID,
		"replacementId": req.ReplacementID,
	})
}

// ListGates handles GET /api/gates
func (h *Handler) ListGates(w http.ResponseWriter, r *http.Request) {
	gates, err := h.registry.ListGates(r.Context())
	if err != nil {
		h.respondOpError(w, "list_gates", err)
		return
	}
	respondJSON(w, http.StatusOK, gates)
}

// GetGate handles GET /api/gates/{id}
func (h *Handler) GetGate(w http.ResponseWriter, r *http.Request) {
	gate, err := h.registry.GetGate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondOpError(w, "get_gate", err)
		return
	}
	respondJSON(w, http.StatusOK, gate)
}

// AssignGate handles POST /api/gates/assign
func (h *Handler) AssignGate(w http.ResponseWriter, r *http.Request) {
	var req entity.AssignGateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.assignments.AssignGate(r.Context(), &req); err != nil {
		if h.metrics != nil && entity.IsKind(err, entity.KindConflict) {
			h.metrics.GateConflicts.Inc()
		}
		h.respondOpError(w, "assign_gate", err)
		return
	}

	if h.metrics != nil {
		h.metrics.GateAssignments.Inc()
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"gateId":     req.GateID,
		"flightCode": req.FlightCode,
	})
}

// AutoAssignGates handles POST /api/gates/auto-assign
func (h *Handler) AutoAssignGates(w http.ResponseWriter, r *http.Request) {
	var req entity.AutoAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.assignments.AutoAssignGates(r.Context(), req.FlightCodes)
	if err != nil {
		h.respondOpError(w, "auto_assign_gates", err)
		return
	}

	if h.metrics != nil {
		for range result.Assignments {
			h.metrics.GateAssignments.Inc()
		}
	}
	respondJSON(w, http.StatusOK, result)
}

// UpdateGateStatus handles PUT /api/gates/{id}/status
func (h *Handler) UpdateGateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		respondError(w, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.assignments.UpdateGateStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		h.respondOpError(w, "update_gate_status", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
