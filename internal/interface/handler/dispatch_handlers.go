package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"airportops-service/internal/domain/entity"
)

// ListCrew handles GET /api/crew
func (h *Handler) ListCrew(w http.ResponseWriter, r *http.Request) {
	crew, err := h.registry.ListCrew(r.Context())
	if err != nil {
		h.respondOpError(w, "list_crew", err)
		return
	}
	respondJSON(w, http.StatusOK, crew)
}

// GetCrew handles GET /api/crew/{id}
func (h *Handler) GetCrew(w http.ResponseWriter, r *http.Request) {
	crew, err := h.registry.GetCrew(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondOpError(w, "get_crew", err)
		return
	}
	respondJSON(w, http.StatusOK, crew)
}

// CreateCrew handles POST /api/crew
func (h *Handler) CreateCrew(w http.ResponseWriter, r *http.Request) {
	var req entity.CreateCrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	crew, err := h.dispatch.CreateCrew(r.Context(), &req)
	if err != nil {
		h.respondOpError(w, "create_crew", err)
		return
	}
	respondJSON(w, http.StatusCreated, crew)
}

// UpdateCrewStatus handles PUT /api/crew/{id}/status
func (h *Handler) UpdateCrewStatus(w http.ResponseWriter, r *http.Request) {
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

	if err := h.registry.SetCrewStatus(r.Context(), mux.Vars(r)["id"], req.Status); err != nil {
		h.respondOpError(w, "update_crew_status", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// AssignCrewToTask handles POST /api/crew/{id}/assign-task
func (h *Handler) AssignCrewToTask(w http.ResponseWriter, r *http.Request) {
	var details entity.TaskDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := entity.AssignCrewRequest{
		CrewID: mux.Vars(r)["id"],
		Task:   details,
	}
	task, err := h.dispatch.AssignCrewToTask(r.Context(), &req)
	if err != nil {
		h.respondOpError(w, "assign_crew_to_task", err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// DeleteCrew handles DELETE /api/crew/{id}
func (h *Handler) DeleteCrew(w http.ResponseWriter, r *http.Request) {
	crewID := mux.Vars(r)["id"]

	if err := h.dispatch.DeleteCrew(r.Context(), crewID); err != nil {
		h.respondOpError(w, "delete_crew", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"crewId": crewID, "deleted": "true"})
}

// ListTasks handles GET /api/ground-services
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.dispatch.ListTasks(r.Context())
	if err != nil {
		h.respondOpError(w, "list_tasks", err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// GetTask handles GET /api/ground-services/{id}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.dispatch.GetTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondOpError(w, "get_task", err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// CreateTask handles POST /api/ground-services
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var details entity.TaskDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.dispatch.CreateTask(r.Context(), &details)
	if err != nil {
		h.respondOpError(w, "create_task", err)
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

// CompleteTask handles PUT /api/ground-services/{id}/complete
func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.dispatch.CompleteTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondOpError(w, "complete_task", err)
		return
	}

	if h.metrics != nil {
		h.metrics.TasksCompleted.Inc()
	}
	respondJSON(w, http.StatusOK, task)
}
