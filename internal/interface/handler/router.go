package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Aircraft
	api.HandleFunc("/aircraft", h.ListAircraft).Methods(http.MethodGet)
	api.HandleFunc("/aircraft/assign", h.AssignAircraft).Methods(http.MethodPost)
	api.HandleFunc("/aircraft/swap", h.SwapAircraft).Methods(http.MethodPost)
	api.HandleFunc("/aircraft/{id}", h.GetAircraft).Methods(http.MethodGet)
	api.HandleFunc("/aircraft/{id}/status", h.UpdateAircraftStatus).Methods(http.MethodPut)

	// Gates
	api.HandleFunc("/gates", h.ListGates).Methods(http.MethodGet)
	api.HandleFunc("/gates/assign", h.AssignGate).Methods(http.MethodPost)
	api.HandleFunc("/gates/auto-assign", h.AutoAssignGates).Methods(http.MethodPost)
	api.HandleFunc("/gates/{id}", h.GetGate).Methods(http.MethodGet)
	api.HandleFunc("/gates/{id}/status", h.UpdateGateStatus).Methods(http.MethodPut)

	// Check-in and boarding passes
	api.HandleFunc("/checkin/verify", h.VerifyPassenger).Methods(http.MethodPost)
	api.HandleFunc("/checkin/manual", h.ManualCheckIn).Methods(http.MethodPost)
	api.HandleFunc("/checkin", h.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/boarding-pass/generate", h.GenerateBoardingPass).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/cancel", h.CancelBooking).Methods(http.MethodPost)

	// Crew
	api.HandleFunc("/crew", h.ListCrew).Methods(http.MethodGet)
	api.HandleFunc("/crew", h.CreateCrew).Methods(http.MethodPost)
	api.HandleFunc("/crew/{id}", h.GetCrew).Methods(http.MethodGet)
	api.HandleFunc("/crew/{id}", h.DeleteCrew).Methods(http.MethodDelete)
	api.HandleFunc("/crew/{id}/status", h.UpdateCrewStatus).Methods(http.MethodPut)
	api.HandleFunc("/crew/{id}/assign-task", h.AssignCrewToTask).Methods(http.MethodPost)

	// Ground services
	api.HandleFunc("/ground-services", h.ListTasks).Methods(http.MethodGet)
	api.HandleFunc("/ground-services", h.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/ground-services/{id}", h.GetTask).Methods(http.MethodGet)
	api.HandleFunc("/ground-services/{id}/complete", h.CompleteTask).Methods(http.MethodPut)

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
