package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"airportops-service/internal/domain/entity"
)

// VerifyPassenger handles POST /api/checkin/verify
func (h *Handler) VerifyPassenger(w http.ResponseWriter, r *http.Request) {
	var req entity.VerifyPassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.checkin.VerifyPassenger(r.Context(), &req)
	if err != nil {
		h.respondOpError(w, "verify_passenger", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// CheckIn handles POST /api/checkin
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.handleCheckIn(w, r, false)
}

// ManualCheckIn handles POST /api/checkin/manual
func (h *Handler) ManualCheckIn(w http.ResponseWriter, r *http.Request) {
	h.handleCheckIn(w, r, true)
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request, manual bool) {
	operation := "checkin"
	if manual {
		operation = "manual_checkin"
	}

	var req entity.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	started := time.Now()
	var view *entity.BoardingPassView
	var err error
	if manual {
		view, err = h.checkin.ManualCheckIn(r.Context(), &req)
	} else {
		view, err = h.checkin.CheckIn(r.Context(), &req)
	}
	if err != nil {
		h.respondOpError(w, operation, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CheckInsCompleted.Inc()
		h.metrics.BoardingPassesIssued.Inc()
		h.metrics.CheckInDuration.Observe(time.Since(started).Seconds())
	}
	respondJSON(w, http.StatusOK, view)
}

// GenerateBoardingPass handles POST /api/boarding-pass/generate
func (h *Handler) GenerateBoardingPass(w http.ResponseWriter, r *http.Request) {
	var req entity.GeneratePassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.checkin.GenerateBoardingPass(r.Context(), req.BookingReference, req.ForceRegenerate)
	if err != nil {
		h.respondOpError(w, "generate_boarding_pass", err)
		return
	}

	if h.metrics != nil && req.ForceRegenerate {
		h.metrics.BoardingPassesIssued.Inc()
	}
	respondJSON(w, http.StatusOK, view)
}

// CancelBooking handles POST /api/bookings/{id}/cancel
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	if err := h.checkin.CancelBooking(r.Context(), bookingID); err != nil {
		h.respondOpError(w, "cancel_booking", err)
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCancelled.Inc()
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"bookingId": bookingID,
		"status":    entity.BookingCancelled,
	})
}
