package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"airportops-service/internal/domain/entity"
	"airportops-service/pkg/logger"
	"airportops-service/pkg/metrics"
)

// RegistryService exposes current resource state and plain status writes.
type RegistryService interface {
	GetAircraft(ctx context.Context, aircraftID string) (*entity.Aircraft, error)
	SetAircraftStatus(ctx context.Context, aircraftID, status string) error
	ListAircraft(ctx context.Context) ([]*entity.Aircraft, error)
	GetGate(ctx context.Context, gateID string) (*entity.Gate, error)
	ListGates(ctx context.Context) ([]*entity.Gate, error)
	GetCrew(ctx context.Context, crewID string) (*entity.CrewMember, error)
	SetCrewStatus(ctx context.Context, crewID, status string) error
	ListCrew(ctx context.Context) ([]*entity.CrewMember, error)
}

// AssignmentService exposes aircraft and gate assignment operations.
type AssignmentService interface {
	AssignAircraft(ctx context.Context, req *entity.AssignAircraftRequest) error
	SwapAircraft(ctx context.Context, req *entity.SwapAircraftRequest) error
	AssignGate(ctx context.Context, req *entity.AssignGateRequest) error
	UpdateGateStatus(ctx context.Context, gateID, status string) error
	AutoAssignGates(ctx context.Context, flightCodes []string) (*entity.AutoAssignResult, error)
}

// CheckInService exposes passenger check-in and boarding-pass operations.
type CheckInService interface {
	VerifyPassenger(ctx context.Context, req *entity.VerifyPassengerRequest) (*entity.FlightSummary, error)
	CheckIn(ctx context.Context, req *entity.CheckInRequest) (*entity.BoardingPassView, error)
	ManualCheckIn(ctx context.Context, req *entity.CheckInRequest) (*entity.BoardingPassView, error)
	GenerateBoardingPass(ctx context.Context, bookingReference string, forceRegenerate bool) (*entity.BoardingPassView, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

// DispatchService exposes ground crew and task operations.
type DispatchService interface {
	AssignCrewToTask(ctx context.Context, req *entity.AssignCrewRequest) (*entity.GroundServiceTask, error)
	CompleteTask(ctx context.Context, serviceID string) (*entity.GroundServiceTask, error)
	CreateCrew(ctx context.Context, req *entity.CreateCrewRequest) (*entity.CrewMember, error)
	DeleteCrew(ctx context.Context, crewID string) error
	CreateTask(ctx context.Context, details *entity.TaskDetails) (*entity.GroundServiceTask, error)
	ListTasks(ctx context.Context) ([]*entity.GroundServiceTask, error)
	GetTask(ctx context.Context, serviceID string) (*entity.GroundServiceTask, error)
}

// Handler contains the HTTP handlers for the operations API.
type Handler struct {
	registry    RegistryService
	assignments AssignmentService
	checkin     CheckInService
	dispatch    DispatchService
	metrics     *metrics.Metrics
	logger      logger.Logger
	version     string
}

// NewHandler creates a new Handler instance. Metrics may be nil in tests.
func NewHandler(
	registry RegistryService,
	assignments AssignmentService,
	checkin CheckInService,
	dispatch DispatchService,
	m *metrics.Metrics,
	logger logger.Logger,
	version string,
) *Handler {
	return &Handler{
		registry:    registry,
		assignments: assignments,
		checkin:     checkin,
		dispatch:    dispatch,
		metrics:     m,
		logger:      logger,
		version:     version,
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func statusForKind(kind entity.ErrorKind) int {
	switch kind {
	case entity.KindNotFound:
		return http.StatusNotFound
	case entity.KindInvalidState, entity.KindConflict:
		return http.StatusConflict
	case entity.KindPolicyViolation:
		return http.StatusUnprocessableEntity
	case entity.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

// respondOpError maps a structured error onto an HTTP status and counts it
// against the operation.
func (h *Handler) respondOpError(w http.ResponseWriter, operation string, err error) {
	kind := entity.KindOf(err)

	payload := map[string]interface{}{
		"error": err.Error(),
		"kind":  kind,
	}
	var opErr *entity.Error
	if errors.As(err, &opErr) && len(opErr.Details) > 0 {
		payload["details"] = opErr.Details
	}

	if h.metrics != nil {
		h.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
	if kind == entity.KindStorageUnavailable {
		h.logger.Error("Operation failed", "operation", operation, "error", err)
	}

	respondJSON(w, statusForKind(kind), payload)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}
