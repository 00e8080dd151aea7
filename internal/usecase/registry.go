package usecase

import (
	"context"

	"airportops-service/internal/domain/entity"
	"airportops-service/internal/domain/repository"
	"airportops-service/pkg/logger"
)

// Registry is the single source of truth for the current status of
// aircraft, gates and crew. It performs plain reads and status writes with
// last-write-wins semantics; transition legality is the caller's problem.
type Registry struct {
	aircraftRepo repository.AircraftRepository
	gateRepo     repository.GateRepository
	crewRepo     repository.CrewRepository
	logger       logger.Logger
}

// NewRegistry creates a new resource registry
func NewRegistry(
	aircraftRepo repository.AircraftRepository,
	gateRepo repository.GateRepository,
	crewRepo repository.CrewRepository,
	logger logger.Logger,
) *Registry {
	return &Registry{
		aircraftRepo: aircraftRepo,
		gateRepo:     gateRepo,
		crewRepo:     crewRepo,
		logger:       logger,
	}
}

// GetAircraft returns the current aircraft record
func (r *Registry) GetAircraft(ctx context.Context, aircraftID string) (*entity.Aircraft, error) {
	return r.aircraftRepo.GetByID(ctx, aircraftID)
}

// SetAircraftStatus writes the operational status and stamps updatedAt
func (r *Registry) SetAircraftStatus(ctx context.Context, aircraftID, status string) error {
	r.logger.Info("Setting aircraft status", "aircraftId", aircraftID, "status", status)
	return r.aircraftRepo.UpdateStatus(ctx, aircraftID, status)
}

// ListAircraft returns the whole fleet
func (r *Registry) ListAircraft(ctx context.Context) ([]*entity.Aircraft, error) {
	return r.aircraftRepo.List(ctx)
}

// GetGate returns the current gate record
func (r *Registry) GetGate(ctx context.Context, gateID string) (*entity.Gate, error) {
	return r.gateRepo.GetByID(ctx, gateID)
}

// SetGateStatus writes the gate status and stamps updatedAt
func (r *Registry) SetGateStatus(ctx context.Context, gateID, status string) error {
	r.logger.Info("Setting gate status", "gateId", gateID, "status", status)
	return r.gateRepo.UpdateStatus(ctx, gateID, status)
}

// ListGates returns all gates
func (r *Registry) ListGates(ctx context.Context) ([]*entity.Gate, error) {
	return r.gateRepo.List(ctx)
}

// GetCrew returns the current crew member record
func (r *Registry) GetCrew(ctx context.Context, crewID string) (*entity.CrewMember, error) {
	return r.crewRepo.GetByID(ctx, crewID)
}

// SetCrewStatus writes the crew status and stamps updatedAt
func (r *Registry) SetCrewStatus(ctx context.Context, crewID, status string) error {
	r.logger.Info("Setting crew status", "crewId", crewID, "status", status)
	return r.crewRepo.UpdateStatus(ctx, crewID, status)
}

// ListCrew returns all crew members
func (r *Registry) ListCrew(ctx context.Context) ([]*entity.CrewMember, error) {
	return r.crewRepo.List(ctx)
}
