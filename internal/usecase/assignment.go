package usecase

import (
	"context"
	"time"

	"airportops-service/internal/domain/entity"
	"airportops-service/internal/domain/repository"
	"airportops-service/pkg/locks"
	"airportops-service/pkg/logger"
	"airportops-service/pkg/utils"
)

// Aircraft above this seat count need a jet bridge at the gate.
const wideBodySeatThreshold = 300

const jetBridgeFacility = "jet_bridge"

// AssignmentEngine performs aircraft and gate assignment, enforcing status
// invariants and scheduling-conflict rules. Multi-entity writes are staged
// and compensated on partial failure; per-id locks keep concurrent requests
// for the same resource from double-assigning it.
type AssignmentEngine struct {
	registry      *Registry
	flightRepo    repository.FlightRepository
	gateRepo      repository.GateRepository
	opsEvents     repository.OpsEventRepository
	locks         *locks.Keyed
	bufferMinutes int
	logger        logger.Logger
}

// NewAssignmentEngine creates a new assignment engine
func NewAssignmentEngine(
	registry *Registry,
	flightRepo repository.FlightRepository,
	gateRepo repository.GateRepository,
	opsEvents repository.OpsEventRepository,
	keyed *locks.Keyed,
	bufferMinutes int,
	logger logger.Logger,
) *AssignmentEngine {
	return &AssignmentEngine{
		registry:      registry,
		flightRepo:    flightRepo,
		gateRepo:      gateRepo,
		opsEvents:     opsEvents,
		locks:         keyed,
		bufferMinutes: bufferMinutes,
		logger:        logger,
	}
}

// AssignAircraft links an available aircraft to a flight and marks it
// assigned.
func (e *AssignmentEngine) AssignAircraft(ctx context.Context, req *entity.AssignAircraftRequest) error {
	if req.AircraftID == "" || req.FlightCode == "" {
		return entity.NewError(entity.KindValidation, "aircraft id and flight code are required")
	}

	unlock := e.locks.Lock("aircraft:" + req.AircraftID)
	defer unlock()

	aircraft, err := e.registry.GetAircraft(ctx, req.AircraftID)
	if err != nil {
		return err
	}
	if aircraft.OperationalStatus != entity.AircraftAvailable {
		return entity.NewError(entity.KindInvalidState,
			"aircraft %s is not available for assignment (status %s)",
			req.AircraftID, aircraft.OperationalStatus)
	}

	if _, err := e.flightRepo.GetByCode(ctx, req.FlightCode); err != nil {
		return err
	}

	if err := e.registry.SetAircraftStatus(ctx, req.AircraftID, entity.AircraftAssigned); err != nil {
		return err
	}
	if err := e.flightRepo.SetAircraft(ctx, req.FlightCode, req.AircraftID); err != nil {
		// Compensate the status write so the aircraft is not stranded assigned
		if rbErr := e.registry.SetAircraftStatus(ctx, req.AircraftID, entity.AircraftAvailable); rbErr != nil {
			e.logger.Error("Rollback of aircraft status failed",
				"aircraftId", req.AircraftID, "error", rbErr)
		}
		return err
	}

	e.logger.Info("Aircraft assigned", "aircraftId", req.AircraftID, "flightCode", req.FlightCode)
	return nil
}

// SwapAircraft substitutes the aircraft serving a flight. The replacement
// inherits the flight link; the association itself is never deleted, so
// gate and schedule continuity are preserved.
func (e *AssignmentEngine) SwapAircraft(ctx context.Context, req *entity.SwapAircraftRequest) error {
	if req.CurrentID == "" || req.ReplacementID == "" {
		return entity.NewError(entity.KindValidation, "current and replacement aircraft ids are required")
	}
	if req.CurrentID == req.ReplacementID {
		return entity.NewError(entity.KindInvalidState, "invalid swap: aircraft cannot replace itself")
	}

	unlock := e.locks.Lock("aircraft:"+req.CurrentID, "aircraft:"+req.ReplacementID)
	defer unlock()

	current, err := e.registry.GetAircraft(ctx, req.CurrentID)
	if err != nil {
		return err
	}
	if current.OperationalStatus != entity.AircraftAssigned {
		return entity.NewError(entity.KindInvalidState,
			"invalid swap: aircraft %s is not currently assigned (status %s)",
			req.CurrentID, current.OperationalStatus)
	}

	replacement, err := e.registry.GetAircraft(ctx, req.ReplacementID)
	if err != nil {
		return err
	}
	if replacement.OperationalStatus != entity.AircraftAvailable {
		return entity.NewError(entity.KindInvalidState,
			"invalid swap: replacement aircraft %s is not available (status %s)",
			req.ReplacementID, replacement.OperationalStatus)
	}

	// The directory, not the aircraft record, holds the flight link
	var flight *entity.Flight
	flight, err = e.flightRepo.GetByAircraft(ctx, req.CurrentID)
	if err != nil {
		if !entity.IsKind(err, entity.KindNotFound) {
			return err
		}
		flight = nil
	}

	if err := e.registry.SetAircraftStatus(ctx, req.ReplacementID, entity.AircraftAssigned); err != nil {
		return err
	}

	if flight != nil {
		if err := e.flightRepo.SetAircraft(ctx, flight.Code, req.ReplacementID); err != nil {
			if rbErr := e.registry.SetAircraftStatus(ctx, req.ReplacementID, entity.AircraftAvailable); rbErr != nil {
				e.logger.Error("Rollback of replacement status failed",
					"aircraftId", req.ReplacementID, "error", rbErr)
			}
			return err
		}
	}

	if err := e.registry.SetAircraftStatus(ctx, req.CurrentID, entity.AircraftAvailable); err != nil {
		if flight != nil {
			if rbErr := e.flightRepo.SetAircraft(ctx, flight.Code, req.CurrentID); rbErr != nil {
				e.logger.Error("Rollback of flight link failed", "flightCode", flight.Code, "error", rbErr)
			}
		}
		if rbErr := e.registry.SetAircraftStatus(ctx, req.ReplacementID, entity.AircraftAvailable); rbErr != nil {
			e.logger.Error("Rollback of replacement status failed",
				"aircraftId", req.ReplacementID, "error", rbErr)
		}
		return err
	}

	e.logger.Info("Aircraft swapped",
		"currentId", req.CurrentID,
		"replacementId", req.ReplacementID)
	return nil
}

// AssignGate assigns a gate to a flight, optionally checking compatibility
// and scheduling conflicts first. Conflicts are reported for an explicit
// override; overriding records the bypass in the gate's audit trail.
func (e *AssignmentEngine) AssignGate(ctx context.Context, req *entity.AssignGateRequest) error {
	if req.GateID == "" || req.FlightCode == "" {
		return entity.NewError(entity.KindValidation, "gate id and flight code are required")
	}

	unlock := e.locks.Lock("gate:" + req.GateID)
	defer unlock()

	gate, err := e.gateRepo.GetByID(ctx, req.GateID)
	if err != nil {
		return err
	}
	flight, err := e.flightRepo.GetByCode(ctx, req.FlightCode)
	if err != nil {
		return err
	}

	if gate.Status == entity.GateMaintenance || gate.Status == entity.GateClosed {
		return entity.NewError(entity.KindInvalidState,
			"gate %s is %s and cannot take assignments", req.GateID, gate.Status)
	}

	if req.CheckCompatibility {
		if err := e.checkGateFit(ctx, gate, flight); err != nil {
			return err
		}

		conflicts, err := e.findConflicts(ctx, gate, flight)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			if !req.OverrideWarnings {
				return entity.NewError(entity.KindConflict,
					"gate %s has %d conflicting flight(s) within the %d minute buffer",
					req.GateID, len(conflicts), e.bufferMinutes).
					WithDetail("requiresOverride", true).
					WithDetail("conflicts", conflicts)
			}
			e.recordOverride(ctx, gate, flight, conflicts)
		}
	}

	prevFlight := gate.CurrentFlight

	if err := e.gateRepo.Assign(ctx, req.GateID, req.FlightCode); err != nil {
		return err
	}
	if err := e.flightRepo.SetGate(ctx, req.FlightCode, req.GateID); err != nil {
		var rbErr error
		if prevFlight != "" {
			rbErr = e.gateRepo.Assign(ctx, req.GateID, prevFlight)
		} else {
			rbErr = e.gateRepo.Release(ctx, req.GateID)
		}
		if rbErr != nil {
			e.logger.Error("Rollback of gate assignment failed", "gateId", req.GateID, "error", rbErr)
		}
		return err
	}

	e.logger.Info("Gate assigned",
		"gateId", req.GateID,
		"flightCode", req.FlightCode,
		"override", req.OverrideWarnings)
	return nil
}

// UpdateGateStatus changes a gate's status. Moving a gate into maintenance
// or closing it is refused while flights are still scheduled through it.
func (e *AssignmentEngine) UpdateGateStatus(ctx context.Context, gateID, status string) error {
	switch status {
	case entity.GateAvailable, entity.GateMaintenance, entity.GateClosed:
	case entity.GateOccupied:
		return entity.NewError(entity.KindValidation,
			"gates become occupied through assignment, not a direct status change")
	default:
		return entity.NewError(entity.KindValidation, "unknown gate status %q", status)
	}

	unlock := e.locks.Lock("gate:" + gateID)
	defer unlock()

	if _, err := e.gateRepo.GetByID(ctx, gateID); err != nil {
		return err
	}

	if status == entity.GateMaintenance || status == entity.GateClosed {
		flights, err := e.flightRepo.ListByGate(ctx, gateID)
		if err != nil {
			return err
		}
		var active []string
		for _, f := range flights {
			if f.Active() {
				active = append(active, f.Code)
			}
		}
		if len(active) > 0 {
			return entity.NewError(entity.KindPolicyViolation,
				"gate %s still has %d flight(s) scheduled; clear or reassign them first",
				gateID, len(active)).
				WithDetail("flights", active)
		}
	}

	if status == entity.GateAvailable {
		return e.gateRepo.Release(ctx, gateID)
	}
	return e.gateRepo.UpdateStatus(ctx, gateID, status)
}

// AutoAssignGates runs a compatibility-checked, non-override assignment for
// each flight against the first suitable gate. Attempts are independent;
// one flight's failure does not block the rest.
func (e *AssignmentEngine) AutoAssignGates(ctx context.Context, flightCodes []string) (*entity.AutoAssignResult, error) {
	if len(flightCodes) == 0 {
		return nil, entity.NewError(entity.KindValidation, "at least one flight code is required")
	}

	gates, err := e.gateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &entity.AutoAssignResult{
		Assignments: []entity.GateAssignment{},
		Errors:      []entity.AutoAssignError{},
	}

	for _, code := range flightCodes {
		flight, err := e.flightRepo.GetByCode(ctx, code)
		if err != nil {
			result.Errors = append(result.Errors, entity.AutoAssignError{
				Flight: code,
				Reason: err.Error(),
			})
			continue
		}
		if flight.Gate != "" {
			result.Errors = append(result.Errors, entity.AutoAssignError{
				Flight: code,
				Reason: "flight already assigned to gate " + flight.Gate,
			})
			continue
		}

		assigned := false
		for _, gate := range gates {
			if gate.Status != entity.GateAvailable {
				continue
			}
			err := e.AssignGate(ctx, &entity.AssignGateRequest{
				GateID:             gate.GateID,
				FlightCode:         code,
				CheckCompatibility: true,
			})
			if err == nil {
				gate.Status = entity.GateOccupied // consumed for this batch
				result.Assignments = append(result.Assignments, entity.GateAssignment{
					Flight: code,
					Gate:   gate.GateID,
				})
				assigned = true
				break
			}
			kind := entity.KindOf(err)
			if kind == entity.KindConflict || kind == entity.KindInvalidState {
				continue // try the next gate
			}
			result.Errors = append(result.Errors, entity.AutoAssignError{
				Flight: code,
				Reason: err.Error(),
			})
			assigned = true // recorded; do not double-report below
			break
		}
		if !assigned {
			result.Errors = append(result.Errors, entity.AutoAssignError{
				Flight: code,
				Reason: "no compatible gate available",
			})
		}
	}

	return result, nil
}

// checkGateFit verifies the gate can physically take the flight's aircraft.
// Flights with no aircraft assigned yet fit any open gate.
func (e *AssignmentEngine) checkGateFit(ctx context.Context, gate *entity.Gate, flight *entity.Flight) error {
	if flight.AircraftID == "" {
		return nil
	}

	aircraft, err := e.registry.GetAircraft(ctx, flight.AircraftID)
	if err != nil {
		return err
	}

	if gate.Capacity > 0 && aircraft.SeatCount > gate.Capacity {
		return entity.NewError(entity.KindConflict,
			"gate %s (capacity %d) cannot take aircraft %s with %d seats",
			gate.GateID, gate.Capacity, aircraft.AircraftID, aircraft.SeatCount).
			WithDetail("requiresOverride", false)
	}
	if aircraft.SeatCount > wideBodySeatThreshold && !gate.HasFacility(jetBridgeFacility) {
		return entity.NewError(entity.KindConflict,
			"gate %s lacks a jet bridge required by wide-body aircraft %s",
			gate.GateID, aircraft.AircraftID).
			WithDetail("requiresOverride", false)
	}
	return nil
}

// findConflicts returns flights already scheduled through the gate whose
// departures fall inside the buffer window around the requested flight's
// departure on the same day.
func (e *AssignmentEngine) findConflicts(ctx context.Context, gate *entity.Gate, flight *entity.Flight) ([]entity.GateConflict, error) {
	scheduled, err := e.flightRepo.ListByGate(ctx, gate.GateID)
	if err != nil {
		return nil, err
	}

	var conflicts []entity.GateConflict
	for _, other := range scheduled {
		if other.Code == flight.Code || !other.Active() {
			continue
		}
		if !sameDay(other.FlightDate, flight.FlightDate) {
			continue
		}
		distance, err := utils.ClockDistance(other.ScheduledDeparture, flight.ScheduledDeparture)
		if err != nil {
			e.logger.Warn("Skipping conflict check for flight with unparseable departure",
				"flightCode", other.Code, "departure", other.ScheduledDeparture)
			continue
		}
		if distance < e.bufferMinutes {
			conflicts = append(conflicts, entity.GateConflict{
				Flight:    other.Code,
				Departure: other.ScheduledDeparture,
				Status:    other.Status,
			})
		}
	}
	return conflicts, nil
}

func (e *AssignmentEngine) recordOverride(ctx context.Context, gate *entity.Gate, flight *entity.Flight, conflicts []entity.GateConflict) {
	override := entity.GateOverride{
		FlightCode:   flight.Code,
		Conflicts:    conflicts,
		OverriddenAt: time.Now(),
	}
	if err := e.gateRepo.AppendOverride(ctx, gate.GateID, override); err != nil {
		e.logger.Error("Failed to record gate override", "gateId", gate.GateID, "error", err)
	}

	if e.opsEvents == nil {
		return
	}
	event := &entity.OpsEvent{
		Type:       "gate_conflict_override",
		FlightCode: flight.Code,
		Resource:   gate.GateID,
		Detail: map[string]interface{}{
			"conflicts": conflicts,
		},
		OccurredAt: time.Now(),
	}
	if err := e.opsEvents.PublishEvent(ctx, event); err != nil {
		e.logger.Error("Failed to publish override event", "gateId", gate.GateID, "error", err)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
