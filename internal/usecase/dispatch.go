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

// Defaults applied when a task is created through crew assignment.
const (
	defaultTaskPriority    = entity.PriorityMedium
	defaultTaskDurationMin = 30
	defaultShiftStart      = "08:00"
	defaultShiftEnd        = "16:00"
)

var crewIDPrefixes = map[string]string{
	entity.CrewTypeCleaning:    "CC-",
	entity.CrewTypeFueling:     "FC-",
	entity.CrewTypeCatering:    "CT-",
	entity.CrewTypeMaintenance: "MC-",
	entity.CrewTypeBaggage:     "BC-",
	entity.CrewTypePushback:    "PC-",
}

// Dispatcher pairs ground crew members with ground-service tasks, keeping
// crew status and task status in lockstep: a member is on_task exactly while
// one open task carries their id.
type Dispatcher struct {
	crewRepo  repository.CrewRepository
	taskRepo  repository.GroundServiceRepository
	opsEvents repository.OpsEventRepository
	locks     *locks.Keyed
	logger    logger.Logger
	now       func() time.Time
}

// NewDispatcher creates a new crew task dispatcher. The ops event publisher
// may be nil.
func NewDispatcher(
	crewRepo repository.CrewRepository,
	taskRepo repository.GroundServiceRepository,
	opsEvents repository.OpsEventRepository,
	keyed *locks.Keyed,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		crewRepo:  crewRepo,
		taskRepo:  taskRepo,
		opsEvents: opsEvents,
		locks:     keyed,
		logger:    logger,
		now:       time.Now,
	}
}

// AssignCrewToTask claims an existing pending task for a crew member, or
// creates a fresh in-progress task when no task id is given. The member must
// be available.
func (d *Dispatcher) AssignCrewToTask(ctx context.Context, req *entity.AssignCrewRequest) (*entity.GroundServiceTask, error) {
	if req.CrewID == "" {
		return nil, entity.NewError(entity.KindValidation, "crew id is required")
	}

	keys := []string{"crew:" + req.CrewID}
	if req.Task.TaskID != "" {
		keys = append(keys, "task:"+req.Task.TaskID)
	}
	unlock := d.locks.Lock(keys...)
	defer unlock()

	crew, err := d.crewRepo.GetByID(ctx, req.CrewID)
	if err != nil {
		return nil, err
	}
	if crew.Status != entity.CrewAvailable {
		return nil, entity.NewError(entity.KindInvalidState,
			"crew member %s is not available (status: %s)", req.CrewID, crew.Status)
	}

	var task *entity.GroundServiceTask
	if req.Task.TaskID != "" {
		task, err = d.claimExistingTask(ctx, req.Task.TaskID, req.CrewID)
	} else {
		task, err = d.createAssignedTask(ctx, &req.Task, req.CrewID)
	}
	if err != nil {
		return nil, err
	}

	if err := d.crewRepo.UpdateStatus(ctx, req.CrewID, entity.CrewOnTask); err != nil {
		if rbErr := d.taskRepo.Unassign(ctx, task.ServiceID); rbErr != nil {
			d.logger.Error("Rollback of task assignment failed",
				"serviceId", task.ServiceID, "error", rbErr)
		}
		return nil, err
	}

	d.logger.Info("Crew assigned to task",
		"crewId", req.CrewID,
		"serviceId", task.ServiceID,
		"serviceType", task.ServiceType,
		"flightCode", task.FlightCode)

	return task, nil
}

func (d *Dispatcher) claimExistingTask(ctx context.Context, taskID, crewID string) (*entity.GroundServiceTask, error) {
	task, err := d.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != entity.TaskPending || task.AssignedCrew != "" {
		return nil, entity.NewError(entity.KindInvalidState,
			"task %s is not open for assignment (status: %s)", taskID, task.Status)
	}
	if err := d.taskRepo.Assign(ctx, taskID, crewID); err != nil {
		return nil, err
	}
	task.Status = entity.TaskInProgress
	task.AssignedCrew = crewID
	return task, nil
}

func (d *Dispatcher) createAssignedTask(ctx context.Context, details *entity.TaskDetails, crewID string) (*entity.GroundServiceTask, error) {
	if details.ServiceType == "" || details.FlightCode == "" {
		return nil, entity.NewError(entity.KindValidation,
			"service type and flight number are required to create a task")
	}

	priority := details.Priority
	if priority == "" {
		priority = defaultTaskPriority
	}
	duration := details.EstimatedDurationMinutes
	if duration <= 0 {
		duration = defaultTaskDurationMin
	}
	scheduled := details.ScheduledTime
	if scheduled.IsZero() {
		scheduled = d.now()
	}

	task := &entity.GroundServiceTask{
		ServiceID:                utils.GenerateID("GS-"),
		ServiceType:              details.ServiceType,
		FlightCode:               details.FlightCode,
		Status:                   entity.TaskInProgress,
		AssignedCrew:             crewID,
		Priority:                 priority,
		ScheduledTime:            scheduled,
		EstimatedDurationMinutes: duration,
		Notes:                    details.Notes,
		CreatedAt:                d.now(),
		UpdatedAt:                d.now(),
	}
	if err := d.taskRepo.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask closes an in-progress task and returns its crew member to the
// available pool, crediting the completion counters.
func (d *Dispatcher) CompleteTask(ctx context.Context, serviceID string) (*entity.GroundServiceTask, error) {
	if serviceID == "" {
		return nil, entity.NewError(entity.KindValidation, "service id is required")
	}

	unlock := d.locks.Lock("task:" + serviceID)
	defer unlock()

	task, err := d.taskRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if task.Status != entity.TaskInProgress {
		return nil, entity.NewError(entity.KindInvalidState,
			"task %s is not in progress (status: %s)", serviceID, task.Status)
	}

	completedAt := d.now()
	if err := d.taskRepo.Complete(ctx, serviceID, completedAt); err != nil {
		return nil, err
	}
	task.Status = entity.TaskCompleted
	task.CompletedTime = &completedAt

	if task.AssignedCrew != "" {
		if err := d.crewRepo.UpdateStatus(ctx, task.AssignedCrew, entity.CrewAvailable); err != nil {
			d.logger.Error("Failed to release crew member",
				"crewId", task.AssignedCrew, "error", err)
		}
		if err := d.crewRepo.IncrementTaskCounts(ctx, task.AssignedCrew); err != nil {
			d.logger.Error("Failed to credit task completion",
				"crewId", task.AssignedCrew, "error", err)
		}
	}

	d.logger.Info("Task completed",
		"serviceId", serviceID,
		"crewId", task.AssignedCrew,
		"flightCode", task.FlightCode)

	return task, nil
}

// CreateCrew registers a new crew member with a type-prefixed id and a
// default day shift.
func (d *Dispatcher) CreateCrew(ctx context.Context, req *entity.CreateCrewRequest) (*entity.CrewMember, error) {
	if req.FullName == "" || req.CrewType == "" {
		return nil, entity.NewError(entity.KindValidation, "full name and crew type are required")
	}
	prefix, ok := crewIDPrefixes[req.CrewType]
	if !ok {
		return nil, entity.NewError(entity.KindValidation, "unknown crew type: %s", req.CrewType)
	}

	crew := &entity.CrewMember{
		CrewID:        utils.GenerateID(prefix),
		FullName:      req.FullName,
		CrewType:      req.CrewType,
		Qualification: req.Qualification,
		ContactNumber: req.ContactNumber,
		Status:        entity.CrewAvailable,
		ShiftStart:    defaultShiftStart,
		ShiftEnd:      defaultShiftEnd,
		CreatedAt:     d.now(),
		UpdatedAt:     d.now(),
	}
	if err := d.crewRepo.Insert(ctx, crew); err != nil {
		return nil, err
	}

	d.logger.Info("Crew member registered", "crewId", crew.CrewID, "crewType", crew.CrewType)
	return crew, nil
}

// DeleteCrew removes a crew member. Members holding open tasks cannot be
// deleted; completed task history is detached, not destroyed.
func (d *Dispatcher) DeleteCrew(ctx context.Context, crewID string) error {
	if crewID == "" {
		return entity.NewError(entity.KindValidation, "crew id is required")
	}

	unlock := d.locks.Lock("crew:" + crewID)
	defer unlock()

	if _, err := d.crewRepo.GetByID(ctx, crewID); err != nil {
		return err
	}

	open, err := d.taskRepo.CountOpenByCrew(ctx, crewID)
	if err != nil {
		return err
	}
	if open > 0 {
		return entity.NewError(entity.KindPolicyViolation,
			"crew member %s has %d open task(s); complete or reassign them first", crewID, open)
	}

	if err := d.crewRepo.Delete(ctx, crewID); err != nil {
		return err
	}
	if err := d.taskRepo.ClearCrew(ctx, crewID); err != nil {
		d.logger.Error("Failed to detach completed tasks", "crewId", crewID, "error", err)
	}

	d.logger.Info("Crew member deleted", "crewId", crewID)
	return nil
}

// CreateTask records an unassigned pending task for later dispatch.
func (d *Dispatcher) CreateTask(ctx context.Context, details *entity.TaskDetails) (*entity.GroundServiceTask, error) {
	if details.ServiceType == "" || details.FlightCode == "" {
		return nil, entity.NewError(entity.KindValidation,
			"service type and flight number are required")
	}

	priority := details.Priority
	if priority == "" {
		priority = defaultTaskPriority
	}
	duration := details.EstimatedDurationMinutes
	if duration <= 0 {
		duration = defaultTaskDurationMin
	}
	scheduled := details.ScheduledTime
	if scheduled.IsZero() {
		scheduled = d.now()
	}

	task := &entity.GroundServiceTask{
		ServiceID:                utils.GenerateID("GS-"),
		ServiceType:              details.ServiceType,
		FlightCode:               details.FlightCode,
		Status:                   entity.TaskPending,
		Priority:                 priority,
		ScheduledTime:            scheduled,
		EstimatedDurationMinutes: duration,
		Notes:                    details.Notes,
		CreatedAt:                d.now(),
		UpdatedAt:                d.now(),
	}
	if err := d.taskRepo.Insert(ctx, task); err != nil {
		return nil, err
	}

	d.logger.Info("Task created", "serviceId", task.ServiceID, "serviceType", task.ServiceType)
	return task, nil
}

// ListTasks returns all ground-service tasks.
func (d *Dispatcher) ListTasks(ctx context.Context) ([]*entity.GroundServiceTask, error) {
	return d.taskRepo.List(ctx)
}

// GetTask returns a single ground-service task.
func (d *Dispatcher) GetTask(ctx context.Context, serviceID string) (*entity.GroundServiceTask, error) {
	return d.taskRepo.GetByID(ctx, serviceID)
}
