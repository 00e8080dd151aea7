package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airportops-service/internal/domain/entity"
	"airportops-service/pkg/locks"
)

func newTestDispatcher(crewRepo *memCrewRepo, taskRepo *memGroundServiceRepo) *Dispatcher {
	return NewDispatcher(crewRepo, taskRepo, nil, locks.NewKeyed(), nopLogger{})
}

func availableCrew(id string) *entity.CrewMember {
	return &entity.CrewMember{
		CrewID:   id,
		FullName: "Sam Lee",
		CrewType: entity.CrewTypeCleaning,
		Status:   entity.CrewAvailable,
	}
}

func TestAssignCrewToTask_CreatesTask(t *testing.T) {
	crewRepo := newMemCrewRepo(availableCrew("CC-1"))
	taskRepo := newMemGroundServiceRepo()
	d := newTestDispatcher(crewRepo, taskRepo)

	task, err := d.AssignCrewToTask(context.Background(), &entity.AssignCrewRequest{
		CrewID: "CC-1",
		Task: entity.TaskDetails{
			ServiceType: "cleaning",
			FlightCode:  "HX101",
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(task.ServiceID, "GS-"))
	assert.Equal(t, entity.TaskInProgress, task.Status)
	assert.Equal(t, "CC-1", task.AssignedCrew)
	assert.Equal(t, entity.PriorityMedium, task.Priority)
	assert.Equal(t, 30, task.EstimatedDurationMinutes)

	crew, _ := crewRepo.GetByID(context.Background(), "CC-1")
	assert.Equal(t, entity.CrewOnTask, crew.Status)
}

func TestAssignCrewToTask_ClaimsPendingTask(t *testing.T) {
	crewRepo := newMemCrewRepo(availableCrew("CC-1"))
	taskRepo := newMemGroundServiceRepo(&entity.GroundServiceTask{
		ServiceID:   "GS-1",
		ServiceType: "fueling",
		FlightCode:  "HX101",
		Status:      entity.TaskPending,
	})
	d := newTestDispatcher(crewRepo, taskRepo)

	task, err := d.AssignCrewToTask(context.Background(), &entity.AssignCrewRequest{
		CrewID: "CC-1",
		Task:   entity.TaskDetails{TaskID: "GS-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "GS-1", task.ServiceID)
	assert.Equal(t, entity.TaskInProgress, task.Status)
	assert.Equal(t, "CC-1", task.AssignedCrew)
}

func TestAssignCrewToTask_CrewNotAvailable(t *testing.T) {
	crew := availableCrew("CC-1")
	crew.Status = entity.CrewOnTask
	d := newTestDispatcher(newMemCrewRepo(crew), newMemGroundServiceRepo())

	_, err := d.AssignCrewToTask(context.Background(), &entity.AssignCrewRequest{
		CrewID: "CC-1",
		Task:   entity.TaskDetails{ServiceType: "cleaning", FlightCode: "HX101"},
	})
	require.Error(t, err)
	assert.True(t, entity.IsKind(err, entity.KindInvalidState))
}

func TestAssignCrewToTask_TaskAlreadyClaimed(t *testing.T) {
	crewRepo := newMemCrewRepo(availableCrew("CC-1"))
	taskRepo := newMemGroundServiceRepo(&entity.GroundServiceTask{
		ServiceID:    "GS-1",
		Status:       entity.TaskInProgress,
		AssignedCrew: "CC-9",
	})
	d := newTestDispatcher(crewRepo, taskRepo)

	_, err := d.AssignCrewToTask(context.Background(), &entity.AssignCrewRequest{
		CrewID: "CC-1",
		Task:   entity.TaskDetails{TaskID: "GS-1"},
	})
	require.Error(t, err)
	assert.True(t, entity.IsKind(err, entity.KindInvalidState))

	// Crew stays available when the claim fails
	crew, _ := crewRepo.GetByID(context.Background(), "CC-1")
	assert.Equal(t, entity.CrewAvailable, crew.Status)
}

func TestAssignCrewToTask_ConcurrentClaims(t *testing.T) {
	crewRepo := newMemCrewRepo(availableCrew("CC-1"), availableCrew("CC-2"))
	taskRepo := newMemGroundServiceRepo(&entity.GroundServiceTask{
		ServiceID:   "GS-1",
		ServiceType: "fueling",
		FlightCode:  "HX101",
		Status:      entity.TaskPending,
	})
	d := newTestDispatcher(crewRepo, taskRepo)

	start := make(chan struct{})
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, crewID := range []string{"CC-1", "CC-2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			<-start
			_, err := d.AssignCrewToTask(context.Background(), &entity.AssignCrewRequest{
				CrewID: id,
				Task:   entity.TaskDetails{TaskID: "GS-1"},
			})
			errs <- err
		}(crewID)
	}
	close(start)
	wg.Wait()
	close(errs)

	var failures int
	for err := range errs {
		if err != nil {
			failures++
			assert.True(t, entity.IsKind(err, entity.KindInvalidState))
		}
	}
	assert.Equal(t, 1, failures, "exactly one claim wins")

	task, err := taskRepo.GetByID(context.Background(), "GS-1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskInProgress, task.Status)

	var onTask int
	for _, id := range []string{"CC-1", "CC-2"} {
		crew, _ := crewRepo.GetByID(context.Background(), id)
		if crew.Status == entity.CrewOnTask {
			onTask++
			assert.Equal(t, id, task.AssignedCrew)
		}
	}
	assert.Equal(t, 1, onTask, "only the winning member goes on task")
}

func TestCompleteTask(t *testing.T) {
	crew := availableCrew("CC-1")
	crew.Status = entity.CrewOnTask
	crewRepo := newMemCrewRepo(crew)
	taskRepo := newMemGroundServiceRepo(&entity.GroundServiceTask{
		ServiceID:    "GS-1",
		Status:       entity.TaskInProgress,
		AssignedCrew: "CC-1",
	})
	d := newTestDispatcher(crewRepo, taskRepo)

	task, err := d.CompleteTask(context.Background(), "GS-1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedTime)

	updated, _ := crewRepo.GetByID(context.Background(), "CC-1")
	assert.Equal(t, entity.CrewAvailable, updated.Status)
	assert.Equal(t, 1, updated.TasksCompletedToday)
	assert.Equal(t, 1, updated.TotalTasksCompleted)
}

func TestCompleteTask_NotInProgress(t *testing.T) {
	completedAt := time.Now()
	taskRepo := newMemGroundServiceRepo(&entity.GroundServiceTask{
		ServiceID:     "GS-1",
		Status:        entity.TaskCompleted,
		CompletedTime: &completedAt,
	})
	d := newTestDispatcher(newMemCrewRepo(), taskRepo)

	_, err := d.CompleteTask(context.Background(), "GS-1")
	require.Error(t, err)
	assert.True(t, entity.IsKind(err, entity.KindInvalidState))
}

func TestCompleteTask_ConcurrentCompletes(t *testing.T) {
	crew := availableCrew("CC-1")
	crew.Status = entity.CrewOnTask
	crewRepo := newMemCrewRepo(crew)
	taskRepo := newMemGroundServiceRepo(&entity.GroundServiceTask{
		ServiceID:    "GS-1",
		Status:       entity.TaskInProgress,
		AssignedCrew: "CC-1",
	})
	d := newTestDispatcher(crewRepo, taskRepo)

	start := make(chan struct{})
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := d.CompleteTask(context.Background(), "GS-1")
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	var failures int
	for err := range errs {
		if err != nil {
			failures++
			assert.True(t, entity.IsKind(err, entity.KindInvalidState))
		}
	}
	assert.Equal(t, 1, failures, "exactly one completion lands")

	updated, _ := crewRepo.GetByID(context.Background(), "CC-1")
	assert.Equal(t, entity.CrewAvailable, updated.Status)
	assert.Equal(t, 1, updated.TasksCompletedToday, "completion credited once")
	assert.Equal(t, 1, updated.TotalTasksCompleted)
}

func TestDeleteCrew_RefusedWithOpenTasks(t *testing.T) {
	crew := availableCrew("CC-1")
	crew.Status = entity.CrewOnTask
	crewRepo := newMemCrewRepo(crew)
	taskRepo := newMemGroundServiceRepo(&entity.GroundServiceTask{
		ServiceID:    "GS-1",
		Status:       entity.TaskInProgress,
		AssignedCrew: "CC-1",
	})
	d := newTestDispatcher(crewRepo, taskRepo)

	err := d.DeleteCrew(context.Background(), "CC-1")
	require.Error(t, err)
	assert.True(t, entity.IsKind(err, entity.KindPolicyViolation))

	// Completing the task lifts the refusal
	_, err = d.CompleteTask(context.Background(), "GS-1")
	require.NoError(t, err)

	err = d.DeleteCrew(context.Background(), "CC-1")
	require.NoError(t, err)

	_, err = crewRepo.GetByID(context.Background(), "CC-1")
	assert.True(t, entity.IsKind(err, entity.KindNotFound))

	// Completed task history is detached, not destroyed
	task, err := taskRepo.GetByID(context.Background(), "GS-1")
	require.NoError(t, err)
	assert.Empty(t, task.AssignedCrew)
}

func TestCreateCrew(t *testing.T) {
	tests := []struct {
		crewType string
		prefix   string
	}{
		{entity.CrewTypeCleaning, "CC-"},
		{entity.CrewTypeFueling, "FC-"},
		{entity.CrewTypeCatering, "CT-"},
		{entity.CrewTypeMaintenance, "MC-"},
		{entity.CrewTypeBaggage, "BC-"},
		{entity.CrewTypePushback, "PC-"},
	}

	for _, tt := range tests {
		t.Run(tt.crewType, func(t *testing.T) {
			d := newTestDispatcher(newMemCrewRepo(), newMemGroundServiceRepo())

			crew, err := d.CreateCrew(context.Background(), &entity.CreateCrewRequest{
				FullName: "Sam Lee",
				CrewType: tt.crewType,
			})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(crew.CrewID, tt.prefix), "got %s", crew.CrewID)
			assert.Equal(t, entity.CrewAvailable, crew.Status)
			assert.Equal(t, "08:00", crew.ShiftStart)
			assert.Equal(t, "16:00", crew.ShiftEnd)
		})
	}
}

func TestCreateCrew_UnknownType(t *testing.T) {
	d := newTestDispatcher(newMemCrewRepo(), newMemGroundServiceRepo())

	_, err := d.CreateCrew(context.Background(), &entity.CreateCrewRequest{
		FullName: "Sam Lee",
		CrewType: "janitorial",
	})
	require.Error(t, err)
	assert.True(t, entity.IsKind(err, entity.KindValidation))
}

func TestCreateTask(t *testing.T) {
	d := newTestDispatcher(newMemCrewRepo(), newMemGroundServiceRepo())

	task, err := d.CreateTask(context.Background(), &entity.TaskDetails{
		ServiceType: "catering",
		FlightCode:  "HX101",
		Priority:    entity.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskPending, task.Status)
	assert.Empty(t, task.AssignedCrew)
	assert.Equal(t, entity.PriorityHigh, task.Priority)
	assert.False(t, task.ScheduledTime.IsZero())
}

func TestCreateTask_MissingFields(t *testing.T) {
	d := newTestDispatcher(newMemCrewRepo(), newMemGroundServiceRepo())

	_, err := d.CreateTask(context.Background(), &entity.TaskDetails{ServiceType: "catering"})
	require.Error(t, err)
	assert.True(t, entity.IsKind(err, entity.KindValidation))
}
