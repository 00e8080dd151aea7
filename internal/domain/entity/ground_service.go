package entity

import (
	"time"
)

// Ground-service task status values.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// GroundServiceTask represents a single ground-service job against a flight.
type GroundServiceTask struct {
	ID                       string     `bson:"_id,omitempty"`
	ServiceID                string     `bson:"serviceId"`
	ServiceType              string     `bson:"serviceType"`
	FlightCode               string     `bson:"flightCode"`
	Status                   string     `bson:"status"`
	AssignedCrew             string     `bson:"assignedCrew,omitempty"`
	Priority                 string     `bson:"priority"`
	ScheduledTime            time.Time  `bson:"scheduledTime"`
	CompletedTime            *time.Time `bson:"completedTime,omitempty"`
	EstimatedDurationMinutes int        `bson:"estimatedDurationMinutes"`
	Notes                    string     `bson:"notes,omitempty"`
	CreatedAt                time.Time  `bson:"createdAt"`
	UpdatedAt                time.Time  `bson:"updatedAt"`
}

// Open reports whether the task still occupies its assigned crew member.
func (t *GroundServiceTask) Open() bool {
	return t.Status == TaskPending || t.Status == TaskInProgress
}
