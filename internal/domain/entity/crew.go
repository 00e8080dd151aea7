package entity

import (
	"time"
)

// Crew member status values.
const (
	CrewAvailable = "available"
	CrewOnTask    = "on_task"
	CrewOffDuty   = "off_duty"
)

// Crew types handled by ground operations.
const (
	CrewTypeCleaning    = "cleaning"
	CrewTypeFueling     = "fueling"
	CrewTypeCatering    = "catering"
	CrewTypeMaintenance = "maintenance"
	CrewTypeBaggage     = "baggage"
	CrewTypePushback    = "pushback"
)

// CrewMember represents a ground crew member. Status is on_task iff exactly
// one open ground-service task carries this member's id.
type CrewMember struct {
	ID                  string    `bson:"_id,omitempty"`
	CrewID              string    `bson:"crewId"`
	FullName            string    `bson:"fullName"`
	CrewType            string    `bson:"crewType"`
	Qualification       string    `bson:"qualification"`
	ContactNumber       string    `bson:"contactNumber"`
	Status              string    `bson:"status"`
	ShiftStart          string    `bson:"shiftStart"`
	ShiftEnd            string    `bson:"shiftEnd"`
	TasksCompletedToday int       `bson:"tasksCompletedToday"`
	TotalTasksCompleted int       `bson:"totalTasksCompleted"`
	CreatedAt           time.Time `bson:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt"`
}
