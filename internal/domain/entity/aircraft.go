package entity

import (
	"time"
)

// Aircraft operational status values.
const (
	AircraftAvailable   = "available"
	AircraftAssigned    = "assigned"
	AircraftMaintenance = "maintenance"
)

// Aircraft represents an aircraft in the operational fleet. The flight
// directory, not the aircraft record, holds the aircraft-to-flight link.
type Aircraft struct {
	ID                string    `bson:"_id,omitempty"`
	AircraftID        string    `bson:"aircraftId"`
	Type              string    `bson:"type"`
	Registration      string    `bson:"registration"`
	SeatCount         int       `bson:"seatCount"`
	OperationalStatus string    `bson:"operationalStatus"`
	CreatedAt         time.Time `bson:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt"`
}
