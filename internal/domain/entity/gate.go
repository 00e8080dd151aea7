package entity

import (
	"time"
)

// Gate status values.
const (
	GateAvailable   = "available"
	GateOccupied    = "occupied"
	GateMaintenance = "maintenance"
	GateClosed      = "closed"
)

// GateOverride records an administrative bypass of a reported scheduling
// conflict during gate assignment.
type GateOverride struct {
	FlightCode   string         `bson:"flightCode"`
	Conflicts    []GateConflict `bson:"conflicts"`
	OverriddenAt time.Time      `bson:"overriddenAt"`
}

// GateConflict describes a flight that collides with a requested gate
// assignment inside the buffer window.
type GateConflict struct {
	Flight    string `bson:"flight" json:"flight"`
	Departure string `bson:"departure" json:"departure"`
	Status    string `bson:"status" json:"status"`
}

// Gate represents a terminal gate. Status is occupied iff CurrentFlight is set.
type Gate struct {
	ID            string         `bson:"_id,omitempty"`
	GateID        string         `bson:"gateId"`
	Terminal      string         `bson:"terminal"`
	Capacity      int            `bson:"capacity"`
	Facilities    []string       `bson:"facilities"`
	Status        string         `bson:"status"`
	CurrentFlight string         `bson:"currentFlight,omitempty"`
	Overrides     []GateOverride `bson:"overrides,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt"`
}

// HasFacility reports whether the gate offers the named facility.
func (g *Gate) HasFacility(name string) bool {
	for _, f := range g.Facilities {
		if f == name {
			return true
		}
	}
	return false
}
