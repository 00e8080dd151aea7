package entity

import (
	"time"
)

// Flight status values.
const (
	FlightScheduled = "scheduled"
	FlightBoarding  = "boarding"
	FlightDelayed   = "delayed"
	FlightGateOpen  = "gate_open"
	FlightDeparted  = "departed"
	FlightCancelled = "cancelled"
)

// Flight represents a scheduled flight. ScheduledDeparture is a local HH:MM
// clock time; FlightDate carries the calendar day.
type Flight struct {
	ID                 string    `bson:"_id,omitempty"`
	Code               string    `bson:"flightCode"`
	OriginAirport      string    `bson:"originAirport"`
	DestinationAirport string    `bson:"destinationAirport"`
	ScheduledDeparture string    `bson:"scheduledDeparture"`
	FlightDate         time.Time `bson:"flightDate"`
	Gate               string    `bson:"gate,omitempty"`
	AircraftID         string    `bson:"aircraftId,omitempty"`
	Status             string    `bson:"status"`
	TotalCheckedIn     int       `bson:"totalCheckedIn"`
	CreatedAt          time.Time `bson:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt"`
}

// Active reports whether the flight still occupies operational resources.
// Departed and cancelled flights hold no gate or aircraft claims.
func (f *Flight) Active() bool {
	return f.Status != FlightDeparted && f.Status != FlightCancelled
}
