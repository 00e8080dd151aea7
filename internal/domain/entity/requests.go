package entity

import (
	"time"
)

// AssignAircraftRequest asks for an aircraft-to-flight assignment.
type AssignAircraftRequest struct {
	AircraftID string `json:"aircraftId"`
	FlightCode string `json:"flightCode"`
}

// SwapAircraftRequest asks to substitute the aircraft serving a flight.
type SwapAircraftRequest struct {
	CurrentID     string `json:"currentId"`
	ReplacementID string `json:"replacementId"`
}

// AssignGateRequest asks for a gate-to-flight assignment.
type AssignGateRequest struct {
	GateID             string `json:"gateId"`
	FlightCode         string `json:"flightCode"`
	CheckCompatibility bool   `json:"checkCompatibility"`
	OverrideWarnings   bool   `json:"overrideWarnings"`
}

// AutoAssignRequest asks for compatibility-checked gate assignment of a
// batch of flights.
type AutoAssignRequest struct {
	FlightCodes []string `json:"flightCodes"`
}

// GateAssignment reports one successful auto-assignment.
type GateAssignment struct {
	Flight string `json:"flight"`
	Gate   string `json:"gate"`
}

// AutoAssignError reports one failed auto-assignment attempt.
type AutoAssignError struct {
	Flight string `json:"flight"`
	Reason string `json:"reason"`
}

// AutoAssignResult partitions an auto-assign batch into outcomes. Each
// attempt is independent; one flight's failure does not block the rest.
type AutoAssignResult struct {
	Assignments []GateAssignment  `json:"assignments"`
	Errors      []AutoAssignError `json:"errors"`
}

// SeatSelection carries the seat chosen during check-in.
type SeatSelection struct {
	SeatNumber string `json:"seat"`
	CabinClass string `json:"cabin"`
	IsPremium  bool   `json:"isPremium"`
}

// BaggageSelection carries checked baggage details, if any.
type BaggageSelection struct {
	Type     string  `json:"type"`
	WeightKg float64 `json:"weight"`
}

// CheckInRequest is the passenger self-service check-in payload.
type CheckInRequest struct {
	BookingReference string            `json:"bookingReference"`
	PassengerName    string            `json:"passengerName"`
	PassportNumber   string            `json:"passportNumber"`
	Seat             SeatSelection     `json:"seat"`
	Baggage          *BaggageSelection `json:"baggage,omitempty"`
}

// VerifyPassengerRequest is the read-only identity precheck before check-in.
type VerifyPassengerRequest struct {
	BookingReference string `json:"bookingReference"`
	PassengerName    string `json:"passengerName"`
	PassportNumber   string `json:"passportNumber"`
	FlightCode       string `json:"flightCode"`
}

// FlightSummary is the verification response shown before seat selection.
type FlightSummary struct {
	Flight       string `json:"flight"`
	Departure    string `json:"departure"`
	BoardingTime string `json:"boarding"`
	Gate         string `json:"gate"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	FlightDate   string `json:"flightDate"`
}

// GeneratePassRequest asks for a boarding-pass reprint.
type GeneratePassRequest struct {
	BookingReference string `json:"bookingReference"`
	ForceRegenerate  bool   `json:"forceRegenerate"`
}

// TaskDetails describes the ground-service task a crew member is assigned
// to. Either TaskID references an existing pending task, or the remaining
// fields describe a task to create.
type TaskDetails struct {
	TaskID                   string    `json:"taskId,omitempty"`
	ServiceType              string    `json:"serviceType"`
	FlightCode               string    `json:"flightCode"`
	Priority                 string    `json:"priority"`
	ScheduledTime            time.Time `json:"scheduledTime"`
	EstimatedDurationMinutes int       `json:"estimatedDurationMinutes"`
	Notes                    string    `json:"notes"`
}

// AssignCrewRequest asks to put a crew member on a ground-service task.
type AssignCrewRequest struct {
	CrewID string      `json:"crewId"`
	Task   TaskDetails `json:"taskDetails"`
}

// CreateCrewRequest registers a new crew member.
type CreateCrewRequest struct {
	FullName      string `json:"fullName"`
	CrewType      string `json:"crewType"`
	Qualification string `json:"qualification"`
	ContactNumber string `json:"contactNumber"`
}

// OpsEvent is published to the operations webhook when an administrator
// overrides a conflict or a passenger completes check-in.
type OpsEvent struct {
	Type       string                 `json:"type"`
	FlightCode string                 `json:"flightCode,omitempty"`
	Resource   string                 `json:"resource,omitempty"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	OccurredAt time.Time              `json:"occurredAt"`
}
