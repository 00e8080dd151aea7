package entity

import (
	"time"
)

// Boarding pass status values.
const (
	PassIssued  = "issued"
	PassBoarded = "boarded"
)

// BoardingPass is the issued artifact permitting a checked-in passenger to
// board. It is tied 1:1 to a booking reference until regenerated and is
// immutable except for Status.
type BoardingPass struct {
	ID               string    `bson:"_id,omitempty"`
	PassID           string    `bson:"boardingPassId"`
	Barcode          string    `bson:"barcode"`
	BookingReference string    `bson:"bookingReference"`
	PassengerID      string    `bson:"passengerId,omitempty"`
	FlightCode       string    `bson:"flightCode"`
	FlightDate       time.Time `bson:"flightDate"`
	DepartureTime    string    `bson:"departureTime"`
	Gate             string    `bson:"gate,omitempty"`
	BoardingTime     string    `bson:"boardingTime"`
	PassengerName    string    `bson:"passengerName"`
	SeatNumber       string    `bson:"seatNumber"`
	CabinClass       string    `bson:"cabinClass"`
	Status           string    `bson:"status"`
	BaggageTag       string    `bson:"baggageTag,omitempty"`
	BaggageWeight    float64   `bson:"baggageWeight"`
	GeneratedAt      time.Time `bson:"generatedAt"`
}

// BoardingPassView is the fully populated payload returned to a passenger
// after check-in or a reprint. Origin and destination carry expanded airport
// names when the reference directory knows the codes.
type BoardingPassView struct {
	Passenger    string  `json:"passenger"`
	Flight       string  `json:"flight"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Seat         string  `json:"seat"`
	Gate         string  `json:"gate"`
	BoardingTime string  `json:"boardingTime"`
	CabinClass   string  `json:"cabinClass"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Barcode      string  `json:"barcode"`
	BaggageTag   string  `json:"baggageTag,omitempty"`
	BaggageKg    float64 `json:"baggageKg,omitempty"`
	SeatFee      float64 `json:"seatFee"`
	BaggageFee   float64 `json:"baggageFee"`
	TotalAmount  float64 `json:"totalAmount"`
}
