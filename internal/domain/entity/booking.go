package entity

import (
	"time"
)

// Booking status values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCheckedIn = "checked_in"
	BookingBoarded   = "boarded"
	BookingCancelled = "cancelled"
)

// Booking represents a passenger reservation on a flight.
type Booking struct {
	ID             string     `bson:"_id,omitempty"`
	BookingID      string     `bson:"bookingId"`
	Reference      string     `bson:"bookingReference"`
	PassengerID    string     `bson:"passengerId"`
	FlightCode     string     `bson:"flightCode"`
	PassengerName  string     `bson:"passengerName"`
	PassportNumber string     `bson:"passportNumber,omitempty"`
	ContactEmail   string     `bson:"contactEmail,omitempty"`
	SeatNumber     string     `bson:"seatNumber,omitempty"`
	CabinClass     string     `bson:"cabinClass,omitempty"`
	IsPremiumSeat  bool       `bson:"isPremiumSeat"`
	Status         string     `bson:"status"`
	BaggageType    string     `bson:"baggageType,omitempty"`
	BaggageWeight  float64    `bson:"baggageWeight"`
	BaggageTag     string     `bson:"baggageTag,omitempty"`
	BaseFare       float64    `bson:"baseFare"`
	SeatFee        float64    `bson:"seatFee"`
	BaggageFee     float64    `bson:"baggageFee"`
	TotalAmount    float64    `bson:"totalAmount"`
	CheckInTime    *time.Time `bson:"checkInTime,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt"`
}

// CheckedIn reports whether the booking already holds a boarding claim.
func (b *Booking) CheckedIn() bool {
	return b.Status == BookingCheckedIn || b.Status == BookingBoarded
}

// CheckInUpdate carries the booking fields written by a completed check-in.
type CheckInUpdate struct {
	SeatNumber    string
	CabinClass    string
	IsPremiumSeat bool
	SeatFee       float64
	BaggageType   string
	BaggageWeight float64
	BaggageFee    float64
	BaggageTag    string
	TotalAmount   float64
	Status        string
	CheckInTime   time.Time
}
