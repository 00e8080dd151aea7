package templates

import (
	"fmt"
	"strings"

	"airportops-service/internal/domain/entity"
)

// RenderBoardingPassEmail renders the plain-text confirmation sent to a
// passenger after check-in.
func RenderBoardingPassEmail(pass *entity.BoardingPassView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Dear %s,\n\n", pass.Passenger))
	b.WriteString("You are checked in. Here is your boarding pass:\n\n")
	b.WriteString(fmt.Sprintf("Flight:        %s\n", pass.Flight))
	b.WriteString(fmt.Sprintf("Date:          %s\n", pass.Date))
	b.WriteString(fmt.Sprintf("Departure:     %s\n", pass.Time))
	b.WriteString(fmt.Sprintf("Boarding:      %s\n", pass.BoardingTime))
	b.WriteString(fmt.Sprintf("Gate:          %s\n", pass.Gate))
	b.WriteString(fmt.Sprintf("Seat:          %s (%s)\n", pass.Seat, pass.CabinClass))
	b.WriteString(fmt.Sprintf("From:          %s\n", pass.Origin))
	b.WriteString(fmt.Sprintf("To:            %s\n", pass.Destination))
	b.WriteString(fmt.Sprintf("Barcode:       %s\n", pass.Barcode))

	if pass.BaggageTag != "" {
		b.WriteString(fmt.Sprintf("Baggage tag:   %s (%.1f kg)\n", pass.BaggageTag, pass.BaggageKg))
	}

	if pass.TotalAmount > 0 {
		b.WriteString("\nCharges:\n")
		b.WriteString(fmt.Sprintf("  Seat fee:    %.2f\n", pass.SeatFee))
		b.WriteString(fmt.Sprintf("  Baggage fee: %.2f\n", pass.BaggageFee))
		b.WriteString(fmt.Sprintf("  Total:       %.2f\n", pass.TotalAmount))
	}

	b.WriteString("\nPlease be at the gate no later than the boarding time.\n")
	b.WriteString("Safe travels!\n")

	return b.String()
}
