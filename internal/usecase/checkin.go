package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airportops-service/internal/domain/entity"
	"airportops-service/internal/domain/repository"
	"airportops-service/pkg/locks"
	"airportops-service/pkg/logger"
	"airportops-service/pkg/utils"
)

// Fee policy.
const (
	businessCabinFee = 150.0
	premiumSeatFee   = 75.0
	freeBaggageKg    = 20.0
	excessFeePerKg   = 10.0
)

// Bookings can only be cancelled up to this long before departure.
const cancellationCutoff = 24 * time.Hour

// CheckInIssuer validates passenger identity, computes fees and issues
// boarding passes, transitioning bookings from pending to checked_in.
type CheckInIssuer struct {
	bookingRepo repository.BookingRepository
	flightRepo  repository.FlightRepository
	passRepo    repository.BoardingPassRepository
	airportRepo repository.AirportRepository
	mailer      repository.MailRepository
	opsEvents   repository.OpsEventRepository
	locks       *locks.Keyed
	logger      logger.Logger
	now         func() time.Time
}

// NewCheckInIssuer creates a new check-in issuer. The airport directory,
// mailer and ops event publisher may be nil; the issuer degrades to raw
// airport codes and no notifications.
func NewCheckInIssuer(
	bookingRepo repository.BookingRepository,
	flightRepo repository.FlightRepository,
	passRepo repository.BoardingPassRepository,
	airportRepo repository.AirportRepository,
	mailer repository.MailRepository,
	opsEvents repository.OpsEventRepository,
	keyed *locks.Keyed,
	logger logger.Logger,
) *CheckInIssuer {
	return &CheckInIssuer{
		bookingRepo: bookingRepo,
		flightRepo:  flightRepo,
		passRepo:    passRepo,
		airportRepo: airportRepo,
		mailer:      mailer,
		opsEvents:   opsEvents,
		locks:       keyed,
		logger:      logger,
		now:         time.Now,
	}
}

// NormalizeReference uppercases and trims a booking reference for lookup.
func NormalizeReference(reference string) string {
	return strings.ToUpper(strings.TrimSpace(reference))
}

// VerifyPassenger is the read-only identity precheck run before seat
// selection in the self-service portal.
func (i *CheckInIssuer) VerifyPassenger(ctx context.Context, req *entity.VerifyPassengerRequest) (*entity.FlightSummary, error) {
	if req.BookingReference == "" || req.PassengerName == "" {
		return nil, entity.NewError(entity.KindValidation, "booking reference and passenger name are required")
	}

	booking, err := i.bookingRepo.GetByReference(ctx, NormalizeReference(req.BookingReference))
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(strings.TrimSpace(req.PassengerName), booking.PassengerName) {
		return nil, entity.NewError(entity.KindValidation, "name does not match booking")
	}
	if req.PassportNumber != "" && booking.PassportNumber != "" && req.PassportNumber != booking.PassportNumber {
		return nil, entity.NewError(entity.KindValidation, "passport number does not match")
	}
	if req.FlightCode != "" && req.FlightCode != booking.FlightCode {
		return nil, entity.NewError(entity.KindValidation, "flight number does not match booking")
	}
	if booking.CheckedIn() {
		return nil, entity.NewError(entity.KindInvalidState, "already checked in for this flight")
	}

	flight, err := i.flightRepo.GetByCode(ctx, booking.FlightCode)
	if err != nil {
		return nil, err
	}

	return &entity.FlightSummary{
		Flight:       flight.Code,
		Departure:    flight.ScheduledDeparture,
		BoardingTime: i.boardingTime(flight),
		Gate:         gateOrTBA(flight.Gate),
		Origin:       i.expandAirport(ctx, flight.OriginAirport),
		Destination:  i.expandAirport(ctx, flight.DestinationAirport),
		FlightDate:   flight.FlightDate.Format("Monday, January 2, 2006"),
	}, nil
}

// CheckIn performs passenger self-service check-in, verifying the name on
// the booking before issuing a boarding pass.
func (i *CheckInIssuer) CheckIn(ctx context.Context, req *entity.CheckInRequest) (*entity.BoardingPassView, error) {
	return i.checkIn(ctx, req, true)
}

// ManualCheckIn is the admin variant: it skips passenger self-verification
// but follows the same state machine.
func (i *CheckInIssuer) ManualCheckIn(ctx context.Context, req *entity.CheckInRequest) (*entity.BoardingPassView, error) {
	return i.checkIn(ctx, req, false)
}

func (i *CheckInIssuer) checkIn(ctx context.Context, req *entity.CheckInRequest, verifyName bool) (*entity.BoardingPassView, error) {
	if req.BookingReference == "" || req.Seat.SeatNumber == "" {
		return nil, entity.NewError(entity.KindValidation, "booking reference and seat selection are required")
	}
	if verifyName && req.PassengerName == "" {
		return nil, entity.NewError(entity.KindValidation, "passenger name is required")
	}

	reference := NormalizeReference(req.BookingReference)
	unlock := i.locks.Lock("booking:" + reference)
	defer unlock()

	booking, err := i.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if verifyName && !strings.EqualFold(strings.TrimSpace(req.PassengerName), booking.PassengerName) {
		return nil, entity.NewError(entity.KindValidation,
			"passenger name does not match booking; booking is under: %s", booking.PassengerName)
	}

	if booking.Status == entity.BookingCancelled {
		return nil, entity.NewError(entity.KindInvalidState, "booking %s is cancelled", reference)
	}
	if booking.CheckedIn() {
		return nil, entity.NewError(entity.KindInvalidState, "already checked in for this flight")
	}

	flight, err := i.flightRepo.GetByCode(ctx, booking.FlightCode)
	if err != nil {
		return nil, err
	}

	cabin := req.Seat.CabinClass
	if cabin == "" {
		cabin = "economy"
	}
	seatFee := seatFeeFor(cabin, req.Seat.IsPremium)

	var baggageWeight float64
	var baggageType, baggageTag string
	if req.Baggage != nil {
		baggageWeight = req.Baggage.WeightKg
		baggageType = req.Baggage.Type
		baggageTag = utils.GenerateBaggageTag()
	}
	baggageFee := baggageFeeFor(baggageWeight)

	totalAmount := booking.BaseFare + seatFee + baggageFee
	checkInTime := i.now()

	update := entity.CheckInUpdate{
		SeatNumber:    req.Seat.SeatNumber,
		CabinClass:    cabin,
		IsPremiumSeat: req.Seat.IsPremium,
		SeatFee:       seatFee,
		BaggageType:   baggageType,
		BaggageWeight: baggageWeight,
		BaggageFee:    baggageFee,
		BaggageTag:    baggageTag,
		TotalAmount:   totalAmount,
		Status:        entity.BookingCheckedIn,
		CheckInTime:   checkInTime,
	}

	pass := &entity.BoardingPass{
		PassID:           utils.GenerateID("PASS-"),
		Barcode:          utils.GenerateBarcode(),
		BookingReference: reference,
		PassengerID:      booking.PassengerID,
		FlightCode:       flight.Code,
		FlightDate:       flight.FlightDate,
		DepartureTime:    flight.ScheduledDeparture,
		Gate:             gateOrTBA(flight.Gate),
		BoardingTime:     i.boardingTime(flight),
		PassengerName:    booking.PassengerName,
		SeatNumber:       req.Seat.SeatNumber,
		CabinClass:       cabin,
		Status:           entity.PassIssued,
		BaggageTag:       baggageTag,
		BaggageWeight:    baggageWeight,
		GeneratedAt:      checkInTime,
	}
	if err := i.passRepo.Insert(ctx, pass); err != nil {
		return nil, err
	}

	if err := i.flightRepo.IncrementCheckedIn(ctx, flight.Code, 1); err != nil {
		i.rollbackPass(ctx, reference)
		return nil, err
	}

	// The booking patch is the last write; a failure before it leaves the
	// booking exactly as it was.
	if err := i.bookingRepo.ApplyCheckIn(ctx, reference, update); err != nil {
		if decErr := i.flightRepo.IncrementCheckedIn(ctx, flight.Code, -1); decErr != nil {
			i.logger.Error("Rollback of checked-in counter failed", "flightCode", flight.Code, "error", decErr)
		}
		i.rollbackPass(ctx, reference)
		return nil, err
	}

	view := i.buildView(ctx, booking, flight, pass, seatFee, baggageFee, totalAmount)

	i.notifyCheckIn(ctx, booking, view)

	i.logger.Info("Check-in completed",
		"reference", reference,
		"flightCode", flight.Code,
		"seat", req.Seat.SeatNumber,
		"totalAmount", totalAmount)

	return view, nil
}

// GenerateBoardingPass reissues the pass for a checked-in booking without
// altering the booking status. Without forceRegenerate the existing pass is
// returned as is.
func (i *CheckInIssuer) GenerateBoardingPass(ctx context.Context, bookingReference string, forceRegenerate bool) (*entity.BoardingPassView, error) {
	if bookingReference == "" {
		return nil, entity.NewError(entity.KindValidation, "booking reference is required")
	}

	reference := NormalizeReference(bookingReference)
	unlock := i.locks.Lock("booking:" + reference)
	defer unlock()

	booking, err := i.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !booking.CheckedIn() {
		return nil, entity.NewError(entity.KindInvalidState,
			"booking %s is not checked in; no boarding pass to generate", reference)
	}

	flight, err := i.flightRepo.GetByCode(ctx, booking.FlightCode)
	if err != nil {
		return nil, err
	}

	existing, err := i.passRepo.GetByReference(ctx, reference)
	if err != nil && !entity.IsKind(err, entity.KindNotFound) {
		return nil, err
	}

	if existing != nil && !forceRegenerate {
		return i.buildView(ctx, booking, flight, existing, booking.SeatFee, booking.BaggageFee, booking.TotalAmount), nil
	}

	if existing != nil {
		if err := i.passRepo.DeleteByReference(ctx, reference); err != nil {
			return nil, err
		}
	}

	pass := &entity.BoardingPass{
		PassID:           utils.GenerateID("PASS-"),
		Barcode:          utils.GenerateBarcode(),
		BookingReference: reference,
		PassengerID:      booking.PassengerID,
		FlightCode:       flight.Code,
		FlightDate:       flight.FlightDate,
		DepartureTime:    flight.ScheduledDeparture,
		Gate:             gateOrTBA(flight.Gate),
		BoardingTime:     i.boardingTime(flight),
		PassengerName:    booking.PassengerName,
		SeatNumber:       booking.SeatNumber,
		CabinClass:       booking.CabinClass,
		Status:           entity.PassIssued,
		BaggageTag:       booking.BaggageTag,
		BaggageWeight:    booking.BaggageWeight,
		GeneratedAt:      i.now(),
	}
	if err := i.passRepo.Insert(ctx, pass); err != nil {
		return nil, err
	}

	i.logger.Info("Boarding pass regenerated", "reference", reference, "barcode", pass.Barcode)
	return i.buildView(ctx, booking, flight, pass, booking.SeatFee, booking.BaggageFee, booking.TotalAmount), nil
}

// CancelBooking cancels a booking if departure is at least 24 hours away,
// releasing its boarding pass and check-in count.
func (i *CheckInIssuer) CancelBooking(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return entity.NewError(entity.KindValidation, "booking id is required")
	}

	booking, err := i.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	unlock := i.locks.Lock("booking:" + booking.Reference)
	defer unlock()

	// Re-read under the lock; a check-in may have landed after the id lookup.
	booking, err = i.bookingRepo.GetByReference(ctx, booking.Reference)
	if err != nil {
		return err
	}
	if booking.Status == entity.BookingCancelled {
		return entity.NewError(entity.KindInvalidState, "booking %s is already cancelled", bookingID)
	}

	flight, err := i.flightRepo.GetByCode(ctx, booking.FlightCode)
	if err != nil {
		return err
	}

	if flight.FlightDate.Sub(i.now()) < cancellationCutoff {
		return entity.NewError(entity.KindPolicyViolation,
			"bookings can only be cancelled at least 24 hours before departure")
	}

	wasCheckedIn := booking.CheckedIn()

	if err := i.bookingRepo.UpdateStatus(ctx, bookingID, entity.BookingCancelled); err != nil {
		return err
	}
	if wasCheckedIn {
		if err := i.flightRepo.IncrementCheckedIn(ctx, flight.Code, -1); err != nil {
			i.logger.Error("Failed to decrement checked-in counter", "flightCode", flight.Code, "error", err)
		}
	}
	if err := i.passRepo.DeleteByReference(ctx, booking.Reference); err != nil {
		i.logger.Error("Failed to delete boarding pass", "reference", booking.Reference, "error", err)
	}

	i.logger.Info("Booking cancelled", "bookingId", bookingID, "flightCode", booking.FlightCode)
	return nil
}

func (i *CheckInIssuer) rollbackPass(ctx context.Context, reference string) {
	if err := i.passRepo.DeleteByReference(ctx, reference); err != nil {
		i.logger.Error("Rollback of boarding pass failed", "reference", reference, "error", err)
	}
}

func (i *CheckInIssuer) boardingTime(flight *entity.Flight) string {
	boarding, err := utils.BoardingTime(flight.ScheduledDeparture)
	if err != nil {
		i.logger.Warn("Flight has unparseable departure time",
			"flightCode", flight.Code, "departure", flight.ScheduledDeparture)
		return ""
	}
	return boarding
}

func (i *CheckInIssuer) buildView(ctx context.Context, booking *entity.Booking, flight *entity.Flight, pass *entity.BoardingPass, seatFee, baggageFee, totalAmount float64) *entity.BoardingPassView {
	return &entity.BoardingPassView{
		Passenger:    booking.PassengerName,
		Flight:       flight.Code,
		Date:         flight.FlightDate.Format("Monday, January 2, 2006"),
		Time:         flight.ScheduledDeparture,
		Seat:         pass.SeatNumber,
		Gate:         pass.Gate,
		BoardingTime: pass.BoardingTime,
		CabinClass:   pass.CabinClass,
		Origin:       i.expandAirport(ctx, flight.OriginAirport),
		Destination:  i.expandAirport(ctx, flight.DestinationAirport),
		Barcode:      pass.Barcode,
		BaggageTag:   pass.BaggageTag,
		BaggageKg:    pass.BaggageWeight,
		SeatFee:      seatFee,
		BaggageFee:   baggageFee,
		TotalAmount:  totalAmount,
	}
}

// expandAirport turns an IATA code into "Name (CODE)" when the reference
// directory knows it; otherwise the raw code is shown.
func (i *CheckInIssuer) expandAirport(ctx context.Context, code string) string {
	if code == "" || i.airportRepo == nil {
		return code
	}
	airport, err := i.airportRepo.GetByCode(ctx, code)
	if err != nil {
		return code
	}
	return fmt.Sprintf("%s (%s)", airport.Name, code)
}

func (i *CheckInIssuer) notifyCheckIn(ctx context.Context, booking *entity.Booking, view *entity.BoardingPassView) {
	if i.mailer != nil && booking.ContactEmail != "" {
		if err := i.mailer.SendBoardingPass(ctx, booking.ContactEmail, view); err != nil {
			i.logger.Error("Failed to send boarding pass email",
				"reference", booking.Reference, "error", err)
		}
	}
	if i.opsEvents != nil {
		event := &entity.OpsEvent{
			Type:       "passenger_checked_in",
			FlightCode: view.Flight,
			Resource:   booking.Reference,
			Detail: map[string]interface{}{
				"seat":        view.Seat,
				"totalAmount": view.TotalAmount,
			},
			OccurredAt: i.now(),
		}
		if err := i.opsEvents.PublishEvent(ctx, event); err != nil {
			i.logger.Error("Failed to publish check-in event",
				"reference", booking.Reference, "error", err)
		}
	}
}

func gateOrTBA(gate string) string {
	if gate == "" {
		return "TBA"
	}
	return gate
}

func seatFeeFor(cabin string, isPremium bool) float64 {
	if strings.EqualFold(cabin, "business") {
		return businessCabinFee
	}
	if isPremium {
		return premiumSeatFee
	}
	return 0
}

func baggageFeeFor(weightKg float64) float64 {
	if weightKg <= freeBaggageKg {
		return 0
	}
	return (weightKg - freeBaggageKg) * excessFeePerKg
}
