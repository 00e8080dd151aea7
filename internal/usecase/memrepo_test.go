package usecase

import (
	"context"
	"sync"
	"time"

	"airportops-service/internal/domain/entity"
	"airportops-service/pkg/logger"
)

// In-memory repository fakes backing the usecase tests.

type memAircraftRepo struct {
	mu       sync.Mutex
	aircraft map[string]*entity.Aircraft
}

func newMemAircraftRepo(aircraft ...*entity.Aircraft) *memAircraftRepo {
	r := &memAircraftRepo{aircraft: make(map[string]*entity.Aircraft)}
	for _, a := range aircraft {
		r.aircraft[a.AircraftID] = a
	}
	return r
}

func (r *memAircraftRepo) GetByID(_ context.Context, id string) (*entity.Aircraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.aircraft[id]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "aircraft %s not found", id)
	}
	copied := *a
	return &copied, nil
}

func (r *memAircraftRepo) List(_ context.Context) ([]*entity.Aircraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Aircraft, 0, len(r.aircraft))
	for _, a := range r.aircraft {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memAircraftRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.aircraft[id]
	if !ok {
		return entity.NewError(entity.KindNotFound, "aircraft %s not found", id)
	}
	a.OperationalStatus = status
	a.UpdatedAt = time.Now()
	return nil
}

type memGateRepo struct {
	mu    sync.Mutex
	gates map[string]*entity.Gate
	order []string
}

func newMemGateRepo(gates ...*entity.Gate) *memGateRepo {
	r := &memGateRepo{gates: make(map[string]*entity.Gate)}
	for _, g := range gates {
		r.gates[g.GateID] = g
		r.order = append(r.order, g.GateID)
	}
	return r
}

func (r *memGateRepo) GetByID(_ context.Context, id string) (*entity.Gate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[id]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "gate %s not found", id)
	}
	copied := *g
	return &copied, nil
}

func (r *memGateRepo) List(_ context.Context) ([]*entity.Gate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Gate, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.gates[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memGateRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[id]
	if !ok {
		return entity.NewError(entity.KindNotFound, "gate %s not found", id)
	}
	g.Status = status
	return nil
}

func (r *memGateRepo) Assign(_ context.Context, id, flightCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[id]
	if !ok {
		return entity.NewError(entity.KindNotFound, "gate %s not found", id)
	}
	g.CurrentFlight = flightCode
	g.Status = entity.GateOccupied
	return nil
}

func (r *memGateRepo) Release(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[id]
	if !ok {
		return entity.NewError(entity.KindNotFound, "gate %s not found", id)
	}
	g.CurrentFlight = ""
	g.Status = entity.GateAvailable
	return nil
}

func (r *memGateRepo) AppendOverride(_ context.Context, id string, override entity.GateOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[id]
	if !ok {
		return entity.NewError(entity.KindNotFound, "gate %s not found", id)
	}
	g.Overrides = append(g.Overrides, override)
	return nil
}

type memCrewRepo struct {
	mu   sync.Mutex
	crew map[string]*entity.CrewMember
}

func newMemCrewRepo(members ...*entity.CrewMember) *memCrewRepo {
	r := &memCrewRepo{crew: make(map[string]*entity.CrewMember)}
	for _, c := range members {
		r.crew[c.CrewID] = c
	}
	return r
}

func (r *memCrewRepo) GetByID(_ context.Context, id string) (*entity.CrewMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.crew[id]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "crew member %s not found", id)
	}
	copied := *c
	return &copied, nil
}

func (r *memCrewRepo) List(_ context.Context) ([]*entity.CrewMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.CrewMember, 0, len(r.crew))
	for _, c := range r.crew {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memCrewRepo) Insert(_ context.Context, crew *entity.CrewMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.crew[crew.CrewID] = crew
	return nil
}

func (r *memCrewRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.crew[id]
	if !ok {
		return entity.NewError(entity.KindNotFound, "crew member %s not found", id)
	}
	c.Status = status
	return nil
}

func (r *memCrewRepo) IncrementTaskCounts(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.crew[id]
	if !ok {
		return entity.NewError(entity.KindNotFound, "crew member %s not found", id)
	}
	c.TasksCompletedToday++
	c.TotalTasksCompleted++
	return nil
}

func (r *memCrewRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.crew[id]; !ok {
		return entity.NewError(entity.KindNotFound, "crew member %s not found", id)
	}
	delete(r.crew, id)
	return nil
}

type memFlightRepo struct {
	mu           sync.Mutex
	flights      map[string]*entity.Flight
	incrementErr error
}

func newMemFlightRepo(flights ...*entity.Flight) *memFlightRepo {
	r := &memFlightRepo{flights: make(map[string]*entity.Flight)}
	for _, f := range flights {
		r.flights[f.Code] = f
	}
	return r
}

func (r *memFlightRepo) GetByCode(_ context.Context, code string) (*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[code]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "flight %s not found", code)
	}
	copied := *f
	return &copied, nil
}

func (r *memFlightRepo) GetByAircraft(_ context.Context, aircraftID string) (*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.flights {
		if f.AircraftID == aircraftID {
			copied := *f
			return &copied, nil
		}
	}
	return nil, entity.NewError(entity.KindNotFound, "no flight assigned to aircraft %s", aircraftID)
}

func (r *memFlightRepo) ListByGate(_ context.Context, gateID string) ([]*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Flight
	for _, f := range r.flights {
		if f.Gate == gateID {
			copied := *f
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memFlightRepo) List(_ context.Context) ([]*entity.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		copied := *f
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memFlightRepo) SetAircraft(_ context.Context, code, aircraftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[code]
	if !ok {
		return entity.NewError(entity.KindNotFound, "flight %s not found", code)
	}
	f.AircraftID = aircraftID
	return nil
}

func (r *memFlightRepo) SetGate(_ context.Context, code, gateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flights[code]
	if !ok {
		return entity.NewError(entity.KindNotFound, "flight %s not found", code)
	}
	f.Gate = gateID
	return nil
}

func (r *memFlightRepo) IncrementCheckedIn(_ context.Context, code string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.incrementErr != nil && delta > 0 {
		return r.incrementErr
	}
	f, ok := r.flights[code]
	if !ok {
		return entity.NewError(entity.KindNotFound, "flight %s not found", code)
	}
	f.TotalCheckedIn += delta
	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking // keyed by normalized reference
}

func newMemBookingRepo(bookings ...*entity.Booking) *memBookingRepo {
	r := &memBookingRepo{bookings: make(map[string]*entity.Booking)}
	for _, b := range bookings {
		r.bookings[b.Reference] = b
	}
	return r
}

func (r *memBookingRepo) GetByReference(_ context.Context, reference string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[reference]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "booking %s not found", reference)
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) GetByID(_ context.Context, bookingID string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingID == bookingID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, entity.NewError(entity.KindNotFound, "booking %s not found", bookingID)
}

func (r *memBookingRepo) ApplyCheckIn(_ context.Context, reference string, update entity.CheckInUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[reference]
	if !ok {
		return entity.NewError(entity.KindNotFound, "booking %s not found", reference)
	}
	b.SeatNumber = update.SeatNumber
	b.CabinClass = update.CabinClass
	b.IsPremiumSeat = update.IsPremiumSeat
	b.SeatFee = update.SeatFee
	b.BaggageType = update.BaggageType
	b.BaggageWeight = update.BaggageWeight
	b.BaggageFee = update.BaggageFee
	b.BaggageTag = update.BaggageTag
	b.TotalAmount = update.TotalAmount
	b.Status = update.Status
	checkInTime := update.CheckInTime
	b.CheckInTime = &checkInTime
	return nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, bookingID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookingID == bookingID {
			b.Status = status
			return nil
		}
	}
	return entity.NewError(entity.KindNotFound, "booking %s not found", bookingID)
}

type memPassRepo struct {
	mu        sync.Mutex
	passes    map[string]*entity.BoardingPass // keyed by booking reference
	insertErr error
}

func newMemPassRepo() *memPassRepo {
	return &memPassRepo{passes: make(map[string]*entity.BoardingPass)}
}

func (r *memPassRepo) Insert(_ context.Context, pass *entity.BoardingPass) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.passes[pass.BookingReference] = pass
	return nil
}

func (r *memPassRepo) GetByReference(_ context.Context, reference string) (*entity.BoardingPass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.passes[reference]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "no boarding pass for booking %s", reference)
	}
	copied := *p
	return &copied, nil
}

func (r *memPassRepo) DeleteByReference(_ context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.passes, reference)
	return nil
}

func (r *memPassRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.passes)
}

type memGroundServiceRepo struct {
	mu    sync.Mutex
	tasks map[string]*entity.GroundServiceTask
}

func newMemGroundServiceRepo(tasks ...*entity.GroundServiceTask) *memGroundServiceRepo {
	r := &memGroundServiceRepo{tasks: make(map[string]*entity.GroundServiceTask)}
	for _, task := range tasks {
		r.tasks[task.ServiceID] = task
	}
	return r
}

func (r *memGroundServiceRepo) GetByID(_ context.Context, serviceID string) (*entity.GroundServiceTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[serviceID]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "task %s not found", serviceID)
	}
	copied := *task
	return &copied, nil
}

func (r *memGroundServiceRepo) List(_ context.Context) ([]*entity.GroundServiceTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.GroundServiceTask, 0, len(r.tasks))
	for _, task := range r.tasks {
		copied := *task
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memGroundServiceRepo) Insert(_ context.Context, task *entity.GroundServiceTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ServiceID] = task
	return nil
}

func (r *memGroundServiceRepo) Assign(_ context.Context, serviceID, crewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[serviceID]
	if !ok {
		return entity.NewError(entity.KindNotFound, "task %s not found", serviceID)
	}
	if task.Status != entity.TaskPending || task.AssignedCrew != "" {
		return entity.NewError(entity.KindInvalidState, "task %s is not open for assignment", serviceID)
	}
	task.AssignedCrew = crewID
	task.Status = entity.TaskInProgress
	return nil
}

func (r *memGroundServiceRepo) Unassign(_ context.Context, serviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[serviceID]
	if !ok {
		return entity.NewError(entity.KindNotFound, "task %s not found", serviceID)
	}
	task.AssignedCrew = ""
	task.Status = entity.TaskPending
	return nil
}

func (r *memGroundServiceRepo) Complete(_ context.Context, serviceID string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[serviceID]
	if !ok {
		return entity.NewError(entity.KindNotFound, "task %s not found", serviceID)
	}
	if task.Status != entity.TaskInProgress {
		return entity.NewError(entity.KindInvalidState, "task %s is not in progress", serviceID)
	}
	task.Status = entity.TaskCompleted
	task.CompletedTime = &completedAt
	return nil
}

func (r *memGroundServiceRepo) CountOpenByCrew(_ context.Context, crewID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, task := range r.tasks {
		if task.AssignedCrew == crewID && task.Open() {
			n++
		}
	}
	return n, nil
}

func (r *memGroundServiceRepo) ClearCrew(_ context.Context, crewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, task := range r.tasks {
		if task.AssignedCrew == crewID {
			task.AssignedCrew = ""
		}
	}
	return nil
}

type memAirportRepo struct {
	airports map[string]*entity.Airport
}

func newMemAirportRepo(airports ...*entity.Airport) *memAirportRepo {
	r := &memAirportRepo{airports: make(map[string]*entity.Airport)}
	for _, a := range airports {
		r.airports[a.Code] = a
	}
	return r
}

func (r *memAirportRepo) GetByCode(_ context.Context, code string) (*entity.Airport, error) {
	a, ok := r.airports[code]
	if !ok {
		return nil, entity.NewError(entity.KindNotFound, "airport %s not found", code)
	}
	return a, nil
}

type memMailer struct {
	mu    sync.Mutex
	sends []string
}

func (m *memMailer) SendBoardingPass(_ context.Context, to string, _ *entity.BoardingPassView) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, to)
	return nil
}

type memOpsEvents struct {
	mu     sync.Mutex
	events []*entity.OpsEvent
}

func (m *memOpsEvents) PublishEvent(_ context.Context, event *entity.OpsEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *memOpsEvents) typesSeen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func (l nopLogger) With(...interface{}) logger.Logger { return l }
