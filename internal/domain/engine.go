package domain

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

const minimumBilledHours Hour = 1

type ArrivalOutcome struct {
	Ticket        Ticket
	Vehicle       VehicleID
	At            Hour
	Parked        bool
	SlotID        int
	QueuePosition int
}

type Promotion struct {
	Vehicle     VehicleID
	Ticket      Ticket
	QueuedSince Hour
	Waiting     Hour
}

type DepartureOutcome struct {
	SlotID   int
	Vehicle  VehicleID
	Ticket   Ticket
	At       Hour
	Duration Hour
	Bill     int64
	Promoted *Promotion
}

// Engine allocates a fixed set of slots first-come-first-served and keeps a
// FIFO queue for arrivals that find every slot taken. It is not safe for
// concurrent use; a single caller drives it in chronological order.
type Engine struct {
	slots      []Slot
	queue      []WaitingEntry
	visits     []VisitRecord
	rate       int64
	lastTicket Ticket
}

func NewEngine(slotCount int, ratePerHour int64) (*Engine, error) {
	if slotCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotCount, slotCount)
	}
	if ratePerHour < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRate, ratePerHour)
	}

	slots := make([]Slot, slotCount)
	for i := range slots {
		slots[i] = Slot{ID: i + 1}
	}

	return &Engine{slots: slots, rate: ratePerHour}, nil
}

func (e *Engine) Rate() int64 {
	return e.rate
}

func (e *Engine) SlotCount() int {
	return len(e.slots)
}

// Arrive parks the vehicle in the free slot with the lowest id, or appends it
// to the waiting queue when the lot is full. Reused vehicle ids are accepted
// and treated as independent arrivals with their own tickets.
func (e *Engine) Arrive(vehicle VehicleID, at Hour) ArrivalOutcome {
	e.lastTicket++
	ticket := e.lastTicket

	for i := range e.slots {
		if !e.slots[i].Free() {
			continue
		}

		e.activate(i, vehicle, ticket, at, at, 0)
		return ArrivalOutcome{
			Ticket:  ticket,
			Vehicle: vehicle,
			At:      at,
			Parked:  true,
			SlotID:  e.slots[i].ID,
		}
	}

	e.queue = append(e.queue, WaitingEntry{Vehicle: vehicle, QueuedSince: at, Ticket: ticket})
	return ArrivalOutcome{
		Ticket:        ticket,
		Vehicle:       vehicle,
		At:            at,
		QueuePosition: len(e.queue),
	}
}

// Depart releases the lowest-id slot occupied by vehicle. Vehicles that are
// only queued cannot depart.
func (e *Engine) Depart(vehicle VehicleID, at Hour) (DepartureOutcome, error) {
	for i := range e.slots {
		if occupant := e.slots[i].Occupant; occupant != nil && occupant.Vehicle == vehicle {
			return e.release(i, at), nil
		}
	}

	return DepartureOutcome{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicle)
}

func (e *Engine) DepartTicket(ticket Ticket, at Hour) (DepartureOutcome, error) {
	for i := range e.slots {
		if occupant := e.slots[i].Occupant; occupant != nil && occupant.Ticket == ticket {
			return e.release(i, at), nil
		}
	}

	return DepartureOutcome{}, fmt.Errorf("%w: %d", ErrTicketNotFound, ticket)
}

func (e *Engine) release(index int, at Hour) DepartureOutcome {
	slot := &e.slots[index]
	occupant := *slot.Occupant

	duration := at - occupant.Since
	if duration < minimumBilledHours {
		duration = minimumBilledHours
	}

	e.closeVisit(occupant.Ticket, at)
	slot.Occupant = nil

	outcome := DepartureOutcome{
		SlotID:   slot.ID,
		Vehicle:  occupant.Vehicle,
		Ticket:   occupant.Ticket,
		At:       at,
		Duration: duration,
		Bill:     int64(duration) * e.rate,
	}

	if len(e.queue) == 0 {
		return outcome
	}

	next := e.queue[0]
	e.queue = append(e.queue[:0], e.queue[1:]...)

	waiting := at - next.QueuedSince
	if waiting < 0 {
		waiting = 0
	}

	// The billing clock of a promoted vehicle starts at promotion.
	e.activate(index, next.Vehicle, next.Ticket, at, next.QueuedSince, waiting)
	outcome.Promoted = &Promotion{
		Vehicle:     next.Vehicle,
		Ticket:      next.Ticket,
		QueuedSince: next.QueuedSince,
		Waiting:     waiting,
	}

	return outcome
}

func (e *Engine) activate(index int, vehicle VehicleID, ticket Ticket, since, arrival, waiting Hour) {
	e.slots[index].Occupant = &Occupancy{Vehicle: vehicle, Since: since, Ticket: ticket}
	e.visits = append(e.visits, VisitRecord{
		Ticket:  ticket,
		Vehicle: vehicle,
		Arrival: arrival,
		Waiting: waiting,
	})
}

func (e *Engine) closeVisit(ticket Ticket, at Hour) {
	for i := range e.visits {
		record := &e.visits[i]
		if record.Ticket != ticket || record.Completed() {
			continue
		}

		departure := at
		if departure < record.Arrival {
			departure = record.Arrival
		}
		record.Departure = &departure
		return
	}
}

func (e *Engine) Averages() (Averages, error) {
	return ComputeAverages(e.visits)
}

// Snapshot returns a deep copy of the slots and the waiting queue.
func (e *Engine) Snapshot() Snapshot {
	var snapshot Snapshot
	// Copy only fails on mismatched source and destination types.
	if err := deepcopy.Copy(&snapshot, Snapshot{Slots: e.slots, Queue: e.queue}); err != nil {
		panic(err)
	}
	return snapshot
}

func (e *Engine) Visits() []VisitRecord {
	var visits []VisitRecord
	// Same types on both sides, see Snapshot.
	if err := deepcopy.Copy(&visits, e.visits); err != nil {
		panic(err)
	}
	return visits
}

func (e *Engine) CompletedVisits() []CompletedVisit {
	completed := make([]CompletedVisit, 0, len(e.visits))
	for _, record := range e.visits {
		if !record.Completed() {
			continue
		}
		completed = append(completed, CompletedVisit{
			Ticket:     record.Ticket,
			Vehicle:    record.Vehicle,
			Arrival:    record.Arrival,
			Departure:  *record.Departure,
			Waiting:    record.Waiting,
			Turnaround: record.Turnaround(),
		})
	}
	return completed
}
