package domain

type VehicleID string

// Hour is a caller-supplied discrete timestamp. The engine never reads a clock.
type Hour int64

// Ticket identifies one arrival. A queued vehicle keeps its ticket when it is
// promoted, so the ticket also keys the visit record of that activation.
type Ticket uint64

type Slot struct {
	ID       int
	Occupant *Occupancy
}

type Occupancy struct {
	Vehicle VehicleID
	Since   Hour
	Ticket  Ticket
}

func (s Slot) Free() bool {
	return s.Occupant == nil
}

type WaitingEntry struct {
	Vehicle     VehicleID
	QueuedSince Hour
	Ticket      Ticket
}

type Snapshot struct {
	Slots []Slot
	Queue []WaitingEntry
}

func (s Snapshot) Occupied() int {
	occupied := 0
	for _, slot := range s.Slots {
		if !slot.Free() {
			occupied++
		}
	}
	return occupied
}
