package domain

type VisitRecord struct {
	Ticket    Ticket
	Vehicle   VehicleID
	Arrival   Hour
	Departure *Hour
	Waiting   Hour
}

func (r VisitRecord) Completed() bool {
	return r.Departure != nil
}

// Turnaround is measured from the original arrival, so for promoted vehicles
// it includes the time spent queued.
func (r VisitRecord) Turnaround() Hour {
	if r.Departure == nil {
		return 0
	}
	return *r.Departure - r.Arrival
}

type CompletedVisit struct {
	Ticket     Ticket
	Vehicle    VehicleID
	Arrival    Hour
	Departure  Hour
	Waiting    Hour
	Turnaround Hour
}

type Averages struct {
	Waiting    float64
	Turnaround float64
	Completed  int
}

// ComputeAverages returns ErrNoCompletedVisits when no record has a departure.
func ComputeAverages(records []VisitRecord) (Averages, error) {
	var totalWaiting, totalTurnaround Hour
	completed := 0
	for _, record := range records {
		if !record.Completed() {
			continue
		}
		totalWaiting += record.Waiting
		totalTurnaround += record.Turnaround()
		completed++
	}

	if completed == 0 {
		return Averages{}, ErrNoCompletedVisits
	}

	return Averages{
		Waiting:    float64(totalWaiting) / float64(completed),
		Turnaround: float64(totalTurnaround) / float64(completed),
		Completed:  completed,
	}, nil
}
